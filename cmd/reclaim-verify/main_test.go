// Copyright (C) 2025 SAGE-X Project
//
// This file is part of sage-reclaim-go.
//
// sage-reclaim-go is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// sage-reclaim-go is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with sage-reclaim-go.  If not, see <https://www.gnu.org/licenses/>.

package main

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sage-x-project/sage-reclaim-go/pkg/beacon"
	"github.com/sage-x-project/sage-reclaim-go/pkg/claim"
	"github.com/sage-x-project/sage-reclaim-go/pkg/signer"
	"github.com/sage-x-project/sage-reclaim-go/pkg/witness"
)

type fakeBeacon struct {
	states  map[uint64]*claim.BeaconState
	current uint64
	closed  bool
}

func (f *fakeBeacon) BeaconState(_ context.Context, epoch uint64) (*claim.BeaconState, error) {
	if epoch == 0 {
		epoch = f.current
	}
	s, ok := f.states[epoch]
	if !ok {
		return nil, claim.ErrEpochNotFound
	}
	return s, nil
}

func (f *fakeBeacon) Close() error {
	f.closed = true
	return nil
}

func newTestApp(src *fakeBeacon) *reclaimApp {
	a := newApp()
	a.openBeacon = func(*baseConfiguration, zerolog.Logger) (beaconSource, error) {
		return src, nil
	}
	return a
}

func execute(t *testing.T, a *reclaimApp, args ...string) (string, error) {
	t.Helper()
	out := new(bytes.Buffer)
	a.baseCmd.SetOut(out)
	a.baseCmd.SetErr(io.Discard)
	a.baseCmd.SetArgs(args)
	err := a.Execute(context.Background())
	return out.String(), err
}

func claimData(epoch uint64) claim.ProviderClaimData {
	data := claim.ProviderClaimData{
		Provider:   "http",
		Parameters: `{"method":"GET","url":"https://example.com/profile"}`,
		Owner:      "0x1111111111111111111111111111111111111111",
		TimestampS: 1712000000,
		Context:    `{"contextAddress":"0x0","contextMessage":"cli"}`,
		Epoch:      epoch,
	}
	data.Identifier = claim.Identifier(data.ClaimInfo())
	return data
}

func signedProof(t *testing.T, data claim.ProviderClaimData, witnesses []claim.WitnessData, signers ...*signer.KeySigner) *claim.Proof {
	t.Helper()
	p := &claim.Proof{Identifier: data.Identifier, ClaimData: data, Witnesses: witnesses}
	for _, s := range signers {
		sig, err := s.SignClaim(&p.ClaimData)
		require.NoError(t, err)
		p.Signatures = append(p.Signatures, hexutil.Encode(sig))
	}
	return p
}

func writeProof(t *testing.T, p *claim.Proof) string {
	t.Helper()
	raw, err := json.Marshal(p)
	require.NoError(t, err)
	name := filepath.Join(t.TempDir(), "proof.json")
	require.NoError(t, os.WriteFile(name, raw, 0o600))
	return name
}

func testRoster(t *testing.T, epoch uint64, size int, required uint64) (*claim.BeaconState, map[string]*signer.KeySigner) {
	t.Helper()
	state := &claim.BeaconState{Epoch: epoch, WitnessesRequiredForClaim: required}
	signers := make(map[string]*signer.KeySigner)
	for i := 0; i < size; i++ {
		s, err := signer.GenerateKeySigner()
		require.NoError(t, err)
		signers[s.Address()] = s
		state.Witnesses = append(state.Witnesses, claim.WitnessData{ID: s.Address(), URL: "wss://w.example/ws"})
	}
	return state, signers
}

func TestIdentifierCmd(t *testing.T) {
	out, err := execute(t, newApp(), "identifier",
		"--provider", "http",
		"--parameters", `{"url":"https://example.com"}`,
		"--context", "{}")
	require.NoError(t, err)

	want := claim.Identifier(claim.ClaimInfo{Provider: "http", Parameters: `{"url":"https://example.com"}`, Context: "{}"})
	assert.Equal(t, want+"\n", out)
}

func TestVerifyCmdManualProof(t *testing.T) {
	s, err := signer.GenerateKeySigner()
	require.NoError(t, err)
	p := signedProof(t, claimData(1), []claim.WitnessData{{ID: s.Address(), URL: claim.ManualVerifyURL}}, s)

	src := &fakeBeacon{}
	out, err := execute(t, newTestApp(src), "verify", writeProof(t, p))
	require.NoError(t, err)
	assert.Equal(t, "valid\n", out)
	assert.True(t, src.closed)
}

func TestVerifyCmdInvalidProof(t *testing.T) {
	s, err := signer.GenerateKeySigner()
	require.NoError(t, err)
	other, err := signer.GenerateKeySigner()
	require.NoError(t, err)
	p := signedProof(t, claimData(1), []claim.WitnessData{{ID: s.Address(), URL: claim.ManualVerifyURL}}, other)

	out, err := execute(t, newTestApp(&fakeBeacon{}), "verify", writeProof(t, p))
	require.ErrorIs(t, err, errProofInvalid)
	assert.Equal(t, "invalid\n", out)
}

func TestVerifyCmdRosterProof(t *testing.T) {
	state, signers := testRoster(t, 4, 5, 2)
	data := claimData(4)
	selected, err := witness.ForClaim(state, data.Identifier, data.TimestampS)
	require.NoError(t, err)

	var keys []*signer.KeySigner
	for _, id := range witness.Addresses(selected) {
		keys = append(keys, signers[id])
	}
	p := signedProof(t, data, selected, keys...)
	src := &fakeBeacon{states: map[uint64]*claim.BeaconState{4: state}, current: 4}

	out, err := execute(t, newTestApp(src), "verify", "--detailed", writeProof(t, p))
	require.NoError(t, err)

	var results []map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &results))
	require.Len(t, results, 1)
	assert.Equal(t, true, results[0]["valid"])
	assert.Equal(t, float64(4), results[0]["epoch"])
}

func TestVerifyCmdBatch(t *testing.T) {
	s, err := signer.GenerateKeySigner()
	require.NoError(t, err)
	manual := []claim.WitnessData{{ID: s.Address(), URL: claim.ManualVerifyURL}}
	good := writeProof(t, signedProof(t, claimData(1), manual, s))

	other, err := signer.GenerateKeySigner()
	require.NoError(t, err)
	bad := writeProof(t, signedProof(t, claimData(1), manual, other))

	out, err := execute(t, newTestApp(&fakeBeacon{}), "verify", good, bad)
	require.ErrorIs(t, err, errProofInvalid)
	assert.Equal(t, good+": valid\n"+bad+": invalid\n", out)
}

func TestVerifyCmdUnknownEpoch(t *testing.T) {
	state, signers := testRoster(t, 4, 1, 1)
	var s *signer.KeySigner
	for _, v := range signers {
		s = v
	}
	p := signedProof(t, claimData(9), state.Witnesses, s)

	_, err := execute(t, newTestApp(&fakeBeacon{states: map[uint64]*claim.BeaconState{4: state}}), "verify", writeProof(t, p))
	require.ErrorIs(t, err, claim.ErrEpochNotFound)
}

func TestVerifyCmdMissingFile(t *testing.T) {
	_, err := execute(t, newTestApp(&fakeBeacon{}), "verify", filepath.Join(t.TempDir(), "absent.json"))
	require.Error(t, err)
}

func TestWitnessesCmd(t *testing.T) {
	state, _ := testRoster(t, 3, 6, 2)
	src := &fakeBeacon{states: map[uint64]*claim.BeaconState{3: state}, current: 3}

	out, err := execute(t, newTestApp(src), "witnesses", "--epoch", "3", "--identifier", "0xabc", "--timestamp", "1712000000")
	require.NoError(t, err)

	selected, err := witness.ForClaim(state, "0xabc", 1712000000)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 2)
	for i, w := range selected {
		assert.Equal(t, w.ID+" "+w.URL, lines[i])
	}
}

func TestWitnessesCmdRequiresIdentifier(t *testing.T) {
	_, err := execute(t, newTestApp(&fakeBeacon{}), "witnesses")
	require.Error(t, err)
}

func TestEpochCmd(t *testing.T) {
	state, _ := testRoster(t, 7, 2, 1)
	src := &fakeBeacon{states: map[uint64]*claim.BeaconState{7: state}, current: 7}

	for _, args := range [][]string{{"epoch"}, {"epoch", "7"}} {
		out, err := execute(t, newTestApp(src), args...)
		require.NoError(t, err)

		var got claim.BeaconState
		require.NoError(t, json.Unmarshal([]byte(out), &got))
		assert.Equal(t, *state, got)
	}

	_, err := execute(t, newTestApp(src), "epoch", "seven")
	require.Error(t, err)
}

func TestVersionCmd(t *testing.T) {
	out, err := execute(t, newApp(), "version")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "reclaim-verify "))
}

func TestEnvironmentBinding(t *testing.T) {
	t.Setenv("RECLAIM_LOG_LEVEL", "shouting")

	_, err := execute(t, newApp(), "version")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid log level")
}

func TestConfigFile(t *testing.T) {
	name := filepath.Join(t.TempDir(), "reclaim.yaml")
	require.NoError(t, os.WriteFile(name, []byte("chain-id: 420\nrpc-url: http://127.0.0.1:8545\n"), 0o600))

	a := newApp()
	_, err := execute(t, a, "--config", name, "version")
	require.NoError(t, err)
	assert.Equal(t, uint64(420), a.config.ChainID)
	assert.Equal(t, "http://127.0.0.1:8545", a.config.RPCURL)
}

func TestChainsOverrides(t *testing.T) {
	cfg := &baseConfiguration{ChainID: beacon.DefaultChainID, RPCURL: "http://localhost:8545"}
	chains := cfg.chains()
	require.Len(t, chains, 2)
	assert.Equal(t, "http://localhost:8545", chains[1].RPCURL)
	assert.Equal(t, beacon.DefaultChains()[1].ContractAddress, chains[1].ContractAddress)

	cfg = &baseConfiguration{ChainID: 31337, RPCURL: "http://localhost:8545", ContractAddress: "0x5FbDB2315678afecb367f032d93F642f64180aa3"}
	chains = cfg.chains()
	require.Len(t, chains, 3)
	assert.Equal(t, uint64(31337), chains[2].ChainID)
	require.NoError(t, chains[2].Validate())

	cfg = &baseConfiguration{ChainID: 31337}
	assert.Len(t, cfg.chains(), 2)
}

func TestNewLogger(t *testing.T) {
	_, err := newLogger(io.Discard, "debug", "json")
	require.NoError(t, err)
	_, err = newLogger(io.Discard, "debug", "xml")
	require.Error(t, err)
}
