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

package beacon

import (
	"math/big"
	"strings"

	errorsmod "cosmossdk.io/errors"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"

	"github.com/sage-x-project/sage-reclaim-go/pkg/claim"
)

const fetchEpochMethod = "fetchEpoch"

// registryABI describes fetchEpoch of the witness registry. The epoch
// struct fields are declared as uint256 words: they are encoded identically
// to the contract's narrower integers and are range checked on decode.
const registryABI = `[{
	"type": "function",
	"name": "fetchEpoch",
	"stateMutability": "view",
	"inputs": [{"name": "epoch", "type": "uint32"}],
	"outputs": [{
		"name": "",
		"type": "tuple",
		"components": [
			{"name": "id", "type": "uint256"},
			{"name": "timestampStart", "type": "uint256"},
			{"name": "timestampEnd", "type": "uint256"},
			{"name": "witnesses", "type": "tuple[]", "components": [
				{"name": "addr", "type": "address"},
				{"name": "host", "type": "string"}
			]},
			{"name": "minimumWitnessesForClaimCreation", "type": "uint256"}
		]
	}]
}]`

var parsedRegistryABI = mustParseABI(registryABI)

func mustParseABI(def string) abi.ABI {
	parsed, err := abi.JSON(strings.NewReader(def))
	if err != nil {
		panic(err)
	}
	return parsed
}

// epochTuple mirrors the Epoch struct returned by fetchEpoch. Field names
// follow the ABI component names.
type epochTuple struct {
	Id                               *big.Int
	TimestampStart                   *big.Int
	TimestampEnd                     *big.Int
	Witnesses                        []witnessTuple
	MinimumWitnessesForClaimCreation *big.Int
}

type witnessTuple struct {
	Addr common.Address
	Host string
}

func packFetchEpoch(epoch uint32) ([]byte, error) {
	return parsedRegistryABI.Pack(fetchEpochMethod, epoch)
}

func unpackFetchEpoch(data []byte) (*epochTuple, error) {
	out, err := parsedRegistryABI.Unpack(fetchEpochMethod, data)
	if err != nil {
		return nil, err
	}
	if len(out) != 1 {
		return nil, errorsmod.Wrapf(claim.ErrTransport, "fetchEpoch returned %d values", len(out))
	}
	return abi.ConvertType(out[0], new(epochTuple)).(*epochTuple), nil
}

// toState converts the contract struct into a BeaconState.
func (e *epochTuple) toState() (*claim.BeaconState, error) {
	id, err := word64("id", e.Id)
	if err != nil {
		return nil, err
	}
	end, err := word64("timestampEnd", e.TimestampEnd)
	if err != nil {
		return nil, err
	}
	required, err := word64("minimumWitnessesForClaimCreation", e.MinimumWitnessesForClaimCreation)
	if err != nil {
		return nil, err
	}

	witnesses := make([]claim.WitnessData, len(e.Witnesses))
	for i, w := range e.Witnesses {
		witnesses[i] = claim.WitnessData{
			ID:  strings.ToLower(w.Addr.Hex()),
			URL: w.Host,
		}
	}
	return &claim.BeaconState{
		Witnesses:                 witnesses,
		Epoch:                     id,
		WitnessesRequiredForClaim: required,
		NextEpochTimestampS:       end,
	}, nil
}

func word64(name string, v *big.Int) (uint64, error) {
	if v == nil {
		return 0, errorsmod.Wrapf(claim.ErrTransport, "fetchEpoch: %s missing", name)
	}
	w, overflow := uint256.FromBig(v)
	if overflow || !w.IsUint64() {
		return 0, errorsmod.Wrapf(claim.ErrTransport, "fetchEpoch: %s out of range: %s", name, v)
	}
	return w.Uint64(), nil
}
