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

package claim

import (
	errorsmod "cosmossdk.io/errors"
)

// ManualVerifyURL marks a witness whose id is trusted as-is, without
// resolving the epoch roster.
const ManualVerifyURL = "manual-verify"

// ClaimInfo is the semantic content a claim identifier is derived from.
type ClaimInfo struct {
	Provider   string `json:"provider" cbor:"provider"`
	Parameters string `json:"parameters" cbor:"parameters"`
	Context    string `json:"context" cbor:"context"`
}

// ProviderClaimData is the claim exactly as the witnesses signed it.
type ProviderClaimData struct {
	Provider   string `json:"provider" cbor:"provider"`
	Parameters string `json:"parameters" cbor:"parameters"`
	Owner      string `json:"owner" cbor:"owner"`
	TimestampS uint64 `json:"timestampS" cbor:"timestampS"`
	Context    string `json:"context" cbor:"context"`
	Identifier string `json:"identifier" cbor:"identifier"`
	Epoch      uint64 `json:"epoch" cbor:"epoch"`
}

// ClaimInfo projects the fields the identifier is derived from.
func (d *ProviderClaimData) ClaimInfo() ClaimInfo {
	return ClaimInfo{
		Provider:   d.Provider,
		Parameters: d.Parameters,
		Context:    d.Context,
	}
}

// WitnessData identifies one attestor: its lowercase hex address and the
// endpoint it serves claims on.
type WitnessData struct {
	ID  string `json:"id" cbor:"id"`
	URL string `json:"url" cbor:"url"`
}

// IsManual reports whether the witness is the manual-trust sentinel.
func (w WitnessData) IsManual() bool {
	return w.URL == ManualVerifyURL
}

// Proof is the verification input: a signed claim plus the witnesses that
// were asked to attest it.
type Proof struct {
	Identifier string            `json:"identifier" cbor:"identifier"`
	ClaimData  ProviderClaimData `json:"claimData" cbor:"claimData"`
	Signatures []string          `json:"signatures" cbor:"signatures"`
	Witnesses  []WitnessData     `json:"witnesses" cbor:"witnesses"`
	PublicData map[string]string `json:"publicData,omitempty" cbor:"publicData,omitempty"`
}

// Validate performs the structural checks that do not need cryptography.
func (p *Proof) Validate() error {
	if p == nil {
		return errorsmod.Wrap(ErrInvalidProof, "proof is nil")
	}
	if len(p.Signatures) == 0 {
		return ErrNoSignatures
	}
	return nil
}

// CleanIdentifier returns the declared identifier without quote characters.
func (p *Proof) CleanIdentifier() string {
	return StripQuotes(p.Identifier)
}

// ManualWitness returns the first witness when it carries the manual-trust
// sentinel.
func (p *Proof) ManualWitness() (WitnessData, bool) {
	if len(p.Witnesses) == 0 || !p.Witnesses[0].IsManual() {
		return WitnessData{}, false
	}
	return p.Witnesses[0], true
}

// SignedClaim hex-decodes the signatures of the proof.
func (p *Proof) SignedClaim() (*SignedClaim, error) {
	signatures := make([][]byte, 0, len(p.Signatures))
	for i, sig := range p.Signatures {
		raw, err := DecodeHex(sig)
		if err != nil {
			return nil, errorsmod.Wrapf(ErrSignatureDecode, "signature %d: %v", i, err)
		}
		signatures = append(signatures, raw)
	}
	return &SignedClaim{
		ClaimData:  p.ClaimData,
		Signatures: signatures,
	}, nil
}

// SignedClaim is a claim with its raw signatures.
type SignedClaim struct {
	ClaimData  ProviderClaimData
	Signatures [][]byte
}

// BeaconState is the witness roster and quorum of one epoch.
type BeaconState struct {
	Witnesses                 []WitnessData `json:"witnesses" cbor:"witnesses"`
	Epoch                     uint64        `json:"epoch" cbor:"epoch"`
	WitnessesRequiredForClaim uint64        `json:"witnessesRequiredForClaim" cbor:"witnessesRequiredForClaim"`
	NextEpochTimestampS       uint64        `json:"nextEpochTimestampS" cbor:"nextEpochTimestampS"`
}
