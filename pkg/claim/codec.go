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
	"bytes"
	"encoding/json"

	errorsmod "cosmossdk.io/errors"
	"github.com/fxamacker/cbor/v2"
)

// DecodeProof parses a JSON encoded proof. Unknown fields are ignored, proof
// producers attach extra data the verifier does not look at.
func DecodeProof(data []byte) (*Proof, error) {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return nil, errorsmod.Wrap(ErrInvalidProof, "empty document")
	}
	var p Proof
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, errorsmod.Wrapf(ErrInvalidProof, "decoding json: %v", err)
	}
	return &p, nil
}

// EncodeProofCBOR encodes the proof as CBOR using the JSON field names.
func EncodeProofCBOR(p *Proof) ([]byte, error) {
	return cbor.Marshal(p)
}

// DecodeProofCBOR parses a CBOR encoded proof.
func DecodeProofCBOR(data []byte) (*Proof, error) {
	if len(data) == 0 {
		return nil, errorsmod.Wrap(ErrInvalidProof, "empty document")
	}
	var p Proof
	if err := cbor.Unmarshal(data, &p); err != nil {
		return nil, errorsmod.Wrapf(ErrInvalidProof, "decoding cbor: %v", err)
	}
	return &p, nil
}
