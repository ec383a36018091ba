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

package verifier

import (
	"context"

	"github.com/sage-x-project/sage-reclaim-go/pkg/claim"
)

// ProofVerifier verifies attestation proofs
type ProofVerifier interface {
	// VerifyProof reports whether the proof is attested by every expected
	// witness. An error means the proof could not be evaluated; false means
	// it was evaluated and is not valid.
	VerifyProof(ctx context.Context, proof *claim.Proof) (bool, error)

	// VerifyProofDetailed is VerifyProof with the witness sets that led to
	// the decision
	VerifyProofDetailed(ctx context.Context, proof *claim.Proof) (*Result, error)
}

// Result describes an evaluated proof
type Result struct {
	Valid      bool     `json:"valid"`
	Identifier string   `json:"identifier"`
	Epoch      uint64   `json:"epoch"`
	Manual     bool     `json:"manual"`
	Expected   []string `json:"expectedWitnesses"`
	Signers    []string `json:"signers"`
	Missing    []string `json:"missingWitnesses,omitempty"`
	Extra      []string `json:"extraSigners,omitempty"`
}
