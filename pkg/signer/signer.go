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

package signer

import (
	"github.com/sage-x-project/sage-reclaim-go/pkg/claim"
)

// ClaimSigner signs claims on behalf of a witness
type ClaimSigner interface {
	// SignClaim signs the canonical message of the claim and returns the
	// 65-byte r||s||v signature
	SignClaim(data *claim.ProviderClaimData) ([]byte, error)

	// Address returns the lowercase hex address signatures recover to
	Address() string
}

// SignerRecoverer recovers witness addresses from claim signatures
type SignerRecoverer interface {
	// RecoverSigners returns one address per signature, in input order.
	// A failure on any signature fails the whole batch.
	RecoverSigners(signed *claim.SignedClaim) ([]string, error)
}
