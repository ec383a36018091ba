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

// Package claim defines the attestation claim data model and the pure
// functions built on it: identifier derivation, the canonical sign message
// and proof decoding.
//
// # Identifiers
//
// A claim identifier is derived from its semantic content, never asserted:
//
//	id := claim.Identifier(claim.ClaimInfo{
//	    Provider:   "http",
//	    Parameters: params,
//	    Context:    ctx,
//	})
//	// id == "0x" + hex(keccak256(provider + "\n" + parameters + "\n" + context))
//
// # Sign Message
//
// Witnesses sign SignData(claimData), the newline-joined identifier, owner,
// timestamp and epoch, using the Ethereum personal message scheme.
//
// # Errors
//
// Every verification error kind of the module is registered here under the
// "reclaim" codespace and can be matched with errors.Is.
package claim
