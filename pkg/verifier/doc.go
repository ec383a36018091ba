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

// Package verifier decides whether an attestation proof was signed by the
// witnesses the protocol designates for its claim.
//
// # Proof Verification
//
// The DefaultProofVerifier resolves the witness roster of the claim's epoch
// through a BeaconResolver, recomputes the claim identifier, recovers the
// signers and checks that every expected witness signed:
//
//	b, err := beacon.NewResolver(beacon.DefaultChains()).Beacon(ctx, beacon.DefaultChainID)
//	v := verifier.NewDefaultProofVerifier(b, verifier.WithLogger(log))
//
//	ok, err := v.VerifyProof(ctx, proof)
//	switch {
//	case err != nil:
//	    // could not be evaluated (claim.ErrIdentifierMismatch, claim.ErrTransport, ...)
//	case !ok:
//	    // evaluated, but an expected witness signature is missing
//	}
//
// # Manual Verification
//
// A proof whose first witness has the url "manual-verify" is checked against
// that witness id alone, without consulting the resolver. This is an escape
// hatch for trusted single-attestor setups, not proof of witness legitimacy.
//
// # Extra Signers
//
// Signatures from addresses outside the expected set are tolerated by
// default. WithStrictSigners makes them invalidate the proof.
//
// # Batches
//
// VerifyProofs evaluates several proofs concurrently and returns results
// in input order.
package verifier
