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

// Package signer signs attestation claims and recovers witness addresses
// from claim signatures.
//
// # Sign Message
//
// Witnesses sign the claim's canonical sign data:
//
//	identifier + "\n" + owner + "\n" + timestampS + "\n" + epoch
//
// hashed with the Ethereum personal message scheme:
//
//	keccak256("\x19Ethereum Signed Message:\n" + len(message) + message)
//
// # Recovering Signers
//
// Signatures are 65 bytes (r || s || v). The recovery id may be given in
// raw (0/1) or Ethereum (27/28) form:
//
//	addr, err := signer.RecoverSigner(&proof.ClaimData, sig)
//	if err != nil {
//	    // claim.ErrSignatureFormat or claim.ErrSignerRecovery
//	}
//
// Batches recover in input order and fail as a whole:
//
//	addrs, err := signer.NewRecoverer().RecoverSigners(signedClaim)
//
// # Signing Claims
//
// KeySigner produces signatures in the format witnesses use, which is
// useful for manual-verify proofs and tests:
//
//	s, _ := signer.NewKeySignerFromHex(privateKeyHex)
//	sig, err := s.SignClaim(&claimData)
//	proof.Signatures = append(proof.Signatures, hexutil.Encode(sig))
//
// Addresses are always returned as lowercase 0x-prefixed hex.
package signer
