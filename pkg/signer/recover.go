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
	"strings"

	errorsmod "cosmossdk.io/errors"
	"github.com/ethereum/go-ethereum/accounts"
	"github.com/ethereum/go-ethereum/crypto"

	"github.com/sage-x-project/sage-reclaim-go/pkg/claim"
)

const (
	// SignatureLength is the expected length of an ECDSA signature (r||s||v)
	SignatureLength = 65
	// recoveryIDIndex is the byte position of the recovery ID (v) in the signature
	recoveryIDIndex = 64
)

// MessageHash returns the EIP-191 personal message hash of the claim sign data:
// keccak256("\x19Ethereum Signed Message:\n" + len(msg) + msg).
func MessageHash(data *claim.ProviderClaimData) []byte {
	return accounts.TextHash([]byte(claim.SignData(data)))
}

// RecoverSigner recovers the lowercase hex address that produced sig over the
// claim's sign data.
func RecoverSigner(data *claim.ProviderClaimData, sig []byte) (string, error) {
	if len(sig) != SignatureLength {
		return "", errorsmod.Wrapf(claim.ErrSignatureFormat, "expected %d bytes, got %d", SignatureLength, len(sig))
	}

	normalized, err := normalizeSignature(sig)
	if err != nil {
		return "", err
	}

	pub, err := crypto.SigToPub(MessageHash(data), normalized)
	if err != nil {
		return "", errorsmod.Wrap(claim.ErrSignerRecovery, err.Error())
	}
	if pub == nil {
		return "", errorsmod.Wrap(claim.ErrSignerRecovery, "recovered public key is nil")
	}
	return strings.ToLower(crypto.PubkeyToAddress(*pub).Hex()), nil
}

// Recoverer implements SignerRecoverer
type Recoverer struct{}

// NewRecoverer creates a new Recoverer
func NewRecoverer() *Recoverer {
	return &Recoverer{}
}

// RecoverSigners recovers the signer of every signature of the claim.
func (r *Recoverer) RecoverSigners(signed *claim.SignedClaim) ([]string, error) {
	if signed == nil {
		return nil, errorsmod.Wrap(claim.ErrInvalidProof, "signed claim is nil")
	}

	addresses := make([]string, 0, len(signed.Signatures))
	for i, sig := range signed.Signatures {
		addr, err := RecoverSigner(&signed.ClaimData, sig)
		if err != nil {
			return nil, errorsmod.Wrapf(err, "signature %d", i)
		}
		addresses = append(addresses, addr)
	}
	return addresses, nil
}

// normalizeSignature converts the ECDSA recovery ID (v) from Ethereum format (27/28)
// to raw format (0/1) expected by crypto.SigToPub.
func normalizeSignature(sig []byte) ([]byte, error) {
	normalized := make([]byte, SignatureLength)
	copy(normalized, sig)

	switch v := normalized[recoveryIDIndex]; v {
	case 0, 1:
	case 27, 28:
		normalized[recoveryIDIndex] = v - 27
	default:
		return nil, errorsmod.Wrapf(claim.ErrSignatureFormat, "invalid recovery id %d", v)
	}
	return normalized, nil
}
