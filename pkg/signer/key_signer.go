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
	"crypto/ecdsa"
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/crypto"

	"github.com/sage-x-project/sage-reclaim-go/pkg/claim"
)

// KeySigner implements ClaimSigner with a secp256k1 private key
type KeySigner struct {
	key     *ecdsa.PrivateKey
	address string
}

// NewKeySigner creates a KeySigner for the given private key
func NewKeySigner(key *ecdsa.PrivateKey) (*KeySigner, error) {
	if key == nil {
		return nil, fmt.Errorf("private key cannot be nil")
	}
	return &KeySigner{
		key:     key,
		address: strings.ToLower(crypto.PubkeyToAddress(key.PublicKey).Hex()),
	}, nil
}

// NewKeySignerFromHex parses a hex encoded private key, with or without 0x
func NewKeySignerFromHex(hexKey string) (*KeySigner, error) {
	key, err := crypto.HexToECDSA(strings.TrimPrefix(hexKey, "0x"))
	if err != nil {
		return nil, fmt.Errorf("failed to parse private key: %w", err)
	}
	return NewKeySigner(key)
}

// GenerateKeySigner creates a KeySigner with a fresh random key
func GenerateKeySigner() (*KeySigner, error) {
	key, err := crypto.GenerateKey()
	if err != nil {
		return nil, fmt.Errorf("failed to generate key: %w", err)
	}
	return NewKeySigner(key)
}

// SignClaim signs the personal-message hash of the claim sign data. The
// recovery id is emitted in Ethereum form (27/28).
func (s *KeySigner) SignClaim(data *claim.ProviderClaimData) ([]byte, error) {
	if data == nil {
		return nil, fmt.Errorf("claim data cannot be nil")
	}

	sig, err := crypto.Sign(MessageHash(data), s.key)
	if err != nil {
		return nil, fmt.Errorf("failed to sign: %w", err)
	}
	sig[recoveryIDIndex] += 27
	return sig, nil
}

// Address returns the lowercase hex address of the key
func (s *KeySigner) Address() string {
	return s.address
}
