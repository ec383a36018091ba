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
	"encoding/json"

	errorsmod "cosmossdk.io/errors"
)

// Context is the structured content proof producers put in the claim
// context string.
type Context struct {
	ContextAddress      string            `json:"contextAddress,omitempty"`
	ContextMessage      string            `json:"contextMessage,omitempty"`
	ExtractedParameters map[string]string `json:"extractedParameters,omitempty"`
	ProviderHash        string            `json:"providerHash,omitempty"`
}

// ParseContext decodes the claim context. An empty context yields a zero
// Context.
func (d *ProviderClaimData) ParseContext() (*Context, error) {
	var c Context
	if d.Context == "" {
		return &c, nil
	}
	if err := json.Unmarshal([]byte(d.Context), &c); err != nil {
		return nil, errorsmod.Wrapf(ErrInvalidProof, "decoding claim context: %v", err)
	}
	return &c, nil
}
