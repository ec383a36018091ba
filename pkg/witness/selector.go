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

package witness

import (
	"encoding/binary"
	"strconv"
	"strings"

	errorsmod "cosmossdk.io/errors"
	"github.com/ethereum/go-ethereum/crypto"

	"github.com/sage-x-project/sage-reclaim-go/pkg/claim"
)

// seedWindow is the number of digest bytes consumed per draw.
const seedWindow = 4

// Select deterministically picks required distinct witnesses from roster.
// The roster is not modified.
func Select(epoch uint64, identifier string, required uint64, timestampS uint64, roster []claim.WitnessData) ([]claim.WitnessData, error) {
	if required > uint64(len(roster)) {
		return nil, errorsmod.Wrapf(claim.ErrInsufficientWitnesses, "required %d, roster has %d", required, len(roster))
	}

	seed := strings.Join([]string{
		identifier,
		strconv.FormatUint(epoch, 10),
		strconv.FormatUint(required, 10),
		strconv.FormatUint(timestampS, 10),
	}, "\n")
	hash := crypto.Keccak256([]byte(seed))

	left := make([]claim.WitnessData, len(roster))
	copy(left, roster)
	selected := make([]claim.WitnessData, 0, required)

	offset := 0
	for i := uint64(0); i < required; i++ {
		idx := uint64(binary.BigEndian.Uint32(hash[offset:offset+seedWindow])) % uint64(len(left))
		selected = append(selected, left[idx])

		// swap with the last entry and shrink
		last := uint64(len(left) - 1)
		left[idx], left[last] = left[last], left[idx]
		left = left[:last]

		offset = (offset + seedWindow) % len(hash)
	}
	return selected, nil
}

// ForClaim selects the witnesses of state expected to sign the claim with
// the given identifier and timestamp.
func ForClaim(state *claim.BeaconState, identifier string, timestampS uint64) ([]claim.WitnessData, error) {
	if state == nil {
		return nil, errorsmod.Wrap(claim.ErrEpochNotFound, "beacon state is nil")
	}
	return Select(state.Epoch, identifier, state.WitnessesRequiredForClaim, timestampS, state.Witnesses)
}

// Addresses returns the lowercased ids of the witnesses, preserving order.
func Addresses(witnesses []claim.WitnessData) []string {
	out := make([]string, len(witnesses))
	for i, w := range witnesses {
		out[i] = strings.ToLower(w.ID)
	}
	return out
}
