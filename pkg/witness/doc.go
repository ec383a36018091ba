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

// Package witness selects the witnesses expected to attest a claim.
//
// The selection is a deterministic sample without replacement seeded by
// keccak256(identifier + "\n" + epoch + "\n" + required + "\n" + timestampS).
// Every verifier recomputes the same subset from the same inputs, so the
// algorithm must be reproduced exactly, including the swap-remove that
// reorders the remaining roster after each draw:
//
//	state, _ := beacon.BeaconState(ctx, claimData.Epoch)
//	selected, err := witness.ForClaim(state, identifier, claimData.TimestampS)
//	expected := witness.Addresses(selected)
package witness
