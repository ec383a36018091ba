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

// BeaconResolver supplies the witness roster and quorum of an epoch.
// pkg/beacon.Beacon implements it on top of the witness registry contract.
type BeaconResolver interface {
	// BeaconState returns the state of the given epoch. The returned state's
	// Epoch must equal the requested one.
	BeaconState(ctx context.Context, epoch uint64) (*claim.BeaconState, error)
}
