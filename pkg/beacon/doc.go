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

// Package beacon reads witness rosters from the on-chain witness registry.
//
// A Beacon is bound to the registry contract of one chain and answers
// epoch lookups through the contract's fetchEpoch view; a Resolver keeps
// one Beacon per configured chain. Both satisfy verifier.BeaconResolver:
//
//	resolver := beacon.NewResolver(beacon.DefaultChains())
//	defer resolver.Close()
//	v := verifier.NewDefaultProofVerifier(resolver)
//
// Lookups of a given epoch are cached and concurrent lookups of the same
// epoch share one RPC call.
package beacon
