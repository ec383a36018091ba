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

// Package version reports the build and protocol versions of sage-reclaim-go.
package version

const (
	// Version is the current version of sage-reclaim-go
	Version = "0.3.0-dev"

	// ProtocolVersion is the Reclaim proof format this library verifies
	ProtocolVersion = "2"

	// RegistryABIVersion identifies the witness registry contract interface
	RegistryABIVersion = "fetchEpoch(uint32)"
)

// Info contains detailed version information
type Info struct {
	SageReclaimVersion string `json:"version"`
	ProtocolVersion    string `json:"protocolVersion"`
	RegistryABIVersion string `json:"registryAbi"`
}

// Get returns detailed version information
func Get() Info {
	return Info{
		SageReclaimVersion: Version,
		ProtocolVersion:    ProtocolVersion,
		RegistryABIVersion: RegistryABIVersion,
	}
}
