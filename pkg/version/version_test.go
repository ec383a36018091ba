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

package version

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVersionConstants(t *testing.T) {
	// Verify version constants are not empty
	assert.NotEmpty(t, Version, "Version should not be empty")
	assert.NotEmpty(t, ProtocolVersion, "ProtocolVersion should not be empty")
	assert.NotEmpty(t, RegistryABIVersion, "RegistryABIVersion should not be empty")

	// Verify expected values
	assert.Equal(t, "0.3.0-dev", Version)
	assert.Equal(t, "2", ProtocolVersion)
	assert.Equal(t, "fetchEpoch(uint32)", RegistryABIVersion)
}

func TestGet(t *testing.T) {
	info := Get()

	assert.Equal(t, Version, info.SageReclaimVersion)
	assert.Equal(t, ProtocolVersion, info.ProtocolVersion)
	assert.Equal(t, RegistryABIVersion, info.RegistryABIVersion)
}

func TestInfoStruct(t *testing.T) {
	// Test that Info struct can be created manually
	info := Info{
		SageReclaimVersion: "test-version",
		ProtocolVersion:    "2",
		RegistryABIVersion: "fetchEpoch(uint32)",
	}

	assert.Equal(t, "test-version", info.SageReclaimVersion)
	assert.Equal(t, "2", info.ProtocolVersion)
	assert.Equal(t, "fetchEpoch(uint32)", info.RegistryABIVersion)
}
