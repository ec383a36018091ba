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

// Package sagereclaim provides version information for sage-reclaim-go.
package sagereclaim

import "github.com/sage-x-project/sage-reclaim-go/pkg/version"

const (
	// Version is the current version of sage-reclaim-go
	Version = version.Version

	// ProtocolVersion is the Reclaim proof format this library verifies
	ProtocolVersion = version.ProtocolVersion
)

// VersionInfo contains detailed version information
type VersionInfo = version.Info

// GetVersionInfo returns detailed version information
func GetVersionInfo() VersionInfo {
	return version.Get()
}
