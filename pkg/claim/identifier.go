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
	"strconv"
	"strings"
)

// Identifier derives the canonical claim identifier:
// keccak256(provider + "\n" + parameters + "\n" + context) as 0x-hex.
func Identifier(info ClaimInfo) string {
	return Keccak256Hex(strings.Join([]string{info.Provider, info.Parameters, info.Context}, "\n"))
}

// SignData builds the message witnesses sign for a claim. It uses the
// identifier declared in the claim, not a recomputed one.
func SignData(data *ProviderClaimData) string {
	return strings.Join([]string{
		data.Identifier,
		data.Owner,
		strconv.FormatUint(data.TimestampS, 10),
		strconv.FormatUint(data.Epoch, 10),
	}, "\n")
}

// StripQuotes removes literal double quote characters, which some proof
// producers leave around the identifier.
func StripQuotes(s string) string {
	return strings.ReplaceAll(s, `"`, "")
}
