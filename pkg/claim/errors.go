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
	errorsmod "cosmossdk.io/errors"
)

// Codespace is the error codespace shared by every verification error.
const Codespace = "reclaim"

// Verification error kinds. A proof that was evaluated but lacks required
// witness signatures is not an error; it is reported as an invalid result.
var (
	ErrNoSignatures          = errorsmod.Register(Codespace, 2, "no signatures")
	ErrIdentifierMismatch    = errorsmod.Register(Codespace, 3, "identifier mismatch")
	ErrSignatureDecode       = errorsmod.Register(Codespace, 4, "failed to decode signature hex")
	ErrSignatureFormat       = errorsmod.Register(Codespace, 5, "invalid signature format")
	ErrSignerRecovery        = errorsmod.Register(Codespace, 6, "failed to recover signer")
	ErrEpochMismatch         = errorsmod.Register(Codespace, 7, "beacon does not have state for the given epoch")
	ErrEpochNotFound         = errorsmod.Register(Codespace, 8, "epoch not found")
	ErrUnsupportedChain      = errorsmod.Register(Codespace, 9, "unsupported chain")
	ErrTransport             = errorsmod.Register(Codespace, 10, "beacon transport failure")
	ErrInsufficientWitnesses = errorsmod.Register(Codespace, 11, "not enough witnesses in roster")
	ErrInvalidProof          = errorsmod.Register(Codespace, 12, "invalid proof")
)
