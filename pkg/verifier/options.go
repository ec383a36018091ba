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
	"runtime"

	"github.com/rs/zerolog"

	"github.com/sage-x-project/sage-reclaim-go/pkg/signer"
)

// Option configures a DefaultProofVerifier
type Option func(*DefaultProofVerifier)

// WithLogger sets the logger used to report rejected proofs
func WithLogger(log zerolog.Logger) Option {
	return func(v *DefaultProofVerifier) {
		v.log = log
	}
}

// WithRecoverer replaces the signer recoverer
func WithRecoverer(r signer.SignerRecoverer) Option {
	return func(v *DefaultProofVerifier) {
		if r != nil {
			v.recoverer = r
		}
	}
}

// WithStrictSigners makes signatures from addresses outside the expected
// witness set invalidate the proof. By default they are tolerated.
func WithStrictSigners() Option {
	return func(v *DefaultProofVerifier) {
		v.strict = true
	}
}

// WithConcurrency limits the number of proofs VerifyProofs evaluates at once
func WithConcurrency(n int) Option {
	return func(v *DefaultProofVerifier) {
		if n > 0 {
			v.concurrency = n
		}
	}
}

func defaultConcurrency() int {
	return runtime.NumCPU()
}
