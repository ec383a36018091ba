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

package beacon

import (
	"time"

	"github.com/rs/zerolog"
)

// DefaultFetchTimeout bounds a single registry call made by a Beacon.
const DefaultFetchTimeout = 30 * time.Second

type options struct {
	log          zerolog.Logger
	dial         Dialer
	defaultChain uint64
	fetchTimeout time.Duration
}

func defaultOptions() options {
	return options{
		log:          zerolog.Nop(),
		dial:         DialEthClient,
		defaultChain: DefaultChainID,
		fetchTimeout: DefaultFetchTimeout,
	}
}

// Option configures a Resolver or a Beacon.
type Option func(*options)

// WithLogger sets the logger.
func WithLogger(log zerolog.Logger) Option {
	return func(o *options) {
		o.log = log
	}
}

// WithDialer replaces the RPC dialer. Tests use it to inject fake callers.
func WithDialer(d Dialer) Option {
	return func(o *options) {
		if d != nil {
			o.dial = d
		}
	}
}

// WithDefaultChain selects the chain Resolver.BeaconState reads from.
func WithDefaultChain(chainID uint64) Option {
	return func(o *options) {
		o.defaultChain = chainID
	}
}

// WithFetchTimeout bounds each registry call. Non-positive values are ignored.
func WithFetchTimeout(d time.Duration) Option {
	return func(o *options) {
		if d > 0 {
			o.fetchTimeout = d
		}
	}
}
