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

package server

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
)

// DefaultMaxBodySize limits the size of a proof document.
const DefaultMaxBodySize int64 = 1 << 20

type options struct {
	log         zerolog.Logger
	registry    *prometheus.Registry
	maxBodySize int64
	corsOrigins []string
	timeout     time.Duration
}

// Option configures the handler returned by NewHandler
type Option func(*options)

// WithLogger sets the request logger
func WithLogger(log zerolog.Logger) Option {
	return func(o *options) {
		o.log = log
	}
}

// WithRegistry registers the handler metrics in reg and serves reg on /metrics.
func WithRegistry(reg *prometheus.Registry) Option {
	return func(o *options) {
		o.registry = reg
	}
}

// WithMaxBodySize limits request bodies to n bytes
func WithMaxBodySize(n int64) Option {
	return func(o *options) {
		if n > 0 {
			o.maxBodySize = n
		}
	}
}

// WithCORSOrigins sets the allowed CORS origins. The default allows any.
func WithCORSOrigins(origins ...string) Option {
	return func(o *options) {
		o.corsOrigins = origins
	}
}

// WithVerifyTimeout bounds the evaluation of a single proof, including the
// epoch lookup. Zero leaves it bounded only by the request context.
func WithVerifyTimeout(d time.Duration) Option {
	return func(o *options) {
		if d > 0 {
			o.timeout = d
		}
	}
}
