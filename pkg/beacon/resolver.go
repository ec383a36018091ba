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
	"context"
	"fmt"
	"sync"

	errorsmod "cosmossdk.io/errors"
	"github.com/rs/zerolog"
	"golang.org/x/sync/singleflight"

	"github.com/sage-x-project/sage-reclaim-go/pkg/claim"
)

// Resolver hands out Beacons for every configured chain, dialing each RPC
// endpoint once on first use.
type Resolver struct {
	chains       map[uint64]ChainConfig
	dial         Dialer
	defaultChain uint64
	opts         []Option
	log          zerolog.Logger

	mu      sync.Mutex
	beacons map[uint64]*Beacon
	group   singleflight.Group
}

// NewResolver creates a Resolver for chains. A later entry with the same
// chain id replaces an earlier one.
func NewResolver(chains []ChainConfig, opts ...Option) *Resolver {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	byID := make(map[uint64]ChainConfig, len(chains))
	for _, c := range chains {
		byID[c.ChainID] = c
	}
	return &Resolver{
		chains:       byID,
		dial:         o.dial,
		defaultChain: o.defaultChain,
		opts:         opts,
		log:          o.log,
		beacons:      make(map[uint64]*Beacon),
	}
}

// Beacon returns the beacon bound to chainID, connecting on first use.
func (r *Resolver) Beacon(ctx context.Context, chainID uint64) (*Beacon, error) {
	cfg, ok := r.chains[chainID]
	if !ok {
		return nil, errorsmod.Wrapf(claim.ErrUnsupportedChain, "chain %s", ChainKey(chainID))
	}

	r.mu.Lock()
	b, ok := r.beacons[chainID]
	r.mu.Unlock()
	if ok {
		return b, nil
	}

	v, err, _ := r.group.Do(ChainKey(chainID), func() (any, error) {
		r.mu.Lock()
		existing, ok := r.beacons[chainID]
		r.mu.Unlock()
		if ok {
			return existing, nil
		}
		if err := cfg.Validate(); err != nil {
			return nil, errorsmod.Wrap(claim.ErrUnsupportedChain, err.Error())
		}

		caller, err := r.dial(ctx, cfg.RPCURL)
		if err != nil {
			r.log.Error().Err(err).Str("chain", ChainKey(chainID)).Msg("dial failed")
			return nil, errorsmod.Wrapf(claim.ErrTransport, "dial %s: %v", cfg.Name, err)
		}
		beacon, err := NewBeacon(cfg, caller, r.opts...)
		if err != nil {
			closeCaller(caller)
			return nil, err
		}

		r.mu.Lock()
		r.beacons[chainID] = beacon
		r.mu.Unlock()
		r.log.Info().Str("chain", ChainKey(chainID)).Str("name", cfg.Name).Msg("connected to witness registry")
		return beacon, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*Beacon), nil
}

// BeaconState reads epoch from the default chain.
func (r *Resolver) BeaconState(ctx context.Context, epoch uint64) (*claim.BeaconState, error) {
	b, err := r.Beacon(ctx, r.defaultChain)
	if err != nil {
		return nil, err
	}
	return b.BeaconState(ctx, epoch)
}

// Chains lists the configured chain ids.
func (r *Resolver) Chains() []uint64 {
	ids := make([]uint64, 0, len(r.chains))
	for id := range r.chains {
		ids = append(ids, id)
	}
	return ids
}

// Close closes every connected beacon.
func (r *Resolver) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for id, b := range r.beacons {
		b.Close()
		delete(r.beacons, id)
	}
	return nil
}

func (r *Resolver) String() string {
	return fmt.Sprintf("beacon.Resolver{default: %s, chains: %d}", ChainKey(r.defaultChain), len(r.chains))
}
