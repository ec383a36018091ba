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
	"math"
	"strconv"
	"sync"
	"time"

	errorsmod "cosmossdk.io/errors"
	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/rs/zerolog"
	"golang.org/x/sync/singleflight"

	"github.com/sage-x-project/sage-reclaim-go/pkg/claim"
)

// Beacon reads epoch states from the witness registry of a single chain.
// Past epochs never change, so every state fetched by number is cached.
type Beacon struct {
	chain    ChainConfig
	contract common.Address
	caller   ContractCaller
	log      zerolog.Logger
	timeout  time.Duration

	mu     sync.RWMutex
	states map[uint64]*claim.BeaconState
	group  singleflight.Group
}

// NewBeacon binds chain's registry contract to caller.
func NewBeacon(chain ChainConfig, caller ContractCaller, opts ...Option) (*Beacon, error) {
	if err := chain.Validate(); err != nil {
		return nil, err
	}
	if caller == nil {
		return nil, fmt.Errorf("chain %s: contract caller is nil", ChainKey(chain.ChainID))
	}
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Beacon{
		chain:    chain,
		contract: common.HexToAddress(chain.ContractAddress),
		caller:   caller,
		log:      o.log.With().Str("chain", ChainKey(chain.ChainID)).Logger(),
		timeout:  o.fetchTimeout,
		states:   make(map[uint64]*claim.BeaconState),
	}, nil
}

// Chain returns the configuration the beacon was built from.
func (b *Beacon) Chain() ChainConfig {
	return b.chain
}

// BeaconState returns the roster and quorum of epoch. Epoch 0 asks the
// contract for the current epoch and is never served from cache.
//
// Concurrent lookups of the same epoch share one contract call. That call
// is detached from every caller's context and bounded by the fetch timeout
// instead, so one caller giving up does not fail the others.
func (b *Beacon) BeaconState(ctx context.Context, epoch uint64) (*claim.BeaconState, error) {
	if epoch > math.MaxUint32 {
		return nil, errorsmod.Wrapf(claim.ErrEpochNotFound, "epoch %d exceeds uint32", epoch)
	}
	if epoch != 0 {
		b.mu.RLock()
		state, ok := b.states[epoch]
		b.mu.RUnlock()
		if ok {
			return cloneState(state), nil
		}
	}

	ch := b.group.DoChan(strconv.FormatUint(epoch, 10), func() (any, error) {
		fetchCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), b.timeout)
		defer cancel()
		return b.fetch(fetchCtx, epoch)
	})
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("context error: %w", ctx.Err())
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}
		return cloneState(res.Val.(*claim.BeaconState)), nil
	}
}

// CurrentState returns the state of the epoch the contract considers current.
func (b *Beacon) CurrentState(ctx context.Context) (*claim.BeaconState, error) {
	return b.BeaconState(ctx, 0)
}

// Close releases the underlying RPC connection.
func (b *Beacon) Close() {
	closeCaller(b.caller)
}

func (b *Beacon) fetch(ctx context.Context, epoch uint64) (*claim.BeaconState, error) {
	input, err := packFetchEpoch(uint32(epoch))
	if err != nil {
		return nil, fmt.Errorf("pack fetchEpoch: %w", err)
	}

	out, err := b.caller.CallContract(ctx, ethereum.CallMsg{To: &b.contract, Data: input}, nil)
	if err != nil {
		b.log.Warn().Err(err).Uint64("epoch", epoch).Msg("fetchEpoch call failed")
		return nil, errorsmod.Wrapf(claim.ErrTransport, "fetchEpoch(%d): %v", epoch, err)
	}
	decoded, err := unpackFetchEpoch(out)
	if err != nil {
		if errorsmod.IsOf(err, claim.ErrTransport) {
			return nil, err
		}
		return nil, errorsmod.Wrapf(claim.ErrTransport, "decode fetchEpoch(%d): %v", epoch, err)
	}
	state, err := decoded.toState()
	if err != nil {
		return nil, err
	}
	if state.Epoch == 0 {
		return nil, errorsmod.Wrapf(claim.ErrEpochNotFound, "epoch %d on chain %s", epoch, ChainKey(b.chain.ChainID))
	}
	if epoch != 0 && state.Epoch != epoch {
		return nil, errorsmod.Wrapf(claim.ErrEpochMismatch, "requested %d, contract returned %d", epoch, state.Epoch)
	}

	b.mu.Lock()
	b.states[state.Epoch] = state
	b.mu.Unlock()

	b.log.Debug().
		Uint64("epoch", state.Epoch).
		Int("witnesses", len(state.Witnesses)).
		Uint64("required", state.WitnessesRequiredForClaim).
		Msg("fetched beacon state")
	return state, nil
}

func cloneState(s *claim.BeaconState) *claim.BeaconState {
	c := *s
	c.Witnesses = append([]claim.WitnessData(nil), s.Witnesses...)
	return &c
}
