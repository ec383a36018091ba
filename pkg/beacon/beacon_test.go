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
	"errors"
	"math"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sage-x-project/sage-reclaim-go/pkg/claim"
)

func TestNewBeaconValidation(t *testing.T) {
	_, err := NewBeacon(ChainConfig{ChainID: 1, ContractAddress: "nope", RPCURL: "http://x"}, newFakeRegistry())
	require.Error(t, err)

	_, err = NewBeacon(sepolia(), nil)
	require.Error(t, err)
}

func TestBeaconState(t *testing.T) {
	f := newFakeRegistry()
	f.addEpoch(1, 1, 1700000000, witnessA)
	f.addEpoch(2, 2, 1700003600, witnessA, witnessB)
	b := newTestBeacon(t, f)

	state, err := b.BeaconState(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, uint64(1), state.Epoch)
	assert.Equal(t, uint64(1), state.WitnessesRequiredForClaim)
	require.Len(t, state.Witnesses, 1)

	state, err = b.BeaconState(context.Background(), 2)
	require.NoError(t, err)
	assert.Equal(t, uint64(2), state.Epoch)
	assert.Len(t, state.Witnesses, 2)
}

func TestBeaconStateCached(t *testing.T) {
	f := newFakeRegistry()
	f.addEpoch(4, 1, 1700000000, witnessA)
	b := newTestBeacon(t, f)

	first, err := b.BeaconState(context.Background(), 4)
	require.NoError(t, err)
	first.Witnesses[0].ID = "mutated"

	second, err := b.BeaconState(context.Background(), 4)
	require.NoError(t, err)
	assert.Equal(t, int32(1), f.calls.Load())
	assert.NotEqual(t, "mutated", second.Witnesses[0].ID)
}

func TestCurrentState(t *testing.T) {
	f := newFakeRegistry()
	f.addEpoch(1, 1, 1700000000, witnessA)
	f.addEpoch(5, 1, 1700010000, witnessB)
	b := newTestBeacon(t, f)

	state, err := b.CurrentState(context.Background())
	require.NoError(t, err)
	assert.Equal(t, uint64(5), state.Epoch)

	// The current epoch is re-read every time but lands in the cache by number.
	_, err = b.CurrentState(context.Background())
	require.NoError(t, err)
	_, err = b.BeaconState(context.Background(), 5)
	require.NoError(t, err)
	assert.Equal(t, int32(2), f.calls.Load())
}

func TestBeaconStateNotFound(t *testing.T) {
	b := newTestBeacon(t, newFakeRegistry())

	_, err := b.BeaconState(context.Background(), 9)
	require.ErrorIs(t, err, claim.ErrEpochNotFound)

	_, err = b.BeaconState(context.Background(), math.MaxUint32+1)
	require.ErrorIs(t, err, claim.ErrEpochNotFound)
}

func TestBeaconStateMismatch(t *testing.T) {
	f := newFakeRegistry()
	f.addEpoch(3, 1, 1700000000, witnessA)
	tuple := f.epochs[3]
	f.epochs[8] = tuple
	b := newTestBeacon(t, f)

	_, err := b.BeaconState(context.Background(), 8)
	require.ErrorIs(t, err, claim.ErrEpochMismatch)
}

func TestBeaconStateTransportError(t *testing.T) {
	f := newFakeRegistry()
	f.err = errors.New("connection refused")
	b := newTestBeacon(t, f)

	_, err := b.BeaconState(context.Background(), 1)
	require.ErrorIs(t, err, claim.ErrTransport)
	assert.Contains(t, err.Error(), "connection refused")
}

func TestBeaconStateGarbageResponse(t *testing.T) {
	f := newFakeRegistry()
	f.raw = []byte{0x01, 0x02}
	b := newTestBeacon(t, f)

	_, err := b.BeaconState(context.Background(), 1)
	require.ErrorIs(t, err, claim.ErrTransport)
}

func TestBeaconStateContextCancelled(t *testing.T) {
	f := newFakeRegistry()
	f.addEpoch(1, 1, 1700000000, witnessA)
	f.gate = make(chan struct{})
	f.entered = make(chan struct{}, 1)
	b := newTestBeacon(t, f)

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		<-f.entered
		cancel()
	}()

	_, err := b.BeaconState(ctx, 1)
	require.ErrorIs(t, err, context.Canceled)
	close(f.gate)
}

func TestBeaconStateCollapsesConcurrentLookups(t *testing.T) {
	f := newFakeRegistry()
	f.addEpoch(6, 1, 1700000000, witnessA)
	f.gate = make(chan struct{})
	b := newTestBeacon(t, f)

	const callers = 8
	var wg sync.WaitGroup
	errs := make([]error, callers)
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = b.BeaconState(context.Background(), 6)
		}(i)
	}

	time.Sleep(50 * time.Millisecond)
	close(f.gate)
	wg.Wait()

	for _, err := range errs {
		require.NoError(t, err)
	}
	assert.Equal(t, int32(1), f.calls.Load())
}

func TestBeaconStateCancelledCallerDoesNotFailSharedLookup(t *testing.T) {
	f := newFakeRegistry()
	f.addEpoch(3, 1, 1700000000, witnessA, witnessB)
	f.gate = make(chan struct{})
	f.entered = make(chan struct{}, 1)
	b := newTestBeacon(t, f)

	ctxA, cancelA := context.WithCancel(context.Background())
	errA := make(chan error, 1)
	go func() {
		_, err := b.BeaconState(ctxA, 3)
		errA <- err
	}()
	<-f.entered

	type result struct {
		state *claim.BeaconState
		err   error
	}
	resB := make(chan result, 1)
	go func() {
		state, err := b.BeaconState(context.Background(), 3)
		resB <- result{state, err}
	}()
	// let the second caller join the in-flight lookup
	time.Sleep(50 * time.Millisecond)

	cancelA()
	require.ErrorIs(t, <-errA, context.Canceled)

	close(f.gate)
	got := <-resB
	require.NoError(t, got.err)
	assert.Equal(t, uint64(3), got.state.Epoch)
	assert.Len(t, got.state.Witnesses, 2)
	assert.Equal(t, int32(1), f.calls.Load())
}

func TestBeaconStateFetchTimeout(t *testing.T) {
	f := newFakeRegistry()
	f.addEpoch(2, 1, 1700000000, witnessA)
	f.gate = make(chan struct{})
	defer close(f.gate)
	b := newTestBeacon(t, f, WithFetchTimeout(20*time.Millisecond))

	_, err := b.BeaconState(context.Background(), 2)
	require.Error(t, err)
	assert.ErrorIs(t, err, claim.ErrTransport)
	assert.Contains(t, err.Error(), context.DeadlineExceeded.Error())
}

func TestBeaconClose(t *testing.T) {
	f := newFakeRegistry()
	b := newTestBeacon(t, f)
	b.Close()
	assert.True(t, f.closed.Load())
}
