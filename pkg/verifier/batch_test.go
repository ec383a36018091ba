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
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sage-x-project/sage-reclaim-go/pkg/claim"
	"github.com/sage-x-project/sage-reclaim-go/pkg/signer"
)

func TestVerifyProofs_PreservesOrder(t *testing.T) {
	network := newTestNetwork(t, 4, 6, 2)

	var proofs []*claim.Proof
	var want []bool
	for i := 0; i < 8; i++ {
		p := newTestProof(4)
		p.ClaimData.TimestampS += uint64(i)
		expected := network.expected(t, p)
		if i%3 == 0 {
			network.sign(t, p, expected[0])
			want = append(want, false)
		} else {
			network.sign(t, p, expected...)
			want = append(want, true)
		}
		proofs = append(proofs, p)
	}

	v := NewDefaultProofVerifier(network.resolver, WithConcurrency(3))
	got, err := v.VerifyProofs(context.Background(), proofs)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestVerifyProofs_Error(t *testing.T) {
	s, err := signer.GenerateKeySigner()
	require.NoError(t, err)

	good := manualProof(t, s)
	bad := manualProof(t, s)
	bad.Signatures = nil

	got, err := NewDefaultProofVerifier(nil).VerifyProofs(context.Background(), []*claim.Proof{good, bad})
	require.Error(t, err)
	assert.Nil(t, got)
	assert.ErrorIs(t, err, claim.ErrNoSignatures)
	assert.Contains(t, err.Error(), "proof 1")
}

func TestVerifyProofs_Empty(t *testing.T) {
	got, err := NewDefaultProofVerifier(nil).VerifyProofs(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, got)
}

// Benchmark manual-path verification of a single proof
func BenchmarkVerifyProofManual(b *testing.B) {
	s, err := signer.GenerateKeySigner()
	if err != nil {
		b.Fatal(err)
	}
	p := manualProof(b, s)
	v := NewDefaultProofVerifier(nil)
	ctx := context.Background()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = v.VerifyProof(ctx, p)
	}
}
