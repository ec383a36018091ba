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
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/sage-x-project/sage-reclaim-go/pkg/claim"
)

// VerifyProofs verifies proofs concurrently and returns their results in
// input order. The first evaluation error cancels the remaining work and is
// returned.
func (v *DefaultProofVerifier) VerifyProofs(ctx context.Context, proofs []*claim.Proof) ([]bool, error) {
	results := make([]bool, len(proofs))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(v.concurrency)
	for i, p := range proofs {
		g.Go(func() error {
			ok, err := v.VerifyProof(gctx, p)
			if err != nil {
				return fmt.Errorf("proof %d: %w", i, err)
			}
			results[i] = ok
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
