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
	"strings"

	errorsmod "cosmossdk.io/errors"
	"github.com/rs/zerolog"

	"github.com/sage-x-project/sage-reclaim-go/pkg/claim"
	"github.com/sage-x-project/sage-reclaim-go/pkg/signer"
	"github.com/sage-x-project/sage-reclaim-go/pkg/witness"
)

// DefaultProofVerifier implements ProofVerifier. It holds no per-proof
// state and is safe for concurrent use.
type DefaultProofVerifier struct {
	resolver    BeaconResolver
	recoverer   signer.SignerRecoverer
	log         zerolog.Logger
	strict      bool
	concurrency int
}

// NewDefaultProofVerifier creates a verifier resolving witness rosters with
// resolver. A nil resolver restricts the verifier to manual-verify proofs.
func NewDefaultProofVerifier(resolver BeaconResolver, opts ...Option) *DefaultProofVerifier {
	v := &DefaultProofVerifier{
		resolver:    resolver,
		recoverer:   signer.NewRecoverer(),
		log:         zerolog.Nop(),
		concurrency: defaultConcurrency(),
	}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// VerifyProof verifies the proof.
func (v *DefaultProofVerifier) VerifyProof(ctx context.Context, proof *claim.Proof) (bool, error) {
	res, err := v.VerifyProofDetailed(ctx, proof)
	if err != nil {
		return false, err
	}
	return res.Valid, nil
}

// VerifyProofDetailed runs the verification gates in order: signatures
// present, expected witnesses resolved, identifier recomputed, signatures
// decoded, signers recovered, witness coverage checked.
func (v *DefaultProofVerifier) VerifyProofDetailed(ctx context.Context, proof *claim.Proof) (*Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}
	if err := proof.Validate(); err != nil {
		return nil, err
	}

	identifier := proof.CleanIdentifier()
	res := &Result{
		Identifier: identifier,
		Epoch:      proof.ClaimData.Epoch,
	}

	expected, manual, err := v.expectedWitnesses(ctx, proof)
	if err != nil {
		return nil, err
	}
	res.Expected = expected
	res.Manual = manual

	calculated := claim.Identifier(proof.ClaimData.ClaimInfo())
	if calculated != identifier {
		return nil, errorsmod.Wrapf(claim.ErrIdentifierMismatch, "calculated %s, declared %s", calculated, identifier)
	}

	signed, err := proof.SignedClaim()
	if err != nil {
		return nil, err
	}
	signers, err := v.recoverer.RecoverSigners(signed)
	if err != nil {
		return nil, errorsmod.Wrap(err, "failed to recover signers")
	}
	res.Signers = signers

	res.Missing, res.Extra = compareWitnesses(expected, signers)

	logger := v.log.With().Str("identifier", identifier).Uint64("epoch", res.Epoch).Logger()
	if len(res.Missing) > 0 {
		logger.Info().Strs("missing", res.Missing).Msg("claim validation failed: missing signatures")
		return res, nil
	}
	if len(res.Extra) > 0 {
		if v.strict {
			logger.Info().Strs("extra", res.Extra).Msg("claim validation failed: unexpected signers")
			return res, nil
		}
		logger.Debug().Strs("extra", res.Extra).Msg("tolerating signatures from outside the witness set")
	}

	// a lookup cancelled mid-flight must not end up accepted
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}
	res.Valid = true
	return res, nil
}

// expectedWitnesses returns the addresses that must have signed the claim.
// Selection is seeded with the identifier exactly as declared, quotes
// included, so every verifier of the proof draws the same witnesses.
func (v *DefaultProofVerifier) expectedWitnesses(ctx context.Context, proof *claim.Proof) ([]string, bool, error) {
	if w, ok := proof.ManualWitness(); ok {
		return []string{strings.ToLower(w.ID)}, true, nil
	}

	if v.resolver == nil {
		return nil, false, errorsmod.Wrap(claim.ErrUnsupportedChain, "no beacon resolver configured")
	}

	epoch := proof.ClaimData.Epoch
	state, err := v.resolver.BeaconState(ctx, epoch)
	if err != nil {
		return nil, false, fmt.Errorf("failed to resolve beacon state for epoch %d: %w", epoch, err)
	}
	if state == nil {
		return nil, false, errorsmod.Wrapf(claim.ErrEpochNotFound, "epoch %d", epoch)
	}
	if state.Epoch != epoch {
		return nil, false, errorsmod.Wrapf(claim.ErrEpochMismatch, "requested %d, got %d", epoch, state.Epoch)
	}

	selected, err := witness.ForClaim(state, proof.Identifier, proof.ClaimData.TimestampS)
	if err != nil {
		return nil, false, err
	}
	return witness.Addresses(selected), false, nil
}

// compareWitnesses returns the expected witnesses that did not sign and the
// signers that were not expected. Both are compared as sets.
func compareWitnesses(expected, signers []string) (missing, extra []string) {
	signed := make(map[string]struct{}, len(signers))
	for _, s := range signers {
		signed[s] = struct{}{}
	}
	wanted := make(map[string]struct{}, len(expected))
	for _, e := range expected {
		if _, dup := wanted[e]; dup {
			continue
		}
		wanted[e] = struct{}{}
		if _, ok := signed[e]; !ok {
			missing = append(missing, e)
		}
	}
	reported := make(map[string]struct{})
	for _, s := range signers {
		if _, ok := wanted[s]; ok {
			continue
		}
		if _, dup := reported[s]; dup {
			continue
		}
		reported[s] = struct{}{}
		extra = append(extra, s)
	}
	return missing, extra
}
