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
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/sage-x-project/sage-reclaim-go/pkg/claim"
	"github.com/sage-x-project/sage-reclaim-go/pkg/verifier"
)

type contextKey string

const (
	claimDataKey contextKey = "reclaim_claim_data"
	resultKey    contextKey = "reclaim_result"
)

// ErrProofRejected is passed to the error handler when a proof was evaluated
// and found not to be attested by its expected witnesses.
var ErrProofRejected = errors.New("proof rejected")

// ErrorHandler handles verification errors
type ErrorHandler func(w http.ResponseWriter, r *http.Request, err error)

// ProofAuthMiddleware admits requests whose body is a valid proof
type ProofAuthMiddleware struct {
	verifier     verifier.ProofVerifier
	errorHandler ErrorHandler
	optional     bool
	maxBodySize  int64
}

// NewProofAuthMiddleware creates a new proof authentication middleware
func NewProofAuthMiddleware(v verifier.ProofVerifier) *ProofAuthMiddleware {
	return &ProofAuthMiddleware{
		verifier:     v,
		errorHandler: defaultErrorHandler,
		maxBodySize:  DefaultMaxBodySize,
	}
}

// SetErrorHandler sets a custom error handler
func (m *ProofAuthMiddleware) SetErrorHandler(handler ErrorHandler) {
	m.errorHandler = handler
}

// SetOptional sets whether a proof is optional.
// If true, requests with an empty body are allowed to pass through
func (m *ProofAuthMiddleware) SetOptional(optional bool) {
	m.optional = optional
}

// Wrap wraps an HTTP handler with proof authentication
func (m *ProofAuthMiddleware) Wrap(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Skip verification for OPTIONS requests (CORS preflight)
		if r.Method == http.MethodOptions {
			next.ServeHTTP(w, r)
			return
		}

		var body []byte
		if r.Body != nil {
			var err error
			body, err = io.ReadAll(io.LimitReader(r.Body, m.maxBodySize+1))
			r.Body.Close()
			if err != nil {
				m.errorHandler(w, r, fmt.Errorf("reading body: %w", err))
				return
			}
			if int64(len(body)) > m.maxBodySize {
				m.errorHandler(w, r, fmt.Errorf("body exceeds %d bytes", m.maxBodySize))
				return
			}
		}

		if len(bytes.TrimSpace(body)) == 0 {
			if m.optional {
				r.Body = http.NoBody
				next.ServeHTTP(w, r)
				return
			}
			m.errorHandler(w, r, fmt.Errorf("missing proof"))
			return
		}

		proof, err := decodeProof(r.Header.Get(headerContentType), body)
		if err != nil {
			m.errorHandler(w, r, err)
			return
		}

		ctx := r.Context()
		result, err := m.verifier.VerifyProofDetailed(ctx, proof)
		if err != nil {
			m.errorHandler(w, r, fmt.Errorf("proof verification failed: %w", err))
			return
		}
		if !result.Valid {
			m.errorHandler(w, r, fmt.Errorf("%w: missing witnesses %v", ErrProofRejected, result.Missing))
			return
		}

		// Restore body for handler
		r.Body = io.NopCloser(bytes.NewReader(body))

		data := proof.ClaimData
		ctx = context.WithValue(ctx, claimDataKey, &data)
		ctx = context.WithValue(ctx, resultKey, result)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetClaimFromContext extracts the verified claim from request context
func GetClaimFromContext(ctx context.Context) (*claim.ProviderClaimData, bool) {
	data, ok := ctx.Value(claimDataKey).(*claim.ProviderClaimData)
	return data, ok
}

// GetResultFromContext extracts the verification result from request context
func GetResultFromContext(ctx context.Context) (*verifier.Result, bool) {
	result, ok := ctx.Value(resultKey).(*verifier.Result)
	return result, ok
}

// defaultErrorHandler is the default error handler
func defaultErrorHandler(w http.ResponseWriter, r *http.Request, err error) {
	http.Error(w, fmt.Sprintf("Unauthorized: %s", err.Error()), http.StatusUnauthorized)
}
