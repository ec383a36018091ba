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

// Package server exposes proof verification over HTTP.
//
// NewHandler serves a small REST API around a verifier.ProofVerifier:
//
//	POST /v1/proofs/verify   JSON or application/cbor proof, answers {"valid": ...}
//	GET  /v1/version         build and protocol versions
//	GET  /metrics            Prometheus metrics
//
// Evaluation errors are answered with the registered error kind of the
// failure (codespace "reclaim" and its code), so clients can tell a
// malformed proof from an unreachable chain.
//
// # Proof Authentication Middleware
//
// ProofAuthMiddleware admits a request only when its body is a proof that
// verifies. The verified claim is stored in the request context:
//
//	middleware := server.NewProofAuthMiddleware(v)
//
//	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
//	    data, ok := server.GetClaimFromContext(r.Context())
//	    if !ok {
//	        http.Error(w, "Unauthorized", http.StatusUnauthorized)
//	        return
//	    }
//	    fmt.Fprintf(w, "claim owned by %s", data.Owner)
//	})
//
//	http.Handle("/api/", middleware.Wrap(handler))
//
// # Optional Verification
//
//	// Allow requests without a body to pass through
//	middleware.SetOptional(true)
//
// # Custom Error Handler
//
//	middleware.SetErrorHandler(func(w http.ResponseWriter, r *http.Request, err error) {
//	    log.Printf("Proof rejected: %v", err)
//	    http.Error(w, "Custom error message", http.StatusForbidden)
//	})
//
// # Thread Safety
//
// The handler and the middleware are safe for concurrent use by multiple
// goroutines.
package server
