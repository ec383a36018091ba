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
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/sage-x-project/sage-reclaim-go/pkg/verifier"
	"github.com/sage-x-project/sage-reclaim-go/pkg/version"
)

const (
	// VerifyPath is the route proofs are posted to.
	VerifyPath  = "/v1/proofs/verify"
	VersionPath = "/v1/version"
	MetricsPath = "/metrics"
)

var allowedCORSHeaders = []string{"Accept", "Accept-Language", "Content-Language", "Origin", headerContentType}

type handler struct {
	verifier    verifier.ProofVerifier
	metrics     *metrics
	log         zerolog.Logger
	maxBodySize int64
	timeout     time.Duration
}

// NewHandler returns the HTTP API of a proof verification server.
func NewHandler(v verifier.ProofVerifier, opts ...Option) http.Handler {
	o := options{
		log:         zerolog.Nop(),
		maxBodySize: DefaultMaxBodySize,
		corsOrigins: []string{"*"},
	}
	for _, opt := range opts {
		opt(&o)
	}
	if o.registry == nil {
		o.registry = prometheus.NewRegistry()
	}

	h := &handler{
		verifier:    v,
		metrics:     newMetrics(o.registry),
		log:         o.log,
		maxBodySize: o.maxBodySize,
		timeout:     o.timeout,
	}

	r := mux.NewRouter()
	r.NotFoundHandler = http.HandlerFunc(http.NotFound)
	r.HandleFunc(VerifyPath, h.verify).Methods(http.MethodPost, http.MethodOptions)
	r.HandleFunc(VersionPath, h.version).Methods(http.MethodGet, http.MethodOptions)
	r.Handle(MetricsPath, promhttp.HandlerFor(o.registry, promhttp.HandlerOpts{})).Methods(http.MethodGet)
	r.Use(
		handlers.CORS(
			handlers.AllowedHeaders(allowedCORSHeaders),
			handlers.AllowedMethods([]string{http.MethodGet, http.MethodPost, http.MethodOptions}),
			handlers.AllowedOrigins(o.corsOrigins),
		),
		h.logRequests,
	)

	return handlers.RecoveryHandler(
		handlers.RecoveryLogger(recoveryLogger{log: o.log}),
		handlers.PrintRecoveryStack(false),
	)(r)
}

func (h *handler) verify(w http.ResponseWriter, r *http.Request) {
	asCBOR := isCBOR(r.Header.Get(headerContentType))

	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, h.maxBodySize))
	if err != nil {
		writeResponse(w, VerifyResponse{Error: &ErrorInfo{Message: fmt.Sprintf("reading body: %v", err)}}, http.StatusBadRequest, asCBOR, h.log)
		return
	}
	proof, err := decodeProof(r.Header.Get(headerContentType), body)
	if err != nil {
		writeResponse(w, VerifyResponse{Error: newErrorInfo(err)}, http.StatusBadRequest, asCBOR, h.log)
		return
	}

	ctx := r.Context()
	if h.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, h.timeout)
		defer cancel()
	}

	start := time.Now()
	result, err := h.verifier.VerifyProofDetailed(ctx, proof)
	elapsed := time.Since(start).Seconds()
	if err != nil {
		h.metrics.observe(resultError, elapsed)
		h.log.Info().Err(err).Str("identifier", proof.Identifier).Msg("proof could not be evaluated")
		writeResponse(w, VerifyResponse{Error: newErrorInfo(err)}, statusFor(err), asCBOR, h.log)
		return
	}

	outcome := resultInvalid
	if result.Valid {
		outcome = resultValid
	}
	h.metrics.observe(outcome, elapsed)
	h.log.Debug().
		Str("identifier", result.Identifier).
		Uint64("epoch", result.Epoch).
		Bool("valid", result.Valid).
		Msg("proof evaluated")
	writeResponse(w, VerifyResponse{Valid: result.Valid, Result: result}, http.StatusOK, asCBOR, h.log)
}

func (h *handler) version(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set(headerContentType, applicationJSON)
	if err := json.NewEncoder(w).Encode(version.Get()); err != nil {
		h.log.Warn().Err(err).Msg("failed to write version response")
	}
}

func (h *handler) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		h.log.Debug().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Dur("took", time.Since(start)).
			Msg("request")
	})
}

type recoveryLogger struct {
	log zerolog.Logger
}

func (l recoveryLogger) Println(v ...interface{}) {
	l.log.Error().Msg(fmt.Sprint(v...))
}
