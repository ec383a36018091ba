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
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/fxamacker/cbor/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sage-x-project/sage-reclaim-go/pkg/claim"
	"github.com/sage-x-project/sage-reclaim-go/pkg/verifier"
	"github.com/sage-x-project/sage-reclaim-go/pkg/version"
)

func post(t *testing.T, h http.Handler, contentType string, body []byte) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, VerifyPath, bytes.NewReader(body))
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	return rr
}

func decodeResponse(t *testing.T, rr *httptest.ResponseRecorder) VerifyResponse {
	t.Helper()
	var resp VerifyResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp), rr.Body.String())
	return resp
}

func TestHandlerVerifyValid(t *testing.T) {
	h := NewHandler(acceptingVerifier())

	rr := post(t, h, "application/json", proofJSON(t))
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))

	resp := decodeResponse(t, rr)
	assert.True(t, resp.Valid)
	require.NotNil(t, resp.Result)
	assert.Equal(t, uint64(1), resp.Result.Epoch)
	assert.Nil(t, resp.Error)
}

func TestHandlerVerifyInvalid(t *testing.T) {
	h := NewHandler(rejectingVerifier())

	rr := post(t, h, "", proofJSON(t))
	require.Equal(t, http.StatusOK, rr.Code)

	resp := decodeResponse(t, rr)
	assert.False(t, resp.Valid)
	require.NotNil(t, resp.Result)
	assert.Equal(t, []string{"0xw1"}, resp.Result.Missing)
}

func TestHandlerVerifyEvaluationError(t *testing.T) {
	h := NewHandler(&mockProofVerifier{err: claim.ErrIdentifierMismatch})

	rr := post(t, h, "application/json", proofJSON(t))
	require.Equal(t, http.StatusUnprocessableEntity, rr.Code)

	resp := decodeResponse(t, rr)
	assert.False(t, resp.Valid)
	require.NotNil(t, resp.Error)
	assert.Equal(t, claim.Codespace, resp.Error.Codespace)
	assert.Equal(t, uint32(3), resp.Error.Code)
}

// stallingVerifier blocks until its context ends
type stallingVerifier struct{}

func (stallingVerifier) VerifyProof(ctx context.Context, p *claim.Proof) (bool, error) {
	_, err := stallingVerifier{}.VerifyProofDetailed(ctx, p)
	return false, err
}

func (stallingVerifier) VerifyProofDetailed(ctx context.Context, _ *claim.Proof) (*verifier.Result, error) {
	<-ctx.Done()
	return nil, fmt.Errorf("context error: %w", ctx.Err())
}

func TestHandlerVerifyTimeout(t *testing.T) {
	h := NewHandler(stallingVerifier{}, WithVerifyTimeout(20*time.Millisecond))

	rr := post(t, h, "application/json", proofJSON(t))
	require.Equal(t, http.StatusGatewayTimeout, rr.Code)

	resp := decodeResponse(t, rr)
	assert.False(t, resp.Valid)
	require.NotNil(t, resp.Error)
	assert.Equal(t, "internal error", resp.Error.Message)
}

func TestHandlerVerifyUnregisteredErrorRedacted(t *testing.T) {
	h := NewHandler(&mockProofVerifier{err: errors.New("dial tcp 10.0.0.7:8545: connection refused")})

	rr := post(t, h, "application/json", proofJSON(t))
	require.Equal(t, http.StatusInternalServerError, rr.Code)

	resp := decodeResponse(t, rr)
	require.NotNil(t, resp.Error)
	assert.Equal(t, "internal error", resp.Error.Message)
	assert.NotContains(t, resp.Error.Message, "10.0.0.7")
}

func TestHandlerVerifyUndecodable(t *testing.T) {
	mock := acceptingVerifier()
	h := NewHandler(mock)

	rr := post(t, h, "application/json", []byte("{"))
	require.Equal(t, http.StatusBadRequest, rr.Code)
	resp := decodeResponse(t, rr)
	require.NotNil(t, resp.Error)
	assert.Equal(t, claim.Codespace, resp.Error.Codespace)
	assert.Zero(t, mock.calls.Load())
}

func TestHandlerVerifyBodyTooLarge(t *testing.T) {
	h := NewHandler(acceptingVerifier(), WithMaxBodySize(16))

	rr := post(t, h, "application/json", proofJSON(t))
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestHandlerVerifyCBOR(t *testing.T) {
	h := NewHandler(acceptingVerifier())

	body, err := claim.EncodeProofCBOR(testProof())
	require.NoError(t, err)

	rr := post(t, h, "application/cbor", body)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "application/cbor", rr.Header().Get("Content-Type"))

	var resp VerifyResponse
	require.NoError(t, cbor.Unmarshal(rr.Body.Bytes(), &resp))
	assert.True(t, resp.Valid)
}

func TestHandlerMethodNotAllowed(t *testing.T) {
	h := NewHandler(acceptingVerifier())

	req := httptest.NewRequest(http.MethodGet, VerifyPath, nil)
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	assert.Equal(t, http.StatusMethodNotAllowed, rr.Code)
}

func TestHandlerVersion(t *testing.T) {
	h := NewHandler(acceptingVerifier())

	req := httptest.NewRequest(http.MethodGet, VersionPath, nil)
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	require.Equal(t, http.StatusOK, rr.Code)

	var info version.Info
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &info))
	assert.Equal(t, version.Get(), info)
}

func TestHandlerMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	h := NewHandler(rejectingVerifier(), WithRegistry(reg))

	post(t, h, "application/json", proofJSON(t))
	post(t, h, "application/json", proofJSON(t))

	req := httptest.NewRequest(http.MethodGet, MetricsPath, nil)
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	require.Equal(t, http.StatusOK, rr.Code)

	body, err := io.ReadAll(rr.Body)
	require.NoError(t, err)
	text := string(body)
	assert.Contains(t, text, `reclaim_proof_verifications_total{result="invalid"} 2`)
	assert.Contains(t, text, `reclaim_proof_verifications_total{result="valid"} 0`)
	assert.Contains(t, text, "reclaim_proof_verification_seconds_count 2")
}

func TestHandlerCORSPreflight(t *testing.T) {
	h := NewHandler(acceptingVerifier(), WithCORSOrigins("https://app.example"))

	req := httptest.NewRequest(http.MethodOptions, VerifyPath, nil)
	req.Header.Set("Origin", "https://app.example")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "https://app.example", rr.Header().Get("Access-Control-Allow-Origin"))
}

func TestHandlerRecoversFromPanic(t *testing.T) {
	h := NewHandler(panickingVerifier{})

	rr := post(t, h, "application/json", proofJSON(t))
	assert.Equal(t, http.StatusInternalServerError, rr.Code)
}

func TestHandlerNotFound(t *testing.T) {
	h := NewHandler(acceptingVerifier())

	req := httptest.NewRequest(http.MethodGet, "/v2/unknown", strings.NewReader(""))
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	assert.Equal(t, http.StatusNotFound, rr.Code)
}
