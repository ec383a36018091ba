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
	"errors"
	"mime"
	"net/http"

	errorsmod "cosmossdk.io/errors"
	"github.com/fxamacker/cbor/v2"
	"github.com/rs/zerolog"

	"github.com/sage-x-project/sage-reclaim-go/pkg/claim"
	"github.com/sage-x-project/sage-reclaim-go/pkg/verifier"
)

const (
	internalErrorMessage = "internal error"

	headerContentType = "Content-Type"
	applicationJSON   = "application/json"
	applicationCBOR   = "application/cbor"
)

// VerifyResponse is the body returned by the verify endpoint
type VerifyResponse struct {
	Valid  bool             `json:"valid"`
	Result *verifier.Result `json:"result,omitempty"`
	Error  *ErrorInfo       `json:"error,omitempty"`
}

// ErrorInfo carries a registered error kind across the wire
type ErrorInfo struct {
	Codespace string `json:"codespace"`
	Code      uint32 `json:"code"`
	Message   string `json:"message"`
}

func newErrorInfo(err error) *ErrorInfo {
	codespace, code, msg := errorsmod.ABCIInfo(err, false)
	if codespace == errorsmod.UndefinedCodespace {
		// unregistered errors are internal and not described to callers
		msg = internalErrorMessage
	}
	return &ErrorInfo{Codespace: codespace, Code: code, Message: msg}
}

// statusFor maps an evaluation error to an HTTP status.
func statusFor(err error) int {
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout
	case errorsmod.IsOf(err, claim.ErrInvalidProof):
		return http.StatusBadRequest
	case errorsmod.IsOf(err, claim.ErrTransport):
		return http.StatusBadGateway
	}
	if codespace, _, _ := errorsmod.ABCIInfo(err, false); codespace == claim.Codespace {
		return http.StatusUnprocessableEntity
	}
	return http.StatusInternalServerError
}

func isCBOR(contentType string) bool {
	mt, _, err := mime.ParseMediaType(contentType)
	return err == nil && mt == applicationCBOR
}

func decodeProof(contentType string, body []byte) (*claim.Proof, error) {
	if isCBOR(contentType) {
		return claim.DecodeProofCBOR(body)
	}
	return claim.DecodeProof(body)
}

// writeResponse encodes v as CBOR when asCBOR is set and as JSON otherwise.
func writeResponse(w http.ResponseWriter, v any, statusCode int, asCBOR bool, log zerolog.Logger) {
	if asCBOR {
		w.Header().Set(headerContentType, applicationCBOR)
		w.WriteHeader(statusCode)
		if err := cbor.NewEncoder(w).Encode(v); err != nil {
			log.Warn().Err(err).Msg("failed to write CBOR response")
		}
		return
	}
	w.Header().Set(headerContentType, applicationJSON)
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Warn().Err(err).Msg("failed to write JSON response")
	}
}
