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

package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	errorsmod "cosmossdk.io/errors"
	"github.com/fxamacker/cbor/v2"

	"github.com/sage-x-project/sage-reclaim-go/pkg/claim"
	"github.com/sage-x-project/sage-reclaim-go/pkg/server"
	"github.com/sage-x-project/sage-reclaim-go/pkg/version"
)

// VerifyResponse is the answer of a verification server
type VerifyResponse = server.VerifyResponse

// VerifierClient submits proofs to a remote verification server
type VerifierClient struct {
	baseURL    string
	httpClient *http.Client
	useCBOR    bool
}

// NewVerifierClient creates a client for the server at baseURL.
// If httpClient is nil, http.DefaultClient is used
func NewVerifierClient(baseURL string, httpClient *http.Client) *VerifierClient {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	return &VerifierClient{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: httpClient,
	}
}

// UseCBOR switches the request and response encoding to CBOR
func (c *VerifierClient) UseCBOR(enabled bool) {
	c.useCBOR = enabled
}

// Verify posts the proof and returns the server's decision. When the server
// could not evaluate the proof the returned error carries the registered
// error kind it reported, so errors.Is works against the claim errors.
func (c *VerifierClient) Verify(ctx context.Context, proof *claim.Proof) (*VerifyResponse, error) {
	body, contentType, err := c.encode(proof)
	if err != nil {
		return nil, fmt.Errorf("failed to encode proof: %w", err)
	}

	resp, err := c.Post(ctx, c.baseURL+server.VerifyPath, contentType, body)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	var out VerifyResponse
	if strings.HasPrefix(resp.Header.Get("Content-Type"), "application/cbor") {
		err = cbor.Unmarshal(raw, &out)
	} else {
		err = json.Unmarshal(raw, &out)
	}
	if err != nil {
		return nil, fmt.Errorf("unexpected response (status %d): %s", resp.StatusCode, truncate(raw))
	}

	if out.Error != nil {
		return &out, remoteError(resp.StatusCode, out.Error)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %d", resp.StatusCode)
	}
	return &out, nil
}

// Version fetches the server's version information
func (c *VerifierClient) Version(ctx context.Context) (*version.Info, error) {
	resp, err := c.Get(ctx, c.baseURL+server.VersionPath)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %d", resp.StatusCode)
	}
	var info version.Info
	if err := json.NewDecoder(resp.Body).Decode(&info); err != nil {
		return nil, fmt.Errorf("failed to decode version: %w", err)
	}
	return &info, nil
}

// Do executes an HTTP request
func (c *VerifierClient) Do(ctx context.Context, req *http.Request) (*http.Response, error) {
	// Check context first
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("HTTP request failed: %w", err)
	}

	return resp, nil
}

// Post sends a POST request with the given body
func (c *VerifierClient) Post(ctx context.Context, url, contentType string, body []byte) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create POST request: %w", err)
	}

	req.Header.Set("Content-Type", contentType)
	req.Header.Set("Accept", contentType)

	return c.Do(ctx, req)
}

// Get sends a GET request
func (c *VerifierClient) Get(ctx context.Context, url string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create GET request: %w", err)
	}

	return c.Do(ctx, req)
}

func (c *VerifierClient) encode(proof *claim.Proof) ([]byte, string, error) {
	if c.useCBOR {
		body, err := claim.EncodeProofCBOR(proof)
		return body, "application/cbor", err
	}
	body, err := json.Marshal(proof)
	return body, "application/json", err
}

// remoteError rebuilds the registered error the server reported.
func remoteError(status int, info *server.ErrorInfo) error {
	if info.Codespace == claim.Codespace {
		return errorsmod.Wrapf(errorsmod.ABCIError(info.Codespace, info.Code, info.Message), "server status %d", status)
	}
	return fmt.Errorf("server status %d: %s", status, info.Message)
}

func truncate(b []byte) string {
	const limit = 256
	if len(b) > limit {
		return string(b[:limit]) + "..."
	}
	return string(b)
}
