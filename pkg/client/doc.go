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

// Package client submits proofs to a remote verification server.
//
// # Basic Usage
//
//	c := client.NewVerifierClient("https://verifier.example", nil)
//
//	resp, err := c.Verify(ctx, proof)
//	if err != nil {
//	    // the server could not evaluate the proof
//	    if errors.Is(err, claim.ErrEpochNotFound) {
//	        log.Println("unknown epoch")
//	    }
//	    return err
//	}
//	fmt.Println("valid:", resp.Valid)
//
// # Encoding
//
// Proofs are posted as JSON. UseCBOR(true) switches both the request and
// the response to application/cbor.
//
// # Context Cancellation
//
//	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
//	defer cancel()
//
//	resp, err := c.Verify(ctx, proof)
//	if errors.Is(err, context.DeadlineExceeded) {
//	    log.Println("Request timed out")
//	}
//
// See the server package for the corresponding HTTP handler.
package client
