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

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/sage-x-project/sage-reclaim-go/pkg/claim"
	"github.com/sage-x-project/sage-reclaim-go/pkg/client"
)

func main() {
	serverURL := flag.String("server", "http://localhost:8080", "verification server")
	useCBOR := flag.Bool("cbor", false, "post the proof as CBOR")
	flag.Parse()
	if flag.NArg() != 1 {
		log.Fatalf("usage: remote-verify [-server url] [-cbor] proof.json")
	}

	fmt.Println("SAGE Reclaim Go - Remote Verify Example")
	fmt.Println("=======================================")

	fmt.Println("\n1. Reading proof...")
	raw, err := os.ReadFile(flag.Arg(0))
	if err != nil {
		log.Fatalf("Failed to read proof: %v", err)
	}
	proof, err := claim.DecodeProof(raw)
	if err != nil {
		log.Fatalf("Failed to decode proof: %v", err)
	}
	fmt.Printf("   Identifier: %s\n", proof.Identifier)
	fmt.Printf("   Epoch:      %d\n", proof.ClaimData.Epoch)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	c := client.NewVerifierClient(*serverURL, nil)
	c.UseCBOR(*useCBOR)

	fmt.Println("\n2. Checking server version...")
	info, err := c.Version(ctx)
	if err != nil {
		fmt.Printf("   ⚠️  Server not reachable: %v\n", err)
		fmt.Println("\nStart one with:")
		fmt.Println("  reclaim-verify serve --listen :8080")
		return
	}
	fmt.Printf("   Server %s (proof format %s)\n", info.SageReclaimVersion, info.ProtocolVersion)

	fmt.Println("\n3. Verifying proof...")
	resp, err := c.Verify(ctx, proof)
	switch {
	case errors.Is(err, claim.ErrEpochNotFound):
		log.Fatalf("   The registry has no epoch %d", proof.ClaimData.Epoch)
	case err != nil:
		log.Fatalf("   Verification failed: %v", err)
	}

	if resp.Valid {
		fmt.Println("   ✅ Proof is valid")
		return
	}
	fmt.Printf("   ❌ Proof is not valid, missing witnesses: %v\n", resp.Result.Missing)
	os.Exit(1)
}
