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
	"encoding/json"
	"fmt"
	"log"

	"github.com/ethereum/go-ethereum/common/hexutil"

	"github.com/sage-x-project/sage-reclaim-go/pkg/claim"
	"github.com/sage-x-project/sage-reclaim-go/pkg/signer"
	"github.com/sage-x-project/sage-reclaim-go/pkg/verifier"
)

func main() {
	fmt.Println("=== SAGE Reclaim Go - Manual Proof Example ===")
	fmt.Println()

	// Step 1: Create the attesting key
	fmt.Println("Step 1: Generating attestor key...")
	attestor, err := signer.GenerateKeySigner()
	if err != nil {
		log.Fatalf("Failed to generate key: %v", err)
	}
	fmt.Printf("  Attestor: %s\n\n", attestor.Address())

	// Step 2: Describe the claim
	fmt.Println("Step 2: Building claim...")
	data := claim.ProviderClaimData{
		Provider:   "http",
		Parameters: `{"method":"GET","url":"https://api.example.com/me"}`,
		Owner:      "0x70997970c51812dc3a010c7d01b50e0d17dc79c8",
		TimestampS: 1712345678,
		Context:    `{"contextAddress":"0x0","contextMessage":"manual example"}`,
		Epoch:      1,
	}
	data.Identifier = claim.Identifier(data.ClaimInfo())
	fmt.Printf("  Identifier: %s\n\n", data.Identifier)

	// Step 3: Sign it
	fmt.Println("Step 3: Signing claim...")
	sig, err := attestor.SignClaim(&data)
	if err != nil {
		log.Fatalf("Failed to sign claim: %v", err)
	}
	proof := &claim.Proof{
		Identifier: data.Identifier,
		ClaimData:  data,
		Signatures: []string{hexutil.Encode(sig)},
		Witnesses:  []claim.WitnessData{{ID: attestor.Address(), URL: claim.ManualVerifyURL}},
	}
	proofJSON, err := json.MarshalIndent(proof, "  ", "  ")
	if err != nil {
		log.Fatalf("Failed to serialize proof: %v", err)
	}
	fmt.Printf("  %s\n\n", proofJSON)

	// Step 4: Verify without a chain, manual proofs name their attestor
	fmt.Println("Step 4: Verifying...")
	v := verifier.NewDefaultProofVerifier(nil)
	result, err := v.VerifyProofDetailed(context.Background(), proof)
	if err != nil {
		log.Fatalf("Verification failed: %v", err)
	}
	fmt.Printf("  ✓ valid=%v signers=%v\n\n", result.Valid, result.Signers)

	// Step 5: Tamper with the claim
	fmt.Println("Step 5: Verifying a tampered copy...")
	proof.ClaimData.Owner = "0x0000000000000000000000000000000000000bad"
	result, err = v.VerifyProofDetailed(context.Background(), proof)
	if err != nil {
		log.Fatalf("Verification failed: %v", err)
	}
	fmt.Printf("  ✗ valid=%v missing=%v\n", result.Valid, result.Missing)

	fmt.Println("\n=== Example completed successfully! ===")
}
