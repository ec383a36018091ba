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
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/sage-x-project/sage-reclaim-go/pkg/claim"
	"github.com/sage-x-project/sage-reclaim-go/pkg/client"
	"github.com/sage-x-project/sage-reclaim-go/pkg/verifier"
)

// errProofInvalid makes the process exit non-zero after the verdict has
// been printed.
var errProofInvalid = errors.New("proof is not valid")

type verifyFlags struct {
	strict   bool
	detailed bool
	server   string
	cbor     bool
}

func newVerifyCmd(a *reclaimApp) *cobra.Command {
	var flags verifyFlags
	cmd := &cobra.Command{
		Use:   "verify <proof.json>...",
		Short: "Verify one or more proofs, '-' reads a proof from stdin",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			proofs := make([]*claim.Proof, len(args))
			for i, name := range args {
				p, err := readProof(cmd.InOrStdin(), name)
				if err != nil {
					return err
				}
				proofs[i] = p
			}
			if flags.server != "" {
				return a.verifyRemote(cmd, flags, args, proofs)
			}
			return a.verifyLocal(cmd, flags, args, proofs)
		},
	}
	cmd.Flags().BoolVar(&flags.strict, "strict", false, "reject proofs signed by witnesses that were not selected")
	cmd.Flags().BoolVar(&flags.detailed, "detailed", false, "print the witness sets behind each decision as JSON")
	cmd.Flags().StringVar(&flags.server, "server", "", "verify through a remote verification server instead of the chain")
	cmd.Flags().BoolVar(&flags.cbor, "cbor", false, "talk CBOR to the remote server")
	return cmd
}

func (a *reclaimApp) verifyLocal(cmd *cobra.Command, flags verifyFlags, names []string, proofs []*claim.Proof) error {
	src, err := a.openBeacon(a.config, a.log)
	if err != nil {
		return err
	}
	defer src.Close()

	opts := []verifier.Option{verifier.WithLogger(a.log)}
	if flags.strict {
		opts = append(opts, verifier.WithStrictSigners())
	}
	v := verifier.NewDefaultProofVerifier(src, opts...)

	ctx, cancel := a.commandContext(cmd)
	defer cancel()

	out := cmd.OutOrStdout()
	if !flags.detailed {
		valid, err := v.VerifyProofs(ctx, proofs)
		if err != nil {
			return err
		}
		allValid := true
		for i, ok := range valid {
			printVerdict(out, names[i], ok, len(names) > 1)
			allValid = allValid && ok
		}
		if !allValid {
			return errProofInvalid
		}
		return nil
	}

	results := make([]*verifier.Result, len(proofs))
	for i, p := range proofs {
		res, err := v.VerifyProofDetailed(ctx, p)
		if err != nil {
			return fmt.Errorf("%s: %w", names[i], err)
		}
		results[i] = res
	}
	if err := writeJSON(out, results); err != nil {
		return err
	}
	for _, r := range results {
		if !r.Valid {
			return errProofInvalid
		}
	}
	return nil
}

func (a *reclaimApp) verifyRemote(cmd *cobra.Command, flags verifyFlags, names []string, proofs []*claim.Proof) error {
	c := client.NewVerifierClient(flags.server, nil)
	c.UseCBOR(flags.cbor)

	ctx, cancel := a.commandContext(cmd)
	defer cancel()

	out := cmd.OutOrStdout()
	allValid := true
	for i, p := range proofs {
		resp, err := c.Verify(ctx, p)
		if err != nil {
			return fmt.Errorf("%s: %w", names[i], err)
		}
		if flags.detailed {
			if err := writeJSON(out, resp.Result); err != nil {
				return err
			}
		} else {
			printVerdict(out, names[i], resp.Valid, len(names) > 1)
		}
		allValid = allValid && resp.Valid
	}
	if !allValid {
		return errProofInvalid
	}
	return nil
}

func printVerdict(out io.Writer, name string, valid, withName bool) {
	verdict := "invalid"
	if valid {
		verdict = "valid"
	}
	if withName {
		fmt.Fprintf(out, "%s: %s\n", name, verdict)
		return
	}
	fmt.Fprintln(out, verdict)
}

func readProof(stdin io.Reader, name string) (*claim.Proof, error) {
	var (
		data []byte
		err  error
	)
	if name == "-" {
		data, err = io.ReadAll(stdin)
	} else {
		data, err = os.ReadFile(name)
	}
	if err != nil {
		return nil, fmt.Errorf("reading proof: %w", err)
	}
	p, err := claim.DecodeProof(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return p, nil
}

func writeJSON(out io.Writer, v any) error {
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
