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
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/sage-x-project/sage-reclaim-go/pkg/witness"
)

func newWitnessesCmd(a *reclaimApp) *cobra.Command {
	var (
		epoch      uint64
		identifier string
		timestampS uint64
	)
	cmd := &cobra.Command{
		Use:   "witnesses",
		Short: "Print the witnesses selected to attest a claim",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if identifier == "" {
				return fmt.Errorf("--identifier is required")
			}
			src, err := a.openBeacon(a.config, a.log)
			if err != nil {
				return err
			}
			defer src.Close()

			ctx, cancel := a.commandContext(cmd)
			defer cancel()

			state, err := src.BeaconState(ctx, epoch)
			if err != nil {
				return err
			}
			selected, err := witness.ForClaim(state, identifier, timestampS)
			if err != nil {
				return err
			}
			for _, w := range selected {
				fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", w.ID, w.URL)
			}
			return nil
		},
	}
	cmd.Flags().Uint64Var(&epoch, "epoch", 0, "epoch of the claim, 0 for the current one")
	cmd.Flags().StringVar(&identifier, "identifier", "", "claim identifier")
	cmd.Flags().Uint64Var(&timestampS, "timestamp", 0, "claim timestamp in seconds")
	return cmd
}

func newEpochCmd(a *reclaimApp) *cobra.Command {
	return &cobra.Command{
		Use:   "epoch [number]",
		Short: "Print the witness roster of an epoch, the current one by default",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var epoch uint64
			if len(args) == 1 {
				n, err := strconv.ParseUint(args[0], 10, 64)
				if err != nil {
					return fmt.Errorf("invalid epoch %q: %w", args[0], err)
				}
				epoch = n
			}
			src, err := a.openBeacon(a.config, a.log)
			if err != nil {
				return err
			}
			defer src.Close()

			ctx, cancel := a.commandContext(cmd)
			defer cancel()

			state, err := src.BeaconState(ctx, epoch)
			if err != nil {
				return err
			}
			return writeJSON(cmd.OutOrStdout(), state)
		},
	}
}
