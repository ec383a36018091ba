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

	"github.com/spf13/cobra"

	"github.com/sage-x-project/sage-reclaim-go/pkg/claim"
)

func newIdentifierCmd() *cobra.Command {
	var info claim.ClaimInfo
	cmd := &cobra.Command{
		Use:   "identifier",
		Short: "Print the identifier of a claim",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), claim.Identifier(info))
			return nil
		},
	}
	cmd.Flags().StringVar(&info.Provider, "provider", "", "provider name")
	cmd.Flags().StringVar(&info.Parameters, "parameters", "", "provider parameters, verbatim")
	cmd.Flags().StringVar(&info.Context, "context", "", "claim context, verbatim")
	return cmd
}
