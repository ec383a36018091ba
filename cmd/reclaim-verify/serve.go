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
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/sage-x-project/sage-reclaim-go/pkg/server"
	"github.com/sage-x-project/sage-reclaim-go/pkg/verifier"
)

func newServeCmd(a *reclaimApp) *cobra.Command {
	var (
		listen string
		strict bool
	)
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP verification server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			src, err := a.openBeacon(a.config, a.log)
			if err != nil {
				return err
			}
			defer src.Close()

			opts := []verifier.Option{verifier.WithLogger(a.log)}
			if strict {
				opts = append(opts, verifier.WithStrictSigners())
			}
			v := verifier.NewDefaultProofVerifier(src, opts...)

			reg := prometheus.NewRegistry()
			h := server.NewHandler(v,
				server.WithLogger(a.log),
				server.WithRegistry(reg),
				server.WithVerifyTimeout(a.config.Timeout),
			)
			srv := &http.Server{
				Handler:           h,
				ReadTimeout:       3 * time.Second,
				ReadHeaderTimeout: time.Second,
				WriteTimeout:      a.config.Timeout + 5*time.Second,
				IdleTimeout:       30 * time.Second,
			}

			ln, err := net.Listen("tcp", listen)
			if err != nil {
				return fmt.Errorf("listen %s: %w", listen, err)
			}
			return serve(cmd.Context(), srv, ln, a)
		},
	}
	cmd.Flags().StringVar(&listen, "listen", ":8080", "address the server listens on")
	cmd.Flags().BoolVar(&strict, "strict", false, "reject proofs signed by witnesses that were not selected")
	return cmd
}

// serve runs srv until ctx is cancelled.
func serve(ctx context.Context, srv *http.Server, ln net.Listener, a *reclaimApp) error {
	errCh := make(chan error, 1)
	go func() {
		a.log.Info().Str("addr", ln.Addr().String()).Msg("verification server listening")
		errCh <- srv.Serve(ln)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutting down: %w", err)
	}
	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	a.log.Info().Msg("verification server stopped")
	return nil
}
