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
	"log"
	"net/http"
	"os"

	"github.com/rs/zerolog"

	"github.com/sage-x-project/sage-reclaim-go/pkg/beacon"
	"github.com/sage-x-project/sage-reclaim-go/pkg/server"
	"github.com/sage-x-project/sage-reclaim-go/pkg/verifier"
)

// A service that only answers callers presenting a valid proof.
func main() {
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	resolver := beacon.NewResolver(beacon.DefaultChains(), beacon.WithLogger(logger))
	defer resolver.Close()

	v := verifier.NewDefaultProofVerifier(resolver, verifier.WithLogger(logger))

	middleware := server.NewProofAuthMiddleware(v)
	middleware.SetErrorHandler(func(w http.ResponseWriter, r *http.Request, err error) {
		logger.Warn().Err(err).Str("remote", r.RemoteAddr).Msg("request rejected")
		http.Error(w, "a valid proof is required", http.StatusForbidden)
	})

	profile := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		data, _ := server.GetClaimFromContext(r.Context())
		ctx, err := data.ParseContext()
		if err != nil {
			http.Error(w, "claim context is not readable", http.StatusBadRequest)
			return
		}
		fmt.Fprintf(w, "hello %s, your claim on %s carries %d parameters\n",
			data.Owner, data.Provider, len(ctx.ExtractedParameters))
	})

	mux := http.NewServeMux()
	mux.Handle("/profile", middleware.Wrap(profile))
	mux.Handle("/", server.NewHandler(v, server.WithLogger(logger)))

	logger.Info().Msg("listening on :8080, POST a proof to /profile")
	log.Fatal(http.ListenAndServe(":8080", mux))
}
