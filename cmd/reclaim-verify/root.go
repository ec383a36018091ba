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
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/sage-x-project/sage-reclaim-go/pkg/beacon"
	"github.com/sage-x-project/sage-reclaim-go/pkg/claim"
)

const (
	envPrefix = "RECLAIM"

	keyConfig          = "config"
	keyChainID         = "chain-id"
	keyRPCURL          = "rpc-url"
	keyContractAddress = "contract-address"
	keyLogLevel        = "log-level"
	keyLogFormat       = "log-format"
	keyTimeout         = "timeout"
)

// beaconSource is what the commands need from the chain. *beacon.Resolver
// satisfies it; epoch 0 reads the current epoch.
type beaconSource interface {
	BeaconState(ctx context.Context, epoch uint64) (*claim.BeaconState, error)
	Close() error
}

type (
	baseConfiguration struct {
		CfgFile         string
		ChainID         uint64
		RPCURL          string
		ContractAddress string
		LogLevel        string
		LogFormat       string
		Timeout         time.Duration
	}

	reclaimApp struct {
		baseCmd *cobra.Command
		config  *baseConfiguration
		log     zerolog.Logger

		// openBeacon connects to the witness registry; replaced in tests.
		openBeacon func(cfg *baseConfiguration, log zerolog.Logger) (beaconSource, error)
	}
)

func newApp() *reclaimApp {
	a := &reclaimApp{
		config:     &baseConfiguration{},
		log:        zerolog.Nop(),
		openBeacon: openResolver,
	}
	a.baseCmd = a.newBaseCmd()
	return a
}

// Execute adds all child commands and runs the application
func (a *reclaimApp) Execute(ctx context.Context) error {
	a.baseCmd.AddCommand(
		newVerifyCmd(a),
		newIdentifierCmd(),
		newWitnessesCmd(a),
		newEpochCmd(a),
		newServeCmd(a),
		newVersionCmd(),
	)
	return a.baseCmd.ExecuteContext(ctx)
}

func (a *reclaimApp) newBaseCmd() *cobra.Command {
	baseCmd := &cobra.Command{
		Use:           "reclaim-verify",
		Short:         "Verify Reclaim claim proofs against the on-chain witness registry",
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := a.initializeConfig(cmd); err != nil {
				return fmt.Errorf("failed to initialize configuration: %w", err)
			}
			log, err := newLogger(cmd.ErrOrStderr(), a.config.LogLevel, a.config.LogFormat)
			if err != nil {
				return fmt.Errorf("initializing logger: %w", err)
			}
			a.log = log
			return nil
		},
	}

	flags := baseCmd.PersistentFlags()
	flags.StringVar(&a.config.CfgFile, keyConfig, "", "config file (yaml, json or toml)")
	flags.Uint64Var(&a.config.ChainID, keyChainID, beacon.DefaultChainID, "chain id of the witness registry")
	flags.StringVar(&a.config.RPCURL, keyRPCURL, "", "RPC endpoint, overrides the built-in one for the chain")
	flags.StringVar(&a.config.ContractAddress, keyContractAddress, "", "witness registry address, overrides the built-in one")
	flags.StringVar(&a.config.LogLevel, keyLogLevel, "info", "log level (trace, debug, info, warn, error)")
	flags.StringVar(&a.config.LogFormat, keyLogFormat, "console", "log format (console, json)")
	flags.DurationVar(&a.config.Timeout, keyTimeout, 30*time.Second, "timeout of a single command")
	return baseCmd
}

// initializeConfig reads in config file and ENV variables if set.
func (a *reclaimApp) initializeConfig(cmd *cobra.Command) error {
	v := viper.New()

	if a.config.CfgFile != "" {
		v.SetConfigFile(a.config.CfgFile)
		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("reading %s: %w", a.config.CfgFile, err)
		}
	}

	// Flags bind to environment variables prefixed with RECLAIM_,
	// e.g. --rpc-url binds to RECLAIM_RPC_URL.
	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()

	return bindFlags(cmd, v)
}

// Bind each cobra flag to its associated viper configuration (config file and environment variable)
func bindFlags(cmd *cobra.Command, v *viper.Viper) error {
	var bindFlagErr []error
	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		if f.Name == keyConfig {
			return
		}

		// Environment variables can't have dashes in them, so bind them to their equivalent
		// keys with underscores, e.g. --rpc-url to RECLAIM_RPC_URL
		if strings.Contains(f.Name, "-") {
			envVarSuffix := strings.ToUpper(strings.ReplaceAll(f.Name, "-", "_"))
			if err := v.BindEnv(f.Name, fmt.Sprintf("%s_%s", envPrefix, envVarSuffix)); err != nil {
				bindFlagErr = append(bindFlagErr, fmt.Errorf("binding env to flag %q: %w", f.Name, err))
				return
			}
		}

		// Apply the viper config value to the flag when the flag is not set and viper has a value
		if !f.Changed && v.IsSet(f.Name) {
			val := v.Get(f.Name)
			if err := cmd.Flags().Set(f.Name, fmt.Sprintf("%v", val)); err != nil {
				bindFlagErr = append(bindFlagErr, fmt.Errorf("setting flag %q value: %w", f.Name, err))
				return
			}
		}
	})

	return errors.Join(bindFlagErr...)
}

// chains returns the built-in chain table with the command line overrides
// applied to the selected chain.
func (c *baseConfiguration) chains() []beacon.ChainConfig {
	chains := beacon.DefaultChains()
	idx := -1
	for i := range chains {
		if chains[i].ChainID == c.ChainID {
			idx = i
			break
		}
	}
	if idx < 0 {
		if c.RPCURL == "" && c.ContractAddress == "" {
			return chains
		}
		chains = append(chains, beacon.ChainConfig{ChainID: c.ChainID, Name: beacon.ChainKey(c.ChainID)})
		idx = len(chains) - 1
	}
	if c.RPCURL != "" {
		chains[idx].RPCURL = c.RPCURL
	}
	if c.ContractAddress != "" {
		chains[idx].ContractAddress = c.ContractAddress
	}
	return chains
}

func openResolver(cfg *baseConfiguration, log zerolog.Logger) (beaconSource, error) {
	return beacon.NewResolver(cfg.chains(),
		beacon.WithDefaultChain(cfg.ChainID),
		beacon.WithLogger(log),
	), nil
}

// commandContext bounds a command by the configured timeout.
func (a *reclaimApp) commandContext(cmd *cobra.Command) (context.Context, context.CancelFunc) {
	if a.config.Timeout <= 0 {
		return context.WithCancel(cmd.Context())
	}
	return context.WithTimeout(cmd.Context(), a.config.Timeout)
}
