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

package beacon

import (
	"fmt"

	"github.com/ethereum/go-ethereum/common"
)

// DefaultChainID is the chain proofs are resolved against when none is
// configured (OP Sepolia).
const DefaultChainID uint64 = 11155420

// ChainConfig locates the witness registry contract on one network.
type ChainConfig struct {
	ChainID         uint64 `json:"chainId" mapstructure:"chain-id"`
	Name            string `json:"name" mapstructure:"name"`
	ContractAddress string `json:"contractAddress" mapstructure:"contract-address"`
	RPCURL          string `json:"rpcUrl" mapstructure:"rpc-url"`
}

// Validate checks the configuration is usable.
func (c ChainConfig) Validate() error {
	if !common.IsHexAddress(c.ContractAddress) {
		return fmt.Errorf("chain %s: invalid contract address %q", ChainKey(c.ChainID), c.ContractAddress)
	}
	if c.RPCURL == "" {
		return fmt.Errorf("chain %s: rpc url is empty", ChainKey(c.ChainID))
	}
	return nil
}

// DefaultChains returns the networks the witness registry is deployed on.
func DefaultChains() []ChainConfig {
	return []ChainConfig{
		{
			ChainID:         420,
			Name:            "opt-goerli",
			ContractAddress: "0xF93F605142Fb1Efad7Aa58253dDffF67775b4520",
			RPCURL:          "https://goerli.optimism.io",
		},
		{
			ChainID:         DefaultChainID,
			Name:            "opt-sepolia",
			ContractAddress: "0x6D0f81BDA11995f25921aAd5B43359630E65Ca96",
			RPCURL:          "https://sepolia.optimism.io",
		},
	}
}

// ChainKey formats a chain id the way the registry configuration keys it.
func ChainKey(chainID uint64) string {
	return fmt.Sprintf("0x%x", chainID)
}
