// Copyright 2025 Blink Labs Software
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package starknet

import (
	"github.com/NethermindEth/juno/core/felt"
	"github.com/blinklabs-io/gostarknet/ledger/common"
)

// Network definitions
var (
	NetworkMainnet = Network{
		Name:                 "mainnet",
		ChainId:              "SN_MAIN",
		LegacyBlock:          common.LegacyBlockNumber,
		LegacyL1HandlerBlock: common.LegacyL1HandlerBlockNumber,
	}
	NetworkGoerli = Network{
		Name:                 "goerli",
		ChainId:              "SN_GOERLI",
		LegacyBlock:          common.LegacyBlockNumber,
		LegacyL1HandlerBlock: common.LegacyL1HandlerBlockNumber,
	}
	NetworkGoerli2 = Network{
		Name:                 "goerli2",
		ChainId:              "SN_GOERLI2",
		LegacyBlock:          common.LegacyBlockNumber,
		LegacyL1HandlerBlock: common.LegacyL1HandlerBlockNumber,
	}
	NetworkSepolia = Network{
		Name:                 "sepolia",
		ChainId:              "SN_SEPOLIA",
		LegacyBlock:          common.LegacyBlockNumber,
		LegacyL1HandlerBlock: common.LegacyL1HandlerBlockNumber,
	}
	NetworkIntegrationSepolia = Network{
		Name:                 "integration-sepolia",
		ChainId:              "SN_INTEGRATION_SEPOLIA",
		LegacyBlock:          common.LegacyBlockNumber,
		LegacyL1HandlerBlock: common.LegacyL1HandlerBlockNumber,
	}

	NetworkInvalid = Network{
		Name: "invalid",
	} // NetworkInvalid is used as a return value for lookup functions when a network isn't found
)

// List of valid networks for use in lookup functions
var networks = []Network{
	NetworkMainnet,
	NetworkGoerli,
	NetworkGoerli2,
	NetworkSepolia,
	NetworkIntegrationSepolia,
}

// NetworkByName returns a predefined network by name
func NetworkByName(name string) Network {
	for _, network := range networks {
		if network.Name == name {
			return network
		}
	}
	return NetworkInvalid
}

// NetworkByChainId returns a predefined network by its chain ID string
func NetworkByChainId(chainId string) Network {
	for _, network := range networks {
		if network.ChainId == chainId {
			return network
		}
	}
	return NetworkInvalid
}

// NetworkByChainIdFelt returns a predefined network by its chain ID field element
func NetworkByChainIdFelt(chainId *felt.Felt) Network {
	if chainId == nil {
		return NetworkInvalid
	}
	for _, network := range networks {
		if network.ChainIdFelt().Equal(chainId) {
			return network
		}
	}
	return NetworkInvalid
}

// Network represents a Starknet network
type Network struct {
	Name                 string
	ChainId              string // ASCII chain ID, encoded as a short string for hashing
	LegacyBlock          uint64
	LegacyL1HandlerBlock uint64
}

// ChainIdFelt returns the chain ID as a field element. It returns nil for the invalid
// network
func (n Network) ChainIdFelt() *felt.Felt {
	if n.ChainId == "" {
		return nil
	}
	ret, err := common.FeltFromShortString(n.ChainId)
	if err != nil {
		return nil
	}
	return ret
}

// EraPolicy returns the default era policy with this network's thresholds
func (n Network) EraPolicy() common.EraPolicy {
	ret := common.DefaultEraPolicy()
	ret.LegacyBlock = n.LegacyBlock
	ret.LegacyL1HandlerBlock = n.LegacyL1HandlerBlock
	return ret
}

func (n Network) String() string {
	return n.Name
}
