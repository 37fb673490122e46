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

// Package config loads transaction hasher settings from YAML files
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/NethermindEth/juno/core/felt"
	starknet "github.com/blinklabs-io/gostarknet"
	"github.com/blinklabs-io/gostarknet/ledger/common"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Network string `yaml:"network"`
	// ChainId overrides the network chain ID. It may be an ASCII short string or a
	// 0x-prefixed hex value
	ChainId                 string  `yaml:"chainId"`
	Hasher                  string  `yaml:"hasher"`
	LegacyBlock             *uint64 `yaml:"legacyBlock"`
	LegacyL1HandlerBlock    *uint64 `yaml:"legacyL1HandlerBlock"`
	AbsentBlockEra          string  `yaml:"absentBlockEra"`
	AbsentBlockL1HandlerEra string  `yaml:"absentBlockL1HandlerEra"`
	Workers                 int     `yaml:"workers"`
	CacheSize               int     `yaml:"cacheSize"`
}

// Default returns the configuration used when no file is given
func Default() Config {
	return Config{
		Network:                 starknet.NetworkMainnet.Name,
		Hasher:                  common.HasherNamePedersen,
		AbsentBlockEra:          common.EraCurrent.String(),
		AbsentBlockL1HandlerEra: common.EraCurrent.String(),
	}
}

// Load reads the config file at the given path on top of the defaults
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("unable to read config: %w", err)
	}
	return Parse(data)
}

// Parse decodes YAML config data on top of the defaults
func Parse(data []byte) (Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("problem unmarshaling config data: %w", err)
	}
	return cfg, nil
}

// ParseChainId accepts either a short string (SN_MAIN) or a hex value (0x534e5f4d41494e)
func ParseChainId(value string) (*felt.Felt, error) {
	if strings.HasPrefix(value, "0x") || strings.HasPrefix(value, "0X") {
		return common.FeltFromHex(value)
	}
	return common.FeltFromShortString(value)
}

// EraPolicy builds the era policy for the given network with any overrides applied
func (c Config) EraPolicy(network starknet.Network) (common.EraPolicy, error) {
	policy := network.EraPolicy()
	if c.LegacyBlock != nil {
		policy.LegacyBlock = *c.LegacyBlock
	}
	if c.LegacyL1HandlerBlock != nil {
		policy.LegacyL1HandlerBlock = *c.LegacyL1HandlerBlock
	}
	if c.AbsentBlockEra != "" {
		era, err := common.ParseEra(c.AbsentBlockEra)
		if err != nil {
			return policy, fmt.Errorf("absentBlockEra: %w", err)
		}
		policy.AbsentBlockEra = era
	}
	if c.AbsentBlockL1HandlerEra != "" {
		era, err := common.ParseEra(c.AbsentBlockL1HandlerEra)
		if err != nil {
			return policy, fmt.Errorf("absentBlockL1HandlerEra: %w", err)
		}
		policy.AbsentBlockL1HandlerEra = era
	}
	if err := policy.Validate(); err != nil {
		return policy, err
	}
	return policy, nil
}

// Options converts the config into TransactionHasher options
func (c Config) Options() ([]starknet.HasherOptionFunc, error) {
	network := starknet.NetworkByName(c.Network)
	if network == starknet.NetworkInvalid {
		if c.ChainId == "" {
			return nil, fmt.Errorf("invalid network specified: %s", c.Network)
		}
		// Custom networks only need a chain ID
		network = starknet.Network{
			Name:                 c.Network,
			LegacyBlock:          common.LegacyBlockNumber,
			LegacyL1HandlerBlock: common.LegacyL1HandlerBlockNumber,
		}
	}
	ret := []starknet.HasherOptionFunc{
		starknet.WithNetwork(network),
	}
	if c.ChainId != "" {
		chainId, err := ParseChainId(c.ChainId)
		if err != nil {
			return nil, fmt.Errorf("chainId: %w", err)
		}
		ret = append(ret, starknet.WithChainId(chainId))
	}
	hasher, err := common.HasherByName(c.Hasher)
	if err != nil {
		return nil, err
	}
	ret = append(ret, starknet.WithHasher(hasher))
	policy, err := c.EraPolicy(network)
	if err != nil {
		return nil, err
	}
	ret = append(ret, starknet.WithEraPolicy(policy))
	if c.Workers < 0 {
		return nil, errors.New("workers must not be negative")
	}
	if c.Workers > 0 {
		ret = append(ret, starknet.WithWorkers(c.Workers))
	}
	if c.CacheSize < 0 {
		return nil, errors.New("cacheSize must not be negative")
	}
	if c.CacheSize > 0 {
		ret = append(ret, starknet.WithCacheSize(c.CacheSize))
	}
	return ret, nil
}
