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

package common

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/blinklabs-io/gostarknet/config"
)

type GlobalFlags struct {
	Flagset    *flag.FlagSet
	ConfigFile string
	Network    string
	ChainId    string
	Hasher     string
	Debug      bool
}

func NewGlobalFlags() *GlobalFlags {
	f := &GlobalFlags{
		Flagset: flag.NewFlagSet(os.Args[0], flag.ExitOnError),
	}
	f.Flagset.StringVar(
		&f.ConfigFile,
		"config",
		"",
		"path to YAML config file",
	)
	f.Flagset.StringVar(
		&f.Network,
		"network",
		"",
		"specifies network for the chain ID (mainnet, goerli, goerli2, sepolia, integration-sepolia)",
	)
	f.Flagset.StringVar(
		&f.ChainId,
		"chain-id",
		"",
		"specifies chain ID as a short string or hex value. this overrides the -network option",
	)
	f.Flagset.StringVar(
		&f.Hasher,
		"hasher",
		"",
		"hash backend (pedersen or poseidon)",
	)
	f.Flagset.BoolVar(&f.Debug, "debug", false, "enable debug logging")
	return f
}

func (f *GlobalFlags) Parse() {
	if err := f.Flagset.Parse(os.Args[1:]); err != nil {
		fmt.Printf("failed to parse command args: %s\n", err)
		os.Exit(1)
	}
}

// Config loads the config file, if any, and applies command line overrides
func (f *GlobalFlags) Config() (config.Config, error) {
	cfg := config.Default()
	if f.ConfigFile != "" {
		var err error
		cfg, err = config.Load(f.ConfigFile)
		if err != nil {
			return cfg, err
		}
	}
	if f.Network != "" {
		cfg.Network = f.Network
	}
	if f.ChainId != "" {
		cfg.ChainId = f.ChainId
	}
	if f.Hasher != "" {
		cfg.Hasher = f.Hasher
	}
	return cfg, nil
}

// Logger returns a text logger on stderr at the level selected by -debug
func (f *GlobalFlags) Logger() *slog.Logger {
	level := slog.LevelWarn
	if f.Debug {
		level = slog.LevelDebug
	}
	return slog.New(
		slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}),
	)
}
