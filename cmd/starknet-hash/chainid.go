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

package main

import (
	"fmt"
	"os"

	"github.com/blinklabs-io/gostarknet/cmd/common"
	lcommon "github.com/blinklabs-io/gostarknet/ledger/common"
)

func runChainId(f *common.GlobalFlags) {
	t := common.CreateTransactionHasher(f)
	policy := t.EraPolicy()
	fmt.Printf("network:                 %s\n", t.Network().String())
	fmt.Printf("chain ID:                %s\n", t.ChainId().String())
	fmt.Printf("hasher:                  %s\n", lcommon.HasherName(t.Hasher()))
	fmt.Printf("legacy block:            %d\n", policy.LegacyBlock)
	fmt.Printf("legacy L1 handler block: %d\n", policy.LegacyL1HandlerBlock)
}

func runSelector(f *common.GlobalFlags) {
	names := f.Flagset.Args()[1:]
	if len(names) == 0 {
		fmt.Printf("You must specify at least one entry point name\n")
		os.Exit(1)
	}
	for _, name := range names {
		fmt.Printf("%s: %s\n", name, lcommon.EntryPointSelector(name).String())
	}
}
