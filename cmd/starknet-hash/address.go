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
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/NethermindEth/juno/core/felt"
	"github.com/blinklabs-io/gostarknet/cmd/common"
	lcommon "github.com/blinklabs-io/gostarknet/ledger/common"
)

type contractAddressFlags struct {
	flagset   *flag.FlagSet
	salt      string
	classHash string
	calldata  string
}

func newContractAddressFlags() *contractAddressFlags {
	f := &contractAddressFlags{
		flagset: flag.NewFlagSet("contract-address", flag.ExitOnError),
	}
	f.flagset.StringVar(&f.salt, "salt", "0x0", "contract address salt")
	f.flagset.StringVar(&f.classHash, "class-hash", "", "class hash of the deployed contract")
	f.flagset.StringVar(
		&f.calldata,
		"calldata",
		"",
		"comma-separated constructor calldata",
	)
	return f
}

func runContractAddress(f *common.GlobalFlags) {
	addrFlags := newContractAddressFlags()
	err := addrFlags.flagset.Parse(f.Flagset.Args()[1:])
	if err != nil {
		fmt.Printf("failed to parse subcommand args: %s\n", err)
		os.Exit(1)
	}
	if addrFlags.classHash == "" {
		fmt.Printf("You must specify -class-hash\n")
		os.Exit(1)
	}
	salt, err := lcommon.FeltFromHex(addrFlags.salt)
	if err != nil {
		fmt.Printf("ERROR: invalid salt: %s\n", err)
		os.Exit(1)
	}
	classHash, err := lcommon.FeltFromHex(addrFlags.classHash)
	if err != nil {
		fmt.Printf("ERROR: invalid class hash: %s\n", err)
		os.Exit(1)
	}
	calldata, err := parseFeltList(addrFlags.calldata)
	if err != nil {
		fmt.Printf("ERROR: invalid calldata: %s\n", err)
		os.Exit(1)
	}
	t := common.CreateTransactionHasher(f)
	fmt.Println(t.ContractAddress(salt, classHash, calldata).String())
}

func parseFeltList(value string) ([]*felt.Felt, error) {
	ret := []*felt.Felt{}
	if strings.TrimSpace(value) == "" {
		return ret, nil
	}
	for idx, item := range strings.Split(value, ",") {
		tmp, err := lcommon.FeltFromHex(strings.TrimSpace(item))
		if err != nil {
			return nil, fmt.Errorf("element %d: %w", idx, err)
		}
		ret = append(ret, tmp)
	}
	return ret, nil
}
