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
	"fmt"
	"os"

	starknet "github.com/blinklabs-io/gostarknet"
)

// CreateTransactionHasher builds a TransactionHasher from the global flags, exiting on
// any configuration error
func CreateTransactionHasher(f *GlobalFlags) *starknet.TransactionHasher {
	cfg, err := f.Config()
	if err != nil {
		fmt.Printf("ERROR: %s\n", err)
		os.Exit(1)
	}
	opts, err := cfg.Options()
	if err != nil {
		fmt.Printf("ERROR: invalid configuration: %s\n", err)
		os.Exit(1)
	}
	opts = append(opts, starknet.WithLogger(f.Logger()))
	t, err := starknet.New(opts...)
	if err != nil {
		fmt.Printf("ERROR: %s\n", err)
		os.Exit(1)
	}
	return t
}
