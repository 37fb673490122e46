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
	"context"
	"encoding/hex"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"

	starknet "github.com/blinklabs-io/gostarknet"
	"github.com/blinklabs-io/gostarknet/cmd/common"
	"github.com/blinklabs-io/gostarknet/ledger"
)

type txHashFlags struct {
	flagset  *flag.FlagSet
	block    int64
	query    bool
	cbor     bool
	preimage bool
}

func newTxHashFlags() *txHashFlags {
	f := &txHashFlags{
		flagset: flag.NewFlagSet("tx-hash", flag.ExitOnError),
	}
	f.flagset.Int64Var(
		&f.block,
		"block",
		-1,
		"block height the transactions were included at (-1 for none)",
	)
	f.flagset.BoolVar(&f.query, "query", false, "hash as query (simulation) transactions")
	f.flagset.BoolVar(&f.cbor, "cbor", false, "input files contain hex-encoded CBOR envelopes instead of JSON")
	f.flagset.BoolVar(&f.preimage, "preimage", false, "print the hash preimage instead of the hash")
	return f
}

func runTxHash(f *common.GlobalFlags) {
	txHashFlags := newTxHashFlags()
	err := txHashFlags.flagset.Parse(f.Flagset.Args()[1:])
	if err != nil {
		fmt.Printf("failed to parse subcommand args: %s\n", err)
		os.Exit(1)
	}
	files := txHashFlags.flagset.Args()
	if len(files) == 0 {
		fmt.Printf("You must specify at least one transaction file\n")
		os.Exit(1)
	}

	block := ledger.NoBlock
	if txHashFlags.block >= 0 {
		block = ledger.AtBlock(uint64(txHashFlags.block))
	}

	reqs := make([]starknet.HashRequest, 0, len(files))
	for _, file := range files {
		tx, err := loadTransaction(file, txHashFlags.cbor)
		if err != nil {
			fmt.Printf("ERROR: %s: %s\n", file, err)
			os.Exit(1)
		}
		reqs = append(
			reqs,
			starknet.HashRequest{
				Transaction: tx,
				IsQuery:     txHashFlags.query,
				Block:       block,
			},
		)
	}

	t := common.CreateTransactionHasher(f)

	if txHashFlags.preimage {
		for idx, req := range reqs {
			fmt.Printf("%s:\n", files[idx])
			for _, elem := range t.Preimage(req.Transaction, req.IsQuery, req.Block) {
				fmt.Printf("  %s\n", elem.String())
			}
		}
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	hashes, err := t.HashBatch(ctx, reqs)
	if err != nil {
		fmt.Printf("ERROR: %s\n", err)
		os.Exit(1)
	}
	for idx, hash := range hashes {
		fmt.Printf("%s: %s\n", files[idx], hash.String())
	}
}

func loadTransaction(file string, isCbor bool) (ledger.Transaction, error) {
	data, err := os.ReadFile(file)
	if err != nil {
		return nil, err
	}
	if isCbor {
		cborData, err := hex.DecodeString(strings.TrimSpace(string(data)))
		if err != nil {
			return nil, fmt.Errorf("decode CBOR hex: %w", err)
		}
		return ledger.NewTransactionFromEnvelope(cborData)
	}
	return ledger.NewTransactionFromJson(data)
}
