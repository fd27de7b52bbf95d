// Copyright 2026 Blink Labs Software
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
	"fmt"
	"os"
	"strings"

	"github.com/blinklabs-io/gardor/cmd/common"
	"github.com/blinklabs-io/gardor/ledger"
)

type txSubmitFlags struct {
	txHex       string
	unsignedHex string
	secret      string
	*common.GlobalFlags
}

func main() {
	// Parse commandline
	f := txSubmitFlags{
		GlobalFlags: common.NewGlobalFlags(),
	}
	f.Flagset.StringVar(&f.txHex, "hex", "", "signed transaction bytes in hex")
	f.Flagset.StringVar(
		&f.unsignedHex,
		"unsigned",
		"",
		"unsigned transaction bytes in hex (requires -secret)",
	)
	f.Flagset.StringVar(
		&f.secret,
		"secret",
		"",
		"secret phrase to sign the unsigned transaction with",
	)
	f.Parse()

	input := f.txHex
	if input == "" {
		input = f.unsignedHex
	}
	if input == "" {
		fmt.Printf("You must specify one of -hex or -unsigned\n\n")
		f.Flagset.PrintDefaults()
		os.Exit(1)
	}
	data, err := hex.DecodeString(strings.TrimSpace(input))
	if err != nil {
		fmt.Printf("ERROR: %s\n", err)
		os.Exit(1)
	}

	// Create client and fetch the node constants so the transaction
	// decodes against the node's own chain set
	client := common.CreateClient(f.GlobalFlags)
	ctx := context.Background()
	if err := client.Init(ctx); err != nil {
		fmt.Printf("ERROR: %s\n", err)
		os.Exit(1)
	}

	tx, err := ledger.TransactionFromBytes(client.Registry(), data)
	if err != nil {
		fmt.Printf("ERROR: %s\n", err)
		os.Exit(1)
	}
	if !tx.Signed() {
		if f.secret == "" {
			fmt.Printf("Transaction is unsigned and no -secret was given\n")
			os.Exit(1)
		}
		if err := tx.Sign(f.secret); err != nil {
			fmt.Printf("ERROR: %s\n", err)
			os.Exit(1)
		}
	}

	fullHash, err := client.Broadcast(ctx, tx)
	if err != nil {
		fmt.Printf("ERROR: %s\n", err)
		os.Exit(1)
	}

	fmt.Printf("Transaction broadcast\n")
	fmt.Printf("Full hash: %s\n", hex.EncodeToString(fullHash))
	fmt.Printf("Id: %s\n", tx.IdString())
}
