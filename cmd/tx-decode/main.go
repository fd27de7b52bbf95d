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
	"encoding/hex"
	"fmt"
	"os"
	"strings"

	"github.com/blinklabs-io/gardor/cmd/common"
	"github.com/blinklabs-io/gardor/json"
	"github.com/blinklabs-io/gardor/ledger"
)

type txDecodeFlags struct {
	*common.GlobalFlags
	txHex  string
	file   string
	asJson bool
}

func main() {
	// Parse commandline
	f := txDecodeFlags{
		GlobalFlags: common.NewGlobalFlags(),
	}
	f.Flagset.StringVar(&f.txHex, "hex", "", "transaction bytes in hex")
	f.Flagset.StringVar(
		&f.file,
		"file",
		"",
		"file containing the transaction (hex bytes or JSON document)",
	)
	f.Flagset.BoolVar(
		&f.asJson,
		"json",
		false,
		"input is a JSON transaction document",
	)
	f.Parse()

	input := f.txHex
	if input == "" && f.file != "" {
		data, err := os.ReadFile(f.file)
		if err != nil {
			fmt.Printf("ERROR: %s\n", err)
			os.Exit(1)
		}
		input = string(data)
	}
	if input == "" {
		fmt.Printf("You must specify one of -hex or -file\n\n")
		f.Flagset.PrintDefaults()
		os.Exit(1)
	}

	// Decoding is local: the built-in mainnet registry resolves all
	// references
	reg := ledger.Ardor()
	var tx *ledger.Transaction
	var err error
	if f.asJson {
		var obj json.Object
		obj, err = json.Decode([]byte(input))
		if err == nil {
			tx, err = ledger.TransactionFromJson(reg, obj)
		}
	} else {
		var data []byte
		data, err = hex.DecodeString(strings.TrimSpace(input))
		if err == nil {
			tx, err = ledger.TransactionFromBytes(reg, data)
		}
	}
	if err != nil {
		fmt.Printf("ERROR: %s\n", err)
		os.Exit(1)
	}

	fmt.Print(tx.Describe(reg))
	if tx.Signed() {
		fmt.Printf("Signature verified:  %v\n", tx.VerifySignature())
	}
}
