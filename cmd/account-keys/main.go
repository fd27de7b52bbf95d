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
	"bufio"
	"encoding/hex"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/blinklabs-io/gardor/crypto"
	"github.com/blinklabs-io/gardor/ledger/common"
)

func main() {
	// Parse commandline
	flagset := flag.NewFlagSet(os.Args[0], flag.ExitOnError)
	secret := flagset.String(
		"secret",
		"",
		"secret phrase (read from stdin when absent)",
	)
	prefix := flagset.String(
		"prefix",
		"ARDOR",
		"account address prefix",
	)
	if err := flagset.Parse(os.Args[1:]); err != nil {
		fmt.Printf("failed to parse command args: %s\n", err)
		os.Exit(1)
	}

	secretPhrase := *secret
	if secretPhrase == "" {
		fmt.Print("Secret phrase: ")
		line, err := bufio.NewReader(os.Stdin).ReadString('\n')
		if err != nil {
			fmt.Printf("ERROR: %s\n", err)
			os.Exit(1)
		}
		secretPhrase = strings.TrimRight(line, "\r\n")
	}
	if secretPhrase == "" {
		fmt.Printf("No secret phrase given\n")
		os.Exit(1)
	}

	publicKey, err := crypto.PublicKey(secretPhrase)
	if err != nil {
		fmt.Printf("ERROR: %s\n", err)
		os.Exit(1)
	}
	accountId := common.AccountId(publicKey)

	fmt.Printf("Public key: %s\n", hex.EncodeToString(publicKey))
	fmt.Printf("Account id: %s\n", common.IdToString(accountId))
	fmt.Printf("Account: %s\n", common.AccountRsId(*prefix, accountId))
}
