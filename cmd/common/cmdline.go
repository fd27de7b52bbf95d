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

package common

import (
	"flag"
	"fmt"
	"os"
	"time"

	gardor "github.com/blinklabs-io/gardor"
)

type GlobalFlags struct {
	Flagset  *flag.FlagSet
	Endpoint string
	Host     string
	Network  string
	UseTls   bool
	Timeout  int
}

func NewGlobalFlags() *GlobalFlags {
	f := &GlobalFlags{
		Flagset: flag.NewFlagSet(os.Args[0], flag.ExitOnError),
	}
	f.Flagset.StringVar(
		&f.Endpoint,
		"endpoint",
		"",
		"full node API URL, e.g. http://localhost:27876 (overrides -host/-network)",
	)
	f.Flagset.StringVar(
		&f.Host,
		"host",
		"localhost",
		"node host name",
	)
	f.Flagset.StringVar(
		&f.Network,
		"network",
		"mainnet",
		"specifies network that node is participating in",
	)
	f.Flagset.BoolVar(&f.UseTls, "tls", false, "enable TLS")
	f.Flagset.IntVar(
		&f.Timeout,
		"timeout",
		30,
		"node API timeout in seconds",
	)
	return f
}

func (f *GlobalFlags) Parse() {
	if err := f.Flagset.Parse(os.Args[1:]); err != nil {
		fmt.Printf("failed to parse command args: %s\n", err)
		os.Exit(1)
	}
	if gardor.NetworkByName(f.Network) == gardor.NetworkInvalid {
		fmt.Printf("Invalid network specified: %s\n", f.Network)
		os.Exit(1)
	}
}

// CreateClient builds a node API client from the global flags
func CreateClient(f *GlobalFlags) *gardor.Client {
	client, err := gardor.New(
		gardor.WithEndpoint(f.Endpoint),
		gardor.WithHost(f.Host),
		gardor.WithNetwork(gardor.NetworkByName(f.Network)),
		gardor.WithSecure(f.UseTls),
		gardor.WithTimeout(time.Duration(f.Timeout)*time.Second),
	)
	if err != nil {
		fmt.Printf("ERROR: %s\n", err)
		os.Exit(1)
	}
	return client
}
