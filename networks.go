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

package gardor

// Network definitions
var (
	NetworkMainnet = Network{
		Name:       "mainnet",
		ApiPort:    27876,
		ApiSSLPort: 26877,
	}
	NetworkTestnet = Network{
		Name:       "testnet",
		ApiPort:    26876,
		ApiSSLPort: 26877,
	}

	// NetworkInvalid is used as a return value for lookup functions when a
	// network isn't found
	NetworkInvalid = Network{Name: "invalid"}
)

// List of valid networks for use in lookup functions
var networks = []Network{
	NetworkMainnet,
	NetworkTestnet,
}

// NetworkByName returns a predefined network by name
func NetworkByName(name string) Network {
	for _, network := range networks {
		if network.Name == name {
			return network
		}
	}
	return NetworkInvalid
}

// Network represents a node network with its default API ports
type Network struct {
	Name       string
	ApiPort    uint
	ApiSSLPort uint
}

func (n Network) String() string {
	return n.Name
}
