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

// Package gardor is a client-side library for the Ardor (NXT2) multi-chain
// platform: a transaction codec between wire bytes, JSON documents, and
// typed values, the platform's Curve25519 signature and encrypted-payload
// schemes, and an HTTP client for the node API.
package gardor

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/blinklabs-io/gardor/ledger/common"
)

const defaultTimeout = 30 * time.Second

// Client talks to a node's HTTP API. It is safe for concurrent use after
// construction; Init installs the registry and is not safe to race with
// in-flight calls.
type Client struct {
	host       string
	endpoint   string
	network    Network
	secure     bool
	timeout    time.Duration
	httpClient *http.Client
	registry   *common.Registry
}

// New builds a node API client. By default it talks plain HTTP to a
// mainnet node on localhost.
func New(opts ...ClientOptionFunc) (*Client, error) {
	c := &Client{
		host:    "localhost",
		network: NetworkMainnet,
		timeout: defaultTimeout,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.network == NetworkInvalid {
		return nil, fmt.Errorf("unknown network")
	}
	if c.httpClient == nil {
		c.httpClient = &http.Client{Timeout: c.timeout}
	}
	return c, nil
}

// Registry returns the registry used to decode transactions, or nil before
// Init or WithRegistry
func (c *Client) Registry() *common.Registry {
	return c.registry
}

// url resolves the API endpoint. An explicit endpoint is used as-is; a bare
// host is combined with the network's API port.
func (c *Client) url() string {
	if c.endpoint != "" {
		return strings.TrimSuffix(c.endpoint, "/") + "/nxt"
	}
	if c.secure {
		return fmt.Sprintf("https://%s:%d/nxt", c.host, c.network.ApiSSLPort)
	}
	return fmt.Sprintf("http://%s:%d/nxt", c.host, c.network.ApiPort)
}
