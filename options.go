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

import (
	"net/http"
	"time"

	"github.com/blinklabs-io/gardor/ledger/common"
)

type ClientOptionFunc func(*Client)

// WithEndpoint specifies the full API base URL, e.g.
// "http://localhost:27876". It overrides the network port selection.
func WithEndpoint(endpoint string) ClientOptionFunc {
	return func(c *Client) {
		c.endpoint = endpoint
	}
}

// WithHost specifies the node host name. The API port comes from the
// selected network.
func WithHost(host string) ClientOptionFunc {
	return func(c *Client) {
		c.host = host
	}
}

// WithNetwork specifies the node network
func WithNetwork(network Network) ClientOptionFunc {
	return func(c *Client) {
		c.network = network
	}
}

// WithHTTPClient specifies the HTTP client to use
func WithHTTPClient(httpClient *http.Client) ClientOptionFunc {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// WithTimeout specifies the per-call HTTP timeout
func WithTimeout(timeout time.Duration) ClientOptionFunc {
	return func(c *Client) {
		c.timeout = timeout
	}
}

// WithRegistry specifies a pre-built registry, skipping the need for Init
func WithRegistry(registry *common.Registry) ClientOptionFunc {
	return func(c *Client) {
		c.registry = registry
	}
}

// WithSecure selects HTTPS connections on the network's SSL API port
func WithSecure(secure bool) ClientOptionFunc {
	return func(c *Client) {
		c.secure = secure
	}
}
