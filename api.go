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
	"context"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/blinklabs-io/gardor/json"
	"github.com/blinklabs-io/gardor/ledger"
)

// NodeError is an error reply from the node API
type NodeError struct {
	Code        int64
	Description string
}

func (e NodeError) Error() string {
	return fmt.Sprintf("node error %d: %s", e.Code, e.Description)
}

// ErrNoRegistry indicates a call that decodes transactions before a
// registry was installed with Init or WithRegistry
var ErrNoRegistry = errors.New("client registry is not initialized")

// Call performs a node API request and returns the reply document. Node
// error replies are returned as NodeError.
func (c *Client) Call(
	ctx context.Context,
	requestType string,
	params url.Values,
) (json.Object, error) {
	if params == nil {
		params = url.Values{}
	}
	params.Set("requestType", requestType)
	req, err := http.NewRequestWithContext(
		ctx,
		http.MethodPost,
		c.url(),
		strings.NewReader(params.Encode()),
	)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf(
			"node returned HTTP status %d",
			resp.StatusCode,
		)
	}
	obj, err := json.Decode(body)
	if err != nil {
		return nil, fmt.Errorf("decode node reply: %w", err)
	}
	if code := obj.Int64("errorCode"); code != 0 {
		return nil, NodeError{
			Code:        code,
			Description: obj.String("errorDescription"),
		}
	}
	return obj, nil
}

// Constants fetches the node's getConstants response
func (c *Client) Constants(ctx context.Context) (json.Object, error) {
	return c.Call(ctx, "getConstants", nil)
}

// Init fetches the node constants and installs the registry built from
// them. Calls that decode transactions require an installed registry.
func (c *Client) Init(ctx context.Context) error {
	constants, err := c.Constants(ctx)
	if err != nil {
		return err
	}
	registry, err := ledger.FromConstants(constants)
	if err != nil {
		return err
	}
	c.registry = registry
	return nil
}

// Broadcast submits a signed transaction and returns its full hash as
// reported by the node
func (c *Client) Broadcast(
	ctx context.Context,
	tx *ledger.Transaction,
) ([]byte, error) {
	if !tx.Signed() {
		return nil, errors.New("transaction is not signed")
	}
	data, err := tx.Bytes()
	if err != nil {
		return nil, err
	}
	params := url.Values{}
	params.Set("transactionBytes", hex.EncodeToString(data))
	obj, err := c.Call(ctx, "broadcastTransaction", params)
	if err != nil {
		return nil, err
	}
	return obj.HexBytes("fullHash")
}

// Transaction fetches a transaction by chain and full hash and decodes it
func (c *Client) Transaction(
	ctx context.Context,
	chain uint32,
	fullHash string,
) (*ledger.Transaction, error) {
	if c.registry == nil {
		return nil, ErrNoRegistry
	}
	params := url.Values{}
	params.Set("chain", strconv.FormatUint(uint64(chain), 10))
	params.Set("fullHash", fullHash)
	obj, err := c.Call(ctx, "getTransaction", params)
	if err != nil {
		return nil, err
	}
	return ledger.TransactionFromJson(c.registry, obj)
}
