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
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/blinklabs-io/gardor/crypto"
	"github.com/blinklabs-io/gardor/json"
	"github.com/blinklabs-io/gardor/ledger"
	"github.com/blinklabs-io/gardor/ledger/common"
	"github.com/blinklabs-io/gardor/ledger/payment"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

const testSecretPhrase = "rabbit frozen banana glove subject crystal laugh"

// testServer runs a node API stub that dispatches on requestType
func testServer(
	t *testing.T,
	handlers map[string]func(r *http.Request) json.Object,
	opts ...ClientOptionFunc,
) (*Client, func()) {
	t.Helper()
	srv := httptest.NewServer(
		http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			require.NoError(t, r.ParseForm())
			handler, ok := handlers[r.PostFormValue("requestType")]
			if !ok {
				handler = func(r *http.Request) json.Object {
					return json.Object{
						"errorCode":        int64(1),
						"errorDescription": "Incorrect request",
					}
				}
			}
			data, err := json.Encode(handler(r))
			require.NoError(t, err)
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write(data)
		}),
	)
	c, err := New(
		append(
			[]ClientOptionFunc{
				WithEndpoint(srv.URL),
				WithHTTPClient(srv.Client()),
			},
			opts...,
		)...,
	)
	require.NoError(t, err)
	cleanup := func() {
		srv.Client().CloseIdleConnections()
		srv.Close()
	}
	return c, cleanup
}

func testConstants() json.Object {
	return json.Object{
		"epochBeginning": int64(1514764800000),
		"accountPrefix":  "ARDOR",
		"chainProperties": json.Object{
			"1": json.Object{
				"name":     "ARDR",
				"id":       int64(1),
				"decimals": int64(8),
			},
			"2": json.Object{
				"name":     "IGNIS",
				"id":       int64(2),
				"decimals": int64(8),
			},
		},
		"transactionTypes": json.Object{
			"0": json.Object{
				"subtypes": json.Object{
					"0": json.Object{"name": "OrdinaryPayment"},
				},
			},
		},
		"votingModels": json.Object{
			"NONE":    int64(-1),
			"ACCOUNT": int64(0),
		},
	}
}

func testSignedPayment(t *testing.T) *ledger.Transaction {
	t.Helper()
	publicKey, err := crypto.PublicKey(testSecretPhrase)
	require.NoError(t, err)
	tx := &ledger.Transaction{
		Chain:           common.Chain{Id: 2, Name: "IGNIS", Decimals: 8},
		Version:         1,
		Timestamp:       123456789,
		Deadline:        1440,
		SenderPublicKey: publicKey,
		RecipientId:     17478386712446997865,
		Amount:          250000000,
		Fee:             100000000,
		Attachment:      &payment.OrdinaryPayment{},
	}
	require.NoError(t, tx.Sign(testSecretPhrase))
	return tx
}

func TestCallNodeError(t *testing.T) {
	defer goleak.VerifyNone(t)
	c, cleanup := testServer(t, nil)
	defer cleanup()
	_, err := c.Call(context.Background(), "getBlockchainStatus", nil)
	var nodeErr NodeError
	require.ErrorAs(t, err, &nodeErr)
	assert.Equal(t, int64(1), nodeErr.Code)
	assert.Equal(t, "Incorrect request", nodeErr.Description)
}

func TestInit(t *testing.T) {
	defer goleak.VerifyNone(t)
	c, cleanup := testServer(t, map[string]func(*http.Request) json.Object{
		"getConstants": func(r *http.Request) json.Object {
			return testConstants()
		},
	})
	defer cleanup()
	require.NoError(t, c.Init(context.Background()))
	require.NotNil(t, c.Registry())
	chain, ok := c.Registry().Chain(2)
	require.True(t, ok)
	assert.Equal(t, "IGNIS", chain.Name)
	assert.Equal(t, "ARDOR", c.Registry().AccountPrefix())
}

func TestBroadcast(t *testing.T) {
	defer goleak.VerifyNone(t)
	tx := testSignedPayment(t)
	txBytes, err := tx.Bytes()
	require.NoError(t, err)
	c, cleanup := testServer(t, map[string]func(*http.Request) json.Object{
		"broadcastTransaction": func(r *http.Request) json.Object {
			assert.Equal(
				t,
				hex.EncodeToString(txBytes),
				r.PostFormValue("transactionBytes"),
			)
			return json.Object{
				"fullHash": hex.EncodeToString(tx.FullHash()),
			}
		},
	})
	defer cleanup()
	fullHash, err := c.Broadcast(context.Background(), tx)
	require.NoError(t, err)
	assert.Equal(t, tx.FullHash(), fullHash)
}

func TestBroadcastUnsigned(t *testing.T) {
	c, err := New()
	require.NoError(t, err)
	tx := testSignedPayment(t)
	tx.Signature = nil
	_, err = c.Broadcast(context.Background(), tx)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not signed")
}

func TestTransaction(t *testing.T) {
	defer goleak.VerifyNone(t)
	tx := testSignedPayment(t)
	c, cleanup := testServer(t, map[string]func(*http.Request) json.Object{
		"getTransaction": func(r *http.Request) json.Object {
			assert.Equal(t, "2", r.PostFormValue("chain"))
			assert.Equal(
				t,
				hex.EncodeToString(tx.FullHash()),
				r.PostFormValue("fullHash"),
			)
			return tx.Json()
		},
	}, WithRegistry(ledger.Ardor()))
	defer cleanup()
	fetched, err := c.Transaction(
		context.Background(),
		2,
		hex.EncodeToString(tx.FullHash()),
	)
	require.NoError(t, err)
	assert.Equal(t, tx.FullHash(), fetched.FullHash())
	assert.True(t, fetched.VerifySignature())
}

func TestTransactionNoRegistry(t *testing.T) {
	c, err := New()
	require.NoError(t, err)
	_, err = c.Transaction(context.Background(), 2, "00")
	require.ErrorIs(t, err, ErrNoRegistry)
}
