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

package ledger

import (
	"testing"
	"time"

	"github.com/blinklabs-io/gardor/json"
	"github.com/blinklabs-io/gardor/ledger/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArdorChains(t *testing.T) {
	reg := Ardor()
	for _, expected := range []common.Chain{
		{Id: 1, Name: "ARDR", Decimals: 8},
		{Id: 2, Name: "IGNIS", Decimals: 8},
		{Id: 3, Name: "AEUR", Decimals: 4},
		{Id: 4, Name: "BITSWIFT", Decimals: 8},
	} {
		chain, ok := reg.Chain(expected.Id)
		require.True(t, ok)
		assert.Equal(t, expected, chain)
		byName, ok := reg.ChainByName(expected.Name)
		require.True(t, ok)
		assert.Equal(t, expected, byName)
	}
	_, ok := reg.Chain(5)
	assert.False(t, ok)
}

func TestArdorTransactionTypes(t *testing.T) {
	reg := Ardor()
	txType, ok := reg.TransactionType(0, 0)
	require.True(t, ok)
	assert.Equal(t, "OrdinaryPayment", txType.Name)
	txType, ok = reg.TransactionType(-2, 0)
	require.True(t, ok)
	assert.Equal(t, "FxtPayment", txType.Name)
	txType, ok = reg.TransactionType(-1, 0)
	require.True(t, ok)
	assert.Equal(t, "ChildChainBlock", txType.Name)
	_, ok = reg.TransactionType(12, 0)
	assert.False(t, ok)

	// every type except the child chain block binds an attachment codec
	for _, bt := range builtinTypes {
		_, ok := reg.AttachmentCodec(bt.txType, bt.subtype)
		assert.Equal(t, bt.codec != nil, ok, bt.name)
	}
}

func TestArdorModels(t *testing.T) {
	reg := Ardor()
	assert.Equal(t, "NONE", reg.VotingModelName(-1))
	assert.Equal(t, "ACCOUNT", reg.VotingModelName(0))
	assert.Equal(t, "HASH", reg.VotingModelName(5))
	assert.Equal(t, "COIN", reg.HoldingTypeName(0))
	assert.Equal(t, "CURRENCY", reg.HoldingTypeName(2))
	assert.Equal(t, "NONE", reg.MinBalanceModelName(0))
	assert.Equal(t, "SHA256", reg.HashAlgorithmName(2))
	assert.Equal(t, "RIPEMD160_SHA256", reg.HashAlgorithmName(62))
	assert.Equal(t, "ARDOR", reg.AccountPrefix())
}

func TestArdorEpoch(t *testing.T) {
	reg := Ardor()
	epoch := time.Date(2018, 1, 1, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, epoch, reg.Epoch())
	assert.Equal(t, epoch.Add(time.Hour), reg.TimeFromTimestamp(3600))
	assert.Equal(t, int32(3600), reg.TimestampForTime(epoch.Add(time.Hour)))
}

func TestArdorAppendixCodecs(t *testing.T) {
	reg := Ardor()
	codecs := reg.AppendixCodecs()
	require.Len(t, codecs, 7)
	assert.Equal(t, common.FlagMessage, codecs[0].Flag)
	assert.Equal(t, common.FlagPhasing, codecs[len(codecs)-1].Flag)
	codec, ok := reg.AppendixCodec(common.FlagPhasing)
	require.True(t, ok)
	assert.Equal(t, "Phasing", codec.Name)
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
			"2": json.Object{
				"subtypes": json.Object{
					"0": json.Object{"name": "AssetIssuance"},
					"1": json.Object{"name": "AssetTransfer"},
				},
			},
			"-2": json.Object{
				"subtypes": json.Object{
					"0": json.Object{"name": "FxtPayment"},
				},
			},
		},
		"votingModels": json.Object{
			"NONE":    int64(-1),
			"ACCOUNT": int64(0),
			"COIN":    int64(1),
		},
		"holdingTypes": json.Object{
			"COIN":  int64(0),
			"ASSET": int64(1),
		},
		"minBalanceModels": json.Object{
			"NONE": int64(0),
			"COIN": int64(1),
		},
		"phasingHashAlgorithms": json.Object{
			"SHA256": int64(2),
		},
	}
}

func TestFromConstants(t *testing.T) {
	reg, err := FromConstants(testConstants())
	require.NoError(t, err)
	chain, ok := reg.Chain(2)
	require.True(t, ok)
	assert.Equal(t, "IGNIS", chain.Name)
	assert.Equal(t, 8, chain.Decimals)
	txType, ok := reg.TransactionType(2, 1)
	require.True(t, ok)
	assert.Equal(t, "AssetTransfer", txType.Name)
	txType, ok = reg.TransactionType(-2, 0)
	require.True(t, ok)
	assert.Equal(t, "FxtPayment", txType.Name)
	assert.Equal(t, "NONE", reg.VotingModelName(-1))
	assert.Equal(t, "ASSET", reg.HoldingTypeName(1))
	assert.Equal(t, "SHA256", reg.HashAlgorithmName(2))
	assert.Equal(t, "ARDOR", reg.AccountPrefix())
	assert.Equal(
		t,
		time.Date(2018, 1, 1, 0, 0, 0, 0, time.UTC),
		reg.Epoch(),
	)
	// the built-in codec table still supplies the attachment codecs
	_, ok = reg.AttachmentCodec(2, 1)
	assert.True(t, ok)
}

func TestFromConstantsDecoded(t *testing.T) {
	// same document after a trip through the JSON codec, so numbers arrive
	// as json.Number
	data, err := json.Encode(testConstants())
	require.NoError(t, err)
	obj, err := json.Decode(data)
	require.NoError(t, err)
	reg, err := FromConstants(obj)
	require.NoError(t, err)
	chain, ok := reg.Chain(1)
	require.True(t, ok)
	assert.Equal(t, "ARDR", chain.Name)
	assert.Equal(t, "COIN", reg.VotingModelName(1))
}

func TestFromConstantsBadChainKey(t *testing.T) {
	obj := json.Object{
		"chainProperties": json.Object{
			"oops": json.Object{"name": "X", "decimals": int64(8)},
		},
	}
	_, err := FromConstants(obj)
	var valueErr json.ValueError
	require.ErrorAs(t, err, &valueErr)
}
