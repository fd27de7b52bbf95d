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
	"errors"
	"testing"
	"time"

	"github.com/blinklabs-io/gardor/crypto"
	"github.com/blinklabs-io/gardor/internal/test"
	"github.com/blinklabs-io/gardor/json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReaderWriterRoundTrip(t *testing.T) {
	w := NewWriter()
	w.Uint8(0x12)
	w.Int8(-5)
	w.Uint16(0xbeef)
	w.Int16(-1234)
	w.Uint32(0xdeadbeef)
	w.Int32(-123456789)
	w.Uint64(0xfeedfacecafebeef)
	w.Int64(-1234567890123456789)
	w.Bytes([]byte{0xaa, 0xbb, 0xcc})
	w.String8("short")
	w.String16("longer string value")

	r := NewReader(w.Data())
	assert.Equal(t, uint8(0x12), r.Uint8())
	assert.Equal(t, int8(-5), r.Int8())
	assert.Equal(t, uint16(0xbeef), r.Uint16())
	assert.Equal(t, int16(-1234), r.Int16())
	assert.Equal(t, uint32(0xdeadbeef), r.Uint32())
	assert.Equal(t, int32(-123456789), r.Int32())
	assert.Equal(t, uint64(0xfeedfacecafebeef), r.Uint64())
	assert.Equal(t, int64(-1234567890123456789), r.Int64())
	assert.Equal(t, []byte{0xaa, 0xbb, 0xcc}, r.Bytes(3))
	assert.Equal(t, "short", r.String8())
	assert.Equal(t, "longer string value", r.String16())
	assert.Equal(t, 0, r.Remaining())
	assert.NoError(t, r.Err())
}

func TestReaderLittleEndian(t *testing.T) {
	r := NewReader(
		test.DecodeHexString("0100000002000000000000000300"),
	)
	assert.Equal(t, uint32(1), r.Uint32())
	assert.Equal(t, uint64(2), r.Uint64())
	assert.Equal(t, uint16(3), r.Uint16())
	assert.NoError(t, r.Err())
}

func TestReaderTruncated(t *testing.T) {
	r := NewReader([]byte{0x01, 0x02})
	assert.Equal(t, uint16(0x0201), r.Uint16())
	// Reads past the end return zero values and latch the error
	assert.Equal(t, uint32(0), r.Uint32())
	assert.Equal(t, uint8(0), r.Uint8())
	assert.Nil(t, r.Bytes(4))
	assert.ErrorIs(t, r.Err(), ErrDataTruncated)
}

func TestFormatAmount(t *testing.T) {
	testDefs := []struct {
		amount   int64
		decimals int
		expected string
	}{
		{123456, 4, "12.3456"},
		{5, 2, "0.05"},
		{0, 8, "0.00000000"},
		{100000000, 8, "1.00000000"},
		{-123456, 4, "-12.3456"},
		{42, 0, "42"},
		{-7, 3, "-0.007"},
	}
	for _, testDef := range testDefs {
		assert.Equal(
			t,
			testDef.expected,
			FormatAmount(testDef.amount, testDef.decimals),
		)
	}
}

func TestParseAmount(t *testing.T) {
	testDefs := []struct {
		input    string
		decimals int
		expected int64
	}{
		{"12.3456", 4, 123456},
		{"0.05", 2, 5},
		{"1", 8, 100000000},
		{"-0.007", 3, -7},
		{"42", 0, 42},
	}
	for _, testDef := range testDefs {
		amount, err := ParseAmount(testDef.input, testDef.decimals)
		require.NoError(t, err)
		assert.Equal(t, testDef.expected, amount)
		// Formatting back reproduces the canonical rendering
		reformatted := FormatAmount(amount, testDef.decimals)
		reparsed, err := ParseAmount(reformatted, testDef.decimals)
		require.NoError(t, err)
		assert.Equal(t, amount, reparsed)
	}
	// Too many fraction digits
	_, err := ParseAmount("1.23456", 2)
	assert.Error(t, err)
	_, err = ParseAmount("not a number", 2)
	assert.Error(t, err)
}

func TestFullHashToId(t *testing.T) {
	fullHash := test.DecodeHexString(
		"efbeaddeefbeadde000000000000000000000000000000000000000000000000",
	)
	assert.Equal(t, uint64(0xdeadbeefdeadbeef), FullHashToId(fullHash))
	assert.Equal(t, uint64(0), FullHashToId(nil))
	assert.Equal(t, uint64(0), FullHashToId([]byte{0x01, 0x02}))
}

func TestAccountIds(t *testing.T) {
	publicKey, err := crypto.PublicKey("account id test phrase")
	require.NoError(t, err)
	accountId := AccountId(publicKey)
	assert.NotEqual(t, uint64(0), accountId)
	rsId := AccountRsId("ARDOR", accountId)
	assert.Contains(t, rsId, "ARDOR-")
	decoded, err := crypto.RsDecode(rsId[len("ARDOR-"):])
	require.NoError(t, err)
	assert.Equal(t, accountId, decoded)
}

func testRegistry() *Registry {
	reg := NewRegistry()
	reg.AddChain(Chain{Id: 1, Name: "ARDR", Decimals: 8})
	reg.AddChain(Chain{Id: 2, Name: "IGNIS", Decimals: 8})
	reg.AddChain(Chain{Id: 3, Name: "AEUR", Decimals: 4})
	reg.AddTransactionType(
		TransactionType{Type: 0, Subtype: 0, Name: "OrdinaryPayment"},
	)
	reg.AddTransactionType(
		TransactionType{Type: -2, Subtype: 0, Name: "FxtPayment"},
	)
	reg.AddVotingModel(0, "ACCOUNT")
	reg.AddVotingModel(-1, "NONE")
	reg.AddMinBalanceModel(0, "NONE")
	reg.AddMinBalanceModel(1, "COIN")
	reg.SetAccountPrefix("ARDOR")
	reg.SetEpoch(time.Date(2018, 1, 1, 0, 0, 0, 0, time.UTC))
	return reg
}

func TestRegistryChains(t *testing.T) {
	reg := testRegistry()
	chain, ok := reg.Chain(2)
	require.True(t, ok)
	assert.Equal(t, "IGNIS", chain.Name)
	chain, ok = reg.ChainByName("ignis")
	require.True(t, ok)
	assert.Equal(t, uint32(2), chain.Id)
	_, ok = reg.Chain(99)
	assert.False(t, ok)
	_, err := reg.MustChain(99)
	var unknownErr UnknownChainError
	require.True(t, errors.As(err, &unknownErr))
	assert.Equal(t, uint32(99), unknownErr.Id)
	chains := reg.Chains()
	require.Len(t, chains, 3)
	assert.Equal(t, uint32(1), chains[0].Id)
	assert.Equal(t, uint32(3), chains[2].Id)
}

func TestRegistryTransactionTypes(t *testing.T) {
	reg := testRegistry()
	tt, ok := reg.TransactionType(0, 0)
	require.True(t, ok)
	assert.Equal(t, "OrdinaryPayment", tt.Name)
	tt, ok = reg.TransactionType(-2, 0)
	require.True(t, ok)
	assert.Equal(t, "FxtPayment", tt.Name)
	// Unknown pairs are absent, not an error
	_, ok = reg.TransactionType(42, 42)
	assert.False(t, ok)
	// Negative and non-negative types with the same subtype do not collide
	assert.NotEqual(t, TypeKey(0, 0), TypeKey(-2, 0))
}

func TestRegistryTimestamps(t *testing.T) {
	reg := testRegistry()
	epoch := time.Date(2018, 1, 1, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, epoch, reg.TimeFromTimestamp(0))
	ts := reg.TimestampForTime(epoch.Add(3600 * time.Second))
	assert.Equal(t, int32(3600), ts)
	assert.Equal(t, epoch.Add(time.Hour), reg.TimeFromTimestamp(ts))
}

func TestPhasingParamsRoundTrip(t *testing.T) {
	params := PhasingParams{
		VotingModel:     0,
		Quorum:          2,
		MinBalance:      1000,
		Whitelist:       []uint64{0xdeadbeef, 0xfeedface},
		Holding:         2,
		MinBalanceModel: 1,
	}
	w := NewWriter()
	params.WriteBytes(w)
	r := NewReader(w.Data())
	decoded, err := PhasingParamsFromBytes(r)
	require.NoError(t, err)
	assert.Equal(t, params, decoded)

	obj := json.Object{}
	params.Json(obj)
	fromJson, err := PhasingParamsFromJson(obj)
	require.NoError(t, err)
	assert.Equal(t, params, fromJson)
}

func TestPhasingParamsTruncated(t *testing.T) {
	r := NewReader([]byte{0x00, 0x01})
	_, err := PhasingParamsFromBytes(r)
	assert.ErrorIs(t, err, ErrDataTruncated)
}

func TestChainTransactionIdRoundTrip(t *testing.T) {
	reg := testRegistry()
	fullHash := crypto.Sha256([]byte("chain transaction id test"))
	txId, err := NewChainTransactionId(reg, 2, fullHash)
	require.NoError(t, err)
	assert.Equal(t, FullHashToId(fullHash), txId.TransactionId())

	w := NewWriter()
	txId.WriteBytes(w)
	assert.Equal(t, 4+FullHashLen, w.Len())
	r := NewReader(w.Data())
	decoded, err := ChainTransactionIdFromBytes(reg, r)
	require.NoError(t, err)
	assert.Equal(t, txId, decoded)

	fromJson, err := ChainTransactionIdFromJson(reg, txId.Json())
	require.NoError(t, err)
	assert.Equal(t, txId, fromJson)
}

func TestChainTransactionIdUnknownChain(t *testing.T) {
	reg := testRegistry()
	fullHash := crypto.Sha256([]byte("unknown chain test"))
	_, err := NewChainTransactionId(reg, 42, fullHash)
	var unknownErr UnknownChainError
	assert.True(t, errors.As(err, &unknownErr))
}
