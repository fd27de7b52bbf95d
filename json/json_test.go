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

package json

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodePreservesPrecision(t *testing.T) {
	doc := []byte(`{"amountNQT": 9223372036854775807, "feeNQT": "100000000"}`)
	obj, err := Decode(doc)
	require.NoError(t, err)
	assert.Equal(t, int64(9223372036854775807), obj.Int64("amountNQT"))
	assert.Equal(t, int64(100000000), obj.Int64("feeNQT"))
}

func TestDecodeMalformed(t *testing.T) {
	_, err := Decode([]byte(`{"chain": `))
	assert.Error(t, err)
}

func TestInt64StringForms(t *testing.T) {
	testDefs := []struct {
		name     string
		doc      string
		expected int64
	}{
		{
			name:     "unsigned string above MaxInt64",
			doc:      `{"v": "18446744073709551615"}`,
			expected: -1,
		},
		{
			name:     "negative string",
			doc:      `{"v": "-42"}`,
			expected: -42,
		},
		{
			name:     "malformed string",
			doc:      `{"v": "12x"}`,
			expected: 0,
		},
		{
			name:     "missing key",
			doc:      `{}`,
			expected: 0,
		},
		{
			name:     "wrong type",
			doc:      `{"v": true}`,
			expected: 0,
		},
	}
	for _, testDef := range testDefs {
		obj, err := Decode([]byte(testDef.doc))
		require.NoError(t, err)
		assert.Equal(
			t,
			testDef.expected,
			obj.Int64("v"),
			"unexpected value for %s",
			testDef.name,
		)
	}
}

func TestId(t *testing.T) {
	obj, err := Decode(
		[]byte(`{"ecBlockId": "16922717224982554123", "empty": ""}`),
	)
	require.NoError(t, err)
	id, err := obj.Id("ecBlockId")
	require.NoError(t, err)
	assert.Equal(t, uint64(16922717224982554123), id)
	// Missing and empty values are not errors
	id, err = obj.Id("empty")
	require.NoError(t, err)
	assert.Equal(t, uint64(0), id)
	id, err = obj.Id("missing")
	require.NoError(t, err)
	assert.Equal(t, uint64(0), id)
}

func TestIdMalformed(t *testing.T) {
	obj, err := Decode([]byte(`{"block": "-123"}`))
	require.NoError(t, err)
	_, err = obj.Id("block")
	require.Error(t, err)
	var valueErr ValueError
	require.True(t, errors.As(err, &valueErr))
	assert.Equal(t, "block", valueErr.Key)
}

func TestIdList(t *testing.T) {
	obj, err := Decode(
		[]byte(`{"phasingWhitelist": ["123", "18446744073709551615"]}`),
	)
	require.NoError(t, err)
	ids, err := obj.IdList("phasingWhitelist")
	require.NoError(t, err)
	assert.Equal(t, []uint64{123, 18446744073709551615}, ids)
	ids, err = obj.IdList("missing")
	require.NoError(t, err)
	assert.Nil(t, ids)
}

func TestHexBytes(t *testing.T) {
	obj, err := Decode([]byte(`{"fullHash": "00ff10", "bad": "zz"}`))
	require.NoError(t, err)
	data, err := obj.HexBytes("fullHash")
	require.NoError(t, err)
	assert.Equal(t, []byte{0x00, 0xff, 0x10}, data)
	data, err = obj.HexBytes("missing")
	require.NoError(t, err)
	assert.Nil(t, data)
	_, err = obj.HexBytes("bad")
	assert.Error(t, err)
}

func TestNestedAccess(t *testing.T) {
	doc := []byte(`{
		"attachment": {"version.Message": 1, "messageIsText": true},
		"transactions": [{"chain": 2}, {"chain": 1}],
		"options": ["yes", "no"]
	}`)
	obj, err := Decode(doc)
	require.NoError(t, err)
	attachment := obj.Object("attachment")
	assert.Equal(t, uint8(1), attachment.Uint8("version.Message"))
	assert.True(t, attachment.Bool("messageIsText"))
	txList := obj.ObjectList("transactions")
	require.Len(t, txList, 2)
	assert.Equal(t, int(2), txList[0].Int("chain"))
	assert.Equal(t, []string{"yes", "no"}, obj.StringList("options"))
	// Missing nested object yields an empty object
	assert.Equal(t, Object{}, obj.Object("missing"))
}

func TestEncodeRoundTrip(t *testing.T) {
	obj := Object{
		"chain":     uint32(2),
		"amountNQT": int64(123456789),
		"sender":    "16922717224982554123",
	}
	data, err := Encode(obj)
	require.NoError(t, err)
	decoded, err := Decode(data)
	require.NoError(t, err)
	assert.Equal(t, int64(123456789), decoded.Int64("amountNQT"))
	assert.Equal(t, uint64(16922717224982554123), decoded.Uint64("sender"))
	assert.Equal(t, int(2), decoded.Int("chain"))
}
