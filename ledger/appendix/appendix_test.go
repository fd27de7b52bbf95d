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

package appendix

import (
	"testing"

	"github.com/blinklabs-io/gardor/crypto"
	"github.com/blinklabs-io/gardor/internal/test"
	"github.com/blinklabs-io/gardor/json"
	"github.com/blinklabs-io/gardor/ledger/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRegistry() *common.Registry {
	reg := common.NewRegistry()
	reg.AddChain(common.Chain{Id: 2, Name: "IGNIS", Decimals: 8})
	reg.AddHashAlgorithm(2, "SHA256")
	return reg
}

func testEncryptedData() crypto.EncryptedData {
	return crypto.EncryptedData{
		Data: test.DecodeHexString(
			"9e3779b97f4a7c15f39cc0605cedc8341082276bf3a27251f86c6a11d0c18e95",
		),
		Nonce: test.DecodeHexString(
			"c41673ce4c45dc0736313b1a3cb3c4fe76699ec41a57c681a22e1a3b3a0bfae1",
		),
	}
}

func roundTrip(t *testing.T, codec common.AppendixCodec, a common.Appendix) {
	t.Helper()
	reg := testRegistry()
	w := common.NewWriter()
	a.WriteBytes(w)
	fromBytes, err := codec.FromBytes(reg, common.NewReader(w.Data()))
	require.NoError(t, err)
	assert.Equal(t, a, fromBytes)
	obj := json.Object{}
	a.Json(obj)
	fromJson, err := codec.FromJson(reg, obj)
	require.NoError(t, err)
	assert.Equal(t, a, fromJson)
}

func TestCodecsOrderedByFlag(t *testing.T) {
	codecs := Codecs()
	require.NotEmpty(t, codecs)
	for i := 1; i < len(codecs); i++ {
		assert.Less(t, codecs[i-1].Flag, codecs[i].Flag)
	}
}

func TestMessageRoundTrip(t *testing.T) {
	roundTrip(t, MessageCodec, &Message{
		Message: []byte("hello world"),
		IsText:  true,
	})
	roundTrip(t, MessageCodec, &Message{
		Message: []byte{0x01, 0x02, 0x03},
		IsText:  false,
	})
}

func TestEncryptedMessageRoundTrip(t *testing.T) {
	roundTrip(t, EncryptedMessageCodec, &EncryptedMessage{
		Data:         testEncryptedData(),
		IsText:       true,
		IsCompressed: true,
	})
}

func TestEncryptToSelfMessageRoundTrip(t *testing.T) {
	roundTrip(t, EncryptToSelfMessageCodec, &EncryptToSelfMessage{
		Data:   testEncryptedData(),
		IsText: true,
	})
}

func TestEncryptedMessageBadLength(t *testing.T) {
	// 8 bytes of ciphertext is less than one AES block
	w := common.NewWriter()
	w.Uint8(1)
	w.Uint8(0)
	w.Int16(8)
	w.Bytes(make([]byte, 8))
	w.Bytes(make([]byte, crypto.SharedKeyNonceLen))
	_, err := EncryptedMessageCodec.FromBytes(
		testRegistry(),
		common.NewReader(w.Data()),
	)
	var malformed common.MalformedError
	require.ErrorAs(t, err, &malformed)
}

func TestEncryptedMessageBadNonce(t *testing.T) {
	obj := json.Object{
		"encryptedMessage": json.Object{
			"data":  "9e3779b97f4a7c15f39cc0605cedc834",
			"nonce": "abcd",
		},
	}
	_, err := EncryptedMessageCodec.FromJson(testRegistry(), obj)
	var malformed common.MalformedError
	require.ErrorAs(t, err, &malformed)
}

func TestPrunablePlainMessageRoundTrip(t *testing.T) {
	roundTrip(t, PrunablePlainMessageCodec, &PrunablePlainMessage{
		Message: []byte("keep this for a while"),
		IsText:  true,
	})
}

func TestPrunablePlainMessagePruned(t *testing.T) {
	full := &PrunablePlainMessage{
		Message: []byte("keep this for a while"),
		IsText:  true,
	}
	pruned := NewPrunedPlainMessage(full.Hash())
	assert.True(t, pruned.Pruned())
	assert.False(t, full.Pruned())
	assert.Equal(t, full.Hash(), pruned.Hash())
	roundTrip(t, PrunablePlainMessageCodec, pruned)
}

func TestPrunablePlainMessagePrunedNodeResponse(t *testing.T) {
	// getTransaction renders a pruned message as an empty string with the
	// stored hash under "hash"
	storedHash := test.DecodeHexString(
		"aaaabbbbccccddddeeeeffff00001111aaaabbbbccccddddeeeeffff00001111",
	)
	a, err := PrunablePlainMessageCodec.FromJson(testRegistry(), json.Object{
		"version.PrunablePlainMessage": int64(1),
		"message":                      "",
		"hash":                         "aaaabbbbccccddddeeeeffff00001111aaaabbbbccccddddeeeeffff00001111",
	})
	require.NoError(t, err)
	pruned, ok := a.(*PrunablePlainMessage)
	require.True(t, ok)
	assert.True(t, pruned.Pruned())
	assert.Equal(t, storedHash, pruned.Hash())
}

func TestPrunablePlainMessageHash(t *testing.T) {
	a := &PrunablePlainMessage{Message: []byte("abc"), IsText: true}
	assert.Equal(t, crypto.Sha256([]byte{1}, []byte("abc")), a.Hash())
	b := &PrunablePlainMessage{Message: []byte("abc")}
	assert.Equal(t, crypto.Sha256([]byte{0}, []byte("abc")), b.Hash())
}

func TestPrunableEncryptedMessageRoundTrip(t *testing.T) {
	roundTrip(t, PrunableEncryptedMessageCodec, &PrunableEncryptedMessage{
		Data:         testEncryptedData(),
		IsCompressed: true,
	})
}

func TestPrunableEncryptedMessagePruned(t *testing.T) {
	full := &PrunableEncryptedMessage{
		Data:   testEncryptedData(),
		IsText: true,
	}
	pruned := NewPrunedEncryptedMessage(full.Hash())
	assert.True(t, pruned.Pruned())
	assert.Equal(t, full.Hash(), pruned.Hash())
	roundTrip(t, PrunableEncryptedMessageCodec, pruned)
}

func TestPrunableEncryptedMessagePrunedNodeResponse(t *testing.T) {
	// getTransaction renders a pruned encrypted message as an empty object
	storedHash := test.DecodeHexString(
		"1111222233334444555566667777888811112222333344445555666677778888",
	)
	a, err := PrunableEncryptedMessageCodec.FromJson(
		testRegistry(),
		json.Object{
			"version.PrunableEncryptedMessage": int64(1),
			"encryptedMessage":                 json.Object{},
			"encryptedMessageHash":             "1111222233334444555566667777888811112222333344445555666677778888",
		},
	)
	require.NoError(t, err)
	pruned, ok := a.(*PrunableEncryptedMessage)
	require.True(t, ok)
	assert.True(t, pruned.Pruned())
	assert.Equal(t, storedHash, pruned.Hash())
}

func TestPublicKeyAnnouncementRoundTrip(t *testing.T) {
	roundTrip(t, PublicKeyAnnouncementCodec, &PublicKeyAnnouncement{
		PublicKey: test.DecodeHexString(
			"6a5d41a9b42d7a03dd5dac07b4a07b722472cd1d52bed26a1bd17ad0e9d22d2e",
		),
	})
}

func TestPhasingRoundTrip(t *testing.T) {
	reg := testRegistry()
	chain, ok := reg.Chain(2)
	require.True(t, ok)
	a := &Phasing{
		FinishHeight: 1500000,
		Params: common.PhasingParams{
			VotingModel: 0,
			Quorum:      2,
			Whitelist: []uint64{
				test.DecodeIdString("12745647715232902117"),
				test.DecodeIdString("16992224448242675179"),
			},
		},
		LinkedTransactions: []common.ChainTransactionId{
			{
				Chain: chain,
				FullHash: test.DecodeHexString(
					"c41673ce4c45dc0736313b1a3cb3c4fe76699ec41a57c681a22e1a3b3a0bfae1",
				),
			},
		},
		HashedSecret: test.DecodeHexString(
			"f39cc0605cedc8341082276bf3a27251f86c6a11d0c18e959e3779b97f4a7c15",
		),
		Algorithm: crypto.HashSha256,
	}
	w := common.NewWriter()
	a.WriteBytes(w)
	fromBytes, err := PhasingCodec.FromBytes(reg, common.NewReader(w.Data()))
	require.NoError(t, err)
	assert.Equal(t, a, fromBytes)
	obj := json.Object{}
	a.Json(obj)
	fromJson, err := PhasingCodec.FromJson(reg, obj)
	require.NoError(t, err)
	assert.Equal(t, a, fromJson)
}

func TestPhasingNoSecret(t *testing.T) {
	reg := testRegistry()
	a := &Phasing{
		FinishHeight: 1500000,
		Params: common.PhasingParams{
			VotingModel: -1,
			Whitelist: []uint64{
				test.DecodeIdString("12745647715232902117"),
			},
		},
	}
	w := common.NewWriter()
	a.WriteBytes(w)
	decoded, err := PhasingCodec.FromBytes(reg, common.NewReader(w.Data()))
	require.NoError(t, err)
	assert.Equal(t, a, decoded)
	phasing, ok := decoded.(*Phasing)
	require.True(t, ok)
	assert.Empty(t, phasing.HashedSecret)
}

func TestMessageBadVersion(t *testing.T) {
	data := test.DecodeHexString("02000000")
	_, err := MessageCodec.FromBytes(testRegistry(), common.NewReader(data))
	var malformed common.MalformedError
	require.ErrorAs(t, err, &malformed)
}

func TestMessageTruncated(t *testing.T) {
	a := &Message{Message: []byte("hello"), IsText: true}
	w := common.NewWriter()
	a.WriteBytes(w)
	data := w.Data()
	for _, size := range []int{0, 1, 3, len(data) - 1} {
		_, err := MessageCodec.FromBytes(
			testRegistry(),
			common.NewReader(data[:size]),
		)
		assert.ErrorIs(t, err, common.ErrDataTruncated)
	}
}
