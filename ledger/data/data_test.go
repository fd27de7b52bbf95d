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

package data

import (
	"crypto/sha256"
	"testing"

	"github.com/blinklabs-io/gardor/json"
	"github.com/blinklabs-io/gardor/ledger/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRegistry() *common.Registry {
	reg := common.NewRegistry()
	reg.AddChain(common.Chain{Id: 2, Name: "IGNIS", Decimals: 8})
	return reg
}

func testUpload() *TaggedDataUpload {
	return &TaggedDataUpload{
		DataName:    "notes.txt",
		Description: "meeting notes",
		Tags:        "notes,text",
		Type:        "text/plain",
		Channel:     "general",
		IsText:      true,
		Filename:    "notes.txt",
		Data:        []byte("remember the milk"),
	}
}

func TestTaggedDataUploadHash(t *testing.T) {
	a := testUpload()
	h := sha256.New()
	h.Write([]byte(a.DataName))
	h.Write([]byte(a.Description))
	h.Write([]byte(a.Tags))
	h.Write([]byte(a.Type))
	h.Write([]byte(a.Channel))
	h.Write([]byte{1})
	h.Write([]byte(a.Filename))
	h.Write(a.Data)
	assert.Equal(t, h.Sum(nil), a.Hash())
	assert.False(t, a.Pruned())
}

func TestTaggedDataUploadBytes(t *testing.T) {
	// the binary form carries only the hash, so decoding yields the pruned
	// payload
	a := testUpload()
	w := common.NewWriter()
	a.WriteBytes(w)
	assert.Len(t, w.Data(), 1+common.FullHashLen)
	decoded, err := TaggedDataUploadCodec.FromBytes(
		testRegistry(),
		common.NewReader(w.Data()),
	)
	require.NoError(t, err)
	upload, ok := decoded.(*TaggedDataUpload)
	require.True(t, ok)
	assert.True(t, upload.Pruned())
	assert.Equal(t, a.Hash(), upload.Hash())
}

func TestTaggedDataUploadJsonRoundTrip(t *testing.T) {
	a := testUpload()
	decoded, err := TaggedDataUploadCodec.FromJson(testRegistry(), a.Json())
	require.NoError(t, err)
	assert.Equal(t, a, decoded)
}

func TestTaggedDataUploadBinaryJsonRoundTrip(t *testing.T) {
	a := &TaggedDataUpload{
		DataName: "blob",
		Type:     "application/octet-stream",
		Filename: "blob.bin",
		Data:     []byte{0xde, 0xad, 0xbe, 0xef},
	}
	decoded, err := TaggedDataUploadCodec.FromJson(testRegistry(), a.Json())
	require.NoError(t, err)
	assert.Equal(t, a, decoded)
}

func TestTaggedDataUploadPrunedJson(t *testing.T) {
	a := testUpload()
	pruned := NewPrunedTaggedDataUpload(a.Hash())
	decoded, err := TaggedDataUploadCodec.FromJson(
		testRegistry(),
		pruned.Json(),
	)
	require.NoError(t, err)
	assert.Equal(t, pruned, decoded)
	assert.True(t, decoded.(*TaggedDataUpload).Pruned())
}

func TestTaggedDataUploadBadHashLength(t *testing.T) {
	_, err := TaggedDataUploadCodec.FromJson(
		testRegistry(),
		json.Object{
			"version.TaggedDataUpload": int64(1),
			"hash":                     "abcdef",
		},
	)
	var malformed common.MalformedError
	require.ErrorAs(t, err, &malformed)
}

func TestTaggedDataUploadTruncated(t *testing.T) {
	a := testUpload()
	w := common.NewWriter()
	a.WriteBytes(w)
	for _, size := range []int{0, 1, common.FullHashLen} {
		_, err := TaggedDataUploadCodec.FromBytes(
			testRegistry(),
			common.NewReader(w.Data()[:size]),
		)
		assert.ErrorIs(t, err, common.ErrDataTruncated)
	}
}
