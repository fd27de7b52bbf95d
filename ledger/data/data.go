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

// Package data implements the tagged data transaction payload.
package data

import (
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/blinklabs-io/gardor/crypto"
	"github.com/blinklabs-io/gardor/json"
	"github.com/blinklabs-io/gardor/ledger/common"
)

// TaggedDataUpload stores arbitrary tagged data. Only the data hash is kept
// on chain; the data itself is prunable and may no longer be available when
// fetched from a node.
type TaggedDataUpload struct {
	DataName    string
	Description string
	Tags        string
	Type        string
	Channel     string
	IsText      bool
	Filename    string
	Data        []byte

	// hash of the pruned data, set only when the full fields are absent
	hash []byte
}

// NewPrunedTaggedDataUpload builds a tagged data payload carrying only the
// data hash
func NewPrunedTaggedDataUpload(hash []byte) *TaggedDataUpload {
	return &TaggedDataUpload{hash: hash}
}

func (a *TaggedDataUpload) Name() string {
	return "TaggedDataUpload"
}

func (a *TaggedDataUpload) Version() uint8 {
	return 1
}

// Pruned indicates whether the data has been pruned, leaving only the hash
func (a *TaggedDataUpload) Pruned() bool {
	return a.hash != nil
}

// Hash returns the tagged data hash, computing it from the full fields when
// the data is present
func (a *TaggedDataUpload) Hash() []byte {
	if a.hash != nil {
		return a.hash
	}
	isText := byte(0)
	if a.IsText {
		isText = 1
	}
	return crypto.Sha256(
		[]byte(a.DataName),
		[]byte(a.Description),
		[]byte(a.Tags),
		[]byte(a.Type),
		[]byte(a.Channel),
		[]byte{isText},
		[]byte(a.Filename),
		a.Data,
	)
}

func (a *TaggedDataUpload) WriteBytes(w *common.Writer) {
	w.Uint8(a.Version())
	w.Bytes(a.Hash())
}

func (a *TaggedDataUpload) Json() json.Object {
	obj := json.Object{
		"version.TaggedDataUpload": int64(a.Version()),
	}
	if a.Pruned() {
		obj["hash"] = hex.EncodeToString(a.hash)
		return obj
	}
	obj["name"] = a.DataName
	obj["description"] = a.Description
	obj["tags"] = a.Tags
	obj["type"] = a.Type
	obj["channel"] = a.Channel
	obj["isText"] = a.IsText
	obj["filename"] = a.Filename
	if a.IsText {
		obj["data"] = string(a.Data)
	} else {
		obj["data"] = hex.EncodeToString(a.Data)
	}
	return obj
}

func (a *TaggedDataUpload) Describe(reg *common.Registry) string {
	var sb strings.Builder
	if !a.Pruned() {
		fmt.Fprintf(&sb, "  Name:  %s\n", a.DataName)
		fmt.Fprintf(&sb, "  Description:  %s\n", a.Description)
		fmt.Fprintf(&sb, "  Tags:  %s\n", a.Tags)
		fmt.Fprintf(&sb, "  Type:  %s\n", a.Type)
		fmt.Fprintf(&sb, "  Channel:  %s\n", a.Channel)
		fmt.Fprintf(&sb, "  Is Text:  %v\n", a.IsText)
		fmt.Fprintf(&sb, "  Filename:  %s\n", a.Filename)
	}
	fmt.Fprintf(&sb, "  Data Hash:  %s\n", hex.EncodeToString(a.Hash()))
	return sb.String()
}

var TaggedDataUploadCodec = common.AttachmentCodec{
	FromBytes: func(reg *common.Registry, r *common.Reader) (common.Attachment, error) {
		if err := common.ReadAttachmentVersion(r); err != nil {
			return nil, err
		}
		a := NewPrunedTaggedDataUpload(r.Bytes(common.FullHashLen))
		return a, r.Err()
	},
	FromJson: func(reg *common.Registry, obj json.Object) (common.Attachment, error) {
		if _, present := obj["name"]; !present {
			hash, err := obj.HexBytes("hash")
			if err != nil {
				return nil, err
			}
			if len(hash) != common.FullHashLen {
				return nil, common.MalformedError{
					What: "tagged data hash has wrong length",
				}
			}
			return NewPrunedTaggedDataUpload(hash), nil
		}
		a := &TaggedDataUpload{
			DataName:    obj.String("name"),
			Description: obj.String("description"),
			Tags:        obj.String("tags"),
			Type:        obj.String("type"),
			Channel:     obj.String("channel"),
			IsText:      obj.Bool("isText"),
			Filename:    obj.String("filename"),
		}
		if a.IsText {
			a.Data = []byte(obj.String("data"))
		} else {
			data, err := obj.HexBytes("data")
			if err != nil {
				return nil, err
			}
			a.Data = data
		}
		return a, nil
	},
}
