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
	"encoding/hex"
	"fmt"

	"github.com/blinklabs-io/gardor/crypto"
	"github.com/blinklabs-io/gardor/json"
	"github.com/blinklabs-io/gardor/ledger/common"
)

// PrunablePlainMessage is a plain message whose content nodes may discard
// after the retention period, leaving only its hash. A pruned instance
// carries the hash alone and still re-encodes to the same transaction bytes.
type PrunablePlainMessage struct {
	Message []byte
	IsText  bool

	hash []byte
}

// NewPrunedPlainMessage builds the pruned form carrying only the message
// hash
func NewPrunedPlainMessage(hash []byte) *PrunablePlainMessage {
	return &PrunablePlainMessage{hash: hash}
}

func (a *PrunablePlainMessage) Flag() uint32 {
	return common.FlagPrunablePlainMessage
}

func (a *PrunablePlainMessage) Name() string {
	return "PrunablePlainMessage"
}

func (a *PrunablePlainMessage) Version() uint8 {
	return 1
}

// Pruned reports whether the message content has been discarded
func (a *PrunablePlainMessage) Pruned() bool {
	return a.Message == nil
}

// Hash returns the message hash, computing it from the content when present
func (a *PrunablePlainMessage) Hash() []byte {
	if a.Pruned() {
		return a.hash
	}
	return crypto.Sha256(boolByte(a.IsText), a.Message)
}

func (a *PrunablePlainMessage) WriteBytes(w *common.Writer) {
	w.Uint8(a.Version())
	var flags uint8
	if !a.Pruned() {
		flags |= 0x01
	}
	if a.IsText {
		flags |= 0x02
	}
	w.Uint8(flags)
	if a.Pruned() {
		w.Bytes(a.hash)
		return
	}
	w.Int32(int32(len(a.Message))) //nolint:gosec
	w.Bytes(a.Message)
}

func (a *PrunablePlainMessage) Json(obj json.Object) {
	obj["version.PrunablePlainMessage"] = int64(a.Version())
	if a.Pruned() {
		obj["messageHash"] = hex.EncodeToString(a.hash)
		return
	}
	obj["message"] = messageToJson(a.Message, a.IsText)
	obj["messageIsText"] = a.IsText
}

func (a *PrunablePlainMessage) Describe(reg *common.Registry) string {
	if a.Pruned() {
		return fmt.Sprintf(
			"  Prunable Message Hash:  %s\n",
			hex.EncodeToString(a.hash),
		)
	}
	return fmt.Sprintf(
		"  Prunable Message:  %s\n",
		messageToJson(a.Message, a.IsText),
	)
}

// PrunableEncryptedMessage is an encrypted message whose ciphertext nodes
// may discard after the retention period, leaving only its hash
type PrunableEncryptedMessage struct {
	Data         crypto.EncryptedData
	IsText       bool
	IsCompressed bool

	hash []byte
}

// NewPrunedEncryptedMessage builds the pruned form carrying only the
// message hash
func NewPrunedEncryptedMessage(hash []byte) *PrunableEncryptedMessage {
	return &PrunableEncryptedMessage{hash: hash}
}

func (a *PrunableEncryptedMessage) Flag() uint32 {
	return common.FlagPrunableEncryptedMessage
}

func (a *PrunableEncryptedMessage) Name() string {
	return "PrunableEncryptedMessage"
}

func (a *PrunableEncryptedMessage) Version() uint8 {
	return 1
}

// Pruned reports whether the ciphertext has been discarded
func (a *PrunableEncryptedMessage) Pruned() bool {
	return a.Data.Data == nil
}

// Hash returns the message hash, computing it from the ciphertext when
// present
func (a *PrunableEncryptedMessage) Hash() []byte {
	if a.Pruned() {
		return a.hash
	}
	return crypto.Sha256(
		boolByte(a.IsText),
		boolByte(a.IsCompressed),
		a.Data.Data,
		a.Data.Nonce,
	)
}

func (a *PrunableEncryptedMessage) WriteBytes(w *common.Writer) {
	w.Uint8(a.Version())
	var flags uint8
	if !a.Pruned() {
		flags |= 0x01
	}
	if a.IsText {
		flags |= 0x02
	}
	if a.IsCompressed {
		flags |= 0x04
	}
	w.Uint8(flags)
	if a.Pruned() {
		w.Bytes(a.hash)
		return
	}
	w.Int32(int32(len(a.Data.Data))) //nolint:gosec
	w.Bytes(a.Data.Data)
	w.Bytes(a.Data.Nonce)
}

func (a *PrunableEncryptedMessage) Json(obj json.Object) {
	obj["version.PrunableEncryptedMessage"] = int64(a.Version())
	if a.Pruned() {
		obj["encryptedMessageHash"] = hex.EncodeToString(a.hash)
		return
	}
	obj["encryptedMessage"] = encryptedDataJson(
		a.Data,
		a.IsText,
		a.IsCompressed,
	)
}

func (a *PrunableEncryptedMessage) Describe(reg *common.Registry) string {
	if a.Pruned() {
		return fmt.Sprintf(
			"  Prunable Encrypted Message Hash:  %s\n",
			hex.EncodeToString(a.hash),
		)
	}
	return fmt.Sprintf(
		"  Prunable Encrypted Message:  %d bytes\n",
		len(a.Data.Data),
	)
}

var PrunablePlainMessageCodec = common.AppendixCodec{
	Flag: common.FlagPrunablePlainMessage,
	Name: "PrunablePlainMessage",
	FromBytes: func(reg *common.Registry, r *common.Reader) (common.Appendix, error) {
		if err := readAppendixVersion(r); err != nil {
			return nil, err
		}
		flags := r.Uint8()
		if flags&0x01 == 0 {
			a := NewPrunedPlainMessage(r.Bytes(common.FullHashLen))
			return a, r.Err()
		}
		length := int(r.Int32())
		if length < 0 {
			return nil, common.MalformedError{
				What: "prunable message length is negative",
			}
		}
		message := r.Bytes(length)
		if err := r.Err(); err != nil {
			return nil, err
		}
		return &PrunablePlainMessage{
			Message: message,
			IsText:  flags&0x02 != 0,
		}, nil
	},
	FromJson: func(reg *common.Registry, obj json.Object) (common.Appendix, error) {
		// Node responses render a pruned message as an empty string
		if obj.String("message") == "" {
			hash, err := prunedHash(obj, "messageHash")
			if err != nil {
				return nil, err
			}
			return NewPrunedPlainMessage(hash), nil
		}
		isText := obj.Bool("messageIsText")
		message, err := messageFromJson(obj, "message", isText)
		if err != nil {
			return nil, err
		}
		return &PrunablePlainMessage{Message: message, IsText: isText}, nil
	},
}

var PrunableEncryptedMessageCodec = common.AppendixCodec{
	Flag: common.FlagPrunableEncryptedMessage,
	Name: "PrunableEncryptedMessage",
	FromBytes: func(reg *common.Registry, r *common.Reader) (common.Appendix, error) {
		if err := readAppendixVersion(r); err != nil {
			return nil, err
		}
		flags := r.Uint8()
		if flags&0x01 == 0 {
			a := NewPrunedEncryptedMessage(r.Bytes(common.FullHashLen))
			return a, r.Err()
		}
		length := int(r.Int32())
		if err := r.Err(); err != nil {
			return nil, err
		}
		if err := checkEncryptedLength(length); err != nil {
			return nil, err
		}
		data := crypto.EncryptedData{
			Data:  r.Bytes(length),
			Nonce: r.Bytes(crypto.SharedKeyNonceLen),
		}
		if err := r.Err(); err != nil {
			return nil, err
		}
		return &PrunableEncryptedMessage{
			Data:         data,
			IsText:       flags&0x02 != 0,
			IsCompressed: flags&0x04 != 0,
		}, nil
	},
	FromJson: func(reg *common.Registry, obj json.Object) (common.Appendix, error) {
		// Node responses render a pruned message as an empty object
		enc := obj.Object("encryptedMessage")
		if len(enc) == 0 {
			hash, err := prunedHash(obj, "encryptedMessageHash")
			if err != nil {
				return nil, err
			}
			return NewPrunedEncryptedMessage(hash), nil
		}
		data, isText, isCompressed, err := encryptedDataFromJson(enc)
		if err != nil {
			return nil, err
		}
		return &PrunableEncryptedMessage{
			Data:         data,
			IsText:       isText,
			IsCompressed: isCompressed,
		}, nil
	},
}

// prunedHash reads a stored prunable hash, accepting both the key this
// package emits and the bare "hash" key found in node responses
func prunedHash(obj json.Object, key string) ([]byte, error) {
	hash, err := obj.HexBytes(key)
	if err != nil || hash != nil {
		return hash, err
	}
	return obj.HexBytes("hash")
}

func boolByte(b bool) []byte {
	if b {
		return []byte{1}
	}
	return []byte{0}
}
