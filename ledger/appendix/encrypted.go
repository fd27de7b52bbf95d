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

// EncryptedMessage is a message encrypted to the transaction recipient with
// a shared key derived from the sender's secret phrase and the recipient's
// public key
type EncryptedMessage struct {
	Data         crypto.EncryptedData
	IsText       bool
	IsCompressed bool
}

func (a *EncryptedMessage) Flag() uint32 {
	return common.FlagEncryptedMessage
}

func (a *EncryptedMessage) Name() string {
	return "EncryptedMessage"
}

func (a *EncryptedMessage) Version() uint8 {
	return 1
}

func (a *EncryptedMessage) WriteBytes(w *common.Writer) {
	w.Uint8(a.Version())
	writeEncryptedData(w, a.Data, a.IsText, a.IsCompressed)
}

func (a *EncryptedMessage) Json(obj json.Object) {
	obj["version.EncryptedMessage"] = int64(a.Version())
	obj["encryptedMessage"] = encryptedDataJson(
		a.Data,
		a.IsText,
		a.IsCompressed,
	)
}

func (a *EncryptedMessage) Describe(reg *common.Registry) string {
	return fmt.Sprintf(
		"  Encrypted Message:  %d bytes\n",
		len(a.Data.Data),
	)
}

// EncryptToSelfMessage is a note encrypted with the sender's own key pair,
// readable only by the sender
type EncryptToSelfMessage struct {
	Data         crypto.EncryptedData
	IsText       bool
	IsCompressed bool
}

func (a *EncryptToSelfMessage) Flag() uint32 {
	return common.FlagEncryptToSelfMessage
}

func (a *EncryptToSelfMessage) Name() string {
	return "EncryptToSelfMessage"
}

func (a *EncryptToSelfMessage) Version() uint8 {
	return 1
}

func (a *EncryptToSelfMessage) WriteBytes(w *common.Writer) {
	w.Uint8(a.Version())
	writeEncryptedData(w, a.Data, a.IsText, a.IsCompressed)
}

func (a *EncryptToSelfMessage) Json(obj json.Object) {
	obj["version.EncryptToSelfMessage"] = int64(a.Version())
	obj["encryptToSelfMessage"] = encryptedDataJson(
		a.Data,
		a.IsText,
		a.IsCompressed,
	)
}

func (a *EncryptToSelfMessage) Describe(reg *common.Registry) string {
	return fmt.Sprintf(
		"  Encrypt-to-Self Message:  %d bytes\n",
		len(a.Data.Data),
	)
}

var EncryptedMessageCodec = common.AppendixCodec{
	Flag: common.FlagEncryptedMessage,
	Name: "EncryptedMessage",
	FromBytes: func(reg *common.Registry, r *common.Reader) (common.Appendix, error) {
		data, isText, isCompressed, err := readEncryptedData(r)
		if err != nil {
			return nil, err
		}
		return &EncryptedMessage{
			Data:         data,
			IsText:       isText,
			IsCompressed: isCompressed,
		}, nil
	},
	FromJson: func(reg *common.Registry, obj json.Object) (common.Appendix, error) {
		data, isText, isCompressed, err := encryptedDataFromJson(
			obj.Object("encryptedMessage"),
		)
		if err != nil {
			return nil, err
		}
		return &EncryptedMessage{
			Data:         data,
			IsText:       isText,
			IsCompressed: isCompressed,
		}, nil
	},
}

var EncryptToSelfMessageCodec = common.AppendixCodec{
	Flag: common.FlagEncryptToSelfMessage,
	Name: "EncryptToSelfMessage",
	FromBytes: func(reg *common.Registry, r *common.Reader) (common.Appendix, error) {
		data, isText, isCompressed, err := readEncryptedData(r)
		if err != nil {
			return nil, err
		}
		return &EncryptToSelfMessage{
			Data:         data,
			IsText:       isText,
			IsCompressed: isCompressed,
		}, nil
	},
	FromJson: func(reg *common.Registry, obj json.Object) (common.Appendix, error) {
		data, isText, isCompressed, err := encryptedDataFromJson(
			obj.Object("encryptToSelfMessage"),
		)
		if err != nil {
			return nil, err
		}
		return &EncryptToSelfMessage{
			Data:         data,
			IsText:       isText,
			IsCompressed: isCompressed,
		}, nil
	},
}

// checkEncryptedLength enforces the AES-CBC ciphertext shape: at least one
// block and a whole number of blocks
func checkEncryptedLength(length int) error {
	if length < 16 || length%16 != 0 {
		return common.MalformedError{
			What: fmt.Sprintf(
				"encrypted data length %d is invalid",
				length,
			),
		}
	}
	return nil
}

func writeEncryptedData(
	w *common.Writer,
	data crypto.EncryptedData,
	isText bool,
	isCompressed bool,
) {
	var flags uint8
	if isText {
		flags |= 0x01
	}
	if isCompressed {
		flags |= 0x02
	}
	w.Uint8(flags)
	w.Int16(int16(len(data.Data))) //nolint:gosec
	w.Bytes(data.Data)
	w.Bytes(data.Nonce)
}

// readEncryptedData reads the body of an encrypted message appendix: the
// version byte, the flags byte, and the length-prefixed ciphertext followed
// by the 32-byte nonce
func readEncryptedData(
	r *common.Reader,
) (crypto.EncryptedData, bool, bool, error) {
	if err := readAppendixVersion(r); err != nil {
		return crypto.EncryptedData{}, false, false, err
	}
	flags := r.Uint8()
	length := int(r.Int16())
	if err := r.Err(); err != nil {
		return crypto.EncryptedData{}, false, false, err
	}
	if err := checkEncryptedLength(length); err != nil {
		return crypto.EncryptedData{}, false, false, err
	}
	data := crypto.EncryptedData{
		Data:  r.Bytes(length),
		Nonce: r.Bytes(crypto.SharedKeyNonceLen),
	}
	if err := r.Err(); err != nil {
		return crypto.EncryptedData{}, false, false, err
	}
	return data, flags&0x01 != 0, flags&0x02 != 0, nil
}

func encryptedDataJson(
	data crypto.EncryptedData,
	isText bool,
	isCompressed bool,
) json.Object {
	return json.Object{
		"data":         hex.EncodeToString(data.Data),
		"nonce":        hex.EncodeToString(data.Nonce),
		"isText":       isText,
		"isCompressed": isCompressed,
	}
}

func encryptedDataFromJson(
	obj json.Object,
) (crypto.EncryptedData, bool, bool, error) {
	data, err := obj.HexBytes("data")
	if err != nil {
		return crypto.EncryptedData{}, false, false, err
	}
	nonce, err := obj.HexBytes("nonce")
	if err != nil {
		return crypto.EncryptedData{}, false, false, err
	}
	if err := checkEncryptedLength(len(data)); err != nil {
		return crypto.EncryptedData{}, false, false, err
	}
	if len(nonce) != crypto.SharedKeyNonceLen {
		return crypto.EncryptedData{}, false, false, common.MalformedError{
			What: fmt.Sprintf(
				"encryption nonce length %d is invalid",
				len(nonce),
			),
		}
	}
	return crypto.EncryptedData{Data: data, Nonce: nonce},
		obj.Bool("isText"),
		obj.Bool("isCompressed"),
		nil
}
