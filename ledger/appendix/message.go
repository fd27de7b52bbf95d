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

	"github.com/blinklabs-io/gardor/json"
	"github.com/blinklabs-io/gardor/ledger/common"
)

// Message is an unencrypted message attached to a transaction. A text
// message is UTF-8; a binary message is rendered as hex in JSON form.
type Message struct {
	Message []byte
	IsText  bool
}

func (a *Message) Flag() uint32 {
	return common.FlagMessage
}

func (a *Message) Name() string {
	return "Message"
}

func (a *Message) Version() uint8 {
	return 1
}

func (a *Message) WriteBytes(w *common.Writer) {
	w.Uint8(a.Version())
	var flags uint8
	if a.IsText {
		flags |= 0x01
	}
	w.Uint8(flags)
	w.Int16(int16(len(a.Message))) //nolint:gosec
	w.Bytes(a.Message)
}

func (a *Message) Json(obj json.Object) {
	obj["version.Message"] = int64(a.Version())
	obj["message"] = messageToJson(a.Message, a.IsText)
	obj["messageIsText"] = a.IsText
}

func (a *Message) Describe(reg *common.Registry) string {
	return fmt.Sprintf(
		"  Message:  %s\n",
		messageToJson(a.Message, a.IsText),
	)
}

var MessageCodec = common.AppendixCodec{
	Flag: common.FlagMessage,
	Name: "Message",
	FromBytes: func(reg *common.Registry, r *common.Reader) (common.Appendix, error) {
		if err := readAppendixVersion(r); err != nil {
			return nil, err
		}
		flags := r.Uint8()
		length := int(r.Int16())
		message := r.Bytes(length)
		if err := r.Err(); err != nil {
			return nil, err
		}
		return &Message{
			Message: message,
			IsText:  flags&0x01 != 0,
		}, nil
	},
	FromJson: func(reg *common.Registry, obj json.Object) (common.Appendix, error) {
		isText := obj.Bool("messageIsText")
		message, err := messageFromJson(obj, "message", isText)
		if err != nil {
			return nil, err
		}
		return &Message{Message: message, IsText: isText}, nil
	},
}

// messageToJson renders message bytes for the JSON document: UTF-8 text when
// the text flag is set, hex otherwise
func messageToJson(message []byte, isText bool) string {
	if isText {
		return string(message)
	}
	return hex.EncodeToString(message)
}

func messageFromJson(
	obj json.Object,
	key string,
	isText bool,
) ([]byte, error) {
	if isText {
		return []byte(obj.String(key)), nil
	}
	return obj.HexBytes(key)
}
