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

package messaging

import (
	"github.com/blinklabs-io/gardor/json"
	"github.com/blinklabs-io/gardor/ledger/common"
)

// ArbitraryMessage carries no payload of its own. The message content
// travels in the message appendices.
type ArbitraryMessage struct{}

func (a *ArbitraryMessage) Name() string {
	return "ArbitraryMessage"
}

func (a *ArbitraryMessage) Version() uint8 {
	return 0
}

func (a *ArbitraryMessage) WriteBytes(w *common.Writer) {}

func (a *ArbitraryMessage) Json() json.Object {
	return json.Object{
		"version.ArbitraryMessage": int64(0),
	}
}

func (a *ArbitraryMessage) Describe(reg *common.Registry) string {
	return ""
}

var ArbitraryMessageCodec = common.AttachmentCodec{
	FromBytes: func(reg *common.Registry, r *common.Reader) (common.Attachment, error) {
		return &ArbitraryMessage{}, nil
	},
	FromJson: func(reg *common.Registry, obj json.Object) (common.Attachment, error) {
		return &ArbitraryMessage{}, nil
	},
}
