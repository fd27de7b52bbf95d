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

package payment

import (
	"github.com/blinklabs-io/gardor/json"
	"github.com/blinklabs-io/gardor/ledger/common"
)

// Payment amounts travel in the transaction header, so both payment
// attachments are empty: no binary body and a zero version.

type OrdinaryPayment struct{}

func (a *OrdinaryPayment) Name() string {
	return "OrdinaryPayment"
}

func (a *OrdinaryPayment) Version() uint8 {
	return 0
}

func (a *OrdinaryPayment) WriteBytes(w *common.Writer) {}

func (a *OrdinaryPayment) Json() json.Object {
	return json.Object{
		"version.OrdinaryPayment": int64(0),
	}
}

func (a *OrdinaryPayment) Describe(reg *common.Registry) string {
	return ""
}

// FxtPayment is an ordinary payment on the parent chain
type FxtPayment struct{}

func (a *FxtPayment) Name() string {
	return "FxtPayment"
}

func (a *FxtPayment) Version() uint8 {
	return 0
}

func (a *FxtPayment) WriteBytes(w *common.Writer) {}

func (a *FxtPayment) Json() json.Object {
	return json.Object{
		"version.FxtPayment": int64(0),
	}
}

func (a *FxtPayment) Describe(reg *common.Registry) string {
	return ""
}

var OrdinaryPaymentCodec = common.AttachmentCodec{
	FromBytes: func(reg *common.Registry, r *common.Reader) (common.Attachment, error) {
		return &OrdinaryPayment{}, nil
	},
	FromJson: func(reg *common.Registry, obj json.Object) (common.Attachment, error) {
		return &OrdinaryPayment{}, nil
	},
}

var FxtPaymentCodec = common.AttachmentCodec{
	FromBytes: func(reg *common.Registry, r *common.Reader) (common.Attachment, error) {
		return &FxtPayment{}, nil
	},
	FromJson: func(reg *common.Registry, obj json.Object) (common.Attachment, error) {
		return &FxtPayment{}, nil
	},
}
