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

package asset

import (
	"github.com/blinklabs-io/gardor/json"
	"github.com/blinklabs-io/gardor/ledger/common"
)

var AssetIssuanceCodec = common.AttachmentCodec{
	FromBytes: func(reg *common.Registry, r *common.Reader) (common.Attachment, error) {
		if err := common.ReadAttachmentVersion(r); err != nil {
			return nil, err
		}
		a := &AssetIssuance{
			AssetName:   r.String8(),
			Description: r.String16(),
			Quantity:    r.Int64(),
			Decimals:    r.Uint8(),
		}
		return a, r.Err()
	},
	FromJson: func(reg *common.Registry, obj json.Object) (common.Attachment, error) {
		return &AssetIssuance{
			AssetName:   obj.String("name"),
			Description: obj.String("description"),
			Quantity:    obj.Int64("quantityQNT"),
			Decimals:    obj.Uint8("decimals"),
		}, nil
	},
}

var AssetTransferCodec = common.AttachmentCodec{
	FromBytes: func(reg *common.Registry, r *common.Reader) (common.Attachment, error) {
		if err := common.ReadAttachmentVersion(r); err != nil {
			return nil, err
		}
		a := &AssetTransfer{
			Asset:    r.Uint64(),
			Quantity: r.Int64(),
		}
		return a, r.Err()
	},
	FromJson: func(reg *common.Registry, obj json.Object) (common.Attachment, error) {
		assetId, err := obj.Id("asset")
		if err != nil {
			return nil, err
		}
		return &AssetTransfer{
			Asset:    assetId,
			Quantity: obj.Int64("quantityQNT"),
		}, nil
	},
}

func orderPlacementFromBytes(r *common.Reader) (OrderPlacement, error) {
	if err := common.ReadAttachmentVersion(r); err != nil {
		return OrderPlacement{}, err
	}
	o := OrderPlacement{
		Asset:    r.Uint64(),
		Quantity: r.Int64(),
		Price:    r.Int64(),
	}
	return o, r.Err()
}

func orderPlacementFromJson(obj json.Object) (OrderPlacement, error) {
	assetId, err := obj.Id("asset")
	if err != nil {
		return OrderPlacement{}, err
	}
	return OrderPlacement{
		Asset:    assetId,
		Quantity: obj.Int64("quantityQNT"),
		Price:    obj.Int64("priceNQT"),
	}, nil
}

var AskOrderPlacementCodec = common.AttachmentCodec{
	FromBytes: func(reg *common.Registry, r *common.Reader) (common.Attachment, error) {
		o, err := orderPlacementFromBytes(r)
		if err != nil {
			return nil, err
		}
		return &AskOrderPlacement{OrderPlacement: o}, nil
	},
	FromJson: func(reg *common.Registry, obj json.Object) (common.Attachment, error) {
		o, err := orderPlacementFromJson(obj)
		if err != nil {
			return nil, err
		}
		return &AskOrderPlacement{OrderPlacement: o}, nil
	},
}

var BidOrderPlacementCodec = common.AttachmentCodec{
	FromBytes: func(reg *common.Registry, r *common.Reader) (common.Attachment, error) {
		o, err := orderPlacementFromBytes(r)
		if err != nil {
			return nil, err
		}
		return &BidOrderPlacement{OrderPlacement: o}, nil
	},
	FromJson: func(reg *common.Registry, obj json.Object) (common.Attachment, error) {
		o, err := orderPlacementFromJson(obj)
		if err != nil {
			return nil, err
		}
		return &BidOrderPlacement{OrderPlacement: o}, nil
	},
}

func orderCancellationFromBytes(r *common.Reader) (OrderCancellation, error) {
	if err := common.ReadAttachmentVersion(r); err != nil {
		return OrderCancellation{}, err
	}
	o := OrderCancellation{
		OrderHash: r.Bytes(common.FullHashLen),
	}
	return o, r.Err()
}

func orderCancellationFromJson(obj json.Object) (OrderCancellation, error) {
	orderHash, err := obj.HexBytes("orderHash")
	if err != nil {
		return OrderCancellation{}, err
	}
	return OrderCancellation{OrderHash: orderHash}, nil
}

var AskOrderCancellationCodec = common.AttachmentCodec{
	FromBytes: func(reg *common.Registry, r *common.Reader) (common.Attachment, error) {
		o, err := orderCancellationFromBytes(r)
		if err != nil {
			return nil, err
		}
		return &AskOrderCancellation{OrderCancellation: o}, nil
	},
	FromJson: func(reg *common.Registry, obj json.Object) (common.Attachment, error) {
		o, err := orderCancellationFromJson(obj)
		if err != nil {
			return nil, err
		}
		return &AskOrderCancellation{OrderCancellation: o}, nil
	},
}

var BidOrderCancellationCodec = common.AttachmentCodec{
	FromBytes: func(reg *common.Registry, r *common.Reader) (common.Attachment, error) {
		o, err := orderCancellationFromBytes(r)
		if err != nil {
			return nil, err
		}
		return &BidOrderCancellation{OrderCancellation: o}, nil
	},
	FromJson: func(reg *common.Registry, obj json.Object) (common.Attachment, error) {
		o, err := orderCancellationFromJson(obj)
		if err != nil {
			return nil, err
		}
		return &BidOrderCancellation{OrderCancellation: o}, nil
	},
}

var DividendPaymentCodec = common.AttachmentCodec{
	FromBytes: func(reg *common.Registry, r *common.Reader) (common.Attachment, error) {
		if err := common.ReadAttachmentVersion(r); err != nil {
			return nil, err
		}
		a := &DividendPayment{
			Asset:  r.Uint64(),
			Height: r.Int32(),
			Amount: r.Int64(),
		}
		return a, r.Err()
	},
	FromJson: func(reg *common.Registry, obj json.Object) (common.Attachment, error) {
		assetId, err := obj.Id("asset")
		if err != nil {
			return nil, err
		}
		return &DividendPayment{
			Asset:  assetId,
			Height: obj.Int32("height"),
			Amount: obj.Int64("amountNQTPerQNT"),
		}, nil
	},
}

var AssetDeleteCodec = common.AttachmentCodec{
	FromBytes: func(reg *common.Registry, r *common.Reader) (common.Attachment, error) {
		if err := common.ReadAttachmentVersion(r); err != nil {
			return nil, err
		}
		a := &AssetDelete{
			Asset:    r.Uint64(),
			Quantity: r.Int64(),
		}
		return a, r.Err()
	},
	FromJson: func(reg *common.Registry, obj json.Object) (common.Attachment, error) {
		assetId, err := obj.Id("asset")
		if err != nil {
			return nil, err
		}
		return &AssetDelete{
			Asset:    assetId,
			Quantity: obj.Int64("quantityQNT"),
		}, nil
	},
}
