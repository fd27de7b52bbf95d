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

package dgs

import (
	"github.com/blinklabs-io/gardor/json"
	"github.com/blinklabs-io/gardor/ledger/common"
)

var DigitalGoodsListingCodec = common.AttachmentCodec{
	FromBytes: func(reg *common.Registry, r *common.Reader) (common.Attachment, error) {
		if err := common.ReadAttachmentVersion(r); err != nil {
			return nil, err
		}
		a := &DigitalGoodsListing{
			GoodsName:   r.String16(),
			Description: r.String16(),
			Tags:        r.String16(),
			Quantity:    r.Int32(),
			Price:       r.Int64(),
		}
		return a, r.Err()
	},
	FromJson: func(reg *common.Registry, obj json.Object) (common.Attachment, error) {
		return &DigitalGoodsListing{
			GoodsName:   obj.String("name"),
			Description: obj.String("description"),
			Tags:        obj.String("tags"),
			Quantity:    obj.Int32("quantity"),
			Price:       obj.Int64("priceNQT"),
		}, nil
	},
}

var DigitalGoodsDelistingCodec = common.AttachmentCodec{
	FromBytes: func(reg *common.Registry, r *common.Reader) (common.Attachment, error) {
		if err := common.ReadAttachmentVersion(r); err != nil {
			return nil, err
		}
		a := &DigitalGoodsDelisting{
			Goods: r.Uint64(),
		}
		return a, r.Err()
	},
	FromJson: func(reg *common.Registry, obj json.Object) (common.Attachment, error) {
		goodsId, err := obj.Id("goods")
		if err != nil {
			return nil, err
		}
		return &DigitalGoodsDelisting{Goods: goodsId}, nil
	},
}

var DigitalGoodsPriceChangeCodec = common.AttachmentCodec{
	FromBytes: func(reg *common.Registry, r *common.Reader) (common.Attachment, error) {
		if err := common.ReadAttachmentVersion(r); err != nil {
			return nil, err
		}
		a := &DigitalGoodsPriceChange{
			Goods: r.Uint64(),
			Price: r.Int64(),
		}
		return a, r.Err()
	},
	FromJson: func(reg *common.Registry, obj json.Object) (common.Attachment, error) {
		goodsId, err := obj.Id("goods")
		if err != nil {
			return nil, err
		}
		return &DigitalGoodsPriceChange{
			Goods: goodsId,
			Price: obj.Int64("priceNQT"),
		}, nil
	},
}

var DigitalGoodsQuantityChangeCodec = common.AttachmentCodec{
	FromBytes: func(reg *common.Registry, r *common.Reader) (common.Attachment, error) {
		if err := common.ReadAttachmentVersion(r); err != nil {
			return nil, err
		}
		a := &DigitalGoodsQuantityChange{
			Goods:         r.Uint64(),
			DeltaQuantity: r.Int32(),
		}
		return a, r.Err()
	},
	FromJson: func(reg *common.Registry, obj json.Object) (common.Attachment, error) {
		goodsId, err := obj.Id("goods")
		if err != nil {
			return nil, err
		}
		return &DigitalGoodsQuantityChange{
			Goods:         goodsId,
			DeltaQuantity: obj.Int32("deltaQuantity"),
		}, nil
	},
}

var DigitalGoodsPurchaseCodec = common.AttachmentCodec{
	FromBytes: func(reg *common.Registry, r *common.Reader) (common.Attachment, error) {
		if err := common.ReadAttachmentVersion(r); err != nil {
			return nil, err
		}
		a := &DigitalGoodsPurchase{
			Goods:            r.Uint64(),
			Quantity:         r.Int32(),
			Price:            r.Int64(),
			DeliveryDeadline: r.Int32(),
		}
		return a, r.Err()
	},
	FromJson: func(reg *common.Registry, obj json.Object) (common.Attachment, error) {
		goodsId, err := obj.Id("goods")
		if err != nil {
			return nil, err
		}
		return &DigitalGoodsPurchase{
			Goods:            goodsId,
			Quantity:         obj.Int32("quantity"),
			Price:            obj.Int64("priceNQT"),
			DeliveryDeadline: obj.Int32("deliveryDeadlineTimestamp"),
		}, nil
	},
}

var DigitalGoodsDeliveryCodec = common.AttachmentCodec{
	FromBytes: func(reg *common.Registry, r *common.Reader) (common.Attachment, error) {
		if err := common.ReadAttachmentVersion(r); err != nil {
			return nil, err
		}
		a := &DigitalGoodsDelivery{
			Purchase: r.Uint64(),
		}
		length := r.Uint32()
		if length&0x80000000 != 0 {
			length &= 0x7fffffff
			a.GoodsIsText = true
		}
		a.GoodsData = r.Bytes(int(length))
		a.GoodsNonce = r.Bytes(32)
		a.Discount = r.Int64()
		return a, r.Err()
	},
	FromJson: func(reg *common.Registry, obj json.Object) (common.Attachment, error) {
		purchaseId, err := obj.Id("purchase")
		if err != nil {
			return nil, err
		}
		goodsData, err := obj.HexBytes("goodsData")
		if err != nil {
			return nil, err
		}
		goodsNonce, err := obj.HexBytes("goodsNonce")
		if err != nil {
			return nil, err
		}
		return &DigitalGoodsDelivery{
			Purchase:    purchaseId,
			GoodsData:   goodsData,
			GoodsNonce:  goodsNonce,
			GoodsIsText: obj.Bool("goodsIsText"),
			Discount:    obj.Int64("discountNQT"),
		}, nil
	},
}

var DigitalGoodsFeedbackCodec = common.AttachmentCodec{
	FromBytes: func(reg *common.Registry, r *common.Reader) (common.Attachment, error) {
		if err := common.ReadAttachmentVersion(r); err != nil {
			return nil, err
		}
		a := &DigitalGoodsFeedback{
			Purchase: r.Uint64(),
		}
		return a, r.Err()
	},
	FromJson: func(reg *common.Registry, obj json.Object) (common.Attachment, error) {
		purchaseId, err := obj.Id("purchase")
		if err != nil {
			return nil, err
		}
		return &DigitalGoodsFeedback{Purchase: purchaseId}, nil
	},
}

var DigitalGoodsRefundCodec = common.AttachmentCodec{
	FromBytes: func(reg *common.Registry, r *common.Reader) (common.Attachment, error) {
		if err := common.ReadAttachmentVersion(r); err != nil {
			return nil, err
		}
		a := &DigitalGoodsRefund{
			Purchase: r.Uint64(),
			Refund:   r.Int64(),
		}
		return a, r.Err()
	},
	FromJson: func(reg *common.Registry, obj json.Object) (common.Attachment, error) {
		purchaseId, err := obj.Id("purchase")
		if err != nil {
			return nil, err
		}
		return &DigitalGoodsRefund{
			Purchase: purchaseId,
			Refund:   obj.Int64("refundNQT"),
		}, nil
	},
}
