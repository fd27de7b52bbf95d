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

package ms

import (
	"github.com/blinklabs-io/gardor/json"
	"github.com/blinklabs-io/gardor/ledger/common"
)

var CurrencyIssuanceCodec = common.AttachmentCodec{
	FromBytes: func(reg *common.Registry, r *common.Reader) (common.Attachment, error) {
		if err := common.ReadAttachmentVersion(r); err != nil {
			return nil, err
		}
		a := &CurrencyIssuance{
			CurrencyName:      r.String8(),
			Code:              r.String8(),
			Description:       r.String16(),
			Type:              r.Uint8(),
			InitialSupply:     r.Int64(),
			ReserveSupply:     r.Int64(),
			MaxSupply:         r.Int64(),
			IssuanceHeight:    r.Int32(),
			MinReservePerUnit: r.Int64(),
			MinDifficulty:     r.Uint8(),
			MaxDifficulty:     r.Uint8(),
			Ruleset:           r.Uint8(),
			Algorithm:         r.Uint8(),
			Decimals:          r.Uint8(),
		}
		return a, r.Err()
	},
	FromJson: func(reg *common.Registry, obj json.Object) (common.Attachment, error) {
		return &CurrencyIssuance{
			CurrencyName:      obj.String("name"),
			Code:              obj.String("code"),
			Description:       obj.String("description"),
			Type:              obj.Uint8("type"),
			InitialSupply:     obj.Int64("initialSupplyQNT"),
			ReserveSupply:     obj.Int64("reserveSupplyQNT"),
			MaxSupply:         obj.Int64("maxSupplyQNT"),
			IssuanceHeight:    obj.Int32("issuanceHeight"),
			MinReservePerUnit: obj.Int64("minReservePerUnitNQT"),
			MinDifficulty:     obj.Uint8("minDifficulty"),
			MaxDifficulty:     obj.Uint8("maxDifficulty"),
			Ruleset:           obj.Uint8("ruleset"),
			Algorithm:         obj.Uint8("algorithm"),
			Decimals:          obj.Uint8("decimals"),
		}, nil
	},
}

var ReserveIncreaseCodec = common.AttachmentCodec{
	FromBytes: func(reg *common.Registry, r *common.Reader) (common.Attachment, error) {
		if err := common.ReadAttachmentVersion(r); err != nil {
			return nil, err
		}
		a := &ReserveIncrease{
			Currency:      r.Uint64(),
			AmountPerUnit: r.Int64(),
		}
		return a, r.Err()
	},
	FromJson: func(reg *common.Registry, obj json.Object) (common.Attachment, error) {
		currencyId, err := obj.Id("currency")
		if err != nil {
			return nil, err
		}
		return &ReserveIncrease{
			Currency:      currencyId,
			AmountPerUnit: obj.Int64("amountPerUnitNQT"),
		}, nil
	},
}

var ReserveClaimCodec = common.AttachmentCodec{
	FromBytes: func(reg *common.Registry, r *common.Reader) (common.Attachment, error) {
		if err := common.ReadAttachmentVersion(r); err != nil {
			return nil, err
		}
		a := &ReserveClaim{
			Currency: r.Uint64(),
			Units:    r.Int64(),
		}
		return a, r.Err()
	},
	FromJson: func(reg *common.Registry, obj json.Object) (common.Attachment, error) {
		currencyId, err := obj.Id("currency")
		if err != nil {
			return nil, err
		}
		return &ReserveClaim{
			Currency: currencyId,
			Units:    obj.Int64("unitsQNT"),
		}, nil
	},
}

var CurrencyTransferCodec = common.AttachmentCodec{
	FromBytes: func(reg *common.Registry, r *common.Reader) (common.Attachment, error) {
		if err := common.ReadAttachmentVersion(r); err != nil {
			return nil, err
		}
		a := &CurrencyTransfer{
			Currency: r.Uint64(),
			Units:    r.Int64(),
		}
		return a, r.Err()
	},
	FromJson: func(reg *common.Registry, obj json.Object) (common.Attachment, error) {
		currencyId, err := obj.Id("currency")
		if err != nil {
			return nil, err
		}
		return &CurrencyTransfer{
			Currency: currencyId,
			Units:    obj.Int64("unitsQNT"),
		}, nil
	},
}

var PublishExchangeOfferCodec = common.AttachmentCodec{
	FromBytes: func(reg *common.Registry, r *common.Reader) (common.Attachment, error) {
		if err := common.ReadAttachmentVersion(r); err != nil {
			return nil, err
		}
		a := &PublishExchangeOffer{
			Currency:          r.Uint64(),
			BuyRate:           r.Int64(),
			SellRate:          r.Int64(),
			TotalBuyLimit:     r.Int64(),
			TotalSellLimit:    r.Int64(),
			InitialBuySupply:  r.Int64(),
			InitialSellSupply: r.Int64(),
			ExpirationHeight:  r.Int32(),
		}
		return a, r.Err()
	},
	FromJson: func(reg *common.Registry, obj json.Object) (common.Attachment, error) {
		currencyId, err := obj.Id("currency")
		if err != nil {
			return nil, err
		}
		return &PublishExchangeOffer{
			Currency:          currencyId,
			BuyRate:           obj.Int64("buyRateNQTPerUnit"),
			SellRate:          obj.Int64("sellRateNQTPerUnit"),
			TotalBuyLimit:     obj.Int64("totalBuyLimitQNT"),
			TotalSellLimit:    obj.Int64("totalSellLimitQNT"),
			InitialBuySupply:  obj.Int64("initialBuySupplyQNT"),
			InitialSellSupply: obj.Int64("initialSellSupplyQNT"),
			ExpirationHeight:  obj.Int32("expirationHeight"),
		}, nil
	},
}

func exchangeOfferFromBytes(r *common.Reader) (ExchangeOffer, error) {
	if err := common.ReadAttachmentVersion(r); err != nil {
		return ExchangeOffer{}, err
	}
	o := ExchangeOffer{
		Currency: r.Uint64(),
		Rate:     r.Int64(),
		Units:    r.Int64(),
	}
	return o, r.Err()
}

func exchangeOfferFromJson(obj json.Object) (ExchangeOffer, error) {
	currencyId, err := obj.Id("currency")
	if err != nil {
		return ExchangeOffer{}, err
	}
	return ExchangeOffer{
		Currency: currencyId,
		Rate:     obj.Int64("rateNQTPerUnit"),
		Units:    obj.Int64("unitsQNT"),
	}, nil
}

var ExchangeBuyCodec = common.AttachmentCodec{
	FromBytes: func(reg *common.Registry, r *common.Reader) (common.Attachment, error) {
		o, err := exchangeOfferFromBytes(r)
		if err != nil {
			return nil, err
		}
		return &ExchangeBuy{ExchangeOffer: o}, nil
	},
	FromJson: func(reg *common.Registry, obj json.Object) (common.Attachment, error) {
		o, err := exchangeOfferFromJson(obj)
		if err != nil {
			return nil, err
		}
		return &ExchangeBuy{ExchangeOffer: o}, nil
	},
}

var ExchangeSellCodec = common.AttachmentCodec{
	FromBytes: func(reg *common.Registry, r *common.Reader) (common.Attachment, error) {
		o, err := exchangeOfferFromBytes(r)
		if err != nil {
			return nil, err
		}
		return &ExchangeSell{ExchangeOffer: o}, nil
	},
	FromJson: func(reg *common.Registry, obj json.Object) (common.Attachment, error) {
		o, err := exchangeOfferFromJson(obj)
		if err != nil {
			return nil, err
		}
		return &ExchangeSell{ExchangeOffer: o}, nil
	},
}

var CurrencyMintingCodec = common.AttachmentCodec{
	FromBytes: func(reg *common.Registry, r *common.Reader) (common.Attachment, error) {
		if err := common.ReadAttachmentVersion(r); err != nil {
			return nil, err
		}
		a := &CurrencyMinting{
			Nonce:    r.Int64(),
			Currency: r.Uint64(),
			Units:    r.Int64(),
			Counter:  r.Int64(),
		}
		return a, r.Err()
	},
	FromJson: func(reg *common.Registry, obj json.Object) (common.Attachment, error) {
		currencyId, err := obj.Id("currency")
		if err != nil {
			return nil, err
		}
		return &CurrencyMinting{
			Nonce:    obj.Int64("nonce"),
			Currency: currencyId,
			Units:    obj.Int64("units"),
			Counter:  obj.Int64("counter"),
		}, nil
	},
}

var CurrencyDeletionCodec = common.AttachmentCodec{
	FromBytes: func(reg *common.Registry, r *common.Reader) (common.Attachment, error) {
		if err := common.ReadAttachmentVersion(r); err != nil {
			return nil, err
		}
		a := &CurrencyDeletion{
			Currency: r.Uint64(),
		}
		return a, r.Err()
	},
	FromJson: func(reg *common.Registry, obj json.Object) (common.Attachment, error) {
		currencyId, err := obj.Id("currency")
		if err != nil {
			return nil, err
		}
		return &CurrencyDeletion{Currency: currencyId}, nil
	},
}
