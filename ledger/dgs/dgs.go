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

// Package dgs implements the digital goods store transaction payloads.
package dgs

import (
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/blinklabs-io/gardor/json"
	"github.com/blinklabs-io/gardor/ledger/common"
)

// DigitalGoodsListing offers goods for sale
type DigitalGoodsListing struct {
	GoodsName   string
	Description string
	Tags        string
	Quantity    int32
	Price       int64
}

func (a *DigitalGoodsListing) Name() string {
	return "DigitalGoodsListing"
}

func (a *DigitalGoodsListing) Version() uint8 {
	return 1
}

func (a *DigitalGoodsListing) WriteBytes(w *common.Writer) {
	w.Uint8(a.Version())
	w.String16(a.GoodsName)
	w.String16(a.Description)
	w.String16(a.Tags)
	w.Int32(a.Quantity)
	w.Int64(a.Price)
}

func (a *DigitalGoodsListing) Json() json.Object {
	return json.Object{
		"version.DigitalGoodsListing": int64(a.Version()),
		"name":                        a.GoodsName,
		"description":                 a.Description,
		"tags":                        a.Tags,
		"quantity":                    int64(a.Quantity),
		"priceNQT":                    a.Price,
	}
}

func (a *DigitalGoodsListing) Describe(reg *common.Registry) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "  Name:  %s\n", a.GoodsName)
	fmt.Fprintf(&sb, "  Description:  %s\n", a.Description)
	fmt.Fprintf(&sb, "  Tags:  %s\n", a.Tags)
	fmt.Fprintf(&sb, "  Quantity:  %d\n", a.Quantity)
	fmt.Fprintf(&sb, "  Price:  %d\n", a.Price)
	return sb.String()
}

// DigitalGoodsDelisting removes a goods listing
type DigitalGoodsDelisting struct {
	Goods uint64
}

func (a *DigitalGoodsDelisting) Name() string {
	return "DigitalGoodsDelisting"
}

func (a *DigitalGoodsDelisting) Version() uint8 {
	return 1
}

func (a *DigitalGoodsDelisting) WriteBytes(w *common.Writer) {
	w.Uint8(a.Version())
	w.Uint64(a.Goods)
}

func (a *DigitalGoodsDelisting) Json() json.Object {
	return json.Object{
		"version.DigitalGoodsDelisting": int64(a.Version()),
		"goods":                         common.IdToString(a.Goods),
	}
}

func (a *DigitalGoodsDelisting) Describe(reg *common.Registry) string {
	return fmt.Sprintf("  Goods:  %s\n", common.IdToString(a.Goods))
}

// DigitalGoodsPriceChange changes the price of listed goods
type DigitalGoodsPriceChange struct {
	Goods uint64
	Price int64
}

func (a *DigitalGoodsPriceChange) Name() string {
	return "DigitalGoodsPriceChange"
}

func (a *DigitalGoodsPriceChange) Version() uint8 {
	return 1
}

func (a *DigitalGoodsPriceChange) WriteBytes(w *common.Writer) {
	w.Uint8(a.Version())
	w.Uint64(a.Goods)
	w.Int64(a.Price)
}

func (a *DigitalGoodsPriceChange) Json() json.Object {
	return json.Object{
		"version.DigitalGoodsPriceChange": int64(a.Version()),
		"goods":                           common.IdToString(a.Goods),
		"priceNQT":                        a.Price,
	}
}

func (a *DigitalGoodsPriceChange) Describe(reg *common.Registry) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "  Goods:  %s\n", common.IdToString(a.Goods))
	fmt.Fprintf(&sb, "  Price:  %d\n", a.Price)
	return sb.String()
}

// DigitalGoodsQuantityChange adjusts the available quantity of listed goods
type DigitalGoodsQuantityChange struct {
	Goods         uint64
	DeltaQuantity int32
}

func (a *DigitalGoodsQuantityChange) Name() string {
	return "DigitalGoodsQuantityChange"
}

func (a *DigitalGoodsQuantityChange) Version() uint8 {
	return 1
}

func (a *DigitalGoodsQuantityChange) WriteBytes(w *common.Writer) {
	w.Uint8(a.Version())
	w.Uint64(a.Goods)
	w.Int32(a.DeltaQuantity)
}

func (a *DigitalGoodsQuantityChange) Json() json.Object {
	return json.Object{
		"version.DigitalGoodsQuantityChange": int64(a.Version()),
		"goods":                              common.IdToString(a.Goods),
		"deltaQuantity":                      int64(a.DeltaQuantity),
	}
}

func (a *DigitalGoodsQuantityChange) Describe(reg *common.Registry) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "  Goods:  %s\n", common.IdToString(a.Goods))
	fmt.Fprintf(&sb, "  Delta Quantity:  %d\n", a.DeltaQuantity)
	return sb.String()
}

// DigitalGoodsPurchase buys listed goods
type DigitalGoodsPurchase struct {
	Goods            uint64
	Quantity         int32
	Price            int64
	DeliveryDeadline int32
}

func (a *DigitalGoodsPurchase) Name() string {
	return "DigitalGoodsPurchase"
}

func (a *DigitalGoodsPurchase) Version() uint8 {
	return 1
}

func (a *DigitalGoodsPurchase) WriteBytes(w *common.Writer) {
	w.Uint8(a.Version())
	w.Uint64(a.Goods)
	w.Int32(a.Quantity)
	w.Int64(a.Price)
	w.Int32(a.DeliveryDeadline)
}

func (a *DigitalGoodsPurchase) Json() json.Object {
	return json.Object{
		"version.DigitalGoodsPurchase": int64(a.Version()),
		"goods":                        common.IdToString(a.Goods),
		"quantity":                     int64(a.Quantity),
		"priceNQT":                     a.Price,
		"deliveryDeadlineTimestamp":    int64(a.DeliveryDeadline),
	}
}

func (a *DigitalGoodsPurchase) Describe(reg *common.Registry) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "  Goods:  %s\n", common.IdToString(a.Goods))
	fmt.Fprintf(&sb, "  Quantity:  %d\n", a.Quantity)
	fmt.Fprintf(&sb, "  Price:  %d\n", a.Price)
	fmt.Fprintf(
		&sb,
		"  Delivery Deadline:  %s\n",
		reg.TimeFromTimestamp(a.DeliveryDeadline).Format("2006-01-02 15:04:05"),
	)
	return sb.String()
}

// DigitalGoodsDelivery delivers purchased goods as encrypted data
type DigitalGoodsDelivery struct {
	Purchase    uint64
	GoodsData   []byte
	GoodsNonce  []byte
	GoodsIsText bool
	Discount    int64
}

func (a *DigitalGoodsDelivery) Name() string {
	return "DigitalGoodsDelivery"
}

func (a *DigitalGoodsDelivery) Version() uint8 {
	return 1
}

func (a *DigitalGoodsDelivery) WriteBytes(w *common.Writer) {
	w.Uint8(a.Version())
	w.Uint64(a.Purchase)
	length := uint32(len(a.GoodsData)) //nolint:gosec
	if a.GoodsIsText {
		length |= 0x80000000
	}
	w.Uint32(length)
	w.Bytes(a.GoodsData)
	w.Bytes(a.GoodsNonce)
	w.Int64(a.Discount)
}

func (a *DigitalGoodsDelivery) Json() json.Object {
	return json.Object{
		"version.DigitalGoodsDelivery": int64(a.Version()),
		"purchase":                     common.IdToString(a.Purchase),
		"goodsData":                    hex.EncodeToString(a.GoodsData),
		"goodsNonce":                   hex.EncodeToString(a.GoodsNonce),
		"goodsIsText":                  a.GoodsIsText,
		"discountNQT":                  a.Discount,
	}
}

func (a *DigitalGoodsDelivery) Describe(reg *common.Registry) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "  Purchase:  %s\n", common.IdToString(a.Purchase))
	fmt.Fprintf(&sb, "  Discount:  %d\n", a.Discount)
	fmt.Fprintf(&sb, "  Goods Is Text:  %v\n", a.GoodsIsText)
	return sb.String()
}

// DigitalGoodsFeedback gives feedback on a purchase
type DigitalGoodsFeedback struct {
	Purchase uint64
}

func (a *DigitalGoodsFeedback) Name() string {
	return "DigitalGoodsFeedback"
}

func (a *DigitalGoodsFeedback) Version() uint8 {
	return 1
}

func (a *DigitalGoodsFeedback) WriteBytes(w *common.Writer) {
	w.Uint8(a.Version())
	w.Uint64(a.Purchase)
}

func (a *DigitalGoodsFeedback) Json() json.Object {
	return json.Object{
		"version.DigitalGoodsFeedback": int64(a.Version()),
		"purchase":                     common.IdToString(a.Purchase),
	}
}

func (a *DigitalGoodsFeedback) Describe(reg *common.Registry) string {
	return fmt.Sprintf("  Purchase:  %s\n", common.IdToString(a.Purchase))
}

// DigitalGoodsRefund refunds a purchase
type DigitalGoodsRefund struct {
	Purchase uint64
	Refund   int64
}

func (a *DigitalGoodsRefund) Name() string {
	return "DigitalGoodsRefund"
}

func (a *DigitalGoodsRefund) Version() uint8 {
	return 1
}

func (a *DigitalGoodsRefund) WriteBytes(w *common.Writer) {
	w.Uint8(a.Version())
	w.Uint64(a.Purchase)
	w.Int64(a.Refund)
}

func (a *DigitalGoodsRefund) Json() json.Object {
	return json.Object{
		"version.DigitalGoodsRefund": int64(a.Version()),
		"purchase":                   common.IdToString(a.Purchase),
		"refundNQT":                  a.Refund,
	}
}

func (a *DigitalGoodsRefund) Describe(reg *common.Registry) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "  Purchase:  %s\n", common.IdToString(a.Purchase))
	fmt.Fprintf(&sb, "  Refund:  %d\n", a.Refund)
	return sb.String()
}
