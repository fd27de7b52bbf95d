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
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/blinklabs-io/gardor/json"
	"github.com/blinklabs-io/gardor/ledger/common"
)

// AssetIssuance creates a new asset
type AssetIssuance struct {
	AssetName   string
	Description string
	Quantity    int64
	Decimals    uint8
}

func (a *AssetIssuance) Name() string {
	return "AssetIssuance"
}

func (a *AssetIssuance) Version() uint8 {
	return 1
}

func (a *AssetIssuance) WriteBytes(w *common.Writer) {
	w.Uint8(a.Version())
	w.String8(a.AssetName)
	w.String16(a.Description)
	w.Int64(a.Quantity)
	w.Uint8(a.Decimals)
}

func (a *AssetIssuance) Json() json.Object {
	return json.Object{
		"version.AssetIssuance": int64(a.Version()),
		"name":                  a.AssetName,
		"description":           a.Description,
		"quantityQNT":           a.Quantity,
		"decimals":              int64(a.Decimals),
	}
}

func (a *AssetIssuance) Describe(reg *common.Registry) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "  Name:  %s\n", a.AssetName)
	fmt.Fprintf(&sb, "  Description:  %s\n", a.Description)
	fmt.Fprintf(
		&sb,
		"  Quantity:  %s\n",
		common.FormatAmount(a.Quantity, int(a.Decimals)),
	)
	fmt.Fprintf(&sb, "  Decimals:  %d\n", a.Decimals)
	return sb.String()
}

// AssetTransfer moves asset units between accounts
type AssetTransfer struct {
	Asset    uint64
	Quantity int64
}

func (a *AssetTransfer) Name() string {
	return "AssetTransfer"
}

func (a *AssetTransfer) Version() uint8 {
	return 1
}

func (a *AssetTransfer) WriteBytes(w *common.Writer) {
	w.Uint8(a.Version())
	w.Uint64(a.Asset)
	w.Int64(a.Quantity)
}

func (a *AssetTransfer) Json() json.Object {
	return json.Object{
		"version.AssetTransfer": int64(a.Version()),
		"asset":                 common.IdToString(a.Asset),
		"quantityQNT":           a.Quantity,
	}
}

func (a *AssetTransfer) Describe(reg *common.Registry) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "  Asset:  %s\n", common.IdToString(a.Asset))
	fmt.Fprintf(&sb, "  Quantity:  %d\n", a.Quantity)
	return sb.String()
}

// OrderPlacement is the shared body of ask and bid order placements
type OrderPlacement struct {
	Asset    uint64
	Quantity int64
	Price    int64
}

func (a *OrderPlacement) writeBody(w *common.Writer) {
	w.Uint64(a.Asset)
	w.Int64(a.Quantity)
	w.Int64(a.Price)
}

func (a *OrderPlacement) json(name string) json.Object {
	return json.Object{
		"version." + name: int64(1),
		"asset":           common.IdToString(a.Asset),
		"quantityQNT":     a.Quantity,
		"priceNQT":        a.Price,
	}
}

func (a *OrderPlacement) Describe(reg *common.Registry) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "  Asset:  %s\n", common.IdToString(a.Asset))
	fmt.Fprintf(&sb, "  Quantity:  %d\n", a.Quantity)
	fmt.Fprintf(&sb, "  Price:  %d\n", a.Price)
	return sb.String()
}

type AskOrderPlacement struct {
	OrderPlacement
}

func (a *AskOrderPlacement) Name() string {
	return "AskOrderPlacement"
}

func (a *AskOrderPlacement) Version() uint8 {
	return 1
}

func (a *AskOrderPlacement) WriteBytes(w *common.Writer) {
	w.Uint8(a.Version())
	a.writeBody(w)
}

func (a *AskOrderPlacement) Json() json.Object {
	return a.json(a.Name())
}

type BidOrderPlacement struct {
	OrderPlacement
}

func (a *BidOrderPlacement) Name() string {
	return "BidOrderPlacement"
}

func (a *BidOrderPlacement) Version() uint8 {
	return 1
}

func (a *BidOrderPlacement) WriteBytes(w *common.Writer) {
	w.Uint8(a.Version())
	a.writeBody(w)
}

func (a *BidOrderPlacement) Json() json.Object {
	return a.json(a.Name())
}

// OrderCancellation is the shared body of ask and bid order cancellations.
// The order is referenced by the full hash of the placement transaction.
type OrderCancellation struct {
	OrderHash []byte
}

// OrderId returns the order identifier derived from the order hash
func (a *OrderCancellation) OrderId() uint64 {
	return common.FullHashToId(a.OrderHash)
}

func (a *OrderCancellation) json(name string) json.Object {
	return json.Object{
		"version." + name: int64(1),
		"orderHash":       hex.EncodeToString(a.OrderHash),
		"order":           common.IdToString(a.OrderId()),
	}
}

func (a *OrderCancellation) Describe(reg *common.Registry) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "  Order:  %s\n", common.IdToString(a.OrderId()))
	return sb.String()
}

type AskOrderCancellation struct {
	OrderCancellation
}

func (a *AskOrderCancellation) Name() string {
	return "AskOrderCancellation"
}

func (a *AskOrderCancellation) Version() uint8 {
	return 1
}

func (a *AskOrderCancellation) WriteBytes(w *common.Writer) {
	w.Uint8(a.Version())
	w.Bytes(a.OrderHash)
}

func (a *AskOrderCancellation) Json() json.Object {
	return a.json(a.Name())
}

type BidOrderCancellation struct {
	OrderCancellation
}

func (a *BidOrderCancellation) Name() string {
	return "BidOrderCancellation"
}

func (a *BidOrderCancellation) Version() uint8 {
	return 1
}

func (a *BidOrderCancellation) WriteBytes(w *common.Writer) {
	w.Uint8(a.Version())
	w.Bytes(a.OrderHash)
}

func (a *BidOrderCancellation) Json() json.Object {
	return a.json(a.Name())
}

// DividendPayment pays a dividend to asset holders as of a height
type DividendPayment struct {
	Asset  uint64
	Height int32
	Amount int64
}

func (a *DividendPayment) Name() string {
	return "DividendPayment"
}

func (a *DividendPayment) Version() uint8 {
	return 1
}

func (a *DividendPayment) WriteBytes(w *common.Writer) {
	w.Uint8(a.Version())
	w.Uint64(a.Asset)
	w.Int32(a.Height)
	w.Int64(a.Amount)
}

func (a *DividendPayment) Json() json.Object {
	return json.Object{
		"version.DividendPayment": int64(a.Version()),
		"asset":                   common.IdToString(a.Asset),
		"height":                  int64(a.Height),
		"amountNQTPerQNT":         a.Amount,
	}
}

func (a *DividendPayment) Describe(reg *common.Registry) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "  Asset:  %s\n", common.IdToString(a.Asset))
	fmt.Fprintf(&sb, "  Height:  %d\n", a.Height)
	fmt.Fprintf(&sb, "  Amount:  %d\n", a.Amount)
	return sb.String()
}

// AssetDelete removes asset units from circulation
type AssetDelete struct {
	Asset    uint64
	Quantity int64
}

func (a *AssetDelete) Name() string {
	return "AssetDelete"
}

func (a *AssetDelete) Version() uint8 {
	return 1
}

func (a *AssetDelete) WriteBytes(w *common.Writer) {
	w.Uint8(a.Version())
	w.Uint64(a.Asset)
	w.Int64(a.Quantity)
}

func (a *AssetDelete) Json() json.Object {
	return json.Object{
		"version.AssetDelete": int64(a.Version()),
		"asset":               common.IdToString(a.Asset),
		"quantityQNT":         a.Quantity,
	}
}

func (a *AssetDelete) Describe(reg *common.Registry) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "  Asset:  %s\n", common.IdToString(a.Asset))
	fmt.Fprintf(&sb, "  Quantity:  %d\n", a.Quantity)
	return sb.String()
}
