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

// Package ms implements the monetary system transaction payloads.
package ms

import (
	"fmt"
	"strings"

	"github.com/blinklabs-io/gardor/json"
	"github.com/blinklabs-io/gardor/ledger/common"
)

// CurrencyIssuance creates a new currency
type CurrencyIssuance struct {
	CurrencyName      string
	Code              string
	Description       string
	Type              uint8
	InitialSupply     int64
	ReserveSupply     int64
	MaxSupply         int64
	IssuanceHeight    int32
	MinReservePerUnit int64
	MinDifficulty     uint8
	MaxDifficulty     uint8
	Ruleset           uint8
	Algorithm         uint8
	Decimals          uint8
}

func (a *CurrencyIssuance) Name() string {
	return "CurrencyIssuance"
}

func (a *CurrencyIssuance) Version() uint8 {
	return 1
}

func (a *CurrencyIssuance) WriteBytes(w *common.Writer) {
	w.Uint8(a.Version())
	w.String8(a.CurrencyName)
	w.String8(a.Code)
	w.String16(a.Description)
	w.Uint8(a.Type)
	w.Int64(a.InitialSupply)
	w.Int64(a.ReserveSupply)
	w.Int64(a.MaxSupply)
	w.Int32(a.IssuanceHeight)
	w.Int64(a.MinReservePerUnit)
	w.Uint8(a.MinDifficulty)
	w.Uint8(a.MaxDifficulty)
	w.Uint8(a.Ruleset)
	w.Uint8(a.Algorithm)
	w.Uint8(a.Decimals)
}

func (a *CurrencyIssuance) Json() json.Object {
	return json.Object{
		"version.CurrencyIssuance": int64(a.Version()),
		"name":                     a.CurrencyName,
		"code":                     a.Code,
		"description":              a.Description,
		"type":                     int64(a.Type),
		"initialSupplyQNT":         a.InitialSupply,
		"reserveSupplyQNT":         a.ReserveSupply,
		"maxSupplyQNT":             a.MaxSupply,
		"issuanceHeight":           int64(a.IssuanceHeight),
		"minReservePerUnitNQT":     a.MinReservePerUnit,
		"minDifficulty":            int64(a.MinDifficulty),
		"maxDifficulty":            int64(a.MaxDifficulty),
		"ruleset":                  int64(a.Ruleset),
		"algorithm":                int64(a.Algorithm),
		"decimals":                 int64(a.Decimals),
	}
}

func (a *CurrencyIssuance) Describe(reg *common.Registry) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "  Name:  %s\n", a.CurrencyName)
	fmt.Fprintf(&sb, "  Code:  %s\n", a.Code)
	fmt.Fprintf(&sb, "  Description:  %s\n", a.Description)
	fmt.Fprintf(&sb, "  Type:  %d\n", a.Type)
	fmt.Fprintf(
		&sb,
		"  Initial Supply:  %s\n",
		common.FormatAmount(a.InitialSupply, int(a.Decimals)),
	)
	fmt.Fprintf(
		&sb,
		"  Maximum Supply:  %s\n",
		common.FormatAmount(a.MaxSupply, int(a.Decimals)),
	)
	fmt.Fprintf(&sb, "  Decimals:  %d\n", a.Decimals)
	return sb.String()
}

// ReserveIncrease adds reserve backing to a reservable currency
type ReserveIncrease struct {
	Currency      uint64
	AmountPerUnit int64
}

func (a *ReserveIncrease) Name() string {
	return "ReserveIncrease"
}

func (a *ReserveIncrease) Version() uint8 {
	return 1
}

func (a *ReserveIncrease) WriteBytes(w *common.Writer) {
	w.Uint8(a.Version())
	w.Uint64(a.Currency)
	w.Int64(a.AmountPerUnit)
}

func (a *ReserveIncrease) Json() json.Object {
	return json.Object{
		"version.ReserveIncrease": int64(a.Version()),
		"currency":                common.IdToString(a.Currency),
		"amountPerUnitNQT":        a.AmountPerUnit,
	}
}

func (a *ReserveIncrease) Describe(reg *common.Registry) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "  Currency:  %s\n", common.IdToString(a.Currency))
	fmt.Fprintf(&sb, "  Amount Per Unit:  %d\n", a.AmountPerUnit)
	return sb.String()
}

// ReserveClaim redeems currency units for the reserve backing
type ReserveClaim struct {
	Currency uint64
	Units    int64
}

func (a *ReserveClaim) Name() string {
	return "ReserveClaim"
}

func (a *ReserveClaim) Version() uint8 {
	return 1
}

func (a *ReserveClaim) WriteBytes(w *common.Writer) {
	w.Uint8(a.Version())
	w.Uint64(a.Currency)
	w.Int64(a.Units)
}

func (a *ReserveClaim) Json() json.Object {
	return json.Object{
		"version.ReserveClaim": int64(a.Version()),
		"currency":             common.IdToString(a.Currency),
		"unitsQNT":             a.Units,
	}
}

func (a *ReserveClaim) Describe(reg *common.Registry) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "  Currency:  %s\n", common.IdToString(a.Currency))
	fmt.Fprintf(&sb, "  Units:  %d\n", a.Units)
	return sb.String()
}

// CurrencyTransfer moves currency units between accounts
type CurrencyTransfer struct {
	Currency uint64
	Units    int64
}

func (a *CurrencyTransfer) Name() string {
	return "CurrencyTransfer"
}

func (a *CurrencyTransfer) Version() uint8 {
	return 1
}

func (a *CurrencyTransfer) WriteBytes(w *common.Writer) {
	w.Uint8(a.Version())
	w.Uint64(a.Currency)
	w.Int64(a.Units)
}

func (a *CurrencyTransfer) Json() json.Object {
	return json.Object{
		"version.CurrencyTransfer": int64(a.Version()),
		"currency":                 common.IdToString(a.Currency),
		"unitsQNT":                 a.Units,
	}
}

func (a *CurrencyTransfer) Describe(reg *common.Registry) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "  Currency:  %s\n", common.IdToString(a.Currency))
	fmt.Fprintf(&sb, "  Units:  %d\n", a.Units)
	return sb.String()
}

// PublishExchangeOffer publishes a buy and sell offer for a currency
type PublishExchangeOffer struct {
	Currency          uint64
	BuyRate           int64
	SellRate          int64
	TotalBuyLimit     int64
	TotalSellLimit    int64
	InitialBuySupply  int64
	InitialSellSupply int64
	ExpirationHeight  int32
}

func (a *PublishExchangeOffer) Name() string {
	return "PublishExchangeOffer"
}

func (a *PublishExchangeOffer) Version() uint8 {
	return 1
}

func (a *PublishExchangeOffer) WriteBytes(w *common.Writer) {
	w.Uint8(a.Version())
	w.Uint64(a.Currency)
	w.Int64(a.BuyRate)
	w.Int64(a.SellRate)
	w.Int64(a.TotalBuyLimit)
	w.Int64(a.TotalSellLimit)
	w.Int64(a.InitialBuySupply)
	w.Int64(a.InitialSellSupply)
	w.Int32(a.ExpirationHeight)
}

func (a *PublishExchangeOffer) Json() json.Object {
	return json.Object{
		"version.PublishExchangeOffer": int64(a.Version()),
		"currency":                     common.IdToString(a.Currency),
		"buyRateNQTPerUnit":            a.BuyRate,
		"sellRateNQTPerUnit":           a.SellRate,
		"totalBuyLimitQNT":             a.TotalBuyLimit,
		"totalSellLimitQNT":            a.TotalSellLimit,
		"initialBuySupplyQNT":          a.InitialBuySupply,
		"initialSellSupplyQNT":         a.InitialSellSupply,
		"expirationHeight":             int64(a.ExpirationHeight),
	}
}

func (a *PublishExchangeOffer) Describe(reg *common.Registry) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "  Currency:  %s\n", common.IdToString(a.Currency))
	fmt.Fprintf(&sb, "  Buy Rate:  %d\n", a.BuyRate)
	fmt.Fprintf(&sb, "  Sell Rate:  %d\n", a.SellRate)
	fmt.Fprintf(&sb, "  Expiration Height:  %d\n", a.ExpirationHeight)
	return sb.String()
}

// ExchangeOffer is the shared body of currency exchange buy and sell orders
type ExchangeOffer struct {
	Currency uint64
	Rate     int64
	Units    int64
}

func (a *ExchangeOffer) json(name string) json.Object {
	return json.Object{
		"version." + name: int64(1),
		"currency":        common.IdToString(a.Currency),
		"rateNQTPerUnit":  a.Rate,
		"unitsQNT":        a.Units,
	}
}

func (a *ExchangeOffer) Describe(reg *common.Registry) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "  Currency:  %s\n", common.IdToString(a.Currency))
	fmt.Fprintf(&sb, "  Rate:  %d\n", a.Rate)
	fmt.Fprintf(&sb, "  Units:  %d\n", a.Units)
	return sb.String()
}

func (a *ExchangeOffer) writeBody(w *common.Writer) {
	w.Uint64(a.Currency)
	w.Int64(a.Rate)
	w.Int64(a.Units)
}

type ExchangeBuy struct {
	ExchangeOffer
}

func (a *ExchangeBuy) Name() string {
	return "ExchangeBuy"
}

func (a *ExchangeBuy) Version() uint8 {
	return 1
}

func (a *ExchangeBuy) WriteBytes(w *common.Writer) {
	w.Uint8(a.Version())
	a.writeBody(w)
}

func (a *ExchangeBuy) Json() json.Object {
	return a.json(a.Name())
}

type ExchangeSell struct {
	ExchangeOffer
}

func (a *ExchangeSell) Name() string {
	return "ExchangeSell"
}

func (a *ExchangeSell) Version() uint8 {
	return 1
}

func (a *ExchangeSell) WriteBytes(w *common.Writer) {
	w.Uint8(a.Version())
	a.writeBody(w)
}

func (a *ExchangeSell) Json() json.Object {
	return a.json(a.Name())
}

// CurrencyMinting submits a proof-of-work solution to mint currency units
type CurrencyMinting struct {
	Nonce    int64
	Currency uint64
	Units    int64
	Counter  int64
}

func (a *CurrencyMinting) Name() string {
	return "CurrencyMinting"
}

func (a *CurrencyMinting) Version() uint8 {
	return 1
}

func (a *CurrencyMinting) WriteBytes(w *common.Writer) {
	w.Uint8(a.Version())
	w.Int64(a.Nonce)
	w.Uint64(a.Currency)
	w.Int64(a.Units)
	w.Int64(a.Counter)
}

func (a *CurrencyMinting) Json() json.Object {
	return json.Object{
		"version.CurrencyMinting": int64(a.Version()),
		"nonce":                   a.Nonce,
		"currency":                common.IdToString(a.Currency),
		"units":                   a.Units,
		"counter":                 a.Counter,
	}
}

func (a *CurrencyMinting) Describe(reg *common.Registry) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "  Currency:  %s\n", common.IdToString(a.Currency))
	fmt.Fprintf(&sb, "  Nonce:  %d\n", a.Nonce)
	fmt.Fprintf(&sb, "  Units:  %d\n", a.Units)
	fmt.Fprintf(&sb, "  Counter:  %d\n", a.Counter)
	return sb.String()
}

// CurrencyDeletion deletes a currency
type CurrencyDeletion struct {
	Currency uint64
}

func (a *CurrencyDeletion) Name() string {
	return "CurrencyDeletion"
}

func (a *CurrencyDeletion) Version() uint8 {
	return 1
}

func (a *CurrencyDeletion) WriteBytes(w *common.Writer) {
	w.Uint8(a.Version())
	w.Uint64(a.Currency)
}

func (a *CurrencyDeletion) Json() json.Object {
	return json.Object{
		"version.CurrencyDeletion": int64(a.Version()),
		"currency":                 common.IdToString(a.Currency),
	}
}

func (a *CurrencyDeletion) Describe(reg *common.Registry) string {
	return fmt.Sprintf("  Currency:  %s\n", common.IdToString(a.Currency))
}
