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
	"testing"

	"github.com/blinklabs-io/gardor/internal/test"
	"github.com/blinklabs-io/gardor/json"
	"github.com/blinklabs-io/gardor/ledger/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRegistry() *common.Registry {
	reg := common.NewRegistry()
	reg.AddChain(common.Chain{Id: 2, Name: "IGNIS", Decimals: 8})
	return reg
}

func roundTrip(
	t *testing.T,
	codec common.AttachmentCodec,
	a common.Attachment,
) {
	t.Helper()
	reg := testRegistry()
	w := common.NewWriter()
	a.WriteBytes(w)
	fromBytes, err := codec.FromBytes(reg, common.NewReader(w.Data()))
	require.NoError(t, err)
	assert.Equal(t, a, fromBytes)
	fromJson, err := codec.FromJson(reg, a.Json())
	require.NoError(t, err)
	assert.Equal(t, a, fromJson)
}

func TestCurrencyIssuanceRoundTrip(t *testing.T) {
	roundTrip(t, CurrencyIssuanceCodec, &CurrencyIssuance{
		CurrencyName:      "Beta",
		Code:              "BETA",
		Description:       "test currency",
		Type:              3,
		InitialSupply:     1000000,
		ReserveSupply:     2000000,
		MaxSupply:         5000000,
		IssuanceHeight:    250000,
		MinReservePerUnit: 100,
		MinDifficulty:     4,
		MaxDifficulty:     16,
		Ruleset:           0,
		Algorithm:         2,
		Decimals:          4,
	})
}

func TestReserveIncreaseRoundTrip(t *testing.T) {
	roundTrip(t, ReserveIncreaseCodec, &ReserveIncrease{
		Currency:      test.DecodeIdString("6926770479287491943"),
		AmountPerUnit: 250,
	})
}

func TestReserveClaimRoundTrip(t *testing.T) {
	roundTrip(t, ReserveClaimCodec, &ReserveClaim{
		Currency: test.DecodeIdString("6926770479287491943"),
		Units:    1000,
	})
}

func TestCurrencyTransferRoundTrip(t *testing.T) {
	roundTrip(t, CurrencyTransferCodec, &CurrencyTransfer{
		Currency: test.DecodeIdString("6926770479287491943"),
		Units:    2500,
	})
}

func TestPublishExchangeOfferRoundTrip(t *testing.T) {
	roundTrip(t, PublishExchangeOfferCodec, &PublishExchangeOffer{
		Currency:          test.DecodeIdString("6926770479287491943"),
		BuyRate:           95,
		SellRate:          105,
		TotalBuyLimit:     100000,
		TotalSellLimit:    100000,
		InitialBuySupply:  5000,
		InitialSellSupply: 5000,
		ExpirationHeight:  300000,
	})
}

func TestExchangeBuyRoundTrip(t *testing.T) {
	roundTrip(t, ExchangeBuyCodec, &ExchangeBuy{
		ExchangeOffer: ExchangeOffer{
			Currency: test.DecodeIdString("6926770479287491943"),
			Rate:     100,
			Units:    500,
		},
	})
}

func TestExchangeSellRoundTrip(t *testing.T) {
	roundTrip(t, ExchangeSellCodec, &ExchangeSell{
		ExchangeOffer: ExchangeOffer{
			Currency: test.DecodeIdString("6926770479287491943"),
			Rate:     110,
			Units:    500,
		},
	})
}

func TestCurrencyMintingRoundTrip(t *testing.T) {
	roundTrip(t, CurrencyMintingCodec, &CurrencyMinting{
		Nonce:    123456789,
		Currency: test.DecodeIdString("6926770479287491943"),
		Units:    10,
		Counter:  7,
	})
}

func TestCurrencyMintingJsonKeys(t *testing.T) {
	// Node responses carry the minted amount under "units", not "unitsQNT"
	a := &CurrencyMinting{
		Nonce:    123456789,
		Currency: test.DecodeIdString("6926770479287491943"),
		Units:    10,
		Counter:  7,
	}
	obj := a.Json()
	assert.Contains(t, obj, "units")
	assert.NotContains(t, obj, "unitsQNT")
	fromJson, err := CurrencyMintingCodec.FromJson(testRegistry(), json.Object{
		"version.CurrencyMinting": int64(1),
		"nonce":                   int64(123456789),
		"currency":                "6926770479287491943",
		"units":                   int64(10),
		"counter":                 int64(7),
	})
	require.NoError(t, err)
	assert.Equal(t, a, fromJson)
}

func TestCurrencyDeletionRoundTrip(t *testing.T) {
	roundTrip(t, CurrencyDeletionCodec, &CurrencyDeletion{
		Currency: test.DecodeIdString("6926770479287491943"),
	})
}

func TestCurrencyIssuanceTruncated(t *testing.T) {
	a := &CurrencyIssuance{
		CurrencyName: "Beta",
		Code:         "BETA",
		MaxSupply:    5000000,
	}
	w := common.NewWriter()
	a.WriteBytes(w)
	data := w.Data()
	for _, size := range []int{0, 1, 4, len(data) - 1} {
		_, err := CurrencyIssuanceCodec.FromBytes(
			testRegistry(),
			common.NewReader(data[:size]),
		)
		assert.ErrorIs(t, err, common.ErrDataTruncated)
	}
}

func TestCurrencyMintingBadVersion(t *testing.T) {
	data := test.DecodeHexString("02000000000000000000")
	_, err := CurrencyMintingCodec.FromBytes(
		testRegistry(),
		common.NewReader(data),
	)
	var malformed common.MalformedError
	require.ErrorAs(t, err, &malformed)
}
