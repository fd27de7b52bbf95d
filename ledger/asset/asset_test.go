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
	"testing"

	"github.com/blinklabs-io/gardor/internal/test"
	"github.com/blinklabs-io/gardor/ledger/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRegistry() *common.Registry {
	reg := common.NewRegistry()
	reg.AddChain(common.Chain{Id: 1, Name: "ARDR", Decimals: 8})
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

func TestAssetIssuanceRoundTrip(t *testing.T) {
	roundTrip(t, AssetIssuanceCodec, &AssetIssuance{
		AssetName:   "Token",
		Description: "a test token",
		Quantity:    1000000,
		Decimals:    4,
	})
}

func TestAssetTransferRoundTrip(t *testing.T) {
	roundTrip(t, AssetTransferCodec, &AssetTransfer{
		Asset:    test.DecodeIdString("17918212219085582284"),
		Quantity: 250,
	})
}

func TestOrderPlacementRoundTrip(t *testing.T) {
	order := OrderPlacement{
		Asset:    test.DecodeIdString("9882143111906313260"),
		Quantity: 100,
		Price:    250000000,
	}
	roundTrip(t, AskOrderPlacementCodec, &AskOrderPlacement{order})
	roundTrip(t, BidOrderPlacementCodec, &BidOrderPlacement{order})
}

func TestOrderCancellationRoundTrip(t *testing.T) {
	orderHash := test.DecodeHexString(
		"a7c227500b30997ad1d5e28b832b550cea9dbb93b300cb839f4d551743e1edf0",
	)
	cancel := OrderCancellation{OrderHash: orderHash}
	roundTrip(t, AskOrderCancellationCodec, &AskOrderCancellation{cancel})
	roundTrip(t, BidOrderCancellationCodec, &BidOrderCancellation{cancel})
	assert.Equal(t, common.FullHashToId(orderHash), cancel.OrderId())
}

func TestDividendPaymentRoundTrip(t *testing.T) {
	roundTrip(t, DividendPaymentCodec, &DividendPayment{
		Asset:  test.DecodeIdString("12422608354438203866"),
		Height: 1500000,
		Amount: 10000,
	})
}

func TestAssetDeleteRoundTrip(t *testing.T) {
	roundTrip(t, AssetDeleteCodec, &AssetDelete{
		Asset:    test.DecodeIdString("12422608354438203866"),
		Quantity: 42,
	})
}

func TestAssetIssuanceTruncated(t *testing.T) {
	a := &AssetIssuance{AssetName: "Token", Quantity: 1}
	w := common.NewWriter()
	a.WriteBytes(w)
	for _, size := range []int{0, 1, 3, w.Len() - 1} {
		_, err := AssetIssuanceCodec.FromBytes(
			testRegistry(),
			common.NewReader(w.Data()[:size]),
		)
		assert.ErrorIs(t, err, common.ErrDataTruncated)
	}
}

func TestAssetIssuanceBadVersion(t *testing.T) {
	data := test.DecodeHexString("020000")
	_, err := AssetIssuanceCodec.FromBytes(
		testRegistry(),
		common.NewReader(data),
	)
	var malformed common.MalformedError
	require.ErrorAs(t, err, &malformed)
}
