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

package exchange

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

func TestOrderIssueRoundTrip(t *testing.T) {
	reg := testRegistry()
	ignis, _ := reg.Chain(2)
	ardor, _ := reg.Chain(1)
	a := &ExchangeOrderIssue{
		Chain:         ignis,
		ExchangeChain: ardor,
		Quantity:      250000000,
		Price:         100000000,
	}
	w := common.NewWriter()
	a.WriteBytes(w)
	fromBytes, err := ExchangeOrderIssueCodec.FromBytes(
		reg,
		common.NewReader(w.Data()),
	)
	require.NoError(t, err)
	assert.Equal(t, a, fromBytes)
	fromJson, err := ExchangeOrderIssueCodec.FromJson(reg, a.Json())
	require.NoError(t, err)
	assert.Equal(t, a, fromJson)
}

func TestOrderIssueUnknownChain(t *testing.T) {
	reg := testRegistry()
	ignis, _ := reg.Chain(2)
	a := &ExchangeOrderIssue{
		Chain:         ignis,
		ExchangeChain: common.Chain{Id: 9, Name: "BOGUS"},
		Quantity:      1,
		Price:         1,
	}
	w := common.NewWriter()
	a.WriteBytes(w)
	var unknownChain common.UnknownChainError
	_, err := ExchangeOrderIssueCodec.FromBytes(reg, common.NewReader(w.Data()))
	require.ErrorAs(t, err, &unknownChain)
	assert.Equal(t, uint32(9), unknownChain.Id)
	_, err = ExchangeOrderIssueCodec.FromJson(reg, a.Json())
	require.ErrorAs(t, err, &unknownChain)
}

func TestOrderCancelRoundTrip(t *testing.T) {
	reg := testRegistry()
	a := &ExchangeOrderCancel{
		OrderHash: test.DecodeHexString(
			"9e3779b97f4a7c15f39cc0605cedc8341082276bf3a27251f86c6a11d0c18e95",
		),
	}
	w := common.NewWriter()
	a.WriteBytes(w)
	fromBytes, err := ExchangeOrderCancelCodec.FromBytes(
		reg,
		common.NewReader(w.Data()),
	)
	require.NoError(t, err)
	assert.Equal(t, a, fromBytes)
	fromJson, err := ExchangeOrderCancelCodec.FromJson(reg, a.Json())
	require.NoError(t, err)
	assert.Equal(t, a, fromJson)
	assert.Equal(t, common.FullHashToId(a.OrderHash), a.OrderId())
}

func TestOrderIssueTruncated(t *testing.T) {
	reg := testRegistry()
	ignis, _ := reg.Chain(2)
	ardor, _ := reg.Chain(1)
	a := &ExchangeOrderIssue{Chain: ignis, ExchangeChain: ardor}
	w := common.NewWriter()
	a.WriteBytes(w)
	data := w.Data()
	for _, size := range []int{0, 1, 6, len(data) - 1} {
		_, err := ExchangeOrderIssueCodec.FromBytes(
			reg,
			common.NewReader(data[:size]),
		)
		assert.ErrorIs(t, err, common.ErrDataTruncated)
	}
}
