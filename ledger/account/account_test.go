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

package account

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

func TestSetPhasingOnlyRoundTrip(t *testing.T) {
	roundTrip(t, SetPhasingOnlyCodec, &SetPhasingOnly{
		Params: common.PhasingParams{
			VotingModel: 0,
			Quorum:      2,
			Whitelist: []uint64{
				test.DecodeIdString("12745647715232902117"),
				test.DecodeIdString("16992224448242675179"),
			},
		},
		MaxFees: map[uint32]int64{
			1: 100000000,
			2: 500000000,
		},
		MinDuration: 10,
		MaxDuration: 1440,
	})
}

func TestSetPhasingOnlyStableFeeOrder(t *testing.T) {
	a := &SetPhasingOnly{
		Params: common.PhasingParams{VotingModel: -1},
		MaxFees: map[uint32]int64{
			2: 500000000,
			1: 100000000,
		},
	}
	w1 := common.NewWriter()
	a.WriteBytes(w1)
	w2 := common.NewWriter()
	a.WriteBytes(w2)
	assert.Equal(t, w1.Data(), w2.Data())
	// chain ids ascending after the params block and count byte
	params := common.NewWriter()
	a.Params.WriteBytes(params)
	offset := 1 + len(params.Data()) + 1
	assert.Equal(
		t,
		[]byte{0x01, 0x00, 0x00, 0x00},
		w1.Data()[offset:offset+4],
	)
}

func TestSetPhasingOnlyUnknownChain(t *testing.T) {
	a := &SetPhasingOnly{
		Params:  common.PhasingParams{VotingModel: -1},
		MaxFees: map[uint32]int64{9: 100000000},
	}
	w := common.NewWriter()
	a.WriteBytes(w)
	reg := testRegistry()
	_, err := SetPhasingOnlyCodec.FromBytes(reg, common.NewReader(w.Data()))
	var unknownChain common.UnknownChainError
	require.ErrorAs(t, err, &unknownChain)
	assert.Equal(t, uint32(9), unknownChain.Id)
	_, err = SetPhasingOnlyCodec.FromJson(reg, a.Json())
	require.ErrorAs(t, err, &unknownChain)
}

func TestAccountInfoRoundTrip(t *testing.T) {
	roundTrip(t, AccountInfoCodec, &AccountInfo{
		AccountName: "Alice",
		Description: "primary account",
	})
}

func TestAccountPropertySetRoundTrip(t *testing.T) {
	roundTrip(t, AccountPropertySetCodec, &AccountPropertySet{
		Property: "kyc",
		Value:    "verified",
	})
}

func TestAccountPropertyDeleteRoundTrip(t *testing.T) {
	roundTrip(t, AccountPropertyDeleteCodec, &AccountPropertyDelete{
		Property: test.DecodeIdString("11873036807749864860"),
	})
}

func TestEffectiveBalanceLeasingRoundTrip(t *testing.T) {
	roundTrip(t, EffectiveBalanceLeasingCodec, &EffectiveBalanceLeasing{
		Period: 1440,
	})
}

func TestSetPhasingOnlyTruncated(t *testing.T) {
	a := &SetPhasingOnly{
		Params:  common.PhasingParams{VotingModel: -1},
		MaxFees: map[uint32]int64{1: 100000000},
	}
	w := common.NewWriter()
	a.WriteBytes(w)
	data := w.Data()
	for _, size := range []int{0, 1, 5, len(data) - 1} {
		_, err := SetPhasingOnlyCodec.FromBytes(
			testRegistry(),
			common.NewReader(data[:size]),
		)
		assert.ErrorIs(t, err, common.ErrDataTruncated)
	}
}
