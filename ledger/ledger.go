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

// Package ledger implements the transaction codec for the Ardor multi-chain
// platform: transactions decode from wire bytes or node JSON into typed
// values and re-encode to the same canonical form. All chain and
// transaction-type lookups go through an explicit Registry, built either
// from the standard Ardor constants or from a node's getConstants response.
package ledger

import (
	"sort"
	"strconv"
	"time"

	"github.com/blinklabs-io/gardor/json"
	"github.com/blinklabs-io/gardor/ledger/account"
	"github.com/blinklabs-io/gardor/ledger/alias"
	"github.com/blinklabs-io/gardor/ledger/appendix"
	"github.com/blinklabs-io/gardor/ledger/asset"
	"github.com/blinklabs-io/gardor/ledger/common"
	"github.com/blinklabs-io/gardor/ledger/data"
	"github.com/blinklabs-io/gardor/ledger/dgs"
	"github.com/blinklabs-io/gardor/ledger/exchange"
	"github.com/blinklabs-io/gardor/ledger/messaging"
	"github.com/blinklabs-io/gardor/ledger/ms"
	"github.com/blinklabs-io/gardor/ledger/payment"
	"github.com/blinklabs-io/gardor/ledger/shuffling"
	"github.com/blinklabs-io/gardor/ledger/voting"
)

// builtinType binds a (type, subtype) pair to its name and attachment
// codec. ChildChainBlock has no codec: its transactions decode with an
// absent attachment.
type builtinType struct {
	txType  int8
	subtype uint8
	name    string
	codec   *common.AttachmentCodec
}

var builtinTypes = []builtinType{
	{0, 0, "OrdinaryPayment", &payment.OrdinaryPaymentCodec},
	{1, 0, "ArbitraryMessage", &messaging.ArbitraryMessageCodec},
	{2, 0, "AssetIssuance", &asset.AssetIssuanceCodec},
	{2, 1, "AssetTransfer", &asset.AssetTransferCodec},
	{2, 2, "AskOrderPlacement", &asset.AskOrderPlacementCodec},
	{2, 3, "BidOrderPlacement", &asset.BidOrderPlacementCodec},
	{2, 4, "AskOrderCancellation", &asset.AskOrderCancellationCodec},
	{2, 5, "BidOrderCancellation", &asset.BidOrderCancellationCodec},
	{2, 6, "DividendPayment", &asset.DividendPaymentCodec},
	{2, 7, "AssetDelete", &asset.AssetDeleteCodec},
	{3, 0, "DigitalGoodsListing", &dgs.DigitalGoodsListingCodec},
	{3, 1, "DigitalGoodsDelisting", &dgs.DigitalGoodsDelistingCodec},
	{3, 2, "DigitalGoodsPriceChange", &dgs.DigitalGoodsPriceChangeCodec},
	{3, 3, "DigitalGoodsQuantityChange", &dgs.DigitalGoodsQuantityChangeCodec},
	{3, 4, "DigitalGoodsPurchase", &dgs.DigitalGoodsPurchaseCodec},
	{3, 5, "DigitalGoodsDelivery", &dgs.DigitalGoodsDeliveryCodec},
	{3, 6, "DigitalGoodsFeedback", &dgs.DigitalGoodsFeedbackCodec},
	{3, 7, "DigitalGoodsRefund", &dgs.DigitalGoodsRefundCodec},
	{4, 0, "SetPhasingOnly", &account.SetPhasingOnlyCodec},
	{5, 0, "CurrencyIssuance", &ms.CurrencyIssuanceCodec},
	{5, 1, "ReserveIncrease", &ms.ReserveIncreaseCodec},
	{5, 2, "ReserveClaim", &ms.ReserveClaimCodec},
	{5, 3, "CurrencyTransfer", &ms.CurrencyTransferCodec},
	{5, 4, "PublishExchangeOffer", &ms.PublishExchangeOfferCodec},
	{5, 5, "ExchangeBuy", &ms.ExchangeBuyCodec},
	{5, 6, "ExchangeSell", &ms.ExchangeSellCodec},
	{5, 7, "CurrencyMinting", &ms.CurrencyMintingCodec},
	{5, 8, "CurrencyDeletion", &ms.CurrencyDeletionCodec},
	{6, 0, "TaggedDataUpload", &data.TaggedDataUploadCodec},
	{7, 0, "ShufflingCreation", &shuffling.ShufflingCreationCodec},
	{7, 1, "ShufflingRegistration", &shuffling.ShufflingRegistrationCodec},
	{7, 2, "ShufflingProcessing", &shuffling.ShufflingProcessingCodec},
	{7, 3, "ShufflingRecipients", &shuffling.ShufflingRecipientsCodec},
	{7, 4, "ShufflingVerification", &shuffling.ShufflingVerificationCodec},
	{7, 5, "ShufflingCancellation", &shuffling.ShufflingCancellationCodec},
	{8, 0, "AliasAssignment", &alias.AliasAssignmentCodec},
	{8, 1, "AliasSell", &alias.AliasSellCodec},
	{8, 2, "AliasBuy", &alias.AliasBuyCodec},
	{8, 3, "AliasDelete", &alias.AliasDeleteCodec},
	{9, 0, "PollCreation", &voting.PollCreationCodec},
	{9, 1, "VoteCasting", &voting.VoteCastingCodec},
	{9, 2, "PhasingVoteCasting", &voting.PhasingVoteCastingCodec},
	{10, 0, "AccountInfo", &account.AccountInfoCodec},
	{10, 1, "AccountPropertySet", &account.AccountPropertySetCodec},
	{10, 2, "AccountPropertyDelete", &account.AccountPropertyDeleteCodec},
	{11, 0, "ExchangeOrderIssue", &exchange.ExchangeOrderIssueCodec},
	{11, 1, "ExchangeOrderCancel", &exchange.ExchangeOrderCancelCodec},
	{-1, 0, "ChildChainBlock", nil},
	{-2, 0, "FxtPayment", &payment.FxtPaymentCodec},
	{-3, 0, "EffectiveBalanceLeasing", &account.EffectiveBalanceLeasingCodec},
	{-4, 0, "ExchangeOrderIssue", &exchange.ExchangeOrderIssueCodec},
	{-4, 1, "ExchangeOrderCancel", &exchange.ExchangeOrderCancelCodec},
}

// NewRegistry returns a registry with the built-in transaction types and
// attachment and appendix codecs bound, but no chains or platform
// constants. Most callers want Ardor or FromConstants instead.
func NewRegistry() *common.Registry {
	reg := common.NewRegistry()
	for _, bt := range builtinTypes {
		reg.AddTransactionType(common.TransactionType{
			Type:    bt.txType,
			Subtype: bt.subtype,
			Name:    bt.name,
		})
		if bt.codec != nil {
			reg.BindAttachment(bt.txType, bt.subtype, *bt.codec)
		}
	}
	for _, codec := range appendix.Codecs() {
		reg.AddAppendix(codec)
	}
	return reg
}

// Ardor returns a registry preloaded with the Ardor mainnet constants
func Ardor() *common.Registry {
	reg := NewRegistry()
	reg.AddChain(common.Chain{Id: 1, Name: "ARDR", Decimals: 8})
	reg.AddChain(common.Chain{Id: 2, Name: "IGNIS", Decimals: 8})
	reg.AddChain(common.Chain{Id: 3, Name: "AEUR", Decimals: 4})
	reg.AddChain(common.Chain{Id: 4, Name: "BITSWIFT", Decimals: 8})
	reg.AddVotingModel(-1, "NONE")
	reg.AddVotingModel(0, "ACCOUNT")
	reg.AddVotingModel(1, "COIN")
	reg.AddVotingModel(2, "ASSET")
	reg.AddVotingModel(3, "CURRENCY")
	reg.AddVotingModel(4, "TRANSACTION")
	reg.AddVotingModel(5, "HASH")
	reg.AddHoldingType(0, "COIN")
	reg.AddHoldingType(1, "ASSET")
	reg.AddHoldingType(2, "CURRENCY")
	reg.AddMinBalanceModel(0, "NONE")
	reg.AddMinBalanceModel(1, "COIN")
	reg.AddMinBalanceModel(2, "ASSET")
	reg.AddMinBalanceModel(3, "CURRENCY")
	reg.AddHashAlgorithm(2, "SHA256")
	reg.AddHashAlgorithm(6, "RIPEMD160")
	reg.AddHashAlgorithm(62, "RIPEMD160_SHA256")
	reg.SetAccountPrefix("ARDOR")
	reg.SetEpoch(time.Date(2018, 1, 1, 0, 0, 0, 0, time.UTC))
	return reg
}

// FromConstants builds a registry from a node's getConstants response. The
// built-in codec table supplies the attachment codecs; type names and all
// platform constants come from the response.
func FromConstants(obj json.Object) (*common.Registry, error) {
	reg := NewRegistry()
	chains := obj.Object("chainProperties")
	if len(chains) == 0 {
		chains = obj.Object("chains")
	}
	for _, key := range sortedKeys(chains) {
		props := chains.Object(key)
		id := props.Int64("id")
		if id == 0 {
			parsed, err := strconv.ParseUint(key, 10, 32)
			if err != nil {
				return nil, json.ValueError{
					Key:   "chainProperties",
					Value: key,
					Err:   err,
				}
			}
			id = int64(parsed) //nolint:gosec
		}
		reg.AddChain(common.Chain{
			Id:       uint32(id), //nolint:gosec
			Name:     props.String("name"),
			Decimals: props.Int("decimals"),
		})
	}
	txTypes := obj.Object("transactionTypes")
	for _, typeKey := range sortedKeys(txTypes) {
		txType, err := strconv.ParseInt(typeKey, 10, 8)
		if err != nil {
			return nil, json.ValueError{
				Key:   "transactionTypes",
				Value: typeKey,
				Err:   err,
			}
		}
		subtypes := txTypes.Object(typeKey).Object("subtypes")
		for _, subtypeKey := range sortedKeys(subtypes) {
			subtype, err := strconv.ParseUint(subtypeKey, 10, 8)
			if err != nil {
				return nil, json.ValueError{
					Key:   "transactionTypes",
					Value: subtypeKey,
					Err:   err,
				}
			}
			reg.AddTransactionType(common.TransactionType{
				Type:    int8(txType),
				Subtype: uint8(subtype),
				Name:    subtypes.Object(subtypeKey).String("name"),
			})
		}
	}
	for name, id := range obj.Object("votingModels") {
		reg.AddVotingModel(int8(toInt64(id)), name) //nolint:gosec
	}
	for name, id := range obj.Object("holdingTypes") {
		reg.AddHoldingType(uint8(toInt64(id)), name) //nolint:gosec
	}
	for name, id := range obj.Object("minBalanceModels") {
		reg.AddMinBalanceModel(uint8(toInt64(id)), name) //nolint:gosec
	}
	for name, id := range obj.Object("phasingHashAlgorithms") {
		reg.AddHashAlgorithm(uint8(toInt64(id)), name) //nolint:gosec
	}
	prefix := obj.String("accountPrefix")
	if prefix == "" {
		prefix = "ARDOR"
	}
	reg.SetAccountPrefix(prefix)
	// epochBeginning is milliseconds since the Unix epoch
	reg.SetEpoch(time.UnixMilli(obj.Int64("epochBeginning")).UTC())
	return reg, nil
}

func sortedKeys(obj json.Object) []string {
	keys := make([]string, 0, len(obj))
	for key := range obj {
		keys = append(keys, key)
	}
	// map iteration order is random; registration stays deterministic
	sort.Strings(keys)
	return keys
}

func toInt64(v any) int64 {
	return json.Object{"v": v}.Int64("v")
}
