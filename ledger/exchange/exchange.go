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

// Package exchange implements the coin exchange transaction payloads, used
// both on the child chains and on the parent chain.
package exchange

import (
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/blinklabs-io/gardor/json"
	"github.com/blinklabs-io/gardor/ledger/common"
)

// ExchangeOrderIssue places an order to exchange coins of one chain for
// coins of another. Both chain references must be defined in the registry.
type ExchangeOrderIssue struct {
	Chain         common.Chain
	ExchangeChain common.Chain
	Quantity      int64
	Price         int64
}

func (a *ExchangeOrderIssue) Name() string {
	return "ExchangeOrderIssue"
}

func (a *ExchangeOrderIssue) Version() uint8 {
	return 1
}

func (a *ExchangeOrderIssue) WriteBytes(w *common.Writer) {
	w.Uint8(a.Version())
	w.Uint32(a.Chain.Id)
	w.Uint32(a.ExchangeChain.Id)
	w.Int64(a.Quantity)
	w.Int64(a.Price)
}

func (a *ExchangeOrderIssue) Json() json.Object {
	return json.Object{
		"version.ExchangeOrderIssue": int64(a.Version()),
		"chain":                      int64(a.Chain.Id),
		"exchangeChain":              int64(a.ExchangeChain.Id),
		"quantityQNT":                a.Quantity,
		"priceNQT":                   a.Price,
	}
}

func (a *ExchangeOrderIssue) Describe(reg *common.Registry) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "  Chain:  %s\n", a.Chain.Name)
	fmt.Fprintf(&sb, "  Exchange Chain:  %s\n", a.ExchangeChain.Name)
	fmt.Fprintf(
		&sb,
		"  Quantity:  %s\n",
		a.ExchangeChain.FormatAmount(a.Quantity),
	)
	fmt.Fprintf(&sb, "  Price:  %s\n", a.Chain.FormatAmount(a.Price))
	return sb.String()
}

// ExchangeOrderCancel cancels a coin exchange order, referencing it by the
// full hash of the order transaction
type ExchangeOrderCancel struct {
	OrderHash []byte
}

func (a *ExchangeOrderCancel) Name() string {
	return "ExchangeOrderCancel"
}

func (a *ExchangeOrderCancel) Version() uint8 {
	return 1
}

// OrderId returns the order identifier derived from the order hash
func (a *ExchangeOrderCancel) OrderId() uint64 {
	return common.FullHashToId(a.OrderHash)
}

func (a *ExchangeOrderCancel) WriteBytes(w *common.Writer) {
	w.Uint8(a.Version())
	w.Bytes(a.OrderHash)
}

func (a *ExchangeOrderCancel) Json() json.Object {
	return json.Object{
		"version.ExchangeOrderCancel": int64(a.Version()),
		"orderHash":                   hex.EncodeToString(a.OrderHash),
		"order":                       common.IdToString(a.OrderId()),
	}
}

func (a *ExchangeOrderCancel) Describe(reg *common.Registry) string {
	return fmt.Sprintf("  Order:  %s\n", common.IdToString(a.OrderId()))
}

var ExchangeOrderIssueCodec = common.AttachmentCodec{
	FromBytes: func(reg *common.Registry, r *common.Reader) (common.Attachment, error) {
		if err := common.ReadAttachmentVersion(r); err != nil {
			return nil, err
		}
		chainId := r.Uint32()
		exchangeChainId := r.Uint32()
		quantity := r.Int64()
		price := r.Int64()
		if err := r.Err(); err != nil {
			return nil, err
		}
		chain, err := reg.MustChain(chainId)
		if err != nil {
			return nil, err
		}
		exchangeChain, err := reg.MustChain(exchangeChainId)
		if err != nil {
			return nil, err
		}
		return &ExchangeOrderIssue{
			Chain:         chain,
			ExchangeChain: exchangeChain,
			Quantity:      quantity,
			Price:         price,
		}, nil
	},
	FromJson: func(reg *common.Registry, obj json.Object) (common.Attachment, error) {
		chain, err := reg.MustChain(uint32(obj.Int64("chain"))) //nolint:gosec
		if err != nil {
			return nil, err
		}
		exchangeChain, err := reg.MustChain(
			uint32(obj.Int64("exchangeChain")), //nolint:gosec
		)
		if err != nil {
			return nil, err
		}
		return &ExchangeOrderIssue{
			Chain:         chain,
			ExchangeChain: exchangeChain,
			Quantity:      obj.Int64("quantityQNT"),
			Price:         obj.Int64("priceNQT"),
		}, nil
	},
}

var ExchangeOrderCancelCodec = common.AttachmentCodec{
	FromBytes: func(reg *common.Registry, r *common.Reader) (common.Attachment, error) {
		if err := common.ReadAttachmentVersion(r); err != nil {
			return nil, err
		}
		a := &ExchangeOrderCancel{
			OrderHash: r.Bytes(common.FullHashLen),
		}
		return a, r.Err()
	},
	FromJson: func(reg *common.Registry, obj json.Object) (common.Attachment, error) {
		orderHash, err := obj.HexBytes("orderHash")
		if err != nil {
			return nil, err
		}
		return &ExchangeOrderCancel{OrderHash: orderHash}, nil
	},
}
