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

package common

import (
	"encoding/hex"

	"github.com/blinklabs-io/gardor/json"
)

// ChainTransactionId references a transaction on a specific chain by its
// full hash. Transaction identifiers are not unique across chains, so
// references always carry the chain and the 32-byte hash.
type ChainTransactionId struct {
	Chain    Chain
	FullHash []byte
}

// NewChainTransactionId resolves the chain and builds a transaction
// reference. An unknown chain identifier is a hard error.
func NewChainTransactionId(
	reg *Registry,
	chainId uint32,
	fullHash []byte,
) (ChainTransactionId, error) {
	chain, err := reg.MustChain(chainId)
	if err != nil {
		return ChainTransactionId{}, err
	}
	return ChainTransactionId{Chain: chain, FullHash: fullHash}, nil
}

// ChainTransactionIdFromBytes reads a chain identifier and full hash from a
// binary cursor
func ChainTransactionIdFromBytes(
	reg *Registry,
	r *Reader,
) (ChainTransactionId, error) {
	chainId := r.Uint32()
	fullHash := r.Bytes(FullHashLen)
	if err := r.Err(); err != nil {
		return ChainTransactionId{}, err
	}
	return NewChainTransactionId(reg, chainId, fullHash)
}

// ChainTransactionIdFromJson reads a {chain, transactionFullHash} object
func ChainTransactionIdFromJson(
	reg *Registry,
	obj json.Object,
) (ChainTransactionId, error) {
	fullHash, err := obj.HexBytes("transactionFullHash")
	if err != nil {
		return ChainTransactionId{}, err
	}
	return NewChainTransactionId(
		reg,
		uint32(obj.Int64("chain")), //nolint:gosec
		fullHash,
	)
}

// TransactionId returns the 64-bit identifier derived from the full hash
func (c ChainTransactionId) TransactionId() uint64 {
	return FullHashToId(c.FullHash)
}

// WriteBytes appends the binary encoding of the reference
func (c ChainTransactionId) WriteBytes(w *Writer) {
	w.Uint32(c.Chain.Id)
	w.Bytes(c.FullHash)
}

// Json returns the canonical JSON form of the reference
func (c ChainTransactionId) Json() json.Object {
	return json.Object{
		"chain":               int64(c.Chain.Id),
		"transactionFullHash": hex.EncodeToString(c.FullHash),
	}
}
