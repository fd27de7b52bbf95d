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
	"sort"
	"strings"
	"time"
)

// Registry holds the chain and transaction-type metadata that the codecs
// resolve references against. It is populated once, either from built-in
// constants or from a node's getConstants response, and is read-only
// afterward; to point at a different network, build a new Registry and swap
// the reference.
type Registry struct {
	chains           map[uint32]Chain
	chainNames       map[string]Chain
	txTypes          map[int32]TransactionType
	attachmentCodecs map[int32]AttachmentCodec
	appendixCodecs   []AppendixCodec
	votingModels     map[int8]string
	votingModelIds   map[string]int8
	holdingTypes     map[uint8]string
	minBalanceModels map[uint8]string
	hashAlgorithms   map[uint8]string
	accountPrefix    string
	epoch            time.Time
}

func NewRegistry() *Registry {
	return &Registry{
		chains:           map[uint32]Chain{},
		chainNames:       map[string]Chain{},
		txTypes:          map[int32]TransactionType{},
		attachmentCodecs: map[int32]AttachmentCodec{},
		votingModels:     map[int8]string{},
		votingModelIds:   map[string]int8{},
		holdingTypes:     map[uint8]string{},
		minBalanceModels: map[uint8]string{},
		hashAlgorithms:   map[uint8]string{},
	}
}

// AddChain registers a chain
func (reg *Registry) AddChain(chain Chain) {
	reg.chains[chain.Id] = chain
	reg.chainNames[strings.ToUpper(chain.Name)] = chain
}

// AddTransactionType registers a transaction type descriptor
func (reg *Registry) AddTransactionType(txType TransactionType) {
	reg.txTypes[txType.Key()] = txType
}

// BindAttachment registers the attachment codec for a (type, subtype) pair
func (reg *Registry) BindAttachment(
	txType int8,
	subtype uint8,
	codec AttachmentCodec,
) {
	reg.attachmentCodecs[TypeKey(txType, subtype)] = codec
}

// AddAppendix registers an appendix codec. Codecs are kept sorted by flag so
// that appendices are always visited in ascending flag order.
func (reg *Registry) AddAppendix(codec AppendixCodec) {
	reg.appendixCodecs = append(reg.appendixCodecs, codec)
	sort.Slice(reg.appendixCodecs, func(i, j int) bool {
		return reg.appendixCodecs[i].Flag < reg.appendixCodecs[j].Flag
	})
}

// AddVotingModel registers a phasing voting model
func (reg *Registry) AddVotingModel(id int8, name string) {
	reg.votingModels[id] = name
	reg.votingModelIds[name] = id
}

// AddHoldingType registers a holding type name
func (reg *Registry) AddHoldingType(id uint8, name string) {
	reg.holdingTypes[id] = name
}

// AddMinBalanceModel registers a minimum balance model name
func (reg *Registry) AddMinBalanceModel(id uint8, name string) {
	reg.minBalanceModels[id] = name
}

// AddHashAlgorithm registers a phasing hash algorithm name
func (reg *Registry) AddHashAlgorithm(id uint8, name string) {
	reg.hashAlgorithms[id] = name
}

// SetAccountPrefix sets the Reed-Solomon account address prefix
func (reg *Registry) SetAccountPrefix(prefix string) {
	reg.accountPrefix = prefix
}

// SetEpoch sets the zero point for chain timestamps
func (reg *Registry) SetEpoch(epoch time.Time) {
	reg.epoch = epoch
}

// Chain looks up a chain by identifier
func (reg *Registry) Chain(id uint32) (Chain, bool) {
	chain, ok := reg.chains[id]
	return chain, ok
}

// ChainByName looks up a chain by name, ignoring case
func (reg *Registry) ChainByName(name string) (Chain, bool) {
	chain, ok := reg.chainNames[strings.ToUpper(name)]
	return chain, ok
}

// MustChain looks up a chain referenced inside a transaction or attachment.
// Such references are structurally required, so an unknown identifier is an
// UnknownChainError.
func (reg *Registry) MustChain(id uint32) (Chain, error) {
	chain, ok := reg.chains[id]
	if !ok {
		return Chain{}, UnknownChainError{Id: id}
	}
	return chain, nil
}

// Chains returns all registered chains ordered by identifier
func (reg *Registry) Chains() []Chain {
	chains := make([]Chain, 0, len(reg.chains))
	for _, chain := range reg.chains {
		chains = append(chains, chain)
	}
	sort.Slice(chains, func(i, j int) bool {
		return chains[i].Id < chains[j].Id
	})
	return chains
}

// TransactionType looks up a transaction type descriptor. An unknown
// (type, subtype) pair is not an error: the enclosing transaction decodes
// with an absent attachment so that unsupported future transaction kinds do
// not block parsing of the envelope.
func (reg *Registry) TransactionType(
	txType int8,
	subtype uint8,
) (TransactionType, bool) {
	tt, ok := reg.txTypes[TypeKey(txType, subtype)]
	return tt, ok
}

// AttachmentCodec looks up the attachment codec for a (type, subtype) pair
func (reg *Registry) AttachmentCodec(
	txType int8,
	subtype uint8,
) (AttachmentCodec, bool) {
	codec, ok := reg.attachmentCodecs[TypeKey(txType, subtype)]
	return codec, ok
}

// AppendixCodecs returns the appendix codecs in ascending flag order
func (reg *Registry) AppendixCodecs() []AppendixCodec {
	return reg.appendixCodecs
}

// AppendixCodec looks up the appendix codec for a flag value
func (reg *Registry) AppendixCodec(flag uint32) (AppendixCodec, bool) {
	for _, codec := range reg.appendixCodecs {
		if codec.Flag == flag {
			return codec, true
		}
	}
	return AppendixCodec{}, false
}

// VotingModelName returns the name for a voting model identifier
func (reg *Registry) VotingModelName(id int8) string {
	return reg.votingModels[id]
}

// VotingModelId returns the identifier for a voting model name
func (reg *Registry) VotingModelId(name string) (int8, bool) {
	id, ok := reg.votingModelIds[name]
	return id, ok
}

// HoldingTypeName returns the name for a holding type identifier
func (reg *Registry) HoldingTypeName(id uint8) string {
	return reg.holdingTypes[id]
}

// MinBalanceModelName returns the name for a minimum balance model identifier
func (reg *Registry) MinBalanceModelName(id uint8) string {
	return reg.minBalanceModels[id]
}

// HashAlgorithmName returns the name for a phasing hash algorithm identifier
func (reg *Registry) HashAlgorithmName(id uint8) string {
	return reg.hashAlgorithms[id]
}

// AccountPrefix returns the Reed-Solomon account address prefix
func (reg *Registry) AccountPrefix() string {
	return reg.accountPrefix
}

// Epoch returns the zero point for chain timestamps
func (reg *Registry) Epoch() time.Time {
	return reg.epoch
}

// TimeFromTimestamp converts a chain timestamp (seconds since the chain
// epoch) to wall-clock time
func (reg *Registry) TimeFromTimestamp(timestamp int32) time.Time {
	return reg.epoch.Add(time.Duration(timestamp) * time.Second)
}

// TimestampForTime converts wall-clock time to a chain timestamp
func (reg *Registry) TimestampForTime(t time.Time) int32 {
	return int32(t.Sub(reg.epoch) / time.Second) //nolint:gosec
}
