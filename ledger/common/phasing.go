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
	"fmt"
	"strings"

	"github.com/blinklabs-io/gardor/json"
)

// PhasingParams describes the approval conditions for a phased transaction.
// The same parameter block is used by the phasing appendix and by the
// account phasing control attachment.
type PhasingParams struct {
	VotingModel     int8
	Quorum          int64
	MinBalance      int64
	Whitelist       []uint64
	Holding         uint64
	MinBalanceModel uint8
}

// PhasingParamsFromBytes reads phasing parameters from a binary cursor
func PhasingParamsFromBytes(r *Reader) (PhasingParams, error) {
	var p PhasingParams
	p.VotingModel = r.Int8()
	p.Quorum = r.Int64()
	p.MinBalance = r.Int64()
	count := int(r.Uint8())
	for i := 0; i < count; i++ {
		p.Whitelist = append(p.Whitelist, r.Uint64())
	}
	p.Holding = r.Uint64()
	p.MinBalanceModel = r.Uint8()
	return p, r.Err()
}

// PhasingParamsFromJson reads phasing parameters from their JSON form
func PhasingParamsFromJson(obj json.Object) (PhasingParams, error) {
	whitelist, err := obj.IdList("phasingWhitelist")
	if err != nil {
		return PhasingParams{}, err
	}
	holding, err := obj.Id("phasingHolding")
	if err != nil {
		return PhasingParams{}, err
	}
	return PhasingParams{
		VotingModel:     obj.Int8("phasingVotingModel"),
		Quorum:          obj.Int64("phasingQuorum"),
		MinBalance:      obj.Int64("phasingMinBalance"),
		Whitelist:       whitelist,
		Holding:         holding,
		MinBalanceModel: obj.Uint8("phasingMinBalanceModel"),
	}, nil
}

// WriteBytes appends the binary encoding of the phasing parameters
func (p PhasingParams) WriteBytes(w *Writer) {
	w.Int8(p.VotingModel)
	w.Int64(p.Quorum)
	w.Int64(p.MinBalance)
	w.Uint8(uint8(len(p.Whitelist))) //nolint:gosec
	for _, account := range p.Whitelist {
		w.Uint64(account)
	}
	w.Uint64(p.Holding)
	w.Uint8(p.MinBalanceModel)
}

// Json folds the phasing parameter fields into obj
func (p PhasingParams) Json(obj json.Object) {
	obj["phasingVotingModel"] = int64(p.VotingModel)
	obj["phasingQuorum"] = p.Quorum
	obj["phasingMinBalance"] = p.MinBalance
	whitelist := make([]string, 0, len(p.Whitelist))
	for _, account := range p.Whitelist {
		whitelist = append(whitelist, IdToString(account))
	}
	obj["phasingWhitelist"] = whitelist
	obj["phasingHolding"] = IdToString(p.Holding)
	obj["phasingMinBalanceModel"] = int64(p.MinBalanceModel)
}

// Describe renders the phasing parameters using the registry's model names
func (p PhasingParams) Describe(reg *Registry) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "  Voting Model:  %s\n", reg.VotingModelName(p.VotingModel))
	fmt.Fprintf(&sb, "  Quorum:  %d\n", p.Quorum)
	if p.MinBalance != 0 {
		fmt.Fprintf(
			&sb,
			"  Minimum Balance Model:  %s\n",
			reg.MinBalanceModelName(p.MinBalanceModel),
		)
		if chain, ok := reg.Chain(uint32(p.Holding)); ok && //nolint:gosec
			reg.MinBalanceModelName(p.MinBalanceModel) == "COIN" {
			fmt.Fprintf(&sb, "  Chain:  %s\n", chain.Name)
			fmt.Fprintf(
				&sb,
				"  Minimum Balance:  %s\n",
				chain.FormatAmount(p.MinBalance),
			)
		} else if p.Holding != 0 {
			fmt.Fprintf(&sb, "  Holding:  %s\n", IdToString(p.Holding))
			fmt.Fprintf(&sb, "  Minimum Balance:  %d\n", p.MinBalance)
		}
	}
	for _, account := range p.Whitelist {
		fmt.Fprintf(
			&sb,
			"  Whitelist:  %s\n",
			AccountRsId(reg.AccountPrefix(), account),
		)
	}
	return sb.String()
}
