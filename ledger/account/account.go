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

// Package account implements the account control, account info, and account
// property transaction payloads.
package account

import (
	"fmt"
	"sort"
	"strings"

	"github.com/blinklabs-io/gardor/json"
	"github.com/blinklabs-io/gardor/ledger/common"
)

// SetPhasingOnly requires all transactions from the sender account to be
// phased with the given parameters
type SetPhasingOnly struct {
	Params      common.PhasingParams
	MaxFees     map[uint32]int64
	MinDuration uint16
	MaxDuration uint16
}

func (a *SetPhasingOnly) Name() string {
	return "SetPhasingOnly"
}

func (a *SetPhasingOnly) Version() uint8 {
	return 1
}

// maxFeeChains returns the fee chain ids in ascending order for a stable
// encoding
func (a *SetPhasingOnly) maxFeeChains() []uint32 {
	chains := make([]uint32, 0, len(a.MaxFees))
	for chainId := range a.MaxFees {
		chains = append(chains, chainId)
	}
	sort.Slice(chains, func(i, j int) bool {
		return chains[i] < chains[j]
	})
	return chains
}

func (a *SetPhasingOnly) WriteBytes(w *common.Writer) {
	w.Uint8(a.Version())
	a.Params.WriteBytes(w)
	w.Uint8(uint8(len(a.MaxFees))) //nolint:gosec
	for _, chainId := range a.maxFeeChains() {
		w.Uint32(chainId)
		w.Int64(a.MaxFees[chainId])
	}
	w.Uint16(a.MinDuration)
	w.Uint16(a.MaxDuration)
}

func (a *SetPhasingOnly) Json() json.Object {
	params := json.Object{}
	a.Params.Json(params)
	maxFees := json.Object{}
	for chainId, fee := range a.MaxFees {
		maxFees[fmt.Sprintf("%d", chainId)] = fee
	}
	return json.Object{
		"version.SetPhasingOnly": int64(a.Version()),
		"phasingControlParams":   params,
		"controlMaxFees":         maxFees,
		"controlMinDuration":     int64(a.MinDuration),
		"controlMaxDuration":     int64(a.MaxDuration),
	}
}

func (a *SetPhasingOnly) Describe(reg *common.Registry) string {
	var sb strings.Builder
	sb.WriteString(a.Params.Describe(reg))
	for _, chainId := range a.maxFeeChains() {
		if chain, ok := reg.Chain(chainId); ok {
			fmt.Fprintf(
				&sb,
				"  %s:  %s\n",
				chain.Name,
				chain.FormatAmount(a.MaxFees[chainId]),
			)
		}
	}
	fmt.Fprintf(&sb, "  Minimum Duration:  %d\n", a.MinDuration)
	fmt.Fprintf(&sb, "  Maximum Duration:  %d\n", a.MaxDuration)
	return sb.String()
}

// AccountInfo sets the name and description of the sender account
type AccountInfo struct {
	AccountName string
	Description string
}

func (a *AccountInfo) Name() string {
	return "AccountInfo"
}

func (a *AccountInfo) Version() uint8 {
	return 1
}

func (a *AccountInfo) WriteBytes(w *common.Writer) {
	w.Uint8(a.Version())
	w.String8(a.AccountName)
	w.String16(a.Description)
}

func (a *AccountInfo) Json() json.Object {
	return json.Object{
		"version.AccountInfo": int64(a.Version()),
		"name":                a.AccountName,
		"description":         a.Description,
	}
}

func (a *AccountInfo) Describe(reg *common.Registry) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "  Name:  %s\n", a.AccountName)
	fmt.Fprintf(&sb, "  Description:  %s\n", a.Description)
	return sb.String()
}

// AccountPropertySet sets a property on the recipient account
type AccountPropertySet struct {
	Property string
	Value    string
}

func (a *AccountPropertySet) Name() string {
	return "AccountPropertySet"
}

func (a *AccountPropertySet) Version() uint8 {
	return 1
}

func (a *AccountPropertySet) WriteBytes(w *common.Writer) {
	w.Uint8(a.Version())
	w.String8(a.Property)
	w.String8(a.Value)
}

func (a *AccountPropertySet) Json() json.Object {
	return json.Object{
		"version.AccountPropertySet": int64(a.Version()),
		"property":                   a.Property,
		"value":                      a.Value,
	}
}

func (a *AccountPropertySet) Describe(reg *common.Registry) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "  Property:  %s\n", a.Property)
	fmt.Fprintf(&sb, "  Value:  %s\n", a.Value)
	return sb.String()
}

// AccountPropertyDelete deletes an account property by identifier
type AccountPropertyDelete struct {
	Property uint64
}

func (a *AccountPropertyDelete) Name() string {
	return "AccountPropertyDelete"
}

func (a *AccountPropertyDelete) Version() uint8 {
	return 1
}

func (a *AccountPropertyDelete) WriteBytes(w *common.Writer) {
	w.Uint8(a.Version())
	w.Uint64(a.Property)
}

func (a *AccountPropertyDelete) Json() json.Object {
	return json.Object{
		"version.AccountPropertyDelete": int64(a.Version()),
		"property":                      common.IdToString(a.Property),
	}
}

func (a *AccountPropertyDelete) Describe(reg *common.Registry) string {
	return fmt.Sprintf("  Property:  %s\n", common.IdToString(a.Property))
}

// EffectiveBalanceLeasing leases the sender's forging power to the recipient
// for a number of blocks
type EffectiveBalanceLeasing struct {
	Period uint16
}

func (a *EffectiveBalanceLeasing) Name() string {
	return "EffectiveBalanceLeasing"
}

func (a *EffectiveBalanceLeasing) Version() uint8 {
	return 1
}

func (a *EffectiveBalanceLeasing) WriteBytes(w *common.Writer) {
	w.Uint8(a.Version())
	w.Uint16(a.Period)
}

func (a *EffectiveBalanceLeasing) Json() json.Object {
	return json.Object{
		"version.EffectiveBalanceLeasing": int64(a.Version()),
		"period":                          int64(a.Period),
	}
}

func (a *EffectiveBalanceLeasing) Describe(reg *common.Registry) string {
	return fmt.Sprintf("  Period:  %d\n", a.Period)
}
