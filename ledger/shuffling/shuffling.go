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

// Package shuffling implements the coin shuffling transaction payloads.
package shuffling

import (
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/blinklabs-io/gardor/crypto"
	"github.com/blinklabs-io/gardor/json"
	"github.com/blinklabs-io/gardor/ledger/common"
)

// ShufflingCreation starts a new shuffle for a holding
type ShufflingCreation struct {
	Holding            uint64
	HoldingType        uint8
	Amount             int64
	ParticipantCount   uint8
	RegistrationPeriod uint16
}

func (a *ShufflingCreation) Name() string {
	return "ShufflingCreation"
}

func (a *ShufflingCreation) Version() uint8 {
	return 1
}

func (a *ShufflingCreation) WriteBytes(w *common.Writer) {
	w.Uint8(a.Version())
	w.Uint64(a.Holding)
	w.Uint8(a.HoldingType)
	w.Int64(a.Amount)
	w.Uint8(a.ParticipantCount)
	w.Uint16(a.RegistrationPeriod)
}

func (a *ShufflingCreation) Json() json.Object {
	return json.Object{
		"version.ShufflingCreation": int64(a.Version()),
		"holding":                   common.IdToString(a.Holding),
		"holdingType":               int64(a.HoldingType),
		"amount":                    a.Amount,
		"participantCount":          int64(a.ParticipantCount),
		"registrationPeriod":        int64(a.RegistrationPeriod),
	}
}

func (a *ShufflingCreation) Describe(reg *common.Registry) string {
	var sb strings.Builder
	fmt.Fprintf(
		&sb,
		"  Holding Type:  %s\n",
		reg.HoldingTypeName(a.HoldingType),
	)
	if chain, ok := reg.Chain(uint32(a.Holding)); ok && //nolint:gosec
		reg.HoldingTypeName(a.HoldingType) == "COIN" {
		fmt.Fprintf(&sb, "  Chain:  %s\n", chain.Name)
		fmt.Fprintf(&sb, "  Amount:  %s\n", chain.FormatAmount(a.Amount))
	} else {
		fmt.Fprintf(&sb, "  Holding:  %s\n", common.IdToString(a.Holding))
		fmt.Fprintf(&sb, "  Amount:  %d\n", a.Amount)
	}
	fmt.Fprintf(&sb, "  Participant Count:  %d\n", a.ParticipantCount)
	fmt.Fprintf(&sb, "  Registration Period:  %d\n", a.RegistrationPeriod)
	return sb.String()
}

// ShufflingRegistration registers the sender for a shuffle
type ShufflingRegistration struct {
	ShufflingFullHash []byte
}

func (a *ShufflingRegistration) Name() string {
	return "ShufflingRegistration"
}

func (a *ShufflingRegistration) Version() uint8 {
	return 1
}

func (a *ShufflingRegistration) WriteBytes(w *common.Writer) {
	w.Uint8(a.Version())
	w.Bytes(a.ShufflingFullHash)
}

func (a *ShufflingRegistration) Json() json.Object {
	return json.Object{
		"version.ShufflingRegistration": int64(a.Version()),
		"shufflingFullHash":             hex.EncodeToString(a.ShufflingFullHash),
	}
}

func (a *ShufflingRegistration) Describe(reg *common.Registry) string {
	return fmt.Sprintf(
		"  Shuffling Hash:  %s\n",
		hex.EncodeToString(a.ShufflingFullHash),
	)
}

// ShufflingBase carries the shuffle reference shared by the processing,
// recipients, verification, and cancellation payloads
type ShufflingBase struct {
	ShufflingFullHash  []byte
	ShufflingStateHash []byte
}

func (a *ShufflingBase) writeBase(w *common.Writer) {
	w.Bytes(a.ShufflingFullHash)
	w.Bytes(a.ShufflingStateHash)
}

func (a *ShufflingBase) baseJson(obj json.Object) {
	obj["shufflingFullHash"] = hex.EncodeToString(a.ShufflingFullHash)
	obj["shufflingStateHash"] = hex.EncodeToString(a.ShufflingStateHash)
}

func (a *ShufflingBase) describeBase(sb *strings.Builder) {
	fmt.Fprintf(
		sb,
		"  Shuffling Full Hash:  %s\n",
		hex.EncodeToString(a.ShufflingFullHash),
	)
	fmt.Fprintf(
		sb,
		"  Shuffling State Hash:  %s\n",
		hex.EncodeToString(a.ShufflingStateHash),
	)
}

// ShufflingProcessing submits the sender's processing step. The encrypted
// data items are prunable; only their hash remains once pruned.
type ShufflingProcessing struct {
	ShufflingBase
	Data [][]byte

	hash []byte
}

func (a *ShufflingProcessing) Name() string {
	return "ShufflingProcessing"
}

func (a *ShufflingProcessing) Version() uint8 {
	return 1
}

// Pruned indicates whether the processing data has been pruned
func (a *ShufflingProcessing) Pruned() bool {
	return a.Data == nil
}

// DataHash returns the hash of the processing data, computing it from the
// data items when they are present
func (a *ShufflingProcessing) DataHash() []byte {
	if a.hash != nil {
		return a.hash
	}
	return crypto.Sha256(a.Data...)
}

func (a *ShufflingProcessing) WriteBytes(w *common.Writer) {
	w.Uint8(a.Version())
	a.writeBase(w)
	if a.Pruned() {
		w.Uint8(0)
		w.Bytes(a.DataHash())
		return
	}
	w.Uint8(1)
	w.Uint8(uint8(len(a.Data))) //nolint:gosec
	for _, item := range a.Data {
		w.Uint16(uint16(len(item))) //nolint:gosec
		w.Bytes(item)
	}
}

func (a *ShufflingProcessing) Json() json.Object {
	obj := json.Object{
		"version.ShufflingProcessing": int64(a.Version()),
	}
	a.baseJson(obj)
	if a.Pruned() {
		obj["hash"] = hex.EncodeToString(a.DataHash())
		return obj
	}
	items := make([]string, 0, len(a.Data))
	for _, item := range a.Data {
		items = append(items, hex.EncodeToString(item))
	}
	obj["data"] = items
	return obj
}

func (a *ShufflingProcessing) Describe(reg *common.Registry) string {
	var sb strings.Builder
	a.describeBase(&sb)
	fmt.Fprintf(
		&sb,
		"  Processing Data Hash:  %s\n",
		hex.EncodeToString(a.DataHash()),
	)
	return sb.String()
}

// ShufflingRecipients announces the recipient accounts of a shuffle
type ShufflingRecipients struct {
	ShufflingBase
	RecipientPublicKeys [][]byte
}

func (a *ShufflingRecipients) Name() string {
	return "ShufflingRecipients"
}

func (a *ShufflingRecipients) Version() uint8 {
	return 1
}

func (a *ShufflingRecipients) WriteBytes(w *common.Writer) {
	w.Uint8(a.Version())
	a.writeBase(w)
	w.Uint8(uint8(len(a.RecipientPublicKeys))) //nolint:gosec
	for _, key := range a.RecipientPublicKeys {
		w.Bytes(key)
	}
}

func (a *ShufflingRecipients) Json() json.Object {
	obj := json.Object{
		"version.ShufflingRecipients": int64(a.Version()),
	}
	a.baseJson(obj)
	keys := make([]string, 0, len(a.RecipientPublicKeys))
	for _, key := range a.RecipientPublicKeys {
		keys = append(keys, hex.EncodeToString(key))
	}
	obj["recipientPublicKeys"] = keys
	return obj
}

func (a *ShufflingRecipients) Describe(reg *common.Registry) string {
	var sb strings.Builder
	a.describeBase(&sb)
	for _, key := range a.RecipientPublicKeys {
		fmt.Fprintf(
			&sb,
			"  Recipient Public Key:  %s\n",
			hex.EncodeToString(key),
		)
	}
	return sb.String()
}

// ShufflingVerification confirms the announced recipients
type ShufflingVerification struct {
	ShufflingBase
}

func (a *ShufflingVerification) Name() string {
	return "ShufflingVerification"
}

func (a *ShufflingVerification) Version() uint8 {
	return 1
}

func (a *ShufflingVerification) WriteBytes(w *common.Writer) {
	w.Uint8(a.Version())
	a.writeBase(w)
}

func (a *ShufflingVerification) Json() json.Object {
	obj := json.Object{
		"version.ShufflingVerification": int64(a.Version()),
	}
	a.baseJson(obj)
	return obj
}

func (a *ShufflingVerification) Describe(reg *common.Registry) string {
	var sb strings.Builder
	a.describeBase(&sb)
	return sb.String()
}

// ShufflingCancellation cancels a shuffle and assigns blame
type ShufflingCancellation struct {
	ShufflingBase
	BlameData         [][]byte
	KeySeeds          [][]byte
	CancellingAccount uint64
}

func (a *ShufflingCancellation) Name() string {
	return "ShufflingCancellation"
}

func (a *ShufflingCancellation) Version() uint8 {
	return 1
}

func (a *ShufflingCancellation) WriteBytes(w *common.Writer) {
	w.Uint8(a.Version())
	a.writeBase(w)
	w.Uint8(uint8(len(a.BlameData))) //nolint:gosec
	for _, item := range a.BlameData {
		w.Int32(int32(len(item))) //nolint:gosec
		w.Bytes(item)
	}
	w.Uint8(uint8(len(a.KeySeeds))) //nolint:gosec
	for _, seed := range a.KeySeeds {
		w.Bytes(seed)
	}
	w.Uint64(a.CancellingAccount)
}

func (a *ShufflingCancellation) Json() json.Object {
	obj := json.Object{
		"version.ShufflingCancellation": int64(a.Version()),
	}
	a.baseJson(obj)
	blame := make([]string, 0, len(a.BlameData))
	for _, item := range a.BlameData {
		blame = append(blame, hex.EncodeToString(item))
	}
	obj["blameData"] = blame
	seeds := make([]string, 0, len(a.KeySeeds))
	for _, seed := range a.KeySeeds {
		seeds = append(seeds, hex.EncodeToString(seed))
	}
	obj["keySeeds"] = seeds
	obj["cancellingAccount"] = common.IdToString(a.CancellingAccount)
	return obj
}

func (a *ShufflingCancellation) Describe(reg *common.Registry) string {
	var sb strings.Builder
	a.describeBase(&sb)
	fmt.Fprintf(
		&sb,
		"  Cancelling Account:  %s\n",
		common.AccountRsId(reg.AccountPrefix(), a.CancellingAccount),
	)
	return sb.String()
}
