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

// Package voting implements the poll and vote transaction payloads.
package voting

import (
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/blinklabs-io/gardor/json"
	"github.com/blinklabs-io/gardor/ledger/common"
)

// NoVote marks an option the voter did not vote on
const NoVote int8 = -128

// PollCreation creates a new poll
type PollCreation struct {
	PollName           string
	Description        string
	FinishHeight       int32
	Options            []string
	VotingModel        int8
	MinNumberOfOptions uint8
	MaxNumberOfOptions uint8
	MinRangeValue      int8
	MaxRangeValue      int8
	MinBalance         int64
	MinBalanceModel    uint8
	Holding            uint64
}

func (a *PollCreation) Name() string {
	return "PollCreation"
}

func (a *PollCreation) Version() uint8 {
	return 1
}

func (a *PollCreation) WriteBytes(w *common.Writer) {
	w.Uint8(a.Version())
	w.String16(a.PollName)
	w.String16(a.Description)
	w.Int32(a.FinishHeight)
	w.Uint8(uint8(len(a.Options))) //nolint:gosec
	for _, option := range a.Options {
		w.String16(option)
	}
	w.Int8(a.VotingModel)
	w.Uint8(a.MinNumberOfOptions)
	w.Uint8(a.MaxNumberOfOptions)
	w.Int8(a.MinRangeValue)
	w.Int8(a.MaxRangeValue)
	w.Int64(a.MinBalance)
	w.Uint8(a.MinBalanceModel)
	w.Uint64(a.Holding)
}

func (a *PollCreation) Json() json.Object {
	return json.Object{
		"version.PollCreation": int64(a.Version()),
		"name":                 a.PollName,
		"description":          a.Description,
		"finishHeight":         int64(a.FinishHeight),
		"options":              append([]string{}, a.Options...),
		"votingModel":          int64(a.VotingModel),
		"minNumberOfOptions":   int64(a.MinNumberOfOptions),
		"maxNumberOfOptions":   int64(a.MaxNumberOfOptions),
		"minRangeValue":        int64(a.MinRangeValue),
		"maxRangeValue":        int64(a.MaxRangeValue),
		"minBalance":           a.MinBalance,
		"minBalanceModel":      int64(a.MinBalanceModel),
		"holding":              common.IdToString(a.Holding),
	}
}

func (a *PollCreation) Describe(reg *common.Registry) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "  Name:  %s\n", a.PollName)
	fmt.Fprintf(&sb, "  Description:  %s\n", a.Description)
	fmt.Fprintf(&sb, "  Finish Height:  %d\n", a.FinishHeight)
	for _, option := range a.Options {
		fmt.Fprintf(&sb, "  Option:  %s\n", option)
	}
	fmt.Fprintf(
		&sb,
		"  Voting Model:  %s\n",
		reg.VotingModelName(a.VotingModel),
	)
	if a.MinBalance != 0 {
		fmt.Fprintf(
			&sb,
			"  Minimum Balance Model:  %s\n",
			reg.MinBalanceModelName(a.MinBalanceModel),
		)
		fmt.Fprintf(&sb, "  Minimum Balance:  %d\n", a.MinBalance)
	}
	return sb.String()
}

// VoteCasting casts votes on a poll. A vote of NoVote means the voter did
// not vote on that option.
type VoteCasting struct {
	Poll  uint64
	Votes []int8
}

func (a *VoteCasting) Name() string {
	return "VoteCasting"
}

func (a *VoteCasting) Version() uint8 {
	return 1
}

func (a *VoteCasting) WriteBytes(w *common.Writer) {
	w.Uint8(a.Version())
	w.Uint64(a.Poll)
	w.Uint8(uint8(len(a.Votes))) //nolint:gosec
	for _, vote := range a.Votes {
		w.Int8(vote)
	}
}

func (a *VoteCasting) Json() json.Object {
	votes := make([]int64, 0, len(a.Votes))
	for _, vote := range a.Votes {
		votes = append(votes, int64(vote))
	}
	return json.Object{
		"version.VoteCasting": int64(a.Version()),
		"poll":                common.IdToString(a.Poll),
		"vote":                votes,
	}
}

func (a *VoteCasting) Describe(reg *common.Registry) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "  Poll:  %s\n", common.IdToString(a.Poll))
	for i, vote := range a.Votes {
		if vote == NoVote {
			fmt.Fprintf(&sb, "  Option %d:  no vote\n", i)
		} else {
			fmt.Fprintf(&sb, "  Option %d:  %d\n", i, vote)
		}
	}
	return sb.String()
}

// PhasingVoteCasting approves phased transactions, optionally revealing the
// phasing secret
type PhasingVoteCasting struct {
	PhasedTransactions []common.ChainTransactionId
	RevealedSecret     []byte
}

func (a *PhasingVoteCasting) Name() string {
	return "PhasingVoteCasting"
}

func (a *PhasingVoteCasting) Version() uint8 {
	return 1
}

func (a *PhasingVoteCasting) WriteBytes(w *common.Writer) {
	w.Uint8(a.Version())
	w.Uint8(uint8(len(a.PhasedTransactions))) //nolint:gosec
	for _, txId := range a.PhasedTransactions {
		txId.WriteBytes(w)
	}
	w.Int32(int32(len(a.RevealedSecret))) //nolint:gosec
	w.Bytes(a.RevealedSecret)
}

func (a *PhasingVoteCasting) Json() json.Object {
	phased := make([]json.Object, 0, len(a.PhasedTransactions))
	for _, txId := range a.PhasedTransactions {
		phased = append(phased, txId.Json())
	}
	return json.Object{
		"version.PhasingVoteCasting": int64(a.Version()),
		"phasedTransactions":         phased,
		"revealedSecret":             hex.EncodeToString(a.RevealedSecret),
	}
}

func (a *PhasingVoteCasting) Describe(reg *common.Registry) string {
	var sb strings.Builder
	for _, txId := range a.PhasedTransactions {
		fmt.Fprintf(&sb, "  Phased Transaction:\n")
		fmt.Fprintf(&sb, "    Chain:  %s\n", txId.Chain.Name)
		fmt.Fprintf(
			&sb,
			"    Full Hash:  %s\n",
			hex.EncodeToString(txId.FullHash),
		)
	}
	if len(a.RevealedSecret) > 0 {
		fmt.Fprintf(
			&sb,
			"  Revealed Secret:  %s\n",
			hex.EncodeToString(a.RevealedSecret),
		)
	}
	return sb.String()
}

var PollCreationCodec = common.AttachmentCodec{
	FromBytes: func(reg *common.Registry, r *common.Reader) (common.Attachment, error) {
		if err := common.ReadAttachmentVersion(r); err != nil {
			return nil, err
		}
		a := &PollCreation{
			PollName:     r.String16(),
			Description:  r.String16(),
			FinishHeight: r.Int32(),
		}
		count := int(r.Uint8())
		for i := 0; i < count; i++ {
			a.Options = append(a.Options, r.String16())
		}
		a.VotingModel = r.Int8()
		a.MinNumberOfOptions = r.Uint8()
		a.MaxNumberOfOptions = r.Uint8()
		a.MinRangeValue = r.Int8()
		a.MaxRangeValue = r.Int8()
		a.MinBalance = r.Int64()
		a.MinBalanceModel = r.Uint8()
		a.Holding = r.Uint64()
		return a, r.Err()
	},
	FromJson: func(reg *common.Registry, obj json.Object) (common.Attachment, error) {
		holdingId, err := obj.Id("holding")
		if err != nil {
			return nil, err
		}
		return &PollCreation{
			PollName:           obj.String("name"),
			Description:        obj.String("description"),
			FinishHeight:       obj.Int32("finishHeight"),
			Options:            obj.StringList("options"),
			VotingModel:        obj.Int8("votingModel"),
			MinNumberOfOptions: obj.Uint8("minNumberOfOptions"),
			MaxNumberOfOptions: obj.Uint8("maxNumberOfOptions"),
			MinRangeValue:      obj.Int8("minRangeValue"),
			MaxRangeValue:      obj.Int8("maxRangeValue"),
			MinBalance:         obj.Int64("minBalance"),
			MinBalanceModel:    obj.Uint8("minBalanceModel"),
			Holding:            holdingId,
		}, nil
	},
}

var VoteCastingCodec = common.AttachmentCodec{
	FromBytes: func(reg *common.Registry, r *common.Reader) (common.Attachment, error) {
		if err := common.ReadAttachmentVersion(r); err != nil {
			return nil, err
		}
		a := &VoteCasting{
			Poll: r.Uint64(),
		}
		count := int(r.Uint8())
		for i := 0; i < count; i++ {
			a.Votes = append(a.Votes, r.Int8())
		}
		return a, r.Err()
	},
	FromJson: func(reg *common.Registry, obj json.Object) (common.Attachment, error) {
		pollId, err := obj.Id("poll")
		if err != nil {
			return nil, err
		}
		a := &VoteCasting{Poll: pollId}
		for _, vote := range obj.Int64List("vote") {
			a.Votes = append(a.Votes, int8(vote))
		}
		return a, nil
	},
}

var PhasingVoteCastingCodec = common.AttachmentCodec{
	FromBytes: func(reg *common.Registry, r *common.Reader) (common.Attachment, error) {
		if err := common.ReadAttachmentVersion(r); err != nil {
			return nil, err
		}
		a := &PhasingVoteCasting{}
		count := int(r.Uint8())
		for i := 0; i < count; i++ {
			txId, err := common.ChainTransactionIdFromBytes(reg, r)
			if err != nil {
				return nil, err
			}
			a.PhasedTransactions = append(a.PhasedTransactions, txId)
		}
		length := r.Int32()
		if length < 0 {
			return nil, common.MalformedError{
				What: "negative revealed secret length",
			}
		}
		if length > 0 {
			a.RevealedSecret = r.Bytes(int(length))
		}
		return a, r.Err()
	},
	FromJson: func(reg *common.Registry, obj json.Object) (common.Attachment, error) {
		a := &PhasingVoteCasting{}
		for _, item := range obj.ObjectList("phasedTransactions") {
			txId, err := common.ChainTransactionIdFromJson(reg, item)
			if err != nil {
				return nil, err
			}
			a.PhasedTransactions = append(a.PhasedTransactions, txId)
		}
		secret, err := obj.HexBytes("revealedSecret")
		if err != nil {
			return nil, err
		}
		a.RevealedSecret = secret
		return a, nil
	},
}
