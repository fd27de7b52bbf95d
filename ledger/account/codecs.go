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
	"strconv"

	"github.com/blinklabs-io/gardor/json"
	"github.com/blinklabs-io/gardor/ledger/common"
)

var SetPhasingOnlyCodec = common.AttachmentCodec{
	FromBytes: func(reg *common.Registry, r *common.Reader) (common.Attachment, error) {
		if err := common.ReadAttachmentVersion(r); err != nil {
			return nil, err
		}
		params, err := common.PhasingParamsFromBytes(r)
		if err != nil {
			return nil, err
		}
		a := &SetPhasingOnly{
			Params:  params,
			MaxFees: map[uint32]int64{},
		}
		count := int(r.Uint8())
		for i := 0; i < count; i++ {
			chainId := r.Uint32()
			fee := r.Int64()
			if err := r.Err(); err != nil {
				return nil, err
			}
			if _, err := reg.MustChain(chainId); err != nil {
				return nil, err
			}
			a.MaxFees[chainId] = fee
		}
		a.MinDuration = r.Uint16()
		a.MaxDuration = r.Uint16()
		return a, r.Err()
	},
	FromJson: func(reg *common.Registry, obj json.Object) (common.Attachment, error) {
		params, err := common.PhasingParamsFromJson(
			obj.Object("phasingControlParams"),
		)
		if err != nil {
			return nil, err
		}
		a := &SetPhasingOnly{
			Params:      params,
			MaxFees:     map[uint32]int64{},
			MinDuration: obj.Uint16("controlMinDuration"),
			MaxDuration: obj.Uint16("controlMaxDuration"),
		}
		maxFees := obj.Object("controlMaxFees")
		for key := range maxFees {
			chainId, err := strconv.ParseUint(key, 10, 32)
			if err != nil {
				return nil, json.ValueError{Key: "controlMaxFees", Value: key, Err: err}
			}
			if _, err := reg.MustChain(uint32(chainId)); err != nil {
				return nil, err
			}
			a.MaxFees[uint32(chainId)] = maxFees.Int64(key)
		}
		return a, nil
	},
}

var AccountInfoCodec = common.AttachmentCodec{
	FromBytes: func(reg *common.Registry, r *common.Reader) (common.Attachment, error) {
		if err := common.ReadAttachmentVersion(r); err != nil {
			return nil, err
		}
		a := &AccountInfo{
			AccountName: r.String8(),
			Description: r.String16(),
		}
		return a, r.Err()
	},
	FromJson: func(reg *common.Registry, obj json.Object) (common.Attachment, error) {
		return &AccountInfo{
			AccountName: obj.String("name"),
			Description: obj.String("description"),
		}, nil
	},
}

var AccountPropertySetCodec = common.AttachmentCodec{
	FromBytes: func(reg *common.Registry, r *common.Reader) (common.Attachment, error) {
		if err := common.ReadAttachmentVersion(r); err != nil {
			return nil, err
		}
		a := &AccountPropertySet{
			Property: r.String8(),
			Value:    r.String8(),
		}
		return a, r.Err()
	},
	FromJson: func(reg *common.Registry, obj json.Object) (common.Attachment, error) {
		return &AccountPropertySet{
			Property: obj.String("property"),
			Value:    obj.String("value"),
		}, nil
	},
}

var AccountPropertyDeleteCodec = common.AttachmentCodec{
	FromBytes: func(reg *common.Registry, r *common.Reader) (common.Attachment, error) {
		if err := common.ReadAttachmentVersion(r); err != nil {
			return nil, err
		}
		a := &AccountPropertyDelete{
			Property: r.Uint64(),
		}
		return a, r.Err()
	},
	FromJson: func(reg *common.Registry, obj json.Object) (common.Attachment, error) {
		propertyId, err := obj.Id("property")
		if err != nil {
			return nil, err
		}
		return &AccountPropertyDelete{Property: propertyId}, nil
	},
}

var EffectiveBalanceLeasingCodec = common.AttachmentCodec{
	FromBytes: func(reg *common.Registry, r *common.Reader) (common.Attachment, error) {
		if err := common.ReadAttachmentVersion(r); err != nil {
			return nil, err
		}
		a := &EffectiveBalanceLeasing{
			Period: r.Uint16(),
		}
		return a, r.Err()
	},
	FromJson: func(reg *common.Registry, obj json.Object) (common.Attachment, error) {
		return &EffectiveBalanceLeasing{
			Period: obj.Uint16("period"),
		}, nil
	},
}
