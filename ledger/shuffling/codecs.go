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

package shuffling

import (
	"encoding/hex"

	"github.com/blinklabs-io/gardor/json"
	"github.com/blinklabs-io/gardor/ledger/common"
)

func baseFromBytes(r *common.Reader) (ShufflingBase, error) {
	if err := common.ReadAttachmentVersion(r); err != nil {
		return ShufflingBase{}, err
	}
	base := ShufflingBase{
		ShufflingFullHash:  r.Bytes(common.FullHashLen),
		ShufflingStateHash: r.Bytes(common.FullHashLen),
	}
	return base, r.Err()
}

func baseFromJson(obj json.Object) (ShufflingBase, error) {
	fullHash, err := obj.HexBytes("shufflingFullHash")
	if err != nil {
		return ShufflingBase{}, err
	}
	stateHash, err := obj.HexBytes("shufflingStateHash")
	if err != nil {
		return ShufflingBase{}, err
	}
	return ShufflingBase{
		ShufflingFullHash:  fullHash,
		ShufflingStateHash: stateHash,
	}, nil
}

func hexList(obj json.Object, key string) ([][]byte, error) {
	strs := obj.StringList(key)
	if len(strs) == 0 {
		return nil, nil
	}
	items := make([][]byte, 0, len(strs))
	for _, s := range strs {
		item, err := hex.DecodeString(s)
		if err != nil {
			return nil, json.ValueError{Key: key, Value: s, Err: err}
		}
		items = append(items, item)
	}
	return items, nil
}

var ShufflingCreationCodec = common.AttachmentCodec{
	FromBytes: func(reg *common.Registry, r *common.Reader) (common.Attachment, error) {
		if err := common.ReadAttachmentVersion(r); err != nil {
			return nil, err
		}
		a := &ShufflingCreation{
			Holding:            r.Uint64(),
			HoldingType:        r.Uint8(),
			Amount:             r.Int64(),
			ParticipantCount:   r.Uint8(),
			RegistrationPeriod: r.Uint16(),
		}
		return a, r.Err()
	},
	FromJson: func(reg *common.Registry, obj json.Object) (common.Attachment, error) {
		holdingId, err := obj.Id("holding")
		if err != nil {
			return nil, err
		}
		return &ShufflingCreation{
			Holding:            holdingId,
			HoldingType:        obj.Uint8("holdingType"),
			Amount:             obj.Int64("amount"),
			ParticipantCount:   obj.Uint8("participantCount"),
			RegistrationPeriod: obj.Uint16("registrationPeriod"),
		}, nil
	},
}

var ShufflingRegistrationCodec = common.AttachmentCodec{
	FromBytes: func(reg *common.Registry, r *common.Reader) (common.Attachment, error) {
		if err := common.ReadAttachmentVersion(r); err != nil {
			return nil, err
		}
		a := &ShufflingRegistration{
			ShufflingFullHash: r.Bytes(common.FullHashLen),
		}
		return a, r.Err()
	},
	FromJson: func(reg *common.Registry, obj json.Object) (common.Attachment, error) {
		fullHash, err := obj.HexBytes("shufflingFullHash")
		if err != nil {
			return nil, err
		}
		return &ShufflingRegistration{ShufflingFullHash: fullHash}, nil
	},
}

var ShufflingProcessingCodec = common.AttachmentCodec{
	FromBytes: func(reg *common.Registry, r *common.Reader) (common.Attachment, error) {
		base, err := baseFromBytes(r)
		if err != nil {
			return nil, err
		}
		a := &ShufflingProcessing{ShufflingBase: base}
		flags := r.Uint8()
		if flags&1 != 0 {
			count := int(r.Uint8())
			a.Data = make([][]byte, 0, count)
			for i := 0; i < count; i++ {
				length := int(r.Uint16())
				a.Data = append(a.Data, r.Bytes(length))
			}
		} else {
			a.hash = r.Bytes(common.FullHashLen)
		}
		return a, r.Err()
	},
	FromJson: func(reg *common.Registry, obj json.Object) (common.Attachment, error) {
		base, err := baseFromJson(obj)
		if err != nil {
			return nil, err
		}
		a := &ShufflingProcessing{ShufflingBase: base}
		data, err := hexList(obj, "data")
		if err != nil {
			return nil, err
		}
		if data != nil {
			a.Data = data
		} else {
			hash, err := obj.HexBytes("hash")
			if err != nil {
				return nil, err
			}
			a.hash = hash
		}
		return a, nil
	},
}

var ShufflingRecipientsCodec = common.AttachmentCodec{
	FromBytes: func(reg *common.Registry, r *common.Reader) (common.Attachment, error) {
		base, err := baseFromBytes(r)
		if err != nil {
			return nil, err
		}
		a := &ShufflingRecipients{ShufflingBase: base}
		count := int(r.Uint8())
		a.RecipientPublicKeys = make([][]byte, 0, count)
		for i := 0; i < count; i++ {
			a.RecipientPublicKeys = append(a.RecipientPublicKeys, r.Bytes(32))
		}
		return a, r.Err()
	},
	FromJson: func(reg *common.Registry, obj json.Object) (common.Attachment, error) {
		base, err := baseFromJson(obj)
		if err != nil {
			return nil, err
		}
		keys, err := hexList(obj, "recipientPublicKeys")
		if err != nil {
			return nil, err
		}
		return &ShufflingRecipients{
			ShufflingBase:       base,
			RecipientPublicKeys: keys,
		}, nil
	},
}

var ShufflingVerificationCodec = common.AttachmentCodec{
	FromBytes: func(reg *common.Registry, r *common.Reader) (common.Attachment, error) {
		base, err := baseFromBytes(r)
		if err != nil {
			return nil, err
		}
		return &ShufflingVerification{ShufflingBase: base}, nil
	},
	FromJson: func(reg *common.Registry, obj json.Object) (common.Attachment, error) {
		base, err := baseFromJson(obj)
		if err != nil {
			return nil, err
		}
		return &ShufflingVerification{ShufflingBase: base}, nil
	},
}

var ShufflingCancellationCodec = common.AttachmentCodec{
	FromBytes: func(reg *common.Registry, r *common.Reader) (common.Attachment, error) {
		base, err := baseFromBytes(r)
		if err != nil {
			return nil, err
		}
		a := &ShufflingCancellation{ShufflingBase: base}
		count := int(r.Uint8())
		a.BlameData = make([][]byte, 0, count)
		for i := 0; i < count; i++ {
			length := r.Int32()
			if length < 0 {
				return nil, common.MalformedError{
					What: "negative blame data length",
				}
			}
			a.BlameData = append(a.BlameData, r.Bytes(int(length)))
		}
		count = int(r.Uint8())
		a.KeySeeds = make([][]byte, 0, count)
		for i := 0; i < count; i++ {
			a.KeySeeds = append(a.KeySeeds, r.Bytes(32))
		}
		a.CancellingAccount = r.Uint64()
		return a, r.Err()
	},
	FromJson: func(reg *common.Registry, obj json.Object) (common.Attachment, error) {
		base, err := baseFromJson(obj)
		if err != nil {
			return nil, err
		}
		blameData, err := hexList(obj, "blameData")
		if err != nil {
			return nil, err
		}
		keySeeds, err := hexList(obj, "keySeeds")
		if err != nil {
			return nil, err
		}
		cancellingAccount, err := obj.Id("cancellingAccount")
		if err != nil {
			return nil, err
		}
		return &ShufflingCancellation{
			ShufflingBase:     base,
			BlameData:         blameData,
			KeySeeds:          keySeeds,
			CancellingAccount: cancellingAccount,
		}, nil
	},
}
