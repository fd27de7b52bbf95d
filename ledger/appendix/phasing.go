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

package appendix

import (
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/blinklabs-io/gardor/crypto"
	"github.com/blinklabs-io/gardor/json"
	"github.com/blinklabs-io/gardor/ledger/common"
)

// PublicKeyAnnouncement publishes the recipient account's public key with
// the transaction
type PublicKeyAnnouncement struct {
	PublicKey []byte
}

func (a *PublicKeyAnnouncement) Flag() uint32 {
	return common.FlagPublicKeyAnnouncement
}

func (a *PublicKeyAnnouncement) Name() string {
	return "PublicKeyAnnouncement"
}

func (a *PublicKeyAnnouncement) Version() uint8 {
	return 1
}

func (a *PublicKeyAnnouncement) WriteBytes(w *common.Writer) {
	w.Uint8(a.Version())
	w.Bytes(a.PublicKey)
}

func (a *PublicKeyAnnouncement) Json(obj json.Object) {
	obj["version.PublicKeyAnnouncement"] = int64(a.Version())
	obj["recipientPublicKey"] = hex.EncodeToString(a.PublicKey)
}

func (a *PublicKeyAnnouncement) Describe(reg *common.Registry) string {
	return fmt.Sprintf(
		"  Recipient Public Key:  %s\n",
		hex.EncodeToString(a.PublicKey),
	)
}

// Phasing defers transaction execution until its approval conditions are
// met before the finish height. Approval may additionally be gated on other
// transactions being accepted or on revealing a hashed secret.
type Phasing struct {
	FinishHeight       int32
	Params             common.PhasingParams
	LinkedTransactions []common.ChainTransactionId
	HashedSecret       []byte
	Algorithm          crypto.HashFunction
}

func (a *Phasing) Flag() uint32 {
	return common.FlagPhasing
}

func (a *Phasing) Name() string {
	return "Phasing"
}

func (a *Phasing) Version() uint8 {
	return 1
}

func (a *Phasing) WriteBytes(w *common.Writer) {
	w.Uint8(a.Version())
	w.Int32(a.FinishHeight)
	a.Params.WriteBytes(w)
	w.Uint8(uint8(len(a.LinkedTransactions))) //nolint:gosec
	for _, linked := range a.LinkedTransactions {
		linked.WriteBytes(w)
	}
	w.Uint8(uint8(len(a.HashedSecret))) //nolint:gosec
	if len(a.HashedSecret) > 0 {
		w.Bytes(a.HashedSecret)
		w.Uint8(uint8(a.Algorithm))
	}
}

func (a *Phasing) Json(obj json.Object) {
	obj["version.Phasing"] = int64(a.Version())
	obj["phasingFinishHeight"] = int64(a.FinishHeight)
	a.Params.Json(obj)
	linked := make([]json.Object, 0, len(a.LinkedTransactions))
	for _, tx := range a.LinkedTransactions {
		linked = append(linked, tx.Json())
	}
	obj["phasingLinkedTransactions"] = linked
	if len(a.HashedSecret) > 0 {
		obj["phasingHashedSecret"] = hex.EncodeToString(a.HashedSecret)
		obj["phasingHashedSecretAlgorithm"] = int64(a.Algorithm)
	}
}

func (a *Phasing) Describe(reg *common.Registry) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "  Finish Height:  %d\n", a.FinishHeight)
	sb.WriteString(a.Params.Describe(reg))
	for _, linked := range a.LinkedTransactions {
		fmt.Fprintf(
			&sb,
			"  Linked Transaction:  %s on %s\n",
			common.IdToString(linked.TransactionId()),
			linked.Chain.Name,
		)
	}
	if len(a.HashedSecret) > 0 {
		fmt.Fprintf(
			&sb,
			"  Hashed Secret:  %s (%s)\n",
			hex.EncodeToString(a.HashedSecret),
			reg.HashAlgorithmName(uint8(a.Algorithm)),
		)
	}
	return sb.String()
}

var PublicKeyAnnouncementCodec = common.AppendixCodec{
	Flag: common.FlagPublicKeyAnnouncement,
	Name: "PublicKeyAnnouncement",
	FromBytes: func(reg *common.Registry, r *common.Reader) (common.Appendix, error) {
		if err := readAppendixVersion(r); err != nil {
			return nil, err
		}
		a := &PublicKeyAnnouncement{
			PublicKey: r.Bytes(crypto.PublicKeyLen),
		}
		return a, r.Err()
	},
	FromJson: func(reg *common.Registry, obj json.Object) (common.Appendix, error) {
		publicKey, err := obj.HexBytes("recipientPublicKey")
		if err != nil {
			return nil, err
		}
		return &PublicKeyAnnouncement{PublicKey: publicKey}, nil
	},
}

var PhasingCodec = common.AppendixCodec{
	Flag: common.FlagPhasing,
	Name: "Phasing",
	FromBytes: func(reg *common.Registry, r *common.Reader) (common.Appendix, error) {
		if err := readAppendixVersion(r); err != nil {
			return nil, err
		}
		a := &Phasing{
			FinishHeight: r.Int32(),
		}
		params, err := common.PhasingParamsFromBytes(r)
		if err != nil {
			return nil, err
		}
		a.Params = params
		linkedCount := int(r.Uint8())
		for i := 0; i < linkedCount; i++ {
			linked, err := common.ChainTransactionIdFromBytes(reg, r)
			if err != nil {
				return nil, err
			}
			a.LinkedTransactions = append(a.LinkedTransactions, linked)
		}
		secretLength := int(r.Uint8())
		if secretLength > 0 {
			a.HashedSecret = r.Bytes(secretLength)
			a.Algorithm = crypto.HashFunction(r.Uint8())
		}
		return a, r.Err()
	},
	FromJson: func(reg *common.Registry, obj json.Object) (common.Appendix, error) {
		params, err := common.PhasingParamsFromJson(obj)
		if err != nil {
			return nil, err
		}
		a := &Phasing{
			FinishHeight: obj.Int32("phasingFinishHeight"),
			Params:       params,
		}
		for _, item := range obj.ObjectList("phasingLinkedTransactions") {
			linked, err := common.ChainTransactionIdFromJson(reg, item)
			if err != nil {
				return nil, err
			}
			a.LinkedTransactions = append(a.LinkedTransactions, linked)
		}
		secret, err := obj.HexBytes("phasingHashedSecret")
		if err != nil {
			return nil, err
		}
		if len(secret) > 0 {
			a.HashedSecret = secret
			a.Algorithm = crypto.HashFunction(
				obj.Uint8("phasingHashedSecretAlgorithm"),
			)
		}
		return a, nil
	},
}
