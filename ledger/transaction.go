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

package ledger

import (
	"bytes"
	"encoding/hex"
	"errors"
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/blinklabs-io/gardor/crypto"
	"github.com/blinklabs-io/gardor/json"
	"github.com/blinklabs-io/gardor/ledger/common"
)

const (
	// headerLen is the fixed transaction header length
	headerLen = 149
	// signatureOffset is the position of the signature within the header
	signatureOffset = 69
)

var zeroSignature = make([]byte, crypto.SignatureLen)

// Transaction is a transaction on one of the registry's chains. A
// transaction is identified by its full hash; the 64-bit identifier derived
// from the hash is a lookup key and is not unique, even within a chain.
//
// A transaction built from bytes or JSON round-trips to the same canonical
// encoding. An unsigned transaction carries an all-zero signature in binary
// form and has an empty full hash and a zero identifier.
type Transaction struct {
	Chain           common.Chain
	Type            int8
	Subtype         uint8
	Version         uint8
	Timestamp       int32
	Deadline        uint16
	SenderPublicKey []byte
	RecipientId     uint64
	Amount          int64
	Fee             int64
	Signature       []byte
	EcBlockHeight   int32
	EcBlockId       uint64

	// Attachment is nil when the transaction type is not registered; the
	// undecoded remainder is retained so the transaction still re-encodes
	Attachment common.Attachment
	Appendices []common.Appendix

	rawAttachment     []byte
	rawAttachmentJson json.Object
	rawAppendixFlags  uint32

	senderId uint64
	fullHash []byte
	height   int32
	blockId  uint64
}

// TransactionFromBytes decodes a transaction from its binary form. The
// chain reference must be registered; an unregistered transaction type
// leaves the attachment absent with the raw remainder retained. Trailing
// bytes after the last appendix are an error.
func TransactionFromBytes(
	reg *common.Registry,
	data []byte,
) (*Transaction, error) {
	r := common.NewReader(data)
	chainId := r.Uint32()
	if err := r.Err(); err != nil {
		return nil, err
	}
	chain, err := reg.MustChain(chainId)
	if err != nil {
		return nil, err
	}
	tx := &Transaction{
		Chain:           chain,
		Type:            r.Int8(),
		Subtype:         r.Uint8(),
		Version:         r.Uint8(),
		Timestamp:       r.Int32(),
		Deadline:        r.Uint16(),
		SenderPublicKey: r.Bytes(crypto.PublicKeyLen),
		RecipientId:     r.Uint64(),
		Amount:          r.Int64(),
		Fee:             r.Int64(),
		Signature:       r.Bytes(crypto.SignatureLen),
		EcBlockHeight:   r.Int32(),
		EcBlockId:       r.Uint64(),
	}
	appendixFlags := r.Uint32()
	if err := r.Err(); err != nil {
		return nil, err
	}
	codec, ok := reg.AttachmentCodec(tx.Type, tx.Subtype)
	if !ok {
		// Unsupported transaction kind: the attachment cannot be sized,
		// so the remainder (attachment plus any appendices) is kept as-is
		tx.rawAttachment = r.Bytes(r.Remaining())
		tx.rawAppendixFlags = appendixFlags
	} else {
		attachment, err := codec.FromBytes(reg, r)
		if err != nil {
			return nil, err
		}
		tx.Attachment = attachment
		remaining := appendixFlags
		for _, appCodec := range reg.AppendixCodecs() {
			if appendixFlags&appCodec.Flag == 0 {
				continue
			}
			appendix, err := appCodec.FromBytes(reg, r)
			if err != nil {
				return nil, err
			}
			tx.Appendices = append(tx.Appendices, appendix)
			remaining &^= appCodec.Flag
		}
		if remaining != 0 {
			return nil, common.MalformedError{
				What: fmt.Sprintf(
					"unsupported appendix flags 0x%x",
					remaining,
				),
			}
		}
		if r.Remaining() > 0 {
			return nil, common.MalformedError{
				What: fmt.Sprintf(
					"%d trailing bytes after transaction",
					r.Remaining(),
				),
			}
		}
	}
	if tx.Signed() {
		tx.fullHash = fullHashFromBytes(data, tx.Signature)
	} else {
		tx.Signature = nil
	}
	return tx, nil
}

// TransactionFromJson decodes a transaction from the node's JSON form. The
// sender public key and signature are present only for transactions that
// carry them (a confirmed transaction response omits the public key).
func TransactionFromJson(
	reg *common.Registry,
	obj json.Object,
) (*Transaction, error) {
	chain, err := reg.MustChain(uint32(obj.Int64("chain"))) //nolint:gosec
	if err != nil {
		return nil, err
	}
	senderPublicKey, err := obj.HexBytes("senderPublicKey")
	if err != nil {
		return nil, err
	}
	signature, err := obj.HexBytes("signature")
	if err != nil {
		return nil, err
	}
	fullHash, err := obj.HexBytes("fullHash")
	if err != nil {
		return nil, err
	}
	senderId, err := obj.Id("sender")
	if err != nil {
		return nil, err
	}
	recipientId, err := obj.Id("recipient")
	if err != nil {
		return nil, err
	}
	ecBlockId, err := obj.Id("ecBlockId")
	if err != nil {
		return nil, err
	}
	tx := &Transaction{
		Chain:           chain,
		Type:            obj.Int8("type"),
		Subtype:         obj.Uint8("subtype"),
		Version:         obj.Uint8("version"),
		Timestamp:       obj.Int32("timestamp"),
		Deadline:        obj.Uint16("deadline"),
		SenderPublicKey: senderPublicKey,
		RecipientId:     recipientId,
		Amount:          obj.Int64("amountNQT"),
		Fee:             obj.Int64("feeNQT"),
		Signature:       signature,
		EcBlockHeight:   obj.Int32("ecBlockHeight"),
		EcBlockId:       ecBlockId,
		senderId:        senderId,
		fullHash:        fullHash,
	}
	if !tx.Signed() {
		tx.Signature = nil
		tx.fullHash = nil
	}
	height := obj.Int32("height")
	if height != 0 && height != math.MaxInt32 {
		tx.height = height
		blockId, err := obj.Id("block")
		if err != nil {
			return nil, err
		}
		tx.blockId = blockId
	}
	attachment := obj.Object("attachment")
	codec, ok := reg.AttachmentCodec(tx.Type, tx.Subtype)
	if !ok {
		tx.rawAttachmentJson = attachment
		return tx, nil
	}
	tx.Attachment, err = codec.FromJson(reg, attachment)
	if err != nil {
		return nil, err
	}
	for _, appCodec := range reg.AppendixCodecs() {
		if attachment.Int64("version."+appCodec.Name) <= 0 {
			continue
		}
		appendix, err := appCodec.FromJson(reg, attachment)
		if err != nil {
			return nil, err
		}
		tx.Appendices = append(tx.Appendices, appendix)
	}
	return tx, nil
}

// Signed reports whether the transaction carries a signature
func (tx *Transaction) Signed() bool {
	return len(tx.Signature) == crypto.SignatureLen &&
		!bytes.Equal(tx.Signature, zeroSignature)
}

// FullHash returns the transaction content hash, or nil for an unsigned
// transaction
func (tx *Transaction) FullHash() []byte {
	return tx.fullHash
}

// Id returns the transaction identifier derived from the full hash, or 0
// for an unsigned transaction
func (tx *Transaction) Id() uint64 {
	if len(tx.fullHash) == 0 {
		return 0
	}
	return common.FullHashToId(tx.fullHash)
}

// IdString returns the transaction identifier in unsigned decimal form
func (tx *Transaction) IdString() string {
	return common.IdToString(tx.Id())
}

// SenderId returns the sender account identifier, derived from the public
// key when it is known
func (tx *Transaction) SenderId() uint64 {
	if len(tx.SenderPublicKey) > 0 {
		return common.AccountId(tx.SenderPublicKey)
	}
	return tx.senderId
}

// Height returns the block height, or 0 for an unconfirmed transaction
func (tx *Transaction) Height() int32 {
	return tx.height
}

// SetHeight records the block height after confirmation
func (tx *Transaction) SetHeight(height int32) {
	tx.height = height
}

// BlockId returns the block identifier, or 0 for an unconfirmed transaction
func (tx *Transaction) BlockId() uint64 {
	return tx.blockId
}

// SetBlockId records the block identifier after confirmation
func (tx *Transaction) SetBlockId(blockId uint64) {
	tx.blockId = blockId
}

// Bytes returns the binary encoding of the transaction. The sender public
// key is part of the header, so it must be known.
func (tx *Transaction) Bytes() ([]byte, error) {
	return tx.encode(tx.Signature)
}

// UnsignedBytes returns the binary encoding with the signature zeroed. This
// is the form that is signed and the form the full hash is computed over.
func (tx *Transaction) UnsignedBytes() ([]byte, error) {
	return tx.encode(nil)
}

func (tx *Transaction) encode(signature []byte) ([]byte, error) {
	if len(tx.SenderPublicKey) != crypto.PublicKeyLen {
		return nil, common.ErrNoPublicKey
	}
	if len(signature) != crypto.SignatureLen {
		signature = zeroSignature
	}
	w := common.NewWriter()
	w.Uint32(tx.Chain.Id)
	w.Int8(tx.Type)
	w.Uint8(tx.Subtype)
	w.Uint8(tx.Version)
	w.Int32(tx.Timestamp)
	w.Uint16(tx.Deadline)
	w.Bytes(tx.SenderPublicKey)
	w.Uint64(tx.RecipientId)
	w.Int64(tx.Amount)
	w.Int64(tx.Fee)
	w.Bytes(signature)
	w.Int32(tx.EcBlockHeight)
	w.Uint64(tx.EcBlockId)
	if tx.Attachment == nil && tx.rawAttachment != nil {
		w.Uint32(tx.rawAppendixFlags)
		w.Bytes(tx.rawAttachment)
		return w.Data(), nil
	}
	appendices := tx.sortedAppendices()
	var flags uint32
	for _, appendix := range appendices {
		flags |= appendix.Flag()
	}
	w.Uint32(flags)
	if tx.Attachment != nil {
		tx.Attachment.WriteBytes(w)
	}
	for _, appendix := range appendices {
		appendix.WriteBytes(w)
	}
	return w.Data(), nil
}

// Json returns the canonical JSON form of the transaction
func (tx *Transaction) Json() json.Object {
	obj := json.Object{
		"chain":         int64(tx.Chain.Id),
		"type":          int64(tx.Type),
		"subtype":       int64(tx.Subtype),
		"version":       int64(tx.Version),
		"timestamp":     int64(tx.Timestamp),
		"deadline":      int64(tx.Deadline),
		"sender":        common.IdToString(tx.SenderId()),
		"recipient":     common.IdToString(tx.RecipientId),
		"amountNQT":     tx.Amount,
		"feeNQT":        tx.Fee,
		"ecBlockHeight": int64(tx.EcBlockHeight),
		"ecBlockId":     common.IdToString(tx.EcBlockId),
		"height":        int64(tx.height),
	}
	if len(tx.SenderPublicKey) > 0 {
		obj["senderPublicKey"] = hex.EncodeToString(tx.SenderPublicKey)
	}
	if tx.Signed() {
		obj["signature"] = hex.EncodeToString(tx.Signature)
		obj["fullHash"] = hex.EncodeToString(tx.fullHash)
	}
	if tx.blockId != 0 {
		obj["block"] = common.IdToString(tx.blockId)
	}
	if tx.Attachment == nil && tx.rawAttachmentJson != nil {
		obj["attachment"] = tx.rawAttachmentJson
		return obj
	}
	attachment := json.Object{}
	if tx.Attachment != nil {
		attachment = tx.Attachment.Json()
	}
	for _, appendix := range tx.sortedAppendices() {
		appendix.Json(attachment)
	}
	obj["attachment"] = attachment
	return obj
}

// Sign signs the transaction with the supplied secret phrase and recomputes
// the full hash and identifier. When the sender public key is already set it
// must match the key derived from the secret phrase.
func (tx *Transaction) Sign(secretPhrase string) error {
	publicKey, err := crypto.PublicKey(secretPhrase)
	if err != nil {
		return err
	}
	if len(tx.SenderPublicKey) > 0 &&
		!bytes.Equal(tx.SenderPublicKey, publicKey) {
		return errors.New(
			"secret phrase does not match the sender public key",
		)
	}
	tx.SenderPublicKey = publicKey
	unsigned, err := tx.UnsignedBytes()
	if err != nil {
		return err
	}
	signature, err := crypto.Sign(unsigned, secretPhrase)
	if err != nil {
		return err
	}
	tx.Signature = signature
	tx.fullHash = crypto.Sha256(unsigned, crypto.Sha256(signature))
	return nil
}

// VerifySignature checks the transaction signature against the sender
// public key. An unsigned transaction never verifies.
func (tx *Transaction) VerifySignature() bool {
	if !tx.Signed() {
		return false
	}
	unsigned, err := tx.UnsignedBytes()
	if err != nil {
		return false
	}
	return crypto.Verify(tx.Signature, unsigned, tx.SenderPublicKey)
}

// Describe renders a human-readable multi-line summary of the transaction
func (tx *Transaction) Describe(reg *common.Registry) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Chain:  %s\n", tx.Chain.Name)
	if txType, ok := reg.TransactionType(tx.Type, tx.Subtype); ok {
		fmt.Fprintf(&sb, "Type:  %s\n", txType.Name)
	} else {
		fmt.Fprintf(&sb, "Type:  (%d, %d)\n", tx.Type, tx.Subtype)
	}
	if tx.Signed() {
		fmt.Fprintf(&sb, "Id:  %s\n", tx.IdString())
	}
	fmt.Fprintf(
		&sb,
		"Timestamp:  %s\n",
		reg.TimeFromTimestamp(tx.Timestamp).Format("2006-01-02 15:04:05"),
	)
	fmt.Fprintf(
		&sb,
		"Sender:  %s\n",
		common.AccountRsId(reg.AccountPrefix(), tx.SenderId()),
	)
	if tx.RecipientId != 0 {
		fmt.Fprintf(
			&sb,
			"Recipient:  %s\n",
			common.AccountRsId(reg.AccountPrefix(), tx.RecipientId),
		)
	}
	fmt.Fprintf(&sb, "Amount:  %s\n", tx.Chain.FormatAmount(tx.Amount))
	fmt.Fprintf(&sb, "Fee:  %s\n", tx.Chain.FormatAmount(tx.Fee))
	if tx.Attachment != nil {
		sb.WriteString(tx.Attachment.Describe(reg))
	}
	for _, appendix := range tx.sortedAppendices() {
		sb.WriteString(appendix.Describe(reg))
	}
	return sb.String()
}

// sortedAppendices returns the appendices in ascending flag order without
// reordering the stored slice
func (tx *Transaction) sortedAppendices() []common.Appendix {
	appendices := make([]common.Appendix, len(tx.Appendices))
	copy(appendices, tx.Appendices)
	sort.Slice(appendices, func(i, j int) bool {
		return appendices[i].Flag() < appendices[j].Flag()
	})
	return appendices
}

// fullHashFromBytes computes the transaction content hash from the signed
// binary form: the hash of the bytes with the signature zeroed, chained
// with the hash of the signature
func fullHashFromBytes(data []byte, signature []byte) []byte {
	zeroed := make([]byte, len(data))
	copy(zeroed, data)
	copy(zeroed[signatureOffset:signatureOffset+crypto.SignatureLen],
		zeroSignature)
	return crypto.Sha256(zeroed, crypto.Sha256(signature))
}
