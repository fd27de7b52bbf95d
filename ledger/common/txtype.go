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

	"github.com/blinklabs-io/gardor/json"
)

// TransactionType identifies a transaction kind by (type, subtype). Negative
// types are parent-chain transactions, non-negative types are child-chain
// transactions.
type TransactionType struct {
	Type    int8
	Subtype uint8
	Name    string
}

// Key returns the lookup key used by the registry tables
func (t TransactionType) Key() int32 {
	return TypeKey(t.Type, t.Subtype)
}

// TypeKey builds the registry lookup key for a (type, subtype) pair
func TypeKey(txType int8, subtype uint8) int32 {
	return int32(txType)<<8 | int32(subtype)
}

// Attachment is the type-specific body of a transaction. Exactly one
// attachment is present per transaction; its variant is selected by the
// transaction type. An attachment decodes from either the binary or the
// JSON representation into the same logical value.
type Attachment interface {
	// Name is the attachment name used in the "version.<Name>" JSON key
	Name() string
	// Version is the attachment version (0 for empty attachments)
	Version() uint8
	// WriteBytes appends the binary encoding, including the leading
	// version byte for versioned attachments
	WriteBytes(w *Writer)
	// Json returns the canonical JSON fields, including the version key
	Json() json.Object
	// Describe renders a human-readable multi-line summary
	Describe(reg *Registry) string
}

// AttachmentCodec binds a transaction type to its attachment variant
type AttachmentCodec struct {
	FromBytes func(reg *Registry, r *Reader) (Attachment, error)
	FromJson  func(reg *Registry, obj json.Object) (Attachment, error)
}

// ReadAttachmentVersion consumes the leading version byte of a non-empty
// attachment. Only version 1 encodings exist.
func ReadAttachmentVersion(r *Reader) error {
	version := r.Uint8()
	if err := r.Err(); err != nil {
		return err
	}
	if version != 1 {
		return MalformedError{
			What: fmt.Sprintf(
				"attachment version %d is not supported",
				version,
			),
		}
	}
	return nil
}
