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
	"github.com/blinklabs-io/gardor/json"
)

// Appendix flag values. Each appendix kind is selected by one bit in the
// transaction's appendix flags word and appendices are always processed in
// ascending flag order.
const (
	FlagMessage                  uint32 = 1
	FlagEncryptedMessage         uint32 = 2
	FlagEncryptToSelfMessage     uint32 = 4
	FlagPrunablePlainMessage     uint32 = 8
	FlagPrunableEncryptedMessage uint32 = 16
	FlagPublicKeyAnnouncement    uint32 = 32
	FlagPhasing                  uint32 = 64
)

// Appendix is an optional payload section orthogonal to the transaction's
// attachment. Zero or more appendices may be present, never duplicated by
// kind.
type Appendix interface {
	// Flag is the appendix's power-of-two presence bit
	Flag() uint32
	// Name is the appendix name used in the "version.<Name>" JSON key
	Name() string
	// Version is the appendix version byte
	Version() uint8
	// WriteBytes appends the binary encoding, including the leading
	// version byte
	WriteBytes(w *Writer)
	// Json folds the appendix fields, including the version key, into the
	// enclosing attachment object
	Json(obj json.Object)
	// Describe renders a human-readable multi-line summary
	Describe(reg *Registry) string
}

// AppendixCodec binds an appendix flag to its decoder. In binary form an
// appendix is present when its flag bit is set; in JSON form it is present
// when the attachment object carries "version.<Name>" greater than zero.
type AppendixCodec struct {
	Flag      uint32
	Name      string
	FromBytes func(reg *Registry, r *Reader) (Appendix, error)
	FromJson  func(reg *Registry, obj json.Object) (Appendix, error)
}
