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

// Package appendix implements the optional transaction appendices: plain and
// encrypted messages, their prunable variants, public key announcements, and
// phased transaction approval conditions. Appendix presence is signaled by
// the transaction's appendix flags word in binary form and by the
// "version.<Name>" keys in JSON form.
package appendix

import (
	"fmt"

	"github.com/blinklabs-io/gardor/ledger/common"
)

// Codecs returns the appendix codecs in ascending flag order
func Codecs() []common.AppendixCodec {
	return []common.AppendixCodec{
		MessageCodec,
		EncryptedMessageCodec,
		EncryptToSelfMessageCodec,
		PrunablePlainMessageCodec,
		PrunableEncryptedMessageCodec,
		PublicKeyAnnouncementCodec,
		PhasingCodec,
	}
}

// readAppendixVersion consumes the leading version byte of an appendix. Only
// version 1 encodings exist.
func readAppendixVersion(r *common.Reader) error {
	version := r.Uint8()
	if err := r.Err(); err != nil {
		return err
	}
	if version != 1 {
		return common.MalformedError{
			What: fmt.Sprintf(
				"appendix version %d is not supported",
				version,
			),
		}
	}
	return nil
}
