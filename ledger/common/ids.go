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
	"encoding/binary"
	"strconv"

	"github.com/blinklabs-io/gardor/crypto"
)

// FullHashLen is the length of a transaction content hash
const FullHashLen = 32

// FullHashToId derives the 64-bit object identifier from a full hash. The
// identifier is the first 8 bytes of the hash interpreted as a little-endian
// integer; it is a hash-table key, not a unique identifier.
func FullHashToId(fullHash []byte) uint64 {
	if len(fullHash) < 8 {
		return 0
	}
	return binary.LittleEndian.Uint64(fullHash)
}

// IdToString renders an object identifier in the platform's unsigned
// decimal string form
func IdToString(id uint64) string {
	return strconv.FormatUint(id, 10)
}

// AccountId derives the account identifier from a public key
func AccountId(publicKey []byte) uint64 {
	return FullHashToId(crypto.Sha256(publicKey))
}

// AccountRsId renders an account identifier in Reed-Solomon form with the
// supplied address prefix, e.g. "ARDOR-XXXX-XXXX-XXXX-XXXXX"
func AccountRsId(prefix string, accountId uint64) string {
	return prefix + "-" + crypto.RsEncode(accountId)
}
