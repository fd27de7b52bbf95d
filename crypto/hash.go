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

package crypto

import (
	"fmt"

	"golang.org/x/crypto/ripemd160" //nolint:staticcheck
)

// HashFunction identifies one of the hash algorithms accepted for by-hash
// phasing (hashed-secret approval)
type HashFunction uint8

const (
	HashSha256          HashFunction = 2
	HashRipemd160       HashFunction = 6
	HashRipemd160Sha256 HashFunction = 62
)

// Hash computes the digest of data with this algorithm
func (h HashFunction) Hash(data []byte) ([]byte, error) {
	switch h {
	case HashSha256:
		return Sha256(data), nil
	case HashRipemd160:
		digest := ripemd160.New()
		digest.Write(data)
		return digest.Sum(nil), nil
	case HashRipemd160Sha256:
		digest := ripemd160.New()
		digest.Write(Sha256(data))
		return digest.Sum(nil), nil
	}
	return nil, fmt.Errorf("unknown hash function %d", uint8(h))
}

func (h HashFunction) String() string {
	switch h {
	case HashSha256:
		return "SHA256"
	case HashRipemd160:
		return "RIPEMD160"
	case HashRipemd160Sha256:
		return "RIPEMD160_SHA256"
	}
	return fmt.Sprintf("HashFunction(%d)", uint8(h))
}
