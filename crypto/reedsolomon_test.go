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
	"math/rand"
	"strings"
	"testing"
)

func TestRsEncodeFormat(t *testing.T) {
	for _, id := range []uint64{0, 1, 12345, ^uint64(0)} {
		encoded := RsEncode(id)
		if len(encoded) != 20 {
			t.Fatalf(
				"unexpected encoded length for %d: %q",
				id,
				encoded,
			)
		}
		groups := strings.Split(encoded, "-")
		if len(groups) != 4 ||
			len(groups[0]) != 4 ||
			len(groups[1]) != 4 ||
			len(groups[2]) != 4 ||
			len(groups[3]) != 5 {
			t.Fatalf("unexpected grouping for %d: %q", id, encoded)
		}
		for _, c := range strings.ReplaceAll(encoded, "-", "") {
			if !strings.ContainsRune(rsAlphabet, c) {
				t.Fatalf(
					"character %q outside alphabet in %q",
					c,
					encoded,
				)
			}
		}
	}
}

func TestRsRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	ids := []uint64{0, 1, 9, 10, 31, 32, ^uint64(0)}
	for i := 0; i < 1000; i++ {
		ids = append(ids, rng.Uint64())
	}
	for _, id := range ids {
		encoded := RsEncode(id)
		decoded, err := RsDecode(encoded)
		if err != nil {
			t.Fatalf("unexpected error for %q: %s", encoded, err)
		}
		if decoded != id {
			t.Fatalf(
				"round trip mismatch: %d encoded to %q, decoded to %d",
				id,
				encoded,
				decoded,
			)
		}
	}
}

func TestRsDecodeLowercase(t *testing.T) {
	encoded := RsEncode(123456789)
	decoded, err := RsDecode(strings.ToLower(encoded))
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if decoded != 123456789 {
		t.Fatalf("unexpected decoded value: %d", decoded)
	}
}

func TestRsDecodeInvalid(t *testing.T) {
	testDefs := []struct {
		description string
		address     string
	}{
		{"empty string", ""},
		{"too short", "ABCD-EFGH"},
		{"too long", RsEncode(1) + "-2222"},
	}
	for _, testDef := range testDefs {
		if _, err := RsDecode(testDef.address); err == nil {
			t.Fatalf(
				"expected error for address: %s",
				testDef.description,
			)
		}
	}
	// A single corrupted symbol must fail the parity check
	encoded := []byte(RsEncode(987654321))
	for i, c := range encoded {
		if c == '-' {
			continue
		}
		replacement := byte('2')
		if c == '2' {
			replacement = '3'
		}
		corrupted := append([]byte{}, encoded...)
		corrupted[i] = replacement
		if _, err := RsDecode(string(corrupted)); err == nil {
			t.Fatalf(
				"corrupted address %q decoded without error",
				corrupted,
			)
		}
	}
}
