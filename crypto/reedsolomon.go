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

// Reed-Solomon codec for account identifiers, as used by the NXT family
// "RS address" format: 13 base-32 data symbols plus 4 parity symbols over
// GF(32), grouped as XXXX-XXXX-XXXX-XXXXX. The parity symbols let a wallet
// detect (and correct single) transcription errors in a typed address.

import (
	"errors"
	"strings"
)

const rsAlphabet = "23456789ABCDEFGHJKLMNPQRSTUVWXYZ"

const (
	rsBase32Length   = 13
	rsCodewordLength = 17
)

var (
	rsGexp = [32]int{
		1, 2, 4, 8, 16, 5, 10, 20, 13, 26, 17, 7, 14, 28, 29, 31,
		27, 19, 3, 6, 12, 24, 21, 15, 30, 25, 23, 11, 22, 9, 18, 1,
	}
	rsGlog = [32]int{
		0, 0, 1, 18, 2, 5, 19, 11, 3, 29, 6, 27, 20, 8, 12, 23,
		4, 10, 30, 17, 7, 22, 28, 26, 21, 25, 9, 16, 13, 14, 24, 15,
	}
	rsCodewordMap = [17]int{
		3, 2, 1, 0, 7, 6, 5, 4, 12, 8, 9, 10, 11, 13, 14, 15, 16,
	}
)

// ErrInvalidRsAddress indicates an RS address string with bad length,
// characters outside the RS alphabet, or a parity check failure
var ErrInvalidRsAddress = errors.New("invalid Reed-Solomon address")

func rsGmult(a, b int) int {
	if a == 0 || b == 0 {
		return 0
	}
	return rsGexp[(rsGlog[a]+rsGlog[b])%31]
}

// RsEncode renders an account identifier in Reed-Solomon form without the
// chain-specific prefix, e.g. "XK4R-7VJU-6EQG-7R335"
func RsEncode(id uint64) string {
	// convert the decimal digits to base 32, least significant first
	digits := rsDecimalDigits(id)
	var codeword [rsCodewordLength]int
	codewordLength := 0
	length := len(digits)
	for {
		newLength := 0
		digit32 := 0
		for i := 0; i < length; i++ {
			digit32 = digit32*10 + int(digits[i])
			if digit32 >= 32 {
				digits[newLength] = byte(digit32 >> 5)
				digit32 &= 31
				newLength++
			} else if newLength > 0 {
				digits[newLength] = 0
				newLength++
			}
		}
		length = newLength
		codeword[codewordLength] = digit32
		codewordLength++
		if length == 0 {
			break
		}
	}

	// append the parity symbols
	var p [4]int
	for i := rsBase32Length - 1; i >= 0; i-- {
		fb := codeword[i] ^ p[3]
		p[3] = p[2] ^ rsGmult(30, fb)
		p[2] = p[1] ^ rsGmult(6, fb)
		p[1] = p[0] ^ rsGmult(9, fb)
		p[0] = rsGmult(17, fb)
	}
	copy(codeword[rsBase32Length:], p[:])

	var sb strings.Builder
	for i := 0; i < rsCodewordLength; i++ {
		sb.WriteByte(rsAlphabet[codeword[rsCodewordMap[i]]])
		if (i&3) == 3 && i < 13 {
			sb.WriteByte('-')
		}
	}
	return sb.String()
}

// RsDecode parses an account identifier in Reed-Solomon form. The input may
// carry dashes (ignored) but not the chain prefix.
func RsDecode(address string) (uint64, error) {
	var codeword [rsCodewordLength]int
	codewordLength := 0
	for _, c := range strings.ToUpper(address) {
		pos := strings.IndexRune(rsAlphabet, c)
		if pos < 0 {
			continue
		}
		if codewordLength >= rsCodewordLength {
			return 0, ErrInvalidRsAddress
		}
		codeword[rsCodewordMap[codewordLength]] = pos
		codewordLength++
	}
	if codewordLength != rsCodewordLength || !rsIsValid(codeword) {
		return 0, ErrInvalidRsAddress
	}

	// convert the base-32 symbols back to a decimal string
	length := rsBase32Length
	var symbols [rsBase32Length]int
	for i := 0; i < length; i++ {
		symbols[i] = codeword[length-i-1]
	}
	var digits []byte
	for {
		newLength := 0
		digit10 := 0
		for i := 0; i < length; i++ {
			digit10 = digit10*32 + symbols[i]
			if digit10 >= 10 {
				symbols[newLength] = digit10 / 10
				digit10 %= 10
				newLength++
			} else if newLength > 0 {
				symbols[newLength] = 0
				newLength++
			}
		}
		length = newLength
		digits = append(digits, byte(digit10)+'0')
		if length == 0 {
			break
		}
	}

	var id uint64
	for i := len(digits) - 1; i >= 0; i-- {
		d := uint64(digits[i] - '0')
		if id > (1<<64-1-d)/10 {
			return 0, ErrInvalidRsAddress
		}
		id = id*10 + d
	}
	return id, nil
}

func rsIsValid(codeword [rsCodewordLength]int) bool {
	sum := 0
	for i := 1; i < 5; i++ {
		t := 0
		for j := 0; j < 31; j++ {
			if j > 12 && j < 27 {
				continue
			}
			pos := j
			if j > 26 {
				pos -= 14
			}
			t ^= rsGmult(codeword[pos], rsGexp[(i*j)%31])
		}
		sum |= t
	}
	return sum == 0
}

// rsDecimalDigits returns the decimal digits of id, most significant first
func rsDecimalDigits(id uint64) []byte {
	if id == 0 {
		return []byte{0}
	}
	var buf [20]byte
	i := len(buf)
	for id > 0 {
		i--
		buf[i] = byte(id % 10)
		id /= 10
	}
	return buf[i:]
}
