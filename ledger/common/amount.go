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
	"strconv"
	"strings"
)

// FormatAmount renders an integer amount with an implied decimal point
// placed 'decimals' digits from the right. The stored integer is never
// scaled; decimal placement is purely presentation.
func FormatAmount(amount int64, decimals int) string {
	sign := ""
	if amount < 0 {
		sign = "-"
		amount = -amount
	}
	digits := strconv.FormatInt(amount, 10)
	if decimals <= 0 {
		return sign + digits
	}
	if len(digits) <= decimals {
		digits = strings.Repeat("0", decimals-len(digits)+1) + digits
	}
	point := len(digits) - decimals
	return sign + digits[:point] + "." + digits[point:]
}

// ParseAmount converts a decimal string into an integer amount with the
// given number of implied decimal places. Fractional digits beyond the
// decimal count are rejected rather than rounded.
func ParseAmount(s string, decimals int) (int64, error) {
	whole, frac, _ := strings.Cut(s, ".")
	if len(frac) > decimals {
		return 0, MalformedError{
			What: "amount " + s + " has too many decimal places",
		}
	}
	frac += strings.Repeat("0", decimals-len(frac))
	n, err := strconv.ParseInt(whole+frac, 10, 64)
	if err != nil {
		return 0, MalformedError{What: "invalid amount " + s}
	}
	return n, nil
}
