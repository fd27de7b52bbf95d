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

// Chain describes one ledger of the platform. The parent chain carries the
// forging token, child chains carry their own tokens with their own decimal
// scaling. Chains are equal when their identifiers are equal.
type Chain struct {
	Id       uint32
	Name     string
	Decimals int
}

// FormatAmount renders an integer amount with this chain's implied decimal
// point
func (c Chain) FormatAmount(amount int64) string {
	return FormatAmount(amount, c.Decimals)
}
