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
	"errors"
	"fmt"
)

// ErrDataTruncated indicates a binary buffer that ended before a fixed-width
// or length-prefixed field could be fully read
var ErrDataTruncated = errors.New("transaction data truncated")

// UnknownChainError indicates a chain identifier that is not present in the
// registry. A chain reference is structurally required, so this error is
// fatal to the parse of the containing transaction or attachment.
type UnknownChainError struct {
	Id uint32
}

func (e UnknownChainError) Error() string {
	return fmt.Sprintf("chain %d is not defined", e.Id)
}

// MalformedError indicates structurally invalid transaction data beyond a
// simple truncated buffer, such as trailing bytes or an invalid field value
type MalformedError struct {
	What string
}

func (e MalformedError) Error() string {
	return fmt.Sprintf("malformed transaction data: %s", e.What)
}

// ErrPruned indicates an accessor on a prunable appendix or attachment whose
// structured data has been discarded by the network, leaving only its hash
var ErrPruned = errors.New("prunable data is no longer available")

// ErrNoPublicKey indicates a serialization or signing attempt on a
// transaction whose sender public key is not known (it is not part of the
// JSON representation of a confirmed transaction)
var ErrNoPublicKey = errors.New("sender public key is not available")
