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

// Package json wraps encoding/json with the accessor conventions used by the
// Ardor node API. Documents are decoded into an Object (a string-keyed map)
// with numbers preserved as json.Number, since amounts and object identifiers
// are 64-bit values that must not round-trip through float64.
//
// Accessors follow the platform rules: a missing or mistyped key yields the
// zero value, 64-bit integers may arrive as numbers or decimal strings, and
// object identifiers are unsigned decimal strings.
package json
