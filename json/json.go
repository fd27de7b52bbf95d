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

package json

import (
	"bytes"
	"encoding/hex"
	_json "encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Object is a decoded JSON document
type Object map[string]any

// ValueError indicates a key whose value cannot be interpreted as requested
type ValueError struct {
	Key   string
	Value string
	Err   error
}

func (e ValueError) Error() string {
	return fmt.Sprintf("invalid value %q for key %q", e.Value, e.Key)
}

func (e ValueError) Unwrap() error { return e.Err }

// Decode parses a JSON document into an Object. Numbers are kept as
// json.Number to preserve 64-bit precision.
func Decode(data []byte) (Object, error) {
	dec := _json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var obj Object
	if err := dec.Decode(&obj); err != nil {
		return nil, fmt.Errorf("failed to decode JSON document: %w", err)
	}
	return obj, nil
}

// Encode serializes an Object. Map keys are emitted in sorted order, which
// keeps encoded documents stable across runs.
func Encode(obj Object) ([]byte, error) {
	data, err := _json.Marshal(obj)
	if err != nil {
		return nil, fmt.Errorf("failed to encode JSON document: %w", err)
	}
	return data, nil
}

// Bool returns the boolean value for a key, or false when absent
func (o Object) Bool(key string) bool {
	v, ok := o[key].(bool)
	if !ok {
		return false
	}
	return v
}

// Int64 returns the 64-bit value for a key, or 0 when absent or malformed.
// The value may be a number or a decimal string. String values without a
// leading minus sign are parsed as unsigned, since object identifiers use
// the full 64-bit range.
func (o Object) Int64(key string) int64 {
	switch v := o[key].(type) {
	case int64:
		return v
	case int:
		return int64(v)
	case uint64:
		return int64(v) //nolint:gosec
	case _json.Number:
		n, err := strconv.ParseInt(v.String(), 10, 64)
		if err != nil {
			return 0
		}
		return n
	case string:
		if strings.HasPrefix(v, "-") {
			n, err := strconv.ParseInt(v, 10, 64)
			if err != nil {
				return 0
			}
			return n
		}
		n, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return 0
		}
		return int64(n)
	}
	return 0
}

// Uint64 returns the unsigned 64-bit value for a key, or 0 when absent or
// malformed
func (o Object) Uint64(key string) uint64 {
	switch v := o[key].(type) {
	case uint64:
		return v
	case int64:
		return uint64(v) //nolint:gosec
	case int:
		return uint64(v) //nolint:gosec
	case _json.Number:
		n, err := strconv.ParseUint(v.String(), 10, 64)
		if err != nil {
			return 0
		}
		return n
	case string:
		n, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return 0
		}
		return n
	}
	return 0
}

// Int returns the integer value for a key, or 0 when absent or malformed
func (o Object) Int(key string) int {
	return int(o.Int64(key))
}

// Int32 returns the 32-bit value for a key, or 0 when absent or malformed
func (o Object) Int32(key string) int32 {
	return int32(o.Int64(key))
}

// Int8 returns the signed byte value for a key, or 0 when absent or malformed
func (o Object) Int8(key string) int8 {
	return int8(o.Int64(key))
}

// Uint8 returns the unsigned byte value for a key, or 0 when absent or malformed
func (o Object) Uint8(key string) uint8 {
	return uint8(o.Int64(key))
}

// Uint16 returns the 16-bit value for a key, or 0 when absent or malformed
func (o Object) Uint16(key string) uint16 {
	return uint16(o.Int64(key))
}

// Id returns an object identifier encoded as an unsigned decimal string.
// A missing key or empty string yields 0 without error.
func (o Object) Id(key string) (uint64, error) {
	s := o.String(key)
	if s == "" {
		return 0, nil
	}
	id, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, ValueError{Key: key, Value: s, Err: err}
	}
	return id, nil
}

// IdList returns a list of object identifiers encoded as unsigned decimal
// strings
func (o Object) IdList(key string) ([]uint64, error) {
	var items []any
	switch v := o[key].(type) {
	case []any:
		items = v
	case []string:
		items = make([]any, len(v))
		for i, s := range v {
			items[i] = s
		}
	default:
		return nil, nil
	}
	ids := make([]uint64, 0, len(items))
	for _, item := range items {
		s, ok := item.(string)
		if !ok {
			return nil, ValueError{Key: key, Value: fmt.Sprintf("%v", item)}
		}
		id, err := strconv.ParseUint(s, 10, 64)
		if err != nil {
			return nil, ValueError{Key: key, Value: s, Err: err}
		}
		ids = append(ids, id)
	}
	return ids, nil
}

// Int64List returns the numeric list for a key, or an empty list when
// absent. Non-numeric entries are skipped.
func (o Object) Int64List(key string) []int64 {
	if nums, ok := o[key].([]int64); ok {
		return nums
	}
	items, ok := o[key].([]any)
	if !ok {
		return nil
	}
	nums := make([]int64, 0, len(items))
	for _, item := range items {
		switch v := item.(type) {
		case int64:
			nums = append(nums, v)
		case int:
			nums = append(nums, int64(v))
		case _json.Number:
			n, err := strconv.ParseInt(v.String(), 10, 64)
			if err != nil {
				continue
			}
			nums = append(nums, n)
		}
	}
	return nums
}

// String returns the string value for a key, or an empty string when absent
func (o Object) String(key string) string {
	v, ok := o[key].(string)
	if !ok {
		return ""
	}
	return v
}

// HexBytes returns the decoded value of a hexadecimal string. A missing key
// yields nil without error.
func (o Object) HexBytes(key string) ([]byte, error) {
	s, ok := o[key].(string)
	if !ok {
		return nil, nil
	}
	data, err := hex.DecodeString(s)
	if err != nil {
		return nil, ValueError{Key: key, Value: s, Err: err}
	}
	return data, nil
}

// Object returns the nested object for a key, or an empty Object when absent
func (o Object) Object(key string) Object {
	switch v := o[key].(type) {
	case map[string]any:
		return Object(v)
	case Object:
		return v
	}
	return Object{}
}

// ObjectList returns the nested object list for a key, or an empty list when
// absent. Non-object entries are skipped.
func (o Object) ObjectList(key string) []Object {
	if objs, ok := o[key].([]Object); ok {
		return objs
	}
	items, ok := o[key].([]any)
	if !ok {
		return nil
	}
	objs := make([]Object, 0, len(items))
	for _, item := range items {
		if m, ok := item.(map[string]any); ok {
			objs = append(objs, Object(m))
		}
	}
	return objs
}

// StringList returns the string list for a key, or an empty list when absent.
// Non-string entries are skipped.
func (o Object) StringList(key string) []string {
	if strs, ok := o[key].([]string); ok {
		return strs
	}
	items, ok := o[key].([]any)
	if !ok {
		return nil
	}
	strs := make([]string, 0, len(items))
	for _, item := range items {
		if s, ok := item.(string); ok {
			strs = append(strs, s)
		}
	}
	return strs
}
