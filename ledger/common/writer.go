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
	"bytes"
	"encoding/binary"
)

// Writer builds the little-endian wire encoding of a transaction. It is the
// byte-for-byte inverse of Reader.
type Writer struct {
	buf bytes.Buffer
}

func NewWriter() *Writer {
	return &Writer{}
}

// Data returns the bytes written so far
func (w *Writer) Data() []byte {
	return w.buf.Bytes()
}

// Len returns the number of bytes written so far
func (w *Writer) Len() int {
	return w.buf.Len()
}

func (w *Writer) Uint8(v uint8) {
	w.buf.WriteByte(v)
}

func (w *Writer) Int8(v int8) {
	w.buf.WriteByte(byte(v))
}

func (w *Writer) Uint16(v uint16) {
	var tmp [2]byte
	binary.LittleEndian.PutUint16(tmp[:], v)
	w.buf.Write(tmp[:])
}

func (w *Writer) Int16(v int16) {
	w.Uint16(uint16(v))
}

func (w *Writer) Uint32(v uint32) {
	var tmp [4]byte
	binary.LittleEndian.PutUint32(tmp[:], v)
	w.buf.Write(tmp[:])
}

func (w *Writer) Int32(v int32) {
	w.Uint32(uint32(v))
}

func (w *Writer) Uint64(v uint64) {
	var tmp [8]byte
	binary.LittleEndian.PutUint64(tmp[:], v)
	w.buf.Write(tmp[:])
}

func (w *Writer) Int64(v int64) {
	w.Uint64(uint64(v))
}

func (w *Writer) Bytes(b []byte) {
	w.buf.Write(b)
}

// String8 writes a string with a 1-byte length prefix
func (w *Writer) String8(s string) {
	w.Uint8(uint8(len(s))) //nolint:gosec
	w.buf.WriteString(s)
}

// String16 writes a string with a 2-byte length prefix
func (w *Writer) String16(s string) {
	w.Uint16(uint16(len(s))) //nolint:gosec
	w.buf.WriteString(s)
}
