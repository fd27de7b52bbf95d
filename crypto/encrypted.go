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
	"bytes"
	"compress/gzip"
	"crypto/rand"
	"fmt"
	"io"
)

// EncryptedData is an encrypted payload together with the public nonce that
// was mixed into the shared encryption key
type EncryptedData struct {
	Data  []byte
	Nonce []byte
}

// EncryptTo encrypts a message for a recipient. The shared key is derived
// from the sender's secret phrase, the recipient's public key, and a fresh
// random 32-byte nonce. The plaintext is optionally gzip-compressed before
// encryption. Encrypting to one's own public key yields an
// "encrypt to self" message.
func EncryptTo(
	publicKey []byte,
	plaintext []byte,
	secretPhrase string,
	compress bool,
) (EncryptedData, error) {
	if compress {
		var buf bytes.Buffer
		zw := gzip.NewWriter(&buf)
		if _, err := zw.Write(plaintext); err != nil {
			return EncryptedData{}, err
		}
		if err := zw.Close(); err != nil {
			return EncryptedData{}, err
		}
		plaintext = buf.Bytes()
	}
	nonce := make([]byte, SharedKeyNonceLen)
	if _, err := rand.Read(nonce); err != nil {
		return EncryptedData{}, err
	}
	key, err := SharedKey(PrivateKey(secretPhrase), publicKey, nonce)
	if err != nil {
		return EncryptedData{}, err
	}
	data, err := AesEncrypt(plaintext, key)
	if err != nil {
		return EncryptedData{}, err
	}
	return EncryptedData{Data: data, Nonce: nonce}, nil
}

// Decrypt recovers the plaintext of a message encrypted with EncryptTo. The
// public key is the peer's key (or one's own for an encrypt-to-self
// message); uncompress must match the compress flag used for encryption.
func (e EncryptedData) Decrypt(
	secretPhrase string,
	publicKey []byte,
	uncompress bool,
) ([]byte, error) {
	key, err := SharedKey(PrivateKey(secretPhrase), publicKey, e.Nonce)
	if err != nil {
		return nil, err
	}
	plaintext, err := AesDecrypt(e.Data, key)
	if err != nil {
		return nil, err
	}
	if uncompress {
		zr, err := gzip.NewReader(bytes.NewReader(plaintext))
		if err != nil {
			return nil, InvalidCiphertextError{
				What: fmt.Sprintf("decompression failed: %v", err),
			}
		}
		plaintext, err = io.ReadAll(zr)
		if err != nil {
			return nil, InvalidCiphertextError{
				What: fmt.Sprintf("decompression failed: %v", err),
			}
		}
	}
	return plaintext, nil
}
