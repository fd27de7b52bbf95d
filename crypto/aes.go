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
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"fmt"
)

// InvalidCiphertextError indicates encrypted data that cannot be decrypted:
// a length that is not a positive multiple of the block size, or padding
// that does not validate after decryption
type InvalidCiphertextError struct {
	What string
}

func (e InvalidCiphertextError) Error() string {
	return fmt.Sprintf("invalid ciphertext: %s", e.What)
}

// AesEncrypt encrypts plaintext with AES-CBC and PKCS#7 padding. A fresh
// random 16-byte IV is generated per call and prepended to the ciphertext.
func AesEncrypt(plaintext, key []byte) ([]byte, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, err
	}
	padLen := aes.BlockSize - len(plaintext)%aes.BlockSize
	padded := make([]byte, len(plaintext)+padLen)
	copy(padded, plaintext)
	for i := len(plaintext); i < len(padded); i++ {
		padded[i] = byte(padLen)
	}
	out := make([]byte, aes.BlockSize+len(padded))
	iv := out[:aes.BlockSize]
	if _, err := rand.Read(iv); err != nil {
		return nil, err
	}
	cipher.NewCBCEncrypter(block, iv).CryptBlocks(out[aes.BlockSize:], padded)
	return out, nil
}

// AesDecrypt decrypts data produced by AesEncrypt. The input must be at
// least 16 bytes (the IV) plus one block, and a multiple of the block size;
// anything else is rejected rather than truncated or padded.
func AesDecrypt(data, key []byte) ([]byte, error) {
	if len(data) < aes.BlockSize || len(data)%aes.BlockSize != 0 {
		return nil, InvalidCiphertextError{
			What: fmt.Sprintf("length %d is not valid", len(data)),
		}
	}
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, err
	}
	iv := data[:aes.BlockSize]
	ciphertext := data[aes.BlockSize:]
	if len(ciphertext) == 0 {
		return nil, InvalidCiphertextError{What: "no data after IV"}
	}
	plaintext := make([]byte, len(ciphertext))
	cipher.NewCBCDecrypter(block, iv).CryptBlocks(plaintext, ciphertext)
	padLen := int(plaintext[len(plaintext)-1])
	if padLen < 1 || padLen > aes.BlockSize || padLen > len(plaintext) {
		return nil, InvalidCiphertextError{What: "bad padding"}
	}
	for _, b := range plaintext[len(plaintext)-padLen:] {
		if int(b) != padLen {
			return nil, InvalidCiphertextError{What: "bad padding"}
		}
	}
	return plaintext[:len(plaintext)-padLen], nil
}
