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

// Package crypto implements the cryptographic primitives used by the Ardor
// platform: SHA-256 content hashing, Curve25519 key derivation and the
// EC-KCDSA signature scheme, ECDH shared keys for message encryption, and
// AES-256-CBC symmetric encryption.
//
// All operations are stateless per call and safe for concurrent use.
package crypto

import (
	"bytes"
	"crypto/sha256"
	"errors"

	"golang.org/x/crypto/curve25519"
)

const (
	// PublicKeyLen is the length of a Curve25519 public key
	PublicKeyLen = 32
	// SignatureLen is the length of a signature (v followed by h)
	SignatureLen = 64
	// SharedKeyNonceLen is the length of the nonce mixed into a shared key
	SharedKeyNonceLen = 32
)

// ErrNonCanonicalKey indicates a public key that fails the platform's
// canonical form check
var ErrNonCanonicalKey = errors.New("public key is not canonical")

// ErrNonCanonicalSignature indicates a signature that fails the platform's
// canonical form check. Signing refuses to emit such a signature and
// verification refuses to accept one.
var ErrNonCanonicalSignature = errors.New("signature is not canonical")

// Sha256 computes the SHA-256 digest over the concatenation of the inputs
func Sha256(inputs ...[]byte) []byte {
	digest := sha256.New()
	for _, input := range inputs {
		digest.Write(input)
	}
	return digest.Sum(nil)
}

// PrivateKey derives the clamped Curve25519 private key for a secret phrase
func PrivateKey(secretPhrase string) []byte {
	k := Sha256([]byte(secretPhrase))
	clamp(k)
	return k
}

// PublicKey derives the Curve25519 public key for a secret phrase
func PublicKey(secretPhrase string) ([]byte, error) {
	publicKey := make([]byte, PublicKeyLen)
	keygen(publicKey, nil, Sha256([]byte(secretPhrase)))
	if !isCanonicalPublicKey(publicKey) {
		return nil, ErrNonCanonicalKey
	}
	return publicKey, nil
}

// IsCanonicalPublicKey reports whether a public key is in canonical form
func IsCanonicalPublicKey(publicKey []byte) bool {
	return isCanonicalPublicKey(publicKey)
}

// IsCanonicalSignature reports whether a signature is in canonical form
func IsCanonicalSignature(signature []byte) bool {
	return isCanonicalSignature(signature)
}

// Sign produces the 64-byte EC-KCDSA signature of a message. The nonce is
// derived deterministically from the message and the signing key, so the
// same message and secret phrase always yield the same signature.
func Sign(message []byte, secretPhrase string) ([]byte, error) {
	p := make([]byte, 32)
	s := make([]byte, 32)
	keygen(p, s, Sha256([]byte(secretPhrase)))

	m := Sha256(message)
	x := Sha256(m, s)

	y := make([]byte, 32)
	keygen(y, nil, x)
	h := Sha256(m, y)

	v := make([]byte, 32)
	curveSign(v, h, x, s)

	signature := make([]byte, 0, SignatureLen)
	signature = append(signature, v...)
	signature = append(signature, h...)
	if !isCanonicalSignature(signature) {
		return nil, ErrNonCanonicalSignature
	}
	return signature, nil
}

// Verify checks an EC-KCDSA signature. It returns false for any malformed
// or non-canonical input rather than an error, since a bad signature and a
// structurally invalid one are equivalent to callers.
func Verify(signature []byte, message []byte, publicKey []byte) bool {
	if !isCanonicalSignature(signature) ||
		!isCanonicalPublicKey(publicKey) {
		return false
	}
	v := signature[:32]
	h := signature[32:64]

	y := make([]byte, 32)
	curveVerify(y, v, h, publicKey)

	m := Sha256(message)
	h2 := Sha256(m, y)
	return bytes.Equal(h, h2)
}

// SharedKey computes the symmetric key shared between two accounts: the
// ECDH secret of one party's private key and the other's public key, XORed
// with a 32-byte nonce and hashed. Both parties derive the same key from
// their own private key and the peer's public key.
func SharedKey(privateKey, publicKey, nonce []byte) ([]byte, error) {
	if len(nonce) != SharedKeyNonceLen {
		return nil, errors.New("shared key nonce must be 32 bytes")
	}
	secret, err := curve25519.X25519(privateKey, publicKey)
	if err != nil {
		return nil, err
	}
	for i := range secret {
		secret[i] ^= nonce[i]
	}
	return Sha256(secret), nil
}
