// Package cryptox implements the cipher engine: key derivation plus
// authenticated encryption of arbitrary byte payloads into self-contained
// envelopes. It knows nothing about documents, folders or storage.
package cryptox

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"fmt"

	"github.com/dmitrijs2005/docvault/internal/common"
	"golang.org/x/crypto/pbkdf2"
)

const (
	// NonceSize is the AES-GCM nonce length in bytes (96 bits). The envelope
	// layout depends on it, so it must never change for stored data.
	NonceSize = 12

	// KeySize is the derived key length (AES-256).
	KeySize = 32

	// Iterations is the fixed PBKDF2 iteration count. Like NonceSize, it is
	// part of the stored-data contract: every client must derive the same key.
	Iterations = 100000
)

// DeriveKey derives a symmetric key from a secret and a salt using
// PBKDF2-SHA256. The derivation is deterministic: identical secret+salt always
// yield an identical key, so any client instance can decrypt what any other
// instance encrypted.
func DeriveKey(secret, salt []byte) []byte {
	return pbkdf2.Key(secret, salt, Iterations, KeySize, sha256.New)
}

// Encrypt seals plaintext under key with AES-256-GCM and a fresh random
// 12-byte nonce, and returns the envelope nonce || ciphertext(+tag) as a
// single opaque byte sequence. The envelope is self-describing: no separate
// metadata is needed to decrypt it later.
//
// A new nonce is generated on every call; nonce reuse under the same key
// would break both confidentiality and integrity for GCM.
func Encrypt(plaintext, key []byte) ([]byte, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("new cipher: %w", err)
	}

	aesgcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("new gcm: %w", err)
	}

	envelope := make([]byte, NonceSize, NonceSize+len(plaintext)+aesgcm.Overhead())
	if _, err := rand.Read(envelope[:NonceSize]); err != nil {
		return nil, fmt.Errorf("nonce: %w", err)
	}

	return aesgcm.Seal(envelope, envelope[:NonceSize], plaintext, nil), nil
}

// Decrypt splits the envelope at the fixed nonce length and opens the
// remainder. It returns common.ErrMalformedEnvelope if the input is shorter
// than the nonce, and common.ErrIntegrity if the authentication tag does not
// verify. It never returns partial or garbage plaintext.
func Decrypt(envelope, key []byte) ([]byte, error) {
	if len(envelope) < NonceSize {
		return nil, common.ErrMalformedEnvelope
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("new cipher: %w", err)
	}

	aesgcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("new gcm: %w", err)
	}

	plaintext, err := aesgcm.Open(nil, envelope[:NonceSize], envelope[NonceSize:], nil)
	if err != nil {
		return nil, common.ErrIntegrity
	}

	return plaintext, nil
}
