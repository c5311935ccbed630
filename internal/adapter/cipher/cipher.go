// Package cipher encrypts feedback text at rest with XChaCha20-Poly1305.
// Every value gets its own random nonce, stored next to the ciphertext.
package cipher

import (
	"crypto/cipher"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/chacha20poly1305"
)

// ErrDecrypt is returned when a ciphertext fails authentication.
var ErrDecrypt = errors.New("cipher: decrypt failed")

// Box seals and opens strings with one key.
type Box struct {
	aead cipher.AEAD
}

// New creates a Box from a hex-encoded 32-byte key.
func New(hexKey string) (*Box, error) {
	key, err := hex.DecodeString(strings.TrimSpace(hexKey))
	if err != nil {
		return nil, fmt.Errorf("cipher: decode key: %w", err)
	}
	return NewFromKey(key)
}

// NewFromKey creates a Box from a raw 32-byte key.
func NewFromKey(key []byte) (*Box, error) {
	aead, err := chacha20poly1305.NewX(key)
	if err != nil {
		return nil, fmt.Errorf("cipher: init: %w", err)
	}
	return &Box{aead: aead}, nil
}

// Seal encrypts plaintext and returns the ciphertext and its nonce.
func (b *Box) Seal(plaintext string) (ciphertext, nonce []byte, err error) {
	nonce = make([]byte, b.aead.NonceSize())
	if _, err := rand.Read(nonce); err != nil {
		return nil, nil, fmt.Errorf("cipher: nonce: %w", err)
	}
	return b.aead.Seal(nil, nonce, []byte(plaintext), nil), nonce, nil
}

// Open decrypts a ciphertext produced by Seal.
func (b *Box) Open(ciphertext, nonce []byte) (string, error) {
	if len(nonce) != b.aead.NonceSize() {
		return "", fmt.Errorf("%w: nonce size %d", ErrDecrypt, len(nonce))
	}
	plain, err := b.aead.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return "", ErrDecrypt
	}
	return string(plain), nil
}
