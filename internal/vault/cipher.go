// Package vault encrypts the body of in-vault notes at rest.
// Keys are derived from a passphrase with Argon2id; bodies are sealed
// with AES-256-GCM and stored base64-encoded.
package vault

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/base64"
	"fmt"

	"golang.org/x/crypto/argon2"
)

const (
	// NonceSize is the AES-GCM nonce size (12 bytes, the standard size).
	NonceSize = 12
	// KeySize is the AES-256 key size in bytes.
	KeySize = 32
	// SaltSize is the key derivation salt size in bytes.
	SaltSize = 32

	// Argon2id parameters.
	argon2Time    = 1
	argon2Memory  = 64 * 1024 // KB
	argon2Threads = 4
)

// GenerateSalt generates a cryptographically random key derivation salt.
func GenerateSalt() ([]byte, error) {
	salt := make([]byte, SaltSize)
	if _, err := rand.Read(salt); err != nil {
		return nil, fmt.Errorf("failed to generate salt: %w", err)
	}
	return salt, nil
}

// DeriveKey derives a vault key from a passphrase and salt using Argon2id.
func DeriveKey(passphrase string, salt []byte) ([]byte, error) {
	if passphrase == "" {
		return nil, fmt.Errorf("passphrase cannot be empty")
	}
	if len(salt) != SaltSize {
		return nil, fmt.Errorf("salt must be %d bytes, got %d", SaltSize, len(salt))
	}
	return argon2.IDKey([]byte(passphrase), salt, argon2Time, argon2Memory, argon2Threads, KeySize), nil
}

// Cipher seals and opens vault note bodies with a fixed key.
type Cipher struct {
	aead cipher.AEAD
}

// NewCipher creates a cipher from a derived key.
func NewCipher(key []byte) (*Cipher, error) {
	if len(key) != KeySize {
		return nil, fmt.Errorf("key must be %d bytes, got %d", KeySize, len(key))
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("failed to create cipher: %w", err)
	}

	aead, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("failed to create GCM: %w", err)
	}

	return &Cipher{aead: aead}, nil
}

// Seal encrypts plaintext.
// Result format: nonce (12 bytes) + ciphertext + auth tag (16 bytes).
func (c *Cipher) Seal(plaintext []byte) ([]byte, error) {
	if len(plaintext) == 0 {
		return nil, fmt.Errorf("plaintext cannot be empty")
	}

	nonce := make([]byte, NonceSize)
	if _, err := rand.Read(nonce); err != nil {
		return nil, fmt.Errorf("failed to generate nonce: %w", err)
	}

	ciphertext := c.aead.Seal(nil, nonce, plaintext, nil)

	result := make([]byte, 0, len(nonce)+len(ciphertext))
	result = append(result, nonce...)
	result = append(result, ciphertext...)

	return result, nil
}

// Open decrypts data produced by Seal.
func (c *Cipher) Open(encrypted []byte) ([]byte, error) {
	if len(encrypted) < NonceSize {
		return nil, fmt.Errorf("encrypted data too short")
	}

	nonce := encrypted[:NonceSize]
	ciphertext := encrypted[NonceSize:]

	plaintext, err := c.aead.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to decrypt: %w", err)
	}

	return plaintext, nil
}

// SealString encrypts a string and returns the result in base64,
// convenient for storing in a text column.
func (c *Cipher) SealString(plaintext string) (string, error) {
	sealed, err := c.Seal([]byte(plaintext))
	if err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(sealed), nil
}

// OpenString decrypts a base64 string produced by SealString.
func (c *Cipher) OpenString(encoded string) (string, error) {
	sealed, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return "", fmt.Errorf("failed to decode base64: %w", err)
	}
	plaintext, err := c.Open(sealed)
	if err != nil {
		return "", err
	}
	return string(plaintext), nil
}
