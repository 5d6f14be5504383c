package vault

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateSalt(t *testing.T) {
	salt, err := GenerateSalt()
	require.NoError(t, err)
	assert.Len(t, salt, SaltSize)

	other, err := GenerateSalt()
	require.NoError(t, err)
	assert.NotEqual(t, salt, other)
}

func TestDeriveKey(t *testing.T) {
	salt, err := GenerateSalt()
	require.NoError(t, err)

	key, err := DeriveKey("correct horse battery staple", salt)
	require.NoError(t, err)
	assert.Len(t, key, KeySize)

	// Same inputs, same key.
	again, err := DeriveKey("correct horse battery staple", salt)
	require.NoError(t, err)
	assert.Equal(t, key, again)

	// Different passphrase, different key.
	other, err := DeriveKey("wrong passphrase", salt)
	require.NoError(t, err)
	assert.NotEqual(t, key, other)
}

func TestDeriveKey_Errors(t *testing.T) {
	salt, err := GenerateSalt()
	require.NoError(t, err)

	_, err = DeriveKey("", salt)
	assert.Error(t, err)

	_, err = DeriveKey("pass", []byte("short"))
	assert.Error(t, err)
}

func TestCipher_SealOpen(t *testing.T) {
	salt, err := GenerateSalt()
	require.NoError(t, err)
	key, err := DeriveKey("vault pass", salt)
	require.NoError(t, err)

	c, err := NewCipher(key)
	require.NoError(t, err)

	plaintext := []byte("secret note body")
	sealed, err := c.Seal(plaintext)
	require.NoError(t, err)
	assert.NotEqual(t, plaintext, sealed)

	opened, err := c.Open(sealed)
	require.NoError(t, err)
	assert.Equal(t, plaintext, opened)
}

func TestCipher_Open_WrongKey(t *testing.T) {
	salt, err := GenerateSalt()
	require.NoError(t, err)

	key1, err := DeriveKey("pass one", salt)
	require.NoError(t, err)
	key2, err := DeriveKey("pass two", salt)
	require.NoError(t, err)

	c1, err := NewCipher(key1)
	require.NoError(t, err)
	c2, err := NewCipher(key2)
	require.NoError(t, err)

	sealed, err := c1.Seal([]byte("secret"))
	require.NoError(t, err)

	_, err = c2.Open(sealed)
	assert.Error(t, err)
}

func TestCipher_Open_Tampered(t *testing.T) {
	key := make([]byte, KeySize)
	c, err := NewCipher(key)
	require.NoError(t, err)

	sealed, err := c.Seal([]byte("secret"))
	require.NoError(t, err)

	sealed[len(sealed)-1] ^= 0xff
	_, err = c.Open(sealed)
	assert.Error(t, err)

	_, err = c.Open([]byte("short"))
	assert.Error(t, err)
}

func TestCipher_SealString(t *testing.T) {
	key := make([]byte, KeySize)
	c, err := NewCipher(key)
	require.NoError(t, err)

	encoded, err := c.SealString("vault body text")
	require.NoError(t, err)

	decoded, err := c.OpenString(encoded)
	require.NoError(t, err)
	assert.Equal(t, "vault body text", decoded)

	_, err = c.OpenString("not base64 %%%")
	assert.Error(t, err)
}

func TestNewCipher_BadKey(t *testing.T) {
	_, err := NewCipher([]byte("too short"))
	assert.Error(t, err)
}

func TestCipher_Seal_Empty(t *testing.T) {
	key := make([]byte, KeySize)
	c, err := NewCipher(key)
	require.NoError(t, err)

	_, err = c.Seal(nil)
	assert.Error(t, err)
}
