// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package auth

import (
	"encoding/base64"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCipher(t *testing.T) *Cipher {
	t.Helper()
	key, err := GenerateKey()
	require.NoError(t, err)
	c, err := NewCipher(key)
	require.NoError(t, err)
	return c
}

func TestCipher_EncryptDecrypt(t *testing.T) {
	c := newTestCipher(t)

	for _, text := range []string{"", "felt heavy after the call", "ünïcödé ✨ journal"} {
		enc, err := c.Encrypt(text)
		require.NoError(t, err)

		dec, err := c.Decrypt(enc)
		require.NoError(t, err)
		assert.Equal(t, text, dec)
	}
}

func TestCipher_NonceIsRandom(t *testing.T) {
	c := newTestCipher(t)

	a, err := c.Encrypt("same note")
	require.NoError(t, err)
	b, err := c.Encrypt("same note")
	require.NoError(t, err)

	assert.NotEqual(t, a, b)
	assert.NotContains(t, a, "same note")
}

func TestCipher_RejectsTampering(t *testing.T) {
	c := newTestCipher(t)
	enc, err := c.Encrypt("private reflection")
	require.NoError(t, err)

	raw, err := base64.URLEncoding.DecodeString(enc)
	require.NoError(t, err)
	raw[len(raw)-1] ^= 0xff
	tampered := base64.URLEncoding.EncodeToString(raw)

	_, err = c.Decrypt(tampered)
	assert.ErrorIs(t, err, ErrCiphertext)

	_, err = c.Decrypt("%%%not-base64")
	assert.ErrorIs(t, err, ErrCiphertext)

	_, err = c.Decrypt(base64.URLEncoding.EncodeToString([]byte("short")))
	assert.ErrorIs(t, err, ErrCiphertext)

	other := newTestCipher(t)
	_, err = other.Decrypt(enc)
	assert.ErrorIs(t, err, ErrCiphertext)
}

func TestNewCipher_InvalidKey(t *testing.T) {
	tests := []string{
		"",
		"not base64 at all!",
		base64.StdEncoding.EncodeToString([]byte("too short")),
		base64.StdEncoding.EncodeToString([]byte(strings.Repeat("k", 33))),
	}

	for _, key := range tests {
		_, err := NewCipher(key)
		assert.ErrorIs(t, err, ErrInvalidKey, "key %q", key)
	}

	_, err := NewCipher(base64.URLEncoding.EncodeToString([]byte(strings.Repeat("k", 32))))
	assert.NoError(t, err, "URL-safe base64 keys are accepted")
}

func TestCipher_EncryptOptional(t *testing.T) {
	c := newTestCipher(t)

	got, err := c.EncryptOptional(nil)
	require.NoError(t, err)
	assert.Nil(t, got)

	empty := ""
	got, err = c.EncryptOptional(&empty)
	require.NoError(t, err)
	assert.Nil(t, got)

	note := "long walk helped"
	got, err = c.EncryptOptional(&note)
	require.NoError(t, err)
	require.NotNil(t, got)

	dec, err := c.Decrypt(*got)
	require.NoError(t, err)
	assert.Equal(t, note, dec)
}
