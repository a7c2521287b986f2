// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package auth handles user identity tokens and encryption of text at rest.

# User Tokens

Users are identified by a random UUID. The matching token is an HMAC of
that ID, so the server can verify it without storing anything:

	userID := auth.GenerateUserID()
	token := auth.GenerateUserToken(userID, cfg.UserTokenSalt)

Requests carry both values in headers:

	X-User-ID:    <uuid>
	X-User-Token: <token>

UserFromRequest validates them and returns the user ID, or
ErrMissingCredentials / ErrInvalidUserToken.

# Encryption

Mood notes and reflections are stored encrypted with XChaCha20-Poly1305:

	c, err := auth.NewCipher(cfg.EncryptionKey) // base64, 32 bytes
	enc, err := c.Encrypt(note)
	note, err := c.Decrypt(enc)

Each call uses a random 24-byte nonce, prefixed to the ciphertext.
Decrypt returns ErrCiphertext for malformed or tampered input. A new key
can be created with GenerateKey.

# Security Notes

  - Token comparison uses hmac.Equal (constant time)
  - Tokens are URL-safe base64 without padding
  - Plaintext notes are never logged or returned by the API
*/
package auth
