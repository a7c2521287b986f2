// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package auth

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"net/http"
	"strings"

	"github.com/google/uuid"
)

// Request headers carrying the caller's identity
const (
	HeaderUserID    = "X-User-ID"
	HeaderUserToken = "X-User-Token"
)

var (
	ErrMissingCredentials = errors.New("missing user credentials")
	ErrInvalidUserToken   = errors.New("invalid user token")
)

// GenerateUserID creates a random UUID for a new user
func GenerateUserID() string {
	return uuid.NewString()
}

// GenerateUserToken creates an HMAC-based token for a user
// This is deterministic and verifiable, so nothing needs to be stored
func GenerateUserToken(userID, salt string) string {
	h := hmac.New(sha256.New, []byte(salt))
	h.Write([]byte(userID))
	sum := h.Sum(nil)
	// Use URL-safe base64 and trim padding for cleaner tokens
	return strings.TrimRight(base64.URLEncoding.EncodeToString(sum), "=")
}

// ValidateUserToken checks if the provided token is valid for the user
func ValidateUserToken(userID, token, salt string) error {
	expected := GenerateUserToken(userID, salt)
	if !hmac.Equal([]byte(token), []byte(expected)) {
		return ErrInvalidUserToken
	}
	return nil
}

// UserFromRequest reads and validates the identity headers, returning the user ID
func UserFromRequest(r *http.Request, salt string) (string, error) {
	userID := strings.TrimSpace(r.Header.Get(HeaderUserID))
	token := strings.TrimSpace(r.Header.Get(HeaderUserToken))
	if userID == "" || token == "" {
		return "", ErrMissingCredentials
	}
	if _, err := uuid.Parse(userID); err != nil {
		return "", ErrInvalidUserToken
	}
	if err := ValidateUserToken(userID, token, salt); err != nil {
		return "", err
	}
	return userID, nil
}
