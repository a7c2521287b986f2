// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/danielhkuo/emerge/analysis"
	"github.com/danielhkuo/emerge/auth"
	"github.com/danielhkuo/emerge/cliparse"
	"github.com/danielhkuo/emerge/db"
	"github.com/danielhkuo/emerge/models"
)

// TestEncryptionKey is a valid 32-byte key (base64) for tests only
const TestEncryptionKey = "a2tra2tra2tra2tra2tra2tra2tra2tra2tra2tra2s="

// SetupTestDB creates a fresh in-memory SQLite database with the full schema
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	conn, err := db.Open(db.TypeSQLite, ":memory:")
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}

	if err := db.CreateSchema(conn); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}

	return conn
}

// SetupTestStore returns a store over a fresh test database. The database
// is closed when the test ends.
func SetupTestStore(t *testing.T) *db.SQLStore {
	t.Helper()

	conn := SetupTestDB(t)
	t.Cleanup(func() { conn.Close() })
	return db.NewSQLStore(conn, db.TypeSQLite)
}

// GetTestConfig returns a standard test configuration
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Port:           8000,
		DatabaseURL:    ":memory:",
		DatabaseType:   db.TypeSQLite,
		UserTokenSalt:  "test-token-salt",
		EncryptionKey:  TestEncryptionKey,
		AllowedOrigins: []string{"http://localhost:5173"},
	}
}

// NewTestCipher builds the cipher for GetTestConfig's key
func NewTestCipher(t *testing.T) *auth.Cipher {
	t.Helper()

	c, err := auth.NewCipher(TestEncryptionKey)
	if err != nil {
		t.Fatalf("Failed to create cipher: %v", err)
	}
	return c
}

// NewTestAnalyzer returns an analyzer backed by the default lexicon
func NewTestAnalyzer() *analysis.Analyzer {
	return analysis.NewAnalyzer(analysis.NewSentimentScorer(nil, nil))
}

// CreateTestUser registers a user and returns its ID and token
func CreateTestUser(t *testing.T, store db.MoodStore, cfg cliparse.Config) (userID, token string) {
	t.Helper()

	userID = auth.GenerateUserID()
	if err := store.CreateUser(context.Background(), userID); err != nil {
		t.Fatalf("Failed to create test user: %v", err)
	}

	return userID, auth.GenerateUserToken(userID, cfg.UserTokenSalt)
}

// AuthHeaders returns the headers that authenticate a user
func AuthHeaders(userID, token string) map[string]string {
	return map[string]string{
		auth.HeaderUserID:    userID,
		auth.HeaderUserToken: token,
	}
}

// InsertTestEntry stores a mood entry on date at the given level
func InsertTestEntry(t *testing.T, store db.MoodStore, userID string, date time.Time, level int) string {
	t.Helper()

	score, err := analysis.ScoreFromMoodLevel(level)
	if err != nil {
		t.Fatalf("Invalid test mood level %d: %v", level, err)
	}

	id, err := store.InsertEntry(context.Background(), models.MoodEntry{
		UserID:       userID,
		RecordedDate: date,
		MoodLevel:    level,
		Score:        score,
	})
	if err != nil {
		t.Fatalf("Failed to create test entry: %v", err)
	}

	return id
}

// Day returns midnight UTC for the given date offset from base
func Day(base time.Time, offset int) time.Time {
	y, m, d := base.UTC().Date()
	return time.Date(y, m, d+offset, 0, 0, 0, 0, time.UTC)
}

// MakeRequest creates an HTTP test request
func MakeRequest(method, path string, body interface{}, headers map[string]string) *http.Request {
	var req *http.Request
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}
