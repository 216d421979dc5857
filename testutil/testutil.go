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

	"github.com/jonboulle/clockwork"
	_ "modernc.org/sqlite"

	"github.com/danielhkuo/fortune-wheel/auth"
	"github.com/danielhkuo/fortune-wheel/cliparse"
	"github.com/danielhkuo/fortune-wheel/db"
	"github.com/danielhkuo/fortune-wheel/models"
)

// TestAdminKey is the admin key configured by GetTestConfig
const TestAdminKey = "test-admin-key"

// Epoch is the start time of clocks returned by NewClock
var Epoch = time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

// SetupTestDB opens a private in-memory SQLite database with the full schema.
// The pool is pinned to one connection so every query sees the same database.
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	conn, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	conn.SetMaxOpenConns(1)

	if err := db.CreateSchema(conn); err != nil {
		conn.Close()
		t.Fatalf("Failed to create schema: %v", err)
	}

	return conn
}

// NewClock returns a fake clock starting at Epoch
func NewClock() *clockwork.FakeClock {
	return clockwork.NewFakeClockAt(Epoch)
}

// GetTestConfig returns a standard test configuration
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Port:               3001,
		DatabaseURL:        ":memory:",
		DatabaseType:       cliparse.DatabaseSQLite,
		AdminKey:           TestAdminKey,
		AllowedOrigins:     []string{"http://localhost:3000"},
		SpecialPrizeChance: 0.01,
		NotifyTimeout:      time.Second,
	}
}

// CreateTestSpin inserts a spin directly through the store and returns it
func CreateTestSpin(t *testing.T, store *db.SpinStore, nationalID, award string, special bool) models.Spin {
	t.Helper()

	spin := models.Spin{
		ID:             auth.NewSpinID(),
		CustomerName:   "Test Customer",
		NationalID:     nationalID,
		Email:          "test@example.com",
		PhoneNumber:    "88887777",
		Branch:         "Escazú",
		Award:          award,
		IsSpecialPrize: special,
	}
	if err := store.Create(context.Background(), &spin); err != nil {
		t.Fatalf("Failed to create test spin: %v", err)
	}

	return spin
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

// AdminHeaders returns headers carrying the test admin key
func AdminHeaders() map[string]string {
	return map[string]string{"X-Admin-Key": TestAdminKey}
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
