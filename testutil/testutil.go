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
	"path/filepath"
	"testing"

	"github.com/danielhkuo/class-ballot/cliparse"
	"github.com/danielhkuo/class-ballot/db"
	"github.com/danielhkuo/class-ballot/models"
	"github.com/danielhkuo/class-ballot/store"
)

// TestGroups are seeded into every test database
var TestGroups = []string{"1a", "1b", "2a"}

// GetTestConfig returns a standard test configuration pointing at path
func GetTestConfig(path string) cliparse.Config {
	return cliparse.Config{
		Port:         8000,
		DatabaseURL:  path,
		DatabaseType: "sqlite",
		SeedGroups:   TestGroups,
		CORSOrigin:   "*",
	}
}

// SetupTestDB creates a fresh SQLite database file with the full schema.
// The connection is closed when the test ends.
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	cfg := GetTestConfig(filepath.Join(t.TempDir(), "test.db"))
	conn, err := db.Open(cfg)
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	t.Cleanup(func() { conn.Close() })

	if err := db.CreateSchema(conn); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}

	return conn
}

// SetupTestStore returns a store over a fresh database seeded with TestGroups
func SetupTestStore(t *testing.T) *store.Store {
	t.Helper()

	st := store.New(SetupTestDB(t))
	if _, err := st.SeedGroups(context.Background(), TestGroups); err != nil {
		t.Fatalf("Failed to seed groups: %v", err)
	}

	return st
}

// Person builds an identity
func Person(name, surname, group string) models.Identity {
	return models.Identity{Name: name, Surname: surname, Group: group}
}

// CreateTestCandidate registers a candidate and returns its id
func CreateTestCandidate(t *testing.T, st *store.Store, ident models.Identity, statement string) string {
	t.Helper()

	id, err := st.RegisterCandidate(context.Background(), models.RegisterCandidateRequest{
		Name:      ident.Name,
		Surname:   ident.Surname,
		Group:     ident.Group,
		Statement: statement,
	})
	if err != nil {
		t.Fatalf("Failed to create test candidate: %v", err)
	}

	return id
}

// CreateTestVoter registers a voter and returns its id
func CreateTestVoter(t *testing.T, st *store.Store, ident models.Identity) string {
	t.Helper()

	id, err := st.RegisterVoter(context.Background(), ident)
	if err != nil {
		t.Fatalf("Failed to create test voter: %v", err)
	}

	return id
}

// CastTestVote records a vote, failing the test on error
func CastTestVote(t *testing.T, st *store.Store, voter, candidate models.Identity) {
	t.Helper()

	if err := st.Cast(context.Background(), voter, candidate); err != nil {
		t.Fatalf("Failed to cast test vote: %v", err)
	}
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
