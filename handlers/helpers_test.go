// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/danielhkuo/class-ballot/models"
	"github.com/danielhkuo/class-ballot/testutil"
)

// serve runs handler against a JSON request built from body
func serve(handler http.HandlerFunc, method, path string, body interface{}) *httptest.ResponseRecorder {
	req := testutil.MakeRequest(method, path, body, nil)
	w := httptest.NewRecorder()
	handler(w, req)
	return w
}

// assertError checks status and the message of a JSON error response
func assertError(t *testing.T, w *httptest.ResponseRecorder, status int, message string) {
	t.Helper()
	testutil.AssertStatus(t, w, status)

	var resp models.ErrorResponse
	testutil.AssertJSON(t, w, &resp)
	if resp.Error != http.StatusText(status) {
		t.Errorf("Expected error %q, got %q", http.StatusText(status), resp.Error)
	}
	if message != "" && resp.Message != message {
		t.Errorf("Expected message %q, got %q", message, resp.Message)
	}
}
