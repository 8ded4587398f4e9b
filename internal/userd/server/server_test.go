// Copyright © 2025 jackelyj <dreamerlyj@gmail.com>
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in
// all copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
// THE SOFTWARE.
//

package server

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/innovationmech/userd/internal/userd/config"
	"github.com/innovationmech/userd/internal/userd/deps"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestServer assembles the full stack over a throwaway database: real
// SQLite store, real services, real middleware chain.
func newTestServer(t *testing.T) *Server {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := &config.Config{Env: "test"}
	cfg.Database.Path = filepath.Join(t.TempDir(), "test.db")
	cfg.Server.Port = "0"

	dependencies, err := deps.NewDependencies(cfg)
	require.NoError(t, err)
	t.Cleanup(func() { dependencies.Close() })

	return New(cfg, dependencies)
}

func doJSON(t *testing.T, srv *Server, method, path, body string) (*httptest.ResponseRecorder, map[string]interface{}) {
	t.Helper()
	var reader *bytes.Buffer
	if body != "" {
		reader = bytes.NewBufferString(body)
	} else {
		reader = &bytes.Buffer{}
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	srv.Engine().ServeHTTP(w, req)

	var parsed map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &parsed), "path %s body %q", path, w.Body.String())
	return w, parsed
}

func TestServer_SeededUsers(t *testing.T) {
	srv := newTestServer(t)

	w, body := doJSON(t, srv, http.MethodGet, "/api/v1/users", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, float64(3), body["count"])

	users := body["users"].([]interface{})
	require.Len(t, users, 3)
	emails := make(map[string]bool, 3)
	for _, u := range users {
		emails[u.(map[string]interface{})["email"].(string)] = true
	}
	assert.True(t, emails["john@example.com"])
	assert.True(t, emails["jane@example.com"])
	assert.True(t, emails["mike@example.com"])
}

func TestServer_CreateAndFetchUser(t *testing.T) {
	srv := newTestServer(t)

	w, body := doJSON(t, srv, http.MethodPost, "/api/v1/users", `{"name":"New User","email":"new@example.com"}`)
	require.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "User created successfully", body["message"])

	id := int64(body["user_id"].(float64))
	w, body = doJSON(t, srv, http.MethodGet, fmt.Sprintf("/api/v1/users/%d", id), "")
	assert.Equal(t, http.StatusOK, w.Code)

	user := body["user"].(map[string]interface{})
	assert.Equal(t, "New User", user["name"])
	assert.Equal(t, "new@example.com", user["email"])

	// The new row joins the seeded ones and lists first, newest first.
	w, body = doJSON(t, srv, http.MethodGet, "/api/v1/users", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, float64(4), body["count"])
	first := body["users"].([]interface{})[0].(map[string]interface{})
	assert.Equal(t, "new@example.com", first["email"])
}

func TestServer_DuplicateEmailConflict(t *testing.T) {
	srv := newTestServer(t)

	w, body := doJSON(t, srv, http.MethodPost, "/api/v1/users", `{"name":"Other John","email":"john@example.com"}`)
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "Email already exists", body["error"])

	// The conflict left no partial row behind.
	w, body = doJSON(t, srv, http.MethodGet, "/api/v1/users", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, float64(3), body["count"])
}

func TestServer_ValidationErrors(t *testing.T) {
	srv := newTestServer(t)

	tests := []struct {
		name          string
		body          string
		expectedError string
	}{
		{"malformed JSON", "not json", "No data provided"},
		{"empty object", "{}", "Name is required"},
		{"explicitly empty fields", `{"name":"","email":""}`, "Name is required"},
		{"missing name", `{"email":"a@example.com"}`, "Name is required"},
		{"missing email", `{"name":"Test User"}`, "Email is required"},
		{"bad email", `{"name":"Test User","email":"not-an-email"}`, "Invalid email format"},
		{"short name", `{"name":"A","email":"a@example.com"}`, "Name must be between 2 and 50 characters"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, body := doJSON(t, srv, http.MethodPost, "/api/v1/users", tt.body)
			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Equal(t, tt.expectedError, body["error"])
		})
	}
}

func TestServer_UserNotFound(t *testing.T) {
	srv := newTestServer(t)

	for _, path := range []string{"/api/v1/users/999", "/api/v1/users/abc"} {
		w, body := doJSON(t, srv, http.MethodGet, path, "")
		assert.Equal(t, http.StatusNotFound, w.Code, path)
		assert.Equal(t, "User not found", body["error"], path)
	}
}

func TestServer_UnknownRoute(t *testing.T) {
	srv := newTestServer(t)

	w, body := doJSON(t, srv, http.MethodGet, "/nonexistent", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Endpoint not found", body["error"])
	assert.Equal(t, "The requested resource does not exist", body["message"])
	assert.NotEmpty(t, body["timestamp"])
}

func TestServer_HealthEndpoint(t *testing.T) {
	srv := newTestServer(t)

	w, body := doJSON(t, srv, http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "healthy", body["status"])

	services := body["services"].(map[string]interface{})
	assert.Equal(t, "healthy", services["database"])
	assert.Equal(t, "healthy", services["api"])
}

func TestServer_UniformResponseHeaders(t *testing.T) {
	srv := newTestServer(t)

	// Every response carries the security trio and CORS, unknown routes included.
	for _, path := range []string{"/", "/health", "/api/v1/users", "/nonexistent"} {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		// httptest.NewRequest defaults Host to example.com; the Origin must differ
		// or gin-contrib/cors treats the request as same-origin and skips CORS.
		req.Header.Set("Origin", "https://client.example.org")
		w := httptest.NewRecorder()
		srv.Engine().ServeHTTP(w, req)

		assert.Equal(t, "nosniff", w.Header().Get("X-Content-Type-Options"), path)
		assert.Equal(t, "DENY", w.Header().Get("X-Frame-Options"), path)
		assert.Equal(t, "1; mode=block", w.Header().Get("X-XSS-Protection"), path)
		assert.NotEmpty(t, w.Header().Get("Access-Control-Allow-Origin"), path)
	}
}

func TestServer_PanicBecomesGenericError(t *testing.T) {
	srv := newTestServer(t)
	srv.Engine().GET("/boom", func(c *gin.Context) {
		panic("handler exploded")
	})

	w, body := doJSON(t, srv, http.MethodGet, "/boom", "")
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "Internal server error", body["error"])
	assert.Equal(t, "An unexpected error occurred", body["message"])
	assert.NotContains(t, w.Body.String(), "handler exploded")
}
