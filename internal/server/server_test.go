package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"skiff/internal/config"
)

func testServer() *Server {
	return New(&config.Config{
		Server: config.ServerConfig{Port: 5000},
	})
}

func TestServer_Index(t *testing.T) {
	srv := testServer()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	srv.Echo().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var resp IndexResponse
	err := json.Unmarshal(rec.Body.Bytes(), &resp)
	require.NoError(t, err)

	assert.Equal(t, "Welcome to Skiff", resp.Message)
	assert.Equal(t, "running", resp.Status)
	assert.Equal(t, "1.0.0", resp.Version)
}

func TestServer_Health(t *testing.T) {
	srv := testServer()

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	srv.Echo().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var resp HealthResponse
	err := json.Unmarshal(rec.Body.Bytes(), &resp)
	require.NoError(t, err)

	assert.Equal(t, "healthy", resp.Status)
	assert.Equal(t, "service is up", resp.Message)
}

func TestServer_Health_Idempotent(t *testing.T) {
	srv := testServer()

	var first string
	for i := 0; i < 3; i++ {
		req := httptest.NewRequest(http.MethodGet, "/health", nil)
		rec := httptest.NewRecorder()
		srv.Echo().ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		if i == 0 {
			first = rec.Body.String()
		} else {
			assert.Equal(t, first, rec.Body.String())
		}
	}
}

func TestServer_Index_IgnoresQueryParameters(t *testing.T) {
	srv := testServer()

	req := httptest.NewRequest(http.MethodGet, "/?foo=bar", nil)
	rec := httptest.NewRecorder()
	srv.Echo().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"version":"1.0.0"`)
}

func TestServer_UnknownRoute(t *testing.T) {
	srv := testServer()

	req := httptest.NewRequest(http.MethodGet, "/nope", nil)
	rec := httptest.NewRecorder()
	srv.Echo().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
