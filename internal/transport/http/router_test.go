package http

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/elearn-api/internal/config"
	"github.com/stretchr/testify/assert"
)

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()
	return NewRouter(&config.Config{}, &Deps{})
}

func TestRouter_Ping(t *testing.T) {
	r := newTestRouter(t)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/health-check/ping", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRouter_LogoutPath(t *testing.T) {
	r := newTestRouter(t)

	// The route exists under /v1/auth; an empty body reaches the handler
	// and fails validation rather than routing.
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/v1/auth/logout", strings.NewReader(`{}`))
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRouter_LogoutNotNestedUnderUser(t *testing.T) {
	r := newTestRouter(t)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/v1/user/auth/logout", strings.NewReader(`{}`))
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
