package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/elearn-api/internal/domain"
	jwtinfra "github.com/elearn-api/internal/infrastructure/jwt"
	"github.com/stretchr/testify/assert"
)

func requestWithRole(role string) *http.Request {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	claims := &jwtinfra.Claims{UserID: "user-1", Role: role}
	return req.WithContext(context.WithValue(req.Context(), ClaimsKey, claims))
}

func TestRequireRole_NoClaims(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rr := httptest.NewRecorder()
	RequireRole(domain.RoleAdmin)(http.HandlerFunc(okHandler)).ServeHTTP(rr, req)
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}

func TestRequireRole_WrongRole(t *testing.T) {
	rr := httptest.NewRecorder()
	RequireRole(domain.RoleAdmin)(http.HandlerFunc(okHandler)).ServeHTTP(rr, requestWithRole(domain.RoleStudent))
	assert.Equal(t, http.StatusForbidden, rr.Code)
}

func TestRequireRole_Allowed(t *testing.T) {
	rr := httptest.NewRecorder()
	RequireRole(domain.RoleAdmin)(http.HandlerFunc(okHandler)).ServeHTTP(rr, requestWithRole(domain.RoleAdmin))
	assert.Equal(t, http.StatusOK, rr.Code)
}

func TestRequireRole_AnyOfSeveral(t *testing.T) {
	rr := httptest.NewRecorder()
	RequireRole(domain.RoleAdmin, domain.RoleStudent)(http.HandlerFunc(okHandler)).ServeHTTP(rr, requestWithRole(domain.RoleStudent))
	assert.Equal(t, http.StatusOK, rr.Code)
}
