package security_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"multipoles-backend/internal/model"
	"multipoles-backend/internal/security"
)

func protectedEndpoint(t *testing.T, roles ...string) http.Handler {
	t.Helper()
	var h http.Handler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims, err := security.ClaimsFromContext(r.Context())
		require.NoError(t, err)
		w.Write([]byte(claims.Subject))
	})
	if len(roles) > 0 {
		h = security.RequireRoles(roles...)(h)
	}
	return security.Authenticate(newTestJWTService())(h)
}

func TestAuthenticate_MissingHeader(t *testing.T) {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)

	protectedEndpoint(t).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthenticate_BadToken(t *testing.T) {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer garbage")

	protectedEndpoint(t).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthenticate_ValidTokenReachesHandler(t *testing.T) {
	token, err := newTestJWTService().IssueAccessToken("u1", "a@b.fr", "admin")
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+token)

	protectedEndpoint(t).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "u1", rec.Body.String())
}

func TestAuthenticate_RejectsRefreshToken(t *testing.T) {
	// Refresh tokens must never open protected routes.
	token, err := newTestJWTService().IssueRefreshToken("u1", "tok1")
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+token)

	protectedEndpoint(t).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRequireRoles_Allowed(t *testing.T) {
	token, err := newTestJWTService().IssueAccessToken("u1", "a@b.fr", "super_admin")
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+token)

	protectedEndpoint(t, "super_admin", "admin").ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRequireRoles_Forbidden(t *testing.T) {
	token, err := newTestJWTService().IssueAccessToken("u1", "a@b.fr", "admin")
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+token)

	// Authenticated but not in the allow-set: 403, not 401.
	protectedEndpoint(t, "super_admin").ServeHTTP(rec, req)

	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestRequireRoles_AdminTierRejectsUnknownRole(t *testing.T) {
	// Roles are free-form strings in the users table; a token carrying
	// one outside the allow-set authenticates but must not pass the
	// admin-tier gate (the /auth/me and /admin wiring).
	token, err := newTestJWTService().IssueAccessToken("u1", "a@b.fr", "editor")
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+token)

	protectedEndpoint(t, model.RoleSuperAdmin, model.RoleAdmin).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestRequireRoles_WithoutAuthenticate(t *testing.T) {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)

	handler := security.RequireRoles("admin")(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler must not run")
	}))
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
