package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/jwtauth/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jobly-app/jobly-backend-go/internal/pkg/jwt"
)

const testSecret = "test-secret-key-for-jwt"

func newTestRouter(t *testing.T) (*chi.Mux, jwt.Service) {
	t.Helper()
	jwtSvc := jwt.NewJWTService(testSecret, "1h")

	ok := func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}

	r := chi.NewRouter()
	r.Use(jwtauth.Verifier(jwtSvc.JWTAuth()))
	r.Get("/open", ok)
	r.Group(func(r chi.Router) {
		r.Use(Authenticated)
		r.Get("/authed", ok)
	})
	r.Group(func(r chi.Router) {
		r.Use(AdminOnly)
		r.Get("/admin", ok)
	})
	r.Group(func(r chi.Router) {
		r.Use(AdminOrSelf("username"))
		r.Get("/users/{username}", ok)
	})
	return r, jwtSvc
}

func doRequest(t *testing.T, r http.Handler, path string, token string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestAnonymousAccess(t *testing.T) {
	r, _ := newTestRouter(t)

	// No token at all.
	rec := doRequest(t, r, "/open", "")
	assert.Equal(t, http.StatusOK, rec.Code)

	// A garbage token degrades to anonymous instead of failing the request.
	rec = doRequest(t, r, "/open", "not.a.token")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAuthenticated(t *testing.T) {
	r, jwtSvc := newTestRouter(t)

	rec := doRequest(t, r, "/authed", "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = doRequest(t, r, "/authed", "not.a.token")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	token, _, err := jwtSvc.GenerateToken("u1", false)
	require.NoError(t, err)
	rec = doRequest(t, r, "/authed", token)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAdminOnly(t *testing.T) {
	r, jwtSvc := newTestRouter(t)

	rec := doRequest(t, r, "/admin", "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	userToken, _, err := jwtSvc.GenerateToken("u1", false)
	require.NoError(t, err)
	rec = doRequest(t, r, "/admin", userToken)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	adminToken, _, err := jwtSvc.GenerateToken("admin", true)
	require.NoError(t, err)
	rec = doRequest(t, r, "/admin", adminToken)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAdminOrSelf(t *testing.T) {
	r, jwtSvc := newTestRouter(t)

	rec := doRequest(t, r, "/users/u1", "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	selfToken, _, err := jwtSvc.GenerateToken("u1", false)
	require.NoError(t, err)
	rec = doRequest(t, r, "/users/u1", selfToken)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = doRequest(t, r, "/users/someone-else", selfToken)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	adminToken, _, err := jwtSvc.GenerateToken("admin", true)
	require.NoError(t, err)
	rec = doRequest(t, r, "/users/u1", adminToken)
	assert.Equal(t, http.StatusOK, rec.Code)
}

// An expired token must behave exactly like no token.
func TestExpiredTokenIsAnonymous(t *testing.T) {
	r, _ := newTestRouter(t)

	expiredSvc := jwt.NewJWTService(testSecret, "-2m")
	token, _, err := expiredSvc.GenerateToken("u1", true)
	require.NoError(t, err)

	rec := doRequest(t, r, "/open", token)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = doRequest(t, r, "/admin", token)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
