package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"restaurant/internal/domain"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testSecret = []byte("unit-test-secret")

func signToken(t *testing.T, secret []byte, claims jwt.MapClaims) string {
	t.Helper()
	if _, ok := claims["exp"]; !ok {
		claims["exp"] = time.Now().Add(time.Hour).Unix()
	}
	s, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret)
	require.NoError(t, err)
	return s
}

func TestResolveIdentity_NoCredential(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	_, ok := ResolveIdentity(req, testSecret)
	assert.False(t, ok)
}

func TestResolveIdentity_WrongScheme(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Basic abc123")
	_, ok := ResolveIdentity(req, testSecret)
	assert.False(t, ok)
}

func TestResolveIdentity_BadSignature(t *testing.T) {
	token := signToken(t, []byte("some-other-secret"), jwt.MapClaims{"sub": "user_1", "role": "customer"})
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	_, ok := ResolveIdentity(req, testSecret)
	assert.False(t, ok)
}

func TestResolveIdentity_ExpiredToken(t *testing.T) {
	token := signToken(t, testSecret, jwt.MapClaims{
		"sub": "user_1", "role": "customer", "exp": time.Now().Add(-time.Minute).Unix(),
	})
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	_, ok := ResolveIdentity(req, testSecret)
	assert.False(t, ok)
}

func TestResolveIdentity_MissingSubject(t *testing.T) {
	token := signToken(t, testSecret, jwt.MapClaims{"role": "customer"})
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	_, ok := ResolveIdentity(req, testSecret)
	assert.False(t, ok)
}

func TestResolveIdentity_ValidToken(t *testing.T) {
	token := signToken(t, testSecret, jwt.MapClaims{
		"sub": "user_42", "role": "admin", "email": "a@b.test", "name": "Ana",
	})
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+token)

	ident, ok := ResolveIdentity(req, testSecret)
	require.True(t, ok)
	assert.Equal(t, "user_42", ident.UserID)
	assert.Equal(t, domain.RoleAdmin, ident.Role)
	assert.Equal(t, "a@b.test", ident.Email)
	assert.Equal(t, "Ana", ident.Name)
}

func newGateRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	grp := r.Group("/x", RequireAuth(testSecret))
	grp.GET("/any", func(c *gin.Context) { c.Status(http.StatusOK) })
	grp.GET("/admin", RequireRoles(domain.RoleAdmin), func(c *gin.Context) { c.Status(http.StatusOK) })
	return r
}

func TestRequireAuth_MissingCredential401(t *testing.T) {
	r := newGateRouter()
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/x/any", nil))

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.JSONEq(t, `{"error":"unauthorized"}`, w.Body.String())
}

func TestRequireRoles_NonAdminGets403Not401(t *testing.T) {
	r := newGateRouter()
	token := signToken(t, testSecret, jwt.MapClaims{"sub": "user_1", "role": "customer"})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/x/admin", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.JSONEq(t, `{"error":"forbidden"}`, w.Body.String())
}

func TestRequireRoles_AdminPasses(t *testing.T) {
	r := newGateRouter()
	token := signToken(t, testSecret, jwt.MapClaims{"sub": "user_1", "role": "admin"})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/x/admin", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}
