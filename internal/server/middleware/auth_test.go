package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func signToken(t *testing.T, secret string) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "tester",
		"exp": time.Now().Add(time.Hour).Unix(),
	})
	signed, err := token.SignedString([]byte(secret))
	require.NoError(t, err)
	return signed
}

func protectedHandler(t *testing.T) http.Handler {
	t.Helper()
	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	return Auth(testSecret, []string{"/health"})(inner)
}

func TestAuth_ValidToken(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/taxonomy", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, testSecret))
	rec := httptest.NewRecorder()

	protectedHandler(t).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAuth_MissingHeader(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/taxonomy", nil)
	rec := httptest.NewRecorder()

	protectedHandler(t).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuth_WrongSecret(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/taxonomy", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, "other-secret"))
	rec := httptest.NewRecorder()

	protectedHandler(t).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuth_MalformedHeader(t *testing.T) {
	for _, header := range []string{"Bearer", "Token abc", "Bearer  "} {
		req := httptest.NewRequest(http.MethodGet, "/taxonomy", nil)
		req.Header.Set("Authorization", header)
		rec := httptest.NewRecorder()

		protectedHandler(t).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code, "header %q", header)
	}
}

func TestAuth_ExemptPath(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()

	protectedHandler(t).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAuth_CaseInsensitiveBearerPrefix(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/taxonomy", nil)
	req.Header.Set("Authorization", "bearer "+signToken(t, testSecret))
	rec := httptest.NewRecorder()

	protectedHandler(t).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}
