// File: /middleware/middleware_test.go
package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func init() {
	gin.SetMode(gin.TestMode)
}

func authRouter() *gin.Engine {
	r := gin.New()
	r.GET("/me", AuthMiddleware(testSecret), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"user_id": c.GetString("user_id")})
	})
	return r
}

func serve(r *gin.Engine, authHeader string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func signToken(t *testing.T, secret string, claims jwt.MapClaims) string {
	t.Helper()

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return token
}

func TestAuthMiddlewareResolvesOwner(t *testing.T) {
	r := authRouter()
	token := signToken(t, testSecret, jwt.MapClaims{
		"user_id": "user-42",
		"email":   "user-42@example.com",
		"exp":     time.Now().Add(time.Hour).Unix(),
	})

	w := serve(r, "Bearer "+token)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "user-42")
}

func TestAuthMiddlewareMissingHeader(t *testing.T) {
	w := serve(authRouter(), "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthMiddlewareNonBearerHeader(t *testing.T) {
	w := serve(authRouter(), "Basic dXNlcjpwYXNz")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthMiddlewareWrongSecret(t *testing.T) {
	token := signToken(t, "other-secret", jwt.MapClaims{
		"user_id": "user-42",
		"exp":     time.Now().Add(time.Hour).Unix(),
	})

	w := serve(authRouter(), "Bearer "+token)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthMiddlewareExpiredToken(t *testing.T) {
	token := signToken(t, testSecret, jwt.MapClaims{
		"user_id": "user-42",
		"exp":     time.Now().Add(-time.Hour).Unix(),
	})

	w := serve(authRouter(), "Bearer "+token)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthMiddlewareMissingUserClaim(t *testing.T) {
	token := signToken(t, testSecret, jwt.MapClaims{
		"email": "user-42@example.com",
		"exp":   time.Now().Add(time.Hour).Unix(),
	})

	w := serve(authRouter(), "Bearer "+token)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRateLimitAllowsWithinBurst(t *testing.T) {
	r := gin.New()
	r.GET("/ping", RateLimit(60, 3), func(c *gin.Context) {
		c.String(http.StatusOK, "pong")
	})

	for i := 0; i < 3; i++ {
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code)
	}
}

func TestRateLimitRemainingHeaderCountsDown(t *testing.T) {
	r := gin.New()
	r.GET("/ping", RateLimit(60, 3), func(c *gin.Context) {
		c.String(http.StatusOK, "pong")
	})

	// Refill is 1 token/s, so within one burst the header must reflect
	// the tokens actually left, not a constant.
	expected := []string{"2", "1", "0"}
	for _, want := range expected {
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, want, w.Header().Get("X-RateLimit-Remaining"))
	}
}

func TestRateLimitBlocksBeyondBurst(t *testing.T) {
	r := gin.New()
	r.GET("/ping", RateLimit(1, 1), func(c *gin.Context) {
		c.String(http.StatusOK, "pong")
	})

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
}
