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

	"github.com/salonhub/salon-booking-api/internal/config"
)

func testConfig() *config.Config {
	return &config.Config{JWTSecret: "test-secret"}
}

func signToken(t *testing.T, secret string, claims jwt.MapClaims) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	require.NoError(t, err)
	return signed
}

func runAuth(cfg *config.Config, authHeader string) (*httptest.ResponseRecorder, *gin.Context) {
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	if authHeader != "" {
		c.Request.Header.Set("Authorization", authHeader)
	}

	AuthMiddleware(cfg)(c)
	return w, c
}

func TestAuthMiddlewareRoundTrip(t *testing.T) {
	cfg := testConfig()

	token := signToken(t, cfg.JWTSecret, jwt.MapClaims{
		"sub":      float64(42),
		"email":    "owner@example.com",
		"userType": "shopowner",
		"exp":      time.Now().Add(time.Hour).Unix(),
		"iat":      time.Now().Unix(),
	})

	w, c := runAuth(cfg, "Bearer "+token)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, uint(42), c.MustGet(ContextUserID))
	assert.Equal(t, "shopowner", c.MustGet(ContextUserType))
	assert.Equal(t, "owner@example.com", c.MustGet(ContextUserEmail))
}

func TestAuthMiddlewareMissingHeader(t *testing.T) {
	w, _ := runAuth(testConfig(), "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthMiddlewareWrongSecret(t *testing.T) {
	token := signToken(t, "other-secret", jwt.MapClaims{
		"sub":      float64(1),
		"userType": "user",
		"exp":      time.Now().Add(time.Hour).Unix(),
	})

	w, _ := runAuth(testConfig(), "Bearer "+token)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthMiddlewareExpiredToken(t *testing.T) {
	cfg := testConfig()

	token := signToken(t, cfg.JWTSecret, jwt.MapClaims{
		"sub":      float64(1),
		"userType": "user",
		"exp":      time.Now().Add(-time.Hour).Unix(),
	})

	w, _ := runAuth(cfg, "Bearer "+token)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequireRoles(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("allowed", func(t *testing.T) {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
		c.Set(ContextUserType, "shopowner")

		RequireRoles("staff", "shopowner")(c)
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("forbidden", func(t *testing.T) {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
		c.Set(ContextUserType, "user")

		RequireRoles("staff", "shopowner")(c)
		assert.Equal(t, http.StatusForbidden, w.Code)
	})
}
