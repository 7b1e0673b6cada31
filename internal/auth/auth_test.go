package auth

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-signing-key-for-jwt-operations"

// signToken builds a signed token with the given claims for test use
func signToken(t *testing.T, secret string, claims *Claims) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	require.NoError(t, err)
	return signed
}

func TestValidateToken(t *testing.T) {
	service := NewService(testSecret)

	t.Run("valid token", func(t *testing.T) {
		tokenString := signToken(t, testSecret, &Claims{
			Email: "analyst@test.com",
			Name:  "Analyst",
			RegisteredClaims: jwt.RegisteredClaims{
				ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
			},
		})

		claims, err := service.ValidateToken(tokenString)
		require.NoError(t, err)
		assert.Equal(t, "analyst@test.com", claims.Email)
		assert.Equal(t, "Analyst", claims.Name)
	})

	t.Run("wrong signing key", func(t *testing.T) {
		tokenString := signToken(t, "some-other-key", &Claims{
			Email: "analyst@test.com",
			RegisteredClaims: jwt.RegisteredClaims{
				ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
			},
		})

		_, err := service.ValidateToken(tokenString)
		assert.Error(t, err)
	})

	t.Run("expired token", func(t *testing.T) {
		tokenString := signToken(t, testSecret, &Claims{
			Email: "analyst@test.com",
			RegisteredClaims: jwt.RegisteredClaims{
				ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
			},
		})

		_, err := service.ValidateToken(tokenString)
		assert.Error(t, err)
	})

	t.Run("missing email claim", func(t *testing.T) {
		tokenString := signToken(t, testSecret, &Claims{
			RegisteredClaims: jwt.RegisteredClaims{
				ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
			},
		})

		_, err := service.ValidateToken(tokenString)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "no email claim")
	})

	t.Run("garbage token", func(t *testing.T) {
		_, err := service.ValidateToken("not-a-jwt")
		assert.Error(t, err)
	})
}

func TestRequireAuth(t *testing.T) {
	gin.SetMode(gin.TestMode)

	newRouter := func() *gin.Engine {
		service := NewService(testSecret)
		middleware := NewMiddleware(service)

		router := gin.New()
		router.Use(middleware.RequireAuth())
		router.GET("/probe", func(c *gin.Context) {
			principal, ok := Principal(c)
			c.JSON(http.StatusOK, gin.H{"principal": principal, "ok": ok})
		})
		return router
	}

	t.Run("missing authorization header", func(t *testing.T) {
		router := newRouter()
		recorder := httptest.NewRecorder()
		req := httptest.NewRequest("GET", "/probe", nil)

		router.ServeHTTP(recorder, req)
		assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	})

	t.Run("malformed authorization header", func(t *testing.T) {
		router := newRouter()
		recorder := httptest.NewRecorder()
		req := httptest.NewRequest("GET", "/probe", nil)
		req.Header.Set("Authorization", "Token abc")

		router.ServeHTTP(recorder, req)
		assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	})

	t.Run("invalid token", func(t *testing.T) {
		router := newRouter()
		recorder := httptest.NewRecorder()
		req := httptest.NewRequest("GET", "/probe", nil)
		req.Header.Set("Authorization", "Bearer not-a-jwt")

		router.ServeHTTP(recorder, req)
		assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	})

	t.Run("valid token resolves the principal", func(t *testing.T) {
		tokenString := signToken(t, testSecret, &Claims{
			Email: "analyst@test.com",
			RegisteredClaims: jwt.RegisteredClaims{
				ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
			},
		})

		router := newRouter()
		recorder := httptest.NewRecorder()
		req := httptest.NewRequest("GET", "/probe", nil)
		req.Header.Set("Authorization", "Bearer "+tokenString)

		router.ServeHTTP(recorder, req)
		require.Equal(t, http.StatusOK, recorder.Code)

		var body map[string]interface{}
		require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
		assert.Equal(t, "analyst@test.com", body["principal"])
		assert.Equal(t, true, body["ok"])
	})
}

func TestPrincipal(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("absent principal", func(t *testing.T) {
		c, _ := gin.CreateTestContext(httptest.NewRecorder())
		principal, ok := Principal(c)
		assert.False(t, ok)
		assert.Empty(t, principal)
	})

	t.Run("present principal", func(t *testing.T) {
		c, _ := gin.CreateTestContext(httptest.NewRecorder())
		c.Set(ContextKeyPrincipal, "analyst@test.com")
		principal, ok := Principal(c)
		assert.True(t, ok)
		assert.Equal(t, "analyst@test.com", principal)
	})
}
