package middleware

import (
	"context"
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

type staticChecker struct{ revoked map[string]bool }

func (c staticChecker) IsRevoked(_ context.Context, token string) (bool, error) {
	return c.revoked[token], nil
}

func signToken(t *testing.T, role string, ttl time.Duration) string {
	t.Helper()
	claims := jwt.MapClaims{
		"user_id":  "11111111-1111-1111-1111-111111111111",
		"username": "tester",
		"role":     role,
		"exp":      time.Now().Add(ttl).Unix(),
		"iat":      time.Now().Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	require.NoError(t, err)
	return token
}

func protectedRouter(checker TokenChecker, roles ...string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	handlers := []gin.HandlerFunc{JWTAuth(testSecret, checker)}
	if len(roles) > 0 {
		handlers = append(handlers, RequireRole(roles...))
	}
	handlers = append(handlers, func(c *gin.Context) {
		claims := GetClaims(c)
		c.JSON(http.StatusOK, gin.H{"username": claims.Username, "role": claims.Role})
	})
	r.GET("/secure", handlers...)
	return r
}

func doGet(r *gin.Engine, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/secure", nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestJWTAuth_ValidToken(t *testing.T) {
	r := protectedRouter(nil)
	w := doGet(r, signToken(t, "staff", time.Hour))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"username":"tester"`)
}

func TestJWTAuth_MissingHeader(t *testing.T) {
	r := protectedRouter(nil)
	w := doGet(r, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestJWTAuth_ExpiredToken(t *testing.T) {
	r := protectedRouter(nil)
	w := doGet(r, signToken(t, "staff", -time.Minute))
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestJWTAuth_WrongSecret(t *testing.T) {
	claims := jwt.MapClaims{"role": "staff", "exp": time.Now().Add(time.Hour).Unix()}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("other-secret"))
	require.NoError(t, err)

	r := protectedRouter(nil)
	w := doGet(r, token)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestJWTAuth_RevokedToken(t *testing.T) {
	token := signToken(t, "staff", time.Hour)
	r := protectedRouter(staticChecker{revoked: map[string]bool{token: true}})

	w := doGet(r, token)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequireRole(t *testing.T) {
	r := protectedRouter(nil, "admin")

	w := doGet(r, signToken(t, "admin", time.Hour))
	assert.Equal(t, http.StatusOK, w.Code)

	w = doGet(r, signToken(t, "staff", time.Hour))
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestRequireRole_MultipleAllowed(t *testing.T) {
	r := protectedRouter(nil, "staff", "admin")

	for _, role := range []string{"staff", "admin"} {
		w := doGet(r, signToken(t, role, time.Hour))
		assert.Equal(t, http.StatusOK, w.Code, "role %s", role)
	}
}
