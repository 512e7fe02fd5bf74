package middleware

import (
	"context"
	"net/http"
	"strings"

	"shopstock/internal/apierror"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

const (
	ClaimsKey = "claims"
	TokenKey  = "raw_token"
)

// TokenChecker reports whether an otherwise-valid token has been revoked
// (logged out). A nil checker disables revocation checks.
type TokenChecker interface {
	IsRevoked(ctx context.Context, token string) (bool, error)
}

// JWTClaims are the custom claims embedded in every access token.
type JWTClaims struct {
	UserID   string `json:"user_id"`
	Username string `json:"username"`
	Role     string `json:"role"`
	jwt.RegisteredClaims
}

// JWTAuth validates the Bearer token on every protected route and rejects
// tokens that were denylisted by logout.
func JWTAuth(secret string, revoked TokenChecker) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" || !strings.HasPrefix(header, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, apierror.New("authentication required"))
			return
		}

		tokenStr := strings.TrimPrefix(header, "Bearer ")
		claims := &JWTClaims{}
		token, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrSignatureInvalid
			}
			return []byte(secret), nil
		})

		if err != nil || !token.Valid {
			c.AbortWithStatusJSON(http.StatusUnauthorized, apierror.New("invalid or expired token"))
			return
		}

		if revoked != nil {
			if isRevoked, err := revoked.IsRevoked(c.Request.Context(), tokenStr); err == nil && isRevoked {
				c.AbortWithStatusJSON(http.StatusUnauthorized, apierror.New("invalid or expired token"))
				return
			}
		}

		c.Set(ClaimsKey, claims)
		c.Set(TokenKey, tokenStr)
		c.Next()
	}
}

// RequireRole rejects requests whose JWT role is not in the allowed list.
func RequireRole(roles ...string) gin.HandlerFunc {
	allowed := make(map[string]bool, len(roles))
	for _, r := range roles {
		allowed[r] = true
	}
	return func(c *gin.Context) {
		claims, ok := c.MustGet(ClaimsKey).(*JWTClaims)
		if !ok || !allowed[claims.Role] {
			c.AbortWithStatusJSON(http.StatusForbidden, apierror.New("insufficient permissions"))
			return
		}
		c.Next()
	}
}

// GetClaims is a helper to retrieve typed claims from the Gin context.
func GetClaims(c *gin.Context) *JWTClaims {
	claims, _ := c.MustGet(ClaimsKey).(*JWTClaims)
	return claims
}

// GetRawToken returns the bearer token string stored by JWTAuth.
func GetRawToken(c *gin.Context) string {
	return c.GetString(TokenKey)
}
