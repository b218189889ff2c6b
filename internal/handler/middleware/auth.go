package middleware

import (
	"errors"
	"net/http"
	"strings"

	"nobat/internal/pkg/jwt"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const ctxBusinessIDKey = "business_id"

// AuthMiddleware resolves the calling business from a bearer token issued by
// the upstream auth service. The engine itself never issues tokens.
type AuthMiddleware struct {
	verifier *jwt.Verifier
}

func NewAuthMiddleware(verifier *jwt.Verifier) *AuthMiddleware {
	return &AuthMiddleware{verifier: verifier}
}

func (m *AuthMiddleware) RequireBusiness() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Access token required",
			})
			c.Abort()
			return
		}

		claims, err := m.verifier.Verify(token)
		if err != nil {
			msg := "Invalid token"
			if errors.Is(err, jwt.ErrExpiredToken) {
				msg = "Token expired"
			}
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": msg,
			})
			c.Abort()
			return
		}

		c.Set(ctxBusinessIDKey, claims.BusinessID)
		c.Next()
	}
}

func bearerToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
		return ""
	}
	return strings.TrimSpace(authHeader[len("Bearer "):])
}

func GetBusinessID(c *gin.Context) (uuid.UUID, bool) {
	v, exists := c.Get(ctxBusinessIDKey)
	if !exists {
		return uuid.Nil, false
	}

	id, ok := v.(uuid.UUID)
	return id, ok
}
