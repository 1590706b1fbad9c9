package jwtmw

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// Ginコンテキストに注入される認証済みアイデンティティのキー。
const (
	ContextUserID = "userID"
	ContextEmail  = "userEmail"
	ContextRole   = "userRole"
)

// Verifier はトークン検証のインターフェースを定義します。
// Goの慣例に従い、インターフェースはプロバイダーではなくコンシューマー（middleware）が定義します。
type Verifier interface {
	// Verify はトークンを検証し、クレームを返します。
	Verify(tokenStr string) (*Claims, error)
}

// AuthRequired returns a Gin middleware function that validates bearer tokens
// and restricts access to authenticated users only.
func AuthRequired(verifier Verifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		// 1. Get Authorization header
		auth := c.GetHeader("Authorization")
		if !strings.HasPrefix(auth, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing bearer token"})
			return
		}
		tokenStr := strings.TrimPrefix(auth, "Bearer ")
		if tokenStr == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing bearer token"})
			return
		}

		// 2. Verify token signature and expiry
		claims, err := verifier.Verify(tokenStr)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			return
		}

		// 3. Attach the authenticated identity to the request context
		c.Set(ContextUserID, claims.UserID)
		c.Set(ContextEmail, claims.Email)
		c.Set(ContextRole, claims.Role)

		// 4. Pass control to the next handler
		c.Next()
	}
}
