package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// UserIDKey is where Auth stores the authenticated user id.
const UserIDKey = "user_id"

// TokenParser validates a bearer token and returns the user it was issued to.
type TokenParser interface {
	ParseToken(token string) (int64, error)
}

// Auth requires an "Authorization: Bearer <token>" header. Missing or invalid
// tokens are answered with 401 before reaching the handler.
func Auth(parser TokenParser) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		scheme, token, ok := strings.Cut(header, " ")
		if !ok || !strings.EqualFold(scheme, "Bearer") || strings.TrimSpace(token) == "" {
			AbortWithError(c, http.StatusUnauthorized, "missing bearer token", nil)
			return
		}

		id, err := parser.ParseToken(strings.TrimSpace(token))
		if err != nil {
			AbortWithError(c, http.StatusUnauthorized, "invalid token", nil)
			return
		}

		c.Set(UserIDKey, id)
		c.Next()
	}
}

// UserID returns the id set by Auth.
func UserID(c *gin.Context) (int64, bool) {
	v, ok := c.Get(UserIDKey)
	if !ok {
		return 0, false
	}
	id, ok := v.(int64)
	return id, ok
}
