package http

import (
	"net/http"
	"strings"

	"github.com/Lexv0lk/funds-service/internal/funds/domain"
	"github.com/Lexv0lk/funds-service/internal/pkg/jwt"
	"github.com/gin-gonic/gin"
)

const (
	authHeaderName = "Authorization"
	UserContextKey = "user"
)

// NewAuthMiddleware accepts HS256 bearer tokens and stores the caller as a
// domain.User under UserContextKey.
func NewAuthMiddleware(parser jwt.TokenParser, secret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader(authHeaderName)
		if header == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"errors": "missing authorization header"})
			return
		}

		parts := strings.Split(header, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"errors": "invalid auth header"})
			return
		}

		claims, err := parser.ParseToken(secret, parts[1])
		if err != nil || claims.Username == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"errors": "invalid token"})
			return
		}

		c.Set(jwt.TokenContextKey, parts[1])
		c.Set(UserContextKey, domain.User{
			Name:           claims.Username,
			AccountNumbers: claims.AccountNumbers,
		})
		c.Next()
	}
}

func userFromContext(c *gin.Context) (domain.User, bool) {
	value, exists := c.Get(UserContextKey)
	if !exists {
		return domain.User{}, false
	}

	user, ok := value.(domain.User)
	return user, ok
}
