package middleware

import (
	"strings"

	"is-map-gateway/pkg/maps"

	"github.com/gin-gonic/gin"
)

const tokenKey = "map_token"

// TokenMiddleware picks up the caller's token so handlers can forward it to
// the map backend. The token is opaque here and is never validated.
func TokenMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := c.GetHeader(maps.TokenHeader)
		if token == "" {
			authHeader := c.GetHeader("Authorization")
			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
				token = strings.TrimSpace(parts[1])
			}
		}
		c.Set(tokenKey, token)
		c.Next()
	}
}

// Token returns the token stored by TokenMiddleware.
func Token(c *gin.Context) string {
	return c.GetString(tokenKey)
}
