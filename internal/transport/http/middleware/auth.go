package middleware

import (
	"net/http"

	"contactbook/internal/token"
	"github.com/gin-gonic/gin"
)

// TokenHeader is the request header carrying the raw bearer token. The
// frontend sends the token verbatim, without an "Authorization: Bearer"
// envelope.
const TokenHeader = "x-auth-token"

const errUnauthorized = "Unauthorized"

// Auth verifies the x-auth-token header and sets "userID" in the gin
// context. Requests with a missing or invalid token are rejected with 401
// before the downstream handler runs.
func Auth(jwtKey []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, err := token.Parse(jwtKey, c.GetHeader(TokenHeader))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": errUnauthorized})
			return
		}

		c.Set("userID", userID)
		c.Next()
	}
}

// AuthOptional verifies the token when present but never rejects. On
// success "userID" is set; on absence or failure the request proceeds
// anonymously with no userID in the context. Read-only routes use this so
// guests get an empty result instead of an error.
func AuthOptional(jwtKey []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		if userID, err := token.Parse(jwtKey, c.GetHeader(TokenHeader)); err == nil {
			c.Set("userID", userID)
		}
		c.Next()
	}
}
