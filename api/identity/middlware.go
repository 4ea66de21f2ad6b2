package identity

import (
	"net/http"
	"strings"

	"github.com/beka-birhanu/wallmaze/infrastruture/token"
	"github.com/beka-birhanu/wallmaze/service/i"
	"github.com/gin-gonic/gin"
)

const (
	// ContextEditorClaims is the key used to store token claims in the Gin context.
	ContextEditorClaims = "editorClaims"

	// ScopeMazeWrite grants the maze mutation routes.
	ScopeMazeWrite = "maze:write"
)

// Authoriz admits requests carrying a valid bearer token that holds scope.
func Authoriz(ts i.Tokenizer, scope string) gin.HandlerFunc {
	return func(c *gin.Context) {
		// Retrieve the access token from the Authorization header.
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatus(http.StatusUnauthorized)
			return
		}

		// Split the "Bearer" prefix from the token.
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
			c.AbortWithStatus(http.StatusUnauthorized)
			return
		}

		claims, err := ts.Decode(parts[1])
		if err != nil {
			c.AbortWithStatus(http.StatusUnauthorized)
			return
		}

		if !token.HasScope(claims, scope) {
			c.AbortWithStatus(http.StatusForbidden)
			return
		}

		c.Set(ContextEditorClaims, claims)
		c.Next()
	}
}
