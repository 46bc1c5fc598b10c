package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

const (
	ctxUserID    = "userId"
	ctxUserEmail = "userEmail"
)

// authGate guards protected routes: it extracts the bearer token, verifies
// it, and stores the caller identity in the Gin context. Any failure aborts
// with 401 before the handler runs.
func (h *Handler) authGate(c *gin.Context) {
	header := c.GetHeader("Authorization")
	if header == "" {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
			"error": "missing Authorization header",
		})
		return
	}

	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || parts[0] != "Bearer" {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
			"error": "invalid Authorization header format",
		})
		return
	}

	identity, err := h.services.ParseToken(parts[1])
	if err != nil {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
			"error": "invalid or expired token",
		})
		return
	}

	// store in Gin context
	c.Set(ctxUserID, identity.UserID)
	c.Set(ctxUserEmail, identity.Email)
	c.Next()
}

// callerID returns the authenticated user id stored by authGate.
func callerID(c *gin.Context) string {
	return c.GetString(ctxUserID)
}
