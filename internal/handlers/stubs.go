package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Placeholder routes. These surfaces exist in the API contract but carry no
// real semantics yet; they return empty collections or endpoint markers.

func (h *Handler) registerStubRoutes(api *gin.RouterGroup) {
	videos := api.Group("/videos")
	{
		videos.GET("", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"videos": []any{}})
		})
		videos.POST("/upload", stubMessage("video upload endpoint"))
		videos.GET("/:id", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"video": nil})
		})
		videos.PUT("/:id", stubMessage("video update endpoint"))
		videos.DELETE("/:id", stubMessage("video delete endpoint"))
	}

	teams := api.Group("/teams")
	{
		teams.GET("", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"teams": []any{}})
		})
		teams.POST("", stubMessage("team create endpoint"))
		teams.POST("/:id/invite", stubMessage("team invite endpoint"))
		teams.GET("/:id/members", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"members": []any{}})
		})
	}

	templates := api.Group("/templates")
	{
		templates.GET("", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"templates": []any{}})
		})
		templates.GET("/:id", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"template": nil})
		})
	}

	analytics := api.Group("/analytics")
	{
		analytics.GET("/dashboard", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"stats": gin.H{}})
		})
		analytics.GET("/videos/:id", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"analytics": gin.H{}})
		})
	}
}

func stubMessage(msg string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": msg})
	}
}
