package handlers

import (
	"net/http"
	"time"

	"video_studio/internal/logger"
	"video_studio/internal/service"

	"github.com/gin-gonic/gin"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Handler wires HTTP layer to services and logging.
type Handler struct {
	services *service.Service
	log      *logger.Logger
}

// NewHandler constructs a new HTTP handler with dependencies.
func NewHandler(services *service.Service, log *logger.Logger) *Handler {
	return &Handler{services: services, log: log}
}

// Auth endpoints get a tighter per-IP budget than the rest of the API.
const (
	authRateLimitRPS   = 5
	authRateLimitBurst = 10
)

// InitRoutes builds and returns the Gin router with all routes registered.
func (h *Handler) InitRoutes() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health endpoint
	router.GET("/health", h.health)

	// Account endpoints
	h.registerAuthRoutes(router)

	// Protected API endpoints
	h.registerAPIRoutes(router)

	// Live activity feed (HTTP upgrade) — same port
	router.GET("/ws/activity", h.authGate, h.wsActivity)

	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "route not found"})
	})

	return router
}

func (h *Handler) registerAuthRoutes(r *gin.Engine) {
	auth := r.Group("/api/auth", rateLimit(authRateLimitRPS, authRateLimitBurst))
	{
		auth.POST("/signup", h.signUp)
		auth.POST("/login", h.login)
		auth.GET("/me", h.authGate, h.getMe)
		auth.POST("/logout", h.authGate, h.logout)
	}
}

func (h *Handler) registerAPIRoutes(r *gin.Engine) {
	api := r.Group("/api", h.authGate)
	{
		h.registerProjectRoutes(api)
		h.registerStubRoutes(api)
	}
}

func (h *Handler) registerProjectRoutes(api *gin.RouterGroup) {
	projects := api.Group("/projects")
	{
		projects.GET("", h.listProjects)
		projects.GET("/:id", h.getProject)
		projects.POST("", h.createProject)
		projects.PUT("/:id", h.updateProject)
		projects.DELETE("/:id", h.deleteProject)
	}
}

// @Summary      Health check
// @Tags         system
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       /health [get]
func (h *Handler) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "ok",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}
