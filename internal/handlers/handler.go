package handlers

import (
	"time"

	"portfolio/internal/logger"
	"portfolio/internal/service"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Handler wires the HTTP layer to services and logging.
type Handler struct {
	services *service.Service
	log      *logger.Logger

	uploadDir      string
	allowedOrigins []string
}

// Option tweaks handler construction beyond the required dependencies.
type Option func(*Handler)

// WithUploadDir enables static serving of stored uploads from dir.
func WithUploadDir(dir string) Option {
	return func(h *Handler) { h.uploadDir = dir }
}

// WithAllowedOrigins sets the CORS allow-list for browser clients.
func WithAllowedOrigins(origins []string) Option {
	return func(h *Handler) { h.allowedOrigins = origins }
}

// NewHandler constructs a new HTTP handler with dependencies.
func NewHandler(services *service.Service, log *logger.Logger, opts ...Option) *Handler {
	h := &Handler{services: services, log: log}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// InitRoutes builds and returns the Gin router with all routes registered.
func (h *Handler) InitRoutes() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())

	if len(h.allowedOrigins) > 0 {
		router.Use(cors.New(cors.Config{
			AllowOrigins:     h.allowedOrigins,
			AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowHeaders:     []string{"Authorization", "Content-Type"},
			AllowCredentials: true,
			MaxAge:           12 * time.Hour,
		}))
	}

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health endpoint
	router.GET("/health", h.health)

	// Auth endpoints
	h.registerAuthRoutes(router)

	// Page routes only implement the redirect matrix; rendering is the
	// frontend's concern.
	h.registerPageRoutes(router)

	// Public portfolio read + stored uploads
	router.GET("/portfolio/:username", h.getPortfolio)
	if h.uploadDir != "" {
		router.Static("/uploads", h.uploadDir)
	}

	// Versioned API endpoints (protected)
	h.registerAPIRoutes(router)

	// Live dashboard preview over WebSocket, same port
	router.GET("/ws/portfolio", h.wsPortfolio)

	return router
}

func (h *Handler) registerAuthRoutes(r *gin.Engine) {
	auth := r.Group("/auth")
	{
		auth.POST("/signup", h.signUp)
		auth.POST("/signin", h.signIn)
		auth.POST("/signout", h.signOut)
	}
}

func (h *Handler) registerPageRoutes(r *gin.Engine) {
	r.GET("/", h.redirectRoot)
	r.GET("/auth/signin", h.redirectAuthPage)
	r.GET("/auth/signup", h.redirectAuthPage)
	r.GET("/dashboard", h.requirePage)
	r.GET("/dashboard/*rest", h.requirePage)
}

func (h *Handler) registerAPIRoutes(r *gin.Engine) {
	api := r.Group("/api/v1", h.userIdMiddleware)
	{
		h.registerProfileRoutes(api)
	}
}

func (h *Handler) registerProfileRoutes(api *gin.RouterGroup) {
	profile := api.Group("/profile")
	{
		profile.GET("", h.getProfile)
		profile.PUT("", h.updateProfile)
		profile.POST("/upload", h.uploadFile)

		skills := profile.Group("/skills")
		{
			skills.GET("", h.listSkills)
			skills.POST("", h.createSkill)
			skills.PUT("", h.updateSkill)
			skills.DELETE("", h.deleteSkill)
			skills.POST("/upload", h.uploadFile)
		}

		projects := profile.Group("/projects")
		{
			projects.GET("", h.listProjects)
			projects.POST("", h.createProject)
			projects.PUT("", h.updateProject)
			projects.DELETE("", h.deleteProject)
		}

		contacts := profile.Group("/contacts")
		{
			contacts.GET("", h.listContacts)
			contacts.POST("", h.createContact)
			contacts.PUT("", h.updateContact)
			contacts.DELETE("", h.deleteContact)
		}

		// Reduced public field set; must come after the literal groups.
		profile.GET("/:userId", h.getProfileByID)
	}
}
