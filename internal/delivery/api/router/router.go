// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"portfolio/config"
	"portfolio/internal/delivery/api/middleware"
	"portfolio/internal/delivery/api/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler      *handler.AuthHandler
	ProjectHandler   *handler.ProjectHandler
	BlogHandler      *handler.BlogHandler
	SkillHandler     *handler.SkillHandler
	ContactHandler   *handler.ContactHandler
	AnalyticsHandler *handler.AnalyticsHandler
	AIHandler        *handler.AIHandler
	AuthMiddleware   *middleware.AuthMiddleware
	Config           *config.Config
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler      *handler.AuthHandler
	projectHandler   *handler.ProjectHandler
	blogHandler      *handler.BlogHandler
	skillHandler     *handler.SkillHandler
	contactHandler   *handler.ContactHandler
	analyticsHandler *handler.AnalyticsHandler
	aiHandler        *handler.AIHandler
	authMiddleware   *middleware.AuthMiddleware
	config           *config.Config
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:      params.AuthHandler,
		projectHandler:   params.ProjectHandler,
		blogHandler:      params.BlogHandler,
		skillHandler:     params.SkillHandler,
		contactHandler:   params.ContactHandler,
		analyticsHandler: params.AnalyticsHandler,
		aiHandler:        params.AIHandler,
		authMiddleware:   params.AuthMiddleware,
		config:           params.Config,
	}
}

// RegisterRoutes sets up all the API routes under the configured base path.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	api := e.Group(r.config.HTTP.BasePath)
	admin := r.authMiddleware.Authenticate

	// Auth routes
	authGroup := api.Group("/auth")
	{
		authGroup.POST("/register", r.authHandler.Register)
		authGroup.POST("/login", r.authHandler.Login)
		authGroup.GET("/me", r.authHandler.Me, admin)
	}

	projectsGroup := api.Group("/projects")
	{
		projectsGroup.GET("", r.projectHandler.List)
		projectsGroup.GET("/:slug", r.projectHandler.Get)
		projectsGroup.GET("/:slug/qr", r.projectHandler.QRCode)
		projectsGroup.POST("", r.projectHandler.Create, admin)
		projectsGroup.PUT("/:slug", r.projectHandler.Update, admin)
		projectsGroup.DELETE("/:slug", r.projectHandler.Delete, admin)
	}

	blogGroup := api.Group("/blog")
	{
		blogGroup.GET("", r.blogHandler.List)
		blogGroup.GET("/:slug", r.blogHandler.Get)
		blogGroup.POST("", r.blogHandler.Create, admin)
		blogGroup.PUT("/:slug", r.blogHandler.Update, admin)
		blogGroup.DELETE("/:slug", r.blogHandler.Delete, admin)
	}

	skillsGroup := api.Group("/skills")
	{
		skillsGroup.GET("", r.skillHandler.List)
		skillsGroup.GET("/:id", r.skillHandler.Get)
		skillsGroup.POST("", r.skillHandler.Create, admin)
		skillsGroup.PUT("/:id", r.skillHandler.Update, admin)
		skillsGroup.DELETE("/:id", r.skillHandler.Delete, admin)
	}

	contactGroup := api.Group("/contact")
	{
		contactGroup.POST("", r.contactHandler.Submit)
		contactGroup.GET("", r.contactHandler.List, admin)
		contactGroup.PATCH("/:id/read", r.contactHandler.MarkRead, admin)
	}

	analyticsGroup := api.Group("/analytics")
	{
		analyticsGroup.POST("/track", r.analyticsHandler.TrackView)
		analyticsGroup.GET("", r.analyticsHandler.Summary, admin)
		analyticsGroup.GET("/details", r.analyticsHandler.Details, admin)
	}

	api.POST("/ai/chat", r.aiHandler.Chat)
}
