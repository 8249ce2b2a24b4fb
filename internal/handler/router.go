package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"blog-service/internal/middleware"
)

// Handlers bundles everything the router needs.
type Handlers struct {
	Health   *HealthHandler
	Auth     *AuthHandler
	Accounts *AccountHandler
	Articles *ArticleHandler
	Comments *CommentHandler
	Exports  *ExportHandler

	Sessions middleware.SessionResolver
	Users    middleware.UserLoader
}

// NewRouter builds the Gin engine with all routes and middleware.
func NewRouter(h Handlers) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.Metrics())

	// Probes and metrics stay outside auth
	router.GET("/health", h.Health.Health)
	router.GET("/ready", h.Health.Ready)
	router.GET("/live", h.Health.Live)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Public surface
	router.GET("/", h.Health.Banner)
	router.POST("/accounts/register", h.Auth.Register)
	router.POST("/login", h.Auth.Login)
	router.POST("/logout", h.Auth.Logout)

	// Everything below requires a valid session, article reads included
	auth := router.Group("/")
	auth.Use(middleware.Auth(h.Sessions, h.Users))
	{
		auth.GET("/accounts/profile", h.Accounts.Profile)
		auth.PUT("/accounts/profile", h.Accounts.UpdateProfile)
		auth.DELETE("/accounts/users/:id", h.Accounts.RemoveUser)

		auth.GET("/articles", h.Articles.List)
		auth.GET("/articles/:id", h.Articles.Get)
		auth.POST("/articles", h.Articles.Create)
		auth.PUT("/articles/:id", h.Articles.Update)
		auth.DELETE("/articles/:id", h.Articles.Delete)
		auth.POST("/articles/:id/comments", h.Comments.Create)

		auth.GET("/articles/export", h.Exports.Export)
	}

	return router
}
