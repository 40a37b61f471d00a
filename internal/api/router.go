package api

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"gorm.io/gorm"

	"github.com/danaholt/giftwish/internal/auth"
	"github.com/danaholt/giftwish/internal/handlers"
	"github.com/danaholt/giftwish/internal/middleware"
	"github.com/danaholt/giftwish/internal/services"
	appErrors "github.com/danaholt/giftwish/pkg/errors"
	"github.com/danaholt/giftwish/pkg/mail"
	"github.com/danaholt/giftwish/pkg/response"
)

// Options collects the dependencies the router needs.
type Options struct {
	DB             *gorm.DB
	Registry       *auth.Registry
	Mailer         mail.Mailer
	BaseURL        string
	AllowedOrigins []string
}

// NewRouter builds the Gin engine, wires middleware and registers all routes.
func NewRouter(opts Options) (*gin.Engine, error) {
	if opts.DB == nil {
		return nil, fmt.Errorf("database handle must be provided")
	}
	if opts.Registry == nil {
		return nil, fmt.Errorf("session registry must be provided")
	}

	eventService, err := services.NewEventService(opts.DB, opts.Mailer, services.WithBaseURL(opts.BaseURL))
	if err != nil {
		return nil, err
	}
	itemService, err := services.NewItemService(opts.DB)
	if err != nil {
		return nil, err
	}
	claimService, err := services.NewClaimService(opts.DB, opts.Mailer)
	if err != nil {
		return nil, err
	}

	r := gin.New()

	r.Use(middleware.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.Metrics())
	r.Use(middleware.SecurityHeaders())
	r.Use(middleware.CORS(opts.AllowedOrigins))

	r.GET("/health", handlers.Health())
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	authHandler := handlers.NewAuthHandler(eventService, opts.Registry)
	eventHandler := handlers.NewEventHandler(eventService, opts.Registry)
	itemHandler := handlers.NewItemHandler(itemService)
	claimHandler := handlers.NewClaimHandler(claimService)

	// Public: event creation and the code exchange.
	r.POST("/api/events", eventHandler.Create)
	r.POST("/api/login", authHandler.Login)
	r.POST("/api/logout", authHandler.Logout)

	// Everything else requires a live session.
	protected := r.Group("/api")
	protected.Use(middleware.RequireSession(opts.Registry))
	{
		protected.GET("/events/:id", eventHandler.Detail)
		protected.POST("/events/:id/items", itemHandler.Create)
		protected.POST("/items/:id/claims", claimHandler.Create)
		protected.DELETE("/items/:id/claims", claimHandler.Delete)
	}

	r.NoRoute(func(c *gin.Context) {
		response.Error(c, appErrors.ErrNotFound)
	})

	return r, nil
}
