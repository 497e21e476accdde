package router

import (
	"net/http"

	"github.com/anonto42/reelshare/backend/internal/auth"
	"github.com/anonto42/reelshare/backend/internal/handlers"
	"github.com/anonto42/reelshare/backend/internal/metrics"
	"github.com/anonto42/reelshare/backend/internal/middleware"
	"github.com/anonto42/reelshare/backend/internal/store"
	"github.com/anonto42/reelshare/backend/pkg/storage"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

// Dependencies are the services the HTTP layer is built from
type Dependencies struct {
	Store      *store.Store
	Authorizer auth.Authorizer
	Media      storage.MediaStore
	Metrics    *metrics.Metrics
	Gatherer   prometheus.Gatherer
	// Identity attaches the caller identity; see middleware.JWTAuthMiddleware
	Identity echo.MiddlewareFunc
	Logger   *zap.Logger
}

// SetupRoutes configures all application routes and injects dependencies
func SetupRoutes(e *echo.Echo, deps Dependencies) {
	if deps.Metrics != nil {
		e.Use(middleware.RequestMetrics(deps.Metrics))
	}

	e.GET("/health", handlers.HealthCheck)
	if deps.Gatherer != nil {
		e.GET("/metrics", echo.WrapHandler(promhttp.HandlerFor(deps.Gatherer, promhttp.HandlerOpts{})))
	}
	e.GET("/", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"message": "reelshare api"})
	})

	api := e.Group("/api/v1")
	if deps.Identity != nil {
		api.Use(deps.Identity)
	}

	userHandler := handlers.NewUserHandler(deps.Store, deps.Metrics)
	userHandler.RegisterProfileRoutes(api)

	postHandler := handlers.NewPostHandler(deps.Store, deps.Metrics)
	postHandler.RegisterPostRoutes(api)

	feedHandler := handlers.NewFeedHandler(deps.Store)
	feedHandler.RegisterFeedRoutes(api)

	commentHandler := handlers.NewCommentHandler(deps.Store, deps.Metrics)
	commentHandler.RegisterCommentRoutes(api)

	likeHandler := handlers.NewLikeHandler(deps.Store, deps.Metrics)
	likeHandler.RegisterLikeRoutes(api)

	followHandler := handlers.NewFollowHandler(deps.Store, deps.Metrics)
	followHandler.RegisterFollowRoutes(api)

	analyticsHandler := handlers.NewAnalyticsHandler(deps.Store, deps.Metrics)
	analyticsHandler.RegisterAnalyticsRoutes(api)

	if deps.Media != nil {
		mediaHandler := handlers.NewMediaHandler(deps.Media, deps.Authorizer, deps.Logger)
		mediaHandler.RegisterMediaRoutes(api)
	}

	deps.Logger.Info("all routes configured", zap.Int("routes", len(e.Routes())))
}
