package main

import (
	"context"
	"net/http"
	"time"

	"is-map-gateway/internal/handlers"
	"is-map-gateway/internal/middleware"
	"is-map-gateway/pkg/config"
	"is-map-gateway/pkg/logger"
	"is-map-gateway/pkg/maps"
	"is-map-gateway/pkg/metrics"

	"github.com/gin-gonic/gin"
)

// App represents the application structure
type App struct {
	Config      *config.Config
	Logger      *logger.Logger
	Router      *gin.Engine
	MapClient   *maps.Client
	ViewState   *maps.ViewState
	MapHandler  *handlers.MapHandler
	RateLimiter *middleware.RateLimiter
	Server      *http.Server

	stopBackground context.CancelFunc
}

// Create and initialize a new App instance
func NewApp(cfg *config.Config) *App {
	app := &App{Config: cfg, Logger: logger.GlobalLogger}
	if app.Logger == nil {
		app.Logger = logger.InitLogger(nil, cfg.Log.Level)
	}

	// Initialize infrastructure
	app.initializeMetrics()
	app.initializeRateLimiter()

	// Initialize business logic
	app.initializeDependencies()

	// Initialize web layer
	app.initializeRouter()

	return app
}

// initialize Prometheus metrics
func (a *App) initializeMetrics() {
	metrics.Init()
}

// initialize the rate limiter and its idle sweeper
func (a *App) initializeRateLimiter() {
	rl := a.Config.RateLimit
	a.RateLimiter = middleware.NewRateLimiter(middleware.PerMinute(rl.RequestsPerMinute), rl.Burst)

	ctx, cancel := context.WithCancel(context.Background())
	a.stopBackground = cancel
	go a.RateLimiter.Cleanup(ctx, time.Hour)
}

// initialize all dependencies
func (a *App) initializeDependencies() {
	httpClient := &http.Client{
		Timeout:   a.Config.Map.Timeout,
		Transport: metrics.NewTransport(http.DefaultTransport),
	}
	a.MapClient = maps.NewClient(maps.URLConfig{URL: a.Config.Map.URL}, httpClient, a.Logger)
	a.ViewState = &maps.ViewState{}

	a.MapHandler = handlers.NewMapHandler(a.MapClient, a.ViewState)
}

// set up the Gin router with middleware and routes
func (a *App) initializeRouter() {
	a.Router = gin.New()
	a.setupMiddleware()
	a.setupRoutes()
}

// cleanup operations
func (a *App) cleanup() {
	if a.stopBackground != nil {
		a.stopBackground()
	}
}
