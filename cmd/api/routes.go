package main

import (
	"net/http"

	_ "is-map-gateway/docs"
	"is-map-gateway/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// setupRoutes configures all routes
func (a *App) setupRoutes() {
	a.setupHealthCheck()
	a.Router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Serve Swagger UI; regenerate docs with `swag init -g cmd/api/main.go`
	a.Router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	a.setupAPIRoutes()
}

// setupHealthCheck reports the process as up and names the backend it talks to
func (a *App) setupHealthCheck() {
	a.Router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "backend": a.MapClient.BaseURL()})
	})
}

// setupAPIRoutes configures API routes
func (a *App) setupAPIRoutes() {
	api := a.Router.Group("/api")
	{
		mapGroup := api.Group("/map")
		mapGroup.Use(middleware.TokenMiddleware())
		{
			mapGroup.GET("/configuration", a.MapHandler.GetConfiguration)
			mapGroup.GET("/domains", a.MapHandler.GetDomains)
			mapGroup.GET("/token", a.MapHandler.GetMapToken)
			mapGroup.GET("/reload", a.MapHandler.GetReload)
			mapGroup.PUT("/reload", a.MapHandler.SetReload)
		}
	}
}
