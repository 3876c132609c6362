package api

import (
	"github.com/gin-gonic/gin"

	"github.com/llermaly/search-ui-ubi/internal/metrics"
)

// SetupRoutes configures all API routes.
func SetupRoutes(router *gin.Engine, handler *Handler, m *metrics.Metrics) {
	router.NoRoute(handler.NotFound)

	if m != nil {
		router.GET("/metrics", gin.WrapH(m.Handler()))
	}

	apiGroup := router.Group("/api")
	{
		apiGroup.POST("/search", handler.Search)
		apiGroup.POST("/autocomplete", handler.Autocomplete)
		apiGroup.POST("/analytics", handler.Analytics)
		apiGroup.POST("/click", handler.Click)
		apiGroup.GET("/health", handler.Health)
	}
}
