package api

import (
	"github.com/gin-gonic/gin"
)

// SetupRoutes configures all API routes
func SetupRoutes(router *gin.Engine, handler *Handler) {
	// Health and readiness checks
	router.GET("/health", handler.HealthCheck)
	router.GET("/ready", handler.ReadyCheck)

	// Prometheus metrics
	if handler.telemetry != nil {
		router.GET("/metrics", gin.WrapH(handler.telemetry.Handler()))
	}

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		// Extraction endpoints
		extract := v1.Group("/extract")
		{
			extract.POST("", handler.Extract)              // POST /api/v1/extract
			extract.POST("/corpus", handler.ExtractCorpus) // POST /api/v1/extract/corpus
		}

		// Lexicon inspection
		v1.GET("/lexicons", handler.GetLexicons) // GET /api/v1/lexicons
	}
}
