package main

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"ghala.backend/internal/interfaces/http/middleware"
)

func applyCORSMiddleware(r *gin.Engine) {
	r.Use(middleware.CORSMiddleware())
}

func registerHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"service": "ghala-backend",
			"time":    time.Now().UTC().Format(time.RFC3339),
		})
	})
}

func registerMetricsRoute(r *gin.Engine) {
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
}
