package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// HealthCheck is GET /health for monitoring probes.
func HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "healthy",
		"service":   "jobboard",
		"timestamp": time.Now().Unix(),
	})
}

// Root is GET /: the service banner.
func Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "jobboard API",
		"status":  "running",
		"api_v1":  "/api/v1",
		"health":  "/health",
	})
}
