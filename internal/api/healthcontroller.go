package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"newslens/internal/metrics"
	"newslens/internal/textscore"
)

// RegisterHealthRoutes registers the health and metrics endpoints.
func RegisterHealthRoutes(r *gin.Engine, analyzer *textscore.Analyzer) {
	r.GET("/api/health", handleHealth(analyzer))
	r.GET("/api/metrics", handleMetrics)
}

// handleHealth reports liveness. A degraded analyzer is still healthy: the
// scorers keep serving fallback values.
func handleHealth(analyzer *textscore.Analyzer) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":    "healthy",
			"timestamp": time.Now().Format(time.RFC3339),
			"analyzer":  analyzer.State().String(),
		})
	}
}

// handleMetrics dumps the in-memory counters.
func handleMetrics(c *gin.Context) {
	c.JSON(http.StatusOK, metrics.Global.GetStats())
}
