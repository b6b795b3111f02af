package api

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"newslens/internal/analyze"
	"newslens/internal/metrics"
)

// NewsService is what the news routes need from the pipeline.
type NewsService interface {
	Fetch(ctx context.Context, category, search string, page int) (*analyze.NewsResponse, error)
}

// RegisterNewsRoutes registers the news and category routes.
func RegisterNewsRoutes(r *gin.Engine, svc NewsService) {
	r.GET("/api/news", handleGetNews(svc))
	r.GET("/api/categories", handleGetCategories)
}

// handleGetNews fetches and analyzes one page of headlines.
// GET /api/news?category=general&search=...&page=1
func handleGetNews(svc NewsService) gin.HandlerFunc {
	return func(c *gin.Context) {
		metrics.Global.IncrementRequestsServed()

		category := c.DefaultQuery("category", "general")
		if !analyze.IsValidCategory(category) {
			c.JSON(http.StatusBadRequest, gin.H{"detail": "invalid category: " + category})
			return
		}

		page := 1
		if raw := c.Query("page"); raw != "" {
			parsed, err := strconv.Atoi(raw)
			if err != nil || parsed < 1 {
				c.JSON(http.StatusBadRequest, gin.H{"detail": "page must be an integer >= 1"})
				return
			}
			page = parsed
		}

		resp, err := svc.Fetch(c.Request.Context(), category, c.Query("search"), page)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"detail": err.Error()})
			return
		}
		c.JSON(http.StatusOK, resp)
	}
}

// handleGetCategories lists the available categories (excluding "all").
// GET /api/categories
func handleGetCategories(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"categories": analyze.Categories})
}
