// The sitescrape binary serves headlines scraped from a single news site.
// It shares the fetch→parse→filter shape of the main API but does no text
// analysis.
package main

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"newslens/internal/config"
	"newslens/internal/logger"
	"newslens/internal/sitescrape"
)

func main() {
	_ = godotenv.Load()

	cfg := config.Load()
	logger.Init(cfg.Debug)

	scraper := sitescrape.New(
		cfg.ScrapeSourceURL,
		cfg.ScrapeSourceName,
		cfg.ScrapeFeedURL,
		cfg.ScrapeMaxItems,
		cfg.RequestTimeout,
	)

	r := gin.New()
	r.Use(gin.Recovery())

	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "News Aggregator API"})
	})

	r.GET("/news", func(c *gin.Context) {
		items, err := scraper.Headlines(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"detail": err.Error()})
			return
		}
		c.JSON(http.StatusOK, items)
	})

	logger.Info("starting scrape server", "port", cfg.ScrapePort, "source", cfg.ScrapeSourceURL)
	if err := r.Run(":" + cfg.ScrapePort); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
