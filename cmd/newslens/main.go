package main

import (
	"log"

	"github.com/joho/godotenv"

	"newslens/internal/analyze"
	"newslens/internal/api"
	"newslens/internal/config"
	"newslens/internal/logger"
	"newslens/internal/newsapi"
	"newslens/internal/textscore"
)

func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	cfg := config.Load()
	logger.Init(cfg.Debug)

	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	analyzer := textscore.New()
	if err := analyzer.Load(cfg.LexiconPath); err != nil {
		// A degraded analyzer still serves: every scorer falls back to its
		// documented default values.
		logger.Warn("analyzer load failed, serving degraded", "error", err)
	}

	client := newsapi.NewClient(cfg.NewsAPIURL, cfg.NewsAPIKey, cfg.RequestTimeout)
	svc := analyze.NewService(client, analyzer, cfg.PageSize)

	router := api.NewRouter(svc, analyzer)
	logger.Info("starting news API server", "port", cfg.Port)
	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
