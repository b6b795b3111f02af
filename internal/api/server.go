// Package api exposes the analysis pipeline over HTTP.
package api

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"newslens/internal/textscore"
)

// NewRouter constructs a Gin engine with registered routes. CORS is wide
// open: the API is consumed by browser frontends on other origins.
func NewRouter(svc NewsService, analyzer *textscore.Analyzer) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(cors.New(cors.Config{
		AllowAllOrigins:  true,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"*"},
		AllowCredentials: false,
	}))

	RegisterNewsRoutes(r, svc)
	RegisterHealthRoutes(r, analyzer)
	return r
}
