package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"
)

// NewRouter wires all routes onto a new gin engine.
func NewRouter(places *PlacesHandler) *gin.Engine {
	r := gin.New()
	// identity keys may contain escaped slashes
	r.UseRawPath = true
	r.Use(gin.Recovery(), requestLogger())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "ok",
		})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := r.Group("/api")
	api.GET("/places", places.List)
	api.GET("/export.csv", places.Export)
	api.GET("/places/:key", places.Detail)
	api.POST("/places/:key/click", places.Click)
	api.POST("/places/:key/favorite", places.Favorite)
	api.GET("/regions", places.Regions)
	api.POST("/catalog/reload", places.Reload)

	return r
}

func requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		log.Debug().
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Int("status", c.Writer.Status()).
			Dur("latency", time.Since(start)).
			Msg("request")
	}
}
