package api

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

// NewServer creates a new HTTP server with all routes configured
func NewServer(handler *Handler, clearLimit rate.Limit, clearBurst int) *gin.Engine {
	// Set Gin mode (can be controlled via GIN_MODE environment variable)
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()

	// Middleware
	r.Use(requestID())

	r.Use(gin.LoggerWithConfig(gin.LoggerConfig{
		Formatter: func(param gin.LogFormatterParams) string {
			return fmt.Sprintf("%s - [%s] \"%s %s %s %d %s \"%s\" %s\" %s\n",
				param.ClientIP,
				param.TimeStamp.Format(time.RFC3339),
				param.Method,
				param.Path,
				param.Request.Proto,
				param.StatusCode,
				param.Latency,
				param.Request.UserAgent(),
				param.ErrorMessage,
				param.Request.Header.Get(requestIDHeader),
			)
		},
	}))

	r.Use(gin.Recovery())

	setupRoutes(r, handler, newClientLimiter(clearLimit, clearBurst))

	return r
}

// setupRoutes configures all the application routes
func setupRoutes(r *gin.Engine, handler *Handler, clearLimiter *clientLimiter) {
	r.GET("/", handler.GetIndex)
	r.GET("/fragments/articles", handler.GetArticlesFragment)

	actions := r.Group("/actions")
	{
		actions.POST("/clear", clearLimiter.middleware(), handler.PostClear)
		actions.GET("/stats", handler.GetStats)
	}

	r.GET("/feed.xml", handler.GetFeed)
	r.GET("/health", handler.GetHealth)

	// Favicon handler (return 204 to avoid 404s)
	r.GET("/favicon.ico", func(c *gin.Context) {
		c.Status(204)
	})
}
