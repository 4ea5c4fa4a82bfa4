// Package api exposes the simulator over HTTP.
package api

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

const (
	DefaultTimeout = 30 * time.Second
	MaxSweepRuns   = 256
	// MaxSamples caps the grid of one requested run.
	MaxSamples = 1_000_000
)

type Options struct {
	Logger  *slog.Logger
	Timeout time.Duration
	Origins []string
	Workers int
}

// NewRouter builds the gin engine with every route registered.
func NewRouter(opts Options) *gin.Engine {
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	if opts.Timeout <= 0 {
		opts.Timeout = DefaultTimeout
	}

	router := gin.New()
	router.Use(Recovery(opts.Logger))
	router.Use(CORS(opts.Origins))
	router.Use(Logger(opts.Logger))
	router.Use(Timeout(opts.Timeout))

	h := &Handler{logger: opts.Logger, workers: opts.Workers}

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	v1 := router.Group("/api/v1")
	{
		v1.GET("/presets", h.ListPresets)
		v1.POST("/simulate", h.Simulate)
		v1.POST("/sweep", h.Sweep)
	}

	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, ErrorResponse{
			Error: ErrorDetail{Code: "NOT_FOUND", Message: "no route for " + c.Request.URL.Path},
		})
	})

	return router
}
