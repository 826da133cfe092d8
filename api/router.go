package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/seo-optimizer/discoverability/analyzer"
	"github.com/seo-optimizer/discoverability/logging"
	"github.com/seo-optimizer/discoverability/metrics"
	"github.com/seo-optimizer/discoverability/middleware"
)

// Server bundles what the HTTP handlers need
type Server struct {
	analyzer    *analyzer.Analyzer
	stats       *logging.Statistics
	metrics     *metrics.Metrics
	rateLimiter *middleware.RateLimiter
	logger      *zap.Logger
	chartTitle  string
}

// Deps are the collaborators of a Server
type Deps struct {
	Analyzer    *analyzer.Analyzer
	Stats       *logging.Statistics
	Metrics     *metrics.Metrics
	RateLimiter *middleware.RateLimiter
	Logger      *zap.Logger
	ChartTitle  string
}

// NewServer creates a Server from its dependencies
func NewServer(d Deps) *Server {
	logger := d.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Server{
		analyzer:    d.Analyzer,
		stats:       d.Stats,
		metrics:     d.Metrics,
		rateLimiter: d.RateLimiter,
		logger:      logger,
		chartTitle:  d.ChartTitle,
	}
}

// Router builds the gin engine with middleware and routes
func (s *Server) Router() *gin.Engine {
	r := gin.New()

	r.Use(middleware.RequestID())
	r.Use(middleware.ErrorHandler(s.logger))
	r.Use(middleware.AccessLog(s.logger))
	r.Use(middleware.CORS())
	r.Use(middleware.Stats(s.stats, s.metrics))

	r.GET("/metrics", gin.WrapH(s.metrics.Handler()))

	api := r.Group("/api")
	{
		api.GET("/health", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{
				"status": "ok",
			})
		})

		api.GET("/statistics", func(c *gin.Context) {
			c.JSON(http.StatusOK, s.stats.Snapshot())
		})

		analyze := api.Group("")
		if s.rateLimiter != nil {
			analyze.Use(s.rateLimiter.RateLimit())
		}
		analyze.POST("/analyze", s.analyzeURL)
	}

	return r
}
