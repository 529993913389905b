// Package server serves the overlay as XYZ map tiles over HTTP.
package server

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/gogpu/mapline/internal/metrics"
	"github.com/gogpu/mapline/internal/tilecache"
	"github.com/gogpu/mapline/tile"
)

// Options configures a Server. Zero fields take defaults.
type Options struct {
	Renderer *tile.Renderer
	Store    tilecache.Store
	Metrics  *metrics.Metrics
	Logger   *slog.Logger

	// Padding tightens the bounds of uploaded overlays; zero keeps world
	// bounds.
	Padding float64
	// WarmZoom is the deepest level pre-rendered after an overlay or
	// gradient change, at most tile.MaxWarmZoom. Negative disables warming.
	WarmZoom int
	// MaxAge is the Cache-Control max-age of tile responses.
	MaxAge time.Duration
}

// Server renders tiles of a tile.Layer and manages its overlay and gradient.
type Server struct {
	layer    *tile.Layer
	renderer *tile.Renderer
	store    tilecache.Store
	metrics  *metrics.Metrics
	log      *slog.Logger
	padding  float64
	warmZoom int
	maxAge   time.Duration
	started  time.Time

	warm chan struct{}
}

// New creates a server for layer.
func New(layer *tile.Layer, opts Options) *Server {
	s := &Server{
		layer:    layer,
		renderer: opts.Renderer,
		store:    opts.Store,
		metrics:  opts.Metrics,
		log:      opts.Logger,
		padding:  opts.Padding,
		warmZoom: min(opts.WarmZoom, tile.MaxWarmZoom),
		maxAge:   opts.MaxAge,
		started:  time.Now(),
		warm:     make(chan struct{}, 1),
	}
	if s.renderer == nil {
		s.renderer = tile.NewRenderer()
	}
	if s.store == nil {
		s.store = tilecache.NewMemory(1024)
	}
	if s.metrics == nil {
		s.metrics = metrics.New()
	}
	if s.log == nil {
		s.log = slog.Default()
	}
	if s.maxAge == 0 {
		s.maxAge = time.Minute
	}
	return s
}

// Router returns the HTTP handler.
func (s *Server) Router() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), s.requestLogger(), s.metrics.Middleware())

	r.GET("/healthz", s.health)
	r.GET("/metrics", gin.WrapH(s.metrics.Handler()))

	r.GET("/tiles/:z/:x/:y", s.getTile)
	r.GET("/overlay", s.getOverlay)
	r.PUT("/overlay", s.putOverlay)
	r.GET("/gradient", s.getGradient)
	r.PUT("/gradient", s.putGradient)
	return r
}

func (s *Server) requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		level := slog.LevelDebug
		if c.Writer.Status() >= http.StatusInternalServerError {
			level = slog.LevelError
		}
		s.log.Log(c.Request.Context(), level, "http request",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"duration", time.Since(start))
	}
}
