package server

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/gogpu/mapline"
	"github.com/gogpu/mapline/internal/config"
	"github.com/gogpu/mapline/internal/geoio"
	"github.com/gogpu/mapline/internal/tilecache"
	"github.com/gogpu/mapline/tile"
)

const (
	contentTypePNG     = "image/png"
	contentTypeGeoJSON = "application/geo+json"

	maxOverlayBytes = 8 << 20
)

func (s *Server) health(c *gin.Context) {
	snap := s.layer.Snapshot()
	c.JSON(http.StatusOK, gin.H{
		"status":      "healthy",
		"uptime":      time.Since(s.started).String(),
		"version":     mapline.Version,
		"fingerprint": fingerprint(snap),
	})
}

func fingerprint(snap *tile.Snapshot) string {
	return fmt.Sprintf("%016x", snap.Fingerprint)
}

func (s *Server) getTile(c *gin.Context) {
	coord, err := tile.ParseCoord(c.Param("z"), c.Param("x"), strings.TrimSuffix(c.Param("y"), ".png"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	snap := s.layer.Snapshot()
	etag := `"` + fingerprint(snap) + `"`
	c.Header("ETag", etag)
	c.Header("Cache-Control", fmt.Sprintf("public, max-age=%d", int(s.maxAge.Seconds())))
	if c.GetHeader("If-None-Match") == etag {
		c.Status(http.StatusNotModified)
		return
	}

	data, err := s.tile(c, snap, coord)
	if err != nil {
		s.log.Error("render tile", "tile", coord.String(), "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "render failed"})
		return
	}
	c.Data(http.StatusOK, contentTypePNG, data)
}

// tile returns the encoded tile, from the store when present.
func (s *Server) tile(c *gin.Context, snap *tile.Snapshot, coord tile.Coord) ([]byte, error) {
	ctx := c.Request.Context()
	key := tilecache.Key(snap.Fingerprint, s.renderer.Size(), coord)

	data, ok, err := s.store.Get(ctx, key)
	switch {
	case err != nil:
		s.metrics.CacheRequests.WithLabelValues("error").Inc()
		s.log.Warn("tile cache get", "key", key, "error", err)
	case ok:
		s.metrics.CacheRequests.WithLabelValues("hit").Inc()
		return data, nil
	default:
		s.metrics.CacheRequests.WithLabelValues("miss").Inc()
	}

	data, err = s.render(snap, coord)
	if err != nil {
		return nil, err
	}
	if err := s.store.Set(ctx, key, data); err != nil {
		s.log.Warn("tile cache set", "key", key, "error", err)
	}
	return data, nil
}

func (s *Server) render(snap *tile.Snapshot, coord tile.Coord) ([]byte, error) {
	start := time.Now()
	data, err := s.renderer.RenderPNG(snap, coord)
	if err != nil {
		return nil, err
	}
	s.metrics.TilesRendered.Inc()
	s.metrics.TileRenderDuration.Observe(time.Since(start).Seconds())
	s.metrics.TileBytes.Observe(float64(len(data)))
	return data, nil
}

func (s *Server) getOverlay(c *gin.Context) {
	var points mapline.Polyline
	if o, ok := s.layer.Snapshot().Overlay.(*mapline.GradientPolylineOverlay); ok {
		points = o.Points()
	}
	data, err := geoio.EncodeLineString(points)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Data(http.StatusOK, contentTypeGeoJSON, data)
}

func (s *Server) putOverlay(c *gin.Context) {
	body, err := io.ReadAll(http.MaxBytesReader(c.Writer, c.Request.Body, maxOverlayBytes))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	points, err := geoio.ParsePolyline(body)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	snap := s.SetOverlay(points)
	c.JSON(http.StatusOK, gin.H{
		"points":      len(points),
		"fingerprint": fingerprint(snap),
	})
}

// SetOverlay replaces the overlay with one drawn through points.
func (s *Server) SetOverlay(points mapline.Polyline) *tile.Snapshot {
	var opts []mapline.OverlayOption
	if s.padding > 0 {
		opts = append(opts, mapline.WithTightBounds(s.padding))
	}
	snap := s.layer.Replace(mapline.NewGradientPolylineOverlay(points, opts...))
	s.metrics.OverlayUpdates.Inc()
	s.metrics.OverlayPoints.Set(float64(len(points)))
	s.log.Info("overlay replaced", "points", len(points), "fingerprint", fingerprint(snap))
	s.scheduleWarm()
	return snap
}

func (s *Server) getGradient(c *gin.Context) {
	c.JSON(http.StatusOK, config.GradientFromSpec(s.layer.Snapshot().Spec))
}

func (s *Server) putGradient(c *gin.Context) {
	var req config.GradientConfig
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	spec, err := req.Spec()
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}

	snap := s.layer.SetGradientSpec(spec)
	s.metrics.GradientUpdates.Inc()
	s.log.Info("gradient replaced", "fingerprint", fingerprint(snap))
	s.scheduleWarm()
	c.JSON(http.StatusOK, config.GradientFromSpec(spec))
}
