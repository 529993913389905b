package server

import (
	"context"
	"errors"

	"github.com/gogpu/mapline"
	"github.com/gogpu/mapline/internal/tilecache"
	"github.com/gogpu/mapline/tile"
)

var errLayerChanged = errors.New("server: layer changed during warm-up")

// scheduleWarm asks a running Run loop to warm the current snapshot.
// Requests made while one is pending collapse into it.
func (s *Server) scheduleWarm() {
	if s.warmZoom < 0 {
		return
	}
	select {
	case s.warm <- struct{}{}:
	default:
	}
}

// Run warms the cache once, then again after every overlay or gradient
// change, until ctx is done.
func (s *Server) Run(ctx context.Context) {
	if s.warmZoom < 0 {
		<-ctx.Done()
		return
	}
	s.scheduleWarm()
	for {
		select {
		case <-ctx.Done():
			return
		case <-s.warm:
			n, err := s.Warm(ctx)
			if err != nil {
				s.log.Debug("tile warm-up stopped", "tiles", n, "error", err)
				continue
			}
			s.log.Info("tile warm-up done", "tiles", n)
		}
	}
}

// Warm renders into the store every tile of zoom levels 0 through the warm
// zoom that the current overlay touches. It stops early when ctx is done or
// the layer changes.
func (s *Server) Warm(ctx context.Context) (int, error) {
	snap := s.layer.Snapshot()
	o, ok := snap.Overlay.(*mapline.GradientPolylineOverlay)
	if !ok || o.PointCount() < 2 {
		return 0, nil
	}

	points := o.Points()
	halfWidth := snap.Spec.StrokeWidth()/2 + 1
	size := s.renderer.Size()
	n := 0
	for z := 0; z <= s.warmZoom; z++ {
		for _, c := range tile.Cover(points, uint32(z), size, halfWidth) {
			if err := ctx.Err(); err != nil {
				return n, err
			}
			if s.layer.Snapshot() != snap {
				return n, errLayerChanged
			}

			key := tilecache.Key(snap.Fingerprint, size, c)
			if _, hit, err := s.store.Get(ctx, key); err == nil && hit {
				continue
			}
			data, err := s.render(snap, c)
			if err != nil {
				return n, err
			}
			if err := s.store.Set(ctx, key, data); err != nil {
				return n, err
			}
			n++
		}
	}
	return n, nil
}
