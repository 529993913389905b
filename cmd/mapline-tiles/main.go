// Command mapline-tiles serves a gradient polyline as XYZ map tiles.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/gogpu/mapline"
	"github.com/gogpu/mapline/internal/config"
	"github.com/gogpu/mapline/internal/geoio"
	"github.com/gogpu/mapline/internal/logging"
	"github.com/gogpu/mapline/internal/metrics"
	"github.com/gogpu/mapline/internal/server"
	"github.com/gogpu/mapline/internal/tilecache"
	"github.com/gogpu/mapline/tile"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	log := logging.Setup(cfg.Log.Level, cfg.Log.Format, os.Stdout)
	mapline.SetLogger(log)

	if err := run(cfg, log); err != nil {
		log.Error("mapline-tiles stopped", "error", err)
		os.Exit(1)
	}
}

func run(cfg *config.Config, log *slog.Logger) error {
	spec, err := cfg.Gradient.Spec()
	if err != nil {
		return err
	}

	points := geoio.SampleRoute()
	if cfg.Overlay.File != "" {
		if points, err = geoio.LoadPolyline(cfg.Overlay.File); err != nil {
			return err
		}
	}

	store, closeStore := openStore(context.Background(), cfg, log)
	defer closeStore()

	srv := server.New(tile.NewLayer(mapline.NewRegistry(spec), spec), server.Options{
		Renderer: tile.NewRenderer(tile.WithSize(cfg.Tiles.Size)),
		Store:    store,
		Metrics:  metrics.New(),
		Logger:   log,
		Padding:  cfg.Overlay.Padding,
		WarmZoom: cfg.Tiles.WarmZoom,
	})
	srv.SetOverlay(points)

	gin.SetMode(gin.ReleaseMode)
	httpServer := &http.Server{
		Addr:         cfg.Server.Addr(),
		Handler:      srv.Router(),
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go srv.Run(ctx)

	errc := make(chan error, 1)
	go func() {
		log.Info("HTTP server starting", "addr", httpServer.Addr, "version", mapline.Version)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errc <- err
		}
		close(errc)
	}()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}

	log.Info("shutting down mapline-tiles...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("HTTP server forced shutdown: %w", err)
	}
	log.Info("mapline-tiles stopped")
	return nil
}

// valkeyPingTimeout bounds the start-up health check of the shared cache.
const valkeyPingTimeout = 2 * time.Second

// openStore builds the tile store. With valkey configured and reachable the
// in-process cache is tiered over it; otherwise the in-process cache is used
// alone. The returned func releases the shared client.
func openStore(ctx context.Context, cfg *config.Config, log *slog.Logger) (tilecache.Store, func()) {
	memory := tilecache.NewMemory(cfg.Tiles.CacheSize)
	if !cfg.Valkey.Enabled() {
		return memory, func() {}
	}

	shared, err := tilecache.NewValkey(cfg.Valkey.Addr, cfg.Valkey.Expiry())
	if err != nil {
		log.Warn("valkey unavailable, using the in-process cache only", "addr", cfg.Valkey.Addr, "error", err)
		return memory, func() {}
	}

	pingCtx, cancel := context.WithTimeout(ctx, valkeyPingTimeout)
	defer cancel()
	if err := shared.Ping(pingCtx); err != nil {
		shared.Close()
		log.Warn("valkey ping failed, using the in-process cache only", "addr", cfg.Valkey.Addr, "error", err)
		return memory, func() {}
	}

	log.Info("tile cache tiered over valkey", "addr", cfg.Valkey.Addr, "ttl", cfg.Valkey.Expiry())
	return tilecache.NewTiered(memory, shared), shared.Close
}
