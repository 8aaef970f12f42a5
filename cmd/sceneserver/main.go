// Package main is the entry point for the scene bridge server: it converts
// a shape dump into a scene graph and streams snapshots to renderer clients
// over WebSocket, reloading the dump when it changes on disk.
package main

import (
	"fmt"
	"net/http"
	"os"
	"time"

	"go.uber.org/zap"

	"scenebridge/internal/config"
	"scenebridge/internal/logger"
	"scenebridge/internal/scenefile"
	"scenebridge/internal/stream"
	"scenebridge/pkg/convert"
	"scenebridge/pkg/scene"
	"scenebridge/pkg/urdf"
)

func main() {
	// Parse CLI flags first
	config.ParseFlags()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("=== Scene Bridge Server ===")
	logger.Sugar.Debugf("Config: %+v", cfg)

	var flags urdf.Flags
	if cfg.Scene.MaterialColorsFromMTL {
		flags |= urdf.FlagUseMaterialColorsFromMTL
	}

	graph := scene.NewGraph()
	srv := stream.NewServer(logger.Log)

	mtime, err := publishScene(cfg.Scene.ShapesFile, flags, graph, srv)
	if err != nil {
		logger.Error("failed to load scene", zap.Error(err))
		os.Exit(1)
	}
	logger.Info("scene loaded",
		zap.String("file", cfg.Scene.ShapesFile),
		zap.Int("shapes", graph.ShapeCount()))

	// Re-publish whenever the dump file changes on disk.
	go watchScene(cfg.Scene.ShapesFile, cfg.Server.SnapshotInterval, mtime, flags, graph, srv)

	http.Handle("/scene", srv)

	logger.Info("listening", zap.String("addr", cfg.Server.ListenAddr))
	if err := http.ListenAndServe(cfg.Server.ListenAddr, nil); err != nil {
		logger.Error("server error", zap.Error(err))
		os.Exit(1)
	}
}

// publishScene rebuilds graph from the dump at path and broadcasts the
// result. It returns the dump's modification time for change polling.
func publishScene(path string, flags urdf.Flags, graph *scene.Graph, srv *stream.Server) (time.Time, error) {
	bodies, err := scenefile.Load(path)
	if err != nil {
		return time.Time{}, err
	}

	graph.Reset()
	convert.BuildGraph(bodies, flags, graph)
	srv.Publish(graph)

	info, err := os.Stat(path)
	if err != nil {
		return time.Time{}, err
	}
	return info.ModTime(), nil
}

func watchScene(path string, interval time.Duration, mtime time.Time, flags urdf.Flags, graph *scene.Graph, srv *stream.Server) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for range ticker.C {
		info, err := os.Stat(path)
		if err != nil || !info.ModTime().After(mtime) {
			continue
		}
		newMtime, err := publishScene(path, flags, graph, srv)
		if err != nil {
			logger.Warn("scene reload failed", zap.Error(err))
			continue
		}
		mtime = newMtime
		logger.Info("scene reloaded",
			zap.Int("shapes", graph.ShapeCount()),
			zap.Int("clients", srv.ClientCount()))
	}
}
