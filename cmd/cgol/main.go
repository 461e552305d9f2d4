//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log/slog"
	"os"

	"cgol/internal/app"
	"cgol/internal/core"
	"cgol/internal/telemetry"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	os.Exit(run())
}

func run() int {
	cfg, err := app.LoadConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		slog.Error("loading config", "err", err)
		return -1
	}
	level, _ := cfg.Level()
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	stats, err := telemetry.NewRecorder(telemetry.Options{
		Window:   cfg.Telemetry.StatsWindow,
		LogStats: cfg.Telemetry.LogStats,
		CSVPath:  cfg.Telemetry.StatsCSV,
		Logger:   logger,
	})
	if err != nil {
		logger.Error("opening stats output", "err", err)
		return -1
	}
	defer stats.Close()

	session, err := app.NewSession(cfg, core.NewMonotonicClock(), app.EbitenWindow{}, stats, logger)
	if err != nil {
		logger.Error("creating session", "err", err)
		return -1
	}
	game := app.New(session, cfg)

	geom := session.Geometry()
	minW, minH := geom.MinSize()
	maxW, maxH := geom.MaxSize()
	if maxW == 0 {
		maxW = -1
	}
	if maxH == 0 {
		maxH = -1
	}
	ebiten.SetWindowTitle(cfg.Window.Title)
	ebiten.SetWindowSize(geom.RealWidth, geom.RealHeight)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSizeLimits(minW, minH, maxW, maxH)
	ebiten.SetWindowClosingHandled(true)

	logger.Info("starting",
		"cols", geom.Cols, "rows", geom.Rows,
		"cell_size", geom.CellSize, "period", cfg.Period())
	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		logger.Error("running game", "err", err)
		return -1
	}
	logger.Info("stopped", "generations", session.Generation())
	return 0
}
