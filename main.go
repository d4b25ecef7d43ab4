package main

import (
	"context"
	"flag"
	"fmt"
	"image/color"
	"os"
	"os/signal"
	"time"

	"go.uber.org/zap"

	"tessera/app"
	"tessera/engine"
	"tessera/hal"
	"tessera/internal/buildinfo"
	"tessera/server"
)

func main() {
	var (
		configPath = flag.String("config", "", "Path to a YAML config file.")
		headless   = flag.Bool("headless", false, "Run without a window.")
		hz         = flag.Int("hz", 60, "Tick rate in headless mode.")
		ticks      = flag.Uint64("ticks", 0, "Stop after N ticks in headless mode (0 = run forever).")
		source     = flag.String("source", "", "Shape server URL (overrides config).")
	)
	flag.Parse()

	log, err := zap.NewDevelopment()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer log.Sync()

	cfg, err := app.LoadConfig(*configPath)
	if err != nil {
		log.Fatal("load config", zap.Error(err))
	}
	if *source != "" {
		cfg.SourceURL = *source
	}

	shapes := buildShapes(log, cfg)
	log.Info("starting viewer",
		zap.String("version", buildinfo.Short()),
		zap.Int("shapes", len(shapes)),
		zap.Float64("distance", cfg.Distance))

	if *headless {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()
		v := app.New(log, cfg, nil, shapes)
		defer v.Close()
		err := hal.RunHeadless(ctx, hal.HeadlessConfig{Hz: *hz, Ticks: *ticks}, v)
		if err != nil && err != context.Canceled {
			log.Fatal("headless run", zap.Error(err))
		}
		return
	}

	kbd := hal.NewKeyboard()
	v := app.New(log, cfg, kbd.Events(), shapes)
	defer v.Close()

	wcfg := hal.WindowConfig{
		Title:  "Tessera (" + buildinfo.Short() + ")",
		Width:  cfg.Width,
		Height: cfg.Height,
		TPS:    cfg.TPS,
	}
	if err := hal.RunWindow(wcfg, kbd, v); err != nil {
		log.Fatal("window run", zap.Error(err))
	}
}

// buildShapes fetches the cube from the configured shape server, falling
// back to local generation when no server is reachable. The reference grid
// is always generated locally.
func buildShapes(log *zap.Logger, cfg app.Config) []*engine.Shape4D {
	var cube *engine.Shape4D
	if cfg.SourceURL != "" {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		fetched, err := server.NewClient(cfg.SourceURL).FetchCube(ctx, cfg.CubeSize)
		if err != nil {
			log.Warn("shape server unavailable, generating locally",
				zap.String("url", cfg.SourceURL), zap.Error(err))
		} else {
			cube = fetched
		}
	}
	if cube == nil {
		cube = engine.NewTesseract(cfg.CubeSize)
	}

	shapes := []*engine.Shape4D{cube}
	if cfg.Grid {
		grid := engine.NewGrid(4, 1, -2)
		grid.Color = color.RGBA{R: 0x30, G: 0x38, B: 0x42, A: 0xff}
		shapes = append(shapes, grid)
	}
	return shapes
}
