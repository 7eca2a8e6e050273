package main

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/younwookim/mgui/internal/application/game"
	"github.com/younwookim/mgui/internal/application/replay"
	"github.com/younwookim/mgui/internal/application/scene/showcase"
	"github.com/younwookim/mgui/internal/application/system"
	"github.com/younwookim/mgui/internal/domain/ui"
	"github.com/younwookim/mgui/internal/infrastructure/config"
	"github.com/younwookim/mgui/internal/infrastructure/logging"
	"github.com/younwookim/mgui/internal/infrastructure/render/ebitensurface"
	"go.uber.org/zap"
)

func main() {
	// Parse command line flags
	layoutFlag := flag.String("layout", "default", "Layout to show (configs/layouts/<name>.yaml)")
	recordFlag := flag.String("record", "", "Record input to file (e.g., -record replay.json)")
	replayFlag := flag.String("replay", "", "Play back a recorded input file and exit")
	debugFlag := flag.Bool("debug", false, "Log at debug level")
	flag.Parse()

	// Load configurations using embedded filesystem
	fsys, err := fs.Sub(configFS, "configs")
	if err != nil {
		log.Fatalf("Failed to get config subfs: %v", err)
	}
	loader := config.NewFSLoader(fsys, "configs")
	cfg, err := loader.LoadAll()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if *debugFlag {
		cfg.Logging.Level = "debug"
	}

	logger, err := logging.New(cfg.Logging)
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	if err := run(loader, cfg, logger, *layoutFlag, *recordFlag, *replayFlag); err != nil {
		logger.Fatal("showcase failed", zap.Error(err))
	}
}

func run(loader *config.Loader, cfg *config.AppConfig, logger *zap.Logger, layoutName, recordPath, replayPath string) error {
	var data *replay.ReplayData
	if replayPath != "" {
		var err error
		data, err = replay.LoadReplay(replayPath)
		if err != nil {
			return fmt.Errorf("failed to load replay: %w", err)
		}
		if data.Layout != "" && data.Layout != "test" {
			layoutName = data.Layout
		}
	}

	palette, err := cfg.Theme.Palette()
	if err != nil {
		return err
	}

	root, err := loadRoot(loader, layoutName, &palette, logger)
	if err != nil {
		return err
	}

	textures := ebitensurface.NewTextures()
	textures.RegisterBuiltins()

	display := cfg.Display
	vp := display.ViewportRect()
	show := showcase.New(root, showcase.Options{
		Layout:     layoutName,
		Viewport:   ui.Rect{X: vp.X, Y: vp.Y, Width: vp.Width, Height: vp.Height},
		Screen:     ui.Size{Width: float64(display.ScreenWidth), Height: float64(display.ScreenHeight)},
		Palette:    palette,
		Textures:   textures,
		Logger:     logger,
		RecordPath: recordPath,
		Replay:     data,
	})

	g := game.New(show, display.ScreenWidth, display.ScreenHeight)
	if display.Framerate > 0 {
		g.SetDT(1.0 / float64(display.Framerate))
		ebiten.SetTPS(display.Framerate)
	}

	// Set up ebiten
	ebiten.SetWindowSize(display.ScreenWidth*max(1, display.Scale), display.ScreenHeight*max(1, display.Scale))
	ebiten.SetWindowTitle(display.Title)

	logger.Info("showcase starting",
		zap.String("layout", layoutName),
		zap.Int("width", display.ScreenWidth),
		zap.Int("height", display.ScreenHeight))

	// Run game; Termination is a clean exit
	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	logger.Info("showcase stopped", zap.Uint64("ticks", g.Ticks()), zap.Int("edits", show.Edits()))
	return nil
}

// loadRoot builds the named layout. The default layout falls back to the
// built-in tree when its file is missing.
func loadRoot(loader *config.Loader, name string, palette *config.Palette, logger *zap.Logger) (*ui.Root, error) {
	builder := &system.LayoutBuilder{Palette: palette, Logger: logger}
	doc, err := loader.LoadLayout(name)
	if err != nil {
		if name == "default" {
			logger.Warn("default layout unavailable, using built-in", zap.Error(err))
			return builder.Default(), nil
		}
		return nil, err
	}
	return builder.Build(doc)
}
