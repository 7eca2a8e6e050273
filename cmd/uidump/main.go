// Command uidump lays out a layout file without a window and prints the
// result: an indented tree, the raw draw calls, or a live terminal view.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/gdamore/tcell/v2"
	"github.com/younwookim/mgui/internal/application/inspector"
	"github.com/younwookim/mgui/internal/application/system"
	"github.com/younwookim/mgui/internal/domain/ui"
	"github.com/younwookim/mgui/internal/infrastructure/config"
	"github.com/younwookim/mgui/internal/infrastructure/logging"
	"github.com/younwookim/mgui/internal/infrastructure/render/capture"
	"github.com/younwookim/mgui/internal/infrastructure/render/termsurface"
	"go.uber.org/zap"
)

func main() {
	configsFlag := flag.String("configs", "cmd/game/configs", "Config directory")
	layoutFlag := flag.String("layout", "default", "Layout to dump, or \"builtin\"")
	widthFlag := flag.Float64("w", 800, "Viewport width in pixels")
	heightFlag := flag.Float64("h", 600, "Viewport height in pixels")
	selectFlag := flag.String("select", "", "Name of the element to expand in the tree")
	callsFlag := flag.Bool("calls", false, "Print draw calls instead of the tree")
	termFlag := flag.Bool("term", false, "Show the layout in the terminal (tab: next, q: quit)")
	flag.Parse()

	loader := config.NewLoader(*configsFlag)
	cfg, err := loader.LoadAll()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if *termFlag {
		// Keep the terminal clean
		cfg.Logging.Level = "error"
	}

	logger, err := logging.New(cfg.Logging)
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	palette, err := cfg.Theme.Palette()
	if err != nil {
		logger.Fatal("invalid theme", zap.Error(err))
	}

	root, err := buildRoot(loader, *layoutFlag, &palette, logger)
	if err != nil {
		logger.Fatal("failed to build layout", zap.String("layout", *layoutFlag), zap.Error(err))
	}

	switch {
	case *termFlag:
		err = runTerminal(root, palette)
	case *callsFlag:
		err = writeCalls(os.Stdout, root, ui.Rect{Width: *widthFlag, Height: *heightFlag})
	default:
		err = writeTree(os.Stdout, root, ui.Rect{Width: *widthFlag, Height: *heightFlag}, *selectFlag)
	}
	if err != nil {
		logger.Fatal("dump failed", zap.Error(err))
	}
}

func buildRoot(loader *config.Loader, name string, palette *config.Palette, logger *zap.Logger) (*ui.Root, error) {
	builder := &system.LayoutBuilder{Palette: palette, Logger: logger}
	if name == "builtin" {
		return builder.Default(), nil
	}
	doc, err := loader.LoadLayout(name)
	if err != nil {
		return nil, err
	}
	return builder.Build(doc)
}

// writeTree lays root out into viewport and prints the indented tree. The
// element named selectName, if any, is expanded with its properties.
func writeTree(w io.Writer, root *ui.Root, viewport ui.Rect, selectName string) error {
	root.Layout(viewport)

	var selected ui.ElementID
	if selectName != "" {
		for _, e := range inspector.Collect(root) {
			if e.Element.Base().Name == selectName {
				selected = e.Element.Base().ID()
				break
			}
		}
		if selected == 0 {
			return fmt.Errorf("no element named %q", selectName)
		}
	}

	_, err := io.WriteString(w, inspector.Dump(root, selected))
	return err
}

// writeCalls runs one frame against a capturing surface and prints the calls
func writeCalls(w io.Writer, root *ui.Root, viewport ui.Rect) error {
	surface := &capture.Surface{}
	root.Frame(viewport, surface)
	_, err := surface.WriteTo(w)
	return err
}

func runTerminal(root *ui.Root, palette config.Palette) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("failed to create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("failed to init screen: %w", err)
	}
	defer screen.Fini()

	viewTerminal(screen, inspector.New(root), palette)
	return nil
}

// viewTerminal redraws the tree on every event until q or Escape. The last
// row shows the selected element.
func viewTerminal(screen tcell.Screen, insp *inspector.Inspector, palette config.Palette) {
	surface := termsurface.New(screen)
	surface.SetBackground(palette.Background)
	root := insp.Root()

	for {
		surface.Clear()
		size := surface.PixelSize()
		status := size.Height - termsurface.DefaultCellHeight
		root.Frame(ui.Rect{Width: size.Width, Height: max(0, status)}, surface)

		props := insp.Describe()
		r := props.LayoutRect
		surface.Label(fmt.Sprintf("%s %gx%g at %g,%g  tab: next  q: quit",
			props.Label(), r.Width, r.Height, r.X, r.Y), 0, status, palette.Text)
		screen.Show()

		switch ev := screen.PollEvent().(type) {
		case nil:
			return
		case *tcell.EventResize:
			screen.Sync()
		case *tcell.EventKey:
			switch {
			case ev.Key() == tcell.KeyEscape, ev.Key() == tcell.KeyRune && ev.Rune() == 'q':
				return
			case ev.Key() == tcell.KeyTab:
				insp.Next()
			case ev.Key() == tcell.KeyBacktab:
				insp.Prev()
			}
		}
	}
}
