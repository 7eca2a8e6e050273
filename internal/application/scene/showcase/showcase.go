// Package showcase provides the interactive layout scene: a ui tree laid out
// into the viewport every tick, with keyboard edits applied to the element
// selected in an inspector.
package showcase

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/younwookim/mgui/internal/application/inspector"
	"github.com/younwookim/mgui/internal/application/replay"
	"github.com/younwookim/mgui/internal/application/scene"
	"github.com/younwookim/mgui/internal/application/state"
	"github.com/younwookim/mgui/internal/application/system"
	"github.com/younwookim/mgui/internal/domain/ui"
	"github.com/younwookim/mgui/internal/infrastructure/config"
	"github.com/younwookim/mgui/internal/infrastructure/render/ebitensurface"
	"go.uber.org/zap"
)

const helpText = "Tab/Up/Down: Select | H/V: Align | -/=: Margin | [/]: Spacing | W/Left/Right: Width | X: Hide | O: Orient | I: Inspect | P: Pause | ESC: Quit"

// Options configures a Showcase
type Options struct {
	Layout   string  // Layout name, recorded into replays
	Viewport ui.Rect // Rect the root is laid out into
	Screen   ui.Size // Logical screen size, used for overlays
	Palette  config.Palette
	Textures *ebitensurface.Textures
	Logger   *zap.Logger

	RecordPath string             // Record input to this file when set
	Replay     *replay.ReplayData // Play back this input instead of reading devices
}

// Showcase is the interactive layout scene
type Showcase struct {
	root        *ui.Root
	layoutName  string
	viewport    ui.Rect
	screen      ui.Size
	palette     config.Palette
	textures    *ebitensurface.Textures
	logger      *zap.Logger
	mode        state.Mode
	resumeMode  state.Mode
	inspector   *inspector.Inspector
	editSystem  *system.EditSystem
	inputSystem *system.InputSystem

	// Input recording
	recorder       *replay.Recorder
	recordFilename string

	// Input playback
	replayer *replay.Replayer
}

// New creates a showcase over root and lays it out once.
func New(root *ui.Root, opts Options) *Showcase {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	s := &Showcase{
		root:           root,
		layoutName:     opts.Layout,
		viewport:       opts.Viewport,
		screen:         opts.Screen,
		palette:        opts.Palette,
		textures:       opts.Textures,
		logger:         logger,
		mode:           state.ModeView,
		inspector:      inspector.New(root),
		editSystem:     system.NewEditSystem(logger),
		inputSystem:    system.NewInputSystem(),
		recordFilename: opts.RecordPath,
	}

	if opts.Replay != nil {
		s.replayer = replay.NewReplayer(*opts.Replay)
		logger.Info("replay loaded",
			zap.String("layout", opts.Replay.Layout),
			zap.Int("frames", s.replayer.TotalFrames()))
	}
	if opts.RecordPath != "" {
		s.recorder = replay.NewRecorder(opts.Layout)
		logger.Info("recording enabled", zap.String("path", opts.RecordPath))
	}

	root.Layout(s.viewport)
	return s
}

// Root returns the showcased tree
func (s *Showcase) Root() *ui.Root {
	return s.root
}

// Inspector returns the selection cursor
func (s *Showcase) Inspector() *inspector.Inspector {
	return s.inspector
}

// Mode returns the current mode
func (s *Showcase) Mode() state.Mode {
	return s.mode
}

// Edits returns the number of edits applied so far
func (s *Showcase) Edits() int {
	return s.editSystem.Edits()
}

// Update reads one frame of input and applies it (implements scene.Scene).
// A finished replay terminates the loop.
func (s *Showcase) Update(_ float64) (scene.Scene, error) {
	var in system.InputState
	if s.replayer != nil {
		frame, ok := s.replayer.GetInput()
		if !ok {
			s.logger.Info("replay finished",
				zap.Int("frames", s.replayer.TotalFrames()),
				zap.Int("edits", s.Edits()))
			return nil, ebiten.Termination
		}
		in = system.InputState(frame)
	} else {
		in = s.inputSystem.GetInput()
	}

	if s.recorder != nil {
		s.recorder.RecordFrame(replay.Input(in))
	}

	return nil, s.Step(in)
}

// Step applies one frame of input and relayouts the tree. It returns
// ebiten.Termination when the input asks to quit.
func (s *Showcase) Step(in system.InputState) error {
	if in.Quit {
		return ebiten.Termination
	}
	if in.TogglePause {
		s.togglePause()
	}
	if in.ToggleInspect {
		s.mode = s.mode.ToggleInspect()
	}

	if s.mode.AcceptsEdits() {
		for _, intent := range system.Intents(in) {
			s.editSystem.Apply(s.inspector, intent)
		}
	}

	s.root.Layout(s.viewport)
	return nil
}

func (s *Showcase) togglePause() {
	if s.mode == state.ModePaused {
		s.mode = s.resumeMode
		return
	}
	s.resumeMode = s.mode
	s.mode = state.ModePaused
}

// saveRecording saves the current recording to file
func (s *Showcase) saveRecording() {
	if s.recorder == nil || !s.recorder.IsRecording() {
		return
	}
	s.recorder.Stop()

	filename := s.recordFilename
	if filename == "" {
		filename = replay.GenerateFilename()
	}

	if err := s.recorder.Save(filename); err != nil {
		s.logger.Warn("failed to save recording", zap.String("path", filename), zap.Error(err))
		return
	}
	s.logger.Info("recording saved",
		zap.String("path", filename),
		zap.Int("frames", s.recorder.FrameCount()))
}

// Draw renders the tree and the mode overlays
func (s *Showcase) Draw(screen *ebiten.Image) {
	screen.Fill(s.palette.Background)

	surface := ebitensurface.New(screen, s.textures)
	s.root.Render(surface)

	switch s.mode {
	case state.ModeInspect:
		s.drawInspector(surface)
	case state.ModePaused:
		s.drawPauseOverlay(screen)
	}

	ebitenutil.DebugPrint(screen, helpText)
}

func (s *Showcase) drawInspector(surface *ebitensurface.Surface) {
	el := s.inspector.Selected()
	if r := el.Base().LayoutRect(); !r.IsEmpty() {
		surface.Outline(r, s.palette.Selection)
	}

	props := s.inspector.Describe()
	surface.Print(strings.Join(props.Lines(), "\n"), 8, 20)
	surface.Print(fmt.Sprintf("edits: %d  draws: %d", s.Edits(), surface.Calls()), 8, int(s.screen.Height)-20)
}

func (s *Showcase) drawPauseOverlay(screen *ebiten.Image) {
	// Semi-transparent overlay
	overlay := color.NRGBA{0, 0, 0, 128}
	ebitenutil.DrawRect(screen, 0, 0, s.screen.Width, s.screen.Height, overlay)

	text := "PAUSED\n\nPress P to resume"
	ebitenutil.DebugPrintAt(screen, text, int(s.screen.Width)/2-50, int(s.screen.Height)/2-20)
}

// OnEnter is called when entering this scene
func (s *Showcase) OnEnter() {
	s.logger.Debug("showcase entered",
		zap.String("layout", s.layoutName),
		zap.Int("elements", len(inspector.Collect(s.root))))
}

// OnExit is called when leaving this scene
func (s *Showcase) OnExit() {
	s.saveRecording()
}
