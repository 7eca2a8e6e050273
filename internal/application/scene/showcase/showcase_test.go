package showcase

import (
	"path/filepath"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/younwookim/mgui/internal/application/replay"
	"github.com/younwookim/mgui/internal/application/state"
	"github.com/younwookim/mgui/internal/application/system"
	"github.com/younwookim/mgui/internal/domain/ui"
	"github.com/younwookim/mgui/internal/infrastructure/config"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

var viewport = ui.Rect{X: 50, Y: 50, Width: 800, Height: 600}

func newTestShowcase(t *testing.T, opts Options) *Showcase {
	t.Helper()
	palette, err := config.DefaultTheme().Palette()
	require.NoError(t, err)

	opts.Layout = "default"
	opts.Viewport = viewport
	opts.Screen = ui.Size{Width: 900, Height: 700}
	opts.Palette = palette
	return New(system.DefaultLayout(), opts)
}

func findByName(t *testing.T, s *Showcase, name string) ui.Element {
	t.Helper()
	var found ui.Element
	ui.Walk(s.Root().Content(), func(el ui.Element, _ int) bool {
		if el.Base().Name == name {
			found = el
		}
		return found == nil
	})
	require.NotNil(t, found, "element %q", name)
	return found
}

func TestNew_LaysOutImmediately(t *testing.T) {
	s := newTestShowcase(t, Options{})

	assert.Equal(t, state.ModeView, s.Mode())
	assert.Equal(t, uint64(1), s.Root().Frames())
	assert.Equal(t, ui.Rect{X: 400, Y: 50, Width: 100, Height: 100}, findByName(t, s, "image0").Base().LayoutRect())
}

func TestStep_EditsSelectedElement(t *testing.T) {
	s := newTestShowcase(t, Options{})

	require.NoError(t, s.Step(system.InputState{Next: true}))
	assert.Equal(t, "stack", s.Inspector().Selected().Base().Name)

	require.NoError(t, s.Step(system.InputState{CycleHorizontal: true}))

	stack := findByName(t, s, "stack")
	assert.Equal(t, ui.HAlignLeft, stack.Base().HorizontalAlignment)
	assert.Equal(t, ui.Rect{X: 50, Y: 50, Width: 100, Height: 600}, stack.Base().LayoutRect(), "relaid out in the same tick")
	assert.Equal(t, ui.Rect{X: 50, Y: 50, Width: 100, Height: 100}, findByName(t, s, "image0").Base().LayoutRect())
	assert.Equal(t, 1, s.Edits())
}

func TestStep_ClickSelects(t *testing.T) {
	s := newTestShowcase(t, Options{})

	require.NoError(t, s.Step(system.InputState{MouseClick: true, MouseX: 450, MouseY: 260}))

	assert.Equal(t, "image2", s.Inspector().Selected().Base().Name)
	assert.Equal(t, 0, s.Edits(), "selection is not an edit")
}

func TestStep_Modes(t *testing.T) {
	s := newTestShowcase(t, Options{})

	require.NoError(t, s.Step(system.InputState{ToggleInspect: true}))
	assert.Equal(t, state.ModeInspect, s.Mode())

	require.NoError(t, s.Step(system.InputState{TogglePause: true}))
	assert.Equal(t, state.ModePaused, s.Mode())

	// Paused ignores edits and selection
	require.NoError(t, s.Step(system.InputState{Next: true, MarginUp: true}))
	assert.Equal(t, "root", s.Inspector().Selected().Base().Name)
	assert.Equal(t, 0, s.Edits())

	require.NoError(t, s.Step(system.InputState{TogglePause: true}))
	assert.Equal(t, state.ModeInspect, s.Mode(), "resumes the mode it paused from")
}

func TestStep_Quit(t *testing.T) {
	s := newTestShowcase(t, Options{})

	err := s.Step(system.InputState{Quit: true, MarginUp: true})
	assert.ErrorIs(t, err, ebiten.Termination)
	assert.Equal(t, 0, s.Edits(), "quit wins over edits in the same frame")
}

func TestUpdate_Replay(t *testing.T) {
	data := replay.ReplayData{
		Version: "1.0",
		Layout:  "default",
		Frames: []replay.FrameInput{
			{F: 0, N: true},
			{F: 1, N: true},
			{F: 2, WU: true},
			{F: 3, TO: true},
		},
	}
	core, logs := observer.New(zap.InfoLevel)
	s := newTestShowcase(t, Options{Replay: &data, Logger: zap.New(core)})

	for i := 0; i < len(data.Frames); i++ {
		next, err := s.Update(1.0 / 60.0)
		require.NoError(t, err, "frame %d", i)
		assert.Nil(t, next)
	}

	_, err := s.Update(1.0 / 60.0)
	assert.ErrorIs(t, err, ebiten.Termination)

	img := findByName(t, s, "image0")
	assert.Equal(t, ui.Px(110), img.Base().Width, "auto width is resolved before nudging")
	assert.Equal(t, 1, s.Edits(), "orientation only applies to stacks")
	assert.Equal(t, 1, logs.FilterMessage("replay finished").Len())
}

func TestOnExit_SavesRecording(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	data := replay.CreateTestReplayData(3, 10, 20)
	data.Frames[1].N = true

	s := newTestShowcase(t, Options{Replay: &data, RecordPath: path})
	for i := 0; i < 3; i++ {
		_, err := s.Update(1.0 / 60.0)
		require.NoError(t, err)
	}
	s.OnExit()
	s.OnExit()

	saved, err := replay.LoadReplay(path)
	require.NoError(t, err)
	assert.Equal(t, "default", saved.Layout)
	require.Len(t, saved.Frames, 3)
	assert.True(t, saved.Frames[1].N)
	assert.Equal(t, 10, saved.Frames[2].MX)
}
