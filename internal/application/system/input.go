package system

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Edit step sizes in pixels
const (
	MarginStep  = 2.0
	SpacingStep = 2.0
	WidthStep   = 10.0
)

// InputSystem reads the keyboard and mouse
type InputSystem struct{}

// NewInputSystem creates a new input system
func NewInputSystem() *InputSystem {
	return &InputSystem{}
}

// InputState holds the keys pressed this frame. Every flag is edge-triggered.
type InputState struct {
	Next              bool // Tab, Down
	Prev              bool // Shift+Tab, Up
	CycleHorizontal   bool // H
	CycleVertical     bool // V
	MarginUp          bool // =
	MarginDown        bool // -
	SpacingUp         bool // ]
	SpacingDown       bool // [
	ToggleAutoWidth   bool // W
	WidthUp           bool // Right
	WidthDown         bool // Left
	ToggleHidden      bool // X
	ToggleOrientation bool // O
	ToggleInspect     bool // I
	TogglePause       bool // P
	Quit              bool // Escape
	MouseX            int
	MouseY            int
	MouseClick        bool
}

// GetInput reads the current input state
func (s *InputSystem) GetInput() InputState {
	mx, my := ebiten.CursorPosition()
	shift := ebiten.IsKeyPressed(ebiten.KeyShift)
	tab := inpututil.IsKeyJustPressed(ebiten.KeyTab)
	return InputState{
		Next:              (tab && !shift) || inpututil.IsKeyJustPressed(ebiten.KeyArrowDown),
		Prev:              (tab && shift) || inpututil.IsKeyJustPressed(ebiten.KeyArrowUp),
		CycleHorizontal:   inpututil.IsKeyJustPressed(ebiten.KeyH),
		CycleVertical:     inpututil.IsKeyJustPressed(ebiten.KeyV),
		MarginUp:          inpututil.IsKeyJustPressed(ebiten.KeyEqual),
		MarginDown:        inpututil.IsKeyJustPressed(ebiten.KeyMinus),
		SpacingUp:         inpututil.IsKeyJustPressed(ebiten.KeyBracketRight),
		SpacingDown:       inpututil.IsKeyJustPressed(ebiten.KeyBracketLeft),
		ToggleAutoWidth:   inpututil.IsKeyJustPressed(ebiten.KeyW),
		WidthUp:           inpututil.IsKeyJustPressed(ebiten.KeyArrowRight),
		WidthDown:         inpututil.IsKeyJustPressed(ebiten.KeyArrowLeft),
		ToggleHidden:      inpututil.IsKeyJustPressed(ebiten.KeyX),
		ToggleOrientation: inpututil.IsKeyJustPressed(ebiten.KeyO),
		ToggleInspect:     inpututil.IsKeyJustPressed(ebiten.KeyI),
		TogglePause:       inpututil.IsKeyJustPressed(ebiten.KeyP),
		Quit:              inpututil.IsKeyJustPressed(ebiten.KeyEscape),
		MouseX:            mx,
		MouseY:            my,
		MouseClick:        inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft),
	}
}

// Intents maps one frame of input to edit intents in a fixed order.
// Mode toggles (inspect, pause, quit) are left to the scene.
func Intents(in InputState) []Intent {
	var intents []Intent
	if in.MouseClick {
		intents = append(intents, SelectAtIntent{X: float64(in.MouseX), Y: float64(in.MouseY)})
	}
	if in.Next {
		intents = append(intents, SelectIntent{Delta: 1})
	}
	if in.Prev {
		intents = append(intents, SelectIntent{Delta: -1})
	}
	if in.CycleHorizontal {
		intents = append(intents, CycleHorizontalIntent{})
	}
	if in.CycleVertical {
		intents = append(intents, CycleVerticalIntent{})
	}
	if in.MarginUp {
		intents = append(intents, NudgeMarginIntent{Delta: MarginStep})
	}
	if in.MarginDown {
		intents = append(intents, NudgeMarginIntent{Delta: -MarginStep})
	}
	if in.SpacingUp {
		intents = append(intents, NudgeSpacingIntent{Delta: SpacingStep})
	}
	if in.SpacingDown {
		intents = append(intents, NudgeSpacingIntent{Delta: -SpacingStep})
	}
	if in.ToggleAutoWidth {
		intents = append(intents, ToggleAutoWidthIntent{})
	}
	if in.WidthUp {
		intents = append(intents, NudgeWidthIntent{Delta: WidthStep})
	}
	if in.WidthDown {
		intents = append(intents, NudgeWidthIntent{Delta: -WidthStep})
	}
	if in.ToggleHidden {
		intents = append(intents, ToggleHiddenIntent{})
	}
	if in.ToggleOrientation {
		intents = append(intents, ToggleOrientationIntent{})
	}
	return intents
}
