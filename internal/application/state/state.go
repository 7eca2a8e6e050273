package state

// Mode represents what the showcase does with input each frame
type Mode int

const (
	ModeView    Mode = iota // Edits apply, no overlay
	ModeInspect             // Edits apply, selection and properties drawn
	ModePaused              // Only mode toggles and quit are handled
)

// String returns the string representation of the mode
func (m Mode) String() string {
	switch m {
	case ModeView:
		return "View"
	case ModeInspect:
		return "Inspect"
	case ModePaused:
		return "Paused"
	default:
		return "Unknown"
	}
}

// ToggleInspect switches between View and Inspect. Paused is unchanged.
func (m Mode) ToggleInspect() Mode {
	switch m {
	case ModeView:
		return ModeInspect
	case ModeInspect:
		return ModeView
	default:
		return m
	}
}

// AcceptsEdits reports whether edit intents are applied in this mode
func (m Mode) AcceptsEdits() bool {
	return m == ModeView || m == ModeInspect
}
