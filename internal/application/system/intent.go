package system

// Intent represents an edit the user wants to apply to the selected element
type Intent interface {
	isIntent()
}

// SelectIntent moves the selection by Delta elements in layout order
type SelectIntent struct {
	Delta int
}

func (SelectIntent) isIntent() {}

// SelectAtIntent selects the topmost visible element under a screen point
type SelectAtIntent struct {
	X, Y float64
}

func (SelectAtIntent) isIntent() {}

// CycleHorizontalIntent advances the horizontal alignment
type CycleHorizontalIntent struct{}

func (CycleHorizontalIntent) isIntent() {}

// CycleVerticalIntent advances the vertical alignment
type CycleVerticalIntent struct{}

func (CycleVerticalIntent) isIntent() {}

// NudgeMarginIntent grows (or shrinks) every margin side by Delta
type NudgeMarginIntent struct {
	Delta float64
}

func (NudgeMarginIntent) isIntent() {}

// NudgeSpacingIntent changes a stack panel's spacing by Delta
type NudgeSpacingIntent struct {
	Delta float64
}

func (NudgeSpacingIntent) isIntent() {}

// ToggleAutoWidthIntent switches Width between auto and the current actual width
type ToggleAutoWidthIntent struct{}

func (ToggleAutoWidthIntent) isIntent() {}

// NudgeWidthIntent changes an explicit Width by Delta
type NudgeWidthIntent struct {
	Delta float64
}

func (NudgeWidthIntent) isIntent() {}

// ToggleHiddenIntent flips Hidden
type ToggleHiddenIntent struct{}

func (ToggleHiddenIntent) isIntent() {}

// ToggleOrientationIntent flips a stack panel between vertical and horizontal
type ToggleOrientationIntent struct{}

func (ToggleOrientationIntent) isIntent() {}
