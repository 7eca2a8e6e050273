package system

import (
	"github.com/younwookim/mgui/internal/application/inspector"
	"github.com/younwookim/mgui/internal/domain/ui"
	"go.uber.org/zap"
)

// EditSystem applies intents to the element selected in an inspector
type EditSystem struct {
	logger *zap.Logger
	edits  int
}

// NewEditSystem creates a new edit system. A nil logger discards output.
func NewEditSystem(logger *zap.Logger) *EditSystem {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &EditSystem{logger: logger}
}

// Edits returns the number of intents that changed the tree
func (s *EditSystem) Edits() int {
	return s.edits
}

// Apply performs intent and reports whether the tree changed. Selection
// changes move the cursor but leave the tree untouched.
func (s *EditSystem) Apply(insp *inspector.Inspector, intent Intent) bool {
	switch it := intent.(type) {
	case SelectIntent:
		insp.Move(it.Delta)
		return false
	case SelectAtIntent:
		if el, ok := inspector.HitTest(insp.Root(), it.X, it.Y); ok {
			insp.Select(el.Base().ID())
		}
		return false
	}

	el := insp.Selected()
	changed := s.edit(el, intent)
	if changed {
		s.edits++
		s.logger.Debug("element edited",
			zap.Uint32("id", uint32(el.Base().ID())),
			zap.String("name", el.Base().Name),
			zap.String("intent", intentName(intent)))
	}
	return changed
}

func (s *EditSystem) edit(el ui.Element, intent Intent) bool {
	fe := el.Base()
	switch it := intent.(type) {
	case CycleHorizontalIntent:
		fe.HorizontalAlignment = fe.HorizontalAlignment.Next()
	case CycleVerticalIntent:
		fe.VerticalAlignment = fe.VerticalAlignment.Next()
	case NudgeMarginIntent:
		m := fe.Margin
		fe.Margin = ui.Thickness{
			Left:   max(0, m.Left+it.Delta),
			Top:    max(0, m.Top+it.Delta),
			Right:  max(0, m.Right+it.Delta),
			Bottom: max(0, m.Bottom+it.Delta),
		}
		return fe.Margin != m
	case NudgeSpacingIntent:
		sp, ok := ui.AsStackPanel(el)
		if !ok {
			return false
		}
		before := sp.Spacing
		sp.Spacing = max(0, sp.Spacing+it.Delta)
		return sp.Spacing != before
	case ToggleAutoWidthIntent:
		if fe.Width.IsAuto() {
			fe.Width = ui.Px(fe.LayoutRect().Width)
		} else {
			fe.Width = ui.Auto
		}
	case NudgeWidthIntent:
		w := fe.Width.Or(fe.LayoutRect().Width)
		fe.Width = ui.Px(max(0, w+it.Delta))
	case ToggleHiddenIntent:
		fe.Hidden = !fe.Hidden
	case ToggleOrientationIntent:
		sp, ok := ui.AsStackPanel(el)
		if !ok {
			return false
		}
		sp.Orientation = sp.Orientation.Next()
	default:
		return false
	}
	return true
}

func intentName(intent Intent) string {
	switch intent.(type) {
	case CycleHorizontalIntent:
		return "cycle-horizontal"
	case CycleVerticalIntent:
		return "cycle-vertical"
	case NudgeMarginIntent:
		return "nudge-margin"
	case NudgeSpacingIntent:
		return "nudge-spacing"
	case ToggleAutoWidthIntent:
		return "toggle-auto-width"
	case NudgeWidthIntent:
		return "nudge-width"
	case ToggleHiddenIntent:
		return "toggle-hidden"
	case ToggleOrientationIntent:
		return "toggle-orientation"
	default:
		return "unknown"
	}
}
