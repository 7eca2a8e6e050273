package ui

import (
	"fmt"
	"strings"
)

// Orientation is the stacking axis of a StackPanel
type Orientation int

const (
	Vertical Orientation = iota
	Horizontal
)

// String returns the string representation of the orientation
func (o Orientation) String() string {
	switch o {
	case Vertical:
		return "Vertical"
	case Horizontal:
		return "Horizontal"
	default:
		return "Unknown"
	}
}

// Next returns the other orientation
func (o Orientation) Next() Orientation {
	if o == Vertical {
		return Horizontal
	}
	return Vertical
}

// ParseOrientation parses "vertical" or "horizontal", ignoring case.
// An empty string is Vertical.
func ParseOrientation(s string) (Orientation, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "vertical":
		return Vertical, nil
	case "horizontal":
		return Horizontal, nil
	default:
		return Vertical, fmt.Errorf("unknown orientation %q", s)
	}
}

// StackPanel lines its children up along one axis with Spacing between them.
// Across the axis every child gets the full panel extent.
type StackPanel struct {
	Panel

	Spacing     float64
	Orientation Orientation

	// TrailingSpacing also reserves Spacing after the last child when
	// measuring. Arrangement only ever places spacing between children.
	TrailingSpacing bool
}

// NewStackPanel creates a vertical stack panel that starts a new tree
func NewStackPanel() *StackPanel {
	sp := &StackPanel{}
	sp.construct(newTree(), 0)
	return sp
}

func (sp *StackPanel) construct(t *tree, owner ElementID) {
	sp.attach(sp, t, owner)
	sp.Fill = DefaultStackPanelFill
}

// Kind returns KindStackPanel
func (sp *StackPanel) Kind() Kind {
	return KindStackPanel
}

func (sp *StackPanel) spacing() float64 {
	return max(0, sp.Spacing)
}

func (sp *StackPanel) gaps() int {
	n := len(sp.children)
	if n == 0 {
		return 0
	}
	if sp.TrailingSpacing {
		return n
	}
	return n - 1
}

// measureContent sums child extents along the axis and takes the largest
// extent across it.
func (sp *StackPanel) measureContent(available Size) Size {
	var size Size
	for _, child := range sp.children {
		child.Measure(available)
		d := child.Base().DesiredSize()
		if sp.Orientation == Horizontal {
			size.Width += d.Width
			size.Height = max(size.Height, d.Height)
		} else {
			size.Height += d.Height
			size.Width = max(size.Width, d.Width)
		}
	}

	gap := float64(sp.gaps()) * sp.spacing()
	if sp.Orientation == Horizontal {
		size.Width += gap
	} else {
		size.Height += gap
	}
	return size
}

// arrangeContent walks the children in order, giving each its desired extent
// along the axis and the full rect across it.
func (sp *StackPanel) arrangeContent(rect Rect) {
	spacing := sp.spacing()
	offset := 0.0
	for _, child := range sp.children {
		d := child.Base().DesiredSize()
		var r Rect
		if sp.Orientation == Horizontal {
			r = Rect{X: rect.X + offset, Y: rect.Y, Width: d.Width, Height: rect.Height}
			offset += r.Width + spacing
		} else {
			r = Rect{X: rect.X, Y: rect.Y + offset, Width: rect.Width, Height: d.Height}
			offset += r.Height + spacing
		}
		child.Arrange(r)
	}
}
