// Package ui implements a retained-mode layout tree.
//
// Every frame the host calls Measure top-down (each element reports the size
// it would like, content plus margin), then Arrange top-down (each element
// stores its final rect), then Render, which walks the same tree and submits
// one rectangle per visible element to a Surface.
//
// The set of element kinds is closed: Panel, Canvas, StackPanel and Image.
// They share the FrameworkElement algorithm and differ only in their content
// hooks. Elements are created with the New* constructors or AddChild.
package ui

import "go.uber.org/zap"

// ElementID identifies an element within its tree. 0 is "none".
type ElementID uint32

// Kind is the concrete variant of an element
type Kind int

const (
	KindPanel Kind = iota
	KindCanvas
	KindStackPanel
	KindImage
)

// String returns the string representation of the kind
func (k Kind) String() string {
	switch k {
	case KindPanel:
		return "Panel"
	case KindCanvas:
		return "Canvas"
	case KindStackPanel:
		return "StackPanel"
	case KindImage:
		return "Image"
	default:
		return "Unknown"
	}
}

// Element is a node that takes part in layout.
//
// The interface is sealed: only the kinds declared in this package implement
// the unexported content hooks.
type Element interface {
	// Measure computes and stores the desired size for the given available space.
	Measure(available Size)
	// Arrange positions the element inside final and stores its layout rect.
	Arrange(final Rect)
	// Render submits the element (and its children) to the surface.
	Render(s Surface)

	// Base exposes the shared layout properties.
	Base() *FrameworkElement
	Kind() Kind

	construct(t *tree, owner ElementID)
	measureContent(available Size) Size
	arrangeContent(rect Rect)
	render(s Surface)
}

// tree is the state shared by every element of one tree
type tree struct {
	nextID ElementID
	busy   bool // a layout or render pass is running
}

func newTree() *tree {
	return &tree{}
}

func (t *tree) allocate() ElementID {
	t.nextID++
	return t.nextID
}

func (t *tree) checkMutable() {
	if t.busy {
		panic("ui: tree mutated during a layout or render pass")
	}
}

// FrameworkElement holds the properties and the layout algorithm shared by
// every element kind.
type FrameworkElement struct {
	Name string

	// Width and Height override content measurement when set.
	Width  Length
	Height Length

	Margin Thickness

	HorizontalAlignment HorizontalAlignment
	VerticalAlignment   VerticalAlignment

	// Hidden elements still take part in layout but submit nothing in Render.
	Hidden bool

	id       ElementID
	owner    ElementID
	tree     *tree
	self     Element
	measured bool

	desiredSize Size
	layoutRect  Rect
}

func (fe *FrameworkElement) attach(self Element, t *tree, owner ElementID) {
	fe.self = self
	fe.tree = t
	fe.id = t.allocate()
	fe.owner = owner
}

// Base returns the element itself
func (fe *FrameworkElement) Base() *FrameworkElement {
	return fe
}

// ID returns the element's identifier within its tree
func (fe *FrameworkElement) ID() ElementID {
	return fe.id
}

// OwnerID returns the identifier of the owning container, or 0 for a root.
// Resolve it with Root.OwnerOf.
func (fe *FrameworkElement) OwnerID() ElementID {
	return fe.owner
}

// DesiredSize returns the last Measure result (content size plus margin)
func (fe *FrameworkElement) DesiredSize() Size {
	return fe.desiredSize
}

// LayoutRect returns the last Arrange result
func (fe *FrameworkElement) LayoutRect() Rect {
	return fe.layoutRect
}

// Measure deflates available by the margin, asks the content hook how big it
// wants to be, applies explicit Width/Height and re-inflates by the margin.
func (fe *FrameworkElement) Measure(available Size) {
	margin := fe.Margin.Clamp()
	inner := available.Deflate(margin)

	var desired Size
	if fe.self != nil {
		desired = fe.self.measureContent(inner)
	}

	if w, ok := fe.Width.Value(); ok {
		desired.Width = max(0, w)
	}
	if h, ok := fe.Height.Value(); ok {
		desired.Height = max(0, h)
	}

	fe.desiredSize = desired.Inflate(margin)
	fe.measured = true
}

// Arrange resolves the final size and position inside final and hands the
// resulting rect to the content hook. An element that was never measured is
// measured against final's extent first.
func (fe *FrameworkElement) Arrange(final Rect) {
	if !fe.measured {
		fe.Measure(final.Size())
	}

	margin := fe.Margin.Clamp()
	inner := final.Deflate(margin)

	width := inner.Width
	if w, ok := fe.Width.Value(); ok {
		width = w
	} else if fe.HorizontalAlignment != HAlignStretch {
		width = fe.desiredSize.Width - margin.Horizontal()
	}

	height := inner.Height
	if h, ok := fe.Height.Value(); ok {
		height = h
	} else if fe.VerticalAlignment != VAlignStretch {
		height = fe.desiredSize.Height - margin.Vertical()
	}

	// The offered space is a hard ceiling.
	width = min(max(0, width), inner.Width)
	height = min(max(0, height), inner.Height)

	x, y := inner.X, inner.Y
	freeX := inner.Width - width
	freeY := inner.Height - height

	switch fe.HorizontalAlignment {
	case HAlignCenter:
		x += freeX * 0.5
	case HAlignRight:
		x += freeX
	}

	switch fe.VerticalAlignment {
	case VAlignCenter:
		y += freeY * 0.5
	case VAlignBottom:
		y += freeY
	}

	fe.layoutRect = Rect{X: x, Y: y, Width: width, Height: height}

	if fe.self != nil {
		fe.self.arrangeContent(fe.layoutRect)
	}
}

// Render submits the element unless it is hidden
func (fe *FrameworkElement) Render(s Surface) {
	if fe.Hidden || fe.self == nil {
		return
	}
	fe.self.render(s)
}

// arrangeContent is the default content arrangement: keep the rect as-is.
func (fe *FrameworkElement) arrangeContent(rect Rect) {
	fe.layoutRect = rect
}

func (fe *FrameworkElement) logFields() []zap.Field {
	return []zap.Field{
		zap.Uint32("id", uint32(fe.id)),
		zap.String("name", fe.Name),
	}
}
