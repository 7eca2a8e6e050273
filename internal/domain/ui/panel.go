package ui

import (
	"image/color"
	"slices"

	"go.uber.org/zap"
)

// Default fills per kind. Constructors copy them into the element.
var (
	DefaultPanelFill      = color.NRGBA{255, 0, 0, 128}
	DefaultCanvasFill     = color.NRGBA{255, 0, 0, 128}
	DefaultStackPanelFill = color.NRGBA{255, 0, 0, 128}
	DefaultImageTint      = color.NRGBA{0, 255, 255, 255}
)

// Container is an element that owns children
type Container interface {
	Element
	// Children returns a copy of the child list in layout order.
	Children() []Element
	ChildCount() int
	// RemoveChild detaches a direct child. It reports false if el is not a child.
	RemoveChild(el Element) bool

	panel() *Panel
}

// childRemover is implemented by containers that keep per-child state
type childRemover interface {
	childRemoved(id ElementID)
}

// Panel is the generic container. Every child is offered the same space and
// children overlap.
type Panel struct {
	FrameworkElement

	Fill color.NRGBA

	children []Element
}

// NewPanel creates a panel that starts a new tree
func NewPanel() *Panel {
	p := &Panel{}
	p.construct(newTree(), 0)
	return p
}

func (p *Panel) construct(t *tree, owner ElementID) {
	p.attach(p, t, owner)
	p.Fill = DefaultPanelFill
}

// Kind returns KindPanel
func (p *Panel) Kind() Kind {
	return KindPanel
}

func (p *Panel) panel() *Panel {
	return p
}

// AddChild constructs a new element of type T inside parent and returns it.
//
//	img := ui.AddChild[ui.Image](stack)
//	img.SourceSize = ui.Size{Width: 100, Height: 100}
func AddChild[T any, P interface {
	*T
	Element
}](parent Container) P {
	child := P(new(T))
	constructed(parent)
	parent.panel().adopt(child)
	return child
}

// constructed starts a new tree for a zero-value container so it lays out as
// if it had come from its constructor.
func constructed(c Container) {
	if c.Base().tree == nil {
		c.construct(newTree(), 0)
	}
}

func (p *Panel) adopt(child Element) {
	p.tree.checkMutable()

	child.construct(p.tree, p.id)
	p.children = append(p.children, child)

	Logger().Debug("child added",
		append(child.Base().logFields(),
			zap.Stringer("kind", child.Kind()),
			zap.Uint32("owner", uint32(p.id)))...)
}

// RemoveChild detaches a direct child. The removed element keeps its ID but no
// longer has an owner.
func (p *Panel) RemoveChild(el Element) bool {
	if el == nil {
		return false
	}
	id := el.Base().ID()
	for i, child := range p.children {
		if child.Base().ID() != id {
			continue
		}
		if p.tree != nil {
			p.tree.checkMutable()
		}
		p.children = slices.Delete(p.children, i, i+1)
		el.Base().owner = 0
		if r, ok := p.self.(childRemover); ok {
			r.childRemoved(id)
		}
		Logger().Debug("child removed", el.Base().logFields()...)
		return true
	}
	return false
}

// Children returns a copy of the child list
func (p *Panel) Children() []Element {
	out := make([]Element, len(p.children))
	copy(out, p.children)
	return out
}

// ChildCount returns the number of direct children
func (p *Panel) ChildCount() int {
	return len(p.children)
}

// measureContent returns the bounding size of all children. Children are not
// additive in a generic panel.
func (p *Panel) measureContent(available Size) Size {
	var size Size
	for _, child := range p.children {
		child.Measure(available)
		d := child.Base().DesiredSize()
		size.Width = max(size.Width, d.Width)
		size.Height = max(size.Height, d.Height)
	}
	return size
}

// arrangeContent gives every child the panel's own rect
func (p *Panel) arrangeContent(rect Rect) {
	for _, child := range p.children {
		child.Arrange(rect)
	}
}

func (p *Panel) render(s Surface) {
	if !p.layoutRect.IsEmpty() {
		s.DrawRect(p.layoutRect, p.Fill, "")
	}
	for _, child := range p.children {
		child.Render(s)
	}
}
