package ui

import "go.uber.org/zap"

// CanvasSlot holds the anchors a Canvas keeps for one child.
// Unset anchors are Auto.
type CanvasSlot struct {
	Left   Length
	Top    Length
	Right  Length
	Bottom Length
}

// offset resolves the child's position along both axes inside extent.
// Left wins over Right and Top wins over Bottom; with neither set the child
// sits at the leading edge.
func (s CanvasSlot) offset(extent, desired Size) (x, y float64) {
	if v, ok := s.Left.Value(); ok {
		x = v
	} else if v, ok := s.Right.Value(); ok {
		x = extent.Width - v - desired.Width
	}

	if v, ok := s.Top.Value(); ok {
		y = v
	} else if v, ok := s.Bottom.Value(); ok {
		y = extent.Height - v - desired.Height
	}
	return x, y
}

// Canvas places each child at its anchored offset, sized to the child's
// desired size. It never stretches children.
type Canvas struct {
	Panel

	slots map[ElementID]CanvasSlot
}

// NewCanvas creates a canvas that starts a new tree
func NewCanvas() *Canvas {
	c := &Canvas{}
	c.construct(newTree(), 0)
	return c
}

func (c *Canvas) construct(t *tree, owner ElementID) {
	c.attach(c, t, owner)
	c.Fill = DefaultCanvasFill
	c.slots = make(map[ElementID]CanvasSlot)
}

// Kind returns KindCanvas
func (c *Canvas) Kind() Kind {
	return KindCanvas
}

// SetLeft anchors the child's left edge at v from the canvas origin
func (c *Canvas) SetLeft(child Element, v float64) {
	c.update(child, func(s *CanvasSlot) { s.Left = Px(v) })
}

// SetTop anchors the child's top edge at v from the canvas origin
func (c *Canvas) SetTop(child Element, v float64) {
	c.update(child, func(s *CanvasSlot) { s.Top = Px(v) })
}

// SetRight anchors the child's right edge at v from the canvas's right edge
func (c *Canvas) SetRight(child Element, v float64) {
	c.update(child, func(s *CanvasSlot) { s.Right = Px(v) })
}

// SetBottom anchors the child's bottom edge at v from the canvas's bottom edge
func (c *Canvas) SetBottom(child Element, v float64) {
	c.update(child, func(s *CanvasSlot) { s.Bottom = Px(v) })
}

// SetSlot replaces all four anchors of the child. Auto anchors are cleared.
func (c *Canvas) SetSlot(child Element, slot CanvasSlot) {
	c.update(child, func(s *CanvasSlot) { *s = slot })
}

// Slot returns the child's anchors. Children without anchors read as unset.
func (c *Canvas) Slot(child Element) CanvasSlot {
	if child == nil {
		return CanvasSlot{}
	}
	return c.slots[child.Base().ID()]
}

func (c *Canvas) update(child Element, fn func(*CanvasSlot)) {
	if child == nil {
		return
	}
	base := child.Base()
	if base.OwnerID() != c.id || c.id == 0 || base.tree != c.tree {
		Logger().Debug("canvas anchor ignored for non-child",
			append(base.logFields(), zap.Uint32("canvas", uint32(c.id)))...)
		return
	}
	if c.slots == nil {
		c.slots = make(map[ElementID]CanvasSlot)
	}
	slot := c.slots[base.ID()]
	fn(&slot)
	if slot == (CanvasSlot{}) {
		delete(c.slots, base.ID())
		return
	}
	c.slots[base.ID()] = slot
}

func (c *Canvas) childRemoved(id ElementID) {
	delete(c.slots, id)
}

// measureContent grows the canvas to the bounding box of every anchored child,
// resolving right/bottom anchors against the available extent.
func (c *Canvas) measureContent(available Size) Size {
	var size Size
	for _, child := range c.children {
		child.Measure(available)
		d := child.Base().DesiredSize()
		x, y := c.slots[child.Base().ID()].offset(available, d)
		size.Width = max(size.Width, x+d.Width)
		size.Height = max(size.Height, y+d.Height)
	}
	return size
}

// arrangeContent resolves anchors against the final extent and arranges each
// child at its desired size.
func (c *Canvas) arrangeContent(rect Rect) {
	for _, child := range c.children {
		d := child.Base().DesiredSize()
		x, y := c.slots[child.Base().ID()].offset(rect.Size(), d)
		child.Arrange(Rect{
			X:      rect.X + x,
			Y:      rect.Y + y,
			Width:  d.Width,
			Height: d.Height,
		})
	}
}
