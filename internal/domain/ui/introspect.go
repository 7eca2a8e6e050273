package ui

// Walk visits el and its descendants depth-first in layout order.
// Returning false from fn skips the element's children.
func Walk(el Element, fn func(el Element, depth int) bool) {
	walk(el, 0, fn)
}

func walk(el Element, depth int, fn func(Element, int) bool) {
	if el == nil || !fn(el, depth) {
		return
	}
	c, ok := el.(Container)
	if !ok {
		return
	}
	for _, child := range c.panel().children {
		walk(child, depth+1, fn)
	}
}

// Find returns the element with the given ID
func (r *Root) Find(id ElementID) (Element, bool) {
	if id == 0 {
		return nil, false
	}
	var found Element
	Walk(r.content, func(el Element, _ int) bool {
		if found != nil {
			return false
		}
		if el.Base().ID() == id {
			found = el
			return false
		}
		return true
	})
	return found, found != nil
}

// OwnerOf resolves el's owning container through the tree.
// The root content and detached elements have no owner.
func (r *Root) OwnerOf(el Element) (Container, bool) {
	if el == nil {
		return nil, false
	}
	owner, ok := r.Find(el.Base().OwnerID())
	if !ok {
		return nil, false
	}
	c, ok := owner.(Container)
	return c, ok
}

// AsContainer reports whether el owns children
func AsContainer(el Element) (Container, bool) {
	c, ok := el.(Container)
	return c, ok
}

// AsCanvas returns el as a Canvas, or false if it is another kind
func AsCanvas(el Element) (*Canvas, bool) {
	c, ok := el.(*Canvas)
	return c, ok
}

// AsStackPanel returns el as a StackPanel, or false if it is another kind
func AsStackPanel(el Element) (*StackPanel, bool) {
	sp, ok := el.(*StackPanel)
	return sp, ok
}

// AsImage returns el as an Image, or false if it is another kind
func AsImage(el Element) (*Image, bool) {
	img, ok := el.(*Image)
	return img, ok
}

// CanvasSlotOf returns the anchors el's owner keeps for it. It reports false
// when the owner is not a Canvas.
func CanvasSlotOf(r *Root, el Element) (CanvasSlot, bool) {
	owner, ok := r.OwnerOf(el)
	if !ok {
		return CanvasSlot{}, false
	}
	canvas, ok := AsCanvas(owner)
	if !ok {
		return CanvasSlot{}, false
	}
	return canvas.Slot(el), true
}
