// Package inspector reads back the layout state of a ui tree: a flat listing,
// per-element properties and a selection cursor used by the showcase.
package inspector

import (
	"fmt"

	"github.com/younwookim/mgui/internal/domain/ui"
)

// Entry is one element of a flattened tree
type Entry struct {
	Element ui.Element
	Depth   int
}

// Collect flattens the tree depth-first in layout order
func Collect(root *ui.Root) []Entry {
	var entries []Entry
	ui.Walk(root.Content(), func(el ui.Element, depth int) bool {
		entries = append(entries, Entry{Element: el, Depth: depth})
		return true
	})
	return entries
}

// Properties is a snapshot of one element's layout inputs and outputs
type Properties struct {
	Kind ui.Kind
	Name string
	ID   ui.ElementID

	Width  ui.Length
	Height ui.Length
	Margin ui.Thickness

	HorizontalAlignment ui.HorizontalAlignment
	VerticalAlignment   ui.VerticalAlignment
	Hidden              bool

	DesiredSize ui.Size
	LayoutRect  ui.Rect
	ActualSize  ui.Size

	// Canvas is set when the owner is a Canvas
	Canvas *ui.CanvasSlot
	// Spacing and Orientation are set for stack panels
	Spacing     *float64
	Orientation *ui.Orientation
}

// Describe snapshots el
func Describe(root *ui.Root, el ui.Element) Properties {
	fe := el.Base()
	p := Properties{
		Kind:                el.Kind(),
		Name:                fe.Name,
		ID:                  fe.ID(),
		Width:               fe.Width,
		Height:              fe.Height,
		Margin:              fe.Margin,
		HorizontalAlignment: fe.HorizontalAlignment,
		VerticalAlignment:   fe.VerticalAlignment,
		Hidden:              fe.Hidden,
		DesiredSize:         fe.DesiredSize(),
		LayoutRect:          fe.LayoutRect(),
		ActualSize:          fe.LayoutRect().Size(),
	}

	if slot, ok := ui.CanvasSlotOf(root, el); ok {
		p.Canvas = &slot
	}
	if sp, ok := ui.AsStackPanel(el); ok {
		spacing, orientation := sp.Spacing, sp.Orientation
		p.Spacing = &spacing
		p.Orientation = &orientation
	}
	return p
}

// Label is "Kind" or "Kind name"
func (p Properties) Label() string {
	if p.Name == "" {
		return p.Kind.String()
	}
	return p.Kind.String() + " " + p.Name
}

// Lines formats the properties one per line for overlays
func (p Properties) Lines() []string {
	lines := []string{
		fmt.Sprintf("%s #%d", p.Label(), p.ID),
		fmt.Sprintf("size     %s x %s", p.Width, p.Height),
		fmt.Sprintf("margin   %g %g %g %g", p.Margin.Left, p.Margin.Top, p.Margin.Right, p.Margin.Bottom),
		fmt.Sprintf("align    %s / %s", p.HorizontalAlignment, p.VerticalAlignment),
		fmt.Sprintf("desired  %g x %g", p.DesiredSize.Width, p.DesiredSize.Height),
		fmt.Sprintf("rect     %g,%g %gx%g", p.LayoutRect.X, p.LayoutRect.Y, p.LayoutRect.Width, p.LayoutRect.Height),
	}
	if p.Canvas != nil {
		lines = append(lines, fmt.Sprintf("anchors  l=%s t=%s r=%s b=%s",
			p.Canvas.Left, p.Canvas.Top, p.Canvas.Right, p.Canvas.Bottom))
	}
	if p.Spacing != nil {
		lines = append(lines, fmt.Sprintf("stack    %s spacing=%g", p.Orientation, *p.Spacing))
	}
	if p.Hidden {
		lines = append(lines, "hidden")
	}
	return lines
}

// Inspector is a selection cursor over a tree
type Inspector struct {
	root     *ui.Root
	selected ui.ElementID
}

// New creates an inspector with the root content selected
func New(root *ui.Root) *Inspector {
	return &Inspector{
		root:     root,
		selected: root.Content().Base().ID(),
	}
}

// Root returns the inspected tree
func (in *Inspector) Root() *ui.Root {
	return in.root
}

// Selected returns the selected element. A selection that left the tree falls
// back to the root content.
func (in *Inspector) Selected() ui.Element {
	if el, ok := in.root.Find(in.selected); ok {
		return el
	}
	content := in.root.Content()
	in.selected = content.Base().ID()
	return content
}

// SelectedID returns the ID of the selected element
func (in *Inspector) SelectedID() ui.ElementID {
	return in.Selected().Base().ID()
}

// Select moves the selection to id. It reports false if id is not in the tree.
func (in *Inspector) Select(id ui.ElementID) bool {
	if _, ok := in.root.Find(id); !ok {
		return false
	}
	in.selected = id
	return true
}

// Next selects the following element in layout order, wrapping around
func (in *Inspector) Next() ui.Element {
	return in.Move(1)
}

// Prev selects the preceding element in layout order, wrapping around
func (in *Inspector) Prev() ui.Element {
	return in.Move(-1)
}

// Move shifts the selection by delta entries in layout order
func (in *Inspector) Move(delta int) ui.Element {
	entries := Collect(in.root)
	current := in.SelectedID()
	idx := 0
	for i, e := range entries {
		if e.Element.Base().ID() == current {
			idx = i
			break
		}
	}

	n := len(entries)
	idx = ((idx+delta)%n + n) % n
	in.selected = entries[idx].Element.Base().ID()
	return entries[idx].Element
}

// Describe snapshots the selected element
func (in *Inspector) Describe() Properties {
	return Describe(in.root, in.Selected())
}
