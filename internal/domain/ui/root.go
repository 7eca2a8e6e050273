package ui

// Root drives one element tree: a layout pass against the viewport followed by
// a render pass, once per frame.
type Root struct {
	content  Container
	viewport Rect
	frames   uint64
}

// NewRoot wraps content as the root of a tree. A nil content gets an empty Panel.
func NewRoot(content Container) *Root {
	if content == nil {
		content = NewPanel()
	}
	constructed(content)
	return &Root{content: content}
}

// Content returns the root container
func (r *Root) Content() Container {
	return r.content
}

// Viewport returns the rect used by the last Layout
func (r *Root) Viewport() Rect {
	return r.viewport
}

// Frames returns the number of completed layout passes
func (r *Root) Frames() uint64 {
	return r.frames
}

// Layout measures the tree against the viewport's extent, then arranges it
// into the viewport.
func (r *Root) Layout(viewport Rect) {
	done := r.enter()
	defer done()

	r.viewport = viewport
	r.content.Measure(viewport.Size())
	r.content.Arrange(viewport)
	r.frames++
}

// Render walks the tree and submits every visible element to s
func (r *Root) Render(s Surface) {
	done := r.enter()
	defer done()

	r.content.Render(s)
}

// Frame runs Layout then Render
func (r *Root) Frame(viewport Rect, s Surface) {
	r.Layout(viewport)
	r.Render(s)
}

// enter marks the tree busy so mutations from inside a pass panic.
func (r *Root) enter() func() {
	t := r.content.Base().tree
	if t == nil {
		return func() {}
	}
	t.busy = true
	return func() { t.busy = false }
}
