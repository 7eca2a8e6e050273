package ui

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newShowcase() (*Root, *StackPanel) {
	content := NewPanel()
	sp := AddChild[StackPanel](content)
	for i := 0; i < 4; i++ {
		img := AddChild[Image](sp)
		img.SourceSize = Size{100, 100}
		img.HorizontalAlignment = HAlignCenter
		img.VerticalAlignment = VAlignCenter
	}
	return NewRoot(content), sp
}

func TestRoot_NilContent(t *testing.T) {
	r := NewRoot(nil)

	require.NotNil(t, r.Content())
	assert.Equal(t, KindPanel, r.Content().Kind())
}

func TestRoot_Layout(t *testing.T) {
	r, sp := newShowcase()
	viewport := Rect{50, 50, 800, 600}

	r.Layout(viewport)

	assert.Equal(t, viewport, r.Viewport())
	assert.Equal(t, uint64(1), r.Frames())
	assert.Equal(t, viewport, r.Content().Base().LayoutRect())
	assert.Equal(t, Size{100, 400}, sp.DesiredSize())
}

func TestRoot_Frame(t *testing.T) {
	r, _ := newShowcase()
	s := &recordingSurface{}

	r.Frame(Rect{50, 50, 800, 600}, s)

	require.Len(t, s.calls, 6, "panel, stack panel and four images")
	assert.Equal(t, drawCall{Rect{50, 50, 800, 600}, DefaultPanelFill, ""}, s.calls[0])
	assert.Equal(t, drawCall{Rect{50, 50, 800, 600}, DefaultStackPanelFill, ""}, s.calls[1])
	for i, call := range s.calls[2:] {
		assert.Equal(t, Rect{400, 50 + float64(i)*100, 100, 100}, call.rect)
		assert.Equal(t, DefaultImageTint, call.fill)
	}
}

func TestRoot_FramesCount(t *testing.T) {
	r, _ := newShowcase()
	s := &recordingSurface{}

	for i := 0; i < 3; i++ {
		r.Frame(screenRect, s)
	}

	assert.Equal(t, uint64(3), r.Frames())
	assert.Len(t, s.calls, 18)
}

func TestRoot_MutationDuringRenderPanics(t *testing.T) {
	r, sp := newShowcase()
	r.Layout(screenRect)

	mutate := SurfaceFunc(func(Rect, color.NRGBA, string) {
		AddChild[Image](sp)
	})

	assert.Panics(t, func() { r.Render(mutate) })

	// The busy flag is cleared once the pass unwinds.
	assert.NotPanics(t, func() { AddChild[Image](sp) })
	assert.Equal(t, 5, sp.ChildCount())
}

func TestRoot_RemoveDuringRenderPanics(t *testing.T) {
	r, sp := newShowcase()
	r.Layout(screenRect)
	victim := sp.Children()[0]

	remove := SurfaceFunc(func(Rect, color.NRGBA, string) {
		sp.RemoveChild(victim)
	})

	assert.Panics(t, func() { r.Render(remove) })
	assert.Equal(t, 4, sp.ChildCount())
}

func TestRoot_RelayoutAfterResize(t *testing.T) {
	r, sp := newShowcase()

	r.Layout(screenRect)
	r.Layout(Rect{0, 0, 400, 300})

	assert.Equal(t, Rect{0, 0, 400, 300}, sp.LayoutRect())
	first := sp.Children()[0].Base().LayoutRect()
	assert.Equal(t, Rect{150, 0, 100, 100}, first)
}
