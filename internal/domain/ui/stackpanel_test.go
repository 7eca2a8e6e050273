package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newStack(spacing float64, sizes ...Size) (*StackPanel, []*Image) {
	sp := NewStackPanel()
	sp.Spacing = spacing
	images := make([]*Image, 0, len(sizes))
	for _, s := range sizes {
		img := AddChild[Image](sp)
		img.SourceSize = s
		images = append(images, img)
	}
	return sp, images
}

func TestStackPanel_MeasureVertical(t *testing.T) {
	tests := []struct {
		name     string
		spacing  float64
		trailing bool
		sizes    []Size
		expected Size
	}{
		{"empty", 10, false, nil, Size{}},
		{"single child has no gap", 10, false, []Size{{100, 100}}, Size{100, 100}},
		{"gap between two", 10, false, []Size{{100, 100}, {80, 100}}, Size{100, 210}},
		{"trailing gap", 10, true, []Size{{100, 100}, {80, 100}}, Size{100, 220}},
		{"trailing on empty", 10, true, nil, Size{}},
		{"no spacing", 0, false, []Size{{50, 20}, {60, 30}, {10, 40}}, Size{60, 90}},
		{"negative spacing is zero", -15, false, []Size{{50, 20}, {60, 30}}, Size{60, 50}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sp, _ := newStack(tt.spacing, tt.sizes...)
			sp.TrailingSpacing = tt.trailing

			sp.Measure(screen)

			assert.Equal(t, tt.expected, sp.DesiredSize())
		})
	}
}

func TestStackPanel_ArrangeVertical(t *testing.T) {
	sp, images := newStack(10, Size{100, 100}, Size{80, 100})

	sp.Measure(screen)
	sp.Arrange(screenRect)

	require.Len(t, images, 2)
	assert.Equal(t, Rect{0, 0, 800, 100}, images[0].LayoutRect())
	assert.Equal(t, Rect{0, 110, 800, 100}, images[1].LayoutRect())
}

func TestStackPanel_TrailingSpacingOnlyAffectsMeasure(t *testing.T) {
	sp, images := newStack(10, Size{100, 100}, Size{80, 100})
	sp.TrailingSpacing = true

	sp.Measure(screen)
	sp.Arrange(screenRect)

	assert.Equal(t, Rect{0, 110, 800, 100}, images[1].LayoutRect())
}

func TestStackPanel_Horizontal(t *testing.T) {
	sp, images := newStack(10, Size{100, 100}, Size{50, 60})
	sp.Orientation = Horizontal

	sp.Measure(screen)
	sp.Arrange(screenRect)

	assert.Equal(t, Size{160, 100}, sp.DesiredSize())
	assert.Equal(t, Rect{0, 0, 100, 600}, images[0].LayoutRect())
	assert.Equal(t, Rect{110, 0, 50, 600}, images[1].LayoutRect())
}

func TestStackPanel_ChildAlignmentAcrossAxis(t *testing.T) {
	sp, images := newStack(0, Size{100, 50}, Size{100, 50}, Size{100, 50})
	images[0].HorizontalAlignment = HAlignLeft
	images[1].HorizontalAlignment = HAlignCenter
	images[2].HorizontalAlignment = HAlignRight

	sp.Measure(screen)
	sp.Arrange(screenRect)

	assert.Equal(t, Rect{0, 0, 100, 50}, images[0].LayoutRect())
	assert.Equal(t, Rect{350, 50, 100, 50}, images[1].LayoutRect())
	assert.Equal(t, Rect{700, 100, 100, 50}, images[2].LayoutRect())
}

func TestStackPanel_ChildMarginAlongAxis(t *testing.T) {
	sp, images := newStack(5, Size{100, 100}, Size{100, 100})
	images[0].Margin = Thickness{Top: 10, Bottom: 10}

	sp.Measure(screen)
	sp.Arrange(screenRect)

	assert.Equal(t, Size{100, 225}, sp.DesiredSize())
	assert.Equal(t, Rect{0, 10, 800, 100}, images[0].LayoutRect())
	assert.Equal(t, Rect{0, 125, 800, 100}, images[1].LayoutRect())
}

func TestStackPanel_ChildrenDoNotOverlap(t *testing.T) {
	sp, images := newStack(3, Size{10, 17}, Size{10, 23}, Size{10, 5}, Size{10, 40})

	sp.Measure(screen)
	sp.Arrange(screenRect)

	for i := 1; i < len(images); i++ {
		prev := images[i-1].LayoutRect()
		cur := images[i].LayoutRect()
		assert.GreaterOrEqual(t, cur.Y, prev.Bottom(), "child %d overlaps child %d", i, i-1)
	}
}

// Four 100x100 images stacked and centred inside a full-screen panel, laid
// out into {50, 50, 800, 600}.
func TestStackPanel_CenteredImages(t *testing.T) {
	root := NewPanel()
	sp := AddChild[StackPanel](root)
	var images []*Image
	for i := 0; i < 4; i++ {
		img := AddChild[Image](sp)
		img.SourceSize = Size{100, 100}
		img.HorizontalAlignment = HAlignCenter
		img.VerticalAlignment = VAlignCenter
		images = append(images, img)
	}

	root.Measure(Size{800, 600})
	root.Arrange(Rect{50, 50, 800, 600})

	assert.Equal(t, Size{100, 400}, sp.DesiredSize())
	assert.Equal(t, Rect{50, 50, 800, 600}, sp.LayoutRect())
	for i, img := range images {
		assert.Equal(t, Rect{400, 50 + float64(i)*100, 100, 100}, img.LayoutRect(), "image %d", i)
	}
}

func TestStackPanel_OverflowKeepsStacking(t *testing.T) {
	sp, images := newStack(0, Size{100, 400}, Size{100, 400})

	sp.Measure(screen)
	sp.Arrange(screenRect)

	assert.Equal(t, Size{100, 800}, sp.DesiredSize(), "desired size may exceed the available space")
	assert.Equal(t, Rect{0, 400, 800, 400}, images[1].LayoutRect())
}

func TestParseOrientation(t *testing.T) {
	o, err := ParseOrientation(" Horizontal")
	require.NoError(t, err)
	assert.Equal(t, Horizontal, o)

	o, err = ParseOrientation("")
	require.NoError(t, err)
	assert.Equal(t, Vertical, o)

	_, err = ParseOrientation("diagonal")
	assert.Error(t, err)

	assert.Equal(t, Horizontal, Vertical.Next())
	assert.Equal(t, Vertical, Horizontal.Next())
}
