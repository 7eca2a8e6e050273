package ui

import (
	"image/color"
	"testing"
)

// buildWideTree returns a root with rows stack panels of cols images each,
// plus a canvas overlay anchoring one badge per row.
func buildWideTree(rows, cols int) *Root {
	content := NewPanel()
	outer := AddChild[StackPanel](content)
	outer.Spacing = 4
	overlay := AddChild[Canvas](content)
	for r := 0; r < rows; r++ {
		row := AddChild[StackPanel](outer)
		row.Orientation = Horizontal
		row.Spacing = 2
		for c := 0; c < cols; c++ {
			img := AddChild[Image](row)
			img.SourceSize = Size{16, 16}
			img.VerticalAlignment = VAlignCenter
		}
		badge := AddChild[Image](overlay)
		badge.SourceSize = Size{8, 8}
		overlay.SetRight(badge, 4)
		overlay.SetTop(badge, float64(r*20))
	}
	return NewRoot(content)
}

type countingSurface int

func (c *countingSurface) DrawRect(Rect, color.NRGBA, string) {
	*c++
}

// Case 1: layout only

func BenchmarkLayout_Small(b *testing.B) {
	r := buildWideTree(4, 4)
	b.ResetTimer()
	for n := 0; n < b.N; n++ {
		r.Layout(Rect{0, 0, 800, 600})
	}
}

func BenchmarkLayout_Large(b *testing.B) {
	r := buildWideTree(100, 100)
	b.ResetTimer()
	for n := 0; n < b.N; n++ {
		r.Layout(Rect{0, 0, 1920, 1080})
	}
}

// Case 2: full frame, layout plus render

func BenchmarkFrame_Large(b *testing.B) {
	r := buildWideTree(100, 100)
	var s countingSurface
	b.ResetTimer()
	for n := 0; n < b.N; n++ {
		r.Frame(Rect{0, 0, 1920, 1080}, &s)
	}
}

// Case 3: tree construction

func BenchmarkBuild(b *testing.B) {
	for n := 0; n < b.N; n++ {
		_ = buildWideTree(20, 20)
	}
}
