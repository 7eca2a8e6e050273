// Package termsurface draws a ui tree into a terminal through tcell.
//
// Pixel rects are scaled down to character cells. Terminals have no alpha, so
// translucent fills are drawn as shade runes in the fill color and textured
// rects use a medium shade.
package termsurface

import (
	"image/color"
	"math"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
	"github.com/younwookim/mgui/internal/domain/ui"
)

// Default cell metrics, roughly an 8x16 terminal font
const (
	DefaultCellWidth  = 8
	DefaultCellHeight = 16
)

const (
	runeSolid    = ' '
	runeLight    = '░'
	runeTextured = '▒'
)

// Surface implements ui.Surface on a tcell.Screen
type Surface struct {
	screen     tcell.Screen
	cellWidth  float64
	cellHeight float64
	background tcell.Color
}

// New wraps screen with the default cell metrics
func New(screen tcell.Screen) *Surface {
	return &Surface{
		screen:     screen,
		cellWidth:  DefaultCellWidth,
		cellHeight: DefaultCellHeight,
		background: tcell.ColorDefault,
	}
}

// SetCellSize changes how many pixels one cell covers. Non-positive values
// are ignored.
func (s *Surface) SetCellSize(w, h float64) {
	if w > 0 {
		s.cellWidth = w
	}
	if h > 0 {
		s.cellHeight = h
	}
}

// SetBackground sets the color behind translucent fills
func (s *Surface) SetBackground(c color.NRGBA) {
	s.background = toColor(c)
}

// PixelSize returns the pixel extent covered by the screen
func (s *Surface) PixelSize() ui.Size {
	w, h := s.screen.Size()
	return ui.Size{Width: float64(w) * s.cellWidth, Height: float64(h) * s.cellHeight}
}

// Clear fills the whole screen with the background
func (s *Surface) Clear() {
	s.screen.Fill(runeSolid, tcell.StyleDefault.Background(s.background))
}

// DrawRect fills the cells covered by r
func (s *Surface) DrawRect(r ui.Rect, fill color.NRGBA, texture string) {
	x0, y0, x1, y1 := s.cells(r)
	if x0 >= x1 || y0 >= y1 {
		return
	}

	ch, style := s.cellStyle(fill, texture)
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			s.screen.SetContent(x, y, ch, nil, style)
		}
	}
}

// Label writes text starting at the cell under the pixel position. Wide
// runes take two cells.
func (s *Surface) Label(text string, x, y float64, fg color.NRGBA) {
	cx := int(math.Floor(x / s.cellWidth))
	cy := int(math.Floor(y / s.cellHeight))
	style := tcell.StyleDefault.Foreground(toColor(fg)).Background(s.background)
	for _, r := range text {
		s.screen.SetContent(cx, cy, r, nil, style)
		cx += max(1, runewidth.RuneWidth(r))
	}
}

// cells converts r to a half-open cell range clipped to the screen
func (s *Surface) cells(r ui.Rect) (x0, y0, x1, y1 int) {
	w, h := s.screen.Size()
	x0 = clamp(int(math.Round(r.X/s.cellWidth)), 0, w)
	y0 = clamp(int(math.Round(r.Y/s.cellHeight)), 0, h)
	x1 = clamp(int(math.Round(r.Right()/s.cellWidth)), 0, w)
	y1 = clamp(int(math.Round(r.Bottom()/s.cellHeight)), 0, h)
	return x0, y0, x1, y1
}

func (s *Surface) cellStyle(fill color.NRGBA, texture string) (rune, tcell.Style) {
	c := toColor(fill)
	switch {
	case texture != "":
		return runeTextured, tcell.StyleDefault.Foreground(c).Background(s.background)
	case fill.A < 255:
		return runeLight, tcell.StyleDefault.Foreground(c).Background(s.background)
	default:
		return runeSolid, tcell.StyleDefault.Background(c)
	}
}

func toColor(c color.NRGBA) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

func clamp(v, lo, hi int) int {
	return min(max(v, lo), hi)
}
