// Package ebitensurface draws a ui tree onto an ebiten image.
package ebitensurface

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/younwookim/mgui/internal/domain/ui"
)

// Surface implements ui.Surface on top of an *ebiten.Image
type Surface struct {
	screen   *ebiten.Image
	textures *Textures
	calls    int
}

// New wraps screen. textures may be nil, in which case every rect is flat.
func New(screen *ebiten.Image, textures *Textures) *Surface {
	return &Surface{screen: screen, textures: textures}
}

// DrawRect fills r with fill, or stretches the registered texture over r
// tinted by fill.
func (s *Surface) DrawRect(r ui.Rect, fill color.NRGBA, texture string) {
	s.calls++

	if texture != "" && s.textures != nil {
		if img, ok := s.textures.Get(texture); ok {
			s.screen.DrawImage(img, texturedOptions(img, r, fill))
			return
		}
	}
	ebitenutil.DrawRect(s.screen, r.X, r.Y, r.Width, r.Height, fill)
}

// Calls returns the number of DrawRect calls since the surface was created
func (s *Surface) Calls() int {
	return s.calls
}

// Outline draws a one pixel frame around r
func (s *Surface) Outline(r ui.Rect, c color.Color) {
	x0, y0 := r.X, r.Y
	x1, y1 := r.Right(), r.Bottom()
	ebitenutil.DrawLine(s.screen, x0, y0, x1, y0, c)
	ebitenutil.DrawLine(s.screen, x1, y0, x1, y1, c)
	ebitenutil.DrawLine(s.screen, x1, y1, x0, y1, c)
	ebitenutil.DrawLine(s.screen, x0, y1, x0, y0, c)
}

// Print writes debug text at the given pixel position
func (s *Surface) Print(text string, x, y int) {
	ebitenutil.DebugPrintAt(s.screen, text, x, y)
}

func texturedOptions(img *ebiten.Image, r ui.Rect, tint color.NRGBA) *ebiten.DrawImageOptions {
	b := img.Bounds()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(r.Width/float64(b.Dx()), r.Height/float64(b.Dy()))
	op.GeoM.Translate(r.X, r.Y)
	op.ColorScale.ScaleWithColor(tint)
	op.Filter = ebiten.FilterLinear
	return op
}
