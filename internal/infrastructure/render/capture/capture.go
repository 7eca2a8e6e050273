// Package capture records draw calls instead of drawing them. It backs
// headless dumps and scene tests.
package capture

import (
	"fmt"
	"image/color"
	"io"

	"github.com/younwookim/mgui/internal/domain/ui"
)

// Call is one recorded DrawRect
type Call struct {
	Rect    ui.Rect
	Fill    color.NRGBA
	Texture string
}

// String formats the call as "x,y wxh #rrggbbaa [texture]"
func (c Call) String() string {
	s := fmt.Sprintf("%g,%g %gx%g #%02x%02x%02x%02x",
		c.Rect.X, c.Rect.Y, c.Rect.Width, c.Rect.Height,
		c.Fill.R, c.Fill.G, c.Fill.B, c.Fill.A)
	if c.Texture != "" {
		s += " " + c.Texture
	}
	return s
}

// Surface implements ui.Surface by appending to Calls
type Surface struct {
	Calls []Call
}

// DrawRect records the call
func (s *Surface) DrawRect(r ui.Rect, fill color.NRGBA, texture string) {
	s.Calls = append(s.Calls, Call{Rect: r, Fill: fill, Texture: texture})
}

// Reset drops every recorded call
func (s *Surface) Reset() {
	s.Calls = s.Calls[:0]
}

// WriteTo writes one call per line
func (s *Surface) WriteTo(w io.Writer) (int64, error) {
	var n int64
	for i, c := range s.Calls {
		written, err := fmt.Fprintf(w, "%3d %s\n", i, c)
		n += int64(written)
		if err != nil {
			return n, err
		}
	}
	return n, nil
}
