package config

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// ParseHexColor parses #RGB, #RRGGBB or #RRGGBBAA into a straight-alpha
// color. Alpha defaults to 255.
func ParseHexColor(s string) (color.NRGBA, bool) {
	s = strings.TrimSpace(s)
	if len(s) < 4 || s[0] != '#' {
		return color.NRGBA{}, false
	}
	// colorful.Hex scans with %x, which tolerates signs and prefixes.
	if _, err := strconv.ParseUint(s[1:], 16, 64); err != nil {
		return color.NRGBA{}, false
	}

	alpha := uint8(255)
	switch len(s) - 1 {
	case 3, 6:
	case 8:
		a, err := strconv.ParseUint(s[7:9], 16, 8)
		if err != nil {
			return color.NRGBA{}, false
		}
		alpha = uint8(a)
		s = s[:7]
	default:
		return color.NRGBA{}, false
	}

	c, err := colorful.Hex(s)
	if err != nil {
		return color.NRGBA{}, false
	}
	r, g, b := c.RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: alpha}, true
}

// Palette is a ThemeConfig with every color resolved
type Palette struct {
	Background color.NRGBA
	Panel      color.NRGBA
	Canvas     color.NRGBA
	StackPanel color.NRGBA
	Image      color.NRGBA
	Selection  color.NRGBA
	Text       color.NRGBA
}

// Palette resolves every hex string of the theme. Empty entries fall back to
// DefaultTheme.
func (t *ThemeConfig) Palette() (Palette, error) {
	def := DefaultTheme()
	var p Palette
	fields := []struct {
		name string
		hex  string
		def  string
		dst  *color.NRGBA
	}{
		{"background", t.Background, def.Background, &p.Background},
		{"panel", t.Panel, def.Panel, &p.Panel},
		{"canvas", t.Canvas, def.Canvas, &p.Canvas},
		{"stackPanel", t.StackPanel, def.StackPanel, &p.StackPanel},
		{"image", t.Image, def.Image, &p.Image},
		{"selection", t.Selection, def.Selection, &p.Selection},
		{"text", t.Text, def.Text, &p.Text},
	}
	for _, f := range fields {
		hex := f.hex
		if hex == "" {
			hex = f.def
		}
		c, ok := ParseHexColor(hex)
		if !ok {
			return Palette{}, fmt.Errorf("theme %s: invalid color %q", f.name, hex)
		}
		*f.dst = c
	}
	return p, nil
}
