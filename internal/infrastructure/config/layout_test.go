package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLayout_Dimension(t *testing.T) {
	tests := []struct {
		name     string
		yaml     string
		expected Dimension
	}{
		{"omitted", "root: {kind: panel}", Dimension{}},
		{"auto", "root: {kind: panel, width: auto}", Dimension{}},
		{"auto any case", "root: {kind: panel, width: AUTO}", Dimension{}},
		{"number", "root: {kind: panel, width: 120}", Dimension{Value: 120, Set: true}},
		{"fraction", "root: {kind: panel, width: 12.5}", Dimension{Value: 12.5, Set: true}},
		{"zero is explicit", "root: {kind: panel, width: 0}", Dimension{Value: 0, Set: true}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc, err := ParseLayout([]byte(tt.yaml))
			require.NoError(t, err)
			assert.Equal(t, tt.expected, doc.Root.Width)
		})
	}
}

func TestParseLayout_Margin(t *testing.T) {
	tests := []struct {
		name                     string
		yaml                     string
		left, top, right, bottom float64
	}{
		{"omitted", "root: {kind: panel}", 0, 0, 0, 0},
		{"scalar", "root: {kind: panel, margin: 8}", 8, 8, 8, 8},
		{"sides", "root: {kind: panel, margin: {left: 1, top: 2, right: 3, bottom: 4}}", 1, 2, 3, 4},
		{"all with override", "root: {kind: panel, margin: {all: 5, top: 0}}", 5, 0, 5, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc, err := ParseLayout([]byte(tt.yaml))
			require.NoError(t, err)

			l, top, r, b := doc.Root.Margin.Sides()
			assert.Equal(t, []float64{tt.left, tt.top, tt.right, tt.bottom}, []float64{l, top, r, b})
		})
	}
}

func TestParseLayout_Tree(t *testing.T) {
	src := `
name: sample
root:
  kind: canvas
  children:
    - kind: image
      source: checker
      sourceSize: {width: 10, height: 20}
      canvas: {left: 4, bottom: 6}
    - kind: stackpanel
      orientation: horizontal
      spacing: 3
      trailingSpacing: true
`
	doc, err := ParseLayout([]byte(src))
	require.NoError(t, err)

	assert.Equal(t, "sample", doc.Name)
	require.Len(t, doc.Root.Children, 2)

	img := doc.Root.Children[0]
	assert.Equal(t, "checker", img.Source)
	assert.Equal(t, &SizeConfig{Width: 10, Height: 20}, img.SourceSize)
	require.NotNil(t, img.Canvas)
	assert.Equal(t, 4.0, *img.Canvas.Left)
	assert.Equal(t, 6.0, *img.Canvas.Bottom)
	assert.Nil(t, img.Canvas.Top)

	sp := doc.Root.Children[1]
	assert.Equal(t, "horizontal", sp.Orientation)
	assert.Equal(t, 3.0, sp.Spacing)
	assert.True(t, sp.TrailingSpacing)
}

func TestParseLayout_RejectsSequenceDimension(t *testing.T) {
	_, err := ParseLayout([]byte("root: {kind: panel, height: [1, 2]}"))
	assert.ErrorContains(t, err, "dimension must be a number")
}

func TestParseHexColor(t *testing.T) {
	tests := []struct {
		in       string
		expected [4]uint8
		ok       bool
	}{
		{"#fff", [4]uint8{255, 255, 255, 255}, true},
		{"#1a2B3c", [4]uint8{0x1a, 0x2b, 0x3c, 255}, true},
		{" #ff000080 ", [4]uint8{255, 0, 0, 128}, true},
		{"ff0000", [4]uint8{}, false},
		{"#ff00", [4]uint8{}, false},
		{"#gg0000", [4]uint8{}, false},
		{"#+f0000", [4]uint8{}, false},
		{"#0x1234", [4]uint8{}, false},
		{"#ABC", [4]uint8{0xaa, 0xbb, 0xcc, 255}, true},
		{"#ff0000zz", [4]uint8{}, false},
		{"", [4]uint8{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			c, ok := ParseHexColor(tt.in)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.expected, [4]uint8{c.R, c.G, c.B, c.A})
			}
		})
	}
}

func TestParseHexColor_StraightAlpha(t *testing.T) {
	c, ok := ParseHexColor("#ff000080")
	require.True(t, ok)

	r, g, b, a := c.RGBA()
	assert.Equal(t, uint32(0x8080), a)
	assert.LessOrEqual(t, r, a, "premultiplied red cannot exceed alpha")
	assert.Zero(t, g)
	assert.Zero(t, b)
}

func TestThemeConfig_PaletteFallsBack(t *testing.T) {
	theme := &ThemeConfig{Image: "#123"}

	p, err := theme.Palette()
	require.NoError(t, err)

	assert.Equal(t, uint8(0x11), p.Image.R)
	def, err := DefaultTheme().Palette()
	require.NoError(t, err)
	assert.Equal(t, def.Panel, p.Panel)
}
