package ui

import "image/color"

// Image is a leaf that sizes itself to an intrinsic source size.
type Image struct {
	FrameworkElement

	// SourceSize is the intrinsic size of the bitmap.
	SourceSize Size
	// Source is the texture key handed to the surface. Empty draws a flat quad.
	Source string
	Tint   color.NRGBA
}

// NewImage creates a standalone image with the given intrinsic size
func NewImage(source Size) *Image {
	img := &Image{}
	img.construct(newTree(), 0)
	img.SourceSize = source
	return img
}

func (img *Image) construct(t *tree, owner ElementID) {
	img.attach(img, t, owner)
	img.Tint = DefaultImageTint
}

// Kind returns KindImage
func (img *Image) Kind() Kind {
	return KindImage
}

// measureContent never asks for more than the source size or the offered space
func (img *Image) measureContent(available Size) Size {
	return Size{
		Width:  min(max(0, img.SourceSize.Width), available.Width),
		Height: min(max(0, img.SourceSize.Height), available.Height),
	}
}

func (img *Image) arrangeContent(rect Rect) {
	img.layoutRect = rect
}

func (img *Image) render(s Surface) {
	if img.layoutRect.IsEmpty() {
		return
	}
	s.DrawRect(img.layoutRect, img.Tint, img.Source)
}
