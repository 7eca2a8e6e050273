package ui

import "image/color"

// Surface is the drawing backend consumed by Render.
//
// DrawRect draws r filled with fill. When texture is not empty the backend
// stretches the texture registered under that key over r, modulated by fill.
type Surface interface {
	DrawRect(r Rect, fill color.NRGBA, texture string)
}

// SurfaceFunc adapts a function to the Surface interface
type SurfaceFunc func(r Rect, fill color.NRGBA, texture string)

// DrawRect calls f
func (f SurfaceFunc) DrawRect(r Rect, fill color.NRGBA, texture string) {
	f(r, fill, texture)
}
