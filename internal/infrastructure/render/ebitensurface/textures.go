package ebitensurface

import (
	"fmt"
	"image"
	"image/color"
	_ "image/png"
	"io/fs"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
)

// Textures maps texture keys used by ui.Image.Source to ebiten images
type Textures struct {
	mu     sync.RWMutex
	images map[string]*ebiten.Image
}

// NewTextures creates an empty registry
func NewTextures() *Textures {
	return &Textures{images: make(map[string]*ebiten.Image)}
}

// Register stores img under key, replacing any previous image
func (t *Textures) Register(key string, img *ebiten.Image) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.images[key] = img
}

// Get returns the image registered under key
func (t *Textures) Get(key string) (*ebiten.Image, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	img, ok := t.images[key]
	return img, ok
}

// Len returns the number of registered textures
func (t *Textures) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.images)
}

// LoadPNG decodes path from fsys and registers it under key
func (t *Textures) LoadPNG(fsys fs.FS, key, path string) error {
	f, err := fsys.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open texture %s: %w", path, err)
	}
	defer f.Close()

	src, _, err := image.Decode(f)
	if err != nil {
		return fmt.Errorf("failed to decode texture %s: %w", path, err)
	}
	t.Register(key, ebiten.NewImageFromImage(src))
	return nil
}

// Checker builds a size×size checkerboard of cell-sized squares. Textures are
// tinted by the element color, so light greys keep the tint readable.
func Checker(size, cell int) *image.RGBA {
	light := color.RGBA{255, 255, 255, 255}
	dark := color.RGBA{160, 160, 160, 255}
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			c := light
			if (x/cell+y/cell)%2 == 1 {
				c = dark
			}
			img.SetRGBA(x, y, c)
		}
	}
	return img
}

// RegisterBuiltins registers the procedural textures layouts can refer to
func (t *Textures) RegisterBuiltins() {
	t.Register("checker", ebiten.NewImageFromImage(Checker(32, 8)))
}
