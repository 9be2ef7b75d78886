package squish

import (
	"fmt"
	"image/png"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
)

// Texture is a shared handle to a decoded image. Handles come from a
// TextureStore and are reference counted: Acquire and Retain increment the
// count, Release decrements it, and the pixel data is deallocated when the
// count reaches zero. The image is never mutated after load, so sharing one
// handle across any number of sprite components is safe.
type Texture struct {
	store *TextureStore
	path  string
	image *ebiten.Image
	refs  int
}

// NewTexture wraps an already decoded image in a standalone handle with one
// reference. Standalone handles are not tracked by any store.
func NewTexture(img *ebiten.Image) *Texture {
	return &Texture{image: img, refs: 1}
}

// Image returns the underlying image, or nil after the handle has been fully
// released.
func (t *Texture) Image() *ebiten.Image {
	return t.image
}

// Size returns the texture dimensions in pixels.
func (t *Texture) Size() Vec2 {
	if t.image == nil {
		return Vec2{}
	}
	b := t.image.Bounds()
	return Vec2{float64(b.Dx()), float64(b.Dy())}
}

// Retain adds a reference to the handle.
func (t *Texture) Retain() {
	t.refs++
}

// Release drops one reference. When the last reference is gone the handle is
// evicted from its store and the image memory is returned to the graphics
// driver. Releasing an already dead handle is a no-op.
func (t *Texture) Release() {
	if t.refs <= 0 {
		return
	}
	t.refs--
	if t.refs > 0 {
		return
	}
	if t.store != nil {
		delete(t.store.entries, t.path)
	}
	if t.image != nil {
		t.image.Deallocate()
		t.image = nil
	}
}

// TextureStore is a resource table mapping file paths to reference-counted
// textures. Each path is read and decoded at most once for the lifetime of
// its entry; further Acquire calls share the existing handle.
type TextureStore struct {
	entries map[string]*Texture
}

// NewTextureStore creates an empty store.
func NewTextureStore() *TextureStore {
	return &TextureStore{entries: make(map[string]*Texture)}
}

// Acquire returns a retained handle for the PNG at path, loading and decoding
// it on first use.
func (s *TextureStore) Acquire(path string) (*Texture, error) {
	if t, ok := s.entries[path]; ok {
		t.refs++
		return t, nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("squish: open texture %q: %w", path, err)
	}
	defer f.Close()

	img, err := png.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("squish: decode texture %q: %w", path, err)
	}

	t := &Texture{
		store: s,
		path:  path,
		image: ebiten.NewImageFromImage(img),
		refs:  1,
	}
	s.entries[path] = t
	return t, nil
}

// Len reports the number of live textures in the store.
func (s *TextureStore) Len() int {
	return len(s.entries)
}
