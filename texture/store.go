// Package texture loads images and manages their GPU texture handles.
//
// A Store decodes PNG and JPEG images, converts them to the straight-alpha
// RGBA layout the backends upload, and caches the resulting handles in an
// LRU keyed by name. Evicted or removed entries have their GPU resources
// destroyed through the backend.
package texture

import (
	"errors"
	"fmt"
	"image"
	"io"
	"os"

	// Registered decoders for Store.Load.
	_ "image/jpeg"
	_ "image/png"

	lru "github.com/hashicorp/golang-lru/v2"
	xdraw "golang.org/x/image/draw"

	"github.com/gogpu/sprite"
)

// Store errors.
var (
	// ErrNilBackend is returned when constructing a store without a backend.
	ErrNilBackend = errors.New("texture: backend is nil")

	// ErrEmptyName is returned when a texture is registered under an
	// empty name.
	ErrEmptyName = errors.New("texture: name is empty")
)

// DefaultCapacity is the cache capacity used when NewStore receives a
// non-positive one.
const DefaultCapacity = 256

// Store caches textures by name on top of a sprite.TextureBackend.
//
// Store is not safe for concurrent use, matching the backends it wraps.
type Store struct {
	backend sprite.TextureBackend
	cache   *lru.Cache[string, sprite.Texture]
	white   sprite.Texture
}

// NewStore creates a store with the given cache capacity. When the cache
// is full the least recently used texture is evicted and destroyed.
func NewStore(backend sprite.TextureBackend, capacity int) (*Store, error) {
	if backend == nil {
		return nil, ErrNilBackend
	}
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	cache, err := lru.NewWithEvict[string, sprite.Texture](capacity, func(name string, tex sprite.Texture) {
		sprite.Logger().Debug("texture: evicting", "name", name, "id", tex.ID)
		backend.DestroyTexture(tex)
	})
	if err != nil {
		return nil, fmt.Errorf("texture: create cache: %w", err)
	}
	return &Store{backend: backend, cache: cache}, nil
}

// Load decodes a PNG or JPEG image from r and registers it under name.
// If name is already cached, the cached handle is returned and r is not
// read.
func (s *Store) Load(name string, r io.Reader) (sprite.Texture, error) {
	if tex, ok := s.cache.Get(name); ok {
		return tex, nil
	}
	img, format, err := image.Decode(r)
	if err != nil {
		return sprite.Texture{}, fmt.Errorf("texture: decode %q: %w", name, err)
	}
	sprite.Logger().Debug("texture: decoded", "name", name, "format", format,
		"width", img.Bounds().Dx(), "height", img.Bounds().Dy())
	return s.FromImage(name, img)
}

// LoadFile loads a texture from disk, keyed by path.
func (s *Store) LoadFile(path string) (sprite.Texture, error) {
	if tex, ok := s.cache.Get(path); ok {
		return tex, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return sprite.Texture{}, fmt.Errorf("texture: open %q: %w", path, err)
	}
	defer f.Close()
	return s.Load(path, f)
}

// FromImage uploads img under name. The image is converted to straight
// alpha RGBA regardless of its source format.
func (s *Store) FromImage(name string, img image.Image) (sprite.Texture, error) {
	if name == "" {
		return sprite.Texture{}, ErrEmptyName
	}
	if tex, ok := s.cache.Get(name); ok {
		return tex, nil
	}
	return s.upload(name, toNRGBA(img))
}

// FromImageScaled uploads img resampled to width x height, for assets
// authored at a different resolution than they are drawn at.
func (s *Store) FromImageScaled(name string, img image.Image, width, height int) (sprite.Texture, error) {
	if name == "" {
		return sprite.Texture{}, ErrEmptyName
	}
	if tex, ok := s.cache.Get(name); ok {
		return tex, nil
	}
	dst := image.NewNRGBA(image.Rect(0, 0, width, height))
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), img, img.Bounds(), xdraw.Src, nil)
	return s.upload(name, dst)
}

// SolidColor creates a width x height texture filled with c, useful for
// placeholder art and untextured fills.
func (s *Store) SolidColor(name string, c sprite.Color, width, height int) (sprite.Texture, error) {
	if name == "" {
		return sprite.Texture{}, ErrEmptyName
	}
	if tex, ok := s.cache.Get(name); ok {
		return tex, nil
	}
	pixels := make([]byte, width*height*4)
	for i := 0; i < len(pixels); i += 4 {
		pixels[i+0] = c.R
		pixels[i+1] = c.G
		pixels[i+2] = c.B
		pixels[i+3] = c.A
	}
	tex, err := s.backend.CreateTexture(width, height, pixels)
	if err != nil {
		return sprite.Texture{}, fmt.Errorf("texture: create %q: %w", name, err)
	}
	s.cache.Add(name, tex)
	return tex, nil
}

// White returns a shared 1x1 white texture, created on first use. It
// lives outside the cache and is only destroyed by Close.
func (s *Store) White() (sprite.Texture, error) {
	if s.white.Valid() {
		return s.white, nil
	}
	tex, err := s.backend.CreateTexture(1, 1, []byte{0xFF, 0xFF, 0xFF, 0xFF})
	if err != nil {
		return sprite.Texture{}, fmt.Errorf("texture: create white: %w", err)
	}
	s.white = tex
	return tex, nil
}

// Lookup returns the cached texture for name without loading anything.
func (s *Store) Lookup(name string) (sprite.Texture, bool) {
	return s.cache.Get(name)
}

// Remove evicts and destroys the texture registered under name.
func (s *Store) Remove(name string) {
	s.cache.Remove(name)
}

// Len returns the number of cached textures, not counting White.
func (s *Store) Len() int {
	return s.cache.Len()
}

// Close destroys every cached texture and the shared white texture. The
// store must not be used afterwards.
func (s *Store) Close() {
	s.cache.Purge()
	if s.white.Valid() {
		s.backend.DestroyTexture(s.white)
		s.white = sprite.Texture{}
	}
}

// upload sends an NRGBA image to the backend and caches the handle.
func (s *Store) upload(name string, img *image.NRGBA) (sprite.Texture, error) {
	b := img.Bounds()
	tex, err := s.backend.CreateTexture(b.Dx(), b.Dy(), img.Pix)
	if err != nil {
		return sprite.Texture{}, fmt.Errorf("texture: create %q: %w", name, err)
	}
	s.cache.Add(name, tex)
	return tex, nil
}

// toNRGBA converts an image to tightly packed straight-alpha RGBA.
func toNRGBA(img image.Image) *image.NRGBA {
	if src, ok := img.(*image.NRGBA); ok && src.Stride == src.Bounds().Dx()*4 && src.Bounds().Min == (image.Point{}) {
		return src
	}
	b := img.Bounds()
	dst := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	xdraw.Draw(dst, dst.Bounds(), img, b.Min, xdraw.Src)
	return dst
}
