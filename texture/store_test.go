package texture

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/gogpu/sprite"
	"github.com/gogpu/sprite/recording"
)

func encodePNG(t *testing.T, img image.Image) *bytes.Reader {
	t.Helper()
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("encode png: %v", err)
	}
	return bytes.NewReader(buf.Bytes())
}

func TestLoadPNG(t *testing.T) {
	backend := recording.New()
	store, err := NewStore(backend, 8)
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}

	img := image.NewNRGBA(image.Rect(0, 0, 3, 2))
	img.SetNRGBA(0, 0, color.NRGBA{R: 255, A: 255})

	tex, err := store.Load("hero", encodePNG(t, img))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if tex.Width != 3 || tex.Height != 2 {
		t.Errorf("texture size = %dx%d, want 3x2", tex.Width, tex.Height)
	}
	if !tex.Valid() {
		t.Error("loaded texture is not valid")
	}

	// A second load under the same name must hit the cache, not decode.
	again, err := store.Load("hero", bytes.NewReader(nil))
	if err != nil {
		t.Fatalf("cached Load: %v", err)
	}
	if again != tex {
		t.Errorf("cached load returned %+v, want %+v", again, tex)
	}
	if got := backend.LiveTextures(); got != 1 {
		t.Errorf("LiveTextures = %d, want 1", got)
	}
}

func TestLoadRejectsGarbage(t *testing.T) {
	store, err := NewStore(recording.New(), 8)
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}
	if _, err := store.Load("bad", bytes.NewReader([]byte("not an image"))); err == nil {
		t.Error("Load of garbage bytes succeeded")
	}
}

func TestEvictionDestroysTextures(t *testing.T) {
	backend := recording.New()
	store, err := NewStore(backend, 2)
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}

	for _, name := range []string{"a", "b", "c"} {
		if _, err := store.SolidColor(name, sprite.Red, 2, 2); err != nil {
			t.Fatalf("SolidColor %q: %v", name, err)
		}
	}

	if got := store.Len(); got != 2 {
		t.Errorf("Len = %d, want 2", got)
	}
	if got := backend.LiveTextures(); got != 2 {
		t.Errorf("LiveTextures = %d after eviction, want 2", got)
	}
	if _, ok := store.Lookup("a"); ok {
		t.Error("oldest entry still cached after eviction")
	}
}

func TestFromImageScaled(t *testing.T) {
	backend := recording.New()
	store, err := NewStore(backend, 8)
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}

	src := image.NewNRGBA(image.Rect(0, 0, 64, 64))
	tex, err := store.FromImageScaled("scaled", src, 16, 16)
	if err != nil {
		t.Fatalf("FromImageScaled: %v", err)
	}
	if tex.Width != 16 || tex.Height != 16 {
		t.Errorf("texture size = %dx%d, want 16x16", tex.Width, tex.Height)
	}
}

func TestWhiteSharedAndCloseDestroysAll(t *testing.T) {
	backend := recording.New()
	store, err := NewStore(backend, 8)
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}

	w1, err := store.White()
	if err != nil {
		t.Fatalf("White: %v", err)
	}
	w2, err := store.White()
	if err != nil {
		t.Fatalf("White: %v", err)
	}
	if w1 != w2 {
		t.Error("White returned different handles")
	}

	if _, err := store.SolidColor("solid", sprite.Blue, 4, 4); err != nil {
		t.Fatalf("SolidColor: %v", err)
	}

	store.Close()
	if got := backend.LiveTextures(); got != 0 {
		t.Errorf("LiveTextures = %d after Close, want 0", got)
	}
}

func TestEmptyNameRejected(t *testing.T) {
	store, err := NewStore(recording.New(), 8)
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}
	if _, err := store.FromImage("", image.NewNRGBA(image.Rect(0, 0, 1, 1))); !errors.Is(err, ErrEmptyName) {
		t.Errorf("FromImage with empty name = %v, want ErrEmptyName", err)
	}
}

func TestNilBackendRejected(t *testing.T) {
	if _, err := NewStore(nil, 8); !errors.Is(err, ErrNilBackend) {
		t.Errorf("NewStore(nil) = %v, want ErrNilBackend", err)
	}
}
