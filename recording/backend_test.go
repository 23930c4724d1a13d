package recording

import (
	"errors"
	"testing"

	"github.com/gogpu/sprite"
)

func TestTransientBudget(t *testing.T) {
	b := New()
	b.MaxTransientVertices = 12

	if got := b.AvailTransientVertices(6); got != 6 {
		t.Fatalf("AvailTransientVertices(6) = %d, want 6", got)
	}
	if _, err := b.AllocTransientVertices(6); err != nil {
		t.Fatalf("first alloc: %v", err)
	}
	if err := b.Submit(0); err != nil {
		t.Fatalf("Submit: %v", err)
	}

	if got := b.AvailTransientVertices(12); got != 6 {
		t.Errorf("AvailTransientVertices(12) = %d after alloc, want 6", got)
	}
	if _, err := b.AllocTransientVertices(12); !errors.Is(err, sprite.ErrNoTransientSpace) {
		t.Errorf("over-budget alloc error = %v, want ErrNoTransientSpace", err)
	}

	b.Reset()
	if got := b.AvailTransientVertices(12); got != 12 {
		t.Errorf("AvailTransientVertices(12) = %d after Reset, want 12", got)
	}
	if len(b.Submissions()) != 0 {
		t.Error("Submissions not cleared by Reset")
	}
}

func TestSubmitWithoutAlloc(t *testing.T) {
	b := New()
	if err := b.Submit(0); !errors.Is(err, sprite.ErrNothingBound) {
		t.Errorf("Submit without alloc = %v, want ErrNothingBound", err)
	}
}

func TestTextureLifecycle(t *testing.T) {
	b := New()

	tex, err := b.CreateTexture(4, 4, make([]byte, 4*4*4))
	if err != nil {
		t.Fatalf("CreateTexture: %v", err)
	}
	if !tex.Valid() {
		t.Error("created texture is not valid")
	}
	if tex.Width != 4 || tex.Height != 4 {
		t.Errorf("texture size = %dx%d, want 4x4", tex.Width, tex.Height)
	}
	if got := b.LiveTextures(); got != 1 {
		t.Errorf("LiveTextures = %d, want 1", got)
	}

	// Handles survive Reset; only frame state is cleared.
	b.Reset()
	if got := b.LiveTextures(); got != 1 {
		t.Errorf("LiveTextures = %d after Reset, want 1", got)
	}

	b.DestroyTexture(tex)
	if got := b.LiveTextures(); got != 0 {
		t.Errorf("LiveTextures = %d after destroy, want 0", got)
	}
}

func TestCreateTextureRejectsBadInput(t *testing.T) {
	b := New()
	tests := []struct {
		name   string
		w, h   int
		pixels []byte
	}{
		{"zero width", 0, 4, make([]byte, 64)},
		{"zero height", 4, 0, make([]byte, 64)},
		{"short pixels", 4, 4, make([]byte, 15)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := b.CreateTexture(tt.w, tt.h, tt.pixels); !errors.Is(err, sprite.ErrInvalidTexture) {
				t.Errorf("CreateTexture = %v, want ErrInvalidTexture", err)
			}
		})
	}
}
