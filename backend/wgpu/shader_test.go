//go:build !nogpu

package wgpu

import (
	"encoding/binary"
	"math"
	"testing"

	"github.com/gogpu/naga"

	"github.com/gogpu/sprite"
)

// spirvMagic is the first word of a valid SPIR-V module.
const spirvMagic = 0x07230203

func TestSpriteShaderCompiles(t *testing.T) {
	if spriteShaderSource == "" {
		t.Fatal("embedded sprite shader source is empty")
	}

	spirv, err := naga.Compile(spriteShaderSource)
	if err != nil {
		t.Fatalf("compile sprite shader: %v", err)
	}
	if len(spirv) == 0 || len(spirv)%4 != 0 {
		t.Fatalf("SPIR-V output length = %d, want non-zero multiple of 4", len(spirv))
	}
	if magic := binary.LittleEndian.Uint32(spirv[:4]); magic != spirvMagic {
		t.Errorf("SPIR-V magic = %#x, want %#x", magic, spirvMagic)
	}
}

func TestVertexLayoutMatchesStride(t *testing.T) {
	layouts := spriteVertexLayout()
	if len(layouts) != 1 {
		t.Fatalf("got %d vertex buffer layouts, want 1", len(layouts))
	}
	if got := layouts[0].ArrayStride; got != gpuVertexStride {
		t.Errorf("ArrayStride = %d, want %d", got, gpuVertexStride)
	}
	if got := len(layouts[0].Attributes); got != 3 {
		t.Errorf("got %d attributes, want 3", got)
	}
}

func TestPackVertices(t *testing.T) {
	verts := []sprite.Vertex{
		{X: 1, Y: 2, Z: 0.5, U: 0.25, V: 0.75, ABGR: sprite.Color{R: 255, G: 0, B: 0, A: 128}.PackABGR()},
	}
	data := packVertices(verts)
	if len(data) != gpuVertexStride {
		t.Fatalf("packed %d bytes, want %d", len(data), gpuVertexStride)
	}

	f32 := func(off int) float32 {
		return math.Float32frombits(binary.LittleEndian.Uint32(data[off:]))
	}
	if f32(0) != 1 || f32(4) != 2 || f32(8) != 0.5 {
		t.Errorf("position = (%v, %v, %v), want (1, 2, 0.5)", f32(0), f32(4), f32(8))
	}
	if f32(12) != 0.25 || f32(16) != 0.75 {
		t.Errorf("tex_coord = (%v, %v), want (0.25, 0.75)", f32(12), f32(16))
	}
	if f32(20) != 1 || f32(24) != 0 || f32(28) != 0 {
		t.Errorf("rgb = (%v, %v, %v), want (1, 0, 0)", f32(20), f32(24), f32(28))
	}
	if got, want := f32(32), float32(128)/255; got != want {
		t.Errorf("alpha = %v, want %v", got, want)
	}
}
