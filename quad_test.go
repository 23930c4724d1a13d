package sprite

import (
	"math"
	"testing"
)

func testTexture(w, h int) Texture {
	return Texture{ID: 1, Width: w, Height: h}
}

func TestBuildQuad_FullImageUVs(t *testing.T) {
	quad, ok := BuildQuad(testTexture(64, 32), 10, 20, 0, nil)
	if !ok {
		t.Fatal("BuildQuad failed for a valid full-image draw")
	}

	wantUV := [4][2]float32{{0, 0}, {1, 0}, {0, 1}, {1, 1}}
	for i, v := range quad {
		if v.U != wantUV[i][0] || v.V != wantUV[i][1] {
			t.Errorf("corner %d: UV = (%v, %v), want (%v, %v)", i, v.U, v.V, wantUV[i][0], wantUV[i][1])
		}
	}
}

func TestBuildQuad_RegionUVs(t *testing.T) {
	// 16x16 frame at (32, 16) in a 128x64 sheet.
	region := NewRect(32, 16, 16, 16)
	quad, ok := BuildQuad(testTexture(128, 64), 0, 0, 0, &DrawOptions{Region: &region})
	if !ok {
		t.Fatal("BuildQuad failed for a valid region draw")
	}

	u0, v0 := float32(32)/128, float32(16)/64
	u1, v1 := float32(32+16)/128, float32(16+16)/64
	wantUV := [4][2]float32{{u0, v0}, {u1, v0}, {u0, v1}, {u1, v1}}
	for i, v := range quad {
		if v.U != wantUV[i][0] || v.V != wantUV[i][1] {
			t.Errorf("corner %d: UV = (%v, %v), want (%v, %v)", i, v.U, v.V, wantUV[i][0], wantUV[i][1])
		}
	}
}

func TestBuildQuad_DefaultSizes(t *testing.T) {
	region := NewRect(0, 0, 16, 8)

	tests := []struct {
		name         string
		opts         *DrawOptions
		wantW, wantH float32
	}{
		{name: "native size", opts: nil, wantW: 64, wantH: 32},
		{name: "explicit size", opts: &DrawOptions{W: 10, H: 20}, wantW: 10, wantH: 20},
		{name: "region size", opts: &DrawOptions{Region: &region}, wantW: 16, wantH: 8},
		{name: "region with explicit size", opts: &DrawOptions{W: 48, H: 24, Region: &region}, wantW: 48, wantH: 24},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			quad, ok := BuildQuad(testTexture(64, 32), 100, 200, 0, tt.opts)
			if !ok {
				t.Fatal("BuildQuad failed")
			}
			if got := quad[3].X - quad[0].X; got != tt.wantW {
				t.Errorf("width = %v, want %v", got, tt.wantW)
			}
			if got := quad[3].Y - quad[0].Y; got != tt.wantH {
				t.Errorf("height = %v, want %v", got, tt.wantH)
			}
		})
	}
}

func TestBuildQuad_ZeroRotationMatchesUnrotated(t *testing.T) {
	// Origin must not influence unrotated output, whatever its value.
	origins := []*Point{nil, {X: 0, Y: 0}, {X: 1, Y: 1}, {X: 0.25, Y: 0.75}}

	base, ok := BuildQuad(testTexture(40, 30), 12, 34, 0.5, nil)
	if !ok {
		t.Fatal("BuildQuad failed")
	}

	for _, org := range origins {
		quad, ok := BuildQuad(testTexture(40, 30), 12, 34, 0.5, &DrawOptions{Rotation: 0, Origin: org})
		if !ok {
			t.Fatal("BuildQuad failed")
		}
		if quad != base {
			t.Errorf("origin %v: zero-rotation quad differs from unrotated quad", org)
		}
	}
}

func TestBuildQuad_QuarterTurnAboutCenter(t *testing.T) {
	// A 20x10 quad at (0,0) rotated 90 degrees clockwise about its
	// center occupies the same center with swapped extents.
	quad, ok := BuildQuad(testTexture(20, 10), 0, 0, 0, &DrawOptions{Rotation: math.Pi / 2})
	if !ok {
		t.Fatal("BuildQuad failed")
	}

	const eps = 1e-4
	// TL (-10,-5) about center (10,5) maps to (cx+5, cy-10) = (15, -5).
	wantTL := Point{X: 15, Y: -5}
	if math.Abs(float64(quad[0].X-wantTL.X)) > eps || math.Abs(float64(quad[0].Y-wantTL.Y)) > eps {
		t.Errorf("rotated TL = (%v, %v), want (%v, %v)", quad[0].X, quad[0].Y, wantTL.X, wantTL.Y)
	}
	// BR (10,5) maps to (cx-5, cy+10) = (5, 15).
	wantBR := Point{X: 5, Y: 15}
	if math.Abs(float64(quad[3].X-wantBR.X)) > eps || math.Abs(float64(quad[3].Y-wantBR.Y)) > eps {
		t.Errorf("rotated BR = (%v, %v), want (%v, %v)", quad[3].X, quad[3].Y, wantBR.X, wantBR.Y)
	}
}

func TestBuildQuad_RotationAboutTopLeft(t *testing.T) {
	// Rotating about the top-left origin keeps the TL corner pinned.
	quad, ok := BuildQuad(testTexture(20, 10), 7, 9, 0, &DrawOptions{
		Rotation: 1.234,
		Origin:   &Point{X: 0, Y: 0},
	})
	if !ok {
		t.Fatal("BuildQuad failed")
	}
	if quad[0].X != 7 || quad[0].Y != 9 {
		t.Errorf("TL moved to (%v, %v), want (7, 9)", quad[0].X, quad[0].Y)
	}
}

func TestBuildQuad_DepthAndTint(t *testing.T) {
	tint := Color{R: 1, G: 2, B: 3, A: 4}
	quad, ok := BuildQuad(testTexture(8, 8), 0, 0, 0.25, &DrawOptions{Tint: &tint})
	if !ok {
		t.Fatal("BuildQuad failed")
	}
	for i, v := range quad {
		if v.Z != 0.25 {
			t.Errorf("corner %d: depth = %v, want 0.25", i, v.Z)
		}
		if v.ABGR != tint.PackABGR() {
			t.Errorf("corner %d: color = %#08x, want %#08x", i, v.ABGR, tint.PackABGR())
		}
	}
}

func TestBuildQuad_Degenerate(t *testing.T) {
	empty := NewRect(0, 0, 0, 16)

	tests := []struct {
		name string
		tex  Texture
		opts *DrawOptions
	}{
		{name: "invalid handle", tex: Texture{Width: 8, Height: 8}},
		{name: "zero-width image", tex: Texture{ID: 1, Width: 0, Height: 8}},
		{name: "zero-height image", tex: Texture{ID: 1, Width: 8, Height: 0}},
		{name: "empty region", tex: testTexture(8, 8), opts: &DrawOptions{Region: &empty}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, ok := BuildQuad(tt.tex, 0, 0, 0, tt.opts); ok {
				t.Error("BuildQuad succeeded for a degenerate request")
			}
		})
	}
}

func TestExpandQuad_TriangleOrder(t *testing.T) {
	var quad [4]Vertex
	for i := range quad {
		quad[i].X = float32(i)
	}

	verts := ExpandQuad(nil, quad)
	if len(verts) != VerticesPerSprite {
		t.Fatalf("ExpandQuad produced %d vertices, want %d", len(verts), VerticesPerSprite)
	}
	// TL,TR,BL then TR,BR,BL.
	wantOrder := []float32{0, 1, 2, 1, 3, 2}
	for i, v := range verts {
		if v.X != wantOrder[i] {
			t.Errorf("vertex %d came from corner %v, want %v", i, v.X, wantOrder[i])
		}
	}
}
