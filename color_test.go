package sprite

import (
	"image/color"
	"testing"
)

// Verify at compile time that Color implements color.Color.
var _ color.Color = Color{}

func TestColor_PackABGR(t *testing.T) {
	tests := []struct {
		name string
		c    Color
		want uint32
	}{
		{name: "opaque white", c: White, want: 0xFFFFFFFF},
		{name: "opaque black", c: Black, want: 0xFF000000},
		{name: "opaque red", c: Red, want: 0xFF0000FF},
		{name: "opaque green", c: Green, want: 0xFF00FF00},
		{name: "opaque blue", c: Blue, want: 0xFFFF0000},
		{name: "transparent", c: Transparent, want: 0x00000000},
		{name: "half alpha yellow", c: Yellow.WithAlpha(128), want: 0x8000FFFF},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.c.PackABGR(); got != tt.want {
				t.Errorf("PackABGR() = %#08x, want %#08x", got, tt.want)
			}
		})
	}
}

func TestColor_FromColorRoundtrip(t *testing.T) {
	orig := Color{R: 200, G: 100, B: 50, A: 255}
	got := FromColor(orig)
	if got != orig {
		t.Errorf("FromColor roundtrip: got %v, want %v", got, orig)
	}
}

func TestColor_RGB(t *testing.T) {
	c := RGB(10, 20, 30)
	want := Color{R: 10, G: 20, B: 30, A: 255}
	if c != want {
		t.Errorf("RGB() = %v, want %v", c, want)
	}
}
