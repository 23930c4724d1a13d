package ocean

import (
	"image"
	"image/color"
	"math"

	"github.com/gogpu/sprite"
	"github.com/gogpu/sprite/texture"
)

// DefaultTypes builds the three built-in swell types from procedurally
// generated sprite sheets, so an ocean renders without any image
// assets: small wind swells, broader mid-water swells, and white foam
// crests near the surface.
func DefaultTypes(store *texture.Store) ([]SwellType, error) {
	small, err := store.FromImage("ocean/swell_small",
		swellSheet(64, 24, 4, smallSwellPixel))
	if err != nil {
		return nil, err
	}
	medium, err := store.FromImage("ocean/swell_medium",
		swellSheet(128, 40, 4, mediumSwellPixel))
	if err != nil {
		return nil, err
	}
	crest, err := store.FromImage("ocean/crest",
		swellSheet(48, 16, 3, crestPixel))
	if err != nil {
		return nil, err
	}

	return []SwellType{
		{
			Texture: small, FrameW: 64, FrameH: 24,
			FrameCount: 4, FrameDuration: 0.15,
			MinSpeed: 30, MaxSpeed: 50,
			MinScale: 0.8, MaxScale: 1.2,
			SpawnWeight: 3,
			DepthMin:    0.1, DepthMax: 0.9,
			VaryTint: true, TintVariation: 20,
		},
		{
			Texture: medium, FrameW: 128, FrameH: 40,
			FrameCount: 4, FrameDuration: 0.2,
			MinSpeed: 20, MaxSpeed: 40,
			MinScale: 0.9, MaxScale: 1.3,
			SpawnWeight: 2,
			DepthMin:    0.2, DepthMax: 0.7,
			VaryTint: true, TintVariation: 15,
		},
		{
			Texture: crest, FrameW: 48, FrameH: 16,
			FrameCount: 3, FrameDuration: 0.12,
			MinSpeed: 40, MaxSpeed: 60,
			MinScale: 0.7, MaxScale: 1.1,
			SpawnWeight: 2.5,
			DepthMin:    0, DepthMax: 0.4,
		},
	}, nil
}

// swellSheet renders frames side by side into one image, calling pixel
// with frame-local coordinates.
func swellSheet(frameW, frameH, frames int, pixel func(frame, x, y int) sprite.Color) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, frameW*frames, frameH))
	for f := 0; f < frames; f++ {
		for y := 0; y < frameH; y++ {
			for x := 0; x < frameW; x++ {
				c := pixel(f, x, y)
				img.SetNRGBA(f*frameW+x, y, color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A})
			}
		}
	}
	return img
}

// smallSwellPixel draws a thin sine ridge fading with distance, phased
// per frame so the ridge rolls.
func smallSwellPixel(frame, x, y int) sprite.Color {
	phase := float32(frame) * 0.25 * 2 * math.Pi
	waveY := 16 + sin32((float32(x)/64+phase)*math.Pi)*8
	dist := abs32(float32(y) - waveY)
	if dist >= 6 {
		return sprite.Transparent
	}
	a := 1 - dist/6
	return sprite.Color{
		R: uint8(100 + a*100),
		G: uint8(140 + a*80),
		B: uint8(180 + a*60),
		A: uint8(a * 180),
	}
}

// mediumSwellPixel is the same ridge, wider and taller.
func mediumSwellPixel(frame, x, y int) sprite.Color {
	phase := float32(frame) * 0.25 * 2 * math.Pi
	waveY := 24 + sin32((float32(x)/128+phase)*math.Pi)*14
	dist := abs32(float32(y) - waveY)
	if dist >= 10 {
		return sprite.Transparent
	}
	a := 1 - dist/10
	return sprite.Color{
		R: uint8(80 + a*80),
		G: uint8(120 + a*80),
		B: uint8(170 + a*60),
		A: uint8(a * 200),
	}
}

// crestPixel draws broken white foam along a wobbling line.
func crestPixel(frame, x, y int) sprite.Color {
	phase := float32(frame) * 0.33
	foamLine := 8 + sin32(float32(x)*0.2+phase*6.28)*3
	dist := abs32(float32(y) - foamLine)
	if dist >= 5 {
		return sprite.Transparent
	}
	a := (1 - dist/5) * (0.7 + sin32(float32(x)*0.5)*0.3)
	return sprite.Color{R: 0xF0, G: 0xF8, B: 0xFF, A: uint8(a * 220)}
}

func sin32(x float32) float32 {
	return float32(math.Sin(float64(x)))
}

func abs32(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}
