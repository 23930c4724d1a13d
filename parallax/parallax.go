// Package parallax renders scrolling, tiled background layers.
//
// A Layer tiles one texture (or one frame of a horizontal sprite sheet)
// across a region, offset by an accumulated scroll position. Optional
// vertical bobbing and horizontal wave motion animate the tiles, which
// is enough for ocean swells and drifting cloud banks. A Background
// stacks layers back to front.
package parallax

import (
	"math"

	"github.com/gogpu/sprite"
)

// Layer is one scrolling tiled layer. The zero value is inert until
// SetTexture is called.
type Layer struct {
	tex        sprite.Texture
	tileW      float32
	tileH      float32

	// Animation over a horizontal strip of frames.
	frameCount    int
	frameDuration float32
	animTime      float32
	frame         int

	// Scroll state, wrapped to one tile to keep precision.
	speedX, speedY   float32
	scrollX, scrollY float32

	// Vertical bob.
	bobAmplitude float32
	bobFrequency float32
	bobPhase     float32
	bobOffset    float32

	// Horizontal wave.
	waveAmplitude float32
	waveFrequency float32
	waveSpeed     float32
	waveTime      float32

	tint sprite.Color
	time float32
}

// NewLayer creates a layer tiling tex with the given tile size.
func NewLayer(tex sprite.Texture, tileW, tileH float32) *Layer {
	l := &Layer{}
	l.SetTexture(tex, tileW, tileH)
	return l
}

// SetTexture sets the layer texture and tile size. Any configured frame
// animation is reset to a single frame.
func (l *Layer) SetTexture(tex sprite.Texture, tileW, tileH float32) {
	l.tex = tex
	l.tileW = tileW
	l.tileH = tileH
	l.frameCount = 1
	l.frame = 0
	if l.tint == (sprite.Color{}) {
		l.tint = sprite.White
	}
}

// SetAnimation cycles through frameCount frames arranged horizontally in
// the texture, frameDuration seconds each.
func (l *Layer) SetAnimation(frameCount int, frameDuration float32) {
	l.frameCount = frameCount
	l.frameDuration = frameDuration
	l.animTime = 0
	l.frame = 0
}

// SetScroll sets the scroll speed in pixels per second. Negative speeds
// scroll left and up.
func (l *Layer) SetScroll(speedX, speedY float32) {
	l.speedX = speedX
	l.speedY = speedY
}

// SetVerticalBob makes the whole layer oscillate vertically: amplitude
// in pixels, frequency in oscillations per second, phase in cycles.
func (l *Layer) SetVerticalBob(amplitude, frequency, phase float32) {
	l.bobAmplitude = amplitude
	l.bobFrequency = frequency
	l.bobPhase = phase
}

// SetWaveMotion shifts tiles horizontally in a sine pattern based on
// their vertical position, a cheap water-surface effect.
func (l *Layer) SetWaveMotion(amplitude, frequency, speed float32) {
	l.waveAmplitude = amplitude
	l.waveFrequency = frequency
	l.waveSpeed = speed
}

// SetTint sets the layer tint.
func (l *Layer) SetTint(tint sprite.Color) { l.tint = tint }

// SetAlpha sets only the tint alpha.
func (l *Layer) SetAlpha(alpha uint8) { l.tint.A = alpha }

// ScrollX returns the current horizontal scroll offset, wrapped to one
// tile width.
func (l *Layer) ScrollX() float32 { return l.scrollX }

// ScrollY returns the current vertical scroll offset, wrapped to one
// tile height.
func (l *Layer) ScrollY() float32 { return l.scrollY }

// Update advances scroll, bob, wave, and frame animation by dt seconds.
func (l *Layer) Update(dt float32) {
	l.time += dt

	l.scrollX += l.speedX * dt
	l.scrollY += l.speedY * dt
	if l.tileW > 0 {
		for l.scrollX >= l.tileW {
			l.scrollX -= l.tileW
		}
		for l.scrollX < 0 {
			l.scrollX += l.tileW
		}
	}
	if l.tileH > 0 {
		for l.scrollY >= l.tileH {
			l.scrollY -= l.tileH
		}
		for l.scrollY < 0 {
			l.scrollY += l.tileH
		}
	}

	if l.bobAmplitude > 0 {
		l.bobOffset = sin32((l.time*l.bobFrequency+l.bobPhase)*2*math.Pi) * l.bobAmplitude
	}

	l.waveTime += l.waveSpeed * dt

	if l.frameCount > 1 {
		l.animTime += dt
		for l.animTime >= l.frameDuration {
			l.animTime -= l.frameDuration
			l.frame = (l.frame + 1) % l.frameCount
		}
	}
}

// Render tiles the layer to fill the region at (x, y). Tiles overhang
// the region edges by up to one tile so scrolling never exposes gaps;
// the batch clips nothing, so callers size views accordingly.
func (l *Layer) Render(b *sprite.Batch, x, y, width, height float32) {
	if !l.tex.Valid() || l.tileW <= 0 || l.tileH <= 0 {
		return
	}

	src := sprite.Rect{
		X: float32(l.frame) * l.tileW,
		Y: 0,
		W: l.tileW,
		H: l.tileH,
	}

	startX := x - l.scrollX
	startY := y - l.scrollY + l.bobOffset

	// Start one tile before the region on each scrolling axis, so bob
	// and wave displacement cannot expose the top/left edge.
	if l.scrollX > 0 {
		startX -= l.tileW
	}
	if l.scrollY > 0 {
		startY -= l.tileH
	}

	opts := sprite.DrawOptions{
		W:      l.tileW,
		H:      l.tileH,
		Region: &src,
		Tint:   &l.tint,
	}
	for ty := startY; ty < y+height; ty += l.tileH {
		for tx := startX; tx < x+width+l.tileW; tx += l.tileW {
			drawX := tx
			if l.waveAmplitude > 0 {
				drawX += sin32((ty*l.waveFrequency/100+l.waveTime)*2*math.Pi) * l.waveAmplitude
			}
			b.Draw(l.tex, drawX, ty, &opts)
		}
	}
}

func sin32(x float32) float32 {
	return float32(math.Sin(float64(x)))
}

// Background stacks parallax layers, rendered in the order they were
// added: index 0 is the furthest back.
type Background struct {
	layers []*Layer
}

// AddLayer appends a layer at the front of the stack.
func (bg *Background) AddLayer(l *Layer) {
	bg.layers = append(bg.layers, l)
}

// Layer returns the layer at index for modification.
func (bg *Background) Layer(index int) *Layer {
	return bg.layers[index]
}

// LayerCount returns the number of layers.
func (bg *Background) LayerCount() int {
	return len(bg.layers)
}

// Clear removes all layers.
func (bg *Background) Clear() {
	bg.layers = nil
}

// Update advances all layers by dt seconds.
func (bg *Background) Update(dt float32) {
	for _, l := range bg.layers {
		l.Update(dt)
	}
}

// Render draws all layers back to front, filling the given region.
func (bg *Background) Render(b *sprite.Batch, x, y, width, height float32) {
	for _, l := range bg.layers {
		l.Render(b, x, y, width, height)
	}
}
