// Package ocean renders a dynamic water surface: a vertical color
// gradient with animated swell sprites that spawn at the right edge of
// the region and drift across it. Each swell gets a randomized speed,
// scale, start frame, and tint from its type's configured ranges, and a
// depth within the type's band that places it vertically and orders it
// against other swells.
package ocean

import (
	"fmt"
	"slices"

	"github.com/gogpu/sprite"
	"github.com/gogpu/sprite/anim"
	"github.com/gogpu/sprite/texture"
)

// DefaultDensity is the default spawn rate in swells per second.
const DefaultDensity = 3.0

// gradientStrips is the number of horizontal bands the base water
// gradient is drawn with.
const gradientStrips = 50

// SwellType configures one kind of swell: its sprite sheet, animation
// timing, and the ranges its spawned instances are randomized within.
type SwellType struct {
	// Texture holds the frames arranged horizontally.
	Texture sprite.Texture

	// FrameW, FrameH are the pixel size of one frame.
	FrameW, FrameH float32

	// FrameCount and FrameDuration define the looping animation.
	FrameCount    int
	FrameDuration float32

	// MinSpeed, MaxSpeed bound the leftward drift in pixels per second.
	MinSpeed, MaxSpeed float32

	// MinScale, MaxScale bound the per-swell size multiplier.
	MinScale, MaxScale float32

	// SpawnWeight is this type's share of the weighted random pick.
	SpawnWeight float32

	// DepthMin, DepthMax bound the normalized depth band: 0 is the top
	// of the region (furthest back), 1 the bottom (nearest).
	DepthMin, DepthMax float32

	// VaryTint darkens each spawn's tint by up to TintVariation per
	// channel, for visual variety. Blue varies half as much so the
	// water keeps its hue.
	VaryTint      bool
	TintVariation uint8
}

// loadedType pairs a swell config with its prebuilt animation.
type loadedType struct {
	config SwellType
	anim   anim.Animation
}

// activeSwell is one swell instance drifting across the region.
type activeSwell struct {
	typeIndex int
	sprite    *anim.Sprite
	x, y      float32
	speed     float32
	scale     float32
	depth     float32
	tint      sprite.Color
}

// System owns the swell types, the live swell instances, and the spawn
// state for one ocean region. It is not safe for concurrent use.
type System struct {
	base sprite.Texture

	regionX, regionY float32
	regionW, regionH float32

	topColor    sprite.Color
	bottomColor sprite.Color

	types       []loadedType
	totalWeight float32

	swells []activeSwell

	density         float32
	spawnTimer      float32
	speedMultiplier float32

	seed uint32
}

// NewSystem creates an ocean system drawing its gradient with the
// store's shared white texture. The region defaults to the lower half
// of a 640x360 target; call SetRegion to place it.
func NewSystem(store *texture.Store) (*System, error) {
	base, err := store.White()
	if err != nil {
		return nil, fmt.Errorf("ocean: base texture: %w", err)
	}
	return &System{
		base:            base,
		regionY:         180,
		regionW:         640,
		regionH:         180,
		topColor:        sprite.Color{R: 30, G: 60, B: 120, A: 255},
		bottomColor:     sprite.Color{R: 10, G: 30, B: 60, A: 255},
		density:         DefaultDensity,
		speedMultiplier: 1,
		seed:            12345,
	}, nil
}

// SetRegion places the rectangle the ocean fills and swells drift
// across.
func (s *System) SetRegion(x, y, width, height float32) {
	s.regionX = x
	s.regionY = y
	s.regionW = width
	s.regionH = height
}

// SetBaseColor sets the water gradient from top to bottom.
func (s *System) SetBaseColor(top, bottom sprite.Color) {
	s.topColor = top
	s.bottomColor = bottom
}

// SetDensity sets the spawn rate in swells per second.
func (s *System) SetDensity(density float32) {
	s.density = density
}

// SetScrollSpeed scales every swell's drift speed.
func (s *System) SetScrollSpeed(multiplier float32) {
	s.speedMultiplier = multiplier
}

// AddSwellType registers a swell type and its spawn weight.
func (s *System) AddSwellType(t SwellType) {
	s.types = append(s.types, loadedType{
		config: t,
		anim:   anim.FromGrid(0, 0, t.FrameW, t.FrameH, t.FrameCount, t.FrameDuration, true),
	})
	s.totalWeight += t.SpawnWeight
}

// ClearSwellTypes removes all registered types. Live swells of the old
// types are dropped too, since they index into the type table.
func (s *System) ClearSwellTypes() {
	s.types = nil
	s.totalWeight = 0
	s.swells = nil
}

// ActiveSwells returns the number of live swell instances.
func (s *System) ActiveSwells() int {
	return len(s.swells)
}

// Update advances swell animation and drift by dt seconds, culls swells
// that left the region on the left, and spawns new ones at the
// configured density.
func (s *System) Update(dt float32) {
	if len(s.types) == 0 {
		return
	}

	for i := range s.swells {
		sw := &s.swells[i]
		sw.sprite.Update(dt)
		sw.x -= sw.speed * s.speedMultiplier * dt
	}

	kept := s.swells[:0]
	for i := range s.swells {
		sw := s.swells[i]
		cfg := &s.types[sw.typeIndex].config
		if sw.x >= s.regionX-cfg.FrameW*sw.scale {
			kept = append(kept, sw)
		}
	}
	s.swells = kept

	if s.density <= 0 {
		return
	}
	s.spawnTimer += dt
	interval := 1 / s.density
	for s.spawnTimer >= interval {
		s.spawnTimer -= interval
		s.spawn()
	}
}

// spawn creates one swell of a weighted-random type just past the right
// edge of the region.
func (s *System) spawn() {
	if len(s.types) == 0 || s.totalWeight <= 0 {
		return
	}

	roll := s.randomFloat(0, s.totalWeight)
	idx := 0
	var cumulative float32
	for i := range s.types {
		cumulative += s.types[i].config.SpawnWeight
		if roll <= cumulative {
			idx = i
			break
		}
	}

	t := &s.types[idx]
	cfg := t.config

	sw := activeSwell{
		typeIndex: idx,
		sprite:    anim.NewSprite(cfg.Texture, t.anim),
		x:         s.regionX + s.regionW,
	}
	if cfg.FrameCount > 1 {
		sw.sprite.SetFrame(s.randomInt(0, cfg.FrameCount-1))
	}

	// Depth picks the vertical position within the region and the
	// back-to-front order among swells.
	sw.depth = s.randomFloat(cfg.DepthMin, cfg.DepthMax)
	sw.y = s.regionY + sw.depth*(s.regionH-cfg.FrameH)

	sw.speed = s.randomFloat(cfg.MinSpeed, cfg.MaxSpeed)
	sw.scale = s.randomFloat(cfg.MinScale, cfg.MaxScale)

	if cfg.VaryTint && cfg.TintVariation > 0 {
		v := int(cfg.TintVariation)
		sw.tint = sprite.Color{
			R: uint8(255 - s.randomInt(0, v)),
			G: uint8(255 - s.randomInt(0, v)),
			B: uint8(255 - s.randomInt(0, v/2)),
			A: 255,
		}
	} else {
		sw.tint = sprite.White
	}

	s.swells = append(s.swells, sw)
}

// Render draws the base gradient and then every swell, back to front by
// depth.
func (s *System) Render(b *sprite.Batch) {
	if !s.base.Valid() {
		return
	}

	stripH := s.regionH / gradientStrips
	for i := 0; i < gradientStrips; i++ {
		t := float32(i) / (gradientStrips - 1)
		c := lerpColor(s.topColor, s.bottomColor, t)
		b.Draw(s.base, s.regionX, s.regionY+float32(i)*stripH, &sprite.DrawOptions{
			W:    s.regionW,
			H:    stripH + 1,
			Tint: &c,
		})
	}

	slices.SortStableFunc(s.swells, func(a, c activeSwell) int {
		switch {
		case a.depth < c.depth:
			return -1
		case a.depth > c.depth:
			return 1
		default:
			return 0
		}
	})

	for i := range s.swells {
		sw := &s.swells[i]
		cfg := &s.types[sw.typeIndex].config
		sw.sprite.Draw(b, sw.x, sw.y, &sprite.DrawOptions{
			W:    cfg.FrameW * sw.scale,
			H:    cfg.FrameH * sw.scale,
			Tint: &sw.tint,
		})
	}
}

// lerpColor interpolates the RGB channels between a and b; the result
// is opaque.
func lerpColor(a, b sprite.Color, t float32) sprite.Color {
	return sprite.Color{
		R: uint8(float32(a.R) + t*(float32(b.R)-float32(a.R))),
		G: uint8(float32(a.G) + t*(float32(b.G)-float32(a.G))),
		B: uint8(float32(a.B) + t*(float32(b.B)-float32(a.B))),
		A: 255,
	}
}

// randomFloat steps the LCG and maps it into [min, max). The fixed seed
// makes spawn sequences deterministic, which keeps visual output
// reproducible across runs.
func (s *System) randomFloat(min, max float32) float32 {
	s.seed = s.seed*1103515245 + 12345
	t := float32(s.seed%10000) / 10000
	return min + t*(max-min)
}

// randomInt steps the LCG and maps it into [min, max] inclusive.
func (s *System) randomInt(min, max int) int {
	s.seed = s.seed*1103515245 + 12345
	return min + int(s.seed%uint32(max-min+1))
}
