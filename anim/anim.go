// Package anim provides frame-based sprite sheet animation on top of the
// batch renderer.
//
// An Animation is an immutable sequence of source regions within one
// sprite sheet. A Sprite pairs an Animation with a texture and playback
// state; call Update each frame with the elapsed time and Draw to queue
// the current frame on a batch.
package anim

import (
	"github.com/gogpu/sprite"
)

// DefaultFrameDuration is the per-frame duration used when a grid
// constructor receives a non-positive one.
const DefaultFrameDuration = 0.1

// Animation is a sequence of frames within a sprite sheet. The zero
// value is an empty animation; Sprite treats it as nothing to draw.
type Animation struct {
	// Frames are the source regions, in playback order.
	Frames []sprite.Rect

	// FrameDuration is the display time of each frame in seconds.
	FrameDuration float32

	// Loop wraps playback around instead of stopping on the last frame.
	Loop bool
}

// FromGrid builds an animation from a horizontal strip of equally sized
// frames starting at (startX, startY) in the sheet.
func FromGrid(startX, startY, frameW, frameH float32, frameCount int, duration float32, loop bool) Animation {
	if duration <= 0 {
		duration = DefaultFrameDuration
	}
	frames := make([]sprite.Rect, 0, frameCount)
	for i := 0; i < frameCount; i++ {
		frames = append(frames, sprite.Rect{
			X: startX + float32(i)*frameW,
			Y: startY,
			W: frameW,
			H: frameH,
		})
	}
	return Animation{Frames: frames, FrameDuration: duration, Loop: loop}
}

// FromGridVertical builds an animation from a vertical strip of equally
// sized frames starting at (startX, startY) in the sheet.
func FromGridVertical(startX, startY, frameW, frameH float32, frameCount int, duration float32, loop bool) Animation {
	if duration <= 0 {
		duration = DefaultFrameDuration
	}
	frames := make([]sprite.Rect, 0, frameCount)
	for i := 0; i < frameCount; i++ {
		frames = append(frames, sprite.Rect{
			X: startX,
			Y: startY + float32(i)*frameH,
			W: frameW,
			H: frameH,
		})
	}
	return Animation{Frames: frames, FrameDuration: duration, Loop: loop}
}

// Empty reports whether the animation has no frames.
func (a Animation) Empty() bool { return len(a.Frames) == 0 }

// FrameCount returns the number of frames.
func (a Animation) FrameCount() int { return len(a.Frames) }

// TotalDuration returns the duration of one full playback cycle.
func (a Animation) TotalDuration() float32 {
	return a.FrameDuration * float32(len(a.Frames))
}

// Sprite is an animated sprite instance: an animation, its texture, and
// playback state. The zero value draws nothing until SetAnimation is
// called.
type Sprite struct {
	tex  sprite.Texture
	anim Animation

	elapsed  float32
	frame    int
	speed    float32
	paused   bool
	finished bool
}

// NewSprite creates a sprite playing anim from the given sheet.
func NewSprite(tex sprite.Texture, anim Animation) *Sprite {
	return &Sprite{tex: tex, anim: anim, speed: 1}
}

// SetAnimation switches the sprite to a new animation. When reset is
// true, playback restarts from the first frame.
func (s *Sprite) SetAnimation(anim Animation, reset bool) {
	s.anim = anim
	if reset {
		s.elapsed = 0
		s.frame = 0
		s.finished = false
	}
}

// Update advances playback by dt seconds, scaled by the speed factor.
func (s *Sprite) Update(dt float32) {
	if s.anim.Empty() || s.paused {
		return
	}
	if s.finished && !s.anim.Loop {
		return
	}

	s.elapsed += dt * s.speed

	frameDur := s.anim.FrameDuration
	total := s.anim.FrameCount()

	if s.anim.Loop {
		cycle := frameDur * float32(total)
		for s.elapsed >= cycle {
			s.elapsed -= cycle
		}
		// Negative speed (or dt) plays backwards; wrap from the end.
		for s.elapsed < 0 {
			s.elapsed += cycle
		}
		s.frame = int(s.elapsed / frameDur)
		if s.frame >= total {
			s.frame = total - 1
		}
	} else {
		s.frame = int(s.elapsed / frameDur)
		if s.frame >= total {
			s.frame = total - 1
			s.finished = true
		}
		if s.frame < 0 {
			s.frame = 0
		}
	}
}

// Draw queues the current frame at (x, y). Extra draw options may be
// passed through opts; its Region is overridden with the current frame.
func (s *Sprite) Draw(b *sprite.Batch, x, y float32, opts *sprite.DrawOptions) {
	if s.anim.Empty() || !s.tex.Valid() {
		return
	}
	frame := s.anim.Frames[s.frame]
	var o sprite.DrawOptions
	if opts != nil {
		o = *opts
	}
	o.Region = &frame
	b.Draw(s.tex, x, y, &o)
}

// Play resumes playback.
func (s *Sprite) Play() { s.paused = false }

// Pause halts playback without losing position.
func (s *Sprite) Pause() { s.paused = true }

// Stop pauses playback and rewinds to the first frame.
func (s *Sprite) Stop() {
	s.paused = true
	s.elapsed = 0
	s.frame = 0
	s.finished = false
}

// Restart rewinds to the first frame and resumes playback.
func (s *Sprite) Restart() {
	s.elapsed = 0
	s.frame = 0
	s.finished = false
	s.paused = false
}

// SetSpeed sets the playback speed multiplier (1 is normal speed).
func (s *Sprite) SetSpeed(speed float32) { s.speed = speed }

// Speed returns the playback speed multiplier.
func (s *Sprite) Speed() float32 { return s.speed }

// SetFrame jumps to the given frame, ignoring out-of-range values.
func (s *Sprite) SetFrame(frame int) {
	if frame >= 0 && frame < s.anim.FrameCount() {
		s.frame = frame
		s.elapsed = float32(frame) * s.anim.FrameDuration
	}
}

// Frame returns the current frame index.
func (s *Sprite) Frame() int { return s.frame }

// Elapsed returns the elapsed playback time in seconds.
func (s *Sprite) Elapsed() float32 { return s.elapsed }

// IsFinished reports whether a non-looping animation has completed.
func (s *Sprite) IsFinished() bool { return s.finished }

// IsPaused reports whether playback is paused.
func (s *Sprite) IsPaused() bool { return s.paused }

// IsPlaying reports whether the sprite is actively animating.
func (s *Sprite) IsPlaying() bool { return !s.paused && !s.finished }

// Animation returns the current animation.
func (s *Sprite) Animation() Animation { return s.anim }

// Texture returns the sprite sheet texture.
func (s *Sprite) Texture() sprite.Texture { return s.tex }
