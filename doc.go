// Package sprite provides a batched 2D sprite renderer for the GoGPU
// ecosystem.
//
// # Overview
//
// sprite renders large numbers of independently positioned, rotated, and
// tinted textured quads per frame while keeping the number of GPU draw
// calls low. Draw requests issued between Begin and End are queued, then
// stable-sorted by draw order and grouped into one submission per
// contiguous same-texture run.
//
// The renderer preserves the painter's algorithm: sprites drawn later
// always appear on top of sprites drawn earlier, even when grouping by
// texture would produce fewer draw calls. Sorting by texture is
// deliberately not done because it can reorder overlapping sprites.
//
// # Quick Start
//
//	import (
//	    "github.com/gogpu/sprite"
//	    "github.com/gogpu/sprite/recording"
//	)
//
//	backend := recording.New()
//	batch := sprite.NewBatch(backend, sprite.Config{})
//
//	// Per frame:
//	batch.Begin(640, 360)
//	batch.Draw(tex, 100, 100, nil)
//	batch.Draw(tex, 120, 80, &sprite.DrawOptions{Rotation: 0.5})
//	batch.End()
//
// # Architecture
//
// The module is organized into:
//   - Public API: Batch, DrawOptions, Color, Rect, Vertex, Texture
//   - Backends: backend/wgpu (gogpu/wgpu hal), recording (in-memory)
//   - Clients: texture (store), anim (playback), parallax (layers),
//     ocean (swell spawning), scene (screen lifecycle)
//
// Backends implement the minimal Backend interface; everything above it
// is pure Go with no GPU dependency, which is what the tests run against.
package sprite
