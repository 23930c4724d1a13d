package sprite

import "slices"

// DefaultMaxSprites is the default queue capacity per batch. Reaching it
// mid-frame triggers an implicit flush, which costs an extra draw call
// but is not an error.
const DefaultMaxSprites = 8192

// depthStep is the per-draw depth increment. It is small enough that a
// full frame of draws stays far inside the projection's [0, depthFar)
// depth range, and large enough that two consecutive sprites never
// coalesce onto float-indistinguishable depths.
const depthStep = 0.001

// depthFar is the far plane of the orthographic projection set by Begin.
const depthFar = 1000.0

// Config configures a Batch. The zero value selects view 0 and
// DefaultMaxSprites.
type Config struct {
	// View tags every submission issued by this batch.
	View ViewID

	// MaxSprites caps the number of queued sprites before an implicit
	// flush. Zero or negative selects DefaultMaxSprites.
	MaxSprites int
}

// Stats are the per-frame counters of a batch. They reset on Begin and
// are complete after End.
type Stats struct {
	// SpriteCount is the number of sprites that reached submission.
	SpriteCount int

	// DrawCalls is the number of GPU submissions issued.
	DrawCalls int

	// TextureSwaps counts how often the submitter had to switch from one
	// bound texture to another. The first texture of a frame is not a
	// swap.
	TextureSwaps int

	// Flushes counts sort-and-submit passes: one for End plus one per
	// capacity overflow.
	Flushes int
}

// queuedQuad is one sprite awaiting flush. It lives only within a frame.
type queuedQuad struct {
	tex   Texture
	verts [4]Vertex
	depth float32
}

// Batch queues sprite draw calls for a frame and submits them grouped by
// texture, in draw order.
//
// A Batch owns its session state explicitly, so multiple independent
// batches (for example one per render target) can coexist; there is no
// process-wide state. A Batch is not safe for concurrent use.
//
// Sprites are queued between Begin and End. On flush the queue is
// stable-sorted by depth — which encodes draw order — and walked once;
// each run of consecutive quads sharing a texture becomes one GPU
// submission. The queue is intentionally never sorted by texture:
// grouping all uses of a texture together would reorder overlapping
// sprites and break back-to-front layering. The accepted trade-off is
// more draw calls when textures interleave, in exchange for correct
// painter's-algorithm output.
type Batch struct {
	backend    Backend
	view       ViewID
	maxSprites int

	open             bool
	targetW, targetH int
	depth            float32
	queue            []queuedQuad

	// scratch is the per-run vertex accumulation buffer, reused across
	// flushes to avoid per-frame allocation.
	scratch []Vertex

	stats Stats
}

// NewBatch creates a sprite batch submitting through the given backend.
func NewBatch(backend Backend, cfg Config) *Batch {
	capacity := cfg.MaxSprites
	if capacity <= 0 {
		capacity = DefaultMaxSprites
	}
	return &Batch{
		backend:    backend,
		view:       cfg.View,
		maxSprites: capacity,
		queue:      make([]queuedQuad, 0, capacity),
	}
}

// Begin opens a frame targeting a width x height pixel area and
// configures a top-left-origin orthographic projection for the batch's
// view. It resets the depth counter and the per-frame stats.
//
// Calling Begin while a frame is already open is a misuse: it is
// reported, the pending frame is flushed so queued sprites are not
// silently dropped, and a fresh session starts.
func (b *Batch) Begin(width, height int) {
	if b.open {
		Logger().Warn("sprite: Begin called while a frame is open; flushing pending sprites",
			"pending", len(b.queue))
		b.flush()
	}

	b.open = true
	b.targetW = width
	b.targetH = height
	b.queue = b.queue[:0]
	b.depth = 0
	b.stats = Stats{}

	b.backend.SetViewTransform(b.view, Ortho(0, float32(width), float32(height), 0, 0, depthFar))
}

// Draw queues one sprite at (x, y). Size, rotation, source region, and
// tint come from opts; nil opts selects all defaults (full image at
// native size, no rotation, opaque white).
//
// Each draw receives a depth strictly greater than every earlier draw in
// the frame, so later draws render on top. Degenerate requests (invalid
// texture, empty region) are silently skipped. If the queue is at
// capacity an implicit flush runs first.
//
// Draw outside an open frame is a reported misuse and is ignored.
func (b *Batch) Draw(tex Texture, x, y float32, opts *DrawOptions) {
	if !b.open {
		Logger().Warn("sprite: Draw called outside Begin/End")
		return
	}

	quad, ok := BuildQuad(tex, x, y, b.depth, opts)
	if !ok {
		return
	}

	if len(b.queue) >= b.maxSprites {
		b.flush()
	}

	b.queue = append(b.queue, queuedQuad{tex: tex, verts: quad, depth: b.depth})
	b.depth += depthStep
}

// End flushes all queued sprites and closes the frame. Calling End while
// no frame is open is a reported misuse and is ignored.
func (b *Batch) End() {
	if !b.open {
		Logger().Warn("sprite: End called without Begin")
		return
	}
	b.flush()
	b.open = false
}

// Stats returns the batch's per-frame counters: complete for the last
// frame after End, partial while a frame is open.
func (b *Batch) Stats() Stats {
	return b.stats
}

// flush sorts the queue by depth, groups consecutive same-texture quads,
// and issues one submission per group. The queue is empty afterwards.
func (b *Batch) flush() {
	if len(b.queue) == 0 {
		return
	}
	b.stats.Flushes++

	// Stable sort preserves insertion order for equal depths. Depths are
	// strictly increasing when assigned by Draw, but callers feeding
	// quads through other paths must not have their order scrambled.
	slices.SortStableFunc(b.queue, func(a, c queuedQuad) int {
		switch {
		case a.depth < c.depth:
			return -1
		case a.depth > c.depth:
			return 1
		default:
			return 0
		}
	})

	var cur Texture
	verts := b.scratch[:0]

	submit := func() {
		if len(verts) == 0 || !cur.Valid() {
			return
		}
		n := len(verts)
		if b.backend.AvailTransientVertices(n) < n {
			Logger().Warn("sprite: transient vertex space exhausted; dropping submission",
				"vertices", n, "texture", cur.ID)
			verts = verts[:0]
			return
		}
		region, err := b.backend.AllocTransientVertices(n)
		if err != nil {
			Logger().Warn("sprite: transient vertex allocation failed; dropping submission",
				"vertices", n, "err", err)
			verts = verts[:0]
			return
		}
		copy(region, verts)

		b.backend.BindTexture(cur, SamplerPointClamp)
		b.backend.SetRenderState(StateSprite)
		if err := b.backend.Submit(b.view); err != nil {
			Logger().Warn("sprite: submit failed", "err", err)
			verts = verts[:0]
			return
		}
		b.stats.DrawCalls++
		verts = verts[:0]
	}

	for i := range b.queue {
		q := &b.queue[i]
		if q.tex != cur {
			submit()
			if cur.Valid() {
				b.stats.TextureSwaps++
			}
			cur = q.tex
		}
		verts = ExpandQuad(verts, q.verts)
		b.stats.SpriteCount++
	}
	submit()

	b.scratch = verts[:0]
	b.queue = b.queue[:0]
}
