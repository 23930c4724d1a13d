// Package recording provides an in-memory sprite backend that records
// every submission instead of driving a GPU.
//
// The recording backend serves two purposes: it is the test double for
// everything above the Backend interface (the batch, the texture store,
// and their clients run against it without GPU hardware), and it is a
// debugging aid — after a frame, Submissions returns exactly what would
// have been sent to the GPU, in order, with textures, sampler flags,
// render state, and vertex data.
package recording

import (
	"github.com/gogpu/sprite"
)

// DefaultTransientVertices is the default per-frame transient vertex
// budget. It mirrors the kind of hard cap a GPU backend's transient pool
// has; tests lower it to exercise exhaustion handling.
const DefaultTransientVertices = 1 << 20

// Submission is one recorded draw call.
type Submission struct {
	// View tags the submission's render target.
	View sprite.ViewID

	// Texture is the texture bound for this call.
	Texture sprite.Texture

	// Flags are the sampler flags the texture was bound with.
	Flags sprite.SamplerFlags

	// State is the render state in effect.
	State sprite.RenderState

	// Vertices is a copy of the submitted vertex data.
	Vertices []sprite.Vertex
}

// SpriteCount returns the number of sprites in the submission (six
// vertices per sprite).
func (s Submission) SpriteCount() int {
	return len(s.Vertices) / sprite.VerticesPerSprite
}

// View holds the recorded per-view configuration.
type View struct {
	Proj     sprite.Mat4
	Clear    sprite.Color
	HasClear bool
}

// Backend is an in-memory implementation of sprite.Backend and
// sprite.TextureBackend. The zero value is not usable; call New.
//
// Backend is not safe for concurrent use, matching the single-threaded
// contract of the real backends.
type Backend struct {
	// MaxTransientVertices is the per-frame transient vertex budget.
	MaxTransientVertices int

	subs  []Submission
	views map[sprite.ViewID]View

	transientUsed int
	pending       []sprite.Vertex
	boundTex      sprite.Texture
	boundFlags    sprite.SamplerFlags
	state         sprite.RenderState

	nextTexID uint32
	live      map[uint32]bool
}

var (
	_ sprite.Backend        = (*Backend)(nil)
	_ sprite.TextureBackend = (*Backend)(nil)
)

// New creates a recording backend with the default transient budget.
func New() *Backend {
	return &Backend{
		MaxTransientVertices: DefaultTransientVertices,
		views:                make(map[sprite.ViewID]View),
		live:                 make(map[uint32]bool),
	}
}

// SetViewTransform records the projection for view.
func (b *Backend) SetViewTransform(view sprite.ViewID, proj sprite.Mat4) {
	v := b.views[view]
	v.Proj = proj
	b.views[view] = v
}

// SetViewClear records the clear color for view.
func (b *Backend) SetViewClear(view sprite.ViewID, c sprite.Color) {
	v := b.views[view]
	v.Clear = c
	v.HasClear = true
	b.views[view] = v
}

// AvailTransientVertices reports how many vertices, up to n, remain in
// the frame budget.
func (b *Backend) AvailTransientVertices(n int) int {
	avail := b.MaxTransientVertices - b.transientUsed
	if avail < 0 {
		avail = 0
	}
	if n < avail {
		return n
	}
	return avail
}

// AllocTransientVertices allocates n vertices from the frame budget.
func (b *Backend) AllocTransientVertices(n int) ([]sprite.Vertex, error) {
	if b.AvailTransientVertices(n) < n {
		return nil, sprite.ErrNoTransientSpace
	}
	b.transientUsed += n
	b.pending = make([]sprite.Vertex, n)
	return b.pending, nil
}

// BindTexture records the texture for the next submission.
func (b *Backend) BindTexture(tex sprite.Texture, flags sprite.SamplerFlags) {
	b.boundTex = tex
	b.boundFlags = flags
}

// SetRenderState records the render state for the next submission.
func (b *Backend) SetRenderState(state sprite.RenderState) {
	b.state = state
}

// Submit records one draw call consuming the pending transient region.
func (b *Backend) Submit(view sprite.ViewID) error {
	if b.pending == nil {
		return sprite.ErrNothingBound
	}
	b.subs = append(b.subs, Submission{
		View:     view,
		Texture:  b.boundTex,
		Flags:    b.boundFlags,
		State:    b.state,
		Vertices: b.pending,
	})
	b.pending = nil
	return nil
}

// CreateTexture mints a texture handle for width x height RGBA8 pixels.
// The pixel data itself is not retained.
func (b *Backend) CreateTexture(width, height int, pixels []byte) (sprite.Texture, error) {
	if width <= 0 || height <= 0 || len(pixels) < width*height*4 {
		return sprite.Texture{}, sprite.ErrInvalidTexture
	}
	b.nextTexID++
	b.live[b.nextTexID] = true
	return sprite.Texture{ID: b.nextTexID, Width: width, Height: height}, nil
}

// DestroyTexture releases a recorded texture handle.
func (b *Backend) DestroyTexture(tex sprite.Texture) {
	delete(b.live, tex.ID)
}

// LiveTextures returns the number of created-but-not-destroyed textures.
func (b *Backend) LiveTextures() int {
	return len(b.live)
}

// Submissions returns all draw calls recorded since the last Reset.
func (b *Backend) Submissions() []Submission {
	return b.subs
}

// ViewConfig returns the recorded configuration for view.
func (b *Backend) ViewConfig(view sprite.ViewID) View {
	return b.views[view]
}

// Reset clears recorded submissions and returns the transient budget,
// as a real backend does between frames. Created textures survive.
func (b *Backend) Reset() {
	b.subs = nil
	b.pending = nil
	b.transientUsed = 0
}
