package sprite

import "errors"

// Backend errors shared by all implementations.
var (
	// ErrNoTransientSpace is returned by AllocTransientVertices when the
	// frame's transient vertex budget cannot supply the requested count.
	ErrNoTransientSpace = errors.New("sprite: not enough transient vertex space")

	// ErrInvalidTexture is returned when a backend operation receives an
	// invalid texture handle.
	ErrInvalidTexture = errors.New("sprite: invalid texture handle")

	// ErrNothingBound is returned by Submit when no transient vertex
	// region has been allocated since the last submit.
	ErrNothingBound = errors.New("sprite: no vertex data bound for submit")
)

// ViewID identifies a render target/view a submission is tagged with.
// Multiple batches can submit to distinct views within one frame.
type ViewID uint16

// SamplerFlags select texture filtering and addressing for a bind.
type SamplerFlags uint32

const (
	// SamplerMinPoint selects point minification filtering.
	SamplerMinPoint SamplerFlags = 1 << iota
	// SamplerMagPoint selects point magnification filtering.
	SamplerMagPoint
	// SamplerMipPoint selects point mip filtering.
	SamplerMipPoint
	// SamplerUClamp clamps texture addressing to the edge horizontally.
	SamplerUClamp
	// SamplerVClamp clamps texture addressing to the edge vertically.
	SamplerVClamp
)

// SamplerPointClamp is the sampler configuration sprites are drawn with:
// point filtering (crisp pixel art) and edge clamping (no bleed between
// sheet frames).
const SamplerPointClamp = SamplerMinPoint | SamplerMagPoint | SamplerMipPoint |
	SamplerUClamp | SamplerVClamp

// RenderState selects write masks and blending for a submission.
type RenderState uint32

const (
	// StateWriteRGB enables color channel writes.
	StateWriteRGB RenderState = 1 << iota
	// StateWriteA enables alpha channel writes.
	StateWriteA
	// StateBlendAlpha enables standard alpha blending
	// (src-alpha, one-minus-src-alpha).
	StateBlendAlpha
)

// StateSprite is the render state sprites are drawn with.
const StateSprite = StateWriteRGB | StateWriteA | StateBlendAlpha

// Backend is the minimal GPU surface the batch submitter requires.
//
// A frame proceeds as: SetViewTransform once, then per submission
// AllocTransientVertices + fill, BindTexture, SetRenderState, Submit.
// Implementations are not required to be safe for concurrent use; the
// batcher drives them from a single goroutine.
type Backend interface {
	// SetViewTransform sets the projection for subsequent submissions
	// tagged with view.
	SetViewTransform(view ViewID, proj Mat4)

	// SetViewClear configures the clear color applied to view at the
	// start of the frame.
	SetViewClear(view ViewID, c Color)

	// AvailTransientVertices reports how many vertices, up to n, the
	// frame's transient vertex pool can still supply.
	AvailTransientVertices(n int) int

	// AllocTransientVertices allocates a transient region of exactly n
	// vertices valid until the end of the frame. The caller fills the
	// returned slice before Submit. Returns ErrNoTransientSpace when the
	// pool is exhausted.
	AllocTransientVertices(n int) ([]Vertex, error)

	// BindTexture binds tex to the sprite sampler slot for the next
	// submission.
	BindTexture(tex Texture, flags SamplerFlags)

	// SetRenderState sets blend and write state for the next submission.
	SetRenderState(state RenderState)

	// Submit issues one draw call on view consuming the transient region
	// allocated since the previous submit, with the bound texture and
	// render state.
	Submit(view ViewID) error
}

// TextureBackend is implemented by backends that can create GPU textures
// from CPU pixel data. The texture store uses it for uploads; the batch
// itself never creates textures.
type TextureBackend interface {
	// CreateTexture uploads width*height RGBA8 pixels (4 bytes per pixel,
	// row-major) and returns a handle to the resulting texture.
	CreateTexture(width, height int, pixels []byte) (Texture, error)

	// DestroyTexture releases the texture. Destroying an invalid handle
	// is a no-op.
	DestroyTexture(tex Texture)
}
