//go:build !nogpu

package wgpu

import (
	"errors"
	"fmt"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"

	"github.com/gogpu/sprite"
)

// Backend errors.
var (
	// ErrNoProvider is returned when a device provider does not expose
	// HAL types.
	ErrNoProvider = errors.New("wgpu: provider does not expose HAL types")

	// ErrNoAdapter is returned when no usable GPU adapter is found.
	ErrNoAdapter = errors.New("wgpu: no GPU adapters found")

	// ErrFrameTimeout is returned when the GPU does not finish a frame
	// in time.
	ErrFrameTimeout = errors.New("wgpu: frame timed out")
)

// DefaultMaxTransientVertices is the per-frame transient vertex budget
// when Config leaves it zero.
const DefaultMaxTransientVertices = 1 << 18

// Config configures the wgpu backend.
type Config struct {
	// TargetFormat is the color format of the render target Frame draws
	// into. Zero means BGRA8Unorm.
	TargetFormat gputypes.TextureFormat

	// MaxTransientVertices caps the per-frame transient vertex pool.
	// Zero means DefaultMaxTransientVertices.
	MaxTransientVertices int
}

// drawRecord is one queued submission, replayed by Frame.
type drawRecord struct {
	view  sprite.ViewID
	tex   sprite.Texture
	flags sprite.SamplerFlags
	state sprite.RenderState
	first int
	count int
}

// viewState is the per-view configuration plus its GPU uniform buffer.
type viewState struct {
	proj       sprite.Mat4
	clear      sprite.Color
	hasClear   bool
	uniformBuf hal.Buffer
	dirty      bool
}

// Backend implements sprite.Backend and sprite.TextureBackend on the
// wgpu HAL. Submissions issued between frames are queued CPU-side and
// encoded into a single render pass by Frame.
//
// Backend is not safe for concurrent use.
type Backend struct {
	device hal.Device
	queue  hal.Queue

	// Standalone mode only: instance and device are owned and destroyed
	// with the backend.
	instance   hal.Instance
	ownsDevice bool

	pipeline *spritePipeline
	format   gputypes.TextureFormat

	views    map[sprite.ViewID]*viewState
	textures map[uint32]*textureEntry
	samplers map[sprite.SamplerFlags]hal.Sampler
	binds    map[bindKey]hal.BindGroup
	nextTex  uint32

	transient    []sprite.Vertex
	maxTransient int
	pendingFirst int

	draws      []drawRecord
	boundTex   sprite.Texture
	boundFlags sprite.SamplerFlags
	state      sprite.RenderState
}

var (
	_ sprite.Backend        = (*Backend)(nil)
	_ sprite.TextureBackend = (*Backend)(nil)
)

// New creates a backend on an existing HAL device and queue. The caller
// retains ownership of both.
func New(device hal.Device, queue hal.Queue, cfg Config) (*Backend, error) {
	if cfg.TargetFormat == gputypes.TextureFormatUndefined {
		cfg.TargetFormat = gputypes.TextureFormatBGRA8Unorm
	}
	if cfg.MaxTransientVertices <= 0 {
		cfg.MaxTransientVertices = DefaultMaxTransientVertices
	}

	pipeline, err := newSpritePipeline(device, cfg.TargetFormat)
	if err != nil {
		return nil, err
	}

	return &Backend{
		device:       device,
		queue:        queue,
		pipeline:     pipeline,
		format:       cfg.TargetFormat,
		views:        make(map[sprite.ViewID]*viewState),
		textures:     make(map[uint32]*textureEntry),
		samplers:     make(map[sprite.SamplerFlags]hal.Sampler),
		binds:        make(map[bindKey]hal.BindGroup),
		transient:    make([]sprite.Vertex, 0, cfg.MaxTransientVertices),
		maxTransient: cfg.MaxTransientVertices,
		pendingFirst: -1,
	}, nil
}

// NewFromProvider creates a backend on a GPU device shared by a host
// application. The provider must additionally implement HalDevice() any
// and HalQueue() any returning hal.Device and hal.Queue, the convention
// wgpu-backed gpucontext providers follow.
func NewFromProvider(provider DeviceProvider, cfg Config) (*Backend, error) {
	type halProvider interface {
		HalDevice() any
		HalQueue() any
	}
	hp, ok := provider.(halProvider)
	if !ok {
		return nil, ErrNoProvider
	}
	device, ok := hp.HalDevice().(hal.Device)
	if !ok || device == nil {
		return nil, fmt.Errorf("%w: HalDevice is not hal.Device", ErrNoProvider)
	}
	queue, ok := hp.HalQueue().(hal.Queue)
	if !ok || queue == nil {
		return nil, fmt.Errorf("%w: HalQueue is not hal.Queue", ErrNoProvider)
	}
	return New(device, queue, cfg)
}

// NewStandalone creates a backend with its own Vulkan device. This is
// the headless path for tools and tests that run without a host
// application.
func NewStandalone(cfg Config) (*Backend, error) {
	api, ok := hal.GetBackend(gputypes.BackendVulkan)
	if !ok {
		return nil, fmt.Errorf("wgpu: vulkan backend not available")
	}
	instance, err := api.CreateInstance(&hal.InstanceDescriptor{Flags: 0})
	if err != nil {
		return nil, fmt.Errorf("create instance: %w", err)
	}

	adapters := instance.EnumerateAdapters(nil)
	if len(adapters) == 0 {
		instance.Destroy()
		return nil, ErrNoAdapter
	}

	var selected *hal.ExposedAdapter
	for i := range adapters {
		if adapters[i].Info.DeviceType == gputypes.DeviceTypeDiscreteGPU ||
			adapters[i].Info.DeviceType == gputypes.DeviceTypeIntegratedGPU {
			selected = &adapters[i]
			break
		}
	}
	if selected == nil {
		selected = &adapters[0]
	}

	openDev, err := selected.Adapter.Open(gputypes.Features(0), gputypes.DefaultLimits())
	if err != nil {
		instance.Destroy()
		return nil, fmt.Errorf("open device: %w", err)
	}

	b, err := New(openDev.Device, openDev.Queue, cfg)
	if err != nil {
		openDev.Device.Destroy()
		instance.Destroy()
		return nil, err
	}
	b.instance = instance
	b.ownsDevice = true
	sprite.Logger().Info("wgpu: standalone device initialized", "adapter", selected.Info.Name)
	return b, nil
}

// Destroy releases all GPU resources. The device itself is destroyed
// only if the backend created it (NewStandalone).
func (b *Backend) Destroy() {
	if b.device == nil {
		return
	}
	for key, bg := range b.binds {
		b.device.DestroyBindGroup(bg)
		delete(b.binds, key)
	}
	for id, entry := range b.textures {
		entry.destroy(b.device)
		delete(b.textures, id)
	}
	for flags, s := range b.samplers {
		b.device.DestroySampler(s)
		delete(b.samplers, flags)
	}
	for _, v := range b.views {
		if v.uniformBuf != nil {
			b.device.DestroyBuffer(v.uniformBuf)
			v.uniformBuf = nil
		}
	}
	if b.pipeline != nil {
		b.pipeline.destroy(b.device)
		b.pipeline = nil
	}
	if b.ownsDevice {
		b.device.Destroy()
		if b.instance != nil {
			b.instance.Destroy()
		}
	}
	b.device = nil
	b.queue = nil
}

// viewFor returns the state for view, creating it on first use.
func (b *Backend) viewFor(view sprite.ViewID) *viewState {
	v, ok := b.views[view]
	if !ok {
		v = &viewState{proj: sprite.Identity()}
		b.views[view] = v
	}
	return v
}

// SetViewTransform sets the projection matrix for view. The upload to
// the GPU happens during the next Frame.
func (b *Backend) SetViewTransform(view sprite.ViewID, proj sprite.Mat4) {
	v := b.viewFor(view)
	v.proj = proj
	v.dirty = true
}

// SetViewClear sets the clear color applied when view starts a frame.
func (b *Backend) SetViewClear(view sprite.ViewID, c sprite.Color) {
	v := b.viewFor(view)
	v.clear = c
	v.hasClear = true
}

// AvailTransientVertices reports how many vertices, up to n, remain in
// the frame budget.
func (b *Backend) AvailTransientVertices(n int) int {
	avail := b.maxTransient - len(b.transient)
	if n < avail {
		return n
	}
	return avail
}

// AllocTransientVertices allocates n vertices from the frame pool. The
// returned slice is valid until the next Frame.
func (b *Backend) AllocTransientVertices(n int) ([]sprite.Vertex, error) {
	used := len(b.transient)
	if used+n > b.maxTransient {
		return nil, sprite.ErrNoTransientSpace
	}
	b.transient = b.transient[:used+n]
	b.pendingFirst = used
	return b.transient[used : used+n], nil
}

// BindTexture sets the texture and sampler for the next submission.
func (b *Backend) BindTexture(tex sprite.Texture, flags sprite.SamplerFlags) {
	b.boundTex = tex
	b.boundFlags = flags
}

// SetRenderState sets the render state for the next submission.
func (b *Backend) SetRenderState(state sprite.RenderState) {
	b.state = state
}

// Submit queues one draw call consuming the pending transient region.
func (b *Backend) Submit(view sprite.ViewID) error {
	if b.pendingFirst < 0 {
		return sprite.ErrNothingBound
	}
	if !b.boundTex.Valid() {
		b.pendingFirst = -1
		return sprite.ErrInvalidTexture
	}
	b.draws = append(b.draws, drawRecord{
		view:  view,
		tex:   b.boundTex,
		flags: b.boundFlags,
		state: b.state,
		first: b.pendingFirst,
		count: len(b.transient) - b.pendingFirst,
	})
	b.pendingFirst = -1
	return nil
}
