//go:build !nogpu

package wgpu

import (
	"fmt"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"

	"github.com/gogpu/sprite"
)

// textureEntry is the GPU side of a sprite.Texture handle.
type textureEntry struct {
	tex    hal.Texture
	view   hal.TextureView
	width  int
	height int
}

func (e *textureEntry) destroy(device hal.Device) {
	if e.view != nil {
		device.DestroyTextureView(e.view)
		e.view = nil
	}
	if e.tex != nil {
		device.DestroyTexture(e.tex)
		e.tex = nil
	}
}

// CreateTexture uploads width x height RGBA8 pixels (straight alpha,
// row-major) and returns a handle for Batch.Draw.
func (b *Backend) CreateTexture(width, height int, pixels []byte) (sprite.Texture, error) {
	if width <= 0 || height <= 0 || len(pixels) < width*height*4 {
		return sprite.Texture{}, sprite.ErrInvalidTexture
	}

	w, h := uint32(width), uint32(height)
	tex, err := b.device.CreateTexture(&hal.TextureDescriptor{
		Label:         "sprite_texture",
		Size:          hal.Extent3D{Width: w, Height: h, DepthOrArrayLayers: 1},
		MipLevelCount: 1,
		SampleCount:   1,
		Dimension:     gputypes.TextureDimension2D,
		Format:        gputypes.TextureFormatRGBA8Unorm,
		Usage:         gputypes.TextureUsageTextureBinding | gputypes.TextureUsageCopyDst,
	})
	if err != nil {
		return sprite.Texture{}, fmt.Errorf("create texture: %w", err)
	}

	view, err := b.device.CreateTextureView(tex, &hal.TextureViewDescriptor{
		Label: "sprite_texture_view",
	})
	if err != nil {
		b.device.DestroyTexture(tex)
		return sprite.Texture{}, fmt.Errorf("create texture view: %w", err)
	}

	b.queue.WriteTexture(
		&hal.ImageCopyTexture{Texture: tex, MipLevel: 0},
		pixels[:width*height*4],
		&hal.ImageDataLayout{
			Offset:       0,
			BytesPerRow:  w * 4,
			RowsPerImage: h,
		},
		&hal.Extent3D{Width: w, Height: h, DepthOrArrayLayers: 1},
	)

	b.nextTex++
	b.textures[b.nextTex] = &textureEntry{tex: tex, view: view, width: width, height: height}
	return sprite.Texture{ID: b.nextTex, Width: width, Height: height}, nil
}

// DestroyTexture releases the GPU resources behind a texture handle,
// including any bind groups referencing it. Destroying a texture that is
// still queued for the current frame is a caller error.
func (b *Backend) DestroyTexture(tex sprite.Texture) {
	entry, ok := b.textures[tex.ID]
	if !ok {
		return
	}
	for key, bg := range b.binds {
		if key.tex == tex.ID {
			b.device.DestroyBindGroup(bg)
			delete(b.binds, key)
		}
	}
	entry.destroy(b.device)
	delete(b.textures, tex.ID)
}

// samplerFor returns the cached sampler for flags, creating it on first
// use. Filter and address modes map directly from the flag bits.
func (b *Backend) samplerFor(flags sprite.SamplerFlags) (hal.Sampler, error) {
	if s, ok := b.samplers[flags]; ok {
		return s, nil
	}

	mag := gputypes.FilterModeLinear
	if flags&sprite.SamplerMagPoint != 0 {
		mag = gputypes.FilterModeNearest
	}
	min := gputypes.FilterModeLinear
	if flags&sprite.SamplerMinPoint != 0 {
		min = gputypes.FilterModeNearest
	}
	mip := gputypes.FilterModeLinear
	if flags&sprite.SamplerMipPoint != 0 {
		mip = gputypes.FilterModeNearest
	}
	addrU := gputypes.AddressModeRepeat
	if flags&sprite.SamplerUClamp != 0 {
		addrU = gputypes.AddressModeClampToEdge
	}
	addrV := gputypes.AddressModeRepeat
	if flags&sprite.SamplerVClamp != 0 {
		addrV = gputypes.AddressModeClampToEdge
	}

	s, err := b.device.CreateSampler(&hal.SamplerDescriptor{
		Label:        "sprite_sampler",
		AddressModeU: addrU,
		AddressModeV: addrV,
		AddressModeW: gputypes.AddressModeClampToEdge,
		MagFilter:    mag,
		MinFilter:    min,
		MipmapFilter: mip,
	})
	if err != nil {
		return nil, fmt.Errorf("create sampler: %w", err)
	}
	b.samplers[flags] = s
	return s, nil
}
