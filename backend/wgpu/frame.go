//go:build !nogpu

package wgpu

import (
	"encoding/binary"
	"fmt"
	"math"
	"time"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"

	"github.com/gogpu/sprite"
)

// frameTimeout bounds the fence wait after submitting a frame.
const frameTimeout = 5 * time.Second

// bindKey identifies a cached bind group: one per view, texture and
// sampler combination.
type bindKey struct {
	view  sprite.ViewID
	tex   uint32
	flags sprite.SamplerFlags
}

// Frame encodes all queued submissions into one render pass on target
// and waits for the GPU to finish. The transient pool and the draw queue
// are reset afterwards; textures and view configuration persist.
//
// Draws are replayed in submission order, which the sprite.Batch has
// already arranged back-to-front.
func (b *Backend) Frame(target hal.TextureView, width, height int) error {
	defer func() {
		b.transient = b.transient[:0]
		b.pendingFirst = -1
		b.draws = b.draws[:0]
	}()

	if err := b.uploadUniforms(); err != nil {
		return err
	}

	var vertBuf hal.Buffer
	if len(b.transient) > 0 {
		data := packVertices(b.transient)
		buf, err := b.device.CreateBuffer(&hal.BufferDescriptor{
			Label: "sprite_transient",
			Size:  uint64(len(data)),
			Usage: gputypes.BufferUsageVertex | gputypes.BufferUsageCopyDst,
		})
		if err != nil {
			return fmt.Errorf("create transient buffer: %w", err)
		}
		defer b.device.DestroyBuffer(buf)
		b.queue.WriteBuffer(buf, 0, data)
		vertBuf = buf
	}

	encoder, err := b.device.CreateCommandEncoder(&hal.CommandEncoderDescriptor{
		Label: "sprite_frame",
	})
	if err != nil {
		return fmt.Errorf("create command encoder: %w", err)
	}
	if err := encoder.BeginEncoding("sprite_frame"); err != nil {
		return fmt.Errorf("begin encoding: %w", err)
	}

	rp := encoder.BeginRenderPass(&hal.RenderPassDescriptor{
		Label: "sprite_pass",
		ColorAttachments: []hal.RenderPassColorAttachment{{
			View:       target,
			LoadOp:     gputypes.LoadOpClear,
			StoreOp:    gputypes.StoreOpStore,
			ClearValue: b.clearColor(),
		}},
	})

	if len(b.draws) > 0 {
		rp.SetPipeline(b.pipeline.pipeline)
		rp.SetVertexBuffer(0, vertBuf, 0)
		for _, d := range b.draws {
			bg, err := b.bindGroupFor(d.view, d.tex, d.flags)
			if err != nil {
				sprite.Logger().Warn("wgpu: skipping draw, bind group unavailable",
					"texture", d.tex.ID, "error", err)
				continue
			}
			rp.SetBindGroup(0, bg, nil)
			rp.Draw(uint32(d.count), 1, uint32(d.first), 0)
		}
	}
	rp.End()

	cmdBuf, err := encoder.EndEncoding()
	if err != nil {
		return fmt.Errorf("end encoding: %w", err)
	}
	defer b.device.FreeCommandBuffer(cmdBuf)

	fence, err := b.device.CreateFence()
	if err != nil {
		return fmt.Errorf("create fence: %w", err)
	}
	defer b.device.DestroyFence(fence)

	if err := b.queue.Submit([]hal.CommandBuffer{cmdBuf}, fence, 1); err != nil {
		return fmt.Errorf("submit: %w", err)
	}
	ok, err := b.device.Wait(fence, 1, frameTimeout)
	if err != nil {
		return fmt.Errorf("wait for GPU: %w", err)
	}
	if !ok {
		return ErrFrameTimeout
	}
	return nil
}

// clearColor picks the clear value for the frame: the first drawn view
// with a configured clear wins, transparent black otherwise.
func (b *Backend) clearColor() gputypes.Color {
	for _, d := range b.draws {
		if v, ok := b.views[d.view]; ok && v.hasClear {
			return gputypes.Color{
				R: float64(v.clear.R) / 255,
				G: float64(v.clear.G) / 255,
				B: float64(v.clear.B) / 255,
				A: float64(v.clear.A) / 255,
			}
		}
	}
	return gputypes.Color{}
}

// uploadUniforms writes dirty view projections to their uniform buffers,
// creating buffers on first use.
func (b *Backend) uploadUniforms() error {
	for id, v := range b.views {
		if v.uniformBuf == nil {
			buf, err := b.device.CreateBuffer(&hal.BufferDescriptor{
				Label: "sprite_view_uniform",
				Size:  uniformSize,
				Usage: gputypes.BufferUsageUniform | gputypes.BufferUsageCopyDst,
			})
			if err != nil {
				return fmt.Errorf("create uniform buffer for view %d: %w", id, err)
			}
			v.uniformBuf = buf
			v.dirty = true
		}
		if v.dirty {
			var data [uniformSize]byte
			for i, f := range v.proj {
				binary.LittleEndian.PutUint32(data[i*4:], math.Float32bits(f))
			}
			b.queue.WriteBuffer(v.uniformBuf, 0, data[:])
			v.dirty = false
		}
	}
	return nil
}

// bindGroupFor returns the cached bind group for the view, texture and
// sampler combination, creating it on first use.
func (b *Backend) bindGroupFor(view sprite.ViewID, tex sprite.Texture, flags sprite.SamplerFlags) (hal.BindGroup, error) {
	key := bindKey{view: view, tex: tex.ID, flags: flags}
	if bg, ok := b.binds[key]; ok {
		return bg, nil
	}

	entry, ok := b.textures[tex.ID]
	if !ok {
		return nil, sprite.ErrInvalidTexture
	}
	sampler, err := b.samplerFor(flags)
	if err != nil {
		return nil, err
	}
	v := b.viewFor(view)

	bg, err := b.device.CreateBindGroup(&hal.BindGroupDescriptor{
		Label:  "sprite_bind",
		Layout: b.pipeline.bindLayout,
		Entries: []gputypes.BindGroupEntry{
			{Binding: 0, Resource: gputypes.BufferBinding{
				Buffer: v.uniformBuf.NativeHandle(), Offset: 0, Size: uniformSize,
			}},
			{Binding: 1, Resource: gputypes.TextureViewBinding{TextureView: entry.view.NativeHandle()}},
			{Binding: 2, Resource: gputypes.SamplerBinding{Sampler: sampler.NativeHandle()}},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("create bind group: %w", err)
	}
	b.binds[key] = bg
	return bg, nil
}

// packVertices expands CPU-side vertices into the GPU vertex layout:
// the packed ABGR color becomes four normalized floats.
func packVertices(verts []sprite.Vertex) []byte {
	data := make([]byte, len(verts)*gpuVertexStride)
	for i, v := range verts {
		off := i * gpuVertexStride
		binary.LittleEndian.PutUint32(data[off+0:], math.Float32bits(v.X))
		binary.LittleEndian.PutUint32(data[off+4:], math.Float32bits(v.Y))
		binary.LittleEndian.PutUint32(data[off+8:], math.Float32bits(v.Z))
		binary.LittleEndian.PutUint32(data[off+12:], math.Float32bits(v.U))
		binary.LittleEndian.PutUint32(data[off+16:], math.Float32bits(v.V))
		r := float32(v.ABGR&0xFF) / 255
		g := float32(v.ABGR>>8&0xFF) / 255
		bl := float32(v.ABGR>>16&0xFF) / 255
		a := float32(v.ABGR>>24&0xFF) / 255
		binary.LittleEndian.PutUint32(data[off+20:], math.Float32bits(r))
		binary.LittleEndian.PutUint32(data[off+24:], math.Float32bits(g))
		binary.LittleEndian.PutUint32(data[off+28:], math.Float32bits(bl))
		binary.LittleEndian.PutUint32(data[off+32:], math.Float32bits(a))
	}
	return data
}
