//go:build !nogpu

package wgpu

import (
	"github.com/gogpu/gpucontext"
)

// DeviceProvider is the integration point between the sprite backend and
// GPU host frameworks. The host application owns the device and passes a
// provider to NewFromProvider; the backend never creates a device of its
// own in this mode, so textures and buffers share the host's GPU context.
//
// DeviceProvider is an alias for gpucontext.DeviceProvider, keeping the
// backend compatible with the gpucontext ecosystem. Providers backed by
// the wgpu HAL additionally expose HalDevice() any and HalQueue() any,
// which is how NewFromProvider reaches the concrete hal types.
type DeviceProvider = gpucontext.DeviceProvider
