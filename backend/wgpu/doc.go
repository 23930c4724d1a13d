// Package wgpu implements the sprite backend on the wgpu HAL.
//
// The backend records sprite submissions between frames and encodes them
// into a single render pass when Frame is called, the same submit-then-
// frame model the sprite.Batch assumes. It can run against a device
// shared with a host application (NewFromProvider) or bootstrap its own
// Vulkan device (NewStandalone) for headless use.
//
// Build with the nogpu tag to exclude this package's GPU code paths.
package wgpu
