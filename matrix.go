package sprite

// Mat4 is a 4x4 matrix in column-major order, the layout WGSL expects
// for a mat4x4<f32> uniform. Element (row, col) is at index col*4+row.
type Mat4 [16]float32

// Identity returns the identity matrix.
func Identity() Mat4 {
	return Mat4{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

// Ortho returns an orthographic projection mapping the box
// [left,right]x[bottom,top]x[near,far] to clip space with a [0,1] depth
// range (the WebGPU convention).
//
// For a top-left-origin 2D target pass bottom=height, top=0: y then
// increases downward on screen, matching image coordinates.
func Ortho(left, right, bottom, top, near, far float32) Mat4 {
	sx := 2 / (right - left)
	sy := 2 / (top - bottom)
	sz := 1 / (far - near)
	tx := -(right + left) / (right - left)
	ty := -(top + bottom) / (top - bottom)
	tz := -near / (far - near)
	return Mat4{
		sx, 0, 0, 0,
		0, sy, 0, 0,
		0, 0, sz, 0,
		tx, ty, tz, 1,
	}
}
