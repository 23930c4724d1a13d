package sprite

// Rect is an axis-aligned rectangle in source-image pixel units, used to
// select a sub-region of a texture (a sprite-sheet frame).
type Rect struct {
	X, Y, W, H float32
}

// NewRect creates a rectangle from position and size.
func NewRect(x, y, w, h float32) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Empty reports whether the rectangle has zero or negative area.
func (r Rect) Empty() bool {
	return r.W <= 0 || r.H <= 0
}

// Point is a 2D point or vector.
type Point struct {
	X, Y float32
}
