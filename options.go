package sprite

// DrawOptions configures a single draw call. The zero value (or a nil
// pointer) selects the neutral defaults for every field, so callers only
// set what they need:
//
//	batch.Draw(tex, x, y, nil)                                  // plain
//	batch.Draw(tex, x, y, &sprite.DrawOptions{W: 64, H: 32})    // sized
//	batch.Draw(tex, x, y, &sprite.DrawOptions{Rotation: r})     // rotated
type DrawOptions struct {
	// W, H set the destination size in pixels. Zero keeps the source
	// size: the full image's pixel size, or the Region's size when a
	// Region is set.
	W, H float32

	// Rotation is the rotation angle in radians, clockwise positive.
	Rotation float32

	// Origin is the rotation origin, normalized to the destination size
	// (0,0 = top-left, 1,1 = bottom-right). Nil selects the center
	// (0.5, 0.5). Origin only affects rotated draws.
	Origin *Point

	// Region selects a sub-rectangle of the image in source pixel units.
	// Nil selects the full image.
	Region *Rect

	// Tint multiplies the sprite's color. Nil selects opaque white
	// (no tint).
	Tint *Color
}

// tint returns the effective tint color.
func (o *DrawOptions) tint() Color {
	if o == nil || o.Tint == nil {
		return White
	}
	return *o.Tint
}

// origin returns the effective normalized rotation origin.
func (o *DrawOptions) origin() Point {
	if o == nil || o.Origin == nil {
		return Point{X: 0.5, Y: 0.5}
	}
	return *o.Origin
}
