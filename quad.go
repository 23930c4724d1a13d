package sprite

import "math"

// BuildQuad converts one draw request into the four corner vertices of a
// sprite quad, in the fixed order TL, TR, BL, BR. Every vertex carries
// the same depth and packed tint.
//
// BuildQuad is a pure function with no side effects. ok is false when the
// request is degenerate (invalid texture, zero-area image or region); no
// quad is produced in that case and callers are expected to skip the
// draw silently.
func BuildQuad(tex Texture, x, y, depth float32, opts *DrawOptions) (quad [4]Vertex, ok bool) {
	if !tex.Valid() || tex.Width <= 0 || tex.Height <= 0 {
		return quad, false
	}

	// UV mapping: full image unless a region is given. Region pixels are
	// normalized by the image dimensions.
	u0, v0, u1, v1 := float32(0), float32(0), float32(1), float32(1)
	srcW, srcH := float32(tex.Width), float32(tex.Height)
	if opts != nil && opts.Region != nil {
		r := *opts.Region
		if r.Empty() {
			return quad, false
		}
		texW, texH := float32(tex.Width), float32(tex.Height)
		u0 = r.X / texW
		v0 = r.Y / texH
		u1 = (r.X + r.W) / texW
		v1 = (r.Y + r.H) / texH
		srcW, srcH = r.W, r.H
	}

	// Destination size defaults to the source size.
	w, h := srcW, srcH
	if opts != nil {
		if opts.W != 0 {
			w = opts.W
		}
		if opts.H != 0 {
			h = opts.H
		}
	}

	c := opts.tint().PackABGR()
	for i := range quad {
		quad[i].Z = depth
		quad[i].ABGR = c
	}
	quad[0].U, quad[0].V = u0, v0
	quad[1].U, quad[1].V = u1, v0
	quad[2].U, quad[2].V = u0, v1
	quad[3].U, quad[3].V = u1, v1

	if opts == nil || opts.Rotation == 0 {
		// Unrotated fast path. The rotated path must reproduce these
		// exact positions at rotation 0, which is why this branch avoids
		// the origin arithmetic entirely.
		quad[0].X, quad[0].Y = x, y
		quad[1].X, quad[1].Y = x+w, y
		quad[2].X, quad[2].Y = x, y+h
		quad[3].X, quad[3].Y = x+w, y+h
		return quad, true
	}

	// Rotate corner offsets about the origin point, then translate.
	org := opts.origin()
	ox := w * org.X
	oy := h * org.Y

	sin, cos := math.Sincos(float64(opts.Rotation))
	sinR, cosR := float32(sin), float32(cos)

	corners := [4]Point{
		{-ox, -oy},
		{w - ox, -oy},
		{-ox, h - oy},
		{w - ox, h - oy},
	}
	for i, p := range corners {
		quad[i].X = x + ox + (p.X*cosR - p.Y*sinR)
		quad[i].Y = y + oy + (p.X*sinR + p.Y*cosR)
	}
	return quad, true
}

// ExpandQuad appends the quad's two triangles to dst as six vertices in
// the order TL,TR,BL then TR,BR,BL, and returns the extended slice. This
// is the expansion the submitter performs per sprite.
func ExpandQuad(dst []Vertex, quad [4]Vertex) []Vertex {
	return append(dst,
		quad[0], quad[1], quad[2],
		quad[1], quad[3], quad[2],
	)
}
