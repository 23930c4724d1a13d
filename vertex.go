package sprite

// Vertex is one corner of a sprite quad in the fixed vertex layout all
// backends consume:
//
//	position  (x, y, z)  3 x float32  12 bytes
//	texcoord  (u, v)     2 x float32   8 bytes
//	color     packed ABGR    uint32    4 bytes
//
// The z component carries the synthetic draw-order depth, not true 3D
// depth. U and V are normalized to [0, 1].
type Vertex struct {
	X, Y, Z float32
	U, V    float32
	ABGR    uint32
}

// VertexStride is the byte size of one Vertex in the backend vertex
// layout.
const VertexStride = 24

// VerticesPerQuad is the number of corner vertices produced per sprite.
const VerticesPerQuad = 4

// VerticesPerSprite is the number of vertices a sprite expands to at
// submission time: two triangles sharing the four corners
// (TL,TR,BL then TR,BR,BL).
const VerticesPerSprite = 6

// Texture is an opaque handle to GPU-resident pixel data.
//
// Textures are minted by backends (see TextureBackend) and owned by the
// texture store; the renderer never creates or destroys them. The handle
// is comparable: two handles are equal exactly when they reference the
// same GPU texture, which is how the batcher detects same-image runs.
type Texture struct {
	// ID identifies the backend texture. Zero is the invalid handle.
	ID uint32

	// Width and Height are the pixel dimensions of the texture.
	Width, Height int
}

// Valid reports whether the handle references a live texture.
func (t Texture) Valid() bool {
	return t.ID != 0
}
