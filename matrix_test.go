package sprite

import "testing"

// apply multiplies the matrix with a point (x, y, z, 1) and returns the
// transformed x, y, z.
func apply(m Mat4, x, y, z float32) (float32, float32, float32) {
	return m[0]*x + m[4]*y + m[8]*z + m[12],
		m[1]*x + m[5]*y + m[9]*z + m[13],
		m[2]*x + m[6]*y + m[10]*z + m[14]
}

func TestOrtho_TopLeftOrigin(t *testing.T) {
	m := Ortho(0, 640, 360, 0, 0, 1000)

	tests := []struct {
		name             string
		x, y, z          float32
		wantX, wantY, wantZ float32
	}{
		{name: "top-left corner", x: 0, y: 0, wantX: -1, wantY: 1},
		{name: "bottom-right corner", x: 640, y: 360, wantX: 1, wantY: -1},
		{name: "center", x: 320, y: 180, wantX: 0, wantY: 0},
		{name: "far plane", x: 0, y: 0, z: 1000, wantX: -1, wantY: 1, wantZ: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gx, gy, gz := apply(m, tt.x, tt.y, tt.z)
			if gx != tt.wantX || gy != tt.wantY || gz != tt.wantZ {
				t.Errorf("apply(%v, %v, %v) = (%v, %v, %v), want (%v, %v, %v)",
					tt.x, tt.y, tt.z, gx, gy, gz, tt.wantX, tt.wantY, tt.wantZ)
			}
		})
	}
}

func TestIdentity(t *testing.T) {
	m := Identity()
	gx, gy, gz := apply(m, 3, -7, 0.5)
	if gx != 3 || gy != -7 || gz != 0.5 {
		t.Errorf("identity transformed (3, -7, 0.5) to (%v, %v, %v)", gx, gy, gz)
	}
}
