package core

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
)

// Color is a straight-alpha RGBA colour with components in [0, 1].
type Color struct {
	R, G, B, A float32
}

// RGBA creates a colour from its four components.
func RGBA(r, g, b, a float32) Color {
	return Color{R: r, G: g, B: b, A: a}
}

// ColorFromVec4 converts a shader vec4 uniform back into a colour.
func ColorFromVec4(v mgl32.Vec4) Color {
	return Color{R: v[0], G: v[1], B: v[2], A: v[3]}
}

// Vec4 returns the colour as a shader uniform value.
func (c Color) Vec4() mgl32.Vec4 {
	return mgl32.Vec4{c.R, c.G, c.B, c.A}
}

// Over blends c on top of dst using the source alpha.
func (c Color) Over(dst Color) Color {
	a := c.A
	return Color{
		R: c.R*a + dst.R*(1-a),
		G: c.G*a + dst.G*(1-a),
		B: c.B*a + dst.B*(1-a),
		A: a + dst.A*(1-a),
	}
}

// Hex returns the colour as #rrggbb, ignoring alpha.
func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", to8(c.R), to8(c.G), to8(c.B))
}

func to8(v float32) uint8 {
	return uint8(ClampF(float64(v), 0, 1)*255 + 0.5)
}
