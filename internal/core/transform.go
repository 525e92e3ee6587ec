package core

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/go-gl/mathgl/mgl64"
)

// Transform is the per-instance placement of an object in the playfield.
// Positions and sizes are pixels with the origin at the window centre and
// y pointing up; Rotation is in degrees, counter-clockwise.
type Transform struct {
	Position mgl64.Vec2
	Size     mgl64.Vec2
	Rotation float64
}

// ModelMatrix maps local geometry authored in the [-1, 1] square into
// normalized device coordinates for a window of the given pixel resolution.
// The local unit square spans exactly Size pixels after the transform.
func ModelMatrix(t Transform, resolution mgl64.Vec2) mgl32.Mat4 {
	project := mgl32.Scale3D(float32(2/resolution[0]), float32(2/resolution[1]), 1)
	translate := mgl32.Translate3D(float32(t.Position[0]), float32(t.Position[1]), 0)
	rotate := mgl32.HomogRotate3DZ(mgl32.DegToRad(float32(t.Rotation)))
	scale := mgl32.Scale3D(float32(t.Size[0]/2), float32(t.Size[1]/2), 1)

	return project.Mul4(translate).Mul4(rotate).Mul4(scale)
}

// Apply transforms a local vertex by m and returns the resulting NDC point.
func Apply(m mgl32.Mat4, v Vertex) mgl32.Vec3 {
	return m.Mul4x1(mgl32.Vec4{v.X, v.Y, v.Z, 1}).Vec3()
}
