package object

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/vovakirdan/robotrun/internal/gfx"
)

func init() {
	Register(Variant{
		Name:     "flames",
		Category: CategoryHazard,
		New: func(d *Descriptor, p Placement, env Env) Object {
			return &flames{
				base: newBase(d, p, env),
				step: env.Tuning.Flames.TimeStep,
			}
		},
	})
}

// flames is a burning puddle animated by the magma shader.
type flames struct {
	base
	time float64
	step float64
}

// Draw feeds the magma shader its clock and the window size, then draws the ring.
func (f *flames) Draw(r gfx.Renderer) {
	f.desc.Program.SetFloat(gfx.UniformTime, float32(f.time))
	f.desc.Program.SetVec2(gfx.UniformResolution, mgl32.Vec2{float32(f.resolution[0]), float32(f.resolution[1])})
	f.time += f.step
	f.drawParts(r, nil)
}
