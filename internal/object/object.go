// Package object implements the game objects of a scene: the robot, the
// flames that kill it, the structural pieces it bounces off, gates,
// rotators and the finish pad.
//
// Variants register themselves in init() functions. Every instance of a
// variant shares one Descriptor; per-instance state is the transform,
// the hitbox and whatever the variant's logic keeps.
package object

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/vovakirdan/robotrun/internal/core"
	"github.com/vovakirdan/robotrun/internal/gfx"
)

// LogicContext is what an object sees during its logic step.
type LogicContext struct {
	Input core.InputFrame
	// Solids is the solid roster in scene order, or nil when the object
	// itself is not part of it.
	Solids []Object
}

// Object is a placed instance of a variant.
type Object interface {
	Descriptor() *Descriptor
	Transform() core.Transform
	Category() Category

	// Hitbox returns the collision box. The second result is false when
	// the object currently has no collision surface.
	Hitbox() (core.Hitbox, bool)
	// ConfigureHitbox recomputes the box from position and size.
	ConfigureHitbox()

	// Logic advances the object by one frame.
	Logic(ctx LogicContext)
	// Draw issues the object's draw calls. The descriptor's program must
	// be in use.
	Draw(r gfx.Renderer)
}

// base carries the state and behaviour every variant shares.
type base struct {
	desc       *Descriptor
	transform  core.Transform
	resolution mgl64.Vec2

	hitbox    core.Hitbox
	hasHitbox bool
}

func newBase(d *Descriptor, p Placement, env Env) base {
	return base{
		desc: d,
		transform: core.Transform{
			Position: p.Position,
			Size:     p.Size,
			Rotation: p.Rotation,
		},
		resolution: env.Resolution,
	}
}

func (b *base) Descriptor() *Descriptor {
	return b.desc
}

func (b *base) Transform() core.Transform {
	return b.transform
}

func (b *base) Category() Category {
	return b.desc.Category
}

func (b *base) Hitbox() (core.Hitbox, bool) {
	return b.hitbox, b.hasHitbox
}

func (b *base) ConfigureHitbox() {
	if b.desc.HitboxScale == 0 {
		return
	}
	b.hitbox = core.CenteredHitbox(b.transform.Position, b.transform.Size, b.desc.HitboxScale)
	b.hasHitbox = true
}

func (b *base) Logic(LogicContext) {}

func (b *base) Draw(r gfx.Renderer) {
	b.drawParts(r, nil)
}

// drawParts sets the model matrix and draws every part not rejected by skip.
func (b *base) drawParts(r gfx.Renderer, skip func(Part) bool) {
	d := b.desc
	d.Program.SetMat4(gfx.UniformModel, core.ModelMatrix(b.transform, b.resolution))
	if len(d.TextureIDs) > 0 {
		r.BindTexture(d.TextureIDs[0])
	}

	for _, p := range d.Parts {
		if skip != nil && skip(p) {
			continue
		}
		d.Program.SetVec4(gfx.UniformColor, p.Color.Vec4())
		r.DrawArrays(p.Mode, d.Offset+p.Start, p.Count)
	}
}
