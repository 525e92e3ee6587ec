package object

import (
	"github.com/vovakirdan/robotrun/internal/core"
	"github.com/vovakirdan/robotrun/internal/gfx"
)

// Category tells the robot how to react when it touches an object.
type Category uint8

const (
	CategoryNone       Category = iota
	CategoryStructural          // blocks movement
	CategoryHazard              // kills the robot
	CategoryRotator             // sets the robot heading
	CategoryGoal                // stops the robot
)

func (c Category) String() string {
	switch c {
	case CategoryStructural:
		return "structural"
	case CategoryHazard:
		return "hazard"
	case CategoryRotator:
		return "rotator"
	case CategoryGoal:
		return "goal"
	default:
		return "none"
	}
}

// Part is one sub-draw of a variant: Count vertices from Start (relative to
// the variant's region of the shared buffer) in a single colour.
type Part struct {
	Name  string
	Mode  core.Topology
	Start int
	Count int
	Color core.Color
}

// Descriptor holds everything instances of one variant share: geometry,
// the region of the shared vertex buffer, the compiled program and the
// textures. One descriptor exists per variant per controller.
type Descriptor struct {
	Name     string
	Category Category

	Shader  string
	Program gfx.Program

	// Offset is the index of the first vertex in the shared buffer.
	Offset int
	Count  int

	Parts    []Part
	Vertices []core.Vertex

	// HitboxScale is the hitbox size relative to the object size.
	// Zero means instances have no collision surface.
	HitboxScale float64

	Textures   []string
	TextureIDs []uint32

	SubscribeKeys []core.Key
}

// ByteOffset returns the offset of the variant's region in bytes.
func (d *Descriptor) ByteOffset() int {
	return d.Offset * core.VertexSize
}

// Part returns the part with the given name.
func (d *Descriptor) Part(name string) (Part, bool) {
	for _, p := range d.Parts {
		if p.Name == name {
			return p, true
		}
	}
	return Part{}, false
}
