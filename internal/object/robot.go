package object

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/vovakirdan/robotrun/internal/config"
	"github.com/vovakirdan/robotrun/internal/core"
)

func init() {
	Register(Variant{
		Name:     "robot",
		Category: CategoryNone,
		New: func(d *Descriptor, p Placement, env Env) Object {
			return NewRobot(d, p, env)
		},
	})
}

// Status is the externally visible state of a robot.
type Status uint8

const (
	StatusMoving Status = iota
	StatusStopped
	StatusDead
)

func (s Status) String() string {
	switch s {
	case StatusMoving:
		return "moving"
	case StatusStopped:
		return "stopped"
	case StatusDead:
		return "dead"
	default:
		return "unknown"
	}
}

// Robot walks along its direction vector, bouncing off structural objects
// and the window edge one axis at a time. Touching a rotator changes its
// heading, flames kill it and the finish pad stops it.
type Robot struct {
	base

	tuning    config.RobotTuning
	speed     float64
	direction mgl64.Vec2
	dead      bool
}

// NewRobot creates a robot heading in the tuned initial direction.
func NewRobot(d *Descriptor, p Placement, env Env) *Robot {
	return &Robot{
		base:      newBase(d, p, env),
		tuning:    env.Tuning.Robot,
		speed:     env.Tuning.Robot.Speed,
		direction: mgl64.Vec2{env.Tuning.Robot.Direction[0], env.Tuning.Robot.Direction[1]},
	}
}

// Status reports whether the robot is moving, stopped or dead.
func (r *Robot) Status() Status {
	switch {
	case r.dead:
		return StatusDead
	case r.speed == 0:
		return StatusStopped
	default:
		return StatusMoving
	}
}

// Direction returns the current heading.
func (r *Robot) Direction() mgl64.Vec2 {
	return r.direction
}

// Speed returns the distance covered per frame.
func (r *Robot) Speed() float64 {
	return r.speed
}

// Dead reports whether the robot has touched a hazard.
func (r *Robot) Dead() bool {
	return r.dead
}

// Hitbox reports no collision surface once the robot is dead.
func (r *Robot) Hitbox() (core.Hitbox, bool) {
	if r.dead {
		return core.Hitbox{}, false
	}
	return r.base.Hitbox()
}

// Logic advances the robot by one frame. A dead robot only spins and
// shrinks. Otherwise triggers run first and movement follows, x before y.
// The frame that kills or stops the robot ends after the triggers, with no
// step taken.
func (r *Robot) Logic(ctx LogicContext) {
	if r.dead {
		r.transform.Rotation += r.tuning.SpinStep
		r.transform.Size[0] = math.Max(0, r.transform.Size[0]-r.tuning.ShrinkStep)
		r.transform.Size[1] = math.Max(0, r.transform.Size[1]-r.tuning.ShrinkStep)
		return
	}

	r.trigger(ctx.Solids)
	if r.dead || r.speed == 0 {
		return
	}

	r.move(0, ctx.Solids)
	r.move(1, ctx.Solids)

	// The art faces +y
	r.transform.Rotation = mgl64.RadToDeg(math.Atan2(r.direction[1], r.direction[0])) - 90
}

// trigger reacts to rotators, hazards and goals the robot overlaps.
func (r *Robot) trigger(solids []Object) {
	if !r.hasHitbox {
		return
	}
	for _, s := range solids {
		if s == Object(r) {
			continue
		}
		hb, ok := s.Hitbox()
		if !ok || !r.hitbox.Overlaps(hb) {
			continue
		}

		switch s.Category() {
		case CategoryRotator:
			rad := mgl64.DegToRad(s.Transform().Rotation)
			r.direction = mgl64.Vec2{math.Cos(rad), math.Sin(rad)}
		case CategoryHazard:
			r.dead = true
			return
		case CategoryGoal:
			r.speed = 0
			return
		}
	}
}

// move advances along one axis and undoes the step, reversing that axis,
// when the robot would leave the window or hit a structural object.
func (r *Robot) move(axis int, solids []Object) {
	last := r.transform.Position[axis]
	r.transform.Position[axis] += r.speed * r.direction[axis]
	r.ConfigureHitbox()

	if !r.blocked(solids) {
		return
	}
	r.transform.Position[axis] = last
	r.direction[axis] = -r.direction[axis]
	r.ConfigureHitbox()
}

func (r *Robot) blocked(solids []Object) bool {
	if core.OutsideWindow(r.hitbox, r.resolution) {
		return true
	}
	for _, s := range solids {
		if s == Object(r) || s.Category() != CategoryStructural {
			continue
		}
		if hb, ok := s.Hitbox(); ok && r.hitbox.Overlaps(hb) {
			return true
		}
	}
	return false
}
