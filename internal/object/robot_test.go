package object

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/robotrun/internal/core"
)

const delta = 1e-9

func TestRobotFirstFrame(t *testing.T) {
	env := testEnv()
	r := placeRobot(t, env, mgl64.Vec2{0, 0}, mgl64.Vec2{100, 100})

	r.Logic(LogicContext{Solids: []Object{r}})

	pos := r.Transform().Position
	assert.InDelta(t, 0, pos[0], delta)
	assert.InDelta(t, 0.6, pos[1], delta)
	assert.InDelta(t, 0, r.Transform().Rotation, delta)
	assert.Equal(t, StatusMoving, r.Status())
}

func TestRobotWithoutSolidsStillHitsWindow(t *testing.T) {
	env := testEnv()
	// Top of the hitbox sits 0.3px below the window edge
	y := 300 - 0.857*100/2 - 0.3
	r := placeRobot(t, env, mgl64.Vec2{0, y}, mgl64.Vec2{100, 100})

	r.Logic(LogicContext{})

	assert.InDelta(t, y, r.Transform().Position[1], delta)
	assert.InDelta(t, -1, r.Direction()[1], delta)
	assert.InDelta(t, -180, r.Transform().Rotation, delta)
}

func TestRobotRotatorSetsHeading(t *testing.T) {
	tests := []struct {
		name     string
		rotation float64
		dir      mgl64.Vec2
		facing   float64
	}{
		{"quarter turn points up", 90, mgl64.Vec2{0, 1}, 0},
		{"zero points right", 0, mgl64.Vec2{1, 0}, -90},
		{"half turn points left", 180, mgl64.Vec2{-1, 0}, 90},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			env := testEnv()
			r := placeRobot(t, env, mgl64.Vec2{0, 0}, mgl64.Vec2{100, 100})
			rot := place(t, env, "rotator", mgl64.Vec2{0, 0}, mgl64.Vec2{100, 100}, tc.rotation)

			r.Logic(LogicContext{Solids: []Object{r, rot}})

			assert.InDelta(t, tc.dir[0], r.Direction()[0], delta)
			assert.InDelta(t, tc.dir[1], r.Direction()[1], delta)
			assert.InDelta(t, 0.6*tc.dir[0], r.Transform().Position[0], delta)
			assert.InDelta(t, 0.6*tc.dir[1], r.Transform().Position[1], delta)
			assert.InDelta(t, tc.facing, r.Transform().Rotation, 1e-6)
		})
	}
}

func TestRobotDiesInFlames(t *testing.T) {
	env := testEnv()
	r := placeRobot(t, env, mgl64.Vec2{0, 0}, mgl64.Vec2{0.06, 0.06})
	fire := place(t, env, "flames", mgl64.Vec2{0, 0}, mgl64.Vec2{100, 100}, 0)

	r.Logic(LogicContext{Solids: []Object{r, fire}})

	require.True(t, r.Dead())
	assert.Equal(t, StatusDead, r.Status())
	// No movement on the frame of death
	assert.Equal(t, mgl64.Vec2{0, 0}, r.Transform().Position)
	_, ok := r.Hitbox()
	assert.False(t, ok, "dead robot has no hitbox")

	r.Logic(LogicContext{Solids: []Object{r, fire}})
	assert.InDelta(t, 0.03, r.Transform().Size[0], delta)
	assert.InDelta(t, 0.2, r.Transform().Rotation, delta)

	for range 5 {
		r.Logic(LogicContext{Solids: []Object{r, fire}})
	}
	assert.Equal(t, mgl64.Vec2{0, 0}, r.Transform().Size, "size clamps at zero")
	assert.InDelta(t, 1.2, r.Transform().Rotation, 1e-9)
	assert.Equal(t, mgl64.Vec2{0, 0}, r.Transform().Position)
}

func TestRobotDeathIsTerminal(t *testing.T) {
	env := testEnv()
	r := placeRobot(t, env, mgl64.Vec2{0, 0}, mgl64.Vec2{100, 100})
	fire := place(t, env, "flames", mgl64.Vec2{0, 0}, mgl64.Vec2{100, 100}, 0)
	r.Logic(LogicContext{Solids: []Object{r, fire}})
	require.True(t, r.Dead())

	dir := r.Direction()
	rot := place(t, env, "rotator", mgl64.Vec2{0, 0}, mgl64.Vec2{100, 100}, 0)
	goal := place(t, env, "finish", mgl64.Vec2{0, 0}, mgl64.Vec2{100, 100}, 0)
	for range 10 {
		r.Logic(LogicContext{Solids: []Object{rot, goal, r}})
	}

	assert.True(t, r.Dead())
	assert.Equal(t, dir, r.Direction())
	assert.Equal(t, mgl64.Vec2{0, 0}, r.Transform().Position)
}

func TestRobotStopsAtGoal(t *testing.T) {
	env := testEnv()
	r := placeRobot(t, env, mgl64.Vec2{0, 0}, mgl64.Vec2{100, 100})
	goal := place(t, env, "finish", mgl64.Vec2{10, 10}, mgl64.Vec2{100, 100}, 0)

	r.Logic(LogicContext{Solids: []Object{r, goal}})

	assert.Equal(t, StatusStopped, r.Status())
	assert.Zero(t, r.Speed())
	assert.Equal(t, mgl64.Vec2{0, 0}, r.Transform().Position)

	// Stays put while overlapping the goal
	r.Logic(LogicContext{Solids: []Object{r, goal}})
	assert.Equal(t, mgl64.Vec2{0, 0}, r.Transform().Position)
}

func TestRobotHazardWinsOverLaterGoal(t *testing.T) {
	env := testEnv()
	r := placeRobot(t, env, mgl64.Vec2{0, 0}, mgl64.Vec2{100, 100})
	fire := place(t, env, "flames", mgl64.Vec2{0, 0}, mgl64.Vec2{100, 100}, 0)
	goal := place(t, env, "finish", mgl64.Vec2{0, 0}, mgl64.Vec2{100, 100}, 0)

	r.Logic(LogicContext{Solids: []Object{fire, goal, r}})

	assert.True(t, r.Dead())
	assert.Equal(t, 0.6, r.Speed(), "scan stops at the first terminal trigger")
}

func TestRobotReversesBlockedAxis(t *testing.T) {
	env := testEnv()
	r := placeRobot(t, env, mgl64.Vec2{0, 0}, mgl64.Vec2{100, 100})
	// Box bottom 0.3px above the robot's hitbox top
	boxY := 0.857*100/2 + 0.3 + 50
	box := place(t, env, "box", mgl64.Vec2{0, boxY}, mgl64.Vec2{100, 100}, 0)

	r.Logic(LogicContext{Solids: []Object{r, box}})

	assert.Equal(t, mgl64.Vec2{0, 0}, r.Transform().Position)
	assert.InDelta(t, 0, r.Direction()[0], delta)
	assert.InDelta(t, -1, r.Direction()[1], delta)
	assert.InDelta(t, -180, r.Transform().Rotation, delta)

	hb, ok := r.Hitbox()
	require.True(t, ok)
	assert.InDelta(t, -0.857*100/2, hb.Y, delta, "hitbox follows the reverted position")

	r.Logic(LogicContext{Solids: []Object{r, box}})
	assert.InDelta(t, -0.6, r.Transform().Position[1], delta)
}

func TestRobotSlidesAlongWall(t *testing.T) {
	env := testEnv()
	env.Tuning.Robot.Speed = 1
	env.Tuning.Robot.Direction = [2]float64{1, 1}
	r := placeRobot(t, env, mgl64.Vec2{0, 0}, mgl64.Vec2{100, 100})
	wallY := 0.857*100/2 + 0.5 + 50
	wall := place(t, env, "wall", mgl64.Vec2{0, wallY}, mgl64.Vec2{400, 100}, 0)

	r.Logic(LogicContext{Solids: []Object{wall, r}})

	assert.InDelta(t, 1, r.Transform().Position[0], delta, "x is unaffected by the wall")
	assert.InDelta(t, 0, r.Transform().Position[1], delta)
	assert.Equal(t, mgl64.Vec2{1, -1}, r.Direction())
}

func TestRobotIgnoresNonStructuralAndAbsentHitboxes(t *testing.T) {
	env := testEnv()
	r := placeRobot(t, env, mgl64.Vec2{0, 0}, mgl64.Vec2{100, 100})
	other := placeRobot(t, env, mgl64.Vec2{0, 10}, mgl64.Vec2{100, 100})
	unconfigured, err := Create("box", Placement{Position: mgl64.Vec2{0, 10}, Size: mgl64.Vec2{100, 100}}, env)
	require.NoError(t, err)

	r.Logic(LogicContext{Solids: []Object{r, other, unconfigured}})

	assert.InDelta(t, 0.6, r.Transform().Position[1], delta)
	assert.InDelta(t, 1, r.Direction()[1], delta)
}

func TestRobotWalksThroughOpenGate(t *testing.T) {
	env := testEnv()
	r := placeRobot(t, env, mgl64.Vec2{0, 0}, mgl64.Vec2{100, 100})
	gateY := 0.857*100/2 + 0.3 + 50
	gate := place(t, env, "gate", mgl64.Vec2{0, gateY}, mgl64.Vec2{100, 100}, 0)

	gate.Logic(LogicContext{Input: press(core.KeySpace)})
	r.Logic(LogicContext{Solids: []Object{r, gate}})

	assert.InDelta(t, 0.6, r.Transform().Position[1], delta)
}
