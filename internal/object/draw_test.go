package object

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/robotrun/internal/core"
	"github.com/vovakirdan/robotrun/internal/gfx"
	"github.com/vovakirdan/robotrun/internal/platform/headless"
)

// bind compiles the object's program on rec and puts it in use.
func bind(t *testing.T, rec *headless.Recorder, o Object, offset int) {
	t.Helper()
	d := o.Descriptor()
	prog, err := rec.CompileProgram(d.Shader)
	require.NoError(t, err)
	d.Program = prog
	d.Offset = offset
	prog.Use()
}

func TestRobotDrawsEveryPart(t *testing.T) {
	env := testEnv()
	r := placeRobot(t, env, mgl64.Vec2{150, -75}, mgl64.Vec2{100, 100})
	rec := headless.NewRecorder()
	bind(t, rec, r, 10)

	r.Draw(rec)

	require.Len(t, rec.Calls, 13)
	first := rec.Calls[0]
	assert.Equal(t, gfx.ShaderBase, first.Program)
	assert.Equal(t, core.TopologyTriangleFan, first.Mode)
	assert.Equal(t, 10, first.First)
	assert.Equal(t, 7, first.Count)
	assert.Equal(t, mgl32.Vec4{0.678, 0.333, 0.118, 1}, first.Color)
	assert.Equal(t, core.ModelMatrix(r.Transform(), env.Resolution), first.Model)

	last := rec.Calls[12]
	assert.Equal(t, 10+75, last.First)
	assert.Equal(t, 10, last.Count)
}

func TestFlamesAdvanceTime(t *testing.T) {
	env := testEnv()
	env.Resolution = mgl64.Vec2{1200, 600}
	fire := place(t, env, "flames", mgl64.Vec2{0, 0}, mgl64.Vec2{100, 100}, 0)
	rec := headless.NewRecorder()
	bind(t, rec, fire, 0)
	prog := rec.Program(gfx.ShaderMagma)

	fire.Draw(rec)
	assert.Zero(t, prog.Float(gfx.UniformTime))
	assert.Equal(t, mgl32.Vec2{1200, 600}, prog.Vec2(gfx.UniformResolution))

	fire.Draw(rec)
	assert.InDelta(t, 0.0005, prog.Float(gfx.UniformTime), 1e-9)

	require.Len(t, rec.Calls, 2)
	assert.Equal(t, 128, rec.Calls[0].Count)
}

func TestGateToggles(t *testing.T) {
	env := testEnv()
	o := place(t, env, "gate", mgl64.Vec2{0, 0}, mgl64.Vec2{100, 100}, 0)
	gate := o.(*Gate)
	rec := headless.NewRecorder()
	bind(t, rec, gate, 0)

	_, ok := gate.Hitbox()
	assert.True(t, ok, "closed gate is solid")
	gate.Draw(rec)
	assert.Len(t, rec.Calls, 6)

	gate.Logic(LogicContext{Input: press(core.KeySpace)})
	assert.True(t, gate.Open())
	_, ok = gate.Hitbox()
	assert.False(t, ok, "open gate is not solid")

	rec.Reset()
	gate.Draw(rec)
	assert.Len(t, rec.Calls, 3, "bars are hidden while open")

	// Held without a new press: no toggle
	gate.Logic(LogicContext{Input: core.InputFrame{}})
	assert.True(t, gate.Open())

	gate.Logic(LogicContext{Input: press(core.KeySpace)})
	assert.False(t, gate.Open())
}

func TestStaticObjectsHaveNoLogic(t *testing.T) {
	env := testEnv()
	for _, name := range []string{"box", "container", "wall", "rotator", "finish"} {
		o := place(t, env, name, mgl64.Vec2{5, 5}, mgl64.Vec2{40, 20}, 30)
		before := o.Transform()
		o.Logic(LogicContext{Input: press(core.KeySpace)})
		assert.Equal(t, before, o.Transform(), name)

		hb, ok := o.Hitbox()
		require.True(t, ok, name)
		scale := o.Descriptor().HitboxScale
		assert.InDelta(t, 40*scale, hb.W, 1e-9, name)
		assert.InDelta(t, 5-20*scale, hb.X, 1e-9, name)
	}
}

func TestTextureBoundBeforeDraw(t *testing.T) {
	env := testEnv()
	o := place(t, env, "box", mgl64.Vec2{0, 0}, mgl64.Vec2{10, 10}, 0)
	rec := headless.NewRecorder()
	bind(t, rec, o, 0)
	o.Descriptor().TextureIDs = []uint32{7}

	o.Draw(rec)

	require.NotEmpty(t, rec.Calls)
	assert.Equal(t, uint32(7), rec.Calls[0].Texture)
}
