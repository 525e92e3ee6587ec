package engine

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/robotrun/internal/config"
	"github.com/vovakirdan/robotrun/internal/core"
	"github.com/vovakirdan/robotrun/internal/gfx"
	"github.com/vovakirdan/robotrun/internal/object"
	"github.com/vovakirdan/robotrun/internal/platform/headless"
	"github.com/vovakirdan/robotrun/internal/scene"
)

func item(x, y, w, h float64, hitbox bool) scene.Item {
	return scene.Item{Position: [2]float64{x, y}, Size: &[2]float64{w, h}, Hitbox: hitbox}
}

func group(typ string, items ...scene.Item) scene.Group {
	return scene.Group{Type: typ, Items: items}
}

func newTestController(t *testing.T, s scene.Scheme, opts ...Option) (*Controller, *headless.Window, *headless.Recorder) {
	t.Helper()
	win := headless.NewWindow(0)
	rec := headless.NewRecorder()
	c, err := New(core.DefaultConfig(), s, win, rec, opts...)
	require.NoError(t, err)
	return c, win, rec
}

func robotOnly() scene.Scheme {
	return scene.Scheme{ID: "test", Groups: []scene.Group{
		group("robot", item(0, 0, 100, 100, true)),
	}}
}

func TestNewConfiguresScene(t *testing.T) {
	s := scene.Scheme{ID: "mixed", Groups: []scene.Group{
		group("robot", item(0, 0, 50, 50, true)),
		group("flames", item(200, 200, 50, 50, true)),
		group("box", item(-200, 0, 40, 40, true), item(-200, 100, 40, 40, false)),
		group("box", item(200, -200, 40, 40, true)),
	}}
	c, _, rec := newTestController(t, s)

	assert.Equal(t, []string{gfx.ShaderBase, gfx.ShaderMagma}, rec.Compiled, "one compile per program")
	assert.Equal(t, 1, rec.Uploads())
	assert.True(t, rec.Blend)
	assert.False(t, rec.Depth)

	descs := c.Descriptors()
	require.Len(t, descs, 3, "repeated group types share a descriptor")
	assert.Equal(t, 0, descs[0].Offset)
	assert.Equal(t, 85, descs[1].Offset)
	assert.Equal(t, 85+128, descs[2].Offset)
	assert.Equal(t, (85+128)*core.VertexSize, descs[2].ByteOffset())
	assert.Equal(t, 85+128+12, c.Buffer().Len())
	assert.Equal(t, c.Buffer().Bytes(), rec.Data())

	groups := c.Groups()
	require.Len(t, groups, 4)
	assert.Same(t, groups[2].Descriptor, groups[3].Descriptor)
	assert.Same(t, rec.Program(gfx.ShaderBase), descs[0].Program)

	// The box without a hitbox flag is not solid
	assert.Len(t, c.Solids(), 4)
	assert.True(t, groups[2].Solid(0))
	assert.False(t, groups[2].Solid(1))
	assert.False(t, groups[2].Solid(5))
	assert.Equal(t, StateRunning, c.State())
}

func TestFirstFrameMovesRobot(t *testing.T) {
	c, win, _ := newTestController(t, robotOnly())

	require.NoError(t, c.Frame())

	robots := c.Robots()
	require.Len(t, robots, 1)
	pos := robots[0].Transform().Position
	assert.InDelta(t, 0, pos[0], 1e-9)
	assert.InDelta(t, 0.6, pos[1], 1e-9)
	assert.Equal(t, 1, win.Swaps())
}

func TestRestartRebuildsRosterOnly(t *testing.T) {
	s := scene.Scheme{ID: "restart", Groups: []scene.Group{
		group("robot", item(0, 0, 100, 100, true)),
		group("flames", item(0, 150, 60, 60, true)),
		group("wall", item(-200, 0, 20, 200, true)),
	}}
	c, win, rec := newTestController(t, s)
	data := rec.Data()
	offsets := []int{c.Descriptors()[0].Offset, c.Descriptors()[1].Offset, c.Descriptors()[2].Offset}

	for range 30 {
		require.NoError(t, c.Frame())
	}
	moved := c.Robots()[0]
	require.NotEqual(t, mgl64.Vec2{0, 0}, moved.Transform().Position)

	// Press without release: a held key restarts once
	win.Send(core.KeyEvent{Key: core.KeyR, Action: core.ActionPress})
	require.NoError(t, c.Frame())
	require.NoError(t, c.Frame())
	require.NoError(t, c.Frame())

	assert.Equal(t, int64(1), c.Stats().Restarts)
	fresh := c.Robots()[0]
	assert.NotSame(t, moved, fresh)
	assert.InDelta(t, 3*0.6, fresh.Transform().Position[1], 1e-9)

	assert.Equal(t, 1, rec.Uploads(), "buffer is never re-uploaded")
	assert.Equal(t, data, rec.Data())
	assert.Equal(t, offsets, []int{c.Descriptors()[0].Offset, c.Descriptors()[1].Offset, c.Descriptors()[2].Offset})
	assert.Len(t, c.Solids(), 3)
}

func TestRestartIsIdempotent(t *testing.T) {
	c, _, _ := newTestController(t, robotOnly())

	c.Restart()
	first := c.Robots()[0].Transform()
	c.Restart()
	second := c.Robots()[0].Transform()

	assert.Equal(t, first, second)
	assert.Equal(t, int64(2), c.Stats().Restarts)
}

func TestRenderOrder(t *testing.T) {
	s := scene.Scheme{ID: "order", Groups: []scene.Group{
		group("robot", item(0, 0, 50, 50, true)),
		group("flames", item(100, 100, 50, 50, true)),
		group("box", item(-100, -100, 50, 50, true)),
	}}
	c, _, rec := newTestController(t, s)

	c.Render()

	require.Len(t, rec.Clears, 1)
	assert.Equal(t, config.DefaultTuning().Scene.BackgroundColor(), rec.Clears[0])

	// box (3 parts), flames (1 part), robot (13 parts)
	require.Len(t, rec.Calls, 3+1+13)
	assert.Equal(t, gfx.ShaderBase, rec.Calls[0].Program)
	assert.Equal(t, 85+128, rec.Calls[0].First)
	assert.Equal(t, gfx.ShaderMagma, rec.Calls[3].Program)
	assert.Equal(t, 85, rec.Calls[3].First)
	assert.Equal(t, gfx.ShaderBase, rec.Calls[4].Program)
	assert.Equal(t, 0, rec.Calls[4].First)
}

func TestDeathScenario(t *testing.T) {
	s := scene.Scheme{ID: "death", Groups: []scene.Group{
		group("robot", item(0, 0, 3, 3, true)),
		group("flames", item(0, 0, 100, 100, true)),
	}}
	c, _, _ := newTestController(t, s)

	require.NoError(t, c.Tick())
	rb := c.Robots()[0]
	require.Equal(t, object.StatusDead, rb.Status())

	prev := rb.Transform().Size[0]
	for range 150 {
		require.NoError(t, c.Tick())
		cur := rb.Transform().Size[0]
		assert.LessOrEqual(t, cur, prev)
		prev = cur
	}
	assert.Equal(t, mgl64.Vec2{0, 0}, rb.Transform().Size)
	assert.Equal(t, mgl64.Vec2{0, 0}, rb.Transform().Position)
}

func TestSolidsFollowHitboxPresence(t *testing.T) {
	s := scene.Scheme{ID: "ghost", Groups: []scene.Group{
		group("robot", item(0, 0, 100, 100, false)),
		group("flames", item(0, 0, 100, 100, true)),
	}}
	c, _, _ := newTestController(t, s)
	rb := c.Robots()[0]
	require.Len(t, c.Solids(), 1, "only the flames join the solid list")

	_, ok := rb.Hitbox()
	require.False(t, ok)

	require.NoError(t, c.Tick())
	assert.Equal(t, object.StatusMoving, rb.Status(), "no hitbox, no solids")
	assert.InDelta(t, 0.6, rb.Transform().Position[1], 1e-9)
	_, ok = rb.Hitbox()
	require.True(t, ok, "moving configures the hitbox")

	require.NoError(t, c.Tick())
	assert.Equal(t, object.StatusDead, rb.Status())
	assert.InDelta(t, 0.6, rb.Transform().Position[1], 1e-9)
}

func TestGateOpensOnSpace(t *testing.T) {
	s := scene.Scheme{ID: "gate", Groups: []scene.Group{
		group("gate", item(0, 0, 40, 40, true)),
	}}
	c, win, _ := newTestController(t, s)
	gate := c.Groups()[0].Items[0].(*object.Gate)

	win.TapAt(2, core.KeySpace)
	require.NoError(t, c.Frame())
	assert.False(t, gate.Open())
	require.NoError(t, c.Frame())
	assert.True(t, gate.Open())
	require.NoError(t, c.Frame())
	assert.True(t, gate.Open())
}

func TestRunStopsWhenWindowCloses(t *testing.T) {
	win := headless.NewWindow(5)
	rec := headless.NewRecorder()
	c, err := New(core.DefaultConfig(), robotOnly(), win, rec)
	require.NoError(t, err)

	require.NoError(t, c.Run(context.Background()))

	assert.True(t, win.Shown())
	assert.True(t, win.Terminated())
	assert.Equal(t, 5, win.Swaps())
	assert.Equal(t, StateTerminated, c.State())
	assert.Equal(t, int64(5), c.Stats().Frames)
	assert.Equal(t, int64(5), c.Stats().Logic.Count)
	assert.ErrorIs(t, c.Tick(), ErrTerminated)
	assert.ErrorIs(t, c.Run(context.Background()), ErrTerminated)
}

func TestRunStopsOnCancel(t *testing.T) {
	c, win, _ := newTestController(t, robotOnly())
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	require.NoError(t, c.Run(ctx))

	assert.Zero(t, win.Swaps())
	assert.True(t, win.Terminated())
}

func TestEnable3D(t *testing.T) {
	cfg := core.DefaultConfig()
	cfg.Enable3D = true
	rec := headless.NewRecorder()

	_, err := New(cfg, robotOnly(), headless.NewWindow(0), rec)
	require.NoError(t, err)
	assert.True(t, rec.Depth)
}

func TestNewRejectsInvalidScheme(t *testing.T) {
	s := scene.Scheme{ID: "bad", Groups: []scene.Group{
		group("dragon", item(0, 0, 10, 10, true)),
		{Type: "robot", Items: []scene.Item{{}}},
	}}
	rec := headless.NewRecorder()

	_, err := New(core.DefaultConfig(), s, headless.NewWindow(0), rec)
	require.Error(t, err)

	var ve *scene.ValidationError
	assert.True(t, errors.As(err, &ve))
	assert.Zero(t, rec.Uploads(), "nothing is uploaded for an invalid scheme")
}

func TestNewFailsOnCompileError(t *testing.T) {
	s := scene.Scheme{ID: "nomagma", Groups: []scene.Group{
		group("flames", item(0, 0, 10, 10, true)),
	}}
	rec := headless.NewRecorder(gfx.ShaderBase)

	_, err := New(core.DefaultConfig(), s, headless.NewWindow(0), rec)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "magma")
}

func TestTuningOption(t *testing.T) {
	tuning := config.DefaultTuning()
	tuning.Robot.Speed = 2
	tuning.Robot.Direction = [2]float64{1, 0}
	c, _, _ := newTestController(t, robotOnly(), WithTuning(tuning))

	require.NoError(t, c.Tick())
	assert.InDelta(t, 2, c.Robots()[0].Transform().Position[0], 1e-9)
}

func TestAssemble(t *testing.T) {
	a := &object.Descriptor{Vertices: []core.Vertex{core.V2(0, 0), core.V2(1, 0)}}
	b := &object.Descriptor{Vertices: []core.Vertex{core.V2(0, 1)}}

	buf := Assemble([]*object.Descriptor{a, b})

	assert.Equal(t, 0, a.Offset)
	assert.Equal(t, 2, b.Offset)
	assert.Equal(t, 1, b.Count)
	assert.Equal(t, 3*core.VertexSize, len(buf.Bytes()))
	assert.True(t, bytes.Equal(buf.Bytes()[2*core.VertexSize:], core.V2(0, 1).AppendBytes(nil)))
}
