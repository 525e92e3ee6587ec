package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/robotrun/internal/core"
	"github.com/vovakirdan/robotrun/internal/engine"
	"github.com/vovakirdan/robotrun/internal/gfx"
	"github.com/vovakirdan/robotrun/internal/scene"
)

func quad() *gfx.Buffer {
	return gfx.NewBuffer([]core.Vertex{
		core.V2(-1, -1), core.V2(1, -1), core.V2(-1, 1), core.V2(1, 1),
	})
}

func TestRendererFillsQuad(t *testing.T) {
	screen := core.NewScreen(10, 6)
	r := NewRenderer(screen)
	require.NoError(t, r.Upload(quad()))
	assert.Error(t, r.Upload(quad()), "second upload")

	prog, err := r.CompileProgram(gfx.ShaderBase)
	require.NoError(t, err)
	prog.Use()
	prog.SetVec4(gfx.UniformColor, mgl32.Vec4{1, 0, 0, 1})

	r.Clear(core.RGBA(0, 0, 0, 1))
	r.DrawArrays(core.TopologyTriangleStrip, 0, 4)

	for y := range screen.Height() {
		for x := range screen.Width() {
			assert.Equal(t, core.RGBA(1, 0, 0, 1), screen.At(x, y).BG, "cell %d,%d", x, y)
		}
	}
}

func TestRendererAppliesModelMatrix(t *testing.T) {
	screen := core.NewScreen(10, 10)
	r := NewRenderer(screen)
	require.NoError(t, r.Upload(quad()))
	prog, err := r.CompileProgram(gfx.ShaderBase)
	require.NoError(t, err)
	prog.Use()
	prog.SetVec4(gfx.UniformColor, mgl32.Vec4{0, 1, 0, 1})

	// Shrink to the top-right quarter
	prog.SetMat4(gfx.UniformModel, mgl32.Translate3D(0.5, 0.5, 0).Mul4(mgl32.Scale3D(0.5, 0.5, 1)))
	r.Clear(core.RGBA(0, 0, 0, 1))
	r.DrawArrays(core.TopologyTriangleStrip, 0, 4)

	green := core.RGBA(0, 1, 0, 1)
	assert.Equal(t, green, screen.At(7, 2).BG)
	assert.NotEqual(t, green, screen.At(2, 7).BG)
	assert.NotEqual(t, green, screen.At(2, 2).BG)
}

func TestRendererIgnoresOutOfRangeDraws(t *testing.T) {
	screen := core.NewScreen(4, 4)
	r := NewRenderer(screen)
	require.NoError(t, r.Upload(quad()))

	// No program in use
	r.DrawArrays(core.TopologyTriangleStrip, 0, 4)

	prog, err := r.CompileProgram(gfx.ShaderBase)
	require.NoError(t, err)
	prog.Use()
	r.DrawArrays(core.TopologyTriangleStrip, 2, 4)

	assert.Equal(t, core.Color{}, screen.At(1, 1).BG)

	_, err = r.CompileProgram("phong")
	assert.Error(t, err)
}

func TestWindowSynthesisesRelease(t *testing.T) {
	w := NewWindow()
	var got []core.KeyEvent
	w.SetKeyCallback(func(ev core.KeyEvent) { got = append(got, ev) })

	w.Press(core.KeyR, 0)
	w.PollEvents()
	require.Len(t, got, 1)
	assert.Equal(t, core.ActionPress, got[0].Action)

	w.PollEvents()
	require.Len(t, got, 2)
	assert.Equal(t, core.KeyEvent{Key: core.KeyR, Action: core.ActionRelease}, got[1])

	w.PollEvents()
	assert.Len(t, got, 2)
}

func TestKeyMap(t *testing.T) {
	km := DefaultKeyMap()

	tests := []struct {
		msg  tea.KeyMsg
		key  core.Key
		quit bool
	}{
		{tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("r")}, core.KeyR, false},
		{tea.KeyMsg{Type: tea.KeySpace, Runes: []rune(" ")}, core.KeySpace, false},
		{tea.KeyMsg{Type: tea.KeyUp}, core.KeyUp, false},
		{tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")}, core.KeyUnknown, true},
		{tea.KeyMsg{Type: tea.KeyCtrlC}, core.KeyUnknown, true},
		{tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("x")}, core.KeyUnknown, false},
	}

	for _, tc := range tests {
		t.Run(tc.msg.String(), func(t *testing.T) {
			k, quit := km.MapKey(tc.msg)
			assert.Equal(t, tc.key, k)
			assert.Equal(t, tc.quit, quit)
		})
	}
}

func newModel(t *testing.T) Model {
	t.Helper()
	s := scene.Scheme{ID: "tui", Name: "Terminal", Groups: []scene.Group{
		{Type: "robot", Items: []scene.Item{{Size: &[2]float64{100, 100}, Hitbox: true}}},
		{Type: "gate", Items: []scene.Item{{Position: [2]float64{200, 0}, Size: &[2]float64{40, 40}, Hitbox: true}}},
	}}
	screen := core.NewScreen(80, 20)
	win := NewWindow()
	rend := NewRenderer(screen)
	ctrl, err := engine.New(core.DefaultConfig(), s, win, rend)
	require.NoError(t, err)
	return NewModel(ctrl, win, rend, 60)
}

func TestModelTicksController(t *testing.T) {
	m := newModel(t)

	next, cmd := m.Update(TickMsg{})
	assert.NotNil(t, cmd)
	m = next.(Model)
	assert.Equal(t, int64(1), m.ctrl.Stats().Frames)
	assert.InDelta(t, 0.6, m.ctrl.Robots()[0].Transform().Position[1], 1e-9)

	view := m.View()
	assert.Contains(t, view, "Terminal")
	assert.Contains(t, view, "robot 1: moving")
}

func TestModelRestartKey(t *testing.T) {
	m := newModel(t)
	for range 3 {
		next, _ := m.Update(TickMsg{})
		m = next.(Model)
	}

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("r")})
	m = next.(Model)
	next, _ = m.Update(TickMsg{})
	m = next.(Model)

	assert.Equal(t, int64(1), m.ctrl.Stats().Restarts)
	assert.InDelta(t, 0.6, m.ctrl.Robots()[0].Transform().Position[1], 1e-9)
}

func TestModelQuit(t *testing.T) {
	m := newModel(t)

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
	assert.Empty(t, next.(Model).View())
	assert.True(t, m.win.ShouldClose())
}

func TestModelResize(t *testing.T) {
	m := newModel(t)

	next, _ := m.Update(tea.WindowSizeMsg{Width: 30, Height: 12})
	m = next.(Model)

	assert.Equal(t, 30, m.rend.Screen().Width())
	assert.Equal(t, 11, m.rend.Screen().Height())
}

func TestMenuSelectsLevel(t *testing.T) {
	levels := []scene.Scheme{{ID: "a", Name: "Alpha"}, {ID: "b", Name: "Beta"}}
	var m tea.Model = NewMenuModel(levels, 60, 20)

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyUp})
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyDown})
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyDown})
	assert.Contains(t, m.View(), "> Beta")

	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	menu := m.(MenuModel)
	require.NotNil(t, menu.Selected())
	assert.Equal(t, "b", menu.Selected().ID)
}

func TestMenuQuit(t *testing.T) {
	var m tea.Model = NewMenuModel([]scene.Scheme{{ID: "a", Name: "Alpha"}}, 60, 20)
	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	require.NotNil(t, cmd)

	menu := m.(MenuModel)
	assert.True(t, menu.IsQuitting())
	assert.Nil(t, menu.Selected())
	assert.Empty(t, menu.View())
}

func TestMenuEmpty(t *testing.T) {
	var m tea.Model = NewMenuModel(nil, 60, 20)
	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.Nil(t, cmd)
	assert.Nil(t, m.(MenuModel).Selected())
}
