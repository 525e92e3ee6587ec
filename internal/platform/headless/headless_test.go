package headless

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/robotrun/internal/core"
	"github.com/vovakirdan/robotrun/internal/gfx"
)

func TestWindowScript(t *testing.T) {
	w := NewWindow(3)
	var got []core.KeyEvent
	w.SetKeyCallback(func(ev core.KeyEvent) { got = append(got, ev) })

	w.TapAt(2, core.KeyR)
	w.Tap(core.KeySpace)

	w.PollEvents()
	require.Len(t, got, 2)
	assert.Equal(t, core.KeySpace, got[0].Key)
	assert.Equal(t, core.ActionPress, got[0].Action)
	assert.Equal(t, core.ActionRelease, got[1].Action)

	got = nil
	w.PollEvents()
	require.Len(t, got, 2)
	assert.Equal(t, core.KeyR, got[0].Key)

	assert.False(t, w.ShouldClose())
	w.PollEvents()
	assert.True(t, w.ShouldClose())
	assert.Equal(t, 3, w.Frames())
}

func TestWindowClicksAndClose(t *testing.T) {
	w := NewWindow(0)
	var clicks []core.ButtonEvent
	w.SetMouseCallback(func(ev core.ButtonEvent) { clicks = append(clicks, ev) })

	w.Click(core.ButtonEvent{Button: core.MouseButtonLeft, Action: core.ActionPress})
	w.PollEvents()
	w.PollEvents()
	assert.Len(t, clicks, 1)

	assert.False(t, w.ShouldClose())
	w.Close()
	assert.True(t, w.ShouldClose())
}

func TestRecorder(t *testing.T) {
	r := NewRecorder()
	buf := gfx.NewBuffer([]core.Vertex{core.V2(0, 0), core.V2(1, 0), core.V2(0, 1)})
	require.NoError(t, r.Upload(buf))
	assert.ErrorIs(t, r.Upload(buf), ErrAlreadyUploaded)
	assert.Equal(t, buf.Bytes(), r.Data())

	_, err := r.CompileProgram("plasma")
	assert.Error(t, err)

	p, err := r.CompileProgram(gfx.ShaderBase)
	require.NoError(t, err)
	p.Use()
	p.SetVec4(gfx.UniformColor, mgl32.Vec4{1, 0, 0, 1})
	r.BindTexture(2)
	r.DrawArrays(core.TopologyTriangles, 0, 3)

	require.Len(t, r.Calls, 1)
	call := r.Calls[0]
	assert.Equal(t, gfx.ShaderBase, call.Program)
	assert.Equal(t, mgl32.Vec4{1, 0, 0, 1}, call.Color)
	assert.Equal(t, uint32(2), call.Texture)

	r.Reset()
	assert.Empty(t, r.Calls)
}
