// Package desktop runs the game in a native window: GLFW for the window and
// input, OpenGL 4.1 core for drawing.
package desktop

import (
	"context"
	"fmt"
	"runtime"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/vovakirdan/robotrun/internal/core"
	"github.com/vovakirdan/robotrun/internal/engine"
	"github.com/vovakirdan/robotrun/internal/scene"
)

func init() {
	// GLFW event handling must run on the main thread
	runtime.LockOSThread()
}

// Window is a GLFW window with a current OpenGL context.
type Window struct {
	w *glfw.Window
}

// NewWindow initialises GLFW and creates a hidden, fixed-size window.
func NewWindow(cfg core.RuntimeConfig) (*Window, error) {
	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("desktop: init glfw: %w", err)
	}

	glfw.WindowHint(glfw.Visible, glfw.False)
	glfw.WindowHint(glfw.Resizable, glfw.False)
	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	if cfg.Enable3D {
		glfw.WindowHint(glfw.DepthBits, 24)
	}

	w, err := glfw.CreateWindow(cfg.Width, cfg.Height, cfg.Title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("desktop: create window: %w", err)
	}
	w.MakeContextCurrent()
	glfw.SwapInterval(1)

	if err := gl.Init(); err != nil {
		w.Destroy()
		glfw.Terminate()
		return nil, fmt.Errorf("desktop: init opengl: %w", err)
	}

	return &Window{w: w}, nil
}

// Show makes the window visible.
func (w *Window) Show() {
	w.w.Show()
}

// ShouldClose reports whether the user closed the window.
func (w *Window) ShouldClose() bool {
	return w.w.ShouldClose()
}

// PollEvents processes pending GLFW events.
func (w *Window) PollEvents() {
	glfw.PollEvents()
}

// SwapBuffers presents the back buffer.
func (w *Window) SwapBuffers() {
	w.w.SwapBuffers()
}

// Terminate destroys the window and shuts GLFW down.
func (w *Window) Terminate() {
	w.w.Destroy()
	glfw.Terminate()
}

// SetKeyCallback forwards GLFW key events to fn.
func (w *Window) SetKeyCallback(fn func(core.KeyEvent)) {
	w.w.SetKeyCallback(func(_ *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
		fn(core.KeyEvent{
			Key:      core.Key(key),
			Scancode: scancode,
			Action:   convertAction(action),
			Mods:     convertMods(mods),
		})
	})
}

// SetMouseCallback forwards GLFW mouse button events to fn.
func (w *Window) SetMouseCallback(fn func(core.ButtonEvent)) {
	w.w.SetMouseButtonCallback(func(_ *glfw.Window, button glfw.MouseButton, action glfw.Action, mods glfw.ModifierKey) {
		fn(core.ButtonEvent{
			Button: core.MouseButton(button),
			Action: convertAction(action),
			Mods:   convertMods(mods),
		})
	})
}

func convertAction(a glfw.Action) core.Action {
	switch a {
	case glfw.Press:
		return core.ActionPress
	case glfw.Repeat:
		return core.ActionRepeat
	default:
		return core.ActionRelease
	}
}

func convertMods(m glfw.ModifierKey) core.ModifierKey {
	var mods core.ModifierKey
	if m&glfw.ModShift != 0 {
		mods |= core.ModShift
	}
	if m&glfw.ModControl != 0 {
		mods |= core.ModControl
	}
	if m&glfw.ModAlt != 0 {
		mods |= core.ModAlt
	}
	if m&glfw.ModSuper != 0 {
		mods |= core.ModSuper
	}
	return mods
}

// Run opens a window for the scheme and plays it until the window closes
// or ctx is cancelled. It must be called from the main goroutine.
func Run(ctx context.Context, cfg core.RuntimeConfig, s scene.Scheme, opts ...engine.Option) error {
	win, err := NewWindow(cfg)
	if err != nil {
		return err
	}

	ctrl, err := engine.New(cfg, s, win, NewRenderer(), opts...)
	if err != nil {
		win.Terminate()
		return err
	}
	return ctrl.Run(ctx)
}
