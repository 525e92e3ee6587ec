// Package ebitengine runs the game inside an Ebitengine window. Input is
// polled from Ebitengine's key state each tick, objects are drawn with Kage
// shaders, and Ebitengine's own loop paces the controller.
package ebitengine

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/robotrun/internal/core"
)

var keyTable = map[ebiten.Key]core.Key{
	ebiten.KeySpace:      core.KeySpace,
	ebiten.KeyE:          core.KeyE,
	ebiten.KeyQ:          core.KeyQ,
	ebiten.KeyR:          core.KeyR,
	ebiten.KeyEscape:     core.KeyEscape,
	ebiten.KeyEnter:      core.KeyEnter,
	ebiten.KeyArrowRight: core.KeyRight,
	ebiten.KeyArrowLeft:  core.KeyLeft,
	ebiten.KeyArrowDown:  core.KeyDown,
	ebiten.KeyArrowUp:    core.KeyUp,
}

var buttonTable = map[ebiten.MouseButton]core.MouseButton{
	ebiten.MouseButtonLeft:   core.MouseButtonLeft,
	ebiten.MouseButtonRight:  core.MouseButtonRight,
	ebiten.MouseButtonMiddle: core.MouseButtonMiddle,
}

// MapKey converts an Ebitengine key to the shared key code.
func MapKey(k ebiten.Key) core.Key {
	if key, ok := keyTable[k]; ok {
		return key
	}
	return core.KeyUnknown
}

// Window adapts Ebitengine's global window and input state.
type Window struct {
	closed     bool
	terminated bool

	onKey   func(core.KeyEvent)
	onMouse func(core.ButtonEvent)
}

// NewWindow creates the adapter. Window size and title are set by Run.
func NewWindow() *Window {
	return &Window{}
}

// Close asks the game to stop on the next update.
func (w *Window) Close() {
	w.closed = true
}

// Show is a no-op; RunGame opens the window.
func (w *Window) Show() {}

// ShouldClose reports whether the window is closing or was closed.
func (w *Window) ShouldClose() bool {
	return w.closed || w.terminated || ebiten.IsWindowBeingClosed()
}

// PollEvents turns the key and button transitions of the current tick
// into callback events.
func (w *Window) PollEvents() {
	mods := currentMods()
	if w.onKey != nil {
		for ek, k := range keyTable {
			switch {
			case inpututil.IsKeyJustPressed(ek):
				w.onKey(core.KeyEvent{Key: k, Action: core.ActionPress, Mods: mods})
			case inpututil.IsKeyJustReleased(ek):
				w.onKey(core.KeyEvent{Key: k, Action: core.ActionRelease, Mods: mods})
			}
		}
	}
	if w.onMouse != nil {
		for eb, b := range buttonTable {
			switch {
			case inpututil.IsMouseButtonJustPressed(eb):
				w.onMouse(core.ButtonEvent{Button: b, Action: core.ActionPress, Mods: mods})
			case inpututil.IsMouseButtonJustReleased(eb):
				w.onMouse(core.ButtonEvent{Button: b, Action: core.ActionRelease, Mods: mods})
			}
		}
	}
}

// SwapBuffers is a no-op; Ebitengine presents after Draw returns.
func (w *Window) SwapBuffers() {}

// Terminate marks the window closed.
func (w *Window) Terminate() {
	w.terminated = true
}

// SetKeyCallback sets the receiver of key events.
func (w *Window) SetKeyCallback(fn func(core.KeyEvent)) {
	w.onKey = fn
}

// SetMouseCallback sets the receiver of mouse button events.
func (w *Window) SetMouseCallback(fn func(core.ButtonEvent)) {
	w.onMouse = fn
}

func currentMods() core.ModifierKey {
	var m core.ModifierKey
	if ebiten.IsKeyPressed(ebiten.KeyShift) {
		m |= core.ModShift
	}
	if ebiten.IsKeyPressed(ebiten.KeyControl) {
		m |= core.ModControl
	}
	if ebiten.IsKeyPressed(ebiten.KeyAlt) {
		m |= core.ModAlt
	}
	if ebiten.IsKeyPressed(ebiten.KeyMeta) {
		m |= core.ModSuper
	}
	return m
}
