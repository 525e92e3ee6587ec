package tui

import "github.com/vovakirdan/robotrun/internal/core"

// Window adapts terminal input to the gfx.Window contract. Terminals only
// report key presses, so every press is followed by a synthetic release on
// the next poll.
type Window struct {
	pending  []core.KeyEvent
	releases []core.Key
	clicks   []core.ButtonEvent

	shown      bool
	closed     bool
	terminated bool

	onKey   func(core.KeyEvent)
	onMouse func(core.ButtonEvent)
}

// NewWindow creates a terminal window.
func NewWindow() *Window {
	return &Window{}
}

// Press queues a key press for the next poll.
func (w *Window) Press(key core.Key, mods core.ModifierKey) {
	w.pending = append(w.pending, core.KeyEvent{Key: key, Action: core.ActionPress, Mods: mods})
}

// Click queues a mouse button event for the next poll.
func (w *Window) Click(ev core.ButtonEvent) {
	w.clicks = append(w.clicks, ev)
}

// Close makes ShouldClose return true.
func (w *Window) Close() {
	w.closed = true
}

func (w *Window) Show() {
	w.shown = true
}

func (w *Window) ShouldClose() bool {
	return w.closed
}

func (w *Window) PollEvents() {
	var events []core.KeyEvent
	for _, k := range w.releases {
		events = append(events, core.KeyEvent{Key: k, Action: core.ActionRelease})
	}
	w.releases = w.releases[:0]
	for _, ev := range w.pending {
		events = append(events, ev)
		w.releases = append(w.releases, ev.Key)
	}
	w.pending = w.pending[:0]

	if w.onKey != nil {
		for _, ev := range events {
			w.onKey(ev)
		}
	}

	clicks := w.clicks
	w.clicks = nil
	if w.onMouse != nil {
		for _, ev := range clicks {
			w.onMouse(ev)
		}
	}
}

// SwapBuffers is a no-op: the model renders the screen in View.
func (w *Window) SwapBuffers() {}

func (w *Window) Terminate() {
	w.terminated = true
}

func (w *Window) SetKeyCallback(fn func(core.KeyEvent)) {
	w.onKey = fn
}

func (w *Window) SetMouseCallback(fn func(core.ButtonEvent)) {
	w.onMouse = fn
}
