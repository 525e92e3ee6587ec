// Package headless implements the gfx interfaces without a display.
// The window replays scripted input and closes after a frame budget; the
// recorder keeps every upload and draw call for inspection. The sim command
// and the controller tests run on it.
package headless

import "github.com/vovakirdan/robotrun/internal/core"

// Window is a display-less window driven by a script of input events.
type Window struct {
	maxFrames int
	frames    int
	swaps     int

	shown      bool
	closed     bool
	terminated bool

	pending []core.KeyEvent
	script  map[int][]core.KeyEvent
	clicks  []core.ButtonEvent

	onKey   func(core.KeyEvent)
	onMouse func(core.ButtonEvent)
}

// NewWindow creates a window that asks to close after maxFrames polls.
// A zero budget never closes on its own.
func NewWindow(maxFrames int) *Window {
	return &Window{
		maxFrames: maxFrames,
		script:    make(map[int][]core.KeyEvent),
	}
}

// Tap queues a press and release of key for the next poll.
func (w *Window) Tap(key core.Key) {
	w.pending = append(w.pending,
		core.KeyEvent{Key: key, Action: core.ActionPress},
		core.KeyEvent{Key: key, Action: core.ActionRelease},
	)
}

// Send queues an arbitrary key event for the next poll.
func (w *Window) Send(ev core.KeyEvent) {
	w.pending = append(w.pending, ev)
}

// Click queues a mouse button event for the next poll.
func (w *Window) Click(ev core.ButtonEvent) {
	w.clicks = append(w.clicks, ev)
}

// TapAt schedules a press and release of key on the given poll (1-based).
func (w *Window) TapAt(frame int, key core.Key) {
	w.script[frame] = append(w.script[frame],
		core.KeyEvent{Key: key, Action: core.ActionPress},
		core.KeyEvent{Key: key, Action: core.ActionRelease},
	)
}

// Close makes ShouldClose return true.
func (w *Window) Close() {
	w.closed = true
}

// Frames returns the number of polls so far.
func (w *Window) Frames() int {
	return w.frames
}

// Swaps returns the number of presented frames.
func (w *Window) Swaps() int {
	return w.swaps
}

// Shown reports whether Show was called.
func (w *Window) Shown() bool {
	return w.shown
}

// Terminated reports whether Terminate was called.
func (w *Window) Terminated() bool {
	return w.terminated
}

func (w *Window) Show() {
	w.shown = true
}

func (w *Window) ShouldClose() bool {
	return w.closed || (w.maxFrames > 0 && w.frames >= w.maxFrames)
}

func (w *Window) PollEvents() {
	w.frames++

	events := append(w.pending, w.script[w.frames]...)
	w.pending = nil
	delete(w.script, w.frames)

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

func (w *Window) SwapBuffers() {
	w.swaps++
}

func (w *Window) Terminate() {
	w.terminated = true
}

func (w *Window) SetKeyCallback(fn func(core.KeyEvent)) {
	w.onKey = fn
}

func (w *Window) SetMouseCallback(fn func(core.ButtonEvent)) {
	w.onMouse = fn
}
