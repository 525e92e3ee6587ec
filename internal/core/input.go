package core

import "github.com/kamstrup/intmap"

// Key is a keyboard key code. Values follow the GLFW key table so the
// native backend can pass codes through unchanged.
type Key int

// Keys the game and its backends refer to.
const (
	KeyUnknown Key = -1
	KeySpace   Key = 32
	KeyE       Key = 69
	KeyQ       Key = 81
	KeyR       Key = 82
	KeyEscape  Key = 256
	KeyEnter   Key = 257
	KeyRight   Key = 262
	KeyLeft    Key = 263
	KeyDown    Key = 264
	KeyUp      Key = 265
)

// Action is what happened to a key or button.
type Action uint8

const (
	ActionRelease Action = iota
	ActionPress
	ActionRepeat
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionRelease:
		return "Release"
	case ActionPress:
		return "Press"
	case ActionRepeat:
		return "Repeat"
	default:
		return "Unknown"
	}
}

// ModifierKey is a bit set of held modifier keys.
type ModifierKey uint8

const (
	ModShift ModifierKey = 1 << iota
	ModControl
	ModAlt
	ModSuper
)

// MouseButton identifies a mouse button.
type MouseButton int

const (
	MouseButtonLeft MouseButton = iota
	MouseButtonRight
	MouseButtonMiddle
)

// KeyEvent is a single keyboard event as delivered by a window callback.
type KeyEvent struct {
	Key      Key
	Scancode int
	Action   Action
	Mods     ModifierKey
}

// ButtonEvent is a single mouse button event.
type ButtonEvent struct {
	Button MouseButton
	Action Action
	Mods   ModifierKey
}

// KeyState is the last observed state of a key.
type KeyState struct {
	Action   Action
	Scancode int
	Mods     ModifierKey
}

// ButtonState is the last observed state of a mouse button.
type ButtonState struct {
	Action Action
	Mods   ModifierKey
}

// InputQueue collects window input events between frames.
// Events are queued as they arrive and drained once per frame; the latest
// state of every observed key is kept across frames.
type InputQueue struct {
	observed *intmap.Map[Key, struct{}]
	keys     []KeyEvent
	buttons  []ButtonEvent

	keyState    *intmap.Map[Key, KeyState]
	buttonState *intmap.Map[MouseButton, ButtonState]
}

// NewInputQueue creates a queue that records the given keys.
func NewInputQueue(observe ...Key) *InputQueue {
	q := &InputQueue{
		observed:    intmap.New[Key, struct{}](8),
		keyState:    intmap.New[Key, KeyState](8),
		buttonState: intmap.New[MouseButton, ButtonState](4),
	}
	q.Observe(observe...)
	return q
}

// Observe adds keys to the set of recorded keys.
func (q *InputQueue) Observe(keys ...Key) {
	for _, k := range keys {
		q.observed.Put(k, struct{}{})
	}
}

// Observes reports whether events for key are recorded.
func (q *InputQueue) Observes(key Key) bool {
	_, ok := q.observed.Get(key)
	return ok
}

// PushKey queues a keyboard event. Keys nobody observes are dropped.
func (q *InputQueue) PushKey(ev KeyEvent) {
	if !q.Observes(ev.Key) {
		return
	}
	q.keys = append(q.keys, ev)
	q.keyState.Put(ev.Key, KeyState{Action: ev.Action, Scancode: ev.Scancode, Mods: ev.Mods})
}

// PushButton queues a mouse button event. All buttons are recorded.
func (q *InputQueue) PushButton(ev ButtonEvent) {
	q.buttons = append(q.buttons, ev)
	q.buttonState.Put(ev.Button, ButtonState{Action: ev.Action, Mods: ev.Mods})
}

// Drain returns the events queued since the previous call and empties the
// queue. The returned frame reads the live key state, so it is only valid
// until the next Push.
func (q *InputQueue) Drain() InputFrame {
	frame := InputFrame{
		Keys:    q.keys,
		Buttons: q.buttons,
		queue:   q,
	}
	q.keys = nil
	q.buttons = nil
	return frame
}

// Reset forgets queued events and all remembered state.
func (q *InputQueue) Reset() {
	q.keys = nil
	q.buttons = nil
	q.keyState.Clear()
	q.buttonState.Clear()
}

// InputFrame is the input seen by one frame: the events that arrived since
// the previous frame (edge-triggered) plus the latest state per key
// (level-triggered).
type InputFrame struct {
	Keys    []KeyEvent
	Buttons []ButtonEvent

	queue *InputQueue
}

// Pressed returns true if key went down during this frame.
func (f InputFrame) Pressed(key Key) bool {
	for _, ev := range f.Keys {
		if ev.Key == key && ev.Action == ActionPress {
			return true
		}
	}
	return false
}

// Released returns true if key went up during this frame.
func (f InputFrame) Released(key Key) bool {
	for _, ev := range f.Keys {
		if ev.Key == key && ev.Action == ActionRelease {
			return true
		}
	}
	return false
}

// Clicked returns true if button went down during this frame.
func (f InputFrame) Clicked(button MouseButton) bool {
	for _, ev := range f.Buttons {
		if ev.Button == button && ev.Action == ActionPress {
			return true
		}
	}
	return false
}

// Latest returns the last observed state of key.
func (f InputFrame) Latest(key Key) (KeyState, bool) {
	if f.queue == nil {
		return KeyState{}, false
	}
	return f.queue.keyState.Get(key)
}

// Held returns true if the last event for key was a press or repeat.
func (f InputFrame) Held(key Key) bool {
	st, ok := f.Latest(key)
	return ok && st.Action != ActionRelease
}

// ButtonHeld returns true if the last event for button was a press.
func (f InputFrame) ButtonHeld(button MouseButton) bool {
	if f.queue == nil {
		return false
	}
	st, ok := f.queue.buttonState.Get(button)
	return ok && st.Action != ActionRelease
}
