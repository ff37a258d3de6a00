package sdlport

import (
	"github.com/veandco/go-sdl2/sdl"

	"github.com/HunterZ/abuse-wii/internal/event"
	"github.com/HunterZ/abuse-wii/internal/keys"
)

// Queue adapts SDL's event queue to event.Queue. A wheel notch is
// delivered as a press and release of button 4 (up) or 5 (down).
type Queue struct {
	buffered []event.NativeEvent
}

// NewQueue creates an empty queue adapter.
func NewQueue() *Queue {
	return &Queue{}
}

// Peek reports whether an event is waiting.
func (q *Queue) Peek() bool {
	if len(q.buffered) > 0 {
		return true
	}
	sdl.PumpEvents()
	return sdl.HasEvents(sdl.FIRSTEVENT, sdl.LASTEVENT)
}

// Next removes one event from the queue.
func (q *Queue) Next() (event.NativeEvent, bool) {
	if len(q.buffered) > 0 {
		ev := q.buffered[0]
		q.buffered = q.buffered[1:]
		return ev, true
	}

	e := sdl.PollEvent()
	if e == nil {
		return event.NativeEvent{}, false
	}
	nat, extra := convert(e)
	q.buffered = append(q.buffered, extra...)
	return nat, true
}

// convert maps one SDL event. The second result holds events that must
// follow it.
func convert(e sdl.Event) (event.NativeEvent, []event.NativeEvent) {
	switch e := e.(type) {
	case *sdl.QuitEvent:
		return event.NativeEvent{Kind: event.NativeQuit}, nil

	case *sdl.KeyboardEvent:
		// Held keys only report their first press.
		if e.Repeat != 0 {
			return event.NativeEvent{}, nil
		}
		kind := event.NativeKeyUp
		if e.Type == sdl.KEYDOWN {
			kind = event.NativeKeyDown
		}
		return event.NativeEvent{
			Kind: kind,
			Sym:  keys.Sym(e.Keysym.Sym),
			Mod:  keys.Mod(e.Keysym.Mod),
		}, nil

	case *sdl.MouseButtonEvent:
		kind := event.NativeMouseButtonUp
		if e.Type == sdl.MOUSEBUTTONDOWN {
			kind = event.NativeMouseButtonDown
		}
		return event.NativeEvent{Kind: kind, Button: e.Button}, nil

	case *sdl.MouseWheelEvent:
		y := e.Y
		if e.Direction == uint32(sdl.MOUSEWHEEL_FLIPPED) {
			y = -y
		}
		var button uint8
		switch {
		case y > 0:
			button = event.MouseWheelUp
		case y < 0:
			button = event.MouseWheelDown
		default:
			return event.NativeEvent{}, nil
		}
		return event.NativeEvent{Kind: event.NativeMouseButtonDown, Button: button},
			[]event.NativeEvent{{Kind: event.NativeMouseButtonUp, Button: button}}

	case *sdl.JoyAxisEvent:
		return event.NativeEvent{Kind: event.NativeJoyAxis, Axis: e.Axis, Value: e.Value}, nil

	case *sdl.JoyButtonEvent:
		kind := event.NativeJoyButtonUp
		if e.Type == sdl.JOYBUTTONDOWN {
			kind = event.NativeJoyButtonDown
		}
		return event.NativeEvent{Kind: kind, Button: e.Button}, nil

	case *sdl.JoyHatEvent:
		return event.NativeEvent{Kind: event.NativeJoyHat, Hat: e.Value}, nil
	}

	return event.NativeEvent{}, nil
}

// Mouse reads the pointer through SDL.
type Mouse struct{}

// State returns the pointer position in window coordinates and the held
// buttons.
func (Mouse) State() (int, int, event.MouseButtons) {
	x, y, state := sdl.GetMouseState()
	return int(x), int(y), event.MouseButtons(state)
}
