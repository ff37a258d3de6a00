// Package event translates native input into the engine's event stream.
//
// A Translator is polled once per tick. Each poll consumes at most one
// native event, updates the device state it owns and produces exactly one
// Event. Pointer position and button mask are carried on every event so
// a consumer that only looks at keys still sees the current pointer.
package event

import (
	"fmt"

	"github.com/HunterZ/abuse-wii/internal/keys"
)

// Kind says which part of an Event is meaningful.
type Kind int

const (
	KindSpurious Kind = iota
	KindMouseMove
	KindMouseButton
	KindKeyDown
	KindKeyUp
)

func (k Kind) String() string {
	switch k {
	case KindMouseMove:
		return "mouse-move"
	case KindMouseButton:
		return "mouse-button"
	case KindKeyDown:
		return "key-down"
	case KindKeyUp:
		return "key-up"
	default:
		return "spurious"
	}
}

// Button is a mask of held pointer buttons.
type Button uint8

const (
	ButtonLeft  Button = 1
	ButtonRight Button = 2
)

// Event is a normalized input event.
type Event struct {
	Kind    Kind
	X, Y    int
	Buttons Button
	Key     keys.Code // KindKeyDown and KindKeyUp only
}

func (e Event) String() string {
	switch e.Kind {
	case KindKeyDown, KindKeyUp:
		return fmt.Sprintf("%s %s (%d) at %d,%d", e.Kind, e.Key, int(e.Key), e.X, e.Y)
	default:
		return fmt.Sprintf("%s at %d,%d buttons=%02b", e.Kind, e.X, e.Y, e.Buttons)
	}
}
