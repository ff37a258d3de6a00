package event

import "github.com/HunterZ/abuse-wii/internal/keys"

// NativeKind enumerates the native events the translator understands.
// Everything else arrives as NativeOther and only refreshes the pointer.
type NativeKind int

const (
	NativeOther NativeKind = iota
	NativeQuit
	NativeKeyDown
	NativeKeyUp
	NativeMouseButtonDown
	NativeMouseButtonUp
	NativeJoyAxis
	NativeJoyButtonDown
	NativeJoyButtonUp
	NativeJoyHat
)

// Mouse buttons as numbered by the native layer. Wheel motion is
// reported as presses of buttons 4 and 5.
const (
	MouseLeft      = 1
	MouseMiddle    = 2
	MouseRight     = 3
	MouseWheelUp   = 4
	MouseWheelDown = 5
)

// Hat direction bits.
const (
	HatCentered uint8 = 0x00
	HatUp       uint8 = 0x01
	HatRight    uint8 = 0x02
	HatDown     uint8 = 0x04
	HatLeft     uint8 = 0x08
)

// NativeEvent is one event taken from the native queue.
type NativeEvent struct {
	Kind NativeKind

	Sym keys.Sym // key events
	Mod keys.Mod

	Button uint8 // mouse and joystick button events

	Axis  uint8 // joystick axis motion
	Value int16

	Hat uint8 // joystick hat position bits
}

// MouseButtons is the hardware button bitmask: bit n-1 is set while
// button n is held.
type MouseButtons uint32

// Held reports whether button n is down.
func (m MouseButtons) Held(n int) bool {
	return m&(1<<(n-1)) != 0
}

// Queue is the native event queue. Both methods must not block.
type Queue interface {
	// Peek reports whether an event is waiting without removing it.
	Peek() bool
	// Next removes and returns the next event.
	Next() (NativeEvent, bool)
}

// Pointer reads the absolute pointer state in device coordinates.
type Pointer interface {
	State() (x, y int, buttons MouseButtons)
}

// Screen describes the render target the pointer is mapped onto.
type Screen interface {
	Size() (w, h int)
	// MouseScale returns the 16.16 fixed-point device-to-screen factors.
	MouseScale() (xs, ys int)
}

// WindowControl groups the window actions bound to function keys.
type WindowControl interface {
	ToggleFullscreen() error
	// ToggleGrab flips input capture and returns the new state.
	ToggleGrab() (bool, error)
	SaveScreenshot(path string) error
	ShowMessage(msg string)
}

// Resolver maps a logical action name to its bound key.
type Resolver interface {
	Resolve(action string) keys.Code
}
