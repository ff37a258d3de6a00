package keys

import "strings"

// Bindings holds the key bound to each logical action.
//
// B1 is "special", B2 "fire", B3 "previous weapon" and B4 "next weapon".
type Bindings struct {
	Left  Code
	Right Code
	Up    Code
	Down  Code
	B1    Code
	B2    Code
	B3    Code
	B4    Code
}

// DefaultBindings returns the bindings used when no rc file overrides them.
func DefaultBindings() Bindings {
	return Bindings{
		Left:  Left,
		Right: Right,
		Up:    Up,
		Down:  Down,
		B3:    CtrlR,
		B4:    Insert,
	}
}

// Resolve returns the key bound to action. Action names are matched
// case-insensitively; unknown actions resolve to None.
func (b Bindings) Resolve(action string) Code {
	switch strings.ToLower(action) {
	case "left":
		return b.Left
	case "right":
		return b.Right
	case "up":
		return b.Up
	case "down":
		return b.Down
	case "b1":
		return b.B1
	case "b2":
		return b.B2
	case "b3":
		return b.B3
	case "b4":
		return b.B4
	}
	return None
}
