package event

// Axis latch indices.
const (
	axisLeft = iota
	axisRight
	axisUp
	axisDown
)

// Hat latch indices.
const (
	hatUpLeft = iota
	hatDownRight
)

// DeviceState is the input state remembered between polls. The zero
// value has everything released and the pointer at the origin.
type DeviceState struct {
	mouse [5]bool // indexed by native button number, 1..3 used

	X, Y    int
	Buttons Button

	axis [4]bool
	hat  [2]bool
}

// MouseHeld reports the last seen state of native button n.
func (s DeviceState) MouseHeld(n int) bool {
	if n < 0 || n >= len(s.mouse) {
		return false
	}
	return s.mouse[n]
}

// setMouse records native button n as down or up. On an edge it marks ev
// as a button event and updates its mask; it reports whether an edge was
// seen.
func (s *DeviceState) setMouse(n int, down bool, mask Button, ev *Event) bool {
	if s.mouse[n] == down {
		return false
	}
	s.mouse[n] = down
	ev.Kind = KindMouseButton
	if down {
		ev.Buttons |= mask
	} else {
		ev.Buttons &^= mask
	}
	return true
}

// AxisLatches reports which stick directions are currently pressed.
func (s DeviceState) AxisLatches() (left, right, up, down bool) {
	return s.axis[axisLeft], s.axis[axisRight], s.axis[axisUp], s.axis[axisDown]
}

// HatActive reports the up-or-left and down-or-right hat latches.
func (s DeviceState) HatActive() (upLeft, downRight bool) {
	return s.hat[hatUpLeft], s.hat[hatDownRight]
}
