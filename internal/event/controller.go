package event

import "github.com/HunterZ/abuse-wii/internal/keys"

// ControllerConfig holds the resolved joystick settings. Deadzones are in
// raw axis units (0..32767).
type ControllerConfig struct {
	HDeadzone   int
	VDeadzone   int
	UseVAxis    bool
	SwapButtons bool
}

// Joystick axes.
const (
	AxisHorizontal = 0
	AxisVertical   = 1
)

// Controller reads a motion controller: stick axes become the arrow keys,
// the hat becomes the weapon-cycle bindings and buttons stand in for the
// mouse buttons and a handful of keys. Pointer buttons are not read.
type Controller struct {
	cfg      ControllerConfig
	bindings Resolver
}

// NewController creates the motion-controller source.
func NewController(cfg ControllerConfig, bindings Resolver) *Controller {
	return &Controller{
		cfg:      cfg,
		bindings: bindings,
	}
}

// Buttons does nothing; the controller buttons arrive as joystick events.
func (c *Controller) Buttons(*DeviceState, MouseButtons, *Event) {}

// Dispatch handles joystick axis, button and hat events.
func (c *Controller) Dispatch(s *DeviceState, nat NativeEvent, ev *Event) []Event {
	switch nat.Kind {
	case NativeJoyAxis:
		return c.axisMotion(s, nat, ev)
	case NativeJoyButtonDown, NativeJoyButtonUp:
		c.button(s, nat, ev)
	case NativeJoyHat:
		return c.hatMotion(s, nat.Hat, ev)
	}
	return nil
}

func (c *Controller) axisMotion(s *DeviceState, nat NativeEvent, ev *Event) []Event {
	switch {
	case nat.Axis == AxisHorizontal:
		return stick(s, int(nat.Value), c.cfg.HDeadzone, axisLeft, axisRight, keys.Left, keys.Right, ev)
	case nat.Axis == AxisVertical && c.cfg.UseVAxis:
		return stick(s, int(nat.Value), c.cfg.VDeadzone, axisUp, axisDown, keys.Up, keys.Down, ev)
	}
	return nil
}

// stick runs the debounce machine of one axis. neg and pos index the
// latches for the two directions.
func stick(s *DeviceState, value, deadzone, neg, pos int, negKey, posKey keys.Code, ev *Event) []Event {
	switch {
	case value < -deadzone:
		return latch(s, neg, pos, negKey, posKey, ev)
	case value > deadzone:
		return latch(s, pos, neg, posKey, negKey, ev)
	case s.axis[neg]:
		s.axis[neg] = false
		ev.Kind, ev.Key = KindKeyUp, negKey
	case s.axis[pos]:
		s.axis[pos] = false
		ev.Kind, ev.Key = KindKeyUp, posKey
	}
	return nil
}

// latch presses direction on. If the stick crossed the dead zone between
// two samples the opposite direction is still latched: it is released
// now and the press follows on the next poll.
func latch(s *DeviceState, on, off int, onKey, offKey keys.Code, ev *Event) []Event {
	if s.axis[on] {
		return nil
	}
	s.axis[on] = true

	if s.axis[off] {
		s.axis[off] = false
		ev.Kind, ev.Key = KindKeyUp, offKey
		return []Event{{Kind: KindKeyDown, Key: onKey}}
	}

	ev.Kind, ev.Key = KindKeyDown, onKey
	return nil
}

// hatMotion merges the four hat directions into up-or-left (next weapon,
// like the wheel going up) and down-or-right (previous weapon). Bits of
// the opposite zone release the active one; a clean jump to the opposite
// zone also presses it on the next poll.
func (c *Controller) hatMotion(s *DeviceState, v uint8, ev *Event) []Event {
	const (
		upLeft    = HatUp | HatLeft
		downRight = HatDown | HatRight
	)

	switch {
	case s.hat[hatUpLeft] && (v == HatCentered || v&downRight != 0):
		return c.hatRelease(s, hatUpLeft, hatDownRight, v&upLeft == 0 && v&downRight != 0, ev)
	case s.hat[hatDownRight] && (v == HatCentered || v&upLeft != 0):
		return c.hatRelease(s, hatDownRight, hatUpLeft, v&downRight == 0 && v&upLeft != 0, ev)
	case !s.hat[hatUpLeft] && v&upLeft != 0:
		s.hat[hatUpLeft] = true
		ev.Kind, ev.Key = KindKeyDown, c.hatKey(hatUpLeft)
	case !s.hat[hatDownRight] && v&downRight != 0:
		s.hat[hatDownRight] = true
		ev.Kind, ev.Key = KindKeyDown, c.hatKey(hatDownRight)
	}
	return nil
}

func (c *Controller) hatRelease(s *DeviceState, off, on int, pressOn bool, ev *Event) []Event {
	s.hat[off] = false
	ev.Kind, ev.Key = KindKeyUp, c.hatKey(off)
	if !pressOn {
		return nil
	}
	s.hat[on] = true
	return []Event{{Kind: KindKeyDown, Key: c.hatKey(on)}}
}

// hatKey resolves the binding of a hat zone.
func (c *Controller) hatKey(zone int) keys.Code {
	if zone == hatUpLeft {
		return c.bindings.Resolve("b4")
	}
	return c.bindings.Resolve("b3")
}

func (c *Controller) button(s *DeviceState, nat NativeEvent, ev *Event) {
	down := nat.Kind == NativeJoyButtonDown

	switch nat.Button {
	case 0: // A
		if s.setMouse(MouseRight, down, ButtonRight, ev) {
			s.Buttons = ev.Buttons
		}
		return
	case 1: // B
		if s.setMouse(MouseLeft, down, ButtonLeft, ev) {
			s.Buttons = ev.Buttons
		}
		return
	}

	key, ok := c.buttonKey(nat.Button)
	if !ok {
		return
	}
	ev.Key = key
	if down {
		ev.Kind = KindKeyDown
	} else {
		ev.Kind = KindKeyUp
	}
}

// buttonKey returns the key simulated by a controller button. Numbers
// cover the remote (2-8) and the classic pad (13-19).
func (c *Controller) buttonKey(b uint8) (keys.Code, bool) {
	switch b {
	case 2:
		return keys.Space, true
	case 3:
		return 'p', true
	case 4, 17:
		return ',', true
	case 5, 18:
		return '.', true
	case 6, 19:
		return keys.Esc, true
	case 7, 15:
		if c.cfg.SwapButtons {
			return keys.Down, true
		}
		return keys.Up, true
	case 8, 13:
		if c.cfg.SwapButtons {
			return keys.Up, true
		}
		return keys.Down, true
	}
	return keys.None, false
}
