package event

import (
	"go.uber.org/zap"

	"github.com/HunterZ/abuse-wii/internal/keys"
)

// ScreenshotFile is written to the working directory by the print-screen key.
const ScreenshotFile = "screenshot.bmp"

// Desktop reads a mouse and keyboard. The wheel is folded into the key
// stream as the weapon-cycle bindings, and F11, F12 and print-screen
// drive the window instead of reaching the game.
type Desktop struct {
	bindings Resolver
	window   WindowControl
	log      *zap.Logger
}

// NewDesktop creates the mouse and keyboard source. window may be nil.
func NewDesktop(bindings Resolver, window WindowControl, log *zap.Logger) *Desktop {
	if log == nil {
		log = zap.NewNop()
	}
	return &Desktop{
		bindings: bindings,
		window:   window,
		log:      log,
	}
}

// Buttons checks left, middle and right in that order. The middle button
// is reported as left and right together.
func (d *Desktop) Buttons(s *DeviceState, held MouseButtons, ev *Event) {
	s.setMouse(MouseLeft, held.Held(MouseLeft), ButtonLeft, ev)
	s.setMouse(MouseMiddle, held.Held(MouseMiddle), ButtonLeft|ButtonRight, ev)
	s.setMouse(MouseRight, held.Held(MouseRight), ButtonRight, ev)
	s.Buttons = ev.Buttons
}

// Dispatch handles key and wheel events; joystick events are ignored.
func (d *Desktop) Dispatch(_ *DeviceState, nat NativeEvent, ev *Event) []Event {
	switch nat.Kind {
	case NativeMouseButtonDown, NativeMouseButtonUp:
		d.wheel(nat, ev)
	case NativeKeyDown, NativeKeyUp:
		d.key(nat, ev)
	}
	return nil
}

func (d *Desktop) wheel(nat NativeEvent, ev *Event) {
	var action string
	switch nat.Button {
	case MouseWheelUp:
		action = "b4"
	case MouseWheelDown:
		action = "b3"
	default:
		return
	}

	ev.Key = d.bindings.Resolve(action)
	if nat.Kind == NativeMouseButtonDown {
		ev.Kind = KindKeyDown
	} else {
		ev.Kind = KindKeyUp
	}
}

func (d *Desktop) key(nat NativeEvent, ev *Event) {
	down := nat.Kind == NativeKeyDown
	if down {
		ev.Kind = KindKeyDown
	} else {
		ev.Kind = KindKeyUp
	}

	switch nat.Sym {
	case keys.SymF11, keys.SymF12, keys.SymPrintScreen:
		if down && d.window != nil {
			d.windowKey(nat.Sym)
		}
		ev.Kind = KindSpurious
		ev.Key = keys.None
		return
	}

	ev.Key = TranslateKey(nat.Sym, nat.Mod)
}

func (d *Desktop) windowKey(sym keys.Sym) {
	switch sym {
	case keys.SymF11:
		if err := d.window.ToggleFullscreen(); err != nil {
			d.log.Warn("toggle fullscreen failed", zap.Error(err))
		}

	case keys.SymF12:
		grabbed, err := d.window.ToggleGrab()
		if err != nil {
			d.log.Warn("toggle input grab failed", zap.Error(err))
			return
		}
		if grabbed {
			d.window.ShowMessage("Grab Mouse: ON\n")
		} else {
			d.window.ShowMessage("Grab Mouse: OFF\n")
		}

	case keys.SymPrintScreen:
		if err := d.window.SaveScreenshot(ScreenshotFile); err != nil {
			d.log.Warn("screenshot failed", zap.String("path", ScreenshotFile), zap.Error(err))
			return
		}
		d.window.ShowMessage("Screenshot saved to: " + ScreenshotFile + ".\n")
	}
}
