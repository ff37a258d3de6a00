package event

import (
	"testing"

	"github.com/HunterZ/abuse-wii/internal/keys"
)

func held(buttons ...int) MouseButtons {
	var m MouseButtons
	for _, b := range buttons {
		m |= 1 << (b - 1)
	}
	return m
}

func TestMouseButtonEdges(t *testing.T) {
	steps := []struct {
		held     MouseButtons
		wantKind Kind
		wantMask Button
	}{
		{held(), KindMouseMove, 0},
		{held(MouseLeft), KindMouseButton, ButtonLeft},
		{held(MouseLeft), KindMouseMove, ButtonLeft},
		{held(MouseLeft, MouseRight), KindMouseButton, ButtonLeft | ButtonRight},
		{held(MouseRight), KindMouseButton, ButtonRight},
		{held(MouseRight), KindMouseMove, ButtonRight},
		{held(), KindMouseButton, 0},
		{held(), KindMouseMove, 0},
		{held(MouseRight, MouseLeft), KindMouseButton, ButtonLeft | ButtonRight},
		{held(), KindMouseButton, 0},
	}

	r := newDesktopRig()
	for i, step := range steps {
		r.pointer.held = step.held
		ev := pollOne(r.tr, r.queue, NativeEvent{})

		if ev.Kind != step.wantKind {
			t.Errorf("step %d: expected %s, got %s", i, step.wantKind, ev.Kind)
		}
		if ev.Buttons != step.wantMask {
			t.Errorf("step %d: expected mask %02b, got %02b", i, step.wantMask, ev.Buttons)
		}
		if s := r.tr.State(); s.Buttons != step.wantMask {
			t.Errorf("step %d: expected committed mask %02b, got %02b", i, step.wantMask, s.Buttons)
		}
	}
}

func TestMiddleButtonSetsBothBits(t *testing.T) {
	r := newDesktopRig()

	r.pointer.held = held(MouseMiddle)
	ev := pollOne(r.tr, r.queue, NativeEvent{})
	if ev.Kind != KindMouseButton || ev.Buttons != ButtonLeft|ButtonRight {
		t.Errorf("expected left|right on middle press, got %s", ev)
	}

	r.pointer.held = held()
	ev = pollOne(r.tr, r.queue, NativeEvent{})
	if ev.Kind != KindMouseButton || ev.Buttons != 0 {
		t.Errorf("expected empty mask on middle release, got %s", ev)
	}
}

func TestMaskCarriedOnKeyEvents(t *testing.T) {
	r := newDesktopRig()
	r.pointer.held = held(MouseLeft)
	pollOne(r.tr, r.queue, NativeEvent{})

	ev := pollOne(r.tr, r.queue, NativeEvent{Kind: NativeKeyDown, Sym: 'k'})
	if ev.Kind != KindKeyDown || ev.Key != 'k' {
		t.Fatalf("expected key-down k, got %s", ev)
	}
	if ev.Buttons != ButtonLeft {
		t.Errorf("expected held left button on key event, got %02b", ev.Buttons)
	}
}

func TestKeyPressRelease(t *testing.T) {
	r := newDesktopRig()

	down := pollOne(r.tr, r.queue, NativeEvent{Kind: NativeKeyDown, Sym: keys.SymLeft})
	up := pollOne(r.tr, r.queue, NativeEvent{Kind: NativeKeyUp, Sym: keys.SymLeft})
	none := pollOne(r.tr, r.queue, NativeEvent{})

	if down.Kind != KindKeyDown || down.Key != keys.Left {
		t.Errorf("expected key-down LEFT, got %s", down)
	}
	if up.Kind != KindKeyUp || up.Key != keys.Left {
		t.Errorf("expected key-up LEFT, got %s", up)
	}
	if none.Kind == KindKeyUp {
		t.Error("expected exactly one release")
	}
}

func TestWheelUsesBindings(t *testing.T) {
	tests := []struct {
		name   string
		native NativeEvent
		kind   Kind
		key    keys.Code
	}{
		{"wheel up press", NativeEvent{Kind: NativeMouseButtonDown, Button: MouseWheelUp}, KindKeyDown, keys.Insert},
		{"wheel up release", NativeEvent{Kind: NativeMouseButtonUp, Button: MouseWheelUp}, KindKeyUp, keys.Insert},
		{"wheel down press", NativeEvent{Kind: NativeMouseButtonDown, Button: MouseWheelDown}, KindKeyDown, keys.CtrlR},
		{"wheel down release", NativeEvent{Kind: NativeMouseButtonUp, Button: MouseWheelDown}, KindKeyUp, keys.CtrlR},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newDesktopRig()
			ev := pollOne(r.tr, r.queue, tt.native)
			if ev.Kind != tt.kind || ev.Key != tt.key {
				t.Errorf("expected %s %d, got %s", tt.kind, tt.key, ev)
			}
		})
	}
}

func TestPlainButtonEventIsPointerOnly(t *testing.T) {
	r := newDesktopRig()
	ev := pollOne(r.tr, r.queue, NativeEvent{Kind: NativeMouseButtonDown, Button: MouseLeft})

	// The press itself is picked up from the pointer state, not the event.
	if ev.Kind != KindMouseMove {
		t.Errorf("expected mouse-move, got %s", ev.Kind)
	}
}

func TestWindowKeys(t *testing.T) {
	r := newDesktopRig()

	for _, sym := range []keys.Sym{keys.SymF11, keys.SymF12, keys.SymPrintScreen} {
		down := pollOne(r.tr, r.queue, NativeEvent{Kind: NativeKeyDown, Sym: sym})
		up := pollOne(r.tr, r.queue, NativeEvent{Kind: NativeKeyUp, Sym: sym})
		if down.Kind != KindSpurious || up.Kind != KindSpurious {
			t.Errorf("sym %#x: expected spurious events, got %s and %s", sym, down.Kind, up.Kind)
		}
	}

	if r.window.fullscreen != 1 {
		t.Errorf("expected one fullscreen toggle, got %d", r.window.fullscreen)
	}
	if !r.window.grabbed {
		t.Error("expected input to be grabbed")
	}
	if len(r.window.screenshots) != 1 || r.window.screenshots[0] != "screenshot.bmp" {
		t.Errorf("expected one screenshot.bmp, got %v", r.window.screenshots)
	}
	want := []string{"Grab Mouse: ON\n", "Screenshot saved to: screenshot.bmp.\n"}
	if len(r.window.messages) != len(want) {
		t.Fatalf("expected messages %q, got %q", want, r.window.messages)
	}
	for i := range want {
		if r.window.messages[i] != want[i] {
			t.Errorf("message %d: expected %q, got %q", i, want[i], r.window.messages[i])
		}
	}

	pollOne(r.tr, r.queue, NativeEvent{Kind: NativeKeyDown, Sym: keys.SymF12})
	if r.window.grabbed {
		t.Error("expected second F12 to release the grab")
	}
}

func TestWindowKeyFailureIsSwallowed(t *testing.T) {
	r := newDesktopRig()
	r.window.fail = true

	ev := pollOne(r.tr, r.queue, NativeEvent{Kind: NativeKeyDown, Sym: keys.SymPrintScreen})
	if ev.Kind != KindSpurious {
		t.Errorf("expected spurious event, got %s", ev.Kind)
	}
	if len(r.window.messages) != 0 {
		t.Errorf("expected no message after failure, got %q", r.window.messages)
	}
}

func TestDesktopIgnoresJoystick(t *testing.T) {
	r := newDesktopRig()
	ev := pollOne(r.tr, r.queue, NativeEvent{Kind: NativeJoyButtonDown, Button: 2})
	if ev.Kind != KindMouseMove {
		t.Errorf("expected mouse-move, got %s", ev.Kind)
	}
}

func TestWindowKeysWithoutWindow(t *testing.T) {
	queue := &fakeQueue{}
	tr := New(Config{
		Queue:   queue,
		Pointer: &fakePointer{},
		Screen:  identity,
		Source:  NewDesktop(testBindings(), nil, nil),
		OnQuit:  func() {},
	})

	ev := pollOne(tr, queue, NativeEvent{Kind: NativeKeyDown, Sym: keys.SymF11})
	if ev.Kind != KindSpurious || ev.Key != keys.None {
		t.Errorf("expected swallowed F11, got %s", ev)
	}
}
