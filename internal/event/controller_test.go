package event

import (
	"testing"

	"github.com/HunterZ/abuse-wii/internal/keys"
)

func axis(a uint8, v int16) NativeEvent {
	return NativeEvent{Kind: NativeJoyAxis, Axis: a, Value: v}
}

func hat(v uint8) NativeEvent {
	return NativeEvent{Kind: NativeJoyHat, Hat: v}
}

func joyButton(b uint8, down bool) NativeEvent {
	if down {
		return NativeEvent{Kind: NativeJoyButtonDown, Button: b}
	}
	return NativeEvent{Kind: NativeJoyButtonUp, Button: b}
}

type keyStep struct {
	native NativeEvent
	kind   Kind
	key    keys.Code
}

func runKeySteps(t *testing.T, r *controllerRig, steps []keyStep) {
	t.Helper()
	for i, step := range steps {
		ev := pollOne(r.tr, r.queue, step.native)
		if ev.Kind != step.kind || (isKey(step.kind) && ev.Key != step.key) {
			t.Errorf("step %d: expected %s %d, got %s", i, step.kind, step.key, ev)
		}
	}
}

func isKey(k Kind) bool {
	return k == KindKeyDown || k == KindKeyUp
}

func TestHorizontalAxis(t *testing.T) {
	r := newControllerRig(ControllerConfig{HDeadzone: 5000})
	runKeySteps(t, r, []keyStep{
		{axis(AxisHorizontal, 100), KindMouseMove, 0},
		{axis(AxisHorizontal, -6000), KindKeyDown, keys.Left},
		{axis(AxisHorizontal, -32000), KindMouseMove, 0},
		{axis(AxisHorizontal, -4000), KindKeyUp, keys.Left},
		{axis(AxisHorizontal, 0), KindMouseMove, 0},
		{axis(AxisHorizontal, 5001), KindKeyDown, keys.Right},
		{axis(AxisHorizontal, 5000), KindKeyUp, keys.Right},
	})
}

func TestHorizontalFlick(t *testing.T) {
	r := newControllerRig(ControllerConfig{HDeadzone: 5000})

	pollOne(r.tr, r.queue, axis(AxisHorizontal, -32768))
	release := pollOne(r.tr, r.queue, axis(AxisHorizontal, 32767))

	if release.Kind != KindKeyUp || release.Key != keys.Left {
		t.Fatalf("expected release of left, got %s", release)
	}
	left, right, _, _ := r.tr.State().AxisLatches()
	if left && right {
		t.Fatal("expected at most one active direction")
	}
	if !right {
		t.Error("expected right to be latched")
	}

	var press Event
	if !r.tr.HasPending() {
		t.Fatal("expected the right press to be pending")
	}
	r.tr.Poll(&press)
	if press.Kind != KindKeyDown || press.Key != keys.Right {
		t.Errorf("expected press of right, got %s", press)
	}

	// Further motion in the same zone is not a new press.
	ev := pollOne(r.tr, r.queue, axis(AxisHorizontal, 30000))
	if isKey(ev.Kind) {
		t.Errorf("expected no key event while held, got %s", ev)
	}
	ev = pollOne(r.tr, r.queue, axis(AxisHorizontal, 0))
	if ev.Kind != KindKeyUp || ev.Key != keys.Right {
		t.Errorf("expected release of right, got %s", ev)
	}
}

func TestVerticalAxisDisabled(t *testing.T) {
	r := newControllerRig(ControllerConfig{VDeadzone: 5000})
	ev := pollOne(r.tr, r.queue, axis(AxisVertical, -20000))
	if isKey(ev.Kind) {
		t.Errorf("expected vertical axis to be ignored, got %s", ev)
	}
}

func TestVerticalAxis(t *testing.T) {
	r := newControllerRig(ControllerConfig{VDeadzone: 9000, UseVAxis: true})
	runKeySteps(t, r, []keyStep{
		{axis(AxisVertical, -8000), KindMouseMove, 0},
		{axis(AxisVertical, -10000), KindKeyDown, keys.Up},
		{axis(AxisVertical, -20000), KindMouseMove, 0},
		{axis(AxisVertical, 0), KindKeyUp, keys.Up},
		{axis(AxisVertical, 12000), KindKeyDown, keys.Down},
		{axis(AxisVertical, -12000), KindKeyUp, keys.Down},
	})

	var ev Event
	r.tr.Poll(&ev)
	if ev.Kind != KindKeyDown || ev.Key != keys.Up {
		t.Errorf("expected follow-up press of up, got %s", ev)
	}
}

func TestOtherAxesIgnored(t *testing.T) {
	r := newControllerRig(ControllerConfig{HDeadzone: 10, VDeadzone: 10, UseVAxis: true})
	ev := pollOne(r.tr, r.queue, axis(2, -30000))
	if isKey(ev.Kind) {
		t.Errorf("expected axis 2 to be ignored, got %s", ev)
	}
}

func TestHatMergesDirections(t *testing.T) {
	r := newControllerRig(ControllerConfig{})
	runKeySteps(t, r, []keyStep{
		{hat(HatUp | HatLeft), KindKeyDown, keys.Insert},
		{hat(HatUp), KindMouseMove, 0},
		{hat(HatCentered), KindKeyUp, keys.Insert},
		{hat(HatCentered), KindMouseMove, 0},
	})
}

func TestHatDownRight(t *testing.T) {
	r := newControllerRig(ControllerConfig{})
	runKeySteps(t, r, []keyStep{
		{hat(HatRight), KindKeyDown, keys.CtrlR},
		{hat(HatRight | HatDown), KindMouseMove, 0},
		{hat(HatCentered), KindKeyUp, keys.CtrlR},
	})

	upLeft, downRight := r.tr.State().HatActive()
	if upLeft || downRight {
		t.Errorf("expected both hat zones released, got %v %v", upLeft, downRight)
	}
}

func TestHatJumpToOppositeZone(t *testing.T) {
	r := newControllerRig(ControllerConfig{})

	pressNext := func(want keys.Code) {
		t.Helper()
		if !r.tr.HasPending() {
			t.Fatalf("expected press of %s to be pending", want)
		}
		var ev Event
		r.tr.Poll(&ev)
		if ev.Kind != KindKeyDown || ev.Key != want {
			t.Errorf("expected press of %s, got %s", want, ev)
		}
	}

	runKeySteps(t, r, []keyStep{
		{hat(HatRight), KindKeyDown, keys.CtrlR},
		{hat(HatLeft), KindKeyUp, keys.CtrlR},
	})
	pressNext(keys.Insert)

	runKeySteps(t, r, []keyStep{{hat(HatDown), KindKeyUp, keys.Insert}})
	pressNext(keys.CtrlR)

	upLeft, downRight := r.tr.State().HatActive()
	if upLeft || !downRight {
		t.Errorf("expected only down-or-right latched, got %v %v", upLeft, downRight)
	}

	runKeySteps(t, r, []keyStep{{hat(HatCentered), KindKeyUp, keys.CtrlR}})
	if r.tr.HasPending() {
		t.Error("expected nothing pending after centring")
	}
}

func TestHatDiagonalOnlyReleases(t *testing.T) {
	r := newControllerRig(ControllerConfig{})
	runKeySteps(t, r, []keyStep{
		{hat(HatUp), KindKeyDown, keys.Insert},
		{hat(HatUp | HatRight), KindKeyUp, keys.Insert},
	})
	if r.tr.HasPending() {
		t.Error("expected no follow-up press for a diagonal")
	}
}

func TestJoystickButtonsCarryPointer(t *testing.T) {
	r := newControllerRig(ControllerConfig{})

	r.pointer.x, r.pointer.y = 120, 80
	ev := pollOne(r.tr, r.queue, joyButton(0, true))
	if ev.Kind != KindMouseButton || ev.X != 120 || ev.Y != 80 {
		t.Errorf("expected A press at (120,80), got %s", ev)
	}

	r.pointer.x, r.pointer.y = 33, 44
	ev = pollOne(r.tr, r.queue, axis(AxisHorizontal, 0))
	if ev.Kind != KindMouseMove || ev.X != 33 || ev.Y != 44 {
		t.Errorf("expected pointer move to (33,44), got %s", ev)
	}

	ev = pollOne(r.tr, r.queue, joyButton(0, false))
	if ev.Kind != KindMouseButton || ev.X != 33 || ev.Y != 44 || ev.Buttons != 0 {
		t.Errorf("expected A release at (33,44), got %s", ev)
	}
}

func TestControllerIgnoresPointerButtons(t *testing.T) {
	r := newControllerRig(ControllerConfig{})
	r.pointer.held = held(MouseLeft)
	ev := pollOne(r.tr, r.queue, NativeEvent{})
	if ev.Kind != KindMouseMove || ev.Buttons != 0 {
		t.Errorf("expected pointer buttons to be ignored, got %s", ev)
	}
}

func TestJoystickButtonKeys(t *testing.T) {
	tests := []struct {
		button uint8
		swap   bool
		want   keys.Code
	}{
		{2, false, keys.Space},
		{3, false, 'p'},
		{4, false, ','},
		{17, false, ','},
		{5, false, '.'},
		{18, false, '.'},
		{6, false, keys.Esc},
		{19, false, keys.Esc},
		{7, false, keys.Up},
		{15, false, keys.Up},
		{8, false, keys.Down},
		{13, false, keys.Down},
		{7, true, keys.Down},
		{15, true, keys.Down},
		{8, true, keys.Up},
		{13, true, keys.Up},
	}

	for _, tt := range tests {
		r := newControllerRig(ControllerConfig{SwapButtons: tt.swap})

		down := pollOne(r.tr, r.queue, joyButton(tt.button, true))
		up := pollOne(r.tr, r.queue, joyButton(tt.button, false))

		if down.Kind != KindKeyDown || down.Key != tt.want {
			t.Errorf("button %d swap=%v: expected key-down %d, got %s", tt.button, tt.swap, tt.want, down)
		}
		if up.Kind != KindKeyUp || up.Key != tt.want {
			t.Errorf("button %d swap=%v: expected key-up %d, got %s", tt.button, tt.swap, tt.want, up)
		}
	}
}

func TestUnknownJoystickButton(t *testing.T) {
	r := newControllerRig(ControllerConfig{})
	ev := pollOne(r.tr, r.queue, joyButton(11, true))
	if ev.Kind != KindMouseMove {
		t.Errorf("expected no key for unmapped button, got %s", ev)
	}
}

func TestControllerIgnoresKeyboard(t *testing.T) {
	r := newControllerRig(ControllerConfig{})
	ev := pollOne(r.tr, r.queue, NativeEvent{Kind: NativeKeyDown, Sym: 'a'})
	if isKey(ev.Kind) {
		t.Errorf("expected keyboard to be ignored, got %s", ev)
	}
}
