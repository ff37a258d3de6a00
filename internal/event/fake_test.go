package event

import (
	"errors"

	"github.com/HunterZ/abuse-wii/internal/keys"
)

type fakeQueue struct {
	events []NativeEvent
	peeks  int
}

func (q *fakeQueue) push(evs ...NativeEvent) {
	q.events = append(q.events, evs...)
}

func (q *fakeQueue) Peek() bool {
	q.peeks++
	return len(q.events) > 0
}

func (q *fakeQueue) Next() (NativeEvent, bool) {
	if len(q.events) == 0 {
		return NativeEvent{}, false
	}
	ev := q.events[0]
	q.events = q.events[1:]
	return ev, true
}

type fakePointer struct {
	x, y int
	held MouseButtons
}

func (p *fakePointer) State() (int, int, MouseButtons) {
	return p.x, p.y, p.held
}

type fakeScreen struct {
	w, h   int
	xs, ys int
}

func (s fakeScreen) Size() (int, int)       { return s.w, s.h }
func (s fakeScreen) MouseScale() (int, int) { return s.xs, s.ys }

type fakeWindow struct {
	fullscreen  int
	grabbed     bool
	screenshots []string
	messages    []string
	fail        bool
}

var errFake = errors.New("fake window failure")

func (w *fakeWindow) ToggleFullscreen() error {
	if w.fail {
		return errFake
	}
	w.fullscreen++
	return nil
}

func (w *fakeWindow) ToggleGrab() (bool, error) {
	if w.fail {
		return w.grabbed, errFake
	}
	w.grabbed = !w.grabbed
	return w.grabbed, nil
}

func (w *fakeWindow) SaveScreenshot(path string) error {
	if w.fail {
		return errFake
	}
	w.screenshots = append(w.screenshots, path)
	return nil
}

func (w *fakeWindow) ShowMessage(msg string) {
	w.messages = append(w.messages, msg)
}

// identity maps device coordinates 1:1 onto a 320x200 screen.
var identity = fakeScreen{w: 320, h: 200, xs: 1 << 16, ys: 1 << 16}

func testBindings() keys.Bindings {
	b := keys.DefaultBindings()
	b.B2 = keys.Space
	return b
}

type desktopRig struct {
	queue   *fakeQueue
	pointer *fakePointer
	window  *fakeWindow
	tr      *Translator
	quits   int
}

func newDesktopRig() *desktopRig {
	r := &desktopRig{
		queue:   &fakeQueue{},
		pointer: &fakePointer{},
		window:  &fakeWindow{},
	}
	r.tr = New(Config{
		Queue:   r.queue,
		Pointer: r.pointer,
		Screen:  identity,
		Source:  NewDesktop(testBindings(), r.window, nil),
		OnQuit:  func() { r.quits++ },
	})
	return r
}

type controllerRig struct {
	queue   *fakeQueue
	pointer *fakePointer
	tr      *Translator
}

func newControllerRig(cfg ControllerConfig) *controllerRig {
	r := &controllerRig{
		queue:   &fakeQueue{},
		pointer: &fakePointer{},
	}
	r.tr = New(Config{
		Queue:   r.queue,
		Pointer: r.pointer,
		Screen:  identity,
		Source:  NewController(cfg, testBindings()),
		OnQuit:  func() {},
	})
	return r
}

// pollOne queues nat and polls it.
func pollOne(tr *Translator, q *fakeQueue, nat NativeEvent) Event {
	q.push(nat)
	var ev Event
	tr.Poll(&ev)
	return ev
}
