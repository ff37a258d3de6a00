package event

import (
	"os"

	"go.uber.org/zap"
)

// InputSource is the device-specific half of the translator.
type InputSource interface {
	// Buttons reconciles the held pointer buttons with s, marking any
	// edge on ev.
	Buttons(s *DeviceState, held MouseButtons, ev *Event)
	// Dispatch translates one native event into ev. Events it returns are
	// handed out by the following polls, in order, before the native
	// queue is read again.
	Dispatch(s *DeviceState, nat NativeEvent, ev *Event) []Event
}

// Config wires a Translator to its collaborators. Pointer may be nil on
// devices without one.
type Config struct {
	Queue   Queue
	Pointer Pointer
	Screen  Screen
	Source  InputSource

	// OnQuit runs when the native layer asks the program to exit.
	// Defaults to os.Exit(0).
	OnQuit func()
	Logger *zap.Logger
}

// Translator turns native events into Events. It is not safe for
// concurrent use and must be driven from the thread owning the native
// queue.
type Translator struct {
	queue   Queue
	pointer Pointer
	screen  Screen
	source  InputSource
	onQuit  func()
	log     *zap.Logger

	state     DeviceState
	pending   bool
	followUps []Event
}

// New creates a translator with all buttons released.
func New(cfg Config) *Translator {
	t := &Translator{
		queue:   cfg.Queue,
		pointer: cfg.Pointer,
		screen:  cfg.Screen,
		source:  cfg.Source,
		onQuit:  cfg.OnQuit,
		log:     cfg.Logger,
	}
	if t.onQuit == nil {
		t.onQuit = func() { os.Exit(0) }
	}
	if t.log == nil {
		t.log = zap.NewNop()
	}
	return t
}

// HasPending reports whether Poll has something to deliver. A positive
// answer is remembered until the next Poll.
func (t *Translator) HasPending() bool {
	if !t.pending && (len(t.followUps) > 0 || t.queue.Peek()) {
		t.pending = true
	}
	return t.pending
}

// Poll fills ev with the next event. The pointer fields are always
// valid. With nothing queued ev is left as KindSpurious carrying the
// last known pointer state.
func (t *Translator) Poll(ev *Event) {
	t.pending = false

	*ev = Event{
		Kind:    KindSpurious,
		X:       t.state.X,
		Y:       t.state.Y,
		Buttons: t.state.Buttons,
	}

	if len(t.followUps) > 0 {
		next := t.followUps[0]
		t.followUps = t.followUps[1:]
		ev.Kind, ev.Key = next.Kind, next.Key
		return
	}

	nat, ok := t.queue.Next()
	if !ok {
		return
	}

	// The pointer is sampled on every event so motion is not lost when
	// the queued event is of another type.
	if t.pointer != nil {
		x, y, held := t.pointer.State()
		ev.X, ev.Y = t.toScreen(x, y)
		ev.Kind = KindMouseMove
		t.source.Buttons(&t.state, held, ev)
	}
	t.state.X, t.state.Y = ev.X, ev.Y

	if nat.Kind == NativeQuit {
		t.log.Info("quit requested")
		t.onQuit()
		return
	}

	t.followUps = append(t.followUps, t.source.Dispatch(&t.state, nat, ev)...)
}

// State returns a copy of the device state.
func (t *Translator) State() DeviceState {
	return t.state
}

// toScreen maps device coordinates onto the screen and clamps them to it.
func (t *Translator) toScreen(x, y int) (int, int) {
	w, h := t.screen.Size()
	xs, ys := t.screen.MouseScale()
	if xs > 0 {
		x = (x << 16) / xs
	}
	if ys > 0 {
		y = (y << 16) / ys
	}
	return max(0, min(x, w-1)), max(0, min(y, h-1))
}
