// Package game implements the main loop that drains translated input
// once per frame.
package game

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/HunterZ/abuse-wii/internal/event"
	"github.com/HunterZ/abuse-wii/internal/keys"
)

// FrameTime is the target frame duration when frame pacing is enabled.
const FrameTime = time.Second / 15

// Input is the polling side of event.Translator.
type Input interface {
	HasPending() bool
	Poll(ev *event.Event)
}

// Display shows one frame.
type Display interface {
	Present() error
}

// Config holds game loop settings.
type Config struct {
	// NoDelay disables frame pacing.
	NoDelay bool
}

// Game is the main loop.
type Game struct {
	config  Config
	input   Input
	display Display
	log     *zap.Logger

	held    map[keys.Code]bool
	pointer event.Event
	frames  int
}

// New creates a game loop reading from in and drawing to display.
func New(cfg Config, in Input, display Display, log *zap.Logger) *Game {
	if log == nil {
		log = zap.NewNop()
	}
	return &Game{
		config:  cfg,
		input:   in,
		display: display,
		log:     log,
		held:    make(map[keys.Code]bool),
	}
}

// Run drives frames until ctx is cancelled or a frame fails. A quit
// request from the window is handled inside the translator and does not
// return here.
func (g *Game) Run(ctx context.Context) error {
	g.log.Info("starting game loop", zap.Bool("nodelay", g.config.NoDelay))

	fpsTimer := time.Now()
	fpsCount := 0

	for {
		start := time.Now()

		select {
		case <-ctx.Done():
			g.log.Info("game loop stopped", zap.Int("frames", g.frames))
			return nil
		default:
		}

		if err := g.Frame(); err != nil {
			return err
		}

		fpsCount++
		if time.Since(fpsTimer) >= time.Second {
			g.log.Debug("fps", zap.Int("count", fpsCount))
			fpsCount = 0
			fpsTimer = time.Now()
		}

		if !g.config.NoDelay {
			if wait := FrameTime - time.Since(start); wait > 0 {
				select {
				case <-ctx.Done():
				case <-time.After(wait):
				}
			}
		}
	}
}

// Frame drains every pending event and presents one frame.
func (g *Game) Frame() error {
	for g.input.HasPending() {
		var ev event.Event
		g.input.Poll(&ev)
		g.handle(ev)
	}

	if err := g.display.Present(); err != nil {
		return fmt.Errorf("present error: %w", err)
	}
	g.frames++
	return nil
}

func (g *Game) handle(ev event.Event) {
	g.pointer = ev

	switch ev.Kind {
	case event.KindKeyDown:
		g.held[ev.Key] = true
	case event.KindKeyUp:
		delete(g.held, ev.Key)
	case event.KindSpurious, event.KindMouseMove:
		return
	}
	g.log.Debug("input", zap.Stringer("event", ev))
}

// KeyHeld reports whether k is down as far as the loop has seen.
func (g *Game) KeyHeld(k keys.Code) bool {
	return g.held[k]
}

// Pointer returns the pointer position and buttons from the latest event.
func (g *Game) Pointer() (x, y int, buttons event.Button) {
	return g.pointer.X, g.pointer.Y, g.pointer.Buttons
}

// Frames returns the number of frames presented.
func (g *Game) Frames() int {
	return g.frames
}
