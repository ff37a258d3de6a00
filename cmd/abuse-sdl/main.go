// Package main is the entry point for the Abuse SDL2 port.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"syscall"

	"go.uber.org/zap"

	"github.com/HunterZ/abuse-wii/internal/config"
	"github.com/HunterZ/abuse-wii/internal/event"
	"github.com/HunterZ/abuse-wii/internal/game"
	"github.com/HunterZ/abuse-wii/internal/logger"
	"github.com/HunterZ/abuse-wii/internal/sdlport"
)

const windowTitle = "Abuse"

func init() {
	// SDL and OpenGL calls must be made from the main thread
	runtime.LockOSThread()
}

func main() {
	config.ParseFlags()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("=== Abuse ===")
	for _, w := range cfg.Warnings() {
		logger.Warn(w)
	}
	logger.Sugar.Debugf("Config: %+v", cfg)

	if config.WriteConfigRequested() {
		if err := cfg.Save(); err != nil {
			logger.Error("failed to write config", zap.Error(err))
			os.Exit(1)
		}
		logger.Info("config written", zap.String("dir", cfg.Paths.SaveDir))
		return
	}

	winW, winH := cfg.WindowSize()
	window, err := sdlport.Open(sdlport.Config{
		Title:        windowTitle,
		Width:        cfg.Display.Width,
		Height:       cfg.Display.Height,
		WindowWidth:  winW,
		WindowHeight: winH,
		Fullscreen:   cfg.Display.Fullscreen,
		GL:           cfg.Display.GL,
		GrabMouse:    cfg.Display.GrabMouse,
		Joystick:     cfg.UseJoystick(),
	}, logger.Named("sdl"))
	if err != nil {
		logger.Error("failed to open window", zap.Error(err))
		os.Exit(1)
	}
	defer window.Close()

	translator := event.New(event.Config{
		Queue:   sdlport.NewQueue(),
		Pointer: sdlport.Mouse{},
		Screen:  window,
		Source:  sourceFor(cfg, window),
		OnQuit: func() {
			logger.Info("shutting down")
			window.Close()
			logger.Sync()
			os.Exit(0)
		},
		Logger: logger.Named("event"),
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g := game.New(game.Config{NoDelay: cfg.Game.NoDelay}, translator, window, logger.Named("game"))
	if err := g.Run(ctx); err != nil {
		logger.Error("game error", zap.Error(err))
		os.Exit(1)
	}

	logger.Info("game closed normally")
}

// sourceFor picks the input source for the configured device.
func sourceFor(cfg *config.Config, window *sdlport.Window) event.InputSource {
	if cfg.UseJoystick() {
		logger.Info("using joystick input", zap.Any("controller", cfg.Controller()))
		return event.NewController(cfg.Controller(), cfg.Bindings())
	}
	return event.NewDesktop(cfg.Bindings(), window, logger.Named("desktop"))
}
