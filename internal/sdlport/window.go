// Package sdlport binds the input translator to SDL2: the event queue,
// the pointer, the window and the optional joystick.
package sdlport

import (
	"fmt"
	"image"
	"strings"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/zap"

	"github.com/HunterZ/abuse-wii/internal/overlay"
	"github.com/HunterZ/abuse-wii/internal/screenshot"
)

// Config holds window configuration.
type Config struct {
	Title string
	// Width and Height are the logical screen size the game draws at.
	Width  int
	Height int
	// WindowWidth and WindowHeight are the initial window size.
	WindowWidth  int
	WindowHeight int
	Fullscreen   bool
	GL           bool
	GrabMouse    bool
	Joystick     bool
}

// Window wraps the SDL2 window and, in GL mode, its OpenGL context.
type Window struct {
	config    Config
	sdlWindow *sdl.Window
	glContext sdl.GLContext
	joystick  *sdl.Joystick
	log       *zap.Logger

	status    *overlay.Status
	glOverlay *overlay.GLRenderer
}

// Open initializes SDL and creates the window.
func Open(cfg Config, log *zap.Logger) (*Window, error) {
	if log == nil {
		log = zap.NewNop()
	}
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return nil, fmt.Errorf("invalid screen size %dx%d", cfg.Width, cfg.Height)
	}
	if cfg.WindowWidth <= 0 || cfg.WindowHeight <= 0 {
		cfg.WindowWidth, cfg.WindowHeight = cfg.Width, cfg.Height
	}

	w := &Window{config: cfg, log: log, status: overlay.NewStatus()}

	log.Info("initializing SDL2")
	if err := sdl.Init(sdl.INIT_VIDEO | sdl.INIT_EVENTS); err != nil {
		return nil, fmt.Errorf("SDL_Init failed: %w", err)
	}

	flags := uint32(sdl.WINDOW_SHOWN)
	if cfg.GL {
		sdl.GLSetAttribute(sdl.GL_CONTEXT_MAJOR_VERSION, 4)
		sdl.GLSetAttribute(sdl.GL_CONTEXT_MINOR_VERSION, 1)
		sdl.GLSetAttribute(sdl.GL_CONTEXT_PROFILE_MASK, sdl.GL_CONTEXT_PROFILE_CORE)
		sdl.GLSetAttribute(sdl.GL_DOUBLEBUFFER, 1)
		flags |= sdl.WINDOW_OPENGL
	}
	if cfg.Fullscreen {
		flags |= sdl.WINDOW_FULLSCREEN_DESKTOP
	}

	var err error
	w.sdlWindow, err = sdl.CreateWindow(
		cfg.Title,
		sdl.WINDOWPOS_CENTERED,
		sdl.WINDOWPOS_CENTERED,
		int32(cfg.WindowWidth),
		int32(cfg.WindowHeight),
		flags,
	)
	if err != nil {
		sdl.Quit()
		return nil, fmt.Errorf("SDL_CreateWindow failed: %w", err)
	}

	if cfg.GL {
		w.glContext, err = w.sdlWindow.GLCreateContext()
		if err != nil {
			w.sdlWindow.Destroy()
			sdl.Quit()
			return nil, fmt.Errorf("SDL_GL_CreateContext failed: %w", err)
		}
		if err := gl.Init(); err != nil {
			w.Close()
			return nil, fmt.Errorf("gl.Init failed: %w", err)
		}
		w.glOverlay, err = overlay.NewGLRenderer()
		if err != nil {
			w.Close()
			return nil, err
		}
	}

	if cfg.GrabMouse {
		w.sdlWindow.SetGrab(true)
	}
	if cfg.Joystick {
		w.openJoystick()
	}

	log.Info("window created",
		zap.String("title", cfg.Title),
		zap.Int("width", cfg.WindowWidth),
		zap.Int("height", cfg.WindowHeight),
		zap.Bool("fullscreen", cfg.Fullscreen),
		zap.Bool("gl", cfg.GL),
	)
	return w, nil
}

// openJoystick opens the first joystick. A missing joystick is not fatal.
func (w *Window) openJoystick() {
	if err := sdl.InitSubSystem(sdl.INIT_JOYSTICK); err != nil {
		w.log.Warn("joystick subsystem unavailable", zap.Error(err))
		return
	}
	sdl.JoystickEventState(sdl.ENABLE)

	if sdl.NumJoysticks() < 1 {
		w.log.Warn("no joystick found")
		return
	}
	w.joystick = sdl.JoystickOpen(0)
	if w.joystick == nil {
		w.log.Warn("failed to open joystick", zap.Error(sdl.GetError()))
		return
	}
	w.log.Info("joystick opened", zap.String("name", w.joystick.Name()))
}

// Close releases the joystick, the window and SDL.
func (w *Window) Close() {
	w.log.Info("closing window")

	if w.joystick != nil {
		w.joystick.Close()
		w.joystick = nil
	}
	if w.glOverlay != nil {
		w.glOverlay.Close()
		w.glOverlay = nil
	}
	if w.glContext != nil {
		sdl.GLDeleteContext(w.glContext)
		w.glContext = nil
	}
	if w.sdlWindow != nil {
		w.sdlWindow.Destroy()
		w.sdlWindow = nil
	}
	sdl.Quit()
}

// Size returns the logical screen size.
func (w *Window) Size() (int, int) {
	return w.config.Width, w.config.Height
}

// MouseScale returns the window-to-screen ratio per axis in 16.16 fixed
// point. It follows the current window size, so fullscreen toggles are
// picked up on the next poll.
func (w *Window) MouseScale() (int, int) {
	ww, wh := w.sdlWindow.GetSize()
	return (int(ww) << 16) / w.config.Width, (int(wh) << 16) / w.config.Height
}

// ToggleFullscreen switches between windowed and desktop fullscreen.
func (w *Window) ToggleFullscreen() error {
	var flags uint32
	if w.sdlWindow.GetFlags()&sdl.WINDOW_FULLSCREEN_DESKTOP == 0 {
		flags = sdl.WINDOW_FULLSCREEN_DESKTOP
	}
	if err := w.sdlWindow.SetFullscreen(flags); err != nil {
		return fmt.Errorf("SDL_SetWindowFullscreen failed: %w", err)
	}
	return nil
}

// ToggleGrab flips mouse confinement and returns the new state.
func (w *Window) ToggleGrab() (bool, error) {
	grab := !w.sdlWindow.GetGrab()
	w.sdlWindow.SetGrab(grab)
	return w.sdlWindow.GetGrab(), nil
}

// SaveScreenshot writes the current frame to path as a BMP.
func (w *Window) SaveScreenshot(path string) error {
	if w.config.GL {
		return w.saveGLScreenshot(path)
	}

	surface, err := w.sdlWindow.GetSurface()
	if err != nil {
		return fmt.Errorf("SDL_GetWindowSurface failed: %w", err)
	}
	if err := surface.SaveBMP(path); err != nil {
		return fmt.Errorf("SDL_SaveBMP failed: %w", err)
	}
	return nil
}

func (w *Window) saveGLScreenshot(path string) error {
	width, height := w.sdlWindow.GLGetDrawableSize()
	pixels := make([]byte, int(width)*int(height)*4)

	gl.PixelStorei(gl.PACK_ALIGNMENT, 1)
	gl.ReadPixels(0, 0, width, height, gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(&pixels[0]))

	img, err := screenshot.FromGLPixels(pixels, int(width), int(height))
	if err != nil {
		return err
	}
	return screenshot.SaveBMP(path, img)
}

// ShowMessage logs msg and shows it over the frame for overlay.Duration.
func (w *Window) ShowMessage(msg string) {
	w.log.Info("status", zap.String("message", strings.TrimRight(msg, "\r\n")))
	w.status.Show(msg)
}

// overlayScale is the whole-pixel ratio between a view of height viewH
// and the logical screen.
func (w *Window) overlayScale(viewH int) int {
	return max(viewH/w.config.Height, 1)
}

// Present clears and shows one frame with any status message on top.
func (w *Window) Present() error {
	msg := w.status.Image()

	if w.config.GL {
		dw, dh := w.sdlWindow.GLGetDrawableSize()
		gl.Viewport(0, 0, dw, dh)
		gl.ClearColor(0, 0, 0, 1)
		gl.Clear(gl.COLOR_BUFFER_BIT)
		w.glOverlay.Draw(msg, int(dw), int(dh), w.overlayScale(int(dh)))
		w.sdlWindow.GLSwap()
		return nil
	}

	surface, err := w.sdlWindow.GetSurface()
	if err != nil {
		return fmt.Errorf("SDL_GetWindowSurface failed: %w", err)
	}
	if err := surface.FillRect(nil, 0); err != nil {
		return fmt.Errorf("SDL_FillRect failed: %w", err)
	}
	if msg != nil {
		if err := w.blitOverlay(surface, msg); err != nil {
			w.log.Warn("status overlay failed", zap.Error(err))
		}
	}
	return w.sdlWindow.UpdateSurface()
}

// blitOverlay draws img onto the window surface.
func (w *Window) blitOverlay(dst *sdl.Surface, img *image.RGBA) error {
	b := img.Bounds()
	src, err := sdl.CreateRGBSurfaceWithFormatFrom(unsafe.Pointer(&img.Pix[0]),
		int32(b.Dx()), int32(b.Dy()), 32, int32(img.Stride), uint32(sdl.PIXELFORMAT_RGBA32))
	if err != nil {
		return fmt.Errorf("SDL_CreateRGBSurfaceWithFormatFrom failed: %w", err)
	}
	defer src.Free()

	if err := src.SetBlendMode(sdl.BlendMode(sdl.BLENDMODE_BLEND)); err != nil {
		return fmt.Errorf("SDL_SetSurfaceBlendMode failed: %w", err)
	}

	x, y, rw, rh := overlay.Placement(b, int(dst.W), int(dst.H), w.overlayScale(int(dst.H)))
	rect := sdl.Rect{X: int32(x), Y: int32(y), W: int32(rw), H: int32(rh)}
	return src.BlitScaled(nil, dst, &rect)
}
