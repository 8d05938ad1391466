package window

import (
	"fmt"

	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/zap"

	"github.com/Faultbox/glsandbox/internal/logger"
)

// SDLWindow wraps an SDL2 window and its OpenGL context.
type SDLWindow struct {
	config      Config
	sdlWindow   *sdl.Window
	glContext   sdl.GLContext
	shouldClose bool
	onResize    func(width, height int)
	log         *zap.Logger
}

// NewSDL creates an SDL2 window with an OpenGL 4.1 core context.
func NewSDL(cfg Config) (*SDLWindow, error) {
	w := &SDLWindow{
		config: cfg,
		log:    logger.Named("window"),
	}

	w.log.Info("initializing SDL2")
	if err := sdl.Init(sdl.INIT_VIDEO | sdl.INIT_EVENTS); err != nil {
		return nil, fmt.Errorf("SDL_Init failed: %w", err)
	}

	// Attributes must be set before the window is created.
	sdl.GLSetAttribute(sdl.GL_CONTEXT_MAJOR_VERSION, 4)
	sdl.GLSetAttribute(sdl.GL_CONTEXT_MINOR_VERSION, 1)
	sdl.GLSetAttribute(sdl.GL_CONTEXT_PROFILE_MASK, sdl.GL_CONTEXT_PROFILE_CORE)
	sdl.GLSetAttribute(sdl.GL_DOUBLEBUFFER, 1)

	flags := uint32(sdl.WINDOW_OPENGL | sdl.WINDOW_RESIZABLE | sdl.WINDOW_ALLOW_HIGHDPI)
	if cfg.Fullscreen {
		flags |= sdl.WINDOW_FULLSCREEN_DESKTOP
	}

	var err error
	w.sdlWindow, err = sdl.CreateWindow(
		cfg.Title,
		sdl.WINDOWPOS_CENTERED,
		sdl.WINDOWPOS_CENTERED,
		int32(cfg.Width),
		int32(cfg.Height),
		flags,
	)
	if err != nil {
		sdl.Quit()
		return nil, fmt.Errorf("SDL_CreateWindow failed: %w", err)
	}

	w.glContext, err = w.sdlWindow.GLCreateContext()
	if err != nil {
		w.sdlWindow.Destroy()
		sdl.Quit()
		return nil, fmt.Errorf("SDL_GL_CreateContext failed: %w", err)
	}

	interval := 0
	if cfg.VSync {
		interval = 1
	}
	if err := sdl.GLSetSwapInterval(interval); err != nil {
		w.log.Warn("failed to set swap interval", zap.Int("interval", interval), zap.Error(err))
	}

	w.log.Info("window created",
		zap.String("platform", SDL),
		zap.String("title", cfg.Title),
		zap.Int("width", cfg.Width),
		zap.Int("height", cfg.Height),
		zap.Bool("fullscreen", cfg.Fullscreen),
		zap.Bool("vsync", cfg.VSync),
	)
	return w, nil
}

// MakeCurrent makes the window's context current.
func (w *SDLWindow) MakeCurrent() error {
	return w.sdlWindow.GLMakeCurrent(w.glContext)
}

// PollEvents drains the SDL event queue.
func (w *SDLWindow) PollEvents() {
	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		switch e := event.(type) {
		case *sdl.QuitEvent:
			w.shouldClose = true

		case *sdl.KeyboardEvent:
			if e.Type == sdl.KEYDOWN && e.Keysym.Scancode == sdl.SCANCODE_ESCAPE {
				w.shouldClose = true
			}

		case *sdl.WindowEvent:
			if e.Event == sdl.WINDOWEVENT_SIZE_CHANGED && w.onResize != nil {
				w.onResize(w.FramebufferSize())
			}
		}
	}
}

// ShouldClose reports whether closing was requested.
func (w *SDLWindow) ShouldClose() bool {
	return w.shouldClose
}

// SwapBuffers swaps the OpenGL buffers.
func (w *SDLWindow) SwapBuffers() {
	w.sdlWindow.GLSwap()
}

// FramebufferSize returns the drawable size in pixels.
func (w *SDLWindow) FramebufferSize() (int, int) {
	width, height := w.sdlWindow.GLGetDrawableSize()
	return int(width), int(height)
}

// OnResize sets the resize callback.
func (w *SDLWindow) OnResize(fn func(width, height int)) {
	w.onResize = fn
}

// SetTitle sets the window title.
func (w *SDLWindow) SetTitle(title string) {
	w.sdlWindow.SetTitle(title)
}

// Close destroys the window and shuts SDL2 down.
func (w *SDLWindow) Close() {
	w.log.Info("closing window")
	if w.glContext != nil {
		sdl.GLDeleteContext(w.glContext)
	}
	if w.sdlWindow != nil {
		w.sdlWindow.Destroy()
	}
	sdl.Quit()
}
