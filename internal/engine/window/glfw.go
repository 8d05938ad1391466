package window

import (
	"fmt"

	"github.com/go-gl/glfw/v3.3/glfw"
	"go.uber.org/zap"

	"github.com/Faultbox/glsandbox/internal/logger"
)

// GLFWWindow wraps a GLFW window and its OpenGL context.
type GLFWWindow struct {
	config   Config
	win      *glfw.Window
	onResize func(width, height int)
	log      *zap.Logger
}

// NewGLFW creates a GLFW window with an OpenGL 4.1 core context.
func NewGLFW(cfg Config) (*GLFWWindow, error) {
	w := &GLFWWindow{
		config: cfg,
		log:    logger.Named("window"),
	}

	w.log.Info("initializing GLFW")
	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("glfwInit failed: %w", err)
	}

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.Resizable, glfw.True)

	var monitor *glfw.Monitor
	if cfg.Fullscreen {
		monitor = glfw.GetPrimaryMonitor()
	}

	var err error
	w.win, err = glfw.CreateWindow(cfg.Width, cfg.Height, cfg.Title, monitor, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("glfwCreateWindow failed: %w", err)
	}
	w.win.MakeContextCurrent()

	if cfg.VSync {
		glfw.SwapInterval(1)
	} else {
		glfw.SwapInterval(0)
	}

	w.win.SetFramebufferSizeCallback(func(_ *glfw.Window, width, height int) {
		if w.onResize != nil {
			w.onResize(width, height)
		}
	})

	w.log.Info("window created",
		zap.String("platform", GLFW),
		zap.String("title", cfg.Title),
		zap.Int("width", cfg.Width),
		zap.Int("height", cfg.Height),
		zap.Bool("fullscreen", cfg.Fullscreen),
		zap.Bool("vsync", cfg.VSync),
	)
	return w, nil
}

// MakeCurrent makes the window's context current.
func (w *GLFWWindow) MakeCurrent() error {
	w.win.MakeContextCurrent()
	return nil
}

// PollEvents processes pending events and checks the escape key.
func (w *GLFWWindow) PollEvents() {
	glfw.PollEvents()
	if w.win.GetKey(glfw.KeyEscape) == glfw.Press {
		w.win.SetShouldClose(true)
	}
}

// ShouldClose reports whether closing was requested.
func (w *GLFWWindow) ShouldClose() bool {
	return w.win.ShouldClose()
}

// SwapBuffers swaps the OpenGL buffers.
func (w *GLFWWindow) SwapBuffers() {
	w.win.SwapBuffers()
}

// FramebufferSize returns the drawable size in pixels.
func (w *GLFWWindow) FramebufferSize() (int, int) {
	return w.win.GetFramebufferSize()
}

// OnResize sets the resize callback.
func (w *GLFWWindow) OnResize(fn func(width, height int)) {
	w.onResize = fn
}

// SetTitle sets the window title.
func (w *GLFWWindow) SetTitle(title string) {
	w.win.SetTitle(title)
}

// Close destroys the window and terminates GLFW.
func (w *GLFWWindow) Close() {
	w.log.Info("closing window")
	w.win.Destroy()
	glfw.Terminate()
}
