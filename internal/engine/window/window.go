// Package window creates OS windows with an OpenGL 4.1 core context.
package window

import (
	"fmt"
	"runtime"
)

func init() {
	// OpenGL calls must be made from the main thread.
	runtime.LockOSThread()
}

// Platform names accepted by Open.
const (
	SDL  = "sdl"
	GLFW = "glfw"
)

// Config holds window configuration.
type Config struct {
	Title      string
	Width      int
	Height     int
	Fullscreen bool
	VSync      bool
}

// Window is a native window owning one OpenGL context.
type Window interface {
	// MakeCurrent makes the window's context current on the calling thread.
	MakeCurrent() error
	// PollEvents processes pending input. Escape and the close button
	// request the window to close; size changes call the OnResize callback.
	PollEvents()
	ShouldClose() bool
	SwapBuffers()
	// FramebufferSize returns the drawable size in pixels.
	FramebufferSize() (int, int)
	// OnResize sets the callback invoked with the new drawable size.
	OnResize(fn func(width, height int))
	SetTitle(title string)
	Close()
}

// Open creates a window on the named platform.
func Open(platform string, cfg Config) (Window, error) {
	switch platform {
	case SDL, "":
		return NewSDL(cfg)
	case GLFW:
		return NewGLFW(cfg)
	default:
		return nil, fmt.Errorf("unknown window platform %q", platform)
	}
}
