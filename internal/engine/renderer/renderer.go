// Package renderer wraps OpenGL buffers, textures and draw calls.
package renderer

import (
	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"

	"github.com/Faultbox/glsandbox/internal/engine/gldevice"
	"github.com/Faultbox/glsandbox/internal/engine/shader"
	"github.com/Faultbox/glsandbox/internal/logger"
)

// Config holds renderer configuration.
type Config struct {
	Width      int
	Height     int
	ClearColor [4]float32
	Blending   bool
	Wireframe  bool
}

// Renderer issues clears and indexed draws.
type Renderer struct {
	config Config
	device *gldevice.Device
	log    *zap.Logger
}

// New creates a renderer and applies the initial render state.
// The device's context must be current.
func New(device *gldevice.Device, cfg Config) *Renderer {
	r := &Renderer{
		config: cfg,
		device: device,
		log:    logger.Named("renderer"),
	}

	r.SetBlending(cfg.Blending)
	r.SetWireframe(cfg.Wireframe)
	r.Resize(cfg.Width, cfg.Height)
	return r
}

// SetClearColor changes the color Clear fills with.
func (r *Renderer) SetClearColor(c [4]float32) {
	r.config.ClearColor = c
}

// ClearColor returns the current clear color.
func (r *Renderer) ClearColor() [4]float32 {
	return r.config.ClearColor
}

// SetBlending toggles standard alpha blending.
func (r *Renderer) SetBlending(enabled bool) {
	r.config.Blending = enabled
	if enabled {
		gl.Enable(gl.BLEND)
		gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	} else {
		gl.Disable(gl.BLEND)
	}
}

// SetWireframe toggles polygon line mode.
func (r *Renderer) SetWireframe(enabled bool) {
	r.config.Wireframe = enabled
	if enabled {
		gl.PolygonMode(gl.FRONT_AND_BACK, gl.LINE)
	} else {
		gl.PolygonMode(gl.FRONT_AND_BACK, gl.FILL)
	}
}

// Resize handles framebuffer resize.
func (r *Renderer) Resize(width, height int) {
	r.config.Width = width
	r.config.Height = height
	gl.Viewport(0, 0, int32(width), int32(height))
	r.log.Debug("renderer resized", zap.Int("width", width), zap.Int("height", height))
}

// Size returns the current viewport size.
func (r *Renderer) Size() (int, int) {
	return r.config.Width, r.config.Height
}

// Clear fills the color buffer with the clear color.
func (r *Renderer) Clear() {
	c := r.config.ClearColor
	gl.ClearColor(c[0], c[1], c[2], c[3])
	gl.Clear(gl.COLOR_BUFFER_BIT)
}

// Draw binds the program and vertex state and draws every index of ib.
func (r *Renderer) Draw(va *VertexArray, ib *IndexBuffer, p *shader.Program) {
	p.Bind()
	va.Bind()
	ib.Bind()
	gl.DrawElements(gl.TRIANGLES, ib.Count(), gl.UNSIGNED_INT, nil)
}

// CheckErrors logs and returns any pending OpenGL error.
func (r *Renderer) CheckErrors(op string) error {
	return r.device.DrainErrors(op)
}
