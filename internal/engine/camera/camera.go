// Package camera provides the 2D camera used by the demos.
package camera

import (
	"github.com/go-gl/mathgl/mgl32"
)

// OrthoCamera maps pixel coordinates, origin bottom-left, to clip space.
type OrthoCamera struct {
	// Position is the world point shown at the bottom-left corner.
	Position mgl32.Vec3

	Width  float32
	Height float32

	// Zoom scales the visible area around its center; 1 shows Width by Height.
	Zoom    float32
	MinZoom float32
	MaxZoom float32

	// PanSpeed is in world units per second.
	PanSpeed float32
}

// NewOrthoCamera creates a camera showing width by height units.
func NewOrthoCamera(width, height float32) *OrthoCamera {
	return &OrthoCamera{
		Width:    width,
		Height:   height,
		Zoom:     1,
		MinZoom:  0.1,
		MaxZoom:  10,
		PanSpeed: 300,
	}
}

// Projection returns the orthographic projection.
func (c *OrthoCamera) Projection() mgl32.Mat4 {
	w, h := c.Width/c.Zoom, c.Height/c.Zoom
	left := (c.Width - w) / 2
	bottom := (c.Height - h) / 2
	return mgl32.Ortho(left, left+w, bottom, bottom+h, -1, 1)
}

// ViewMatrix moves the world opposite to the camera.
func (c *OrthoCamera) ViewMatrix() mgl32.Mat4 {
	return mgl32.Translate3D(-c.Position.X(), -c.Position.Y(), -c.Position.Z())
}

// ViewProjection returns Projection * ViewMatrix.
func (c *OrthoCamera) ViewProjection() mgl32.Mat4 {
	return c.Projection().Mul4(c.ViewMatrix())
}

// MVP returns the full transform for a model matrix.
func (c *OrthoCamera) MVP(model mgl32.Mat4) mgl32.Mat4 {
	return c.ViewProjection().Mul4(model)
}

// HandleMovement pans the camera; right and up are in [-1, 1].
func (c *OrthoCamera) HandleMovement(right, up, dt float32) {
	speed := c.PanSpeed * dt / c.Zoom
	c.Position = c.Position.Add(mgl32.Vec3{right * speed, up * speed, 0})
}

// HandleZoom changes the zoom by a scroll wheel delta.
func (c *OrthoCamera) HandleZoom(delta float32) {
	c.Zoom = mgl32.Clamp(c.Zoom*(1+delta*0.1), c.MinZoom, c.MaxZoom)
}

// Resize changes the visible area.
func (c *OrthoCamera) Resize(width, height float32) {
	c.Width, c.Height = width, height
}
