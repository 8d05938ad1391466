package scenes

import (
	"github.com/AllenDang/cimgui-go/imgui"
)

// ClearColor lets the user pick the clear color.
type ClearColor struct {
	env      *Env
	color    [4]float32
	previous [4]float32
}

// NewClearColor starts from a light blue.
func NewClearColor(env *Env) *ClearColor {
	return &ClearColor{
		env:      env,
		color:    [4]float32{0.2, 0.3, 0.8, 1.0},
		previous: env.Renderer.ClearColor(),
	}
}

func (s *ClearColor) Update(dt float32) {}

func (s *ClearColor) Render() {
	s.env.Renderer.SetClearColor(s.color)
	s.env.Renderer.Clear()
}

func (s *ClearColor) RenderUI() {
	imgui.ColorEdit4("Clear Color", &s.color)
}

// Close restores the clear color that was active before the scene opened.
func (s *ClearColor) Close() {
	s.env.Renderer.SetClearColor(s.previous)
}
