package scenes

import (
	"fmt"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/glsandbox/internal/engine/camera"
	"github.com/Faultbox/glsandbox/internal/engine/mesh"
	"github.com/Faultbox/glsandbox/internal/engine/renderer"
	"github.com/Faultbox/glsandbox/internal/engine/shader"
	"github.com/Faultbox/glsandbox/internal/engine/ui"
	"github.com/Faultbox/glsandbox/res"
)

// Texture2D draws the same textured quad twice with independent translations.
type Texture2D struct {
	env     *Env
	mesh    *renderer.Mesh
	program *shader.Program
	texture *renderer.Texture

	camera       *camera.OrthoCamera
	translationA [3]float32
	translationB [3]float32
}

// NewTexture2D uploads the quad and builds the texture shader.
func NewTexture2D(env *Env) (*Texture2D, error) {
	s := &Texture2D{
		env:          env,
		mesh:         renderer.Upload(mesh.CenteredQuad(100, 100)),
		program:      env.Resources.Program(res.TextureShader),
		texture:      env.Resources.Texture(res.LogoTexture),
		camera:       camera.NewOrthoCamera(env.Width, env.Height),
		translationA: [3]float32{200, 200, 0},
		translationB: [3]float32{400, 200, 0},
	}

	s.camera.Position = mgl32.Vec3{100, 0, 0}

	if s.program.ID() == 0 {
		s.Close()
		return nil, fmt.Errorf("texture 2D: %w", errNoProgram)
	}
	return s, nil
}

// Update pans the camera with the arrow keys and zooms with the mouse wheel.
func (s *Texture2D) Update(dt float32) {
	if wheel := imgui.CurrentIO().MouseWheel(); wheel != 0 {
		s.camera.HandleZoom(wheel)
	}

	var right, up float32
	if ui.IsKeyDown(imgui.KeyRightArrow) {
		right++
	}
	if ui.IsKeyDown(imgui.KeyLeftArrow) {
		right--
	}
	if ui.IsKeyDown(imgui.KeyUpArrow) {
		up++
	}
	if ui.IsKeyDown(imgui.KeyDownArrow) {
		up--
	}
	if right != 0 || up != 0 {
		s.camera.HandleMovement(right, up, dt)
	}
}

func (s *Texture2D) Render() {
	s.env.Renderer.Clear()
	s.texture.Bind(0)

	for _, t := range [][3]float32{s.translationA, s.translationB} {
		model := mgl32.Translate3D(t[0], t[1], t[2])
		mvp := s.camera.MVP(model)

		s.program.Bind()
		// The sampler is set again since a reload starts a fresh program.
		s.program.SetInt("u_Texture", 0)
		s.program.SetMat4("u_MVP", mvp)
		s.env.Renderer.Draw(s.mesh.VA, s.mesh.IB, s.program)
	}
}

// Resize keeps one world unit per pixel of the render target.
func (s *Texture2D) Resize(width, height float32) {
	s.camera.Resize(width, height)
}

func (s *Texture2D) RenderUI() {
	imgui.SliderFloat3V("Translation A", &s.translationA, 0, s.camera.Width, "%.1f", imgui.SliderFlagsNone)
	imgui.SliderFloat3V("Translation B", &s.translationB, 0, s.camera.Width, "%.1f", imgui.SliderFlagsNone)
	imgui.SliderFloatV("Zoom", &s.camera.Zoom, s.camera.MinZoom, s.camera.MaxZoom, "%.2fx", imgui.SliderFlagsNone)
}

func (s *Texture2D) Close() {
	s.env.Resources.Release(s.program)
	s.texture.Delete()
	s.mesh.Delete()
}
