package scenes

import (
	"fmt"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/glsandbox/internal/engine/mesh"
	"github.com/Faultbox/glsandbox/internal/engine/renderer"
	"github.com/Faultbox/glsandbox/internal/engine/shader"
	"github.com/Faultbox/glsandbox/internal/sandbox"
	"github.com/Faultbox/glsandbox/res"
)

// ColorPulse tints the textured quad with a red channel that bounces each frame.
type ColorPulse struct {
	env     *Env
	mesh    *renderer.Mesh
	program *shader.Program
	texture *renderer.Texture
	pulse   *sandbox.Pulse
	red     float32
	build   *sandbox.Inspection
}

// NewColorPulse uploads a quad filling the middle of the target.
func NewColorPulse(env *Env) (*ColorPulse, error) {
	s := &ColorPulse{
		env:     env,
		mesh:    renderer.Upload(mesh.CenteredQuad(1, 1)),
		program: env.Resources.Program(res.BasicShader),
		texture: env.Resources.Texture(res.LogoTexture),
		pulse:   sandbox.NewPulse(0.05),
	}
	s.build = sandbox.NewInspection(s.program)
	if s.program.ID() == 0 {
		s.Close()
		return nil, fmt.Errorf("color pulse: %w", errNoProgram)
	}
	return s, nil
}

func (s *ColorPulse) Update(dt float32) {
	s.red = s.pulse.Next()
}

func (s *ColorPulse) Render() {
	s.env.Renderer.Clear()
	s.texture.Bind(0)

	s.program.Bind()
	s.program.SetInt("u_Texture", 0)
	s.program.SetMat4("u_MVP", mgl32.Ident4())
	s.program.SetVec4("u_Color", s.red, 0.3, 0.8, 1.0)
	s.env.Renderer.Draw(s.mesh.VA, s.mesh.IB, s.program)
}

func (s *ColorPulse) RenderUI() {
	imgui.Text("red channel")
	imgui.ProgressBarV(s.red, imgui.NewVec2(-1, 0), fmt.Sprintf("%.2f", s.red))
	if s.program.Path() != "" && imgui.Button("Reload shader") {
		s.build.Reload()
	}
	imgui.TextWrapped(s.build.Status())
}

func (s *ColorPulse) Close() {
	s.env.Resources.Release(s.program)
	s.texture.Delete()
	s.mesh.Delete()
}
