// Package gldevice implements shader.Backend on OpenGL 4.1 core.
package gldevice

import (
	"fmt"
	"strings"

	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"

	"github.com/Faultbox/glsandbox/internal/engine/shader"
	"github.com/Faultbox/glsandbox/internal/logger"
)

// Context is a rendering context that can be made current on the calling thread.
type Context interface {
	MakeCurrent() error
}

// Device issues OpenGL calls against one context.
//
// A Device must only be used from the goroutine that created it, and that
// goroutine must be locked to its OS thread (runtime.LockOSThread).
type Device struct {
	log *zap.Logger
}

var _ shader.Backend = (*Device)(nil)

// New makes ctx current and loads the OpenGL function pointers.
// ctx may be nil when the context is already current (for example when a UI
// backend owns the window).
func New(ctx Context) (*Device, error) {
	if ctx != nil {
		if err := ctx.MakeCurrent(); err != nil {
			return nil, fmt.Errorf("making context current: %w", err)
		}
	}
	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}

	d := &Device{log: logger.Named("gl")}
	d.log.Info("OpenGL initialized",
		zap.String("version", gl.GoStr(gl.GetString(gl.VERSION))),
		zap.String("renderer", gl.GoStr(gl.GetString(gl.RENDERER))),
		zap.String("glsl", gl.GoStr(gl.GetString(gl.SHADING_LANGUAGE_VERSION))),
	)
	return d, nil
}

// DrainErrors pops every pending OpenGL error, logs each, and returns the
// first one tagged with op. It returns nil when no error was pending.
func (d *Device) DrainErrors(op string) error {
	var first error
	for code := gl.GetError(); code != gl.NO_ERROR; code = gl.GetError() {
		d.log.Error("OpenGL error", zap.String("op", op), zap.String("code", errorName(code)))
		if first == nil {
			first = fmt.Errorf("%s: OpenGL error %s", op, errorName(code))
		}
	}
	return first
}

func errorName(code uint32) string {
	switch code {
	case gl.INVALID_ENUM:
		return "GL_INVALID_ENUM"
	case gl.INVALID_VALUE:
		return "GL_INVALID_VALUE"
	case gl.INVALID_OPERATION:
		return "GL_INVALID_OPERATION"
	case gl.INVALID_FRAMEBUFFER_OPERATION:
		return "GL_INVALID_FRAMEBUFFER_OPERATION"
	case gl.OUT_OF_MEMORY:
		return "GL_OUT_OF_MEMORY"
	default:
		return fmt.Sprintf("0x%04x", code)
	}
}

func stageType(stage shader.Stage) uint32 {
	if stage == shader.Fragment {
		return gl.FRAGMENT_SHADER
	}
	return gl.VERTEX_SHADER
}

// CreateShaderStage creates an empty shader object.
func (d *Device) CreateShaderStage(stage shader.Stage) uint32 {
	return gl.CreateShader(stageType(stage))
}

// SetStageSource replaces the source of a shader object.
func (d *Device) SetStageSource(stage uint32, source string) {
	csource, free := gl.Strs(source + "\x00")
	gl.ShaderSource(stage, 1, csource, nil)
	free()
}

// CompileStage compiles a shader object and reports its compile status.
func (d *Device) CompileStage(stage uint32) bool {
	gl.CompileShader(stage)
	var status int32
	gl.GetShaderiv(stage, gl.COMPILE_STATUS, &status)
	return status == gl.TRUE
}

// StageLog returns the info log of a shader object.
func (d *Device) StageLog(stage uint32) string {
	var logLen int32
	gl.GetShaderiv(stage, gl.INFO_LOG_LENGTH, &logLen)
	if logLen <= 0 {
		return ""
	}
	log := strings.Repeat("\x00", int(logLen+1))
	gl.GetShaderInfoLog(stage, logLen, nil, gl.Str(log))
	return strings.TrimRight(log, "\x00")
}

// DeleteStage deletes a shader object.
func (d *Device) DeleteStage(stage uint32) {
	gl.DeleteShader(stage)
}

// CreateProgram creates an empty program object.
func (d *Device) CreateProgram() uint32 {
	return gl.CreateProgram()
}

// AttachStage attaches a compiled shader object to a program.
func (d *Device) AttachStage(program, stage uint32) {
	gl.AttachShader(program, stage)
}

// LinkProgram links a program and reports its link status.
func (d *Device) LinkProgram(program uint32) bool {
	gl.LinkProgram(program)
	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	return status == gl.TRUE
}

// ProgramLog returns the info log of a program object.
func (d *Device) ProgramLog(program uint32) string {
	var logLen int32
	gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLen)
	if logLen <= 0 {
		return ""
	}
	log := strings.Repeat("\x00", int(logLen+1))
	gl.GetProgramInfoLog(program, logLen, nil, gl.Str(log))
	return strings.TrimRight(log, "\x00")
}

// ValidateProgram validates a program against the current state.
func (d *Device) ValidateProgram(program uint32) bool {
	gl.ValidateProgram(program)
	var status int32
	gl.GetProgramiv(program, gl.VALIDATE_STATUS, &status)
	return status == gl.TRUE
}

// DeleteProgram deletes a program object.
func (d *Device) DeleteProgram(program uint32) {
	gl.DeleteProgram(program)
}

// UseProgram installs a program, or none for zero.
func (d *Device) UseProgram(program uint32) {
	gl.UseProgram(program)
}

// UniformLocation looks up a uniform in a linked program.
func (d *Device) UniformLocation(program uint32, name string) int32 {
	return gl.GetUniformLocation(program, gl.Str(name+"\x00"))
}

// Uniform4f sets a vec4 uniform of the current program.
func (d *Device) Uniform4f(location int32, v0, v1, v2, v3 float32) {
	gl.Uniform4f(location, v0, v1, v2, v3)
}

// Uniform1i sets an int uniform of the current program.
func (d *Device) Uniform1i(location int32, v int32) {
	gl.Uniform1i(location, v)
}

// Uniform1iv sets an int array uniform of the current program.
func (d *Device) Uniform1iv(location int32, v []int32) {
	gl.Uniform1iv(location, int32(len(v)), &v[0])
}

// UniformMatrix4f sets a column-major mat4 uniform of the current program.
func (d *Device) UniformMatrix4f(location int32, m *[16]float32) {
	gl.UniformMatrix4fv(location, 1, false, &m[0])
}
