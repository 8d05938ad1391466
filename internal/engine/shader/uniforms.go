package shader

import (
	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"
)

// Location returns the location of the named uniform, asking the backend only
// the first time a name is seen. Unknown names are cached as MissingLocation
// and warned about once.
func (p *Program) Location(name string) int32 {
	if loc, ok := p.locations[name]; ok {
		return loc
	}
	if p.id == 0 {
		return MissingLocation
	}

	loc := p.backend.UniformLocation(p.id, name)
	if loc == MissingLocation {
		p.log.Warn("uniform not found",
			zap.String("name", name),
			zap.String("path", p.path),
			zap.Uint32("program", p.id),
		)
	}
	p.locations[name] = loc
	return loc
}

// SetVec4 sets a vec4 uniform.
func (p *Program) SetVec4(name string, v0, v1, v2, v3 float32) {
	if loc := p.Location(name); loc != MissingLocation {
		p.backend.Uniform4f(loc, v0, v1, v2, v3)
	}
}

// SetInt sets an int or sampler uniform.
func (p *Program) SetInt(name string, v int32) {
	if loc := p.Location(name); loc != MissingLocation {
		p.backend.Uniform1i(loc, v)
	}
}

// SetInts sets an int or sampler array uniform.
func (p *Program) SetInts(name string, v []int32) {
	if len(v) == 0 {
		return
	}
	if loc := p.Location(name); loc != MissingLocation {
		p.backend.Uniform1iv(loc, v)
	}
}

// SetMat4 sets a mat4 uniform. mgl32 matrices are column-major, as the
// backend expects.
func (p *Program) SetMat4(name string, m mgl32.Mat4) {
	if loc := p.Location(name); loc != MissingLocation {
		arr := [16]float32(m)
		p.backend.UniformMatrix4f(loc, &arr)
	}
}
