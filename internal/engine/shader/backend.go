// Package shader loads combined "#shader" source files, compiles and links
// them into a program through a Backend, and caches uniform locations.
package shader

// Stage identifies one programmable pipeline stage.
type Stage int

const (
	Vertex Stage = iota
	Fragment
)

func (s Stage) String() string {
	switch s {
	case Vertex:
		return "vertex"
	case Fragment:
		return "fragment"
	default:
		return "unknown"
	}
}

// MissingLocation is the location a backend reports for a uniform the
// linked program does not have (or optimized away).
const MissingLocation int32 = -1

// Backend is the native shader compiler and program API.
//
// Every method must be called from the goroutine locked to the OS thread
// that owns the current rendering context. Handles are backend-assigned and
// zero is never a valid handle.
type Backend interface {
	CreateShaderStage(stage Stage) uint32
	SetStageSource(stage uint32, source string)
	CompileStage(stage uint32) bool
	StageLog(stage uint32) string
	DeleteStage(stage uint32)

	CreateProgram() uint32
	AttachStage(program, stage uint32)
	LinkProgram(program uint32) bool
	ProgramLog(program uint32) string
	ValidateProgram(program uint32) bool
	DeleteProgram(program uint32)
	UseProgram(program uint32)

	UniformLocation(program uint32, name string) int32
	Uniform4f(location int32, v0, v1, v2, v3 float32)
	Uniform1i(location int32, v int32)
	Uniform1iv(location int32, v []int32)
	// UniformMatrix4f uploads a column-major 4x4 matrix without transposing.
	UniformMatrix4f(location int32, m *[16]float32)
}
