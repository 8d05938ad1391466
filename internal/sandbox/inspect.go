package sandbox

// Reloadable is a shader program as seen by the inspector.
type Reloadable interface {
	Reload() error
	Err() error
	Generation() int
}

// Inspection tracks the build state of one program across manual and hot
// reloads.
type Inspection struct {
	program Reloadable

	// reloadErr belongs to program generation reloadGen.
	reloadErr error
	reloadGen int
}

// NewInspection starts inspecting p.
func NewInspection(p Reloadable) *Inspection {
	return &Inspection{program: p}
}

// Reload rebuilds the program and remembers a failure until the program
// is next rebuilt successfully.
func (in *Inspection) Reload() error {
	err := in.program.Reload()
	in.reloadErr = err
	in.reloadGen = in.program.Generation()
	return err
}

// Status describes the program the GPU is currently running.
func (in *Inspection) Status() string {
	if in.reloadErr != nil && in.program.Generation() == in.reloadGen {
		return "Reload failed, still running the previous build: " + in.reloadErr.Error()
	}
	if err := in.program.Err(); err != nil {
		return err.Error()
	}
	return "Compiled and linked"
}
