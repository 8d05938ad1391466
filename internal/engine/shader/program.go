package shader

import (
	"fmt"

	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/Faultbox/glsandbox/internal/logger"
)

// Option configures a Program.
type Option func(*Program)

// WithLogger sets the logger diagnostics are written to.
func WithLogger(log *zap.Logger) Option {
	return func(p *Program) {
		p.log = log
	}
}

// FailFast stops the build at the first stage that fails to compile and
// leaves the program without a handle. By default the build carries on and
// links whatever stages compiled.
func FailFast() Option {
	return func(p *Program) {
		p.failFast = true
	}
}

// Program is a linked shader program and its uniform location cache.
//
// Uniform setters only take effect while the program is bound; this is not
// checked.
type Program struct {
	backend  Backend
	log      *zap.Logger
	failFast bool

	path       string
	id         uint32
	generation int

	// locations is valid for the program generation it was filled against.
	locations map[string]int32

	err error
}

// New reads the combined shader file at path, compiles both stages and links
// them. Failures are logged and reported by Err; a missing file behaves like
// a file with two empty sections.
func New(b Backend, path string, opts ...Option) *Program {
	p := newProgram(b, path, opts)

	src, err := ReadFile(path)
	if err != nil {
		p.log.Error("failed to read shader source", zap.String("path", path), zap.Error(err))
		p.err = fmt.Errorf("reading shader source: %w", err)
	}
	p.install(src)
	return p
}

// Compile builds a program from an in-memory source.
func Compile(b Backend, src Source, opts ...Option) *Program {
	p := newProgram(b, "", opts)
	p.install(src)
	return p
}

func newProgram(b Backend, path string, opts []Option) *Program {
	p := &Program{
		backend: b,
		path:    path,
	}
	for _, opt := range opts {
		opt(p)
	}
	if p.log == nil {
		p.log = logger.Named("shader")
	}
	return p
}

func (p *Program) install(src Source) {
	id, err := p.build(src)
	p.id = id
	p.err = multierr.Append(p.err, err)
	p.generation = 1
	p.locations = make(map[string]int32)

	if p.err == nil {
		p.log.Debug("shader program created", zap.String("path", p.path), zap.Uint32("program", id))
	}
}

// build compiles and links src. It returns the program handle (zero only in
// fail-fast mode) together with every failure that occurred.
func (p *Program) build(src Source) (uint32, error) {
	var errs error
	var stages []uint32

	defer func() {
		for _, stage := range stages {
			p.backend.DeleteStage(stage)
		}
	}()

	for _, stage := range []Stage{Vertex, Fragment} {
		handle, err := p.compileStage(stage, src.Text(stage))
		if err != nil {
			errs = multierr.Append(errs, err)
			if p.failFast {
				return 0, errs
			}
			continue
		}
		stages = append(stages, handle)
	}

	program := p.backend.CreateProgram()
	for _, stage := range stages {
		p.backend.AttachStage(program, stage)
	}

	if !p.backend.LinkProgram(program) {
		linkErr := &LinkError{Log: p.backend.ProgramLog(program)}
		p.log.Error("failed to link shader program",
			zap.String("path", p.path),
			zap.String("log", linkErr.Log),
		)
		errs = multierr.Append(errs, linkErr)
		if p.failFast {
			p.backend.DeleteProgram(program)
			return 0, errs
		}
	}

	// Validation depends on the state bound at the time of the call, so a
	// failure here is informational only.
	if !p.backend.ValidateProgram(program) {
		p.log.Debug("shader program did not validate",
			zap.String("path", p.path),
			zap.String("log", p.backend.ProgramLog(program)),
		)
	}

	return program, errs
}

func (p *Program) compileStage(stage Stage, text string) (uint32, error) {
	handle := p.backend.CreateShaderStage(stage)
	p.backend.SetStageSource(handle, text)
	if p.backend.CompileStage(handle) {
		return handle, nil
	}

	compileErr := &CompileError{Stage: stage, Log: p.backend.StageLog(handle)}
	p.backend.DeleteStage(handle)
	p.log.Error("failed to compile shader",
		zap.Stringer("stage", stage),
		zap.String("path", p.path),
		zap.String("log", compileErr.Log),
	)
	return 0, compileErr
}

// Reload rebuilds the program from its source file. On failure the current
// program stays in use and the error is returned. On success the previous
// handle is released and the uniform location cache starts over.
func (p *Program) Reload() error {
	if p.path == "" {
		return ErrNoSource
	}

	src, err := ReadFile(p.path)
	if err != nil {
		p.log.Warn("shader reload failed, keeping previous program",
			zap.String("path", p.path),
			zap.Error(err),
		)
		return fmt.Errorf("reading shader source: %w", err)
	}

	id, err := p.build(src)
	if err != nil {
		if id != 0 {
			p.backend.DeleteProgram(id)
		}
		p.log.Warn("shader reload failed, keeping previous program",
			zap.String("path", p.path),
			zap.Error(err),
		)
		return err
	}

	if p.id != 0 {
		p.backend.DeleteProgram(p.id)
	}
	p.id = id
	p.err = nil
	p.generation++
	p.locations = make(map[string]int32)

	p.log.Info("shader reloaded",
		zap.String("path", p.path),
		zap.Uint32("program", id),
		zap.Int("generation", p.generation),
	)
	return nil
}

// Err returns every failure recorded while building the current program.
func (p *Program) Err() error {
	return p.err
}

// ID returns the backend program handle, zero if there is none.
func (p *Program) ID() uint32 {
	return p.id
}

// Path returns the source file path, empty for programs built with Compile.
func (p *Program) Path() string {
	return p.path
}

// Generation counts successful builds of this program.
func (p *Program) Generation() int {
	return p.generation
}

// Bind makes the program current.
func (p *Program) Bind() {
	p.backend.UseProgram(p.id)
}

// Unbind clears the current program.
func (p *Program) Unbind() {
	p.backend.UseProgram(0)
}

// Close releases the program handle. It is safe to call more than once.
func (p *Program) Close() {
	if p.id != 0 {
		p.backend.DeleteProgram(p.id)
		p.id = 0
	}
	p.locations = nil
}
