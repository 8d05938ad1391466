package shader

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNoSource is returned by Reload on a program that was not loaded from a file.
var ErrNoSource = errors.New("shader: program has no source file")

// CompileError reports a stage the backend refused to compile.
type CompileError struct {
	Stage Stage
	Log   string
}

func (e *CompileError) Error() string {
	return fmt.Sprintf("failed to compile %s shader: %s", e.Stage, strings.TrimSpace(e.Log))
}

// LinkError reports a program the backend refused to link.
type LinkError struct {
	Log string
}

func (e *LinkError) Error() string {
	return fmt.Sprintf("failed to link program: %s", strings.TrimSpace(e.Log))
}
