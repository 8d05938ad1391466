// Package scenes holds the demos listed in the sandbox menu.
package scenes

import (
	"errors"

	"github.com/Faultbox/glsandbox/internal/app"
	"github.com/Faultbox/glsandbox/internal/engine/renderer"
	"github.com/Faultbox/glsandbox/internal/sandbox"
)

// Env is what scenes draw with. Width and Height are the render target size.
type Env struct {
	Renderer  *renderer.Renderer
	Resources *app.Resources
	Width     float32
	Height    float32
}

// scene avoids returning a typed nil Scene when a constructor fails.
func scene(s sandbox.Scene, err error) (sandbox.Scene, error) {
	if err != nil {
		return nil, err
	}
	return s, nil
}

// Register adds every scene to m in menu order.
func Register(m *sandbox.Menu, env *Env) error {
	entries := []struct {
		name    string
		factory sandbox.Factory
	}{
		{"Clear Color", func() (sandbox.Scene, error) { return NewClearColor(env), nil }},
		{"Texture 2D", func() (sandbox.Scene, error) { return scene(NewTexture2D(env)) }},
		{"Color Pulse", func() (sandbox.Scene, error) { return scene(NewColorPulse(env)) }},
	}
	for _, e := range entries {
		if err := m.Register(e.name, e.factory); err != nil {
			return err
		}
	}
	return nil
}

// errNoProgram is returned when a scene's shader produced no program at all,
// which only happens with fail-fast builds.
var errNoProgram = errors.New("shader program unavailable")

var _ sandbox.Resizer = (*Texture2D)(nil)
