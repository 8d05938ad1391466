// Package sandbox implements the test scene menu: a registry of named scene
// factories from which one scene at a time is built and run.
package sandbox

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/Faultbox/glsandbox/internal/logger"
)

// Scene is one selectable demo.
type Scene interface {
	Update(dt float32)
	Render()
	// RenderUI draws the scene's ImGui controls.
	RenderUI()
	Close()
}

// Resizer is implemented by scenes whose drawing depends on the size of the
// render target.
type Resizer interface {
	Resize(width, height float32)
}

// Factory builds a scene on demand.
type Factory func() (Scene, error)

// ErrUnknownScene is returned when selecting a name that was never registered.
var ErrUnknownScene = errors.New("unknown scene")

// Menu holds registered scenes in registration order and the active one.
type Menu struct {
	names     []string
	factories map[string]Factory

	current     Scene
	currentName string

	// width and height are the last size passed to Resize, zero until then.
	width  float32
	height float32

	log *zap.Logger
}

// NewMenu creates an empty menu.
func NewMenu() *Menu {
	return &Menu{
		factories: make(map[string]Factory),
		log:       logger.Named("sandbox"),
	}
}

// Register adds a scene factory under name.
func (m *Menu) Register(name string, f Factory) error {
	if name == "" {
		return errors.New("scene name is empty")
	}
	if f == nil {
		return fmt.Errorf("scene %q: nil factory", name)
	}
	if _, dup := m.factories[name]; dup {
		return fmt.Errorf("scene %q already registered", name)
	}
	m.names = append(m.names, name)
	m.factories[name] = f
	return nil
}

// Names returns the registered scene names in registration order.
func (m *Menu) Names() []string {
	return append([]string(nil), m.names...)
}

// Select closes the active scene, if any, and builds the named one. If the
// factory fails the menu is left with no active scene.
func (m *Menu) Select(name string) error {
	f, ok := m.factories[name]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownScene, name)
	}

	m.Back()

	scene, err := f()
	if err != nil {
		m.log.Error("failed to create scene", zap.String("scene", name), zap.Error(err))
		return fmt.Errorf("creating scene %q: %w", name, err)
	}
	m.current = scene
	m.currentName = name
	if r, ok := scene.(Resizer); ok && m.width > 0 && m.height > 0 {
		r.Resize(m.width, m.height)
	}
	m.log.Info("scene opened", zap.String("scene", name))
	return nil
}

// Back closes the active scene and returns to the menu.
func (m *Menu) Back() {
	if m.current == nil {
		return
	}
	m.current.Close()
	m.log.Info("scene closed", zap.String("scene", m.currentName))
	m.current = nil
	m.currentName = ""
}

// Current returns the active scene and its name, or nil and "" on the menu.
func (m *Menu) Current() (Scene, string) {
	return m.current, m.currentName
}

// Resize records the render target size and passes it to the active scene
// when it is a Resizer. Scenes built later receive it on selection.
func (m *Menu) Resize(width, height float32) {
	if width == m.width && height == m.height {
		return
	}
	m.width, m.height = width, height
	if r, ok := m.current.(Resizer); ok {
		r.Resize(width, height)
	}
}

// Update advances the active scene.
func (m *Menu) Update(dt float32) {
	if m.current != nil {
		m.current.Update(dt)
	}
}

// Render draws the active scene.
func (m *Menu) Render() {
	if m.current != nil {
		m.current.Render()
	}
}

// RenderUI draws the active scene's controls.
func (m *Menu) RenderUI() {
	if m.current != nil {
		m.current.RenderUI()
	}
}

// Close closes the active scene.
func (m *Menu) Close() {
	m.Back()
}
