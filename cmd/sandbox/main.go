// Package main runs the test scene menu: an ImGui window listing the demo
// scenes, a viewport showing the active one, and a shader inspector.
package main

import (
	"fmt"
	"os"
	"runtime"
	"time"

	"github.com/AllenDang/cimgui-go/imgui"
	"go.uber.org/zap"

	"github.com/Faultbox/glsandbox/internal/app"
	"github.com/Faultbox/glsandbox/internal/config"
	"github.com/Faultbox/glsandbox/internal/engine/debug"
	"github.com/Faultbox/glsandbox/internal/engine/framebuffer"
	"github.com/Faultbox/glsandbox/internal/engine/gldevice"
	"github.com/Faultbox/glsandbox/internal/engine/renderer"
	"github.com/Faultbox/glsandbox/internal/engine/shader"
	"github.com/Faultbox/glsandbox/internal/engine/ui"
	"github.com/Faultbox/glsandbox/internal/logger"
	"github.com/Faultbox/glsandbox/internal/sandbox"
	"github.com/Faultbox/glsandbox/internal/sandbox/scenes"
)

func main() {
	runtime.LockOSThread()

	config.ParseFlags()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("=== glsandbox ===")

	a, err := NewApp(cfg)
	if err != nil {
		logger.Error("failed to start sandbox", zap.Error(err))
		logger.Sync()
		os.Exit(1)
	}
	defer a.Close()

	a.Run()
	logger.Info("sandbox closed normally")
}

// App is the sandbox application state.
type App struct {
	cfg *config.Config
	ui  *ui.Backend

	renderer  *renderer.Renderer
	resources *app.Resources
	fb        *framebuffer.Framebuffer
	menu      *sandbox.Menu
	shots     *debug.Screenshots

	// inspected is a shader opened from disk for inspection, nil until one is picked.
	inspected  *shader.Program
	inspection *sandbox.Inspection

	title string

	lastFrame time.Time
	status    string
}

// NewApp creates the window, the OpenGL state and the scene menu.
func NewApp(cfg *config.Config) (*App, error) {
	backend, err := ui.NewBackend(cfg.Window.Title, cfg.Window.Width, cfg.Window.Height)
	if err != nil {
		return nil, err
	}

	// The UI backend owns the context and has already made it current.
	device, err := gldevice.New(nil)
	if err != nil {
		backend.Shutdown()
		return nil, err
	}

	width, height := int32(cfg.Window.Width), int32(cfg.Window.Height)
	fb, err := framebuffer.New(width, height)
	if err != nil {
		backend.Shutdown()
		return nil, err
	}

	resources, err := app.NewResources(device, cfg.Assets.Dirs, cfg.Shader)
	if err != nil {
		fb.Destroy()
		backend.Shutdown()
		return nil, err
	}

	a := &App{
		cfg: cfg,
		ui:  backend,
		renderer: renderer.New(device, renderer.Config{
			Width:      cfg.Window.Width,
			Height:     cfg.Window.Height,
			ClearColor: cfg.Render.ClearColor,
			Blending:   cfg.Render.Blending,
			Wireframe:  cfg.Render.Wireframe,
		}),
		resources: resources,
		fb:        fb,
		menu:      sandbox.NewMenu(),
		shots:     debug.NewScreenshots(".", "glsandbox"),
		lastFrame: time.Now(),
	}

	env := &scenes.Env{
		Renderer:  a.renderer,
		Resources: resources,
		Width:     float32(width),
		Height:    float32(height),
	}
	if err := scenes.Register(a.menu, env); err != nil {
		a.Close()
		backend.Shutdown()
		return nil, err
	}

	if name := cfg.Sandbox.DefaultScene; name != "" {
		if err := a.menu.Select(name); err != nil {
			logger.Warn("default scene unavailable", zap.String("scene", name), zap.Error(err))
		}
	}
	return a, nil
}

// Run runs the frame loop until the window closes.
func (a *App) Run() {
	a.ui.Run(a.frame)
}

// Close releases every scene and OpenGL resource.
func (a *App) Close() {
	a.menu.Close()
	if err := a.resources.Close(); err != nil {
		logger.Warn("closing resources", zap.Error(err))
	}
	a.fb.Destroy()
}

func (a *App) frame() {
	now := time.Now()
	dt := float32(now.Sub(a.lastFrame).Seconds())
	a.lastFrame = now

	a.handleInput()
	if path, ok := a.ui.PickedFile(); ok {
		a.openShader(path)
	}
	a.resources.Poll()

	a.menu.Update(dt)

	restore := a.fb.Begin()
	a.renderer.Clear()
	a.menu.Render()
	restore()
	a.renderer.CheckErrors("scene render")

	a.renderMenu()
	a.renderViewport()
	a.renderInspector()
	a.updateTitle()
}

func (a *App) updateTitle() {
	title := a.cfg.Window.Title
	if _, name := a.menu.Current(); name != "" {
		title += " - " + name
	}
	if title != a.title {
		a.ui.SetWindowTitle(title)
		a.title = title
	}
}

func (a *App) handleInput() {
	if ui.IsKeyPressed(imgui.KeyEscape) {
		a.ui.Close()
	}
	if ui.IsKeyPressed(imgui.KeyF12) {
		a.screenshot()
	}
}

func (a *App) screenshot() {
	w, h := a.fb.Size()
	path, err := a.shots.SavePixels(a.fb.ReadPixels(), int(w), int(h))
	if err != nil {
		logger.Error("screenshot failed", zap.Error(err))
		a.status = "Screenshot failed"
		return
	}
	logger.Info("screenshot saved", zap.String("path", path))
	a.status = "Saved " + path
}

func (a *App) openShader(path string) {
	if a.inspected != nil {
		a.resources.Release(a.inspected)
	}
	a.inspected = a.resources.ProgramFile(path)
	a.inspection = sandbox.NewInspection(a.inspected)
}

func (a *App) renderMenu() {
	imgui.Begin("Test Menu")
	defer imgui.End()

	if _, name := a.menu.Current(); name != "" {
		if imgui.Button("<-") {
			a.menu.Back()
		} else {
			imgui.SameLine()
			imgui.Text(name)
			imgui.Separator()
			a.menu.RenderUI()
		}
	} else {
		for _, name := range a.menu.Names() {
			if imgui.Button(name) {
				if err := a.menu.Select(name); err != nil {
					a.status = err.Error()
				}
			}
		}
	}

	imgui.Separator()
	imgui.Text(fmt.Sprintf("Application average %.3f ms/frame (%.1f FPS)",
		1000/imgui.CurrentIO().Framerate(), imgui.CurrentIO().Framerate()))
	if a.status != "" {
		imgui.TextWrapped(a.status)
	}
}

func (a *App) renderViewport() {
	imgui.Begin("Viewport")
	defer imgui.End()

	// The framebuffer follows the window so scenes render at screen resolution.
	avail := imgui.ContentRegionAvail()
	if avail.X >= 1 && avail.Y >= 1 {
		a.fb.Resize(int32(avail.X), int32(avail.Y))
	}

	w, h := a.fb.Size()
	a.menu.Resize(float32(w), float32(h))
	ui.Image(a.fb.ColorTexture(), float32(w), float32(h))
}

func (a *App) renderInspector() {
	imgui.Begin("Shader")
	defer imgui.End()

	if imgui.Button("Open shader...") {
		a.ui.OpenFileDialog("Open shader")
	}

	p := a.inspected
	if p == nil {
		return
	}

	imgui.Separator()
	imgui.Text("Path: " + p.Path())
	imgui.Text(fmt.Sprintf("Program: %d  Generation: %d", p.ID(), p.Generation()))
	if imgui.Button("Reload") {
		if err := a.inspection.Reload(); err != nil {
			a.status = "Reload failed: " + err.Error()
		}
	}
	imgui.TextWrapped(a.inspection.Status())
}
