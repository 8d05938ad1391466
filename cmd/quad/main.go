// Package main draws a single textured quad whose tint pulses, reloading its
// shader whenever the source file changes.
package main

import (
	"fmt"
	"os"

	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"

	"github.com/Faultbox/glsandbox/internal/app"
	"github.com/Faultbox/glsandbox/internal/config"
	"github.com/Faultbox/glsandbox/internal/engine/gldevice"
	"github.com/Faultbox/glsandbox/internal/engine/mesh"
	"github.com/Faultbox/glsandbox/internal/engine/renderer"
	"github.com/Faultbox/glsandbox/internal/engine/window"
	"github.com/Faultbox/glsandbox/internal/logger"
	"github.com/Faultbox/glsandbox/internal/sandbox"
)

func main() {
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

	logger.Info("=== glsandbox quad ===")
	logger.Sugar.Debugf("Config: %+v", cfg)

	if err := run(cfg); err != nil {
		logger.Error("quad demo failed", zap.Error(err))
		logger.Sync()
		os.Exit(1)
	}
	logger.Info("window closed normally")
}

func run(cfg *config.Config) error {
	win, err := window.Open(cfg.Window.Platform, window.Config{
		Title:      cfg.Window.Title,
		Width:      cfg.Window.Width,
		Height:     cfg.Window.Height,
		Fullscreen: cfg.Window.Fullscreen,
		VSync:      cfg.Window.VSync,
	})
	if err != nil {
		return fmt.Errorf("opening window: %w", err)
	}
	defer win.Close()

	device, err := gldevice.New(win)
	if err != nil {
		return err
	}

	width, height := win.FramebufferSize()
	r := renderer.New(device, renderer.Config{
		Width:      width,
		Height:     height,
		ClearColor: cfg.Render.ClearColor,
		Blending:   cfg.Render.Blending,
		Wireframe:  cfg.Render.Wireframe,
	})
	win.OnResize(r.Resize)

	resources, err := app.NewResources(device, cfg.Assets.Dirs, cfg.Shader)
	if err != nil {
		return err
	}
	defer resources.Close()

	quad := renderer.Upload(mesh.CenteredQuad(1, 1))
	defer quad.Delete()

	program := resources.Program(cfg.Assets.Shader)
	if err := resources.Err(); err != nil {
		if cfg.Shader.FailFast {
			return fmt.Errorf("building shader: %w", err)
		}
		logger.Warn("shader built with errors", zap.Error(err))
	}

	tex := resources.Texture(cfg.Assets.Texture)
	defer tex.Delete()
	tex.Bind(0)

	pulse := sandbox.NewPulse(0.05)
	for !win.ShouldClose() {
		win.PollEvents()
		resources.Poll()

		r.Clear()

		program.Bind()
		program.SetInt("u_Texture", 0)
		program.SetMat4("u_MVP", mgl32.Ident4())
		program.SetVec4("u_Color", pulse.Next(), 0.3, 0.8, 1.0)
		r.Draw(quad.VA, quad.IB, program)
		r.CheckErrors("draw quad")

		win.SwapBuffers()
	}
	return nil
}
