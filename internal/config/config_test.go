package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Window.Width != 960 || cfg.Window.Height != 540 {
		t.Errorf("expected 960x540, got %dx%d", cfg.Window.Width, cfg.Window.Height)
	}
	if !cfg.Window.VSync {
		t.Error("expected vsync to be true by default")
	}
	if cfg.Window.Platform != PlatformSDL {
		t.Errorf("expected platform sdl, got %s", cfg.Window.Platform)
	}
	if cfg.Render.ClearColor != [4]float32{0.2, 0.3, 0.3, 1.0} {
		t.Errorf("unexpected clear color %v", cfg.Render.ClearColor)
	}
	if cfg.Assets.Shader != "shaders/Basic.shader" {
		t.Errorf("unexpected shader %s", cfg.Assets.Shader)
	}
	if cfg.Shader.FailFast {
		t.Error("expected lenient shader builds by default")
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("expected log level 'info', got %s", cfg.Logging.Level)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config invalid: %v", err)
	}
}

func TestLoadFromFile(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "glsandbox.yaml")

	yamlContent := `
window:
  title: "Learn OpenGL"
  width: 800
  height: 600
  vsync: false
  platform: glfw

render:
  clear_color: [0.1, 0.1, 0.1, 1.0]
  wireframe: true

assets:
  dirs: ["res", "/opt/shaders"]
  shader: shaders/Texture.shader

shader:
  fail_fast: true
  hot_reload: false

sandbox:
  default_scene: "Texture 2D"

logging:
  level: "debug"
  log_file: "glsandbox.log"
`
	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg := Default()
	if err := loadFromFile(cfg, configPath); err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.Window.Title != "Learn OpenGL" {
		t.Errorf("expected title 'Learn OpenGL', got %s", cfg.Window.Title)
	}
	if cfg.Window.Width != 800 || cfg.Window.Height != 600 {
		t.Errorf("expected 800x600, got %dx%d", cfg.Window.Width, cfg.Window.Height)
	}
	if cfg.Window.VSync {
		t.Error("expected vsync to be false")
	}
	if cfg.Window.Platform != PlatformGLFW {
		t.Errorf("expected platform glfw, got %s", cfg.Window.Platform)
	}
	if cfg.Render.ClearColor != [4]float32{0.1, 0.1, 0.1, 1.0} {
		t.Errorf("unexpected clear color %v", cfg.Render.ClearColor)
	}
	if !cfg.Render.Wireframe {
		t.Error("expected wireframe to be true")
	}
	if !cfg.Render.Blending {
		t.Error("expected blending default to survive a partial render section")
	}
	if len(cfg.Assets.Dirs) != 2 || cfg.Assets.Dirs[1] != "/opt/shaders" {
		t.Errorf("unexpected asset dirs %v", cfg.Assets.Dirs)
	}
	if cfg.Assets.Texture != "textures/logo.png" {
		t.Errorf("expected default texture to survive, got %s", cfg.Assets.Texture)
	}
	if !cfg.Shader.FailFast || cfg.Shader.HotReload {
		t.Errorf("unexpected shader config %+v", cfg.Shader)
	}
	if cfg.Sandbox.DefaultScene != "Texture 2D" {
		t.Errorf("unexpected default scene %q", cfg.Sandbox.DefaultScene)
	}
	if cfg.Logging.Level != "debug" || cfg.Logging.LogFile != "glsandbox.log" {
		t.Errorf("unexpected logging config %+v", cfg.Logging)
	}
}

func TestLoadFromFileInvalid(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "invalid.yaml")

	invalidYAML := `
window:
  width: not a number
  invalid syntax here
`
	if err := os.WriteFile(configPath, []byte(invalidYAML), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	if err := loadFromFile(Default(), configPath); err == nil {
		t.Error("expected error loading invalid YAML, got nil")
	}
}

func TestLoadFromFileMissing(t *testing.T) {
	if err := loadFromFile(Default(), "/nonexistent/path/config.yaml"); err == nil {
		t.Error("expected error loading missing file, got nil")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{name: "default", mutate: func(*Config) {}},
		{name: "glfw", mutate: func(c *Config) { c.Window.Platform = PlatformGLFW }},
		{name: "unknown platform", mutate: func(c *Config) { c.Window.Platform = "wayland" }, wantErr: true},
		{name: "zero width", mutate: func(c *Config) { c.Window.Width = 0 }, wantErr: true},
		{name: "no shader", mutate: func(c *Config) { c.Assets.Shader = "" }, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestConfigDir(t *testing.T) {
	dir := ConfigDir()
	if dir == "" {
		t.Error("ConfigDir returned empty string")
	}
	if !filepath.IsAbs(dir) {
		t.Errorf("ConfigDir should return absolute path, got %s", dir)
	}
}

func TestFindConfigFile(t *testing.T) {
	origDir, _ := os.Getwd()
	defer os.Chdir(origDir)

	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	tmpDir := t.TempDir()
	os.Chdir(tmpDir)

	if path := findConfigFile(); path != "" {
		t.Errorf("expected empty path when no config exists, got %s", path)
	}

	if err := os.WriteFile(filepath.Join(tmpDir, "glsandbox.yaml"), []byte("window:\n  width: 800\n"), 0644); err != nil {
		t.Fatalf("failed to create test config: %v", err)
	}
	if path := findConfigFile(); path == "" {
		t.Error("expected to find glsandbox.yaml in current directory")
	}
}

func TestApplyFlags(t *testing.T) {
	tests := []struct {
		name     string
		setup    func()
		verify   func(*testing.T, *Config)
		teardown func()
	}{
		{
			name:  "debug flag",
			setup: func() { *flagDebug = true },
			verify: func(t *testing.T, cfg *Config) {
				if cfg.Logging.Level != "debug" {
					t.Errorf("expected log level 'debug', got %s", cfg.Logging.Level)
				}
			},
			teardown: func() { *flagDebug = false },
		},
		{
			name:  "platform flag",
			setup: func() { *flagPlatform = PlatformGLFW },
			verify: func(t *testing.T, cfg *Config) {
				if cfg.Window.Platform != PlatformGLFW {
					t.Errorf("expected platform glfw, got %s", cfg.Window.Platform)
				}
			},
			teardown: func() { *flagPlatform = "" },
		},
		{
			name:  "shader and scene flags",
			setup: func() { *flagShader = "shaders/Texture.shader"; *flagScene = "Clear Color" },
			verify: func(t *testing.T, cfg *Config) {
				if cfg.Assets.Shader != "shaders/Texture.shader" {
					t.Errorf("unexpected shader %s", cfg.Assets.Shader)
				}
				if cfg.Sandbox.DefaultScene != "Clear Color" {
					t.Errorf("unexpected scene %s", cfg.Sandbox.DefaultScene)
				}
			},
			teardown: func() { *flagShader = ""; *flagScene = "" },
		},
		{
			name:  "fullscreen flag",
			setup: func() { *flagFullscreen = true },
			verify: func(t *testing.T, cfg *Config) {
				if !cfg.Window.Fullscreen {
					t.Error("expected fullscreen to be true with fullscreen flag")
				}
			},
			teardown: func() { *flagFullscreen = false },
		},
		{
			name:  "width and height flags",
			setup: func() { *flagWidth = 1280; *flagHeight = 720 },
			verify: func(t *testing.T, cfg *Config) {
				if cfg.Window.Width != 1280 || cfg.Window.Height != 720 {
					t.Errorf("expected 1280x720, got %dx%d", cfg.Window.Width, cfg.Window.Height)
				}
			},
			teardown: func() { *flagWidth = 0; *flagHeight = 0 },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()
			defer tt.teardown()

			cfg := Default()
			applyFlags(cfg)
			tt.verify(t, cfg)
		})
	}
}

func TestLoadPriority(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "glsandbox.yaml")
	yamlContent := `
window:
  width: 1600
  height: 900
`
	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	*flagConfig = configPath
	*flagWidth = 1920
	defer func() {
		*flagConfig = ""
		*flagWidth = 0
	}()

	cfg, err := Load()
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}
	if cfg.Window.Width != 1920 {
		t.Errorf("expected width 1920 from flag, got %d", cfg.Window.Width)
	}
	if cfg.Window.Height != 900 {
		t.Errorf("expected height 900 from file, got %d", cfg.Window.Height)
	}
}

func TestSaveTo(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "glsandbox.yaml")

	cfg := Default()
	cfg.Window.Platform = PlatformGLFW
	if err := cfg.SaveTo(path); err != nil {
		t.Fatalf("SaveTo: %v", err)
	}

	loaded := Default()
	if err := loadFromFile(loaded, path); err != nil {
		t.Fatalf("loading saved config: %v", err)
	}
	if loaded.Window.Platform != PlatformGLFW {
		t.Errorf("expected saved platform glfw, got %s", loaded.Window.Platform)
	}
}
