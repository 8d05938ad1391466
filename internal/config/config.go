// Package config handles application configuration loading and management.
package config

// Config holds all application settings.
type Config struct {
	Window  WindowConfig  `yaml:"window"`
	Render  RenderConfig  `yaml:"render"`
	Assets  AssetsConfig  `yaml:"assets"`
	Shader  ShaderConfig  `yaml:"shader"`
	Sandbox SandboxConfig `yaml:"sandbox"`
	Logging LoggingConfig `yaml:"logging"`
}

// Window platforms.
const (
	PlatformSDL  = "sdl"
	PlatformGLFW = "glfw"
)

// WindowConfig holds display settings.
type WindowConfig struct {
	Title      string `yaml:"title"`
	Width      int    `yaml:"width"`
	Height     int    `yaml:"height"`
	Fullscreen bool   `yaml:"fullscreen"`
	VSync      bool   `yaml:"vsync"`
	Platform   string `yaml:"platform"` // "sdl" or "glfw"
}

// RenderConfig holds default render state.
type RenderConfig struct {
	ClearColor [4]float32 `yaml:"clear_color"`
	Blending   bool       `yaml:"blending"`
	Wireframe  bool       `yaml:"wireframe"`
}

// AssetsConfig lists where shaders and textures come from.
// Dirs are searched after each other, later entries first; the embedded
// defaults are always searched last.
type AssetsConfig struct {
	Dirs    []string `yaml:"dirs"`
	Shader  string   `yaml:"shader"`
	Texture string   `yaml:"texture"`
}

// ShaderConfig controls how shader programs are built.
type ShaderConfig struct {
	FailFast  bool `yaml:"fail_fast"`
	HotReload bool `yaml:"hot_reload"`
}

// SandboxConfig holds test menu settings.
type SandboxConfig struct {
	DefaultScene string `yaml:"default_scene"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Window: WindowConfig{
			Title:    "glsandbox",
			Width:    960,
			Height:   540,
			VSync:    true,
			Platform: PlatformSDL,
		},
		Render: RenderConfig{
			ClearColor: [4]float32{0.2, 0.3, 0.3, 1.0},
			Blending:   true,
		},
		Assets: AssetsConfig{
			Dirs:    []string{"res"},
			Shader:  "shaders/Basic.shader",
			Texture: "textures/logo.png",
		},
		Shader: ShaderConfig{
			HotReload: true,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}
