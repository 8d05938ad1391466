// Package res embeds the default shaders and textures.
package res

import "embed"

// FS holds shaders/*.shader and textures/*.png.
//
//go:embed shaders/*.shader textures/*.png
var FS embed.FS

// Asset names used by the demos.
const (
	BasicShader   = "shaders/Basic.shader"
	TextureShader = "shaders/Texture.shader"
	LogoTexture   = "textures/logo.png"
)
