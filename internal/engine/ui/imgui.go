// Package ui wraps the ImGui SDL backend used by the sandbox.
package ui

import (
	"errors"
	"fmt"

	"github.com/AllenDang/cimgui-go/backend"
	"github.com/AllenDang/cimgui-go/backend/sdlbackend"
	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/sqweek/dialog"
	"go.uber.org/zap"

	"github.com/Faultbox/glsandbox/internal/logger"
)

// Backend owns the ImGui window, its OpenGL context and the frame loop.
type Backend struct {
	backend backend.Backend[sdlbackend.SDLWindowFlags]
	width   int
	height  int
	log     *zap.Logger

	// picked receives file dialog results; dialogs run off the render thread.
	picked chan string
}

// NewBackend creates the ImGui backend and its window.
// OpenGL function pointers still need loading (gldevice.New) afterwards.
func NewBackend(title string, width, height int) (*Backend, error) {
	b := &Backend{
		width:  width,
		height: height,
		log:    logger.Named("ui"),
		picked: make(chan string, 1),
	}

	var err error
	b.backend, err = backend.CreateBackend(sdlbackend.NewSDLBackend())
	if err != nil {
		return nil, fmt.Errorf("create backend: %w", err)
	}

	b.backend.SetAfterCreateContextHook(func() {
		io := imgui.CurrentIO()
		io.SetConfigFlags(io.ConfigFlags() | imgui.ConfigFlagsNavEnableKeyboard)
	})
	b.backend.SetBgColor(imgui.NewVec4(0.1, 0.1, 0.12, 1.0))
	b.backend.CreateWindow(title, width, height)

	b.log.Info("ui backend created", zap.String("title", title), zap.Int("width", width), zap.Int("height", height))
	return b, nil
}

// Run runs the frame loop until the window closes. frame is called once per
// frame between ImGui's NewFrame and Render.
func (b *Backend) Run(frame func()) {
	b.backend.Run(frame)
}

// Close requests the frame loop to stop.
func (b *Backend) Close() {
	b.backend.SetShouldClose(true)
}

// Shutdown destroys the window and ImGui context of a backend whose frame
// loop never ran. The backend only tears itself down at the end of Run, so
// Run is entered with closing already requested.
func (b *Backend) Shutdown() {
	b.backend.SetShouldClose(true)
	b.backend.Run(func() {})
	b.log.Info("ui backend shut down")
}

// SetWindowTitle updates the window title.
func (b *Backend) SetWindowTitle(title string) {
	b.backend.SetWindowTitle(title)
}

// OpenFileDialog shows a native file picker for shader files without
// blocking the frame loop. The result is delivered through PickedFile.
func (b *Backend) OpenFileDialog(title string) {
	go func() {
		filename, err := dialog.File().
			Filter("Shader files", "shader", "glsl").
			Filter("All files", "*").
			Title(title).
			Load()
		if err != nil {
			if !errors.Is(err, dialog.ErrCancelled) {
				b.log.Warn("file dialog failed", zap.Error(err))
			}
			return
		}

		select {
		case b.picked <- filename:
		default:
		}
	}()
}

// PickedFile returns a file chosen in the dialog, if one is waiting.
func (b *Backend) PickedFile() (string, bool) {
	select {
	case name := <-b.picked:
		return name, true
	default:
		return "", false
	}
}

// Image draws an OpenGL texture flipped to OpenGL's bottom-left origin,
// scaled to fit the available content region while keeping its aspect ratio.
func Image(textureID uint32, width, height float32) {
	avail := imgui.ContentRegionAvail()
	if width <= 0 || height <= 0 || avail.X <= 0 || avail.Y <= 0 {
		return
	}

	scale := min(avail.X/width, avail.Y/height)
	ref := imgui.NewTextureRefTextureID(imgui.TextureID(textureID))
	imgui.ImageWithBgV(
		*ref,
		imgui.NewVec2(width*scale, height*scale),
		imgui.NewVec2(0, 1),
		imgui.NewVec2(1, 0),
		imgui.NewVec4(0, 0, 0, 1),
		imgui.NewVec4(1, 1, 1, 1),
	)
}

// IsKeyPressed checks if a key was pressed this frame.
func IsKeyPressed(key imgui.Key) bool {
	return imgui.IsKeyChordPressed(imgui.KeyChord(key))
}

// IsKeyDown checks if a key is held down.
func IsKeyDown(key imgui.Key) bool {
	return imgui.IsKeyDown(key)
}
