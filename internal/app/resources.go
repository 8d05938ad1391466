// Package app wires assets, shader programs and hot reloading together for
// the demo binaries.
package app

import (
	"fmt"
	"image"

	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/Faultbox/glsandbox/internal/assets"
	"github.com/Faultbox/glsandbox/internal/config"
	"github.com/Faultbox/glsandbox/internal/engine/renderer"
	"github.com/Faultbox/glsandbox/internal/engine/shader"
	"github.com/Faultbox/glsandbox/internal/engine/texture"
	"github.com/Faultbox/glsandbox/internal/logger"
	"github.com/Faultbox/glsandbox/res"
)

// Resources owns the shader programs and textures of a demo and reloads
// programs whose source files change on disk.
type Resources struct {
	backend shader.Backend
	assets  *assets.Manager
	cfg     config.ShaderConfig
	log     *zap.Logger

	programs []*watched
}

type watched struct {
	name    string
	program *shader.Program
	watcher *shader.Watcher
}

// NewResources searches dirs in order of increasing priority, falling back
// to the embedded defaults.
func NewResources(b shader.Backend, dirs []string, cfg config.ShaderConfig) (*Resources, error) {
	m := assets.NewManager(res.FS)
	for _, dir := range dirs {
		if err := m.AddDir(dir); err != nil {
			return nil, err
		}
	}
	return &Resources{
		backend: b,
		assets:  m,
		cfg:     cfg,
		log:     logger.Named("app"),
	}, nil
}

func (r *Resources) shaderOptions() []shader.Option {
	opts := []shader.Option{shader.WithLogger(logger.Named("shader"))}
	if r.cfg.FailFast {
		opts = append(opts, shader.FailFast())
	}
	return opts
}

// Program builds the named shader. Files found on disk are built from their
// path, and watched when hot reloading is on; embedded files are compiled
// from memory. Build failures are logged and reported by the program's Err.
func (r *Resources) Program(name string) *shader.Program {
	if path, ok := r.assets.Resolve(name); ok {
		return r.programFile(name, path)
	}

	data, err := r.assets.Load(name)
	if err != nil {
		r.log.Error("failed to load shader", zap.String("name", name), zap.Error(err))
	}
	p := shader.Compile(r.backend, shader.SplitString(string(data)), r.shaderOptions()...)
	r.programs = append(r.programs, &watched{name: name, program: p})
	return p
}

// ProgramFile builds a shader from a file outside the asset directories.
func (r *Resources) ProgramFile(path string) *shader.Program {
	return r.programFile(path, path)
}

func (r *Resources) programFile(name, path string) *shader.Program {
	p := shader.New(r.backend, path, r.shaderOptions()...)
	w := &watched{name: name, program: p}

	if r.cfg.HotReload {
		watcher, err := shader.Watch(path, logger.Named("shader"))
		if err != nil {
			r.log.Warn("hot reload disabled for shader", zap.String("path", path), zap.Error(err))
		} else {
			w.watcher = watcher
		}
	}

	r.programs = append(r.programs, w)
	return p
}

// Image decodes the named texture. A checkerboard is returned in its place
// when the file is missing or cannot be decoded, so demos keep running.
func (r *Resources) Image(name string) *image.RGBA {
	data, err := r.assets.Load(name)
	if err == nil {
		var img *image.RGBA
		var format string
		img, format, err = texture.Decode(data, texture.DefaultOptions())
		if err == nil {
			r.log.Debug("texture decoded",
				zap.String("name", name),
				zap.String("format", format),
				zap.Int("width", img.Bounds().Dx()),
				zap.Int("height", img.Bounds().Dy()),
			)
			return img
		}
	}
	r.log.Warn("using placeholder texture", zap.String("name", name), zap.Error(err))
	return texture.Checkerboard(64, 8)
}

// Texture decodes the named texture and uploads it.
// The OpenGL context must be current.
func (r *Resources) Texture(name string) *renderer.Texture {
	return renderer.NewTexture(r.Image(name))
}

// Poll reloads every watched program whose source changed since the last
// call. It never blocks and must be called on the render thread.
func (r *Resources) Poll() int {
	reloaded := 0
	for _, w := range r.programs {
		if w.watcher == nil {
			continue
		}
		select {
		case path := <-w.watcher.Changed():
			r.assets.Invalidate(w.name)
			if err := w.program.Reload(); err == nil {
				reloaded++
			} else {
				r.log.Warn("hot reload failed", zap.String("name", w.name), zap.String("path", path), zap.Error(err))
			}
		default:
		}
	}
	return reloaded
}

// Release stops tracking p and closes it.
func (r *Resources) Release(p *shader.Program) error {
	for i, w := range r.programs {
		if w.program != p {
			continue
		}
		r.programs = append(r.programs[:i], r.programs[i+1:]...)
		return w.close()
	}
	p.Close()
	return nil
}

// Err combines the build errors of every tracked program.
func (r *Resources) Err() error {
	var errs error
	for _, w := range r.programs {
		if err := w.program.Err(); err != nil {
			errs = multierr.Append(errs, fmt.Errorf("%s: %w", w.name, err))
		}
	}
	return errs
}

// Close closes every tracked program and watcher.
func (r *Resources) Close() error {
	var errs error
	for _, w := range r.programs {
		errs = multierr.Append(errs, w.close())
	}
	r.programs = nil
	return errs
}

func (w *watched) close() error {
	w.program.Close()
	if w.watcher != nil {
		return w.watcher.Close()
	}
	return nil
}
