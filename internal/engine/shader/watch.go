package shader

import (
	"fmt"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"

	"github.com/Faultbox/glsandbox/internal/logger"
)

// Watcher reports changes to a shader source file.
//
// The directory is watched rather than the file so that editors which save
// by renaming a temporary file over the original keep being noticed.
type Watcher struct {
	fsw     *fsnotify.Watcher
	path    string
	changed chan string
	done    chan struct{}
	log     *zap.Logger
}

// Watch starts watching path. Reloading is left to the receiver of Changed,
// which must run on the render thread.
func Watch(path string, log *zap.Logger) (*Watcher, error) {
	if log == nil {
		log = logger.Named("shader")
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("creating watcher: %w", err)
	}
	if err := fsw.Add(filepath.Dir(abs)); err != nil {
		fsw.Close()
		return nil, fmt.Errorf("watching %s: %w", path, err)
	}

	w := &Watcher{
		fsw:     fsw,
		path:    abs,
		changed: make(chan string, 1),
		done:    make(chan struct{}),
		log:     log,
	}
	go w.loop()
	return w, nil
}

// Changed delivers the watched path after it was written, replaced or removed.
// Notifications that arrive before the previous one was received are merged.
func (w *Watcher) Changed() <-chan string {
	return w.changed
}

// Close stops the watcher.
func (w *Watcher) Close() error {
	err := w.fsw.Close()
	<-w.done
	return err
}

func (w *Watcher) loop() {
	defer close(w.done)
	for {
		select {
		case ev, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if filepath.Clean(ev.Name) != w.path {
				continue
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Rename) && !ev.Has(fsnotify.Remove) {
				continue
			}
			select {
			case w.changed <- w.path:
			default:
			}
		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			w.log.Warn("shader watcher error", zap.String("path", w.path), zap.Error(err))
		}
	}
}
