package shaders

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"sync/atomic"
	"time"

	"github.com/jhenstridge/go-inotify"
)

// Watcher notices when shader source files are rewritten so that the
// render loop can rebuild its program. GL calls must stay on the render
// thread, so the watcher only raises a flag.
type Watcher struct {
	watcher *inotify.Watcher
	files   map[string]bool
	pending atomic.Bool
}

// Watch starts watching the directories of the given files. Directories
// are watched instead of the files themselves because editors tend to
// replace a file on save rather than write into it.
func Watch(paths ...string) (*Watcher, error) {
	iw, err := inotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("could not create inotify watcher: %w", err)
	}

	w := &Watcher{
		watcher: iw,
		files:   make(map[string]bool),
	}
	dirs := make(map[string]bool)
	for _, p := range paths {
		abs, err := filepath.Abs(p)
		if err != nil {
			_ = iw.Close()
			return nil, err
		}
		w.files[abs] = true
		dirs[filepath.Dir(abs)] = true
	}
	for dir := range dirs {
		_, err = iw.Watch(dir)
		if err != nil {
			_ = iw.Close()
			return nil, fmt.Errorf("could not watch %s: %w", dir, err)
		}
	}

	go w.run()
	return w, nil
}

func (w *Watcher) run() {
	for ev := range w.watcher.Event {
		if !w.relevant(ev.Name, ev.Mask) {
			continue
		}
		slog.Debug(fmt.Sprintf("%s changed", ev.Name), slog.String("module", "shaders"))
		// give the editor time to finish writing sibling files
		time.Sleep(100 * time.Millisecond)
		w.pending.Store(true)
	}
}

func (w *Watcher) relevant(name string, mask inotify.Mask) bool {
	if mask&(inotify.IN_CLOSE_WRITE|inotify.IN_MOVED_TO) == 0 {
		return false
	}
	abs, err := filepath.Abs(name)
	if err != nil {
		return false
	}
	return w.files[abs]
}

// Pending reports whether a watched file changed since the last call.
func (w *Watcher) Pending() bool {
	return w.pending.Swap(false)
}

func (w *Watcher) Close() error {
	return w.watcher.Close()
}
