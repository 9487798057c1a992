package colorwidgets

import (
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// watchDebounce coalesces the event bursts editors produce when saving
// (truncate+write, or temp file plus rename).
const watchDebounce = 100 * time.Millisecond

// PaletteWatcher reloads a palette file whenever an external tool rewrites
// it, so a palette edited in another program stays live in the widget.
//
// The callback runs on the watcher's goroutine. Hosts with a UI thread must
// hand the loaded palette off to that thread (typically via
// [Palette.ReplaceFrom]) before touching any widget.
type PaletteWatcher struct {
	watcher *fsnotify.Watcher
	path    string
	onLoad  func(*Palette, error)

	mu      sync.Mutex
	pending *time.Timer
	closed  bool
	done    chan struct{}
}

// WatchPaletteFile starts watching path and calls onLoad with the freshly
// parsed palette (or the error) after each change settles. The containing
// directory is watched rather than the file itself, so saves that replace
// the file are still observed.
func WatchPaletteFile(path string, onLoad func(*Palette, error)) (*PaletteWatcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := watcher.Add(filepath.Dir(abs)); err != nil {
		watcher.Close()
		return nil, err
	}

	pw := &PaletteWatcher{
		watcher: watcher,
		path:    abs,
		onLoad:  onLoad,
		done:    make(chan struct{}),
	}
	go pw.loop()
	return pw, nil
}

func (pw *PaletteWatcher) loop() {
	for {
		select {
		case <-pw.done:
			return

		case ev, ok := <-pw.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(ev.Name) != pw.path {
				continue
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			pw.scheduleReload()

		case err, ok := <-pw.watcher.Errors:
			if !ok {
				return
			}
			pw.onLoad(nil, err)
		}
	}
}

func (pw *PaletteWatcher) scheduleReload() {
	pw.mu.Lock()
	defer pw.mu.Unlock()
	if pw.closed {
		return
	}
	if pw.pending != nil {
		pw.pending.Stop()
	}
	pw.pending = time.AfterFunc(watchDebounce, func() {
		pw.onLoad(LoadPaletteFile(pw.path))
	})
}

// Close stops the watcher. Safe to call more than once.
func (pw *PaletteWatcher) Close() error {
	pw.mu.Lock()
	if pw.closed {
		pw.mu.Unlock()
		return nil
	}
	pw.closed = true
	if pw.pending != nil {
		pw.pending.Stop()
	}
	close(pw.done)
	pw.mu.Unlock()
	return pw.watcher.Close()
}
