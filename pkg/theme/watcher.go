package theme

import (
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Watcher reloads a theme file when it changes on disk, so a host can pick
// up theme edits without restarting. Rapid successive writes are debounced
// to one reload.
type Watcher struct {
	fsWatcher *fsnotify.Watcher
	path      string
	debounce  time.Duration

	// Event channels.
	themes chan *Theme
	errors chan error

	// Control.
	done     chan struct{}
	wg       sync.WaitGroup
	stopOnce sync.Once
}

const defaultDebounce = 200 * time.Millisecond

// NewWatcher creates a watcher for the given theme file. The file's
// directory is watched rather than the file itself, so editors that
// replace the file on save keep working.
func NewWatcher(path string) (*Watcher, error) {
	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	w := &Watcher{
		fsWatcher: fsWatcher,
		path:      filepath.Clean(path),
		debounce:  defaultDebounce,
		themes:    make(chan *Theme, 1),
		errors:    make(chan error, 10),
		done:      make(chan struct{}),
	}
	return w, nil
}

// Start begins watching. Successfully reloaded themes arrive on Themes;
// load or validation failures arrive on Errors and leave the previous
// theme in effect.
func (w *Watcher) Start() error {
	if err := w.fsWatcher.Add(filepath.Dir(w.path)); err != nil {
		return err
	}
	w.wg.Add(1)
	go w.run()
	return nil
}

// Themes returns the channel of successfully reloaded themes.
func (w *Watcher) Themes() <-chan *Theme {
	return w.themes
}

// Errors returns the channel of reload failures.
func (w *Watcher) Errors() <-chan error {
	return w.errors
}

// Stop ends watching and releases the underlying file watcher. Safe to
// call more than once.
func (w *Watcher) Stop() {
	w.stopOnce.Do(func() {
		close(w.done)
		w.fsWatcher.Close()
		w.wg.Wait()
	})
}

func (w *Watcher) run() {
	defer w.wg.Done()

	var timer *time.Timer
	var timerC <-chan time.Time

	for {
		select {
		case <-w.done:
			return

		case event, ok := <-w.fsWatcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			// Debounce: wait for the file to settle.
			if timer == nil {
				timer = time.NewTimer(w.debounce)
				timerC = timer.C
			} else {
				timer.Reset(w.debounce)
			}

		case <-timerC:
			timer = nil
			timerC = nil
			w.reload()

		case err, ok := <-w.fsWatcher.Errors:
			if !ok {
				return
			}
			w.reportError(err)
		}
	}
}

func (w *Watcher) reload() {
	t, err := Load(w.path)
	if err != nil {
		w.reportError(err)
		return
	}
	// Keep only the latest theme if the consumer lags.
	select {
	case <-w.themes:
	default:
	}
	select {
	case w.themes <- t:
	case <-w.done:
	}
}

func (w *Watcher) reportError(err error) {
	select {
	case w.errors <- err:
	default:
	}
}
