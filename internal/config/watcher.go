package config

import (
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/sirupsen/logrus"
)

const watcherStopTimeout = 2 * time.Second

// Watcher reloads the config file when it changes on disk.
// The callback runs on the watcher's own goroutine.
type Watcher struct {
	manager  *Manager
	onChange func(*Config)
	log      logrus.FieldLogger
	delay    time.Duration

	stopChan chan struct{}
	doneChan chan struct{}

	debounceMutex sync.Mutex
	debounceTimer *time.Timer
	stopped       bool // guarded by debounceMutex
}

// NewWatcher creates a watcher for the manager's config file
func NewWatcher(m *Manager, onChange func(*Config)) *Watcher {
	return &Watcher{
		manager:  m,
		onChange: onChange,
		log:      m.log,
		delay:    DebounceDelay,
	}
}

// Start begins monitoring the config directory. Editors often replace the
// file instead of writing it, so the directory is watched, not the file.
func (w *Watcher) Start() error {
	if w.stopChan != nil {
		return fmt.Errorf("config watcher already started")
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create file watcher: %w", err)
	}

	dir := filepath.Dir(w.manager.Path())
	if err := watcher.Add(dir); err != nil {
		watcher.Close()
		return fmt.Errorf("failed to watch config directory: %w", err)
	}

	w.stopChan = make(chan struct{})
	w.doneChan = make(chan struct{})
	w.debounceMutex.Lock()
	w.stopped = false
	w.debounceMutex.Unlock()

	go func() {
		defer func() {
			if r := recover(); r != nil {
				w.log.Errorf("Config watcher panic recovered: %v", r)
			}
			watcher.Close()
			close(w.doneChan)
		}()

		for {
			select {
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				w.handleEvent(event)

			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				w.log.WithError(err).Warn("Config watcher error")

			case <-w.stopChan:
				return
			}
		}
	}()

	w.log.WithField("dir", dir).Debug("Config watcher started")
	return nil
}

// Stop stops the watcher and waits for its goroutine to exit
func (w *Watcher) Stop() {
	if w.stopChan == nil {
		return
	}

	w.debounceMutex.Lock()
	w.stopped = true
	if w.debounceTimer != nil {
		w.debounceTimer.Stop()
		w.debounceTimer = nil
	}
	w.debounceMutex.Unlock()

	close(w.stopChan)

	select {
	case <-w.doneChan:
	case <-time.After(watcherStopTimeout):
		w.log.Warn("Config watcher goroutine did not exit in time")
	}

	w.stopChan = nil
	w.log.Debug("Config watcher stopped")
}

func (w *Watcher) handleEvent(event fsnotify.Event) {
	if filepath.Base(event.Name) != filepath.Base(w.manager.Path()) {
		return
	}
	if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
		return
	}

	w.log.WithField("op", event.Op.String()).Debug("Config file event")

	w.debounceMutex.Lock()
	defer w.debounceMutex.Unlock()
	if w.stopped {
		return
	}
	if w.debounceTimer != nil {
		w.debounceTimer.Stop()
	}
	w.debounceTimer = time.AfterFunc(w.delay, w.reload)
}

func (w *Watcher) isStopped() bool {
	w.debounceMutex.Lock()
	defer w.debounceMutex.Unlock()
	return w.stopped
}

func (w *Watcher) reload() {
	if w.isStopped() {
		return
	}
	cfg, err := w.manager.Read()
	if err != nil {
		w.log.WithError(err).Warn("Ignoring config change")
		return
	}
	w.log.Info("Config reloaded")
	w.onChange(cfg)
}
