package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/yzhelezko/thermwin/internal/keybinding"
	"github.com/yzhelezko/thermwin/internal/logging"
)

func newTestManager(t *testing.T) *Manager {
	t.Helper()
	path := filepath.Join(t.TempDir(), DirName, FileName)
	return NewManager(path, logging.Discard())
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.Fullscreen || cfg.Maximised || cfg.Borderless || cfg.Hidden {
		t.Fatalf("unexpected window flags in defaults: %+v", cfg)
	}
	if !cfg.EnableRealTransparency {
		t.Fatal("real transparency should be enabled by default")
	}
	if cfg.Keybindings.HideWindow != "<Super>a" {
		t.Fatalf("hide_window = %q, want <Super>a", cfg.Keybindings.HideWindow)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config does not validate: %v", err)
	}
}

func TestValidateRejectsBadKeybinding(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Keybindings.HideWindow = "<Turbo>a"
	err := cfg.Validate()
	if !errors.Is(err, keybinding.ErrUnknownModifier) {
		t.Fatalf("Validate() = %v, want ErrUnknownModifier", err)
	}
}

func TestLoadCreatesDefaultFile(t *testing.T) {
	m := newTestManager(t)

	cfg, err := m.Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if *cfg != *DefaultConfig() {
		t.Fatalf("Load() = %+v, want defaults", cfg)
	}
	if _, err := os.Stat(m.Path()); err != nil {
		t.Fatalf("default config file not created: %v", err)
	}

	again, err := m.Read()
	if err != nil {
		t.Fatalf("Read() after create: %v", err)
	}
	if *again != *cfg {
		t.Fatalf("Read() = %+v, want %+v", again, cfg)
	}
}

func TestLoadPartialFileKeepsDefaults(t *testing.T) {
	m := newTestManager(t)
	writeConfig(t, m.Path(), "fullscreen: true\nborderless: true\n")

	cfg, err := m.Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if !cfg.Fullscreen || !cfg.Borderless {
		t.Errorf("file values not applied: %+v", cfg)
	}
	if !cfg.EnableRealTransparency || cfg.Keybindings.HideWindow != DefaultHideWindowBinding {
		t.Errorf("defaults lost for fields absent from file: %+v", cfg)
	}
}

func TestLoadFallsBackOnBadFile(t *testing.T) {
	tests := map[string]string{
		"unparsable":     "fullscreen: [not, a, bool\n",
		"bad keybinding": "keybindings:\n  hide_window: \"<Super>\"\n",
	}
	for name, content := range tests {
		t.Run(name, func(t *testing.T) {
			m := newTestManager(t)
			writeConfig(t, m.Path(), content)

			if _, err := m.Read(); err == nil {
				t.Fatal("Read() should fail on a bad file")
			}
			cfg, err := m.Load()
			if err != nil {
				t.Fatalf("Load() error: %v", err)
			}
			if *cfg != *DefaultConfig() {
				t.Fatalf("Load() = %+v, want defaults", cfg)
			}
		})
	}
}

func TestSaveNil(t *testing.T) {
	m := newTestManager(t)
	if err := m.Save(nil); err == nil {
		t.Fatal("Save(nil) should fail")
	}
}

func TestClone(t *testing.T) {
	cfg := DefaultConfig()
	cp := cfg.Clone()
	cp.Keybindings.HideWindow = "<Control>h"
	if cfg.Keybindings.HideWindow != DefaultHideWindowBinding {
		t.Fatal("Clone shares state with the original")
	}
}

func TestWatcherReloadsOnWrite(t *testing.T) {
	m := newTestManager(t)
	if _, err := m.Load(); err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	changes := make(chan *Config, 4)
	w := NewWatcher(m, func(cfg *Config) { changes <- cfg })
	w.delay = 20 * time.Millisecond
	if err := w.Start(); err != nil {
		t.Fatalf("Start() error: %v", err)
	}
	defer w.Stop()

	if err := w.Start(); err == nil {
		t.Fatal("second Start() should fail")
	}

	updated := DefaultConfig()
	updated.Maximised = true
	if err := m.Save(updated); err != nil {
		t.Fatalf("Save() error: %v", err)
	}

	timeout := time.After(3 * time.Second)
	for {
		select {
		case cfg := <-changes:
			if cfg.Maximised {
				return
			}
		case <-timeout:
			t.Fatal("watcher did not deliver the reloaded config")
		}
	}
}

func TestWatcherIgnoresOtherFilesAndBadContent(t *testing.T) {
	m := newTestManager(t)
	if _, err := m.Load(); err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	changes := make(chan *Config, 4)
	w := NewWatcher(m, func(cfg *Config) { changes <- cfg })
	w.delay = 20 * time.Millisecond
	if err := w.Start(); err != nil {
		t.Fatalf("Start() error: %v", err)
	}
	defer w.Stop()

	writeConfig(t, filepath.Join(filepath.Dir(m.Path()), "other.yaml"), "fullscreen: true\n")
	writeConfig(t, m.Path(), "fullscreen: [broken\n")

	select {
	case cfg := <-changes:
		t.Fatalf("unexpected reload: %+v", cfg)
	case <-time.After(300 * time.Millisecond):
	}
}

func TestWatcherNoReloadAfterStop(t *testing.T) {
	m := newTestManager(t)
	if _, err := m.Load(); err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	changes := make(chan *Config, 4)
	w := NewWatcher(m, func(cfg *Config) { changes <- cfg })
	w.delay = 10 * time.Millisecond
	if err := w.Start(); err != nil {
		t.Fatalf("Start() error: %v", err)
	}
	w.Stop()

	// An event still being handled when Stop ran must not arm a reload
	w.handleEvent(fsnotify.Event{Name: m.Path(), Op: fsnotify.Write})
	w.reload()

	select {
	case cfg := <-changes:
		t.Fatalf("reload after Stop: %+v", cfg)
	case <-time.After(100 * time.Millisecond):
	}
}

func TestWatcherStopWithoutStart(t *testing.T) {
	m := newTestManager(t)
	w := NewWatcher(m, func(*Config) {})
	w.Stop()
}

func writeConfig(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), DirMode); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), FileMode); err != nil {
		t.Fatal(err)
	}
}
