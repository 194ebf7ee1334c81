package main

import (
	"github.com/gotk3/gotk3/glib"
	"github.com/gotk3/gotk3/gtk"
	"github.com/sirupsen/logrus"

	"github.com/yzhelezko/thermwin/internal/config"
	"github.com/yzhelezko/thermwin/internal/gtkwin"
	"github.com/yzhelezko/thermwin/internal/hotkey"
	"github.com/yzhelezko/thermwin/internal/window"
)

// App wires the window controller to GTK, the hotkey service and the
// config watcher.
type App struct {
	log     *logrus.Logger
	configs *config.Manager
	hotkeys *hotkey.Service
	watcher *config.Watcher
	ctrl    *window.Controller
}

// NewApp creates a new App application struct
func NewApp(log *logrus.Logger, configs *config.Manager) *App {
	return &App{
		log:     log,
		configs: configs,
	}
}

// Run creates the window and blocks in the GTK main loop until it is destroyed
func (a *App) Run(cfg *config.Config) error {
	prepareDisplay(a.log)
	gtk.Init(nil)

	win, err := gtkwin.New(AppTitle)
	if err != nil {
		return err
	}

	a.ctrl = window.NewController(win, a.hotkeyBinder(), a.log)
	win.Attach(a.ctrl)
	win.OnDestroyed(gtk.MainQuit)
	a.ctrl.Initialize(cfg)

	a.watcher = config.NewWatcher(a.configs, func(cfg *config.Config) {
		glib.IdleAdd(func() bool {
			a.ctrl.Reconfigure(cfg)
			return false
		})
	})
	if err := a.watcher.Start(); err != nil {
		a.log.WithError(err).Warn("Config reload disabled")
	}

	gtk.Main()
	a.shutdown()
	return nil
}

// hotkeyBinder probes for a global hotkey service. A nil binder makes the
// controller fall back to iconifying.
func (a *App) hotkeyBinder() window.HotkeyBinder {
	if !hotkey.Available() {
		a.log.Debug("No global hotkey service in this session")
		return nil
	}
	a.hotkeys = hotkey.NewService(a.log)
	return mainLoopBinder{svc: a.hotkeys}
}

func (a *App) shutdown() {
	if a.watcher != nil {
		a.watcher.Stop()
	}
	if a.hotkeys != nil {
		if err := a.hotkeys.Close(); err != nil {
			a.log.WithError(err).Warn("Failed to release global hotkeys")
		}
	}
	a.log.Debug("Shutdown complete")
}

// mainLoopBinder delivers hotkey presses on the GTK main loop
type mainLoopBinder struct {
	svc *hotkey.Service
}

func (b mainLoopBinder) Bind(accel string, fn func()) error {
	return b.svc.Bind(accel, func() {
		glib.IdleAdd(func() bool {
			fn()
			return false
		})
	})
}
