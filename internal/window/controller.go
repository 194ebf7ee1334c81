package window

import (
	"errors"

	"github.com/sirupsen/logrus"

	"github.com/yzhelezko/thermwin/internal/config"
)

// Controller owns the presentation state of the top-level window.
// It is not safe for concurrent use; every method is expected to run on the
// toolkit's main thread.
type Controller struct {
	*Container

	surface     Surface
	binder      HotkeyBinder
	log         logrus.FieldLogger
	state       PresentationState
	initialized bool
}

var _ Handlers = (*Controller)(nil)

// NewController creates a controller for surface. binder may be nil when no
// hotkey service is available.
func NewController(surface Surface, binder HotkeyBinder, log logrus.FieldLogger) *Controller {
	return &Controller{
		Container: NewContainer(nil),
		surface:   surface,
		binder:    binder,
		log:       log.WithField("component", "window"),
		state:     PresentationState{HideStrategy: HideStrategyIconify},
	}
}

// State returns a copy of the current presentation state
func (c *Controller) State() PresentationState {
	return c.state
}

// Initialize binds the hide hotkey, picks the hide strategy and applies cfg.
// Only the first call has any effect.
func (c *Controller) Initialize(cfg *config.Config) {
	if c.initialized {
		c.log.Warn("Window already initialized")
		return
	}
	c.initialized = true
	c.setConfig(cfg)

	c.state.HotkeyBound = c.bindHideHotkey(cfg.Keybindings.HideWindow)
	if c.state.HotkeyBound {
		c.state.HideStrategy = HideStrategyHide
	} else {
		c.state.HideStrategy = HideStrategyIconify
	}

	c.setFullscreen(cfg.Fullscreen)
	c.setMaximised(cfg.Maximised)
	c.setBorderless(cfg.Borderless)
	c.setRealTransparency(cfg.EnableRealTransparency)
	c.setHidden(cfg.Hidden)
}

// Reconfigure applies the appearance settings of a reloaded configuration.
// The hotkey and the hide strategy stay as they were at startup, and the
// visual can only be chosen before the window is realized.
func (c *Controller) Reconfigure(cfg *config.Config) {
	if !c.initialized {
		return
	}
	current := c.Config()
	if cfg.Keybindings.HideWindow != current.Keybindings.HideWindow {
		c.log.WithField("hide_window", cfg.Keybindings.HideWindow).
			Info("hide_window keybinding changed, restart to apply")
	}
	if cfg.EnableRealTransparency != current.EnableRealTransparency {
		c.log.WithField("enable_real_transparency", cfg.EnableRealTransparency).
			Info("Transparency changed, restart to apply")
	}
	c.setConfig(cfg)
	c.setFullscreen(cfg.Fullscreen)
	c.setMaximised(cfg.Maximised)
	c.setBorderless(cfg.Borderless)
}

func (c *Controller) bindHideHotkey(accel string) bool {
	if c.binder == nil {
		c.log.Debug("Hotkey service unavailable, hide_window will iconify")
		return false
	}
	if err := c.binder.Bind(accel, c.OnHotkeyToggle); err != nil {
		c.log.WithError(err).WithField("hide_window", accel).
			Debug("Unable to bind hide_window key, another instance has it")
		return false
	}
	return true
}

func (c *Controller) setFullscreen(value bool) {
	if value {
		c.surface.Fullscreen()
	} else {
		c.surface.Unfullscreen()
	}
}

func (c *Controller) setMaximised(value bool) {
	if value {
		c.surface.Maximize()
	} else {
		c.surface.Unmaximize()
	}
}

func (c *Controller) setBorderless(value bool) {
	c.surface.SetDecorated(!value)
}

func (c *Controller) setRealTransparency(value bool) {
	err := c.surface.UseVisual(value)
	switch {
	case err == nil:
	case errors.Is(err, ErrNoMatchingVisual):
		c.log.WithField("rgba", value).Debug("No matching visual, keeping current one")
	default:
		c.log.WithError(err).Warn("Failed to set window visual")
	}
}

// setHidden applies the hidden flag using the hide strategy. An iconified
// window is still shown so it maps minimised.
func (c *Controller) setHidden(value bool) {
	if !value {
		c.surface.Show()
		return
	}
	switch c.state.HideStrategy {
	case HideStrategyHide:
		c.surface.Hide()
	case HideStrategyIconify:
		c.surface.Iconify()
		c.surface.Show()
	}
}

// OnWindowStateChanged mirrors the window manager's fullscreen and maximised
// flags. It never consumes the event.
func (c *Controller) OnWindowStateChanged(flags StateFlags) bool {
	c.state.IsFullscreen = flags.Has(StateFullscreen)
	c.state.IsMaximised = flags.Has(StateMaximized)
	c.log.WithFields(logrus.Fields{
		"fullscreen": c.state.IsFullscreen,
		"maximised":  c.state.IsMaximised,
	}).Debug("Window state changed")
	return false
}

// OnKeyPress handles a keyboard event. No bindings are dispatched yet.
func (c *Controller) OnKeyPress(ev KeyEvent) bool {
	return false
}

// OnCloseRequest handles a window close request. Returning false lets the
// window close.
func (c *Controller) OnCloseRequest() bool {
	return false
}

// OnDestroy handles window destruction.
func (c *Controller) OnDestroy() {}

// OnHotkeyToggle handles the global hide/show hotkey.
func (c *Controller) OnHotkeyToggle() {}
