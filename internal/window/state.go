package window

import "errors"

// ErrNoMatchingVisual is returned by a Surface when the display has no visual
// for the requested transparency mode.
var ErrNoMatchingVisual = errors.New("window: no matching visual")

// StateFlags mirrors the GdkWindowState bitmask
type StateFlags uint32

const (
	StateWithdrawn StateFlags = 1 << iota
	StateIconified
	StateMaximized
	StateSticky
	StateFullscreen
	StateAbove
	StateBelow
	StateFocused
	StateTiled
)

// Has reports whether flag is set
func (s StateFlags) Has(flag StateFlags) bool {
	return s&flag != 0
}

// HideStrategy is how the window is taken off screen
type HideStrategy int

const (
	// HideStrategyHide removes the window entirely; the global hotkey brings it back.
	HideStrategyHide HideStrategy = iota
	// HideStrategyIconify minimises the window to the taskbar.
	HideStrategyIconify
)

func (h HideStrategy) String() string {
	switch h {
	case HideStrategyHide:
		return "hide"
	case HideStrategyIconify:
		return "iconify"
	default:
		return "unknown"
	}
}

// PresentationState is the window state tracked by the controller
type PresentationState struct {
	IsFullscreen bool
	IsMaximised  bool
	HotkeyBound  bool
	HideStrategy HideStrategy
}

// KeyEvent is a key press delivered by the toolkit
type KeyEvent struct {
	Keyval uint
	State  uint
}
