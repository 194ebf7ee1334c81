package window

// Surface is the toolkit window the controller drives. All calls happen on
// the toolkit's main thread.
type Surface interface {
	Fullscreen()
	Unfullscreen()
	Maximize()
	Unmaximize()
	SetDecorated(decorated bool)
	Hide()
	Iconify()
	Show()
	// UseVisual switches to the screen's RGBA visual when rgba is true and
	// to the system visual otherwise. It returns ErrNoMatchingVisual and
	// leaves the window untouched when the screen has no such visual.
	UseVisual(rgba bool) error
}

// HotkeyBinder registers global hotkeys. fn must be delivered on the
// toolkit's main thread.
type HotkeyBinder interface {
	Bind(accel string, fn func()) error
}

// Handlers are the toolkit signal callbacks of a top-level window
type Handlers interface {
	OnKeyPress(ev KeyEvent) bool
	OnCloseRequest() bool
	OnDestroy()
	OnWindowStateChanged(flags StateFlags) bool
}
