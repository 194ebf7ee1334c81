package gtkwin

import (
	"fmt"

	"github.com/gotk3/gotk3/gdk"
	"github.com/gotk3/gotk3/gtk"

	"github.com/yzhelezko/thermwin/internal/window"
)

// Window is a GTK top-level window driven by a window.Controller
type Window struct {
	win *gtk.Window
}

var _ window.Surface = (*Window)(nil)

// New creates a top-level window. gtk.Init must have been called.
func New(title string) (*Window, error) {
	win, err := gtk.WindowNew(gtk.WINDOW_TOPLEVEL)
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}
	win.SetTitle(title)
	win.SetResizable(true)
	return &Window{win: win}, nil
}

func (w *Window) Fullscreen()                 { w.win.Fullscreen() }
func (w *Window) Unfullscreen()               { w.win.Unfullscreen() }
func (w *Window) Maximize()                   { w.win.Maximize() }
func (w *Window) Unmaximize()                 { w.win.Unmaximize() }
func (w *Window) SetDecorated(decorated bool) { w.win.SetDecorated(decorated) }
func (w *Window) Hide()                       { w.win.Hide() }
func (w *Window) Iconify()                    { w.win.Iconify() }
func (w *Window) Show()                       { w.win.ShowAll() }

// UseVisual picks the screen's RGBA visual for real transparency, or the
// system visual otherwise.
func (w *Window) UseVisual(rgba bool) error {
	screen := w.win.GetScreen()
	if screen == nil {
		return window.ErrNoMatchingVisual
	}

	var (
		visual *gdk.Visual
		err    error
	)
	if rgba {
		visual, err = screen.GetRGBAVisual()
	} else {
		visual, err = screen.GetSystemVisual()
	}
	if err != nil || visual == nil {
		return window.ErrNoMatchingVisual
	}

	w.win.SetAppPaintable(rgba)
	w.win.SetVisual(visual)
	return nil
}
