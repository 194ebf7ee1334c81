package gtkwin

import (
	"github.com/gotk3/gotk3/gdk"
	"github.com/gotk3/gotk3/gtk"

	"github.com/yzhelezko/thermwin/internal/window"
)

// Attach connects the window's GTK signals to h
func (w *Window) Attach(h window.Handlers) {
	w.win.Connect("key-press-event", func(_ *gtk.Window, ev *gdk.Event) bool {
		key := gdk.EventKeyNewFromEvent(ev)
		return h.OnKeyPress(window.KeyEvent{
			Keyval: key.KeyVal(),
			State:  key.State(),
		})
	})

	w.win.Connect("delete-event", func(_ *gtk.Window, _ *gdk.Event) bool {
		return h.OnCloseRequest()
	})

	w.win.Connect("destroy", func() {
		h.OnDestroy()
	})

	w.win.Connect("window-state-event", func(_ *gtk.Window, ev *gdk.Event) bool {
		st := gdk.EventWindowStateNewFromEvent(ev)
		return h.OnWindowStateChanged(window.StateFlags(st.NewWindowState()))
	})
}

// OnDestroyed runs fn after the window is destroyed
func (w *Window) OnDestroyed(fn func()) {
	w.win.Connect("destroy", func() {
		fn()
	})
}
