package hotkey

import (
	"fmt"
	"strings"
	"time"

	"github.com/BurntSushi/xgbutil"
	"github.com/BurntSushi/xgbutil/keybind"
	"github.com/BurntSushi/xgbutil/xevent"
	"github.com/sirupsen/logrus"

	"github.com/yzhelezko/thermwin/internal/keybinding"
)

const eventLoopStopTimeout = 2 * time.Second

// canConnect reports whether an X server accepts connections. Wayland sessions
// only expose global grabs through XWayland.
func canConnect() bool {
	xu, err := xgbutil.NewConn()
	if err != nil {
		return false
	}
	xu.Conn().Close()
	return true
}

// x11Backend grabs keys on the root window. Grabs are checked, so a key
// already held by another client fails with BadAccess instead of silently
// never firing.
type x11Backend struct {
	log  logrus.FieldLogger
	xu   *xgbutil.XUtil
	done chan struct{}
}

func newBackend(log logrus.FieldLogger) backend {
	return &x11Backend{log: log}
}

func (x *x11Backend) connect() error {
	if x.xu != nil {
		return nil
	}
	xu, err := xgbutil.NewConn()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	keybind.Initialize(xu)

	x.xu = xu
	x.done = make(chan struct{})
	go func() {
		defer close(x.done)
		xevent.Main(xu)
	}()
	return nil
}

func (x *x11Backend) grab(b keybinding.Binding, fn func()) error {
	if err := x.connect(); err != nil {
		return err
	}

	handler := keybind.KeyPressFun(func(*xgbutil.XUtil, xevent.KeyPressEvent) {
		guard(x.log, fn)
	})
	if err := handler.Connect(x.xu, x.xu.RootWin(), keyString(b), true); err != nil {
		return fmt.Errorf("%w %s: %v", ErrGrabFailed, b, err)
	}
	return nil
}

// close drops the X connection, which releases every grab and ends the
// event loop.
func (x *x11Backend) close() error {
	if x.xu == nil {
		return nil
	}
	xevent.Quit(x.xu)
	x.xu.Conn().Close()

	select {
	case <-x.done:
	case <-time.After(eventLoopStopTimeout):
		x.log.Warn("X event loop did not exit in time")
	}
	x.xu = nil
	return nil
}

// keyString renders a binding in xgbutil's "mod4-control-a" syntax.
// Meta shares Mod1 with Alt and Hyper shares Mod4 with Super.
func keyString(b keybinding.Binding) string {
	var parts []string
	if b.Mods.Has(keybinding.Shift) {
		parts = append(parts, "shift")
	}
	if b.Mods.Has(keybinding.Control) {
		parts = append(parts, "control")
	}
	if b.Mods.Has(keybinding.Alt) || b.Mods.Has(keybinding.Meta) {
		parts = append(parts, "mod1")
	}
	if b.Mods.Has(keybinding.Super) || b.Mods.Has(keybinding.Hyper) {
		parts = append(parts, "mod4")
	}
	parts = append(parts, b.Key)
	return strings.Join(parts, "-")
}
