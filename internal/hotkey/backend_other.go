//go:build !linux

package hotkey

import (
	"errors"
	"fmt"
	"sync"

	"github.com/sirupsen/logrus"
	"golang.design/x/hotkey"

	"github.com/yzhelezko/thermwin/internal/keybinding"
)

type registration struct {
	binding keybinding.Binding
	hk      *hotkey.Hotkey
	stop    chan struct{}
}

// nativeBackend uses the operating system's hotkey API, which reports a
// key already registered by another process from Register.
type nativeBackend struct {
	log   logrus.FieldLogger
	bound []*registration
	wg    sync.WaitGroup
}

func newBackend(log logrus.FieldLogger) backend {
	return &nativeBackend{log: log}
}

func (n *nativeBackend) grab(b keybinding.Binding, fn func()) error {
	mods, err := modifiersFor(b.Mods)
	if err != nil {
		return fmt.Errorf("%w: %s", err, b)
	}
	key, ok := keyFor(b.Keysym)
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnsupportedKey, b)
	}

	hk := hotkey.New(mods, key)
	if err := hk.Register(); err != nil {
		return fmt.Errorf("%w %s: %v", ErrGrabFailed, b, err)
	}

	reg := &registration{binding: b, hk: hk, stop: make(chan struct{})}
	n.bound = append(n.bound, reg)
	n.wg.Add(1)
	go n.dispatch(reg, fn)
	return nil
}

func (n *nativeBackend) dispatch(reg *registration, fn func()) {
	defer n.wg.Done()
	for {
		select {
		case _, ok := <-reg.hk.Keydown():
			if !ok {
				return
			}
			guard(n.log, fn)
		case <-reg.stop:
			return
		}
	}
}

func (n *nativeBackend) close() error {
	var errs []error
	for _, reg := range n.bound {
		close(reg.stop)
		if err := reg.hk.Unregister(); err != nil {
			errs = append(errs, fmt.Errorf("unregister %s: %w", reg.binding, err))
		}
	}
	n.bound = nil
	n.wg.Wait()
	return errors.Join(errs...)
}
