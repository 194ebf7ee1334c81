package hotkey

import (
	"errors"
	"fmt"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/yzhelezko/thermwin/internal/keybinding"
)

var (
	ErrUnavailable         = errors.New("hotkey: service unavailable")
	ErrUnsupportedKey      = errors.New("hotkey: unsupported key")
	ErrUnsupportedModifier = errors.New("hotkey: unsupported modifier")
	ErrGrabFailed          = errors.New("hotkey: failed to grab key")
)

// Available reports whether global hotkeys can be registered in this session.
func Available() bool {
	return canConnect()
}

// backend grabs keys on one platform. Calls are serialised by Service.
type backend interface {
	grab(b keybinding.Binding, fn func()) error
	close() error
}

// Service registers global hotkeys and dispatches their key-down events.
type Service struct {
	log     logrus.FieldLogger
	mu      sync.Mutex
	backend backend
	closed  bool
}

// NewService creates an empty hotkey service
func NewService(log logrus.FieldLogger) *Service {
	l := log.WithField("component", "hotkey")
	return &Service{log: l, backend: newBackend(l)}
}

// Bind registers accel as a global hotkey. fn is called from a background
// goroutine on every key press. A key already grabbed by another client
// yields ErrGrabFailed.
func (s *Service) Bind(accel string, fn func()) error {
	b, err := keybinding.Parse(accel)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return fmt.Errorf("%w: service closed", ErrUnavailable)
	}
	if err := s.backend.grab(b, fn); err != nil {
		return err
	}

	s.log.WithField("binding", b.String()).Debug("Global hotkey registered")
	return nil
}

// Close releases every hotkey and stops event delivery.
func (s *Service) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return nil
	}
	s.closed = true
	return s.backend.close()
}

// guard runs a hotkey handler, keeping a panic from killing the event loop
func guard(log logrus.FieldLogger, fn func()) {
	defer func() {
		if r := recover(); r != nil {
			log.Errorf("Hotkey handler panic recovered: %v", r)
		}
	}()
	fn()
}
