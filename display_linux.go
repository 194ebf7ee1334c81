package main

import (
	"os"

	"github.com/sirupsen/logrus"
)

// prepareDisplay forces XWayland on Wayland sessions so window state and the
// global hotkey grab go through the same X server. An explicit GDK_BACKEND
// is left alone.
func prepareDisplay(log logrus.FieldLogger) {
	if os.Getenv("WAYLAND_DISPLAY") == "" || os.Getenv("GDK_BACKEND") != "" {
		return
	}
	os.Setenv("GDK_BACKEND", "x11")
	log.Info("Wayland detected: using XWayland (GDK_BACKEND=x11)")
}
