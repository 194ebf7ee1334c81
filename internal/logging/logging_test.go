package logging

import (
	"bytes"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
)

func TestNewLevels(t *testing.T) {
	var buf bytes.Buffer

	log := New(Options{Output: &buf})
	if log.GetLevel() != logrus.InfoLevel {
		t.Fatalf("level = %v, want info", log.GetLevel())
	}
	log.Debug("hidden message")
	if buf.Len() != 0 {
		t.Fatalf("debug message written at info level: %q", buf.String())
	}

	log = New(Options{Output: &buf, Debug: true})
	log.WithField("fullscreen", true).Debug("window state changed")
	out := buf.String()
	if !strings.Contains(out, "window state changed") || !strings.Contains(out, "fullscreen=true") {
		t.Fatalf("unexpected output: %q", out)
	}
}

func TestDiscard(t *testing.T) {
	log := Discard()
	// Should not panic and should not write anywhere visible
	log.Error("dropped")
}
