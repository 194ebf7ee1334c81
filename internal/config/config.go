package config

import (
	"fmt"
	"os"
	"time"

	"github.com/yzhelezko/thermwin/internal/keybinding"
)

const (
	DirName  = "thermwin"
	FileName = "config.yaml"

	DirMode  os.FileMode = 0o755
	FileMode os.FileMode = 0o644

	// DebounceDelay coalesces bursts of file events into one reload
	DebounceDelay = 300 * time.Millisecond

	DefaultHideWindowBinding = "<Super>a"
)

// Keybindings holds accelerator strings for window actions
type Keybindings struct {
	HideWindow string `yaml:"hide_window"`
}

// Config holds the window configuration
type Config struct {
	Fullscreen             bool        `yaml:"fullscreen"`
	Maximised              bool        `yaml:"maximised"`
	Borderless             bool        `yaml:"borderless"`
	EnableRealTransparency bool        `yaml:"enable_real_transparency"`
	Hidden                 bool        `yaml:"hidden"`
	Keybindings            Keybindings `yaml:"keybindings"`
}

// DefaultConfig returns a new Config with default values
func DefaultConfig() *Config {
	return &Config{
		Fullscreen:             false,
		Maximised:              false,
		Borderless:             false,
		EnableRealTransparency: true,
		Hidden:                 false,
		Keybindings: Keybindings{
			HideWindow: DefaultHideWindowBinding,
		},
	}
}

// Validate checks the configuration for basic validity.
func (c *Config) Validate() error {
	if _, err := keybinding.Parse(c.Keybindings.HideWindow); err != nil {
		return fmt.Errorf("invalid hide_window keybinding %q: %w", c.Keybindings.HideWindow, err)
	}
	return nil
}

// Clone returns a copy of the configuration
func (c *Config) Clone() *Config {
	cp := *c
	return &cp
}
