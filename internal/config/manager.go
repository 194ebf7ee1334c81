package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v2"
)

// DefaultPath returns the full path to the config file, creating its directory
func DefaultPath() (string, error) {
	path, err := xdg.ConfigFile(filepath.Join(DirName, FileName))
	if err != nil {
		return "", fmt.Errorf("failed to resolve config path: %w", err)
	}
	return path, nil
}

// Manager reads and writes the configuration file
type Manager struct {
	path string
	log  logrus.FieldLogger
}

// NewManager creates a manager for the config file at path
func NewManager(path string, log logrus.FieldLogger) *Manager {
	return &Manager{
		path: path,
		log:  log.WithField("config", path),
	}
}

// Path returns the config file location
func (m *Manager) Path() string {
	return m.path
}

// ensureDir creates the config directory if it doesn't exist
func (m *Manager) ensureDir() error {
	dir := filepath.Dir(m.path)
	if err := os.MkdirAll(dir, DirMode); err != nil {
		return fmt.Errorf("failed to create config directory %s: %w", dir, err)
	}
	return nil
}

// Read loads and validates the config file. Fields missing from the file keep
// their default values.
func (m *Manager) Read() (*Config, error) {
	data, err := os.ReadFile(m.path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", m.path, err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", m.path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Load loads configuration from file or creates default
func (m *Manager) Load() (*Config, error) {
	if _, err := os.Stat(m.path); errors.Is(err, os.ErrNotExist) {
		m.log.Info("Config file not found, creating with default values")
		cfg := DefaultConfig()
		if err := m.Save(cfg); err != nil {
			return nil, err
		}
		return cfg, nil
	}

	cfg, err := m.Read()
	if err != nil {
		m.log.WithError(err).Warn("Using default config")
		return DefaultConfig(), nil
	}

	m.log.Debug("Config loaded")
	return cfg, nil
}

// Save writes the configuration to the config file
func (m *Manager) Save(cfg *Config) error {
	if cfg == nil {
		return fmt.Errorf("config is nil, cannot save")
	}
	if err := m.ensureDir(); err != nil {
		return err
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(m.path, data, FileMode); err != nil {
		return fmt.Errorf("failed to write config file %s: %w", m.path, err)
	}
	return nil
}
