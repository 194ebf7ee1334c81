package window

import "github.com/yzhelezko/thermwin/internal/config"

// Container holds the configuration shared by a window and whatever is
// placed inside it.
type Container struct {
	config *config.Config
}

// NewContainer creates a container holding a copy of cfg
func NewContainer(cfg *config.Config) *Container {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	return &Container{config: cfg.Clone()}
}

// Config returns the current configuration
func (c *Container) Config() config.Config {
	return *c.config
}

func (c *Container) setConfig(cfg *config.Config) {
	c.config = cfg.Clone()
}
