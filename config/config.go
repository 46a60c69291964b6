package config

import (
	"sync"

	"github.com/spf13/viper"

	"github.com/kochabx/unsplash/core/validator"
	"github.com/kochabx/unsplash/log"
)

// Config loads a target struct from a file and the environment and keeps it
// current while watched
type Config struct {
	mu        sync.RWMutex
	viper     *viper.Viper
	validate  validator.Validator
	logger    *log.Logger
	target    any
	loader    Loader
	name      string
	paths     []string
	envPrefix string
	optional  bool
	onChange  []func()
}

// New creates a Config for target. Without WithLoader a FileLoader is used
// with filename "config.yaml" searched in ".".
func New(target any, opts ...Option) *Config {
	c := &Config{
		viper:    viper.New(),
		validate: validator.Validate,
		logger:   log.G,
		target:   target,
		name:     "config.yaml",
		paths:    []string{"."},
	}

	for _, opt := range opts {
		opt(c)
	}

	if c.loader == nil {
		c.loader = NewFileLoader(c.name, c.paths, c.viper, c.validate,
			WithEnvPrefix(c.envPrefix),
			WithOptional(c.optional),
		)
	}

	return c
}

// Load reads the configuration into the target
func (c *Config) Load() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.loader.Load(c.target)
}

// Reload is Load, triggered by a change on disk
func (c *Config) Reload() error {
	return c.Load()
}

// Read runs fn while holding the read lock, so fn observes a fully loaded target
func (c *Config) Read(fn func()) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	fn()
}

// Watch reloads the target whenever the file changes. Callbacks registered
// with OnChange run after every successful reload.
func (c *Config) Watch() error {
	return c.loader.Watch(func() {
		c.logger.Debug().Msg("config change detected")

		if err := c.Reload(); err != nil {
			c.logger.Error().Err(err).Msg("failed to reload config after change")
			return
		}

		c.logger.Info().Msg("config reloaded")
		for _, fn := range c.onChange {
			fn()
		}
	})
}

// GetViper returns the underlying viper instance
func (c *Config) GetViper() *viper.Viper {
	return c.viper
}
