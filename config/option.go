package config

import (
	"github.com/spf13/viper"

	"github.com/kochabx/unsplash/core/validator"
	"github.com/kochabx/unsplash/log"
)

// Option configures a Config
type Option func(*Config)

// WithViper sets a custom viper instance
func WithViper(v *viper.Viper) Option {
	return func(c *Config) {
		c.viper = v
	}
}

// WithValidator sets a custom validator, nil disables validation
func WithValidator(v validator.Validator) Option {
	return func(c *Config) {
		c.validate = v
	}
}

// WithLoader replaces the default FileLoader
func WithLoader(loader Loader) Option {
	return func(c *Config) {
		c.loader = loader
	}
}

// WithLogger sets the logger used while watching
func WithLogger(logger *log.Logger) Option {
	return func(c *Config) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithFile sets the file name and the directories searched for it
func WithFile(name string, paths ...string) Option {
	return func(c *Config) {
		c.name = name
		if len(paths) > 0 {
			c.paths = paths
		}
	}
}

// WithEnv reads overrides from PREFIX_KEY environment variables
func WithEnv(prefix string) Option {
	return func(c *Config) {
		c.envPrefix = prefix
	}
}

// WithOptionalFile tolerates a missing file, leaving defaults and environment
func WithOptionalFile() Option {
	return func(c *Config) {
		c.optional = true
	}
}

// OnChange registers fn to run after each reload triggered by Watch
func OnChange(fn func()) Option {
	return func(c *Config) {
		if fn != nil {
			c.onChange = append(c.onChange, fn)
		}
	}
}
