package unsplash

import (
	"time"

	"github.com/kochabx/unsplash/config"
	"github.com/kochabx/unsplash/log"
)

// EnvPrefix namespaces environment overrides read by LoadConfig
const EnvPrefix = "UNSPLASH"

// Config configures a Client. AccessKey and APIURL are mutually exclusive: use
// AccessKey to talk to the API directly, or APIURL to go through a proxy that
// holds the key server side. Timeout is off when zero, deadlines then come
// from the context passed to each call.
type Config struct {
	AccessKey  string            `mapstructure:"access_key" json:"access_key,omitempty" validate:"excluded_with=APIURL"`
	APIURL     string            `mapstructure:"api_url" json:"api_url,omitempty" validate:"omitempty,url"`
	APIVersion string            `mapstructure:"api_version" json:"api_version" default:"v1"`
	Timeout    time.Duration     `mapstructure:"timeout" json:"timeout,omitempty"`
	Headers    map[string]string `mapstructure:"headers" json:"headers,omitempty"`
	Host       string            `mapstructure:"host" json:"host,omitempty"`

	// RequestOptions apply to every call, before the call's own options
	RequestOptions []RequestOption `mapstructure:"-" json:"-"`
}

// LoadConfig reads a Config from the named file (YAML, JSON or TOML by
// extension) in paths, then applies UNSPLASH_* environment overrides such as
// UNSPLASH_ACCESS_KEY. An empty name loads from the environment only.
func LoadConfig(name string, paths ...string) (Config, error) {
	var cfg Config

	opts := []config.Option{
		config.WithEnv(EnvPrefix),
		config.WithLogger(log.G),
	}
	if name == "" {
		opts = append(opts, config.WithFile("unsplash.yaml"), config.WithOptionalFile())
	} else {
		opts = append(opts, config.WithFile(name, paths...))
	}

	if err := config.New(&cfg, opts...).Load(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
