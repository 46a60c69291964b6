package config

import (
	stderrors "errors"
	"net/http"
	"path"
	"reflect"
	"strings"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"

	"github.com/kochabx/unsplash/core/tag"
	"github.com/kochabx/unsplash/core/validator"
	"github.com/kochabx/unsplash/errors"
)

// FileLoader loads configuration from a file, with environment overrides
type FileLoader struct {
	viper     *viper.Viper
	validate  validator.Validator
	name      string
	paths     []string
	envPrefix string
	optional  bool
}

// FileLoaderOption configures a FileLoader
type FileLoaderOption func(*FileLoader)

// WithEnvPrefix namespaces environment overrides, "UNSPLASH" reads UNSPLASH_ACCESS_KEY
func WithEnvPrefix(prefix string) FileLoaderOption {
	return func(l *FileLoader) {
		l.envPrefix = prefix
	}
}

// WithOptional tolerates a missing file
func WithOptional(optional bool) FileLoaderOption {
	return func(l *FileLoader) {
		l.optional = optional
	}
}

// NewFileLoader creates a loader for name in paths. The format follows the
// file extension.
func NewFileLoader(name string, paths []string, v *viper.Viper, validate validator.Validator, opts ...FileLoaderOption) *FileLoader {
	l := &FileLoader{
		viper:    v,
		validate: validate,
		name:     name,
		paths:    paths,
	}
	for _, opt := range opts {
		opt(l)
	}

	for _, p := range paths {
		v.AddConfigPath(p)
	}
	v.SetConfigName(name)
	v.SetConfigType(strings.TrimPrefix(path.Ext(name), "."))

	if l.envPrefix != "" {
		v.SetEnvPrefix(l.envPrefix)
	}
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	return l
}

// Load applies defaults, reads the file, unmarshals it with environment
// overrides and validates the result
func (l *FileLoader) Load(target any) error {
	if err := tag.ApplyDefaults(target); err != nil {
		return errors.Wrap(err, http.StatusInternalServerError, "failed to apply defaults")
	}

	bindEnvs(l.viper, reflect.TypeOf(target), "")

	if err := l.viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !l.optional || !stderrors.As(err, &notFound) {
			return errors.Wrap(err, http.StatusNotFound, "config file not found")
		}
	}

	if err := l.viper.Unmarshal(target); err != nil {
		return errors.Wrap(err, http.StatusInternalServerError, "config parse error")
	}

	if l.validate != nil {
		if err := l.validate.Struct(target); err != nil {
			return errors.Wrap(err, http.StatusBadRequest, "config validation failed")
		}
	}

	return nil
}

// Watch implements Loader
func (l *FileLoader) Watch(callback func()) error {
	l.viper.OnConfigChange(func(fsnotify.Event) {
		if callback != nil {
			callback()
		}
	})

	l.viper.WatchConfig()
	return nil
}

// bindEnvs registers every mapstructure key of t with viper. AutomaticEnv
// alone only covers keys viper has already seen in the file.
func bindEnvs(v *viper.Viper, t reflect.Type, prefix string) {
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t.Kind() != reflect.Struct {
		return
	}

	for i := range t.NumField() {
		f := t.Field(i)
		if !f.IsExported() {
			continue
		}

		name, _, _ := strings.Cut(f.Tag.Get("mapstructure"), ",")
		if name == "-" {
			continue
		}
		if name == "" {
			name = strings.ToLower(f.Name)
		}

		key := name
		if prefix != "" {
			key = prefix + "." + name
		}

		ft := f.Type
		if ft.Kind() == reflect.Pointer {
			ft = ft.Elem()
		}
		if ft.Kind() == reflect.Struct {
			bindEnvs(v, ft, key)
			continue
		}
		_ = v.BindEnv(key)
	}
}
