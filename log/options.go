package log

import (
	"github.com/rs/zerolog"

	"github.com/kochabx/unsplash/log/desensitize"
)

// Option configures a Logger
type Option func(*Logger)

// WithLevel sets the minimum level
func WithLevel(level zerolog.Level) Option {
	return func(l *Logger) {
		l.Logger = l.Logger.Level(level)
	}
}

// WithCaller adds the caller to every event
func WithCaller() Option {
	return func(l *Logger) {
		l.Logger = l.Logger.With().Caller().Logger()
	}
}

// WithFields adds static string fields to every event
func WithFields(fields map[string]string) Option {
	return func(l *Logger) {
		ctx := l.Logger.With()
		for k, v := range fields {
			ctx = ctx.Str(k, v)
		}
		l.Logger = ctx.Logger()
	}
}

// WithDesensitize installs a redaction hook on the writer
func WithDesensitize(hook *desensitize.Hook) Option {
	return func(l *Logger) {
		l.desensitizeHook = hook
	}
}

// WithCredentialRedaction installs a hook of its own holding the credential rules
func WithCredentialRedaction() Option {
	return func(l *Logger) {
		l.desensitizeHook = desensitize.NewHook(desensitize.Credentials()...)
	}
}
