package log

import (
	"github.com/rs/zerolog"
)

// G is the package level logger, console output with credential redaction at info level
var G *Logger

func init() {
	G = New(WithLevel(zerolog.InfoLevel), WithCredentialRedaction())
}

// SetGlobalLogger replaces G
func SetGlobalLogger(logger *Logger) {
	if logger != nil {
		G = logger
	}
}

// SetGlobalLevel sets the level of G
func SetGlobalLevel(level zerolog.Level) {
	G.Logger = G.Logger.Level(level)
}

// Debug starts a debug event on G
func Debug() *zerolog.Event {
	return G.Debug()
}

// Info starts an info event on G
func Info() *zerolog.Event {
	return G.Info()
}

// Warn starts a warn event on G
func Warn() *zerolog.Event {
	return G.Warn()
}

// Error starts an error event on G with stack
func Error() *zerolog.Event {
	return G.Error().Stack()
}
