package logger

import (
	"io"
	"os"

	"github.com/rs/zerolog"
)

// Logger is the zerolog logger shared by the server, the CLI and the
// background workers.
type Logger struct {
	*zerolog.Logger
}

func New(isDebug bool, output io.Writer) *Logger {
	level := zerolog.InfoLevel

	if isDebug {
		level = zerolog.DebugLevel
	}

	l := zerolog.New(output).Level(level).With().Timestamp().Logger()

	return &Logger{&l}
}

// NewConsole writes human-readable output to stdout.
func NewConsole(isDebug bool) *Logger {
	return New(isDebug, zerolog.ConsoleWriter{Out: os.Stdout})
}

// NewErrorConsole writes human-readable output to stderr. It is used before
// the configuration has been decoded.
func NewErrorConsole(isDebug bool) *Logger {
	return New(isDebug, zerolog.ConsoleWriter{Out: os.Stderr})
}

// NewNop discards everything, for tests.
func NewNop() *Logger {
	l := zerolog.Nop()

	return &Logger{&l}
}
