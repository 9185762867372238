package logger

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// Logger defines the interface for diagnostic logging.
// Report output goes to stdout, so implementations must never write there.
type Logger interface {
	Info(msg string, args ...interface{})
	Error(msg string, args ...interface{})
	Debug(msg string, args ...interface{})
}

// ConsoleLogger writes human-readable logs through zerolog.
// Used when --verbose is set.
type ConsoleLogger struct {
	log zerolog.Logger
}

// NewConsoleLogger returns a ConsoleLogger writing to stderr.
func NewConsoleLogger() *ConsoleLogger {
	return NewConsoleLoggerTo(os.Stderr)
}

// NewConsoleLoggerTo returns a ConsoleLogger writing to w without colors.
func NewConsoleLoggerTo(w io.Writer) *ConsoleLogger {
	out := zerolog.ConsoleWriter{Out: w, NoColor: true, TimeFormat: time.RFC3339}
	return &ConsoleLogger{
		log: zerolog.New(out).Level(zerolog.DebugLevel).With().Timestamp().Logger(),
	}
}

func (c *ConsoleLogger) Info(msg string, args ...interface{}) {
	c.log.Info().Msgf(msg, args...)
}

func (c *ConsoleLogger) Error(msg string, args ...interface{}) {
	c.log.Error().Msgf(msg, args...)
}

func (c *ConsoleLogger) Debug(msg string, args ...interface{}) {
	c.log.Debug().Msgf(msg, args...)
}

// SilentLogger discards all log messages.
// This is the default so stderr only carries errors.
type SilentLogger struct{}

func NewSilentLogger() *SilentLogger {
	return &SilentLogger{}
}

func (s *SilentLogger) Info(msg string, args ...interface{})  {}
func (s *SilentLogger) Error(msg string, args ...interface{}) {}
func (s *SilentLogger) Debug(msg string, args ...interface{}) {}

// New picks the console logger when verbose, otherwise the silent one.
func New(verbose bool) Logger {
	if verbose {
		return NewConsoleLogger()
	}
	return NewSilentLogger()
}
