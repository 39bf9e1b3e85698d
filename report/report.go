// Package report defines the sink that psitable uses for diagnostics.
//
// Table assembly never logs: rejected sections are returned as values and
// callers count them. Only persistence (writing, saving and loading section
// files) reports messages, through a Reporter.
//
// A *slog.Logger satisfies Reporter directly. NewConsole builds a
// human-readable slog logger and NewZerolog adapts a zerolog.Logger.
package report

import (
	"io"
	"log/slog"

	console "github.com/phsym/console-slog"
	"github.com/rs/zerolog"
)

// Reporter receives diagnostics as a message and alternating key/value pairs.
type Reporter interface {
	Error(msg string, args ...any)
	Warn(msg string, args ...any)
	Debug(msg string, args ...any)
}

var _ Reporter = (*slog.Logger)(nil)

// Discard returns a Reporter that drops everything.
func Discard() Reporter {
	return slog.New(slog.DiscardHandler)
}

// NewConsole returns a colorless console Reporter writing to w at or above level.
func NewConsole(w io.Writer, level slog.Level) *slog.Logger {
	return slog.New(console.NewHandler(w, &console.HandlerOptions{
		Level:   level,
		NoColor: true,
	}))
}

// zerologReporter forwards diagnostics to a zerolog.Logger.
type zerologReporter struct {
	logger zerolog.Logger
}

// NewZerolog adapts a zerolog.Logger into a Reporter.
func NewZerolog(logger zerolog.Logger) Reporter {
	return &zerologReporter{logger: logger}
}

func (z *zerologReporter) Error(msg string, args ...any) {
	z.logger.Error().Fields(args).Msg(msg)
}

func (z *zerologReporter) Warn(msg string, args ...any) {
	z.logger.Warn().Fields(args).Msg(msg)
}

func (z *zerologReporter) Debug(msg string, args ...any) {
	z.logger.Debug().Fields(args).Msg(msg)
}
