package cli

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/noisify/pkg/observability"
)

// newLogger creates a new logger with timestamp formatting.
// The logger writes to w and filters messages at the specified level.
// Timestamps are formatted as "HH:MM:SS.ms" (e.g., "14:32:01.45").
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// ctxKey is the type for context keys used in this package.
// Using a distinct type prevents collisions with other packages.
type ctxKey int

// loggerKey is the context key for storing a logger.
const loggerKey ctxKey = 0

// withLogger returns a new context with the given logger attached.
// The logger can be retrieved later with loggerFromContext.
func withLogger(ctx context.Context, l *log.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, l)
}

// loggerFromContext retrieves the logger from ctx.
// If no logger is attached, it returns log.Default().
func loggerFromContext(ctx context.Context) *log.Logger {
	if l, ok := ctx.Value(loggerKey).(*log.Logger); ok {
		return l
	}
	return log.Default()
}

// logHooks reports animation events at debug level. Frames are logged with
// the rate values that produced them, which makes it easy to line up a bump
// with what appeared on screen.
type logHooks struct {
	logger *log.Logger
}

func (h logHooks) OnStart(_ context.Context, lineCount, columns int) {
	h.logger.Debug("animation started", "lines", lineCount, "columns", columns)
}

func (h logHooks) OnFrame(_ context.Context, f observability.Frame) {
	h.logger.Debug("frame",
		"n", f.Index,
		"line", f.Cursor,
		"speed", f.Speed,
		"chance", f.Chance,
		"bumper", f.Bumper,
		"noise", f.Noise,
	)
}

func (h logHooks) OnBump(_ context.Context, bumper float64) {
	h.logger.Debug("bump", "bumper", bumper)
}

func (h logHooks) OnStop(_ context.Context, frames int, elapsed time.Duration, err error) {
	h.logger.Debug("animation stopped", "frames", frames, "elapsed", elapsed.Round(time.Millisecond), "err", err)
}
