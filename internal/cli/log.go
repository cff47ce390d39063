package cli

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"
)

// newLogger creates a stderr-style logger with timestamp formatting.
// Timestamps are formatted as "HH:MM:SS.ms" (e.g., "14:32:01.45").
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
		Prefix:          appName,
	})
}

// progress logs completion of an operation with the elapsed duration.
type progress struct {
	logger *log.Logger
	start  time.Time
}

func newProgress(l *log.Logger) *progress {
	return &progress{logger: l, start: time.Now()}
}

// done logs msg along with the time since the progress was created,
// e.g. "Formatted 42 rows into 3 blocks (1ms)".
func (p *progress) done(msg string) {
	p.logger.Infof("%s (%s)", msg, time.Since(p.start).Round(time.Millisecond))
}

// logHooks reports pipeline stage timings at debug level.
type logHooks struct {
	logger *log.Logger
}

func (h logHooks) OnReadComplete(_ context.Context, rows, cols int, d time.Duration, err error) {
	h.stage("read", d, err, "rows", rows, "columns", cols)
}

func (h logHooks) OnTransformComplete(_ context.Context, blocks int, d time.Duration, err error) {
	h.stage("transform", d, err, "blocks", blocks)
}

func (h logHooks) OnRenderComplete(_ context.Context, size int, d time.Duration, err error) {
	h.stage("render", d, err, "bytes", size)
}

func (h logHooks) stage(name string, d time.Duration, err error, keyvals ...any) {
	keyvals = append([]any{"stage", name, "duration", d}, keyvals...)
	if err != nil {
		keyvals = append(keyvals, "err", err)
	}
	h.logger.Debug("stage finished", keyvals...)
}

type ctxKey int

const loggerKey ctxKey = 0

// withLogger returns a new context with the given logger attached.
func withLogger(ctx context.Context, l *log.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, l)
}

// loggerFromContext retrieves the logger from ctx, or log.Default() if none
// is attached.
func loggerFromContext(ctx context.Context) *log.Logger {
	if l, ok := ctx.Value(loggerKey).(*log.Logger); ok {
		return l
	}
	return log.Default()
}
