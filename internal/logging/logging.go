// Package logging provides the structured tracing used across this
// toolkit's build/tokenize/analysis paths: a log/slog text handler with
// source-file trimming and a TRACE level below Debug, plus package-level
// helpers that capture the caller's program counter.
package logging

import (
	"context"
	"io"
	"log/slog"
	"path/filepath"
	"runtime"
	"time"
)

// LevelTrace sits below slog.LevelDebug, for the fixed-point iteration
// counts that are too noisy for Debug.
const LevelTrace slog.Level = -8

// NewLogger builds a slog.Logger writing text-formatted records to w,
// trimming source file paths to their base name and rendering
// LevelTrace as "TRACE" rather than a bare integer offset.
func NewLogger(w io.Writer, level slog.Level) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level:     level,
		AddSource: true,
		ReplaceAttr: func(_ []string, attr slog.Attr) slog.Attr {
			switch attr.Key {
			case slog.LevelKey:
				if lvl, ok := attr.Value.Any().(slog.Level); ok && lvl == LevelTrace {
					attr.Value = slog.StringValue("TRACE")
				}
			case slog.SourceKey:
				if source, ok := attr.Value.Any().(*slog.Source); ok {
					source.File = filepath.Base(source.File)
				}
			}
			return attr
		},
	}))
}

type skipKey string

// Trace logs msg at LevelTrace against the default logger.
func Trace(msg string, args ...any) {
	TraceContext(context.WithValue(context.Background(), skipKey("skip"), 1), msg, args...)
}

// TraceContext logs msg at LevelTrace, honoring ctx for cancellation-aware
// handlers and attributing the log record to the caller of Trace/TraceContext
// rather than to this helper.
func TraceContext(ctx context.Context, msg string, args ...any) {
	logger := slog.Default()
	if !logger.Enabled(ctx, LevelTrace) {
		return
	}
	skip, _ := ctx.Value(skipKey("skip")).(int)
	pc, _, _, _ := runtime.Caller(1 + skip)
	record := slog.NewRecord(time.Now(), LevelTrace, msg, pc)
	record.Add(args...)
	_ = logger.Handler().Handle(ctx, record)
}
