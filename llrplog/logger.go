package llrplog

import (
	"context"
	"io"
	"log/slog"
	"runtime"
)

// Tag lets a component (a Session, a connection, a Registry) identify
// itself in log lines without the logger knowing its concrete type.
type Tag interface {
	String() string
}

// Logger wraps a slog.Logger with an LLRP-appropriate level filter and
// tag convention.
type Logger struct {
	slog  *slog.Logger
	level Level
}

func NewText(w io.Writer) *Logger {
	return &Logger{
		slog: slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
			Level:       slog.Level(LevelTrace),
			ReplaceAttr: replaceAttr,
		})),
		level: LevelInfo,
	}
}

func NewJSON(w io.Writer) *Logger {
	return &Logger{
		slog: slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{
			Level:       slog.Level(LevelTrace),
			ReplaceAttr: replaceAttr,
		})),
		level: LevelInfo,
	}
}

// SetLevel sets the logging level and returns the previous level.
func (l *Logger) SetLevel(level Level) (prev Level) {
	prev = l.level
	l.level = level
	return
}

func (l *Logger) Level() Level {
	return l.level
}

func (l *Logger) log(tag any, msg string, level Level, v ...any) {
	if l.level > level {
		return
	}

	if l.level <= LevelDebug {
		if pc, _, _, ok := runtime.Caller(2); ok {
			if f := runtime.FuncForPC(pc); f != nil {
				v = append(v, slog.SourceKey, f.Name())
			}
		}
	}

	if tag != nil {
		if t, ok := tag.(Tag); ok {
			v = append([]any{"tag", t.String()}, v...)
		} else {
			v = append([]any{"tag", tag}, v...)
		}
	}

	l.slog.Log(context.Background(), slog.Level(level), msg, v...)
}

func (l *Logger) Trace(tag any, msg string, v ...any) { l.log(tag, msg, LevelTrace, v...) }
func (l *Logger) Debug(tag any, msg string, v ...any) { l.log(tag, msg, LevelDebug, v...) }
func (l *Logger) Info(tag any, msg string, v ...any)  { l.log(tag, msg, LevelInfo, v...) }
func (l *Logger) Warn(tag any, msg string, v ...any)  { l.log(tag, msg, LevelWarn, v...) }
func (l *Logger) Error(tag any, msg string, v ...any) { l.log(tag, msg, LevelError, v...) }
func (l *Logger) Fatal(tag any, msg string, v ...any) { l.log(tag, msg, LevelFatal, v...) }

func replaceAttr(_ []string, a slog.Attr) slog.Attr {
	if a.Key == slog.LevelKey {
		a.Value = slog.StringValue(Level(a.Value.Any().(slog.Level)).String())
	}
	return a
}
