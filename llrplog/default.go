package llrplog

import "os"

var defaultLogger = NewText(os.Stderr)

// Default returns the package-wide default logger.
func Default() *Logger {
	return defaultLogger
}

func Trace(tag any, msg string, v ...any) { defaultLogger.log(tag, msg, LevelTrace, v...) }
func Debug(tag any, msg string, v ...any) { defaultLogger.log(tag, msg, LevelDebug, v...) }
func Info(tag any, msg string, v ...any)  { defaultLogger.log(tag, msg, LevelInfo, v...) }
func Warn(tag any, msg string, v ...any)  { defaultLogger.log(tag, msg, LevelWarn, v...) }
func Error(tag any, msg string, v ...any) { defaultLogger.log(tag, msg, LevelError, v...) }
func Fatal(tag any, msg string, v ...any) { defaultLogger.log(tag, msg, LevelFatal, v...) }

// HasTrace reports whether the default logger would emit trace-level lines,
// useful to skip building expensive debug payloads (e.g. hex dumps) when it won't.
func HasTrace() bool {
	return defaultLogger.level <= LevelTrace
}
