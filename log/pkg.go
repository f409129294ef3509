package log

import (
	"github.com/ardnew/clog/level"
	"github.com/ardnew/clog/sink"
	"github.com/ardnew/clog/style"
)

//nolint:gochecknoglobals
var defaultLog = New()

// Default returns the process-wide root logger. It persists levels in
// memory and writes to [sink.Std].
func Default() *Logger { return defaultLog }

// GetLogger returns the named child of the default root.
func GetLogger(name string) (*Logger, error) { return defaultLog.GetLogger(name) }

// Level returns the effective level of the default root.
func Level() level.Level { return defaultLog.Level() }

// SetLevel sets the level of the default root.
func SetLevel(lv level.Level) *Logger { return defaultLog.SetLevel(lv) }

// SetDefaultLevel sets the default level of the default root.
func SetDefaultLevel(lv level.Level) *Logger { return defaultLog.SetDefaultLevel(lv) }

// ResetLevel clears the level of the default root.
func ResetLevel() *Logger { return defaultLog.ResetLevel() }

// Use replaces the sink of the default root.
func Use(s sink.Sink) *Logger { return defaultLog.Use(s) }

// SetConfig replaces the binding strategy of the default root.
func SetConfig(b style.Binder) *Logger { return defaultLog.SetConfig(b) }

// Trace outputs args at [level.Trace] on the default root.
func Trace(args ...any) { defaultLog.Trace(args...) }

// Debug outputs args at [level.Debug] on the default root.
func Debug(args ...any) { defaultLog.Debug(args...) }

// Log outputs args at [level.Log] on the default root.
func Log(args ...any) { defaultLog.Log(args...) }

// Info outputs args at [level.Info] on the default root.
func Info(args ...any) { defaultLog.Info(args...) }

// Warn outputs args at [level.Warn] on the default root.
func Warn(args ...any) { defaultLog.Warn(args...) }

// Error outputs args at [level.Error] on the default root.
func Error(args ...any) { defaultLog.Error(args...) }
