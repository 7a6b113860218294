// Package logger provides leveled diagnostic logging for roomlog.
package logger

import (
	"fmt"
	"os"
	"strings"

	"github.com/pterm/pterm"
)

// Log is the shared application logger.
var Log = &Logger{level: LevelInfo}

type Level int

const (
	LevelTrace Level = iota
	LevelDebug
	LevelInfo
	LevelWarn
	LevelError
	LevelFatal
)

// Logger writes leveled messages through pterm prefix printers.
type Logger struct {
	level Level
}

func (l *Logger) Tracef(format string, args ...interface{}) {
	if l.level <= LevelTrace {
		pterm.Debug.Printfln(format, args...)
	}
}

func (l *Logger) Debugf(format string, args ...interface{}) {
	if l.level <= LevelDebug {
		pterm.Debug.Printfln(format, args...)
	}
}

func (l *Logger) Infof(format string, args ...interface{}) {
	if l.level <= LevelInfo {
		pterm.Info.Printfln(format, args...)
	}
}

func (l *Logger) Warnf(format string, args ...interface{}) {
	if l.level <= LevelWarn {
		pterm.Warning.Printfln(format, args...)
	}
}

func (l *Logger) Errorf(format string, args ...interface{}) {
	if l.level <= LevelError {
		pterm.Error.Printfln(format, args...)
	}
}

func (l *Logger) Fatalf(format string, args ...interface{}) {
	pterm.Error.Printfln(format, args...)
	os.Exit(1)
}

func (l *Logger) Trace(args ...interface{}) {
	if l.level <= LevelTrace {
		pterm.Debug.Println(args...)
	}
}

func (l *Logger) Debug(args ...interface{}) {
	if l.level <= LevelDebug {
		pterm.Debug.Println(args...)
	}
}

func (l *Logger) Info(args ...interface{}) {
	if l.level <= LevelInfo {
		pterm.Info.Println(args...)
	}
}

func (l *Logger) Warn(args ...interface{}) {
	if l.level <= LevelWarn {
		pterm.Warning.Println(args...)
	}
}

func (l *Logger) Error(args ...interface{}) {
	if l.level <= LevelError {
		pterm.Error.Println(args...)
	}
}

func (l *Logger) Fatal(args ...interface{}) {
	pterm.Error.Println(args...)
	os.Exit(1)
}

// SetLevel parses a level name and applies it to the shared logger.
func SetLevel(level string) error {
	switch strings.ToLower(level) {
	case "trace":
		Log.level = LevelTrace
		pterm.EnableDebugMessages()
	case "debug":
		Log.level = LevelDebug
		pterm.EnableDebugMessages()
	case "info":
		Log.level = LevelInfo
	case "warn", "warning":
		Log.level = LevelWarn
	case "error":
		Log.level = LevelError
	case "fatal":
		Log.level = LevelFatal
	default:
		return fmt.Errorf("invalid log level: %s", level)
	}

	return nil
}
