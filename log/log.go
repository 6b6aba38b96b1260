// Package log provide package level logger used across materials packages.
package log

import (
	"fmt"
	"io"
	"os"
	"path"
	"runtime"

	"github.com/sirupsen/logrus"
)

// Level ...
type Level = logrus.Level

// Available logging levels.
const (
	LevelError   = logrus.ErrorLevel
	LevelWarning = logrus.WarnLevel
	LevelInfo    = logrus.InfoLevel
	LevelDebug   = logrus.DebugLevel
)

const callerField = "caller"

var logger = NamedLogger("materials")

// NamedLogger creates named package logger.
func NamedLogger(name string) *logrus.Logger {
	return &logrus.Logger{
		Out: os.Stderr,
		Formatter: &CustomTextFormatter{
			TextFormatter: logrus.TextFormatter{
				ForceColors: true,
			},
			name: name,
		},
		Hooks: make(logrus.LevelHooks),
		Level: logrus.InfoLevel,
	}
}

// SetLoggerLevel ...
func SetLoggerLevel(level Level) {
	logger.SetLevel(level)
}

// ParseLevel ...
func ParseLevel(level string) (Level, error) {
	return logrus.ParseLevel(level)
}

// SetOutput redirects logger output, used mostly in tests.
func SetOutput(out io.Writer) {
	logger.SetOutput(out)
}

// Debug ...
func Debug(format string, args ...interface{}) {
	entry().Debugf(format, args...)
}

// Info ...
func Info(format string, args ...interface{}) {
	entry().Infof(format, args...)
}

// Warning ...
func Warning(format string, args ...interface{}) {
	entry().Warnf(format, args...)
}

// Error ...
func Error(format string, args ...interface{}) {
	entry().Errorf(format, args...)
}

func entry() *logrus.Entry {
	_, file, no, ok := runtime.Caller(2)
	if !ok {
		return logrus.NewEntry(logger)
	}
	return logger.WithField(callerField, fmt.Sprintf("%-15s:%03d", path.Base(file), no))
}

// CustomTextFormatter ...
type CustomTextFormatter struct {
	logrus.TextFormatter
	name string
}

// Format renders a single log entry
func (f *CustomTextFormatter) Format(entry *logrus.Entry) ([]byte, error) {
	if caller, ok := entry.Data[callerField]; ok {
		data := make(logrus.Fields, len(entry.Data))
		for key, value := range entry.Data {
			if key != callerField {
				data[key] = value
			}
		}
		formatted := *entry
		formatted.Data = data
		formatted.Message = fmt.Sprintf("[%s][%s]%s", f.name, caller, entry.Message)
		return f.TextFormatter.Format(&formatted)
	}
	return f.TextFormatter.Format(entry)
}
