// Package log provides the logger used throughout the emulator.
package log

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

// Fields is a set of structured fields attached to a log entry.
type Fields = logrus.Fields

type Logger interface {
	Infof(format string, args ...interface{})
	Warnf(format string, args ...interface{})
	Errorf(format string, args ...interface{})
	Debugf(format string, args ...interface{})
	WithFields(fields Fields) Logger
}

type logger struct {
	entry *logrus.Entry
}

// New returns a Logger writing plain text lines to stderr.
func New() Logger {
	return NewWithWriter(os.Stderr)
}

// NewWithWriter returns a Logger writing plain text lines to w.
func NewWithWriter(w io.Writer) Logger {
	l := logrus.New()
	l.SetOutput(w)
	l.SetLevel(logrus.InfoLevel)
	l.Formatter = &logrus.TextFormatter{
		DisableColors:    true,
		DisableTimestamp: true,
		DisableSorting:   true,
		DisableQuote:     true,
	}
	return &logger{entry: logrus.NewEntry(l)}
}

// SetDebug enables or disables debug output of a Logger created
// by New. Other loggers are left untouched.
func SetDebug(l Logger, debug bool) {
	lg, ok := l.(*logger)
	if !ok {
		return
	}
	if debug {
		lg.entry.Logger.SetLevel(logrus.DebugLevel)
	} else {
		lg.entry.Logger.SetLevel(logrus.InfoLevel)
	}
}

func (l *logger) Infof(format string, args ...interface{}) {
	l.entry.Infof(format, args...)
}

func (l *logger) Warnf(format string, args ...interface{}) {
	l.entry.Warnf(format, args...)
}

func (l *logger) Errorf(format string, args ...interface{}) {
	l.entry.Errorf(format, args...)
}

func (l *logger) Debugf(format string, args ...interface{}) {
	l.entry.Debugf(format, args...)
}

func (l *logger) WithFields(fields Fields) Logger {
	return &logger{entry: l.entry.WithFields(fields)}
}
