// Package logging provides the standard-library backed guestbook.Logger used by the binaries.
package logging

import (
	"log"
)

// SimpleLogger implements guestbook.Logger on top of a *log.Logger.
// Debug output is dropped unless Debug is set.
type SimpleLogger struct {
	Logger *log.Logger
	Debug  bool
}

// New creates a SimpleLogger writing through the standard logger.
func New(debug bool) *SimpleLogger {
	return &SimpleLogger{Logger: log.Default(), Debug: debug}
}

func (l *SimpleLogger) Debugf(format string, args ...interface{}) {
	if l.Debug {
		l.Logger.Printf("[DEBUG] "+format, args...)
	}
}
func (l *SimpleLogger) Infof(format string, args ...interface{}) {
	l.Logger.Printf("[INFO] "+format, args...)
}
func (l *SimpleLogger) Warnf(format string, args ...interface{}) {
	l.Logger.Printf("[WARN] "+format, args...)
}
func (l *SimpleLogger) Errorf(format string, args ...interface{}) {
	l.Logger.Printf("[ERROR] "+format, args...)
}
func (l *SimpleLogger) Info(message string) {
	l.Logger.Printf("[INFO] %s", message)
}
