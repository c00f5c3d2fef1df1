// Package logger provides the leveled, subsystem-tagged logging
// backend used by the calibrad commands. The library packages
// themselves never log; encoding is pure and silent.
package logger

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/jrick/logrotate/rotator"
	"github.com/pkg/errors"
)

// Level is the level at which a logger is configured. Messages below
// the configured level are filtered.
type Level uint32

// Level constants.
const (
	LevelTrace Level = iota
	LevelDebug
	LevelInfo
	LevelWarn
	LevelError
	LevelCritical
	LevelOff
)

var levelStrs = [...]string{"TRC", "DBG", "INF", "WRN", "ERR", "CRT", "OFF"}

// LevelFromString returns a level based on the input string s. If the
// input can't be interpreted as a valid log level, the info level and
// false are returned.
func LevelFromString(s string) (l Level, ok bool) {
	switch strings.ToLower(s) {
	case "trace", "trc":
		return LevelTrace, true
	case "debug", "dbg":
		return LevelDebug, true
	case "info", "inf":
		return LevelInfo, true
	case "warn", "wrn":
		return LevelWarn, true
	case "error", "err":
		return LevelError, true
	case "critical", "crt":
		return LevelCritical, true
	case "off":
		return LevelOff, true
	default:
		return LevelInfo, false
	}
}

func (l Level) String() string {
	if l >= LevelOff {
		return "OFF"
	}
	return levelStrs[l]
}

const (
	defaultThresholdKB = 10 * 1000
	defaultMaxRolls    = 8
)

type logWriter struct {
	writer io.WriteCloser
	level  Level
}

// Backend fans log entries out to its writers. Writes are serialized,
// so loggers for different subsystems can share one backend freely.
type Backend struct {
	mtx     sync.Mutex
	writers []logWriter
}

// NewBackend creates a new logger backend.
func NewBackend() *Backend {
	return &Backend{}
}

// AddLogWriter adds a destination the backend writes into for entries
// at or above the given level.
func (b *Backend) AddLogWriter(writer io.WriteCloser, level Level) {
	b.mtx.Lock()
	defer b.mtx.Unlock()
	b.writers = append(b.writers, logWriter{writer: writer, level: level})
}

// AddLogFile adds a rotated log file destination, creating the file
// and its directory if they don't exist.
func (b *Backend) AddLogFile(logFile string, level Level) error {
	logDir, _ := filepath.Split(logFile)
	if logDir != "" {
		err := os.MkdirAll(logDir, 0700)
		if err != nil {
			return errors.Wrap(err, "failed to create log directory")
		}
	}
	r, err := rotator.New(logFile, defaultThresholdKB, false, defaultMaxRolls)
	if err != nil {
		return errors.Wrap(err, "failed to create file rotator")
	}
	b.AddLogWriter(r, level)
	return nil
}

// Close closes every writer attached to the backend.
func (b *Backend) Close() {
	b.mtx.Lock()
	defer b.mtx.Unlock()
	for _, w := range b.writers {
		_ = w.writer.Close()
	}
	b.writers = nil
}

// Logger returns a new logger for a particular subsystem that writes
// to the backend. The tag is included in all log messages.
func (b *Backend) Logger(subsystemTag string) *Logger {
	return &Logger{backend: b, tag: subsystemTag, level: LevelInfo}
}

func (b *Backend) write(level Level, tag, msg string) {
	entry := fmt.Sprintf("%s [%s] %s: %s\n",
		time.Now().Format("2006-01-02 15:04:05.000"), level, tag, msg)
	b.mtx.Lock()
	defer b.mtx.Unlock()
	for _, w := range b.writers {
		if level >= w.level {
			_, _ = io.WriteString(w.writer, entry)
		}
	}
}

// Logger is a subsystem logger. It filters by its own level before
// handing entries to the backend.
type Logger struct {
	backend *Backend
	tag     string
	level   Level
}

// SetLevel changes the logger's filtering level.
func (l *Logger) SetLevel(level Level) {
	l.level = level
}

func (l *Logger) logf(level Level, format string, args ...interface{}) {
	if level < l.level {
		return
	}
	l.backend.write(level, l.tag, fmt.Sprintf(format, args...))
}

// Tracef logs at the trace level.
func (l *Logger) Tracef(format string, args ...interface{}) {
	l.logf(LevelTrace, format, args...)
}

// Debugf logs at the debug level.
func (l *Logger) Debugf(format string, args ...interface{}) {
	l.logf(LevelDebug, format, args...)
}

// Infof logs at the info level.
func (l *Logger) Infof(format string, args ...interface{}) {
	l.logf(LevelInfo, format, args...)
}

// Warnf logs at the warn level.
func (l *Logger) Warnf(format string, args ...interface{}) {
	l.logf(LevelWarn, format, args...)
}

// Errorf logs at the error level.
func (l *Logger) Errorf(format string, args ...interface{}) {
	l.logf(LevelError, format, args...)
}

// Criticalf logs at the critical level.
func (l *Logger) Criticalf(format string, args ...interface{}) {
	l.logf(LevelCritical, format, args...)
}
