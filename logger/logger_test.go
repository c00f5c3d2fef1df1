package logger

import (
	"bytes"
	"strings"
	"testing"
)

type bufferCloser struct {
	bytes.Buffer
}

func (*bufferCloser) Close() error { return nil }

func TestLoggerLevelFiltering(t *testing.T) {
	buf := &bufferCloser{}
	backend := NewBackend()
	backend.AddLogWriter(buf, LevelTrace)

	log := backend.Logger("TEST")
	log.SetLevel(LevelWarn)

	log.Debugf("filtered")
	log.Warnf("kept")

	out := buf.String()
	if strings.Contains(out, "filtered") {
		t.Error("debug entry was written despite the warn level")
	}
	if !strings.Contains(out, "kept") || !strings.Contains(out, "TEST") {
		t.Errorf("warn entry missing or untagged: %q", out)
	}
}

func TestWriterLevelFiltering(t *testing.T) {
	quiet := &bufferCloser{}
	verbose := &bufferCloser{}
	backend := NewBackend()
	backend.AddLogWriter(quiet, LevelError)
	backend.AddLogWriter(verbose, LevelTrace)

	log := backend.Logger("TEST")
	log.SetLevel(LevelTrace)
	log.Infof("hello")

	if quiet.Len() != 0 {
		t.Error("info entry reached a writer attached at the error level")
	}
	if verbose.Len() == 0 {
		t.Error("info entry did not reach the trace-level writer")
	}
}

func TestLevelFromString(t *testing.T) {
	if level, ok := LevelFromString("debug"); !ok || level != LevelDebug {
		t.Errorf(`LevelFromString("debug"): got %s, %t`, level, ok)
	}
	if _, ok := LevelFromString("nope"); ok {
		t.Error(`LevelFromString("nope"): expected ok=false`)
	}
}
