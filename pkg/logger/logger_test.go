package logger

import (
	"strings"
	"testing"
)

func TestLogLevelFiltering(t *testing.T) {
	var buf strings.Builder
	l := &Logger{level: LevelInfo, output: &buf}

	l.log(LevelError, "an error")
	l.log(LevelInfo, "some info")
	l.log(LevelVerbose, "too chatty")
	l.log(LevelDebug, "way too chatty")

	out := buf.String()
	if !strings.Contains(out, "an error") || !strings.Contains(out, "some info") {
		t.Errorf("error/info messages missing:\n%s", out)
	}
	if strings.Contains(out, "chatty") {
		t.Errorf("verbose/debug messages leaked at info level:\n%s", out)
	}
}

func TestLogPrefixes(t *testing.T) {
	var buf strings.Builder
	l := &Logger{level: LevelDebug, output: &buf}

	l.log(LevelError, "e")
	l.log(LevelWarn, "w")
	l.log(LevelInfo, "i")
	l.log(LevelVerbose, "v")
	l.log(LevelDebug, "d")

	out := buf.String()
	for _, prefix := range []string{"ERROR", "WARN", "INFO", "VERBOSE", "DEBUG"} {
		if !strings.Contains(out, prefix) {
			t.Errorf("output missing %s prefix:\n%s", prefix, out)
		}
	}
}

func TestGlobalFunctionsWithoutInitialize(t *testing.T) {
	// Must not panic when the global logger was never initialized.
	Info("ignored")
	Verbosef("ignored %d", 1)
	Debug("ignored")
	Warn("ignored")
	Errorf("ignored %s", "x")
}
