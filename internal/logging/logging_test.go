package logging

import (
	"bytes"
	"strings"
	"testing"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want Level
	}{
		{"debug", LevelDebug},
		{"INFO", LevelInfo},
		{"warning", LevelWarn},
		{"WARN", LevelWarn},
		{"error", LevelError},
		{"Debug", LevelDebug},
		{" Warning ", LevelWarn},
		{"Error", LevelError},
		{"", LevelInfo},
		{"chatty", LevelInfo},
	}

	for _, tt := range tests {
		if got := ParseLevel(tt.in); got != tt.want {
			t.Errorf("ParseLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestLevelString(t *testing.T) {
	if LevelWarn.String() != "WARN" {
		t.Errorf("LevelWarn.String() = %q", LevelWarn.String())
	}
	if Level(42).String() != "UNKNOWN" {
		t.Errorf("Level(42).String() = %q", Level(42).String())
	}
}

func TestLogger_FiltersByLevel(t *testing.T) {
	var buf bytes.Buffer
	log := New(LevelInfo, &buf)

	log.Debug("hidden %d", 1)
	log.Info("preset %s selected", "Sun")
	log.Error("boom")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("debug line should be filtered:\n%s", out)
	}
	if !strings.Contains(out, "[INFO]") || !strings.Contains(out, "preset Sun selected") {
		t.Errorf("missing info line:\n%s", out)
	}
	if !strings.Contains(out, "[ERROR]") {
		t.Errorf("missing error line:\n%s", out)
	}
}

func TestLogger_SetLevel(t *testing.T) {
	var buf bytes.Buffer
	log := New(LevelError, &buf)

	log.Warn("quiet")
	log.SetLevel(LevelDebug)
	log.Debug("loud")

	out := buf.String()
	if strings.Contains(out, "quiet") {
		t.Errorf("warn should be filtered at error level:\n%s", out)
	}
	if !strings.Contains(out, "loud") {
		t.Errorf("debug should pass after SetLevel:\n%s", out)
	}
}

func TestLogger_NamedWith(t *testing.T) {
	var buf bytes.Buffer
	log := New(LevelInfo, &buf).Named("ui").With("session", "abc")

	log.Info("ready")

	out := buf.String()
	if !strings.Contains(out, "ls-blackbody.ui") {
		t.Errorf("missing component name:\n%s", out)
	}
	if !strings.Contains(out, "session=abc") {
		t.Errorf("missing key/value:\n%s", out)
	}
}

func TestDiscard(t *testing.T) {
	log := Discard()
	log.Error("nothing %s", "here")
	log.Named("x").Info("still nothing")
}
