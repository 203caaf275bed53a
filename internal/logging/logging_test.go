package logging

import (
	"bytes"
	"strings"
	"testing"
)

func TestNewWithWriterLevel(t *testing.T) {
	var buf bytes.Buffer
	l := NewWithWriter(&buf, "warn")

	l.Info("hidden")
	l.Warn("shown", "deck", "Intro")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("info message written at warn level: %q", out)
	}
	if !strings.Contains(out, "shown") || !strings.Contains(out, "deck=Intro") {
		t.Errorf("warn message missing or without fields: %q", out)
	}
}

func TestNewWithWriterUnknownLevel(t *testing.T) {
	var buf bytes.Buffer
	l := NewWithWriter(&buf, "chatty")

	l.Debug("debug line")
	l.Info("info line")

	out := buf.String()
	if strings.Contains(out, "debug line") {
		t.Errorf("unknown level should fall back to info, got %q", out)
	}
	if !strings.Contains(out, "info line") {
		t.Errorf("expected info line, got %q", out)
	}
}
