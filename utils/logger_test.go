package utils

import (
	"bytes"
	"strings"
	"testing"
)

func captureLog(t *testing.T, level LogLevel, emit func()) string {
	t.Helper()
	var buf bytes.Buffer
	prevOutput, prevLevel := logOutput, GlobalLogLevel
	logOutput, GlobalLogLevel = &buf, level
	defer func() {
		logOutput, GlobalLogLevel = prevOutput, prevLevel
	}()
	emit()
	return buf.String()
}

func TestLogLevelGating(t *testing.T) {
	out := captureLog(t, LogLevelError, func() {
		Errorf("test", "kept %d", 1)
		Noticef("test", "dropped")
		Debugf("test", "dropped")
	})

	if !strings.Contains(out, "[test] ERROR kept 1") {
		t.Fatalf("expected error line, got %q", out)
	}
	if strings.Contains(out, "dropped") {
		t.Fatalf("expected gated lines to be dropped, got %q", out)
	}
}

func TestLogLevelNoticeAndDebug(t *testing.T) {
	out := captureLog(t, LogLevelNotice|LogLevelDebug, func() {
		if !IsLogLevelDebug() {
			t.Error("expected debug level to be enabled")
		}
		Noticef("test", "notice line")
		Debugf("test", "debug line")
	})

	if !strings.Contains(out, "[test] NOTICE notice line") {
		t.Fatalf("expected notice line, got %q", out)
	}
	if !strings.Contains(out, "[test] DEBUG debug line") {
		t.Fatalf("expected debug line, got %q", out)
	}
}

func TestIsLogLevelDebugDefaultsOff(t *testing.T) {
	_ = captureLog(t, LogLevelError|LogLevelInfo, func() {
		if IsLogLevelDebug() {
			t.Error("debug must be off at the default level")
		}
	})
}
