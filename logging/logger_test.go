package logging

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap"
)

// TestNewLoggerWritesFile tests that log entries reach the log file.
func TestNewLoggerWritesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.log")

	logger, err := NewLogger(false, path)
	if err != nil {
		t.Fatalf("NewLogger() error = %v", err)
	}

	logger.Info("render complete", zap.String("slot", "wide"))
	_ = logger.Sync()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("log file was not created: %v", err)
	}

	content := string(data)
	if !strings.Contains(content, "render complete") {
		t.Errorf("log file missing message: %q", content)
	}
	if !strings.Contains(content, `"slot":"wide"`) {
		t.Errorf("log file missing structured field: %q", content)
	}
}

// TestLoggerLevels tests that production mode suppresses debug output.
func TestLoggerLevels(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.log")

	logger, err := NewLogger(false, path)
	if err != nil {
		t.Fatalf("NewLogger() error = %v", err)
	}

	logger.Debug("hidden in production")
	logger.Info("visible")
	_ = logger.Sync()

	data, _ := os.ReadFile(path)
	if strings.Contains(string(data), "hidden in production") {
		t.Error("debug entry written in production mode")
	}
	if !strings.Contains(string(data), "visible") {
		t.Error("info entry missing in production mode")
	}
}

// TestLoggerNamed tests sub-logger naming.
func TestLoggerNamed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.log")

	logger, err := NewLogger(false, path)
	if err != nil {
		t.Fatalf("NewLogger() error = %v", err)
	}

	logger.Named("router").Info("named entry")
	_ = logger.Sync()

	data, _ := os.ReadFile(path)
	if !strings.Contains(string(data), "router") {
		t.Errorf("log file missing logger name: %q", string(data))
	}
}

// TestLoggerWith tests child logger field inheritance.
func TestLoggerWith(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.log")

	logger, err := NewLogger(false, path)
	if err != nil {
		t.Fatalf("NewLogger() error = %v", err)
	}

	child := logger.With(zap.String("request_id", "abc-123"))
	child.Info("first")
	child.Info("second")
	_ = logger.Sync()

	data, _ := os.ReadFile(path)
	if got := strings.Count(string(data), "abc-123"); got != 2 {
		t.Errorf("request_id appears %d times, want 2", got)
	}
}

// TestTestLogger tests that the no-op logger is safe to use everywhere.
func TestTestLogger(t *testing.T) {
	logger := NewTestLogger()

	logger.Debug("x")
	logger.Info("x")
	logger.Warn("x")
	logger.Error("x")
	logger.Infof("formatted %d", 1)
	logger.Named("child").With(zap.Int("n", 1)).Info("x")

	if err := logger.Sync(); err != nil {
		t.Errorf("Sync() error = %v", err)
	}
	if logger.Zap() == nil {
		t.Error("Zap() = nil")
	}
}

// TestDevelopmentFlag tests mode reporting.
func TestDevelopmentFlag(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dev.log")

	dev, err := NewLogger(true, path)
	if err != nil {
		t.Fatalf("NewLogger() error = %v", err)
	}
	if !dev.IsDevelopment() {
		t.Error("IsDevelopment() = false for a development logger")
	}
	if dev.LogFilePath() != path {
		t.Errorf("LogFilePath() = %q, want %q", dev.LogFilePath(), path)
	}
}
