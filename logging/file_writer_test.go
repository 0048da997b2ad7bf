package logging

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// TestFileWriterDefaults tests zero-value config handling.
func TestFileWriterDefaults(t *testing.T) {
	cfg := applyFileWriterDefaults(FileWriterConfig{})

	if cfg.MaxSizeMB != DefaultMaxSizeMB {
		t.Errorf("MaxSizeMB = %d, want %d", cfg.MaxSizeMB, DefaultMaxSizeMB)
	}
	if cfg.MaxBackups != DefaultMaxBackups {
		t.Errorf("MaxBackups = %d, want %d", cfg.MaxBackups, DefaultMaxBackups)
	}
	if cfg.MaxAgeDays != DefaultMaxAgeDays {
		t.Errorf("MaxAgeDays = %d, want %d", cfg.MaxAgeDays, DefaultMaxAgeDays)
	}
}

// TestFileWriterCustomValuesKept tests that explicit values survive.
func TestFileWriterCustomValuesKept(t *testing.T) {
	cfg := applyFileWriterDefaults(FileWriterConfig{MaxSizeMB: 10, MaxBackups: 2, MaxAgeDays: 7})

	if cfg.MaxSizeMB != 10 || cfg.MaxBackups != 2 || cfg.MaxAgeDays != 7 {
		t.Errorf("custom config overwritten: %+v", cfg)
	}
}

// TestFileWriterWrites tests that the syncer creates and appends to the file.
func TestFileWriterWrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "writer.log")

	writer := NewFileWriter(path)
	if _, err := writer.Write([]byte("hello log\n")); err != nil {
		t.Fatalf("Write() error = %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("log file was not created: %v", err)
	}
	if !strings.Contains(string(data), "hello log") {
		t.Errorf("log file content = %q", string(data))
	}
}
