package validation

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"golang.org/x/image/font/gofont/goregular"
)

// writeValidWorkspace creates a slots file with one slot whose image and font
// both exist, returning the slots file path.
func writeValidWorkspace(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()

	img := image.NewRGBA(image.Rect(0, 0, 100, 50))
	for y := 0; y < 50; y++ {
		for x := 0; x < 100; x++ {
			img.Set(x, y, color.White)
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("failed to encode image: %v", err)
	}

	imagePath := filepath.Join(dir, "base.png")
	if err := os.WriteFile(imagePath, buf.Bytes(), 0644); err != nil {
		t.Fatalf("failed to write image: %v", err)
	}

	fontPath := filepath.Join(dir, "test.ttf")
	if err := os.WriteFile(fontPath, goregular.TTF, 0644); err != nil {
		t.Fatalf("failed to write font: %v", err)
	}

	slotsPath := filepath.Join(dir, "slots.yaml")
	content := "slots:\n" +
		"  - filename: " + imagePath + "\n" +
		"    font: " + fontPath + "\n" +
		"    font_size: 24\n" +
		"    left: 5\n    top: 5\n    right: 95\n    bottom: 45\n" +
		"    is_default: true\n"
	if err := os.WriteFile(slotsPath, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write slots file: %v", err)
	}

	return slotsPath
}

// TestValidatePasses tests a fully valid configuration.
func TestValidatePasses(t *testing.T) {
	slotsPath := writeValidWorkspace(t)

	var out bytes.Buffer
	result := NewSuite(slotsPath).
		WithOutput(&out).
		WithReservedCommands("auth", "quit").
		Validate()

	if !result.Success {
		t.Fatalf("Validate() failed: %s (first error: %v)", result.Summary(), result.GetFirstError())
	}
	if result.PassedSteps != 4 {
		t.Errorf("PassedSteps = %d, want 4", result.PassedSteps)
	}
	if result.FailedSteps != 0 {
		t.Errorf("FailedSteps = %d, want 0", result.FailedSteps)
	}
}

// TestValidateMissingFile tests that later steps are skipped when the slots
// file does not exist.
func TestValidateMissingFile(t *testing.T) {
	var out bytes.Buffer
	result := NewSuite(filepath.Join(t.TempDir(), "missing.yaml")).
		WithOutput(&out).
		Validate()

	if result.Success {
		t.Fatal("Validate() succeeded with a missing slots file")
	}
	if result.FailedSteps != 1 {
		t.Errorf("FailedSteps = %d, want 1", result.FailedSteps)
	}

	skipped := 0
	for _, step := range result.Steps {
		if step.Status == StepSkipped {
			skipped++
		}
	}
	if skipped != 3 {
		t.Errorf("skipped steps = %d, want 3", skipped)
	}

	if result.GetFirstError() == nil {
		t.Error("GetFirstError() = nil for a failed suite")
	}
}

// TestValidateBadSlotTable tests slot table validation failures.
func TestValidateBadSlotTable(t *testing.T) {
	dir := t.TempDir()
	slotsPath := filepath.Join(dir, "slots.yaml")
	content := `slots:
  - filename: x.png
    font: x.ttf
    font_size: 0
    left: 0
    top: 0
    right: 100
    bottom: 100
`
	if err := os.WriteFile(slotsPath, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write slots file: %v", err)
	}

	var out bytes.Buffer
	result := NewSuite(slotsPath).WithOutput(&out).Validate()

	if result.Success {
		t.Fatal("Validate() succeeded with an invalid font size")
	}

	// File exists, table fails, asset steps skipped
	if result.Steps[0].Status != StepPassed {
		t.Errorf("step 0 = %v, want passed", result.Steps[0].Status)
	}
	if result.Steps[1].Status != StepFailed {
		t.Errorf("step 1 = %v, want failed", result.Steps[1].Status)
	}
}

// TestValidateMissingAssets tests asset existence checks.
func TestValidateMissingAssets(t *testing.T) {
	dir := t.TempDir()
	slotsPath := filepath.Join(dir, "slots.yaml")
	content := `slots:
  - filename: /nonexistent/base.png
    font: /nonexistent/test.ttf
    font_size: 24
    left: 0
    top: 0
    right: 100
    bottom: 100
`
	if err := os.WriteFile(slotsPath, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write slots file: %v", err)
	}

	var out bytes.Buffer
	result := NewSuite(slotsPath).WithOutput(&out).Validate()

	if result.Success {
		t.Fatal("Validate() succeeded with missing assets")
	}
	if result.Steps[2].Status != StepFailed {
		t.Errorf("image step = %v, want failed", result.Steps[2].Status)
	}
}

// TestValidateReservedCommand tests reserved keyword enforcement in the suite.
func TestValidateReservedCommand(t *testing.T) {
	dir := t.TempDir()
	slotsPath := filepath.Join(dir, "slots.yaml")
	content := `slots:
  - filename: x.png
    font: x.ttf
    font_size: 24
    left: 0
    top: 0
    right: 100
    bottom: 100
    command: quit
`
	if err := os.WriteFile(slotsPath, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write slots file: %v", err)
	}

	var out bytes.Buffer
	result := NewSuite(slotsPath).
		WithOutput(&out).
		WithReservedCommands("auth", "quit").
		Validate()

	if result.Success {
		t.Fatal("Validate() succeeded with a reserved slot command")
	}
}

// TestFailFast tests that failFast stops after the first failure.
func TestFailFast(t *testing.T) {
	var out bytes.Buffer
	result := NewSuite(filepath.Join(t.TempDir(), "missing.yaml")).
		WithOutput(&out).
		WithFailFast(true).
		Validate()

	if result.Success {
		t.Fatal("Validate() succeeded with a missing slots file")
	}
	if result.TotalSteps != 1 {
		t.Errorf("TotalSteps = %d, want 1 with failFast", result.TotalSteps)
	}
}

// TestStepStatusString tests status naming.
func TestStepStatusString(t *testing.T) {
	tests := []struct {
		status   StepStatus
		expected string
	}{
		{StepPending, "pending"},
		{StepRunning, "running"},
		{StepPassed, "passed"},
		{StepFailed, "failed"},
		{StepWarning, "warning"},
		{StepSkipped, "skipped"},
		{StepStatus(99), "unknown"},
	}

	for _, tt := range tests {
		if got := tt.status.String(); got != tt.expected {
			t.Errorf("StepStatus(%d).String() = %q, want %q", tt.status, got, tt.expected)
		}
	}
}
