package slots

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/atomicparade/did-you-just-say/core"
)

// validSlot returns a minimal valid slot for building test tables.
func validSlot(command string, isDefault bool) Slot {
	return Slot{
		ImagePath: "images/" + command + ".png",
		FontPath:  "fonts/test.ttf",
		FontSize:  32,
		Box:       Box{Left: 10, Top: 10, Right: 200, Bottom: 100},
		Command:   command,
		IsDefault: isDefault,
	}
}

// TestLoadValidation tests that invalid slot tables are rejected with the
// expected configuration error codes.
func TestLoadValidation(t *testing.T) {
	tests := []struct {
		name         string
		list         []Slot
		reserved     []string
		expectedCode string
	}{
		{
			name:         "empty list",
			list:         nil,
			expectedCode: core.ErrCodeNoSlots,
		},
		{
			name: "duplicate command",
			list: []Slot{
				validSlot("wide", false),
				validSlot("wide", false),
			},
			expectedCode: core.ErrCodeDuplicateCommand,
		},
		{
			name: "duplicate command different case",
			list: []Slot{
				validSlot("wide", false),
				validSlot("WIDE", false),
			},
			expectedCode: core.ErrCodeDuplicateCommand,
		},
		{
			name: "multiple defaults",
			list: []Slot{
				validSlot("a", true),
				validSlot("b", true),
			},
			expectedCode: core.ErrCodeMultipleDefaults,
		},
		{
			name: "multiple defaults without commands",
			list: []Slot{
				validSlot("", true),
				validSlot("", true),
			},
			expectedCode: core.ErrCodeMultipleDefaults,
		},
		{
			name: "zero width box",
			list: []Slot{
				{
					ImagePath: "x.png",
					FontPath:  "x.ttf",
					FontSize:  32,
					Box:       Box{Left: 50, Top: 10, Right: 50, Bottom: 100},
				},
			},
			expectedCode: core.ErrCodeInvalidBox,
		},
		{
			name: "inverted box",
			list: []Slot{
				{
					ImagePath: "x.png",
					FontPath:  "x.ttf",
					FontSize:  32,
					Box:       Box{Left: 100, Top: 100, Right: 10, Bottom: 10},
				},
			},
			expectedCode: core.ErrCodeInvalidBox,
		},
		{
			name: "zero font size",
			list: []Slot{
				{
					ImagePath: "x.png",
					FontPath:  "x.ttf",
					FontSize:  0,
					Box:       Box{Left: 0, Top: 0, Right: 100, Bottom: 100},
				},
			},
			expectedCode: core.ErrCodeInvalidFontSize,
		},
		{
			name: "reserved command",
			list: []Slot{
				validSlot("auth", false),
			},
			reserved:     []string{"auth", "quit"},
			expectedCode: core.ErrCodeReservedCommand,
		},
		{
			name: "reserved command different case",
			list: []Slot{
				validSlot("QUIT", false),
			},
			reserved:     []string{"auth", "quit"},
			expectedCode: core.ErrCodeReservedCommand,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(tt.list, tt.reserved...)
			if err == nil {
				t.Fatal("Load() expected error, got nil")
			}
			if code := core.GetErrorCode(err); code != tt.expectedCode {
				t.Errorf("Load() error code = %q, want %q", code, tt.expectedCode)
			}
		})
	}
}

// TestLoadValid tests that a well-formed slot table loads.
func TestLoadValid(t *testing.T) {
	registry, err := Load([]Slot{
		validSlot("wide", false),
		validSlot("", true),
	})
	if err != nil {
		t.Fatalf("Load() unexpected error: %v", err)
	}

	if registry.Len() != 2 {
		t.Errorf("Len() = %d, want 2", registry.Len())
	}

	if _, ok := registry.Default(); !ok {
		t.Error("Default() = false, want a default slot")
	}
}

// TestLookup tests case-insensitive command matching.
func TestLookup(t *testing.T) {
	registry, err := Load([]Slot{
		validSlot("wide", false),
		validSlot("tall", true),
	})
	if err != nil {
		t.Fatalf("Load() unexpected error: %v", err)
	}

	tests := []struct {
		name        string
		token       string
		expectMatch bool
		expectedCmd string
	}{
		{name: "exact match", token: "wide", expectMatch: true, expectedCmd: "wide"},
		{name: "uppercase match", token: "WIDE", expectMatch: true, expectedCmd: "wide"},
		{name: "mixed case match", token: "Tall", expectMatch: true, expectedCmd: "tall"},
		{name: "no match", token: "narrow", expectMatch: false},
		{name: "empty token", token: "", expectMatch: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			slot, ok := registry.Lookup(tt.token)
			if ok != tt.expectMatch {
				t.Fatalf("Lookup(%q) ok = %v, want %v", tt.token, ok, tt.expectMatch)
			}
			if ok && slot.Command != tt.expectedCmd {
				t.Errorf("Lookup(%q) command = %q, want %q", tt.token, slot.Command, tt.expectedCmd)
			}
		})
	}
}

// TestDefaultAbsent tests a registry with no default slot.
func TestDefaultAbsent(t *testing.T) {
	registry, err := Load([]Slot{validSlot("wide", false)})
	if err != nil {
		t.Fatalf("Load() unexpected error: %v", err)
	}

	if _, ok := registry.Default(); ok {
		t.Error("Default() = true, want false for a registry without a default")
	}
}

// TestLoadFile tests reading the YAML configuration file.
func TestLoadFile(t *testing.T) {
	dir := t.TempDir()

	t.Run("valid file", func(t *testing.T) {
		path := filepath.Join(dir, "slots.yaml")
		content := `slots:
  - filename: images/wide.png
    font: fonts/test.ttf
    font_size: 32
    left: 10
    top: 10
    right: 200
    bottom: 100
    command: wide
  - filename: images/base.png
    font: fonts/test.ttf
    font_size: 24
    left: 0
    top: 0
    right: 300
    bottom: 80
    text_prefix: 'Did you just say "'
    text_suffix: '"?'
    is_default: true
`
		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			t.Fatalf("failed to write test file: %v", err)
		}

		registry, err := LoadFile(path)
		if err != nil {
			t.Fatalf("LoadFile() unexpected error: %v", err)
		}

		if registry.Len() != 2 {
			t.Errorf("Len() = %d, want 2", registry.Len())
		}

		slot, ok := registry.Lookup("wide")
		if !ok {
			t.Fatal("Lookup(wide) = false, want true")
		}
		if slot.Box.Width() != 190 {
			t.Errorf("Box.Width() = %d, want 190", slot.Box.Width())
		}

		def, ok := registry.Default()
		if !ok {
			t.Fatal("Default() = false, want true")
		}
		if def.TextPrefix != `Did you just say "` {
			t.Errorf("TextPrefix = %q", def.TextPrefix)
		}
		if def.TextSuffix != `"?` {
			t.Errorf("TextSuffix = %q", def.TextSuffix)
		}
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadFile(filepath.Join(dir, "does-not-exist.yaml"))
		if code := core.GetErrorCode(err); code != core.ErrCodeSlotsFileMissing {
			t.Errorf("LoadFile() error code = %q, want %q", code, core.ErrCodeSlotsFileMissing)
		}
	})

	t.Run("malformed yaml", func(t *testing.T) {
		path := filepath.Join(dir, "bad.yaml")
		if err := os.WriteFile(path, []byte("slots: [unclosed"), 0644); err != nil {
			t.Fatalf("failed to write test file: %v", err)
		}

		_, err := LoadFile(path)
		if code := core.GetErrorCode(err); code != core.ErrCodeSlotsFileInvalid {
			t.Errorf("LoadFile() error code = %q, want %q", code, core.ErrCodeSlotsFileInvalid)
		}
	})
}

// TestDisplayName tests slot naming for logs and errors.
func TestDisplayName(t *testing.T) {
	tests := []struct {
		name     string
		slot     Slot
		expected string
	}{
		{name: "command", slot: Slot{Command: "wide", ImagePath: "x.png"}, expected: "wide"},
		{name: "default", slot: Slot{IsDefault: true, ImagePath: "x.png"}, expected: "default"},
		{name: "image path", slot: Slot{ImagePath: "x.png"}, expected: "x.png"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.slot.DisplayName(); got != tt.expected {
				t.Errorf("DisplayName() = %q, want %q", got, tt.expected)
			}
		})
	}
}
