// Package slots defines the slot configuration model and the registry that
// maps command keywords to slots. A slot names a base image, a font, a font
// size, and the bounding box that rendered text must stay inside.
package slots

// Box is the rectangular region of the base image that rendered text must be
// fully contained in. Coordinates are pixels in the base image's coordinate
// space; Left < Right and Top < Bottom for a valid box.
type Box struct {
	Left   int `yaml:"left"`
	Top    int `yaml:"top"`
	Right  int `yaml:"right"`
	Bottom int `yaml:"bottom"`
}

// Width returns the box width in pixels.
func (b Box) Width() int {
	return b.Right - b.Left
}

// Height returns the box height in pixels.
func (b Box) Height() int {
	return b.Bottom - b.Top
}

// Valid reports whether the box has positive width and height.
func (b Box) Valid() bool {
	return b.Width() > 0 && b.Height() > 0
}

// Slot is a single image/font/box configuration a user can target, either via
// its command keyword or as the default when no keyword matches.
type Slot struct {
	// ImagePath is the path to the base image file (PNG, JPEG, or GIF)
	ImagePath string `yaml:"filename"`

	// FontPath is the path to the TrueType/OpenType font file
	FontPath string `yaml:"font"`

	// FontSize is the starting font size in pixels. The composer may step
	// down from this size to make text fit, never up.
	FontSize int `yaml:"font_size"`

	// Box is the bounding box text must stay inside
	Box Box `yaml:",inline"`

	// TextPrefix is prepended to the user's text before layout
	TextPrefix string `yaml:"text_prefix"`

	// TextSuffix is appended to the user's text before layout
	TextSuffix string `yaml:"text_suffix"`

	// Command is the keyword that selects this slot (empty for none).
	// Matching is case-insensitive.
	Command string `yaml:"command"`

	// IsDefault marks the slot used when no command matches.
	// At most one slot may be the default.
	IsDefault bool `yaml:"is_default"`
}

// DisplayName returns a human-readable identifier for the slot,
// used in error and log messages.
func (s Slot) DisplayName() string {
	if s.Command != "" {
		return s.Command
	}
	if s.IsDefault {
		return "default"
	}
	return s.ImagePath
}
