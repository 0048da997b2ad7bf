package validation

import (
	"fmt"
	"image"
	"os"
	"strings"

	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	"golang.org/x/image/font/opentype"

	"github.com/atomicparade/did-you-just-say/slots"
)

// slotsChecker performs the individual validation checks against a slot
// configuration file and the assets it references.
type slotsChecker struct {
	path     string
	reserved []string
	registry *slots.Registry
}

func newSlotsChecker(path string, reserved []string) *slotsChecker {
	return &slotsChecker{path: path, reserved: reserved}
}

// CheckFileExists verifies the slot configuration file exists and is readable.
func (c *slotsChecker) CheckFileExists() (bool, string, error) {
	info, err := os.Stat(c.path)
	if err != nil {
		if os.IsNotExist(err) {
			return false, "Not found", fmt.Errorf("slot configuration file not found: %s", c.path)
		}
		return false, "Not readable", fmt.Errorf("cannot access slot configuration file: %w", err)
	}
	if info.IsDir() {
		return false, "Is a directory", fmt.Errorf("%s is a directory, not a file", c.path)
	}
	return true, c.path, nil
}

// CheckSlotTable loads and validates the slot table, keeping the registry for
// the asset checks that follow.
func (c *slotsChecker) CheckSlotTable() (bool, string, error) {
	registry, err := slots.LoadFile(c.path, c.reserved...)
	if err != nil {
		return false, "Invalid", err
	}
	c.registry = registry

	message := fmt.Sprintf("%d slots", registry.Len())
	if commands := registry.Commands(); len(commands) > 0 {
		message += fmt.Sprintf(" (commands: %s)", strings.Join(commands, ", "))
	}
	return true, message, nil
}

// CheckImages verifies every slot's base image can be opened and decoded.
func (c *slotsChecker) CheckImages() (bool, string, error) {
	checked := make(map[string]bool)
	for _, slot := range c.registry.Slots() {
		if checked[slot.ImagePath] {
			continue
		}
		checked[slot.ImagePath] = true

		f, err := os.Open(slot.ImagePath)
		if err != nil {
			return false, slot.DisplayName(), fmt.Errorf("cannot open image %s: %w", slot.ImagePath, err)
		}
		_, _, err = image.DecodeConfig(f)
		f.Close()
		if err != nil {
			return false, slot.DisplayName(), fmt.Errorf("cannot decode image %s: %w", slot.ImagePath, err)
		}
	}
	return true, fmt.Sprintf("%d images", len(checked)), nil
}

// CheckFonts verifies every slot's font file can be read and parsed.
func (c *slotsChecker) CheckFonts() (bool, string, error) {
	checked := make(map[string]bool)
	for _, slot := range c.registry.Slots() {
		if checked[slot.FontPath] {
			continue
		}
		checked[slot.FontPath] = true

		data, err := os.ReadFile(slot.FontPath)
		if err != nil {
			return false, slot.DisplayName(), fmt.Errorf("cannot read font %s: %w", slot.FontPath, err)
		}
		if _, err := opentype.Parse(data); err != nil {
			return false, slot.DisplayName(), fmt.Errorf("cannot parse font %s: %w", slot.FontPath, err)
		}
	}
	return true, fmt.Sprintf("%d fonts", len(checked)), nil
}
