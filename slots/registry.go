package slots

import (
	"errors"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/atomicparade/did-you-just-say/core"
)

// ErrNoDefaultSlot is returned when a message carries no recognized command
// and no slot is configured as the default.
var ErrNoDefaultSlot = errors.New("slots: no default slot configured")

// Registry is the immutable command-to-slot mapping. It is built once at
// startup by Load and is safe for unsynchronized concurrent reads afterwards.
type Registry struct {
	slots     []Slot
	byCommand map[string]Slot
	def       *Slot
}

// slotsFile is the YAML document shape for the slot configuration file.
type slotsFile struct {
	Slots []Slot `yaml:"slots"`
}

// Load validates a slot list and builds a Registry from it.
//
// Validation failures are fatal configuration errors:
//   - a non-empty command assigned to two slots (case-insensitive)
//   - more than one slot marked is_default
//   - a degenerate bounding box (zero or negative width/height)
//   - a non-positive font size
//   - a command colliding with one of the reserved keywords
//
// The reserved list carries the connector's built-in command words (such as
// the admin auth and quit commands) so a slot cannot shadow them.
func Load(list []Slot, reserved ...string) (*Registry, error) {
	if len(list) == 0 {
		return nil, core.ErrNoSlots()
	}

	reservedSet := make(map[string]struct{}, len(reserved))
	for _, word := range reserved {
		reservedSet[strings.ToLower(word)] = struct{}{}
	}

	r := &Registry{
		slots:     make([]Slot, len(list)),
		byCommand: make(map[string]Slot, len(list)),
	}
	copy(r.slots, list)

	for _, slot := range r.slots {
		if !slot.Box.Valid() {
			return nil, core.ErrInvalidBox(slot.DisplayName(),
				slot.Box.Left, slot.Box.Top, slot.Box.Right, slot.Box.Bottom)
		}
		if slot.FontSize <= 0 {
			return nil, core.ErrInvalidFontSize(slot.DisplayName(), slot.FontSize)
		}

		if slot.Command != "" {
			key := strings.ToLower(slot.Command)
			if _, taken := reservedSet[key]; taken {
				return nil, core.ErrReservedCommand(slot.Command)
			}
			if _, taken := r.byCommand[key]; taken {
				return nil, core.ErrDuplicateCommand(slot.Command)
			}
			r.byCommand[key] = slot
		}

		if slot.IsDefault {
			if r.def != nil {
				return nil, core.ErrMultipleDefaults()
			}
			def := slot
			r.def = &def
		}
	}

	return r, nil
}

// LoadFile reads and parses the YAML slot configuration file, then validates
// it via Load.
func LoadFile(path string, reserved ...string) (*Registry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, core.ErrSlotsFileMissing(path)
		}
		return nil, err
	}

	var file slotsFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, core.ErrSlotsFileInvalid(path, err.Error())
	}

	return Load(file.Slots, reserved...)
}

// Lookup returns the slot registered for the given command token.
// Matching is case-insensitive. The second return value is false when the
// token matches no registered command.
func (r *Registry) Lookup(token string) (Slot, bool) {
	slot, ok := r.byCommand[strings.ToLower(token)]
	return slot, ok
}

// Default returns the default slot, if one is configured.
func (r *Registry) Default() (Slot, bool) {
	if r.def == nil {
		return Slot{}, false
	}
	return *r.def, true
}

// Slots returns a copy of all registered slots in configuration order.
func (r *Registry) Slots() []Slot {
	out := make([]Slot, len(r.slots))
	copy(out, r.slots)
	return out
}

// Len returns the number of registered slots.
func (r *Registry) Len() int {
	return len(r.slots)
}

// Commands returns the registered command keywords in lowercase.
func (r *Registry) Commands() []string {
	out := make([]string, 0, len(r.byCommand))
	for command := range r.byCommand {
		out = append(out, command)
	}
	return out
}
