package core

import (
	"fmt"
)

// ConfigError represents a configuration-related error with actionable instructions.
type ConfigError struct {
	Code    string // Error code for programmatic handling
	Message string // Human-readable error message
	Action  string // Actionable instruction for resolution
}

func (e *ConfigError) Error() string {
	if e.Action != "" {
		return fmt.Sprintf("%s. %s", e.Message, e.Action)
	}
	return e.Message
}

// Error codes for configuration errors
const (
	ErrCodeEnvFileMissing   = "ENV_FILE_MISSING"
	ErrCodeSlotsFileMissing = "SLOTS_FILE_MISSING"
	ErrCodeSlotsFileInvalid = "SLOTS_FILE_INVALID"
	ErrCodeNoSlots          = "NO_SLOTS"
	ErrCodeDuplicateCommand = "DUPLICATE_COMMAND"
	ErrCodeMultipleDefaults = "MULTIPLE_DEFAULTS"
	ErrCodeInvalidBox       = "INVALID_BOX"
	ErrCodeInvalidFontSize  = "INVALID_FONT_SIZE"
	ErrCodeReservedCommand  = "RESERVED_COMMAND"
	ErrCodeMissingConfig    = "MISSING_CONFIG"
)

// ErrSlotsFileMissing returns an error for a missing slots configuration file
func ErrSlotsFileMissing(path string) *ConfigError {
	return &ConfigError{
		Code:    ErrCodeSlotsFileMissing,
		Message: fmt.Sprintf("Slot configuration file not found: %s", path),
		Action:  "Copy example.slots.yaml to slots.yaml and configure your images",
	}
}

// ErrSlotsFileInvalid returns an error for a slots file that cannot be parsed
func ErrSlotsFileInvalid(path string, reason string) *ConfigError {
	return &ConfigError{
		Code:    ErrCodeSlotsFileInvalid,
		Message: fmt.Sprintf("Slot configuration file %s could not be parsed: %s", path, reason),
		Action:  "Check the file for YAML syntax errors",
	}
}

// ErrNoSlots returns an error for an empty slot configuration
func ErrNoSlots() *ConfigError {
	return &ConfigError{
		Code:    ErrCodeNoSlots,
		Message: "Slot configuration contains no entries",
		Action:  "Define at least one slot in slots.yaml",
	}
}

// ErrDuplicateCommand returns an error for two slots sharing a command keyword
func ErrDuplicateCommand(command string) *ConfigError {
	return &ConfigError{
		Code:    ErrCodeDuplicateCommand,
		Message: fmt.Sprintf("Command %q is assigned to more than one slot", command),
		Action:  "Give each slot a unique command keyword",
	}
}

// ErrMultipleDefaults returns an error for more than one default slot
func ErrMultipleDefaults() *ConfigError {
	return &ConfigError{
		Code:    ErrCodeMultipleDefaults,
		Message: "More than one slot is marked as the default",
		Action:  "Set is_default on at most one slot",
	}
}

// ErrInvalidBox returns an error for a degenerate bounding box
func ErrInvalidBox(slotName string, left, top, right, bottom int) *ConfigError {
	return &ConfigError{
		Code:    ErrCodeInvalidBox,
		Message: fmt.Sprintf("Slot %q has a degenerate bounding box (%d,%d,%d,%d)", slotName, left, top, right, bottom),
		Action:  "Ensure left < right and top < bottom",
	}
}

// ErrInvalidFontSize returns an error for a non-positive font size
func ErrInvalidFontSize(slotName string, size int) *ConfigError {
	return &ConfigError{
		Code:    ErrCodeInvalidFontSize,
		Message: fmt.Sprintf("Slot %q has invalid font size %d", slotName, size),
		Action:  "Set font_size to a positive pixel value",
	}
}

// ErrReservedCommand returns an error for a slot command that collides with
// a built-in bot command
func ErrReservedCommand(command string) *ConfigError {
	return &ConfigError{
		Code:    ErrCodeReservedCommand,
		Message: fmt.Sprintf("Command %q is reserved for bot administration", command),
		Action:  "Choose a different command keyword for this slot",
	}
}

// ErrMissingConfig returns an error for missing required configuration
func ErrMissingConfig(varName string) *ConfigError {
	return &ConfigError{
		Code:    ErrCodeMissingConfig,
		Message: fmt.Sprintf("Missing required configuration: %s", varName),
		Action:  fmt.Sprintf("Set %s in your .env file", varName),
	}
}

// IsConfigError checks if an error is a ConfigError and returns it if so
func IsConfigError(err error) (*ConfigError, bool) {
	if configErr, ok := err.(*ConfigError); ok {
		return configErr, true
	}
	return nil, false
}

// GetErrorCode extracts the error code from an error if it's a ConfigError
func GetErrorCode(err error) string {
	if configErr, ok := IsConfigError(err); ok {
		return configErr.Code
	}
	return ""
}
