package core

import (
	"fmt"
	"image/color"
	"strings"
	"time"
)

// Config holds all process-level configuration values.
// Slot definitions live in a separate YAML file (see the slots package);
// this struct covers everything sourced from the environment.
type Config struct {
	// SlotsFile is the path to the YAML slot configuration file
	SlotsFile string

	// LogFile is the path to the rotating log file
	LogFile string

	// DevMode enables debug-level, human-readable console logging
	DevMode bool

	// AdminPasswordHash is the bcrypt hash used to authorize admin commands.
	// Empty means admin commands are disabled.
	AdminPasswordHash string

	// MaxConcurrentRenders bounds the dispatcher worker pool
	MaxConcurrentRenders int

	// RenderRateEvery is the minimum interval between render starts
	// (zero disables rate limiting)
	RenderRateEvery time.Duration

	// TextColor is the fill color for rendered text
	TextColor color.NRGBA
}

// Configuration defaults
const (
	DefaultSlotsFile            = "slots.yaml"
	DefaultLogFile              = "did-you-just-say.log"
	DefaultMaxConcurrentRenders = 4
)

// LoadConfig reads process configuration from the environment.
// godotenv should already have populated the environment from .env.
func LoadConfig() (*Config, error) {
	cfg := &Config{
		SlotsFile:            GetEnvOrDefault("SLOTS_FILE", DefaultSlotsFile),
		LogFile:              GetEnvOrDefault("LOG_FILE", DefaultLogFile),
		DevMode:              ParseBoolEnv("DEV_MODE", false),
		AdminPasswordHash:    strings.TrimSpace(GetEnvOrDefault("BOT_ADMIN_PASSWORD_HASH", "")),
		MaxConcurrentRenders: ParseIntEnv("MAX_CONCURRENT_RENDERS", DefaultMaxConcurrentRenders),
		RenderRateEvery:      ParseDurationEnv("RENDER_RATE_EVERY", 0),
	}

	if cfg.MaxConcurrentRenders < 1 {
		cfg.MaxConcurrentRenders = 1
	}

	textColor, err := ParseHexColor(GetEnvOrDefault("TEXT_COLOR", "#000000"))
	if err != nil {
		return nil, fmt.Errorf("invalid TEXT_COLOR: %w", err)
	}
	cfg.TextColor = textColor

	return cfg, nil
}

// ParseHexColor parses a "#RRGGBB" or "#RRGGBBAA" hex string into an NRGBA color.
func ParseHexColor(s string) (color.NRGBA, error) {
	s = strings.TrimPrefix(strings.TrimSpace(s), "#")

	var c color.NRGBA
	c.A = 0xff

	switch len(s) {
	case 6:
		if _, err := fmt.Sscanf(s, "%02x%02x%02x", &c.R, &c.G, &c.B); err != nil {
			return color.NRGBA{}, fmt.Errorf("malformed hex color %q", s)
		}
	case 8:
		if _, err := fmt.Sscanf(s, "%02x%02x%02x%02x", &c.R, &c.G, &c.B, &c.A); err != nil {
			return color.NRGBA{}, fmt.Errorf("malformed hex color %q", s)
		}
	default:
		return color.NRGBA{}, fmt.Errorf("hex color %q must be RRGGBB or RRGGBBAA", s)
	}

	return c, nil
}
