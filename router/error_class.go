package router

import (
	"errors"

	"github.com/atomicparade/did-you-just-say/layout"
	"github.com/atomicparade/did-you-just-say/render"
	"github.com/atomicparade/did-you-just-say/slots"
)

// Error classification labels recorded in metrics and used by the connector
// layer to choose user-facing messaging.
const (
	ClassNoDefaultSlot = "no_default_slot"
	ClassTextTooLarge  = "text_too_large"
	ClassImageRead     = "image_read"
	ClassImageDecode   = "image_decode"
	ClassFontRead      = "font_read"
	ClassFontParse     = "font_parse"
	ClassOther         = "other"
)

// ErrorClass maps a pipeline error to its classification label.
func ErrorClass(err error) string {
	switch {
	case errors.Is(err, slots.ErrNoDefaultSlot):
		return ClassNoDefaultSlot
	case errors.Is(err, layout.ErrTextTooLarge):
		return ClassTextTooLarge
	case errors.Is(err, render.ErrImageRead):
		return ClassImageRead
	case errors.Is(err, render.ErrImageDecode):
		return ClassImageDecode
	case errors.Is(err, render.ErrFontRead):
		return ClassFontRead
	case errors.Is(err, render.ErrFontParse):
		return ClassFontParse
	default:
		return ClassOther
	}
}

// IsUserError reports whether the error is recoverable and attributable to
// the request itself (text too long, no slot to use) rather than to a
// configuration or deployment defect.
func IsUserError(err error) bool {
	return errors.Is(err, layout.ErrTextTooLarge) || errors.Is(err, slots.ErrNoDefaultSlot)
}
