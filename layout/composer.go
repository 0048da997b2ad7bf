package layout

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"

	"github.com/atomicparade/did-you-just-say/slots"
)

// ErrTextTooLarge is returned when the text cannot fit the bounding box even
// at the minimum font size. The render is refused rather than clipped so that
// whatever is returned to the user is always fully visible.
var ErrTextTooLarge = errors.New("layout: text does not fit the bounding box at the minimum font size")

// Size fallback parameters. Sizes descend from the slot's configured size in
// fixed steps until the text fits or the floor is reached; the size never
// increases during a compose.
const (
	// MinFontSize is the smallest size tried before giving up
	MinFontSize = 8

	// SizeStep is the decrement between attempts
	SizeStep = 2

	// fontDPI is the rasterization density; 72 makes font sizes equal pixels
	fontDPI = 72
)

// Compose lays out the slot's prefix + user text + suffix inside the slot's
// bounding box and returns the resulting Plan.
//
// The algorithm, per attempt size:
//  1. Greedily word-wrap the text to the box width.
//  2. If some word is wider than the box, or the wrapped block is taller
//     than the box, step the size down and retry.
//  3. At the floor size, words that still do not fit a line are split at
//     character granularity as a last resort.
//
// Once a fitting size and line set are found, the block is centered: each
// line horizontally within the box, the block as a whole vertically.
//
// Leading and trailing whitespace in the user text is trimmed before the
// prefix and suffix are attached, so the configured framing is exact. An
// empty final string yields a valid empty plan.
//
// Compose is a pure function: the same inputs always produce the same Plan.
func Compose(text string, slot slots.Slot, fnt *opentype.Font) (*Plan, error) {
	full := slot.TextPrefix + strings.TrimSpace(text) + slot.TextSuffix
	if strings.TrimSpace(full) == "" {
		return &Plan{Size: float64(slot.FontSize)}, nil
	}

	floor := MinFontSize
	if slot.FontSize < floor {
		floor = slot.FontSize
	}

	size := slot.FontSize
	for {
		atFloor := size <= floor

		plan, err := composeAt(full, slot, fnt, size, atFloor)
		if err != nil {
			return nil, err
		}
		if plan != nil {
			return plan, nil
		}

		if atFloor {
			return nil, ErrTextTooLarge
		}
		size -= SizeStep
		if size < floor {
			size = floor
		}
	}
}

// composeAt attempts a layout at a single font size. It returns a nil plan
// (and nil error) when the text does not fit at this size.
func composeAt(text string, slot slots.Slot, fnt *opentype.Font, size int, allowCharSplit bool) (*Plan, error) {
	face, err := opentype.NewFace(fnt, &opentype.FaceOptions{
		Size:    float64(size),
		DPI:     fontDPI,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("layout: create face at size %d: %w", size, err)
	}
	defer face.Close()

	boxWidth := fixed.I(slot.Box.Width())

	lines, feasible := wrapWords(face, text, boxWidth)
	if !feasible {
		if !allowCharSplit {
			return nil, nil
		}
		lines = wrapChars(face, text, boxWidth)
	}

	if maxLineWidth(face, lines) > boxWidth {
		// Only possible after a char split left a single over-wide rune.
		return nil, nil
	}

	metrics := face.Metrics()
	lineHeight := (metrics.Ascent + metrics.Descent).Ceil()
	totalHeight := len(lines) * lineHeight
	if totalHeight > slot.Box.Height() {
		return nil, nil
	}

	plan := &Plan{
		Lines: make([]Line, 0, len(lines)),
		Size:  float64(size),
	}

	blockTop := slot.Box.Top + (slot.Box.Height()-totalHeight)/2
	for i, line := range lines {
		lineWidth := font.MeasureString(face, line)
		plan.Lines = append(plan.Lines, Line{
			Text: line,
			X:    fixed.I(slot.Box.Left) + (boxWidth-lineWidth)/2,
			Y:    fixed.I(blockTop+i*lineHeight) + metrics.Ascent,
		})
	}

	return plan, nil
}
