package layout

import (
	"strings"

	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// wrapWords greedily packs whitespace-delimited words into lines whose
// measured width does not exceed maxWidth. Word order is preserved; words are
// joined with a single space.
//
// The second return value is false when some single word is wider than
// maxWidth on its own. In that case the returned lines are not usable at this
// size; the caller either steps the font size down or, at the size floor,
// falls back to wrapChars.
func wrapWords(face font.Face, text string, maxWidth fixed.Int26_6) ([]string, bool) {
	words := strings.Fields(text)
	if len(words) == 0 {
		return nil, true
	}

	var lines []string
	var current string

	for _, word := range words {
		if font.MeasureString(face, word) > maxWidth {
			return nil, false
		}

		if current == "" {
			current = word
			continue
		}

		candidate := current + " " + word
		if font.MeasureString(face, candidate) <= maxWidth {
			current = candidate
		} else {
			lines = append(lines, current)
			current = word
		}
	}

	if current != "" {
		lines = append(lines, current)
	}

	return lines, true
}

// wrapChars is the last-resort wrap used at the minimum font size: words that
// do not fit a line on their own are split at character granularity. A single
// rune wider than maxWidth still produces an over-wide fragment; the composer
// detects that through the final containment check and reports the text as
// too large rather than emitting a clipped plan.
func wrapChars(face font.Face, text string, maxWidth fixed.Int26_6) []string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return nil
	}

	var lines []string
	var current string

	flush := func() {
		if current != "" {
			lines = append(lines, current)
			current = ""
		}
	}

	for _, word := range words {
		candidate := word
		if current != "" {
			candidate = current + " " + word
		}
		if font.MeasureString(face, candidate) <= maxWidth {
			current = candidate
			continue
		}

		if font.MeasureString(face, word) <= maxWidth {
			flush()
			current = word
			continue
		}

		// The word alone is too wide; emit it rune by rune.
		flush()
		for _, r := range word {
			next := current + string(r)
			if current != "" && font.MeasureString(face, next) > maxWidth {
				lines = append(lines, current)
				current = string(r)
				continue
			}
			current = next
		}
		flush()
	}

	flush()
	return lines
}

// maxLineWidth returns the widest measured line.
func maxLineWidth(face font.Face, lines []string) fixed.Int26_6 {
	var widest fixed.Int26_6
	for _, line := range lines {
		if w := font.MeasureString(face, line); w > widest {
			widest = w
		}
	}
	return widest
}
