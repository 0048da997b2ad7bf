// Package layout implements the text-fitting engine: given a string, a font,
// and a slot's bounding box, it produces a plan of wrapped, sized, and
// centered lines that is guaranteed to lie inside the box.
package layout

import (
	"golang.org/x/image/math/fixed"
)

// Line is a single positioned text fragment. X and Y locate the baseline
// origin of the fragment in the base image's pixel coordinate space.
type Line struct {
	Text string
	X    fixed.Int26_6
	Y    fixed.Int26_6
}

// Plan is the computed set of positioned lines ready for rasterization,
// together with the effective font size the composer settled on. A Plan is
// produced fresh per request and owned solely by that request.
type Plan struct {
	Lines []Line

	// Size is the effective font size in pixels. It is at most the slot's
	// configured size; the composer only ever steps down.
	Size float64
}

// Empty reports whether the plan contains no text to draw.
// An empty plan is valid; it renders the base image unmodified.
func (p *Plan) Empty() bool {
	return len(p.Lines) == 0
}
