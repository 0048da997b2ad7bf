// Package render rasterizes layout plans onto copies of base images and
// encodes the result as PNG. Base images and fonts are cached across requests;
// the pixel buffer drawn on is always a fresh per-request copy.
package render

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"

	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"

	"github.com/atomicparade/did-you-just-say/layout"
	"github.com/atomicparade/did-you-just-say/slots"
)

// ContentTypePNG is the content type of every rendered image.
const ContentTypePNG = "image/png"

// Rendered is an encoded output image. The byte buffer is owned by the
// caller; nothing retains it after Render returns.
type Rendered struct {
	Bytes       []byte
	ContentType string
}

// Compositor draws layout plans onto base images. It is safe for concurrent
// use: the asset cache is read-shared and every render draws on its own copy
// of the base pixels.
type Compositor struct {
	assets    *AssetCache
	textColor color.Color
}

// NewCompositor creates a Compositor drawing text in the given color.
// A nil color defaults to opaque black.
func NewCompositor(assets *AssetCache, textColor color.Color) *Compositor {
	if textColor == nil {
		textColor = color.Black
	}
	return &Compositor{
		assets:    assets,
		textColor: textColor,
	}
}

// Font returns the parsed font for a slot's font path, via the shared cache.
// The composer needs the font before rendering to measure glyphs.
func (c *Compositor) Font(path string) (*opentype.Font, error) {
	return c.assets.Font(path)
}

// Render draws the plan onto a copy of the slot's base image and returns the
// PNG-encoded result.
func (c *Compositor) Render(slot slots.Slot, plan *layout.Plan) (*Rendered, error) {
	base, err := c.assets.Image(slot.ImagePath)
	if err != nil {
		return nil, err
	}

	dst := copyImage(base)

	if !plan.Empty() {
		fnt, err := c.assets.Font(slot.FontPath)
		if err != nil {
			return nil, err
		}

		face, err := opentype.NewFace(fnt, &opentype.FaceOptions{
			Size:    plan.Size,
			DPI:     72,
			Hinting: font.HintingFull,
		})
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrFontParse, slot.FontPath, err)
		}
		defer face.Close()

		drawer := &font.Drawer{
			Dst:  dst,
			Src:  image.NewUniform(c.textColor),
			Face: face,
		}

		for _, line := range plan.Lines {
			drawer.Dot = fixed.Point26_6{X: line.X, Y: line.Y}
			drawer.DrawString(line.Text)
		}
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, dst); err != nil {
		return nil, fmt.Errorf("render: encode png: %w", err)
	}

	return &Rendered{
		Bytes:       buf.Bytes(),
		ContentType: ContentTypePNG,
	}, nil
}

// copyImage copies the base image into a fresh RGBA buffer so concurrent
// renders against the same slot never observe each other's writes.
func copyImage(src image.Image) *image.RGBA {
	bounds := src.Bounds()
	dst := image.NewRGBA(bounds)
	draw.Draw(dst, bounds, src, bounds.Min, draw.Src)
	return dst
}
