package badge

import (
	"errors"
	"fmt"
	"image"
	"image/color"

	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"

	"xcalendar-icons/pkg/fonts"
)

var (
	ErrNoGlyph     = errors.New("font has no glyph")
	ErrEmptyBounds = errors.New("text has an empty bounding box")
)

// drawLabel draws text centred on dst, lifted by a tenth of the canvas so it
// sits visually centred inside the round badge.
func drawLabel(dst *image.RGBA, face fonts.Resolved, text string, c color.RGBA) error {
	for _, r := range text {
		if !face.Covers(r) {
			return fmt.Errorf("%w for %q in %s", ErrNoGlyph, r, face.Source)
		}
	}

	bounds, _ := font.BoundString(face.Face, text)
	w := (bounds.Max.X - bounds.Min.X).Ceil()
	h := (bounds.Max.Y - bounds.Min.Y).Ceil()
	if w <= 0 || h <= 0 {
		return fmt.Errorf("%w: %q", ErrEmptyBounds, text)
	}

	size := dst.Bounds().Dx()
	x := (size-w)/2 - bounds.Min.X.Floor()
	y := (size-h)/2 - size/10 - bounds.Min.Y.Floor()

	d := &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(c),
		Face: face.Face,
		Dot:  fixed.P(x, y),
	}
	d.DrawString(text)
	return nil
}
