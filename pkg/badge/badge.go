package badge

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/png"

	"github.com/sirupsen/logrus"

	"xcalendar-icons/pkg/fonts"
)

// MinTextSize is the smallest canvas that gets a text label.
const MinTextSize = 48

var ErrInvalidSize = errors.New("icon size must be positive")

type Spec struct {
	Size       int
	Text       string
	Background color.RGBA
	TextColor  color.RGBA
}

// Result is a rendered badge. Warning is set when the label could not be
// drawn in full; Image is valid either way.
type Result struct {
	Image   *image.RGBA
	Font    fonts.Source
	Warning error
}

type Generator struct {
	fonts *fonts.Provider
	log   logrus.FieldLogger
}

func NewGenerator(provider *fonts.Provider, logger logrus.FieldLogger) *Generator {
	if provider == nil {
		provider = fonts.NewProvider(nil)
	}
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	return &Generator{fonts: provider, log: logger}
}

// Render draws the badge and, for large enough canvases, its label. Only an
// invalid size or a broken shape is an error; label problems end up in
// Result.Warning.
func (g *Generator) Render(spec Spec) (Result, error) {
	if spec.Size <= 0 {
		return Result{}, fmt.Errorf("%w: %d", ErrInvalidSize, spec.Size)
	}

	img := image.NewRGBA(image.Rect(0, 0, spec.Size, spec.Size))
	if err := drawBadge(img, spec.Background); err != nil {
		return Result{}, err
	}

	res := Result{Image: img}
	if spec.Size < MinTextSize || spec.Text == "" {
		return res, nil
	}
	res.Font, res.Warning = g.drawText(img, spec)
	return res, nil
}

func (g *Generator) drawText(img *image.RGBA, spec Spec) (fonts.Source, error) {
	face, ferr := g.fonts.Resolve(spec.Size / 2)
	defer face.Close()

	// drawLabel checks glyph coverage before touching the canvas, so a
	// failed label leaves the plain badge.
	if err := drawLabel(img, face, spec.Text, spec.TextColor); err != nil {
		return face.Source, errors.Join(ferr, err)
	}
	if ferr != nil {
		return face.Source, fmt.Errorf("load font: %w", ferr)
	}
	return face.Source, nil
}

// Generate renders spec and returns it PNG encoded. Label warnings are logged
// and do not fail the call.
func (g *Generator) Generate(spec Spec) ([]byte, error) {
	res, err := g.Render(spec)
	if err != nil {
		return nil, err
	}
	if res.Warning != nil {
		g.log.WithField("size", spec.Size).
			Warnf("Error adding text to icon %dx%d: %v", spec.Size, spec.Size, res.Warning)
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, res.Image); err != nil {
		return nil, fmt.Errorf("encode icon %d: %w", spec.Size, err)
	}
	return buf.Bytes(), nil
}
