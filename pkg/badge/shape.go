package badge

import (
	"bytes"
	"fmt"
	"image"
	"image/color"

	svg "github.com/ajstarks/svgo"
	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
)

// inset is the gap between the canvas edge and the badge circle.
const inset = 2

// OutlineColor is the badge border colour.
var OutlineColor = color.RGBA{R: 200, G: 200, B: 200, A: 255}

// badgeSVG describes the badge as an SVG document whose viewBox matches a
// size x size canvas. ok is false when the canvas is too small for a circle.
func badgeSVG(size int, fill color.RGBA) (doc []byte, ok bool) {
	r := (size - 2*inset) / 2
	if r <= 0 {
		return nil, false
	}

	var buf bytes.Buffer
	canvas := svg.New(&buf)
	canvas.Start(size, size, fmt.Sprintf(`viewBox="0 0 %d %d"`, size, size))
	canvas.Circle(size/2, size/2, r, circleStyle(fill))
	canvas.End()
	return buf.Bytes(), true
}

func circleStyle(fill color.RGBA) string {
	return fmt.Sprintf("fill:%s;fill-opacity:%.3f;stroke:%s;stroke-opacity:%.3f;stroke-width:1",
		hex(fill), float64(fill.A)/255, hex(OutlineColor), float64(OutlineColor.A)/255)
}

func hex(c color.RGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// drawBadge rasterises the badge circle onto dst.
func drawBadge(dst *image.RGBA, fill color.RGBA) error {
	w, h := dst.Bounds().Dx(), dst.Bounds().Dy()
	doc, ok := badgeSVG(w, fill)
	if !ok {
		return nil
	}

	icon, err := oksvg.ReadIconStream(bytes.NewReader(doc))
	if err != nil {
		return fmt.Errorf("read badge svg: %w", err)
	}
	icon.SetTarget(0, 0, float64(w), float64(h))

	scanner := rasterx.NewScannerGV(w, h, dst, dst.Bounds())
	dasher := rasterx.NewDasher(w, h, scanner)
	icon.Draw(dasher, 1.0)
	return nil
}
