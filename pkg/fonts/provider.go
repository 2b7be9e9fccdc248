package fonts

import (
	"errors"
	"fmt"
	"os"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
)

// DefaultCandidates lists scalable fonts tried in order before falling back
// to the built-in bitmap face. The first entry is relative to the working
// directory.
var DefaultCandidates = []string{
	"arial.ttf",
	"/usr/share/fonts/truetype/msttcorefonts/Arial.ttf",
	"/usr/share/fonts/truetype/dejavu/DejaVuSans.ttf",
	"/usr/share/fonts/dejavu/DejaVuSans.ttf",
	"/usr/share/fonts/truetype/liberation/LiberationSans-Regular.ttf",
	"/Library/Fonts/Arial.ttf",
	"/System/Library/Fonts/Supplemental/Arial.ttf",
	`C:\Windows\Fonts\arial.ttf`,
}

var errInvalidPixelSize = errors.New("font pixel size must be positive")

// Source identifies the font a face was created from.
type Source struct {
	Path     string
	Scalable bool
}

func (s Source) String() string {
	if !s.Scalable {
		return "basicfont 7x13"
	}
	return s.Path
}

type Resolved struct {
	Face   font.Face
	Source Source

	font *opentype.Font
}

// Covers reports whether the resolved font has a real glyph for r, as
// opposed to a .notdef or replacement glyph.
func (r Resolved) Covers(c rune) bool {
	if r.font != nil {
		var buf sfnt.Buffer
		idx, err := r.font.GlyphIndex(&buf, c)
		return err == nil && idx != 0
	}
	if bf, ok := r.Face.(*basicfont.Face); ok {
		for _, rng := range bf.Ranges {
			if rng.Low <= c && c < rng.High && c != '\ufffd' {
				return true
			}
		}
		return false
	}
	return true
}

func (r Resolved) Close() error {
	if r.Face == nil {
		return nil
	}
	return r.Face.Close()
}

// Provider resolves faces in two steps: the first parseable candidate file,
// then basicfont.Face7x13. The candidate scan runs once per provider.
type Provider struct {
	candidates []string

	scanned     bool
	primary     *opentype.Font
	primaryPath string
}

func NewProvider(candidates []string) *Provider {
	return &Provider{candidates: append([]string(nil), candidates...)}
}

// Primary reports the scalable font picked from the candidates, if any.
func (p *Provider) Primary() (string, bool) {
	p.scan()
	return p.primaryPath, p.primary != nil
}

// Resolve returns a face sized px pixels. A non-nil error means the primary
// font was found but could not be used; the returned face is then the
// fallback and is still valid.
func (p *Provider) Resolve(px int) (Resolved, error) {
	if px <= 0 {
		return fallback(), fmt.Errorf("%w: %d", errInvalidPixelSize, px)
	}

	p.scan()
	if p.primary == nil {
		return fallback(), nil
	}

	face, err := opentype.NewFace(p.primary, &opentype.FaceOptions{
		Size:    float64(px),
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return fallback(), fmt.Errorf("create face from %s: %w", p.primaryPath, err)
	}
	return Resolved{
		Face:   face,
		Source: Source{Path: p.primaryPath, Scalable: true},
		font:   p.primary,
	}, nil
}

func (p *Provider) scan() {
	if p.scanned {
		return
	}
	p.scanned = true

	for _, path := range p.candidates {
		f, err := load(path)
		if err != nil {
			continue
		}
		p.primary = f
		p.primaryPath = path
		return
	}
}

func load(path string) (*opentype.Font, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	f, err := opentype.Parse(data)
	if err == nil {
		return f, nil
	}

	// .ttc files hold several faces; take the first.
	coll, cerr := opentype.ParseCollection(data)
	if cerr != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return coll.Font(0)
}

func fallback() Resolved {
	return Resolved{Face: basicfont.Face7x13, Source: Source{}}
}
