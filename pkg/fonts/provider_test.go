package fonts

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/goregular"
)

func writeFont(t *testing.T, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, data, 0644))
	return path
}

func TestProvider_PrefersFirstParseableCandidate(t *testing.T) {
	garbage := writeFont(t, "broken.ttf", []byte("not a font"))
	good := writeFont(t, "goregular.ttf", goregular.TTF)

	p := NewProvider([]string{filepath.Join(t.TempDir(), "missing.ttf"), garbage, good})

	path, ok := p.Primary()
	require.True(t, ok)
	assert.Equal(t, good, path)

	r, err := p.Resolve(32)
	require.NoError(t, err)
	defer r.Close()

	assert.True(t, r.Source.Scalable)
	assert.Equal(t, good, r.Source.String())
	// Line height of a 32px face is at least 32px.
	assert.GreaterOrEqual(t, r.Face.Metrics().Height.Ceil(), 32)
}

func TestProvider_FallsBackToBitmapFace(t *testing.T) {
	p := NewProvider([]string{filepath.Join(t.TempDir(), "missing.ttf")})

	_, ok := p.Primary()
	assert.False(t, ok)

	r, err := p.Resolve(64)
	require.NoError(t, err)
	assert.False(t, r.Source.Scalable)
	assert.Equal(t, "basicfont 7x13", r.Source.String())
	assert.Same(t, basicfont.Face7x13, r.Face)
	assert.NoError(t, r.Close())
}

func TestProvider_ScansOnce(t *testing.T) {
	path := writeFont(t, "goregular.ttf", goregular.TTF)
	p := NewProvider([]string{path})

	first, err := p.Resolve(24)
	require.NoError(t, err)
	first.Close()

	require.NoError(t, os.Remove(path))

	second, err := p.Resolve(24)
	require.NoError(t, err)
	defer second.Close()
	assert.True(t, second.Source.Scalable)
}

func TestProvider_InvalidSize(t *testing.T) {
	p := NewProvider(nil)

	r, err := p.Resolve(0)
	require.Error(t, err)
	assert.NotNil(t, r.Face)
	assert.False(t, r.Source.Scalable)
}

func TestProvider_CopiesCandidates(t *testing.T) {
	path := writeFont(t, "goregular.ttf", goregular.TTF)
	candidates := []string{path}
	p := NewProvider(candidates)
	candidates[0] = "elsewhere.ttf"

	got, ok := p.Primary()
	require.True(t, ok)
	assert.Equal(t, path, got)
}

func TestResolved_Covers(t *testing.T) {
	bitmap, err := NewProvider(nil).Resolve(16)
	require.NoError(t, err)
	assert.True(t, bitmap.Covers('X'))
	assert.True(t, bitmap.Covers(' '))
	assert.False(t, bitmap.Covers('日'))

	scalable, err := NewProvider([]string{writeFont(t, "goregular.ttf", goregular.TTF)}).Resolve(16)
	require.NoError(t, err)
	defer scalable.Close()
	assert.True(t, scalable.Covers('X'))
	assert.True(t, scalable.Covers('é'))
	assert.False(t, scalable.Covers('日'))
}
