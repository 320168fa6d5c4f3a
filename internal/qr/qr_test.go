package qr

import (
	"bytes"
	"image/png"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mingle-backend/internal/apperr"
)

func TestGenerate(t *testing.T) {
	g := NewGenerator("http://localhost:5173/", 300, 2)

	code, err := g.Generate("id1")
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:5173/profile/id1", code.URL)
	assert.True(t, strings.HasPrefix(code.DataURL, "data:image/png;base64,"))

	raw, err := DecodeDataURL(code.DataURL)
	require.NoError(t, err)
	img, err := png.Decode(bytes.NewReader(raw))
	require.NoError(t, err)
	assert.Equal(t, 300, img.Bounds().Dx())
	assert.Equal(t, 300, img.Bounds().Dy())

	// quiet zone is white; pixel 22 falls on the finder pattern's first module
	// for any symbol between 25 and 33 modules wide
	for _, p := range []int{0, 10} {
		r, _, _, _ := img.At(p, p).RGBA()
		assert.Equal(t, uint32(0xffff), r, "pixel %d", p)
	}
	r, _, _, _ := img.At(22, 22).RGBA()
	assert.Equal(t, uint32(0), r)
}

func TestProfileURLEscapes(t *testing.T) {
	g := NewGenerator("https://mingle.app", 300, 2)
	assert.Equal(t, "https://mingle.app/profile/a%2Fb", g.ProfileURL("a/b"))
}

func TestGenerateTooSmall(t *testing.T) {
	_, err := NewGenerator("http://x", 10, 2).Generate("id1")
	assert.True(t, apperr.IsKind(err, apperr.KindEncoding))
}

func TestDecodeDataURLRejectsOtherSchemes(t *testing.T) {
	_, err := DecodeDataURL("data:image/gif;base64,AAAA")
	assert.Error(t, err)
}
