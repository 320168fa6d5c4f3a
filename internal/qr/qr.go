package qr

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"net/url"
	"strings"

	qrcode "github.com/skip2/go-qrcode"

	"mingle-backend/internal/apperr"
)

const dataURLPrefix = "data:image/png;base64,"

// Code is a rendered share code for one profile.
type Code struct {
	DataURL string
	URL     string
}

// Generator renders profile share URLs as square PNG QR codes.
type Generator struct {
	frontendURL string
	size        int
	margin      int
}

func NewGenerator(frontendURL string, size, margin int) *Generator {
	return &Generator{frontendURL: strings.TrimRight(frontendURL, "/"), size: size, margin: margin}
}

// ProfileURL is the canonical shareable address of a profile.
func (g *Generator) ProfileURL(profileID string) string {
	return g.frontendURL + "/profile/" + url.PathEscape(profileID)
}

func (g *Generator) Generate(profileID string) (*Code, error) {
	link := g.ProfileURL(profileID)
	img, err := g.render(link)
	if err != nil {
		return nil, apperr.Encoding(err)
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, apperr.Encoding(fmt.Errorf("encode png: %w", err))
	}
	return &Code{
		DataURL: dataURLPrefix + base64.StdEncoding.EncodeToString(buf.Bytes()),
		URL:     link,
	}, nil
}

// render draws the module bitmap plus a quiet zone of g.margin modules,
// scaled by nearest neighbour to exactly g.size pixels.
func (g *Generator) render(content string) (image.Image, error) {
	q, err := qrcode.New(content, qrcode.Medium)
	if err != nil {
		return nil, fmt.Errorf("encode qr: %w", err)
	}
	q.DisableBorder = true
	bitmap := q.Bitmap()
	modules := len(bitmap)
	total := modules + 2*g.margin
	if g.size < total {
		return nil, fmt.Errorf("qr size %dpx too small for %d modules", g.size, total)
	}

	img := image.NewPaletted(image.Rect(0, 0, g.size, g.size), color.Palette{color.White, color.Black})
	for y := 0; y < g.size; y++ {
		my := y*total/g.size - g.margin
		for x := 0; x < g.size; x++ {
			mx := x*total/g.size - g.margin
			if my >= 0 && my < modules && mx >= 0 && mx < modules && bitmap[my][mx] {
				img.SetColorIndex(x, y, 1)
			}
		}
	}
	return img, nil
}

// DecodeDataURL returns the PNG bytes of a data URL produced by Generate.
func DecodeDataURL(dataURL string) ([]byte, error) {
	if !strings.HasPrefix(dataURL, dataURLPrefix) {
		return nil, fmt.Errorf("not a png data url")
	}
	return base64.StdEncoding.DecodeString(strings.TrimPrefix(dataURL, dataURLPrefix))
}
