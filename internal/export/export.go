// Package export rasterizes a quilt scene to an image file.
package export

import (
	"errors"
	"fmt"
	"image/color"
	"image/jpeg"
	"io"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gomono"

	"quilt/internal/quilt"
)

var (
	ErrUnsupportedFormat = errors.New("unsupported image format")
	ErrNothingToExport   = errors.New("nothing to export")
)

// Options controls the exported image.
type Options struct {
	Width      int
	Height     int
	Background string
	// Labels draws each rectangle's 1-based index in its top-left corner.
	Labels bool
}

// fallbackColor is used for color tokens that are not hex colors.
var fallbackColor = color.RGBA{0x80, 0x80, 0x80, 0xff}

// ParseColor converts a "#rgb" or "#rrggbb" token into a color.
func ParseColor(token string) (color.Color, bool) {
	c, err := colorful.Hex(strings.TrimSpace(token))
	if err != nil {
		return fallbackColor, false
	}
	return c.Clamped(), true
}

// sceneMargin is kept free right of and below the furthest item when the
// image grows past the requested size.
const sceneMargin = 10

// Render draws the items, bottom first, onto a new context. The image is
// at least Width x Height and grows to cover every item.
func Render(items []quilt.Item, opts Options) (*gg.Context, error) {
	if len(items) == 0 {
		return nil, ErrNothingToExport
	}
	if opts.Width <= 0 || opts.Height <= 0 {
		return nil, fmt.Errorf("invalid image size %dx%d", opts.Width, opts.Height)
	}

	width, height := opts.Width, opts.Height
	for _, item := range items {
		width = max(width, int(math.Ceil(item.Rect.X2))+sceneMargin)
		height = max(height, int(math.Ceil(item.Rect.Y2))+sceneMargin)
	}

	dc := gg.NewContext(width, height)
	bg, ok := ParseColor(opts.Background)
	if !ok {
		bg = color.White
	}
	dc.SetColor(bg)
	dc.Clear()

	for _, item := range items {
		drawItem(dc, item)
	}

	if opts.Labels {
		face, err := labelFace()
		if err != nil {
			return nil, err
		}
		dc.SetFontFace(face)
		for i, item := range items {
			drawLabel(dc, item, i+1)
		}
	}
	return dc, nil
}

func drawItem(dc *gg.Context, item quilt.Item) {
	r := item.Rect
	fill, _ := ParseColor(item.Fill)
	outline, _ := ParseColor(item.Outline)

	dc.DrawRectangle(r.X1, r.Y1, r.Width(), r.Height())
	dc.SetColor(fill)
	dc.FillPreserve()
	dc.SetColor(outline)
	dc.SetLineWidth(item.Width)
	dc.Stroke()
}

func drawLabel(dc *gg.Context, item quilt.Item, n int) {
	r := item.Rect
	dc.SetColor(contrastColor(item.Fill))
	dc.DrawStringAnchored(strconv.Itoa(n), r.X1+3, r.Y1+3, 0, 1)
}

// contrastColor picks black or white text for a fill.
func contrastColor(fill string) color.Color {
	c, err := colorful.Hex(strings.TrimSpace(fill))
	if err != nil {
		return color.Black
	}
	if l, _, _ := c.Lab(); l > 0.6 {
		return color.Black
	}
	return color.White
}

func labelFace() (font.Face, error) {
	ttf, err := truetype.Parse(gomono.TTF)
	if err != nil {
		return nil, fmt.Errorf("failed to parse font: %v", err)
	}
	return truetype.NewFace(ttf, &truetype.Options{
		Size:    10,
		DPI:     72,
		Hinting: font.HintingFull,
	}), nil
}

// Rasterize renders the items and writes them to path. The extension picks
// the encoder: .png, or .jpg/.jpeg. The image is written to a temporary
// file next to path and renamed into place; the temporary file never
// outlives the call.
func Rasterize(items []quilt.Item, opts Options, path string) error {
	encode, err := encoderFor(path)
	if err != nil {
		return err
	}
	dc, err := Render(items, opts)
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), ".quilt-export-*"+filepath.Ext(path))
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if err := encode(tmp, dc); err != nil {
		tmp.Close()
		return fmt.Errorf("encode %s: %w", filepath.Base(path), err)
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmpName, path)
}

type encoder func(w io.Writer, dc *gg.Context) error

func encoderFor(path string) (encoder, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".png":
		return func(w io.Writer, dc *gg.Context) error {
			return dc.EncodePNG(w)
		}, nil
	case ".jpg", ".jpeg":
		return func(w io.Writer, dc *gg.Context) error {
			return jpeg.Encode(w, dc.Image(), &jpeg.Options{Quality: 92})
		}, nil
	default:
		if ext == "" {
			ext = "(none)"
		}
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, ext)
	}
}
