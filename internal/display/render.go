package display

import (
	"fmt"
	"image"
	"image/draw"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gomono"
	"periph.io/x/devices/v3/ssd1306/image1bit"
)

// Renderer lays out a label into a one bit frame the size of the panel.
type Renderer struct {
	bounds image.Rectangle
	anchor image.Point
	face   font.Face
}

// NewRenderer creates a Renderer for a w x h panel. The label's top-left
// corner is placed at anchor; size is the font size in points at 72 DPI, so
// one point is one pixel.
func NewRenderer(w, h int, size float64, anchor image.Point) (*Renderer, error) {
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("invalid frame size %dx%d", w, h)
	}
	f, err := truetype.Parse(gomono.TTF)
	if err != nil {
		return nil, fmt.Errorf("parse font: %w", err)
	}
	face := truetype.NewFace(f, &truetype.Options{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	return &Renderer{
		bounds: image.Rect(0, 0, w, h),
		anchor: anchor,
		face:   face,
	}, nil
}

// Bounds returns the frame size.
func (r *Renderer) Bounds() image.Rectangle {
	return r.bounds
}

// Render draws text in white on black and converts it to the panel format.
// Anti-aliased edges are thresholded at half intensity.
func (r *Renderer) Render(text string) *image1bit.VerticalLSB {
	dc := gg.NewContext(r.bounds.Dx(), r.bounds.Dy())
	dc.SetRGB(0, 0, 0)
	dc.Clear()
	dc.SetFontFace(r.face)
	dc.SetRGB(1, 1, 1)
	dc.DrawStringAnchored(text, float64(r.anchor.X), float64(r.anchor.Y), 0, 1)

	img := image1bit.NewVerticalLSB(r.bounds)
	draw.Draw(img, r.bounds, dc.Image(), image.Point{}, draw.Src)
	return img
}

// Width returns the rendered width of text in pixels.
func (r *Renderer) Width(text string) int {
	return font.MeasureString(r.face, text).Ceil()
}
