package render

import (
	"errors"
	"image"
	"image/draw"

	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// Overlay is one positioned raster ready for compositing: the panel pixels,
// its canvas placement, and the time window it should be visible.
type Overlay struct {
	Image *image.RGBA
	X     int
	Y     int
	Start float64
	End   float64
}

// Rasterize paints a block into a pixel buffer: a semi-opaque panel beneath
// filled glyphs with a contrasting outline of fixed stroke width, so the
// subtitle stays legible over both light and dark video. Line text is
// already in visual order; the drawer renders it left to right as-is.
func Rasterize(block Block, face font.Face, opts Options) (*image.RGBA, error) {
	if face == nil {
		return nil, errors.New("rasterize: nil font face")
	}
	if block.PanelWidth <= 0 || block.PanelHeight <= 0 {
		return nil, errors.New("rasterize: empty panel")
	}

	img := image.NewRGBA(image.Rect(0, 0, block.PanelWidth, block.PanelHeight))
	draw.Draw(img, img.Bounds(), image.NewUniform(opts.PanelFill), image.Point{}, draw.Src)

	ascent := face.Metrics().Ascent.Ceil()
	drawer := font.Drawer{Dst: img, Face: face}

	for i, line := range block.Lines {
		x, y := block.LineOffset(i, opts)
		baseline := y + opts.StrokeWidth + ascent
		originX := x + opts.StrokeWidth

		// Outline first: the fill pass then covers the glyph interior.
		drawer.Src = image.NewUniform(opts.Outline)
		for dy := -opts.StrokeWidth; dy <= opts.StrokeWidth; dy++ {
			for dx := -opts.StrokeWidth; dx <= opts.StrokeWidth; dx++ {
				if dx == 0 && dy == 0 {
					continue
				}
				drawer.Dot = fixed.P(originX+dx, baseline+dy)
				drawer.DrawString(line.Text)
			}
		}

		drawer.Src = image.NewUniform(opts.Fill)
		drawer.Dot = fixed.P(originX, baseline)
		drawer.DrawString(line.Text)
	}
	return img, nil
}

// RasterizeOverlay combines Rasterize with canvas placement, producing the
// unit the overlay compositor consumes.
func RasterizeOverlay(block Block, face font.Face, opts Options) (Overlay, error) {
	img, err := Rasterize(block, face, opts)
	if err != nil {
		return Overlay{}, err
	}
	x, y := block.Position(opts)
	return Overlay{
		Image: img,
		X:     x,
		Y:     y,
		Start: block.Segment.Start,
		End:   block.Segment.End,
	}, nil
}
