package render

import (
	"image/color"

	"subweave/internal/layout"
	"subweave/internal/segment"
)

// Options fixes the geometry and paint of every subtitle block in a render
// pass. Zero values are filled by Defaults.
type Options struct {
	CanvasWidth  int
	CanvasHeight int
	// HPad and VPad are the symmetric paddings inside the panel.
	HPad int
	VPad int
	// StrokeWidth is the glyph outline width; it also inflates measurement.
	StrokeWidth int
	// BottomMargin anchors the panel a fixed distance from the bottom edge,
	// independent of segment content or script direction.
	BottomMargin int

	Fill      color.NRGBA
	Outline   color.NRGBA
	PanelFill color.NRGBA
}

// Defaults mirrors the burn-in style the ffmpeg path uses: white fill, black
// outline of width 2, and a panel dark enough to survive bright backgrounds.
func Defaults() Options {
	return Options{
		CanvasWidth:  1280,
		CanvasHeight: 720,
		HPad:         20,
		VPad:         8,
		StrokeWidth:  2,
		BottomMargin: 40,
		Fill:         color.NRGBA{R: 255, G: 255, B: 255, A: 255},
		Outline:      color.NRGBA{A: 255},
		PanelFill:    color.NRGBA{A: 180},
	}
}

// Block is one segment's laid-out subtitle: wrapped visual-order lines inside
// a sized background panel. A block belongs exclusively to the render pass
// that produced it and is handed off by value to the compositor.
type Block struct {
	Lines       []layout.Line
	PanelWidth  int
	PanelHeight int
	Segment     segment.Segment
}

// Compose sizes the background panel around the wrapped lines. Panel width is
// the widest line plus symmetric horizontal padding, clamped to the canvas;
// panel height stacks the line heights with uniform vertical padding between
// and around them.
func Compose(seg segment.Segment, lines []layout.Line, opts Options) Block {
	maxLineWidth := 0
	totalHeight := 0
	for _, line := range lines {
		if line.Width > maxLineWidth {
			maxLineWidth = line.Width
		}
		totalHeight += line.Height
	}

	panelWidth := maxLineWidth + 2*opts.HPad
	if opts.CanvasWidth > 0 && panelWidth > opts.CanvasWidth {
		panelWidth = opts.CanvasWidth
	}
	panelHeight := totalHeight + (len(lines)+1)*opts.VPad

	return Block{
		Lines:       lines,
		PanelWidth:  panelWidth,
		PanelHeight: panelHeight,
		Segment:     seg,
	}
}

// LineOffset returns the top-left position of line i inside the panel. Lines
// are always right-aligned regardless of script direction: the panel itself
// sits at a fixed screen anchor, so alignment does not move with the text.
func (b Block) LineOffset(i int, opts Options) (x, y int) {
	x = b.PanelWidth - opts.HPad - b.Lines[i].Width
	y = opts.VPad
	for j := 0; j < i; j++ {
		y += b.Lines[j].Height + opts.VPad
	}
	return x, y
}

// Position returns the block's top-left placement on the canvas:
// bottom-centered with the configured margin from the bottom edge.
func (b Block) Position(opts Options) (x, y int) {
	x = (opts.CanvasWidth - b.PanelWidth) / 2
	if x < 0 {
		x = 0
	}
	y = opts.CanvasHeight - opts.BottomMargin - b.PanelHeight
	if y < 0 {
		y = 0
	}
	return x, y
}
