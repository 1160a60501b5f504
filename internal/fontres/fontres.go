package fontres

import (
	"fmt"
	"os"
	"strings"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
)

// ResolutionError reports that no candidate font resource could be used for
// the required script. Each attempted candidate is listed with the reason it
// was rejected so the caller can retry with a different chain or abort.
type ResolutionError struct {
	Probe    string
	Attempts []string
}

func (e *ResolutionError) Error() string {
	if len(e.Attempts) == 0 {
		return "font resolution: no candidate font paths configured"
	}
	return fmt.Sprintf("font resolution: no usable font among %d candidates: %s",
		len(e.Attempts), strings.Join(e.Attempts, "; "))
}

// Options controls face construction and script verification.
type Options struct {
	// Size is the glyph size in points.
	Size float64
	// DPI defaults to 72 when zero.
	DPI float64
	// Probe is sample text in the target script; a candidate that cannot map
	// every probe rune to a real glyph is rejected rather than rendering
	// tofu boxes.
	Probe string
}

// Face is a resolved font capability: parsed once at startup and passed into
// the engine, never rediscovered per call. Measurement is safe for
// concurrent use; rasterization goes through the drawer returned by
// NewDrawerFace, owned by a single render pass.
type Face struct {
	Path string

	font *sfnt.Font
	face font.Face
	opts opentype.FaceOptions

	mu sync.Mutex
}

// Resolve walks the ordered candidate list (bundled resource first, then OS
// fallback locations) and returns the first font that parses and covers the
// probe text. Missing files are skipped silently since fallback chains list
// paths for several operating systems.
func Resolve(candidates []string, opts Options) (*Face, error) {
	if opts.Size <= 0 {
		opts.Size = 28
	}
	if opts.DPI <= 0 {
		opts.DPI = 72
	}

	resErr := &ResolutionError{Probe: opts.Probe}
	for _, path := range candidates {
		path = strings.TrimSpace(path)
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			resErr.Attempts = append(resErr.Attempts, fmt.Sprintf("%s: %v", path, err))
			continue
		}
		parsed, err := opentype.Parse(data)
		if err != nil {
			resErr.Attempts = append(resErr.Attempts, fmt.Sprintf("%s: parse: %v", path, err))
			continue
		}
		if missing := missingRune(parsed, opts.Probe); missing != 0 {
			resErr.Attempts = append(resErr.Attempts, fmt.Sprintf("%s: no glyph for %q", path, missing))
			continue
		}
		faceOpts := opentype.FaceOptions{Size: opts.Size, DPI: opts.DPI, Hinting: font.HintingFull}
		face, err := opentype.NewFace(parsed, &faceOpts)
		if err != nil {
			resErr.Attempts = append(resErr.Attempts, fmt.Sprintf("%s: face: %v", path, err))
			continue
		}
		return &Face{Path: path, font: parsed, face: face, opts: faceOpts}, nil
	}
	return nil, resErr
}

// Measure returns the bounding box of text at this face's size, inflated by
// the stroke width on every side. Safe for concurrent use.
func (f *Face) Measure(text string, strokeWidth int) (int, int) {
	f.mu.Lock()
	width := font.MeasureString(f.face, text).Ceil()
	metrics := f.face.Metrics()
	f.mu.Unlock()
	height := (metrics.Ascent + metrics.Descent).Ceil()
	return width + 2*strokeWidth, height + 2*strokeWidth
}

// Ascent returns the face ascent in pixels, used to place text baselines.
func (f *Face) Ascent() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.face.Metrics().Ascent.Ceil()
}

// NewDrawerFace builds a fresh font.Face for a rasterization pass. Faces
// carry internal glyph buffers, so each pass gets its own.
func (f *Face) NewDrawerFace() (font.Face, error) {
	opts := f.opts
	face, err := opentype.NewFace(f.font, &opts)
	if err != nil {
		return nil, fmt.Errorf("font face: %w", err)
	}
	return face, nil
}

// missingRune returns the first probe rune the font cannot map to a glyph,
// or zero when the whole probe is covered.
func missingRune(f *sfnt.Font, probe string) rune {
	var buf sfnt.Buffer
	for _, r := range probe {
		if r == ' ' {
			continue
		}
		index, err := f.GlyphIndex(&buf, r)
		if err != nil || index == 0 {
			return r
		}
	}
	return 0
}
