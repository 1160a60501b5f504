package layout

import (
	"errors"
	"strings"
)

// Metrics measures rendered text. Implementations must be safe for
// concurrent read-only use; the layout engine may be run in parallel across
// segments. The stroke width is included so measurement accounts for the
// outline inflation the renderer applies.
type Metrics interface {
	Measure(text string, strokeWidth int) (width, height int)
}

// Line is one wrapped subtitle line. Text is in visual order, ready to draw
// left to right; Logical carries the same content in reading order, and is
// what re-wrapping and any further text processing must operate on. Overflow
// marks a single word wider than the maximum width, emitted as its own line
// because words are never broken mid-word.
type Line struct {
	Text     string
	Logical  string
	Width    int
	Height   int
	Overflow bool
}

// Wrap breaks a logical-order string into lines no wider than maxWidth
// pixels. Words accumulate greedily in logical order; each candidate is
// converted to visual order and measured before being accepted, so the fit
// decision always reflects what will actually be drawn. The word that causes
// an overflow starts the next line. Wrapping is idempotent for a fixed
// metrics provider and width: re-wrapping the joined Logical texts of the
// result reproduces the same lines.
func Wrap(text string, m Metrics, maxWidth, strokeWidth int) ([]Line, error) {
	if m == nil {
		return nil, errors.New("wrap: nil metrics")
	}
	if maxWidth <= 0 {
		return nil, errors.New("wrap: non-positive max width")
	}

	words := strings.Fields(text)
	if len(words) == 0 {
		return nil, nil
	}

	var lines []Line
	var current []string
	var last Line

	flushWord := func(word string) {
		visual := VisualOrder(word)
		width, height := m.Measure(visual, strokeWidth)
		if width > maxWidth {
			lines = append(lines, Line{Text: visual, Logical: word, Width: width, Height: height, Overflow: true})
			current = nil
			last = Line{}
			return
		}
		current = []string{word}
		last = Line{Text: visual, Logical: word, Width: width, Height: height}
	}

	for _, word := range words {
		candidate := append(append([]string(nil), current...), word)
		logical := strings.Join(candidate, " ")
		visual := VisualOrder(logical)
		width, height := m.Measure(visual, strokeWidth)
		if width <= maxWidth {
			current = candidate
			last = Line{Text: visual, Logical: logical, Width: width, Height: height}
			continue
		}
		if len(current) == 0 {
			lines = append(lines, Line{Text: visual, Logical: logical, Width: width, Height: height, Overflow: true})
			continue
		}
		lines = append(lines, last)
		flushWord(word)
	}
	if len(current) > 0 {
		lines = append(lines, last)
	}
	return lines, nil
}
