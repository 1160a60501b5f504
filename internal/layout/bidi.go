package layout

import (
	"strings"

	"golang.org/x/text/unicode/bidi"
)

// VisualOrder converts a logical-order string into the left-to-right glyph
// sequence a renderer must draw. Runs are emitted in visual order and
// right-to-left runs have their rune order reversed; intra-run order for
// left-to-right runs is untouched. The base direction is detected from the
// first strong character. Pure left-to-right text is returned unchanged.
func VisualOrder(text string) string {
	if !HasRTL(text) {
		return text
	}
	var p bidi.Paragraph
	p.SetString(text)
	order, err := p.Order()
	if err != nil {
		return text
	}
	var b strings.Builder
	b.Grow(len(text))
	for i := 0; i < order.NumRuns(); i++ {
		run := order.Run(i)
		if run.Direction() == bidi.RightToLeft {
			b.WriteString(reverseRunes(run.String()))
		} else {
			b.WriteString(run.String())
		}
	}
	return b.String()
}

// HasRTL reports whether the string contains any right-to-left runs.
func HasRTL(text string) bool {
	if text == "" {
		return false
	}
	var p bidi.Paragraph
	p.SetString(text)
	order, err := p.Order()
	if err != nil {
		return false
	}
	for i := 0; i < order.NumRuns(); i++ {
		run := order.Run(i)
		if run.Direction() == bidi.RightToLeft {
			return true
		}
	}
	return false
}

func reverseRunes(s string) string {
	runes := []rune(s)
	for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
		runes[i], runes[j] = runes[j], runes[i]
	}
	return string(runes)
}
