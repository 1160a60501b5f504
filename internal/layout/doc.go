// Package layout wraps logical-order subtitle text into width-measured,
// visually-ordered lines that fit a maximum pixel width. Bidirectional
// reordering happens before measurement so right-to-left scripts wrap on the
// widths that will actually render.
package layout
