// Package segment defines the canonical time-coded text unit shared by the
// reconciliation, layout, and rendering packages, plus SRT clock formatting.
package segment
