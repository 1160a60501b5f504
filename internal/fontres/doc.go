// Package fontres resolves an ordered chain of candidate font files into a
// single glyph-metrics and rasterization capability. Resolution happens once
// at startup; a chain that cannot cover the target script fails with a
// ResolutionError instead of letting the renderer substitute box glyphs.
package fontres
