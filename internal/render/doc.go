// Package render turns wrapped subtitle lines into positioned visual blocks:
// a sized semi-opaque panel with right-aligned outlined text, anchored to a
// fixed bottom margin. The same block data serves both output shapes the
// compositor accepts, raster overlays and an SRT description file.
package render
