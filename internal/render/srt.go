package render

import (
	"bufio"
	"fmt"
	"io"

	"subweave/internal/segment"
)

// WriteSRT emits the textual subtitle description: a 1-based index line, the
// time range in HH:MM:SS,mmm notation, the cue text, and a blank separator
// after every entry. Output is byte-stable for identical input.
func WriteSRT(w io.Writer, segments []segment.Segment) error {
	bw := bufio.NewWriter(w)
	for i, seg := range segments {
		if _, err := fmt.Fprintf(bw, "%d\n%s --> %s\n%s\n\n",
			i+1, segment.Clock(seg.Start), segment.Clock(seg.End), seg.Text); err != nil {
			return fmt.Errorf("write srt cue %d: %w", i+1, err)
		}
	}
	return bw.Flush()
}

// BlockSegments extracts the segment list from composed blocks, preserving
// order, for callers emitting SRT from the same data that fed rasterization.
func BlockSegments(blocks []Block) []segment.Segment {
	segments := make([]segment.Segment, len(blocks))
	for i, block := range blocks {
		segments[i] = block.Segment
	}
	return segments
}
