package segment

import (
	"fmt"
	"strings"
)

// Segment is a time-coded unit of transcript text. Start and End are seconds
// from the beginning of the clip. Timing is fixed once a segment exists; only
// Text may be replaced (reconciliation swaps source text for translated text).
type Segment struct {
	Start float64
	End   float64
	Text  string
}

// Duration returns the segment span in seconds.
func (s Segment) Duration() float64 {
	return s.End - s.Start
}

// Validate checks that every segment has a positive span and no negative
// start time. Slice order is the canonical chronological order and is never
// rearranged; overlapping or non-contiguous timings are accepted because the
// transcription service is authoritative on timing.
func Validate(segments []Segment) error {
	for i, seg := range segments {
		if seg.Start < 0 {
			return fmt.Errorf("segment %d: negative start %.3f", i, seg.Start)
		}
		if seg.End <= seg.Start {
			return fmt.Errorf("segment %d: end %.3f not after start %.3f", i, seg.End, seg.Start)
		}
	}
	return nil
}

// TotalText joins segment texts with single spaces, skipping empty entries.
func TotalText(segments []Segment) string {
	parts := make([]string, 0, len(segments))
	for _, seg := range segments {
		if text := strings.TrimSpace(seg.Text); text != "" {
			parts = append(parts, text)
		}
	}
	return strings.Join(parts, " ")
}
