package reconcile

import (
	"errors"
	"fmt"
	"strings"

	"subweave/internal/segment"
)

// ErrEmptyTranscript reports that neither the transcription nor the
// translation carried any usable text. No subtitle output is produced.
var ErrEmptyTranscript = errors.New("empty transcript")

// CountMismatchError reports a segmented translation whose entry count does
// not match the original segment count. The reconciler never truncates or
// pads to hide the difference; the caller picks a fallback.
type CountMismatchError struct {
	Expected int
	Got      int
}

func (e *CountMismatchError) Error() string {
	return fmt.Sprintf("translated segment count mismatch: expected %d, got %d", e.Expected, e.Got)
}

// Translation is the unit returned by a translation service: either one
// undifferentiated block of text or a pre-segmented array. Content is assumed
// to preserve the logical reading order of the source.
type Translation struct {
	full      string
	segmented []string
	isFull    bool
}

// FullText wraps a single translated block.
func FullText(text string) Translation {
	return Translation{full: text, isFull: true}
}

// Segmented wraps a translated array. No length correspondence with the
// original segments is guaranteed by the service.
func Segmented(entries []string) Translation {
	return Translation{segmented: entries}
}

// Result carries the reconciled segments plus a flag marking that the lossy
// whole-text heuristic had to repeat chunks. Callers log degraded output;
// the reconciler itself stays side-effect free.
type Result struct {
	Segments []segment.Segment
	Degraded bool
}

// Apply maps a translation onto the original timed segments, replacing text
// while keeping every start/end and the segment order untouched.
//
// A segmented translation of matching length is the only shape with
// guaranteed semantic alignment. A full-text translation is split into
// sentence chunks and walked across the segments in order; that mapping is
// approximate and callers needing accurate sync must request a segmented
// translation from the service.
func Apply(segments []segment.Segment, tr Translation) (Result, error) {
	if len(segments) == 0 {
		return Result{}, ErrEmptyTranscript
	}

	if !tr.isFull {
		if len(tr.segmented) != len(segments) {
			return Result{}, &CountMismatchError{Expected: len(segments), Got: len(tr.segmented)}
		}
		out := make([]segment.Segment, len(segments))
		for i, seg := range segments {
			seg.Text = tr.segmented[i]
			out[i] = seg
		}
		return Result{Segments: out}, nil
	}

	text := strings.TrimSpace(tr.full)
	if text == "" {
		return Result{}, ErrEmptyTranscript
	}

	chunks := SplitSentences(text)
	out := make([]segment.Segment, len(segments))
	degraded := false
	last := ""
	for i, seg := range segments {
		if i < len(chunks) {
			last = chunks[i]
		} else {
			// Chunks exhausted: repeating the last assigned chunk is the
			// documented degraded mode, chosen over emitting empty cues.
			degraded = true
		}
		seg.Text = last
		out[i] = seg
	}
	return Result{Segments: out, Degraded: degraded}, nil
}

// WholeClip is the degenerate fallback used when no timing information exists
// at all: a single segment spanning the full clip duration with the entire
// translated text.
func WholeClip(duration float64, text string) ([]segment.Segment, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, ErrEmptyTranscript
	}
	if duration <= 0 {
		return nil, fmt.Errorf("whole-clip fallback: non-positive duration %.3f", duration)
	}
	return []segment.Segment{{Start: 0, End: duration, Text: text}}, nil
}
