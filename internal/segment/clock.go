package segment

import (
	"fmt"
	"strconv"
	"strings"
)

// Clock renders seconds in SRT notation: HH:MM:SS,mmm with two-digit hour,
// minute, and second fields (hours widen past 99) and three-digit
// milliseconds. Fractional milliseconds are truncated, not rounded, so a cue
// never ends after the frame it was measured against.
func Clock(seconds float64) string {
	if seconds < 0 {
		seconds = 0
	}
	// The tiny bias keeps binary float artifacts (2.3s -> 2299.999...ms)
	// from eating a whole millisecond; real sub-millisecond fractions are
	// still truncated.
	millis := int64(seconds*1000 + 1e-4)
	hours := millis / 3_600_000
	millis -= hours * 3_600_000
	minutes := millis / 60_000
	millis -= minutes * 60_000
	secs := millis / 1000
	millis -= secs * 1000
	return fmt.Sprintf("%02d:%02d:%02d,%03d", hours, minutes, secs, millis)
}

// ParseClock converts an SRT timestamp back to seconds. Both the standard
// comma and a period millisecond separator are accepted.
func ParseClock(value string) (float64, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return 0, fmt.Errorf("empty timestamp")
	}
	value = strings.ReplaceAll(value, ".", ",")
	timeParts := strings.Split(value, ",")
	if len(timeParts) != 2 {
		return 0, fmt.Errorf("invalid timestamp %q", value)
	}
	hms := strings.Split(timeParts[0], ":")
	if len(hms) != 3 {
		return 0, fmt.Errorf("invalid timestamp %q", value)
	}
	hours, errH := strconv.Atoi(hms[0])
	minutes, errM := strconv.Atoi(hms[1])
	secs, errS := strconv.Atoi(hms[2])
	millis, errMS := strconv.Atoi(timeParts[1])
	if errH != nil || errM != nil || errS != nil || errMS != nil {
		return 0, fmt.Errorf("invalid timestamp %q", value)
	}
	return float64(hours*3600+minutes*60+secs) + float64(millis)/1000, nil
}
