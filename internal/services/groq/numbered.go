package groq

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

var numberedLine = regexp.MustCompile(`^\s*(\d+)[.):]\s*(.*\S)\s*$`)

// numberEntries renders entries in the "1. text" form the segment protocol
// sends to the model. Newlines inside an entry are flattened so one entry
// stays one line.
func numberEntries(entries []string) string {
	var b strings.Builder
	for i, entry := range entries {
		entry = strings.Join(strings.Fields(entry), " ")
		fmt.Fprintf(&b, "%d. %s\n", i+1, entry)
	}
	return b.String()
}

// parseNumbered extracts the translations from a numbered-line response in
// their stated order. Unnumbered lines (chatter, blank lines) are ignored;
// an out-of-order or duplicated index rejects the whole response.
func parseNumbered(content string) ([]string, error) {
	var out []string
	for _, line := range strings.Split(content, "\n") {
		match := numberedLine.FindStringSubmatch(line)
		if match == nil {
			continue
		}
		var index int
		fmt.Sscanf(match[1], "%d", &index)
		if index != len(out)+1 {
			return nil, fmt.Errorf("unexpected line number %d after %d lines", index, len(out))
		}
		out = append(out, match[2])
	}
	if len(out) == 0 {
		return nil, errors.New("no numbered lines in response")
	}
	return out, nil
}
