package reconcile

import "strings"

// sentence-terminal punctuation that closes a chunk
const terminals = ".!?"

// SplitSentences breaks a block of translated text into sentence-like chunks.
// Each terminal punctuation mark stays attached to the chunk it ends; a run
// of terminals ("...", "?!") stays with the same chunk. Trailing text without
// a terminal becomes a final chunk. Whitespace between sentences is dropped.
func SplitSentences(text string) []string {
	var chunks []string
	var current strings.Builder
	inTerminal := false

	flush := func() {
		chunk := strings.TrimSpace(current.String())
		if chunk != "" {
			chunks = append(chunks, chunk)
		}
		current.Reset()
	}

	for _, r := range text {
		if strings.ContainsRune(terminals, r) {
			current.WriteRune(r)
			inTerminal = true
			continue
		}
		if inTerminal {
			flush()
			inTerminal = false
		}
		current.WriteRune(r)
	}
	flush()
	return chunks
}
