// Package groq talks to the Groq OpenAI-compatible API for speech-to-text
// and chat-based translation. Segment-aligned translation uses a
// numbered-line protocol so the reconciler can map results one-to-one onto
// the original timings; a malformed response is rejected rather than
// guessed at.
package groq
