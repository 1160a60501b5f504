// Package pipeline drives a clip through the subtitle pipeline: probe,
// caller-side duration limit, audio extraction, transcription, translation,
// reconciliation, layout, and compositing. Collaborator handles are passed in
// explicitly; the engine stages themselves are pure and run synchronously.
package pipeline
