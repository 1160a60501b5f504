// Command subweave subtitles short clips: it probes a video, extracts the
// audio track, transcribes and translates it through Groq, reconciles the
// translation onto the transcript timing, and burns or composites the
// subtitles into a new file.
package main
