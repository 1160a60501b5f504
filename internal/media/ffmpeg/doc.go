// Package ffmpeg shells out to the external transcoder for the three
// operations the pipeline needs: audio extraction for transcription, SRT
// burn-in, and raster overlay compositing.
package ffmpeg
