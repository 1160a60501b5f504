// Package reconcile maps machine-translated text back onto the original
// time-coded segments produced by transcription.
//
// Translation services return either a single undifferentiated block or an
// array whose length may or may not match the original segmentation. Only an
// equal-length array carries guaranteed alignment; the sentence-splitting
// heuristic for full-text input is an explicit degraded mode, surfaced via
// Result.Degraded so callers can log it. Timing and order of the original
// segments are never altered.
package reconcile
