package services

import (
	"errors"
	"testing"
)

func TestWrap(t *testing.T) {
	base := errors.New("connection refused")
	err := Wrap(ErrExternalTool, "transcribe", "upload", "groq request failed", base)
	if !errors.Is(err, ErrExternalTool) {
		t.Error("marker lost")
	}
	if !errors.Is(err, base) {
		t.Error("cause lost")
	}
	want := "external tool error: transcribe: upload: groq request failed: connection refused"
	if err.Error() != want {
		t.Errorf("message = %q, want %q", err.Error(), want)
	}
}

func TestWrapDefaults(t *testing.T) {
	err := Wrap(nil, "", "", "", nil)
	if !errors.Is(err, ErrTransient) {
		t.Error("nil marker should default to transient")
	}
	if err.Error() != "transient failure: service failure" {
		t.Errorf("message = %q", err.Error())
	}
}
