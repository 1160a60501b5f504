package language

import (
	"fmt"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/language/display"
)

// Info describes a source or target language for the pipeline: the BCP 47
// tag, the English display name used in translation prompts, and whether the
// script runs right to left.
type Info struct {
	Tag  language.Tag
	Name string
	RTL  bool
}

// rtlScripts lists the ISO 15924 scripts written right to left that the
// subtitle layout engine may face.
var rtlScripts = map[string]bool{
	"Hebr": true,
	"Arab": true,
	"Syrc": true,
	"Thaa": true,
	"Nkoo": true,
}

// probes holds sample text per RTL script, used to verify a font resource
// actually covers the target script before rendering.
var probes = map[string]string{
	"Hebr": "שלום",
	"Arab": "مرحبا",
}

// Parse resolves a language code ("he", "heb", "en-US") into an Info.
func Parse(code string) (Info, error) {
	code = strings.TrimSpace(code)
	if code == "" {
		return Info{}, fmt.Errorf("language: empty code")
	}
	tag, err := language.Parse(code)
	if err != nil {
		return Info{}, fmt.Errorf("language: parse %q: %w", code, err)
	}
	script, _ := tag.Script()
	return Info{
		Tag:  tag,
		Name: display.English.Tags().Name(tag),
		RTL:  rtlScripts[script.String()],
	}, nil
}

// Probe returns sample text in the language's script for font verification.
// Latin-script languages probe with plain ASCII.
func (i Info) Probe() string {
	script, _ := i.Tag.Script()
	if probe, ok := probes[script.String()]; ok {
		return probe
	}
	return "Ag"
}

// Code returns the two-letter base code the transcription service expects.
func (i Info) Code() string {
	base, _ := i.Tag.Base()
	return base.String()
}
