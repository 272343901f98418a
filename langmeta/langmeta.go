// Package langmeta provides language display metadata (native names and
// emoji flags) used by the CLI status output.
package langmeta

import (
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/language/display"
)

// Meta describes language display metadata.
type Meta struct {
	// Tag is the parsed BCP 47 tag.
	Tag language.Tag
	// Name is the language's name in the language itself.
	Name string
	// Flag is an emoji flag for the language's region, or "".
	Flag string
}

func canonicalize(lang string) string {
	return strings.ReplaceAll(strings.TrimSpace(lang), "_", "-")
}

// Valid reports whether lang parses as a language code. Both pt_BR and
// pt-BR spellings are accepted.
func Valid(lang string) bool {
	_, err := language.Parse(canonicalize(lang))
	return err == nil
}

// Resolve returns best-effort display metadata for a language code.
// Unparseable codes fall back to the code itself with no flag.
func Resolve(lang string) Meta {
	tag, err := language.Parse(canonicalize(lang))
	if err != nil {
		return Meta{Name: lang}
	}

	name := display.Self.Name(tag)
	if name == "" {
		name = lang
	}

	return Meta{
		Tag:  tag,
		Name: name,
		Flag: flagForTag(tag),
	}
}

// flagForTag builds the regional indicator pair for the tag's region.
// Deduced regions (language.Region) are fine here, the flag is display
// sugar only.
func flagForTag(tag language.Tag) string {
	region, conf := tag.Region()
	if conf == language.No || !region.IsCountry() {
		return ""
	}
	code := region.String()
	if len(code) != 2 {
		return ""
	}
	return string(0x1F1E6+rune(code[0])-'A') + string(0x1F1E6+rune(code[1])-'A')
}
