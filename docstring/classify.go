// Package docstring implements structure-preserving translation of
// reStructuredText-flavored docstrings extracted from typed interface
// stubs.
//
// A docstring is processed line by line. Prose lines at the same
// indentation level are merged into one translatable paragraph, looked
// up in a message catalog, and re-flowed to a configured width. Markup
// structure — section underlines, list markers, blank lines, indented
// blocks — is preserved byte-for-byte.
package docstring

import (
	"regexp"
	"strings"
)

// sectionSymbols are the punctuation characters that can form a section
// decoration: a line consisting of one of these symbols repeated.
const sectionSymbols = "=-`:.'\"~^_*+#"

// listMarkers are bullet markers recognized at the start of a list item.
// A marker only counts when followed by a space.
var listMarkers = []string{"-", "*", "#.", "|"}

// listTableMarkers introduce list-table rows.
var listTableMarkers = []string{".. list-table::", "* -"}

// orderedItem matches a numbered list marker such as "1." or "12.".
var orderedItem = regexp.MustCompile(`^\d+\.`)

// Kind is the structural role of a docstring line.
type Kind int

const (
	// Plain is ordinary prose, the default classification.
	Plain Kind = iota
	// Blank is a line with no non-whitespace content.
	Blank
	// SectionDecoration is a line composed of a single repeated markup
	// symbol, conventionally underlining or overlining a heading.
	SectionDecoration
	// ListItem is a bulleted or numbered list item.
	ListItem
	// ListTableItem is a list-table row.
	ListTableItem
)

// Line is the classified view of one raw docstring line.
type Line struct {
	Kind Kind
	// Indent is the line's leading whitespace.
	Indent string
	// Marker is the list marker plus the whitespace separating it from
	// the body ("- ", "3. ", ...). Empty unless Kind is ListItem or
	// ListTableItem.
	Marker string
	// Text is the stripped translatable body. Empty for Blank lines.
	Text string
	// Raw is the line exactly as it appeared.
	Raw string
}

// Classify determines the structural role of a raw line. Classification
// is total: every line maps to some Kind, unrecognized punctuation
// patterns fall through to Plain.
func Classify(raw string) Line {
	text := strings.TrimSpace(raw)
	if text == "" {
		return Line{Kind: Blank, Raw: raw}
	}

	indent := raw[:strings.Index(raw, text)]

	if isSectionDecoration(text) {
		return Line{Kind: SectionDecoration, Indent: indent, Text: text, Raw: raw}
	}

	if marker, body, ok := splitListMarker(text); ok {
		return Line{Kind: ListItem, Indent: indent, Marker: marker, Text: body, Raw: raw}
	}
	if marker, body, ok := splitAnyMarker(text, listTableMarkers); ok {
		return Line{Kind: ListTableItem, Indent: indent, Marker: marker, Text: body, Raw: raw}
	}

	return Line{Kind: Plain, Indent: indent, Text: text, Raw: raw}
}

// isSectionDecoration reports whether text consists of one repeated
// markup symbol (e.g. a row of "=" under a heading). A single symbol
// already qualifies.
func isSectionDecoration(text string) bool {
	c := text[0]
	if !strings.ContainsRune(sectionSymbols, rune(c)) {
		return false
	}
	for i := 1; i < len(text); i++ {
		if text[i] != c {
			return false
		}
	}
	return true
}

// splitListMarker splits a bullet or numbered list item into its marker
// header and body text.
func splitListMarker(text string) (marker, body string, ok bool) {
	if marker, body, ok = splitAnyMarker(text, listMarkers); ok {
		return marker, body, true
	}
	if m := orderedItem.FindString(text); m != "" {
		marker, body = splitMarkerHeader(text, m)
		return marker, body, true
	}
	return "", text, false
}

// splitAnyMarker tries each marker in order, requiring a trailing space.
func splitAnyMarker(text string, markers []string) (marker, body string, ok bool) {
	for _, m := range markers {
		if strings.HasPrefix(text, m+" ") {
			marker, body = splitMarkerHeader(text, m)
			return marker, body, true
		}
	}
	return "", text, false
}

// splitMarkerHeader separates the marker (kept as part of the effective
// indent for re-emission) from the body (translatable prose). The
// header retains the whitespace between marker and body.
func splitMarkerHeader(text, marker string) (header, body string) {
	body = strings.TrimSpace(text[len(marker):])
	if body == "" {
		return text, ""
	}
	return text[:strings.Index(text, body)], body
}

// leadingWhitespace returns the whitespace prefix of a line.
func leadingWhitespace(line string) string {
	return line[:len(line)-len(strings.TrimLeft(line, " \t"))]
}
