package docstring

import (
	"strings"

	"github.com/mitchellh/go-wordwrap"
)

// rewrap breaks text into lines of at most avail characters, breaking
// only at whitespace. Words longer than avail overflow untruncated, so
// at least one line is always produced. The first line is prefixed with
// firstIndent (the unit's real indent string, marker included), every
// continuation line with contIndent.
func rewrap(text string, avail int, firstIndent, contIndent string) []string {
	if avail < 1 {
		avail = 1
	}
	wrapped := strings.Split(wordwrap.WrapString(text, uint(avail)), "\n")
	lines := make([]string, len(wrapped))
	for i, w := range wrapped {
		if i == 0 {
			lines[i] = firstIndent + w
		} else {
			lines[i] = contIndent + w
		}
	}
	return lines
}
