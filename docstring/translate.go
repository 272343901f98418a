package docstring

import (
	"strings"

	"github.com/stubintl/stubintl/catalog"
)

// docOpener is the standard opening delimiter of a stub docstring. Its
// width is reserved on the first physical line, where the delimiter
// precedes the first character of text.
const docOpener = `"""`

// Translator rewrites docstrings against a message catalog.
//
// A Translator is read-only after construction; distinct docstrings may
// be translated concurrently.
type Translator struct {
	cat   catalog.Catalog
	width int
}

// New returns a Translator that re-flows translated paragraphs to the
// given line width. Width 0 disables wrapping: each translation unit is
// emitted as one physical line regardless of length.
func New(cat catalog.Catalog, width int) *Translator {
	return &Translator{cat: cat, width: width}
}

// Translate returns doc with every prose unit translated and rewrapped
// and every structural line preserved, assuming the standard `"""`
// opening delimiter.
func (t *Translator) Translate(doc string) string {
	return t.TranslateDelimited(doc, len(docOpener))
}

// TranslateDelimited is Translate for docstrings whose opening delimiter
// occupies openerWidth columns (raw or byte-prefixed literals are wider
// than the plain `"""`).
func (t *Translator) TranslateDelimited(doc string, openerWidth int) string {
	if doc == "" {
		return ""
	}

	lines := strings.Split(doc, "\n")

	// By convention a multi-line docstring's last line holds only the
	// closing delimiter's indentation. A single-line docstring yields
	// its own (usually empty) indent.
	baseIndent := leadingWhitespace(lines[len(lines)-1])

	var (
		out []string
		buf unit
	)
	for i, raw := range lines {
		cl := Classify(raw)
		d := decide(&buf, i, cl, baseIndent)

		switch d.flush {
		case translatedFlush:
			out = append(out, t.flushTranslated(&buf, baseIndent, openerWidth)...)
		case originalFlush:
			out = append(out, buf.flushOriginal()...)
		}
		if d.emitRaw {
			out = append(out, raw)
		}
		if d.put {
			buf.put(i, d.indent, cl.Text, raw)
		}
	}
	out = append(out, t.flushTranslated(&buf, baseIndent, openerWidth)...)

	return strings.Join(out, "\n")
}

// flushTranslated joins the unit's fragments into one paragraph, looks
// it up in the catalog, and re-emits it wrapped to the configured
// width. An empty unit emits nothing.
func (t *Translator) flushTranslated(u *unit, baseIndent string, openerWidth int) []string {
	if u.empty() {
		return nil
	}

	translated := t.cat.Lookup(strings.Join(u.texts, " "))
	indent, startLine := u.indent, u.startLine
	u.reset()

	if t.width <= 0 {
		return []string{indent + translated}
	}

	// The effective indent is the wider of the unit's indent and the
	// base indent. A unit opening the docstring additionally reserves
	// room for the opening delimiter that precedes its first character.
	effIndent := len(indent)
	if len(baseIndent) > effIndent {
		effIndent = len(baseIndent)
	}
	if startLine == 0 {
		effIndent += openerWidth
	}

	return rewrap(translated, t.width-effIndent, indent, strings.Repeat(" ", effIndent))
}

// Units returns the translatable paragraph strings of doc in order,
// joined exactly as Translate joins them before catalog lookup. Units
// that would be flushed via the original-passthrough path (prose
// immediately preceding a section decoration) are never translated and
// are therefore not reported.
func Units(doc string) []string {
	if doc == "" {
		return nil
	}

	lines := strings.Split(doc, "\n")
	baseIndent := leadingWhitespace(lines[len(lines)-1])

	var (
		units []string
		buf   unit
	)
	collect := func() {
		if !buf.empty() {
			units = append(units, strings.Join(buf.texts, " "))
		}
		buf.reset()
	}
	for i, raw := range lines {
		cl := Classify(raw)
		d := decide(&buf, i, cl, baseIndent)

		switch d.flush {
		case translatedFlush:
			collect()
		case originalFlush:
			buf.reset()
		}
		if d.put {
			buf.put(i, d.indent, cl.Text, raw)
		}
	}
	collect()

	return units
}
