// Package catalog provides the message catalog abstraction used when
// translating docstrings.
//
// A catalog maps exact source text (a paragraph-joined translation
// unit) to its translated equivalent. Lookup is total: a missing entry
// is not an error, the source text is returned unchanged so
// untranslated prose round-trips losslessly.
package catalog

import (
	"github.com/leonelquinteros/gotext"
)

// Catalog maps exact source text to translated text. Implementations
// must return the input unchanged when no translation exists.
type Catalog interface {
	Lookup(text string) string
}

// Identity maps every string to itself.
type Identity struct{}

// Lookup returns text unchanged.
func (Identity) Lookup(text string) string { return text }

// Map is an in-memory catalog backed by a plain map. Entries with an
// empty translation behave as missing.
type Map map[string]string

// Lookup returns the mapped translation, or text itself when absent.
func (m Map) Lookup(text string) string {
	if translated, ok := m[text]; ok && translated != "" {
		return translated
	}
	return text
}

// Locale is a gettext-backed catalog loaded from a compiled message
// catalog on disk.
type Locale struct {
	locale *gotext.Locale
}

// LoadLocale opens <localeDir>/<lang>/LC_MESSAGES/<domain>.po|.mo — the
// layout produced by sphinx-intl and msgfmt. Loading never fails: a
// missing or unreadable catalog simply yields identity lookups,
// matching standard gettext passthrough behavior.
func LoadLocale(localeDir, lang, domain string) *Locale {
	l := gotext.NewLocale(localeDir, lang)
	l.AddDomain(domain)
	l.SetDomain(domain)
	return &Locale{locale: l}
}

// Lookup translates text via gettext. gotext already falls back to the
// source text when the catalog has no entry.
func (l *Locale) Lookup(text string) string {
	return l.locale.Get(text)
}
