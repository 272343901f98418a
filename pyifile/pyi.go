// Package pyifile locates and rewrites docstring literals in Python
// typed interface stub (.pyi) files.
//
// The scanner is a single byte-level pass with no Python runtime: it
// skips comments and single-quoted strings and records the span of
// every triple-quoted string literal. Every triple-quoted literal is
// treated as a translatable docstring. On rewrite, each docstring's
// inner text is spliced back in place and every other byte of the
// source is preserved exactly.
package pyifile

import (
	"bytes"
	"fmt"
	"os"
	"strings"
)

// Docstring is one triple-quoted literal located in the source.
type Docstring struct {
	// Start and End are the byte offsets of the inner text.
	Start, End int
	// Quote is the delimiter style, `"""` or `'''`.
	Quote string
	// Prefix is the literal prefix (r, b, rb, ...), empty for plain
	// strings.
	Prefix string
	// Line is the 1-based source line of the opening delimiter.
	Line int
	// Text is the inner text between the delimiters.
	Text string
}

// OpenerWidth returns the column width of the opening delimiter,
// literal prefix included.
func (d Docstring) OpenerWidth() int { return len(d.Prefix) + len(d.Quote) }

// File is a parsed stub source with its docstring spans.
type File struct {
	src  []byte
	docs []Docstring
}

// Parse scans stub source for docstring literals. The only rejected
// input is an unterminated triple-quoted string.
func Parse(data []byte) (*File, error) {
	f := &File{src: data}
	n := len(data)
	line := 1

	for i := 0; i < n; {
		c := data[i]
		switch {
		case c == '\n':
			line++
			i++

		case c == '#':
			for i < n && data[i] != '\n' {
				i++
			}

		case c == '"' || c == '\'':
			if i+2 < n && data[i+1] == c && data[i+2] == c {
				quote := string([]byte{c, c, c})
				prefix := literalPrefix(data, i)
				raw := strings.ContainsAny(prefix, "rR")
				start := i + 3

				end, endLine, ok := findCloser(data, start, quote, line, raw)
				if !ok {
					return nil, fmt.Errorf("line %d: unterminated %s string", line, quote)
				}
				f.docs = append(f.docs, Docstring{
					Start:  start,
					End:    end,
					Quote:  quote,
					Prefix: prefix,
					Line:   line,
					Text:   string(data[start:end]),
				})
				line = endLine
				i = end + 3
				continue
			}
			// Ordinary string: runs to the matching quote or, tolerantly,
			// to the end of the line.
			q := c
			i++
			for i < n && data[i] != '\n' {
				if data[i] == '\\' {
					if i+1 < n && data[i+1] == '\n' {
						line++
					}
					i += 2
					continue
				}
				if data[i] == q {
					i++
					break
				}
				i++
			}

		default:
			i++
		}
	}
	return f, nil
}

// ParseFile reads and scans a stub file.
func ParseFile(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	f, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return f, nil
}

// Docstrings returns the located docstrings in source order.
func (f *File) Docstrings() []Docstring { return f.docs }

// Source returns the original source bytes.
func (f *File) Source() []byte { return f.src }

// Rewrite returns a copy of the source with each docstring's inner text
// replaced by fn's result. All bytes outside docstring text, the
// delimiters included, are preserved unchanged.
func (f *File) Rewrite(fn func(Docstring) string) []byte {
	var buf bytes.Buffer
	buf.Grow(len(f.src))

	prev := 0
	for _, d := range f.docs {
		buf.Write(f.src[prev:d.Start])
		buf.WriteString(fn(d))
		prev = d.End
	}
	buf.Write(f.src[prev:])
	return buf.Bytes()
}

// WriteFile writes the rewritten source to path.
func (f *File) WriteFile(path string, fn func(Docstring) string) error {
	return os.WriteFile(path, f.Rewrite(fn), 0644)
}

// findCloser locates the closing delimiter of a triple-quoted string,
// honoring backslash escapes unless the literal is raw.
func findCloser(data []byte, start int, quote string, line int, raw bool) (end, endLine int, ok bool) {
	for j := start; j < len(data); j++ {
		switch {
		case !raw && data[j] == '\\':
			j++
			if j < len(data) && data[j] == '\n' {
				line++
			}
		case data[j] == '\n':
			line++
		case data[j] == quote[0] && bytes.HasPrefix(data[j:], []byte(quote)):
			return j, line, true
		}
	}
	return 0, line, false
}

// literalPrefix returns the string-prefix letters immediately before a
// quote, or "" when the letters belong to a longer identifier.
func literalPrefix(data []byte, quotePos int) string {
	j := quotePos
	for j > 0 && isPrefixLetter(data[j-1]) {
		j--
	}
	if j > 0 && isIdentChar(data[j-1]) {
		return ""
	}
	return string(data[j:quotePos])
}

func isPrefixLetter(c byte) bool {
	switch c {
	case 'r', 'R', 'b', 'B', 'u', 'U', 'f', 'F':
		return true
	}
	return false
}

func isIdentChar(c byte) bool {
	return c == '_' || c >= '0' && c <= '9' ||
		c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z'
}
