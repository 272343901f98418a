package docstring

// unit accumulates a maximal run of contiguous same-indent prose lines
// forming one translatable paragraph. It is created empty, grows by one
// fragment per put, and is consumed by exactly one flush.
type unit struct {
	// startLine is the docstring line index of the first fragment. Index
	// 0 marks the unit that opens the docstring, which gets a reduced
	// width budget on re-emission.
	startLine int
	// indent is the effective indent captured from the first fragment.
	// For list items it includes the marker header, so the marker
	// reappears verbatim when the unit is re-emitted.
	indent string
	// texts are the stripped fragments, joined with a single space at
	// flush time.
	texts []string
	// originals are the corresponding raw lines, used only by the
	// original-passthrough flush.
	originals []string
}

func (u *unit) empty() bool { return len(u.texts) == 0 }

func (u *unit) reset() {
	u.startLine = 0
	u.indent = ""
	u.texts = nil
	u.originals = nil
}

// put appends one fragment. The unit's indent and starting line are
// fixed by the first fragment.
func (u *unit) put(lineNo int, indent, text, original string) {
	if len(u.texts) == 0 {
		u.startLine = lineNo
		u.indent = indent
	}
	u.texts = append(u.texts, text)
	u.originals = append(u.originals, original)
}

// flushOriginal returns the unit's raw lines verbatim, in order,
// discarding any translation. Used exclusively ahead of section
// decoration lines, which often follow non-prose artifacts (a heading
// title) that must not be merged into translatable prose.
func (u *unit) flushOriginal() []string {
	lines := u.originals
	u.reset()
	return lines
}

// flushKind selects which flush variant a line transition requires.
type flushKind int

const (
	noFlush flushKind = iota
	// translatedFlush joins, translates, and re-wraps the unit.
	translatedFlush
	// originalFlush emits the unit's raw lines unchanged.
	originalFlush
)

// decision describes how the driver handles one classified line: which
// flush (if any) precedes it, whether the raw line is emitted verbatim,
// and whether its text joins a unit afterwards.
type decision struct {
	flush   flushKind
	emitRaw bool
	put     bool
	indent  string
}

// decide implements the continuation rule. Decoration and list checks
// take precedence over the indentation comparison: a decoration or list
// line can occur at the same nominal indent as ongoing prose yet must
// not be folded into it.
//
// The indent-increase check compares against the active unit's indent,
// except on line 1: the docstring's opening line carries no indent of
// its own (the opening delimiter consumed it), so the first
// continuation line is judged against the base indent instead.
func decide(buf *unit, lineNo int, cl Line, baseIndent string) decision {
	switch cl.Kind {
	case Blank:
		return decision{flush: translatedFlush, emitRaw: true}
	case SectionDecoration:
		return decision{flush: originalFlush, emitRaw: true}
	case ListItem, ListTableItem:
		return decision{flush: translatedFlush, put: true, indent: cl.Indent + cl.Marker}
	}

	ref := len(buf.indent)
	if lineNo == 1 {
		ref = len(baseIndent)
	}
	switch {
	case len(cl.Indent) > ref:
		// Indentation increase opens a new block.
		return decision{flush: translatedFlush, put: true, indent: cl.Indent}
	case len(cl.Indent) < len(buf.indent):
		// Indentation decrease returns to a shallower block.
		return decision{flush: translatedFlush, put: true, indent: cl.Indent}
	default:
		// Same indent: the paragraph continues.
		return decision{put: true, indent: cl.Indent}
	}
}
