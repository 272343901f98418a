package docstring

import "testing"

func TestClassify_Kinds(t *testing.T) {
	tests := []struct {
		name   string
		raw    string
		kind   Kind
		indent string
		marker string
		text   string
	}{
		{
			name: "empty line is blank",
			raw:  "",
			kind: Blank,
		},
		{
			name: "whitespace only is blank",
			raw:  "   ",
			kind: Blank,
		},
		{
			name: "equals underline",
			raw:  "========",
			kind: SectionDecoration,
			text: "========",
		},
		{
			name:   "indented dash underline",
			raw:    "    ----------",
			kind:   SectionDecoration,
			indent: "    ",
			text:   "----------",
		},
		{
			name: "single symbol already decorates",
			raw:  "-",
			kind: SectionDecoration,
			text: "-",
		},
		{
			name: "mixed symbols are plain",
			raw:  "=-=-=",
			kind: Plain,
			text: "=-=-=",
		},
		{
			name:   "dash bullet",
			raw:    "  - item text",
			kind:   ListItem,
			indent: "  ",
			marker: "- ",
			text:   "item text",
		},
		{
			name: "dash without space is plain",
			raw:  "-item",
			kind: Plain,
			text: "-item",
		},
		{
			name:   "star bullet",
			raw:    "* starred",
			kind:   ListItem,
			marker: "* ",
			text:   "starred",
		},
		{
			name:   "auto numbered bullet",
			raw:    "#. automatic",
			kind:   ListItem,
			marker: "#. ",
			text:   "automatic",
		},
		{
			name:   "line block marker",
			raw:    "| block line",
			kind:   ListItem,
			marker: "| ",
			text:   "block line",
		},
		{
			name:   "ordered item",
			raw:    "3. third step",
			kind:   ListItem,
			marker: "3. ",
			text:   "third step",
		},
		{
			name:   "multi digit ordered item",
			raw:    "12. twelfth",
			kind:   ListItem,
			marker: "12. ",
			text:   "twelfth",
		},
		{
			name:   "marker keeps extra separator whitespace",
			raw:    "-   spaced body",
			kind:   ListItem,
			marker: "-   ",
			text:   "spaced body",
		},
		{
			name:   "star dash row is a list item first",
			raw:    "* - cell one",
			kind:   ListItem,
			marker: "* ",
			text:   "- cell one",
		},
		{
			name:   "list-table directive",
			raw:    ".. list-table:: Frozen Delights",
			kind:   ListTableItem,
			marker: ".. list-table:: ",
			text:   "Frozen Delights",
		},
		{
			name: "prose starting with symbols is plain",
			raw:  "== note: not an underline",
			kind: Plain,
			text: "== note: not an underline",
		},
		{
			name:   "ordinary prose",
			raw:    "    Returns the sum.",
			kind:   Plain,
			indent: "    ",
			text:   "Returns the sum.",
		},
	}

	for _, tc := range tests {
		got := Classify(tc.raw)
		if got.Kind != tc.kind {
			t.Fatalf("%s: Classify(%q).Kind = %v, want %v", tc.name, tc.raw, got.Kind, tc.kind)
		}
		if got.Indent != tc.indent {
			t.Fatalf("%s: Classify(%q).Indent = %q, want %q", tc.name, tc.raw, got.Indent, tc.indent)
		}
		if got.Marker != tc.marker {
			t.Fatalf("%s: Classify(%q).Marker = %q, want %q", tc.name, tc.raw, got.Marker, tc.marker)
		}
		if got.Text != tc.text {
			t.Fatalf("%s: Classify(%q).Text = %q, want %q", tc.name, tc.raw, got.Text, tc.text)
		}
		if got.Raw != tc.raw {
			t.Fatalf("%s: Classify(%q).Raw = %q, want the input back", tc.name, tc.raw, got.Raw)
		}
	}
}

func TestClassify_BodylessOrderedItem(t *testing.T) {
	// An ordered marker with no body keeps the whole text as its marker
	// header.
	got := Classify("1.")
	if got.Kind != ListItem {
		t.Fatalf("Classify(%q).Kind = %v, want ListItem", "1.", got.Kind)
	}
	if got.Marker != "1." || got.Text != "" {
		t.Fatalf("Classify(%q) = marker %q text %q, want marker %q and empty text",
			"1.", got.Marker, got.Text, "1.")
	}
}

func TestLeadingWhitespace(t *testing.T) {
	tests := []struct {
		line string
		want string
	}{
		{"", ""},
		{"    ", "    "},
		{"\ttext", "\t"},
		{"  x  ", "  "},
		{"none", ""},
	}
	for _, tc := range tests {
		if got := leadingWhitespace(tc.line); got != tc.want {
			t.Fatalf("leadingWhitespace(%q) = %q, want %q", tc.line, got, tc.want)
		}
	}
}
