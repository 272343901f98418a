package pyifile

import (
	"bytes"
	"strings"
	"testing"
)

const sampleStub = `"""Module docstring."""

def add(a: int, b: int) -> int:
    """Add two numbers.

    Returns the sum.
    """
    ...
`

func TestParse_FindsDocstrings(t *testing.T) {
	f, err := Parse([]byte(sampleStub))
	if err != nil {
		t.Fatal(err)
	}

	docs := f.Docstrings()
	if len(docs) != 2 {
		t.Fatalf("found %d docstrings, want 2", len(docs))
	}

	if docs[0].Text != "Module docstring." {
		t.Fatalf("docs[0].Text = %q, want %q", docs[0].Text, "Module docstring.")
	}
	if docs[0].Line != 1 {
		t.Fatalf("docs[0].Line = %d, want 1", docs[0].Line)
	}

	wantText := "Add two numbers.\n\n    Returns the sum.\n    "
	if docs[1].Text != wantText {
		t.Fatalf("docs[1].Text = %q, want %q", docs[1].Text, wantText)
	}
	if docs[1].Line != 4 {
		t.Fatalf("docs[1].Line = %d, want 4", docs[1].Line)
	}
	if docs[1].Quote != `"""` {
		t.Fatalf("docs[1].Quote = %q, want triple double quote", docs[1].Quote)
	}
}

func TestParse_SingleQuotedTriple(t *testing.T) {
	src := "def f() -> None:\n    '''Single quoted.'''\n"
	f, err := Parse([]byte(src))
	if err != nil {
		t.Fatal(err)
	}
	docs := f.Docstrings()
	if len(docs) != 1 || docs[0].Text != "Single quoted." || docs[0].Quote != "'''" {
		t.Fatalf("docs = %+v, want one '''-quoted docstring", docs)
	}
}

func TestParse_PrefixedLiterals(t *testing.T) {
	tests := []struct {
		name   string
		src    string
		prefix string
		width  int
	}{
		{"raw", `r"""raw doc"""`, "r", 4},
		{"bytes", `b"""bytes doc"""`, "b", 4},
		{"raw bytes", `rb"""rb doc"""`, "rb", 5},
		{"plain", `"""plain"""`, "", 3},
	}

	for _, tc := range tests {
		f, err := Parse([]byte(tc.src))
		if err != nil {
			t.Fatalf("%s: %v", tc.name, err)
		}
		docs := f.Docstrings()
		if len(docs) != 1 {
			t.Fatalf("%s: found %d docstrings, want 1", tc.name, len(docs))
		}
		if docs[0].Prefix != tc.prefix {
			t.Fatalf("%s: Prefix = %q, want %q", tc.name, docs[0].Prefix, tc.prefix)
		}
		if got := docs[0].OpenerWidth(); got != tc.width {
			t.Fatalf("%s: OpenerWidth() = %d, want %d", tc.name, got, tc.width)
		}
	}
}

func TestParse_IdentifierBeforeQuoteIsNotPrefix(t *testing.T) {
	// "var" ends in r but is an identifier, not a string prefix.
	src := "var\"\"\"doc\"\"\"\n"
	f, err := Parse([]byte(src))
	if err != nil {
		t.Fatal(err)
	}
	docs := f.Docstrings()
	if len(docs) != 1 || docs[0].Prefix != "" {
		t.Fatalf("docs = %+v, want one docstring with empty prefix", docs)
	}
}

func TestParse_IgnoresCommentsAndStrings(t *testing.T) {
	src := "# \"\"\" not a docstring\n" +
		"NAME = \"has \\\" escaped quote\"\n" +
		"OTHER = 'single'\n" +
		"\"\"\"Real one.\"\"\"\n"
	f, err := Parse([]byte(src))
	if err != nil {
		t.Fatal(err)
	}
	docs := f.Docstrings()
	if len(docs) != 1 {
		t.Fatalf("found %d docstrings, want 1", len(docs))
	}
	if docs[0].Text != "Real one." || docs[0].Line != 4 {
		t.Fatalf("docs[0] = %+v, want Real one. at line 4", docs[0])
	}
}

func TestParse_EscapedQuoteInsideDocstring(t *testing.T) {
	src := "\"\"\"Has \\\"\"\" inside.\"\"\"\n"
	f, err := Parse([]byte(src))
	if err != nil {
		t.Fatal(err)
	}
	docs := f.Docstrings()
	if len(docs) != 1 {
		t.Fatalf("found %d docstrings, want 1", len(docs))
	}
	if want := `Has \""` + `" inside.`; docs[0].Text != want {
		t.Fatalf("Text = %q, want %q", docs[0].Text, want)
	}
}

func TestParse_Unterminated(t *testing.T) {
	_, err := Parse([]byte("x = 1\n\"\"\"never closed\n"))
	if err == nil {
		t.Fatal("Parse() accepted an unterminated triple-quoted string")
	}
	if !strings.Contains(err.Error(), "unterminated") {
		t.Fatalf("error = %v, want mention of unterminated string", err)
	}
	if !strings.Contains(err.Error(), "line 2") {
		t.Fatalf("error = %v, want the opening line number", err)
	}
}

func TestRewrite_IdentityRoundTrip(t *testing.T) {
	f, err := Parse([]byte(sampleStub))
	if err != nil {
		t.Fatal(err)
	}

	out := f.Rewrite(func(d Docstring) string { return d.Text })
	if !bytes.Equal(out, []byte(sampleStub)) {
		t.Fatalf("identity Rewrite changed the source:\n%s", out)
	}
}

func TestRewrite_ReplacesOnlyDocstringText(t *testing.T) {
	f, err := Parse([]byte(sampleStub))
	if err != nil {
		t.Fatal(err)
	}

	out := string(f.Rewrite(func(d Docstring) string { return "X" }))

	if !strings.Contains(out, `"""X"""`) {
		t.Fatalf("Rewrite output missing replaced docstring:\n%s", out)
	}
	if !strings.Contains(out, "def add(a: int, b: int) -> int:") {
		t.Fatalf("Rewrite damaged code outside docstrings:\n%s", out)
	}
	if strings.Contains(out, "Returns the sum.") {
		t.Fatalf("Rewrite kept old docstring text:\n%s", out)
	}
}
