package langmeta

import "testing"

func TestValid(t *testing.T) {
	tests := []struct {
		lang string
		want bool
	}{
		{"ru", true},
		{"pt-BR", true},
		{"pt_BR", true},
		{" de ", true},
		{"not a code!", false},
		{"", false},
	}
	for _, tc := range tests {
		if got := Valid(tc.lang); got != tc.want {
			t.Fatalf("Valid(%q) = %v, want %v", tc.lang, got, tc.want)
		}
	}
}

func TestResolve_NativeName(t *testing.T) {
	if got := Resolve("de").Name; got != "Deutsch" {
		t.Fatalf("Resolve(de).Name = %q, want Deutsch", got)
	}
}

func TestResolve_RegionFlag(t *testing.T) {
	tests := []struct {
		lang string
		want string
	}{
		{"en-US", "\U0001F1FA\U0001F1F8"},
		{"pt-BR", "\U0001F1E7\U0001F1F7"},
		{"pt_BR", "\U0001F1E7\U0001F1F7"},
	}
	for _, tc := range tests {
		if got := Resolve(tc.lang).Flag; got != tc.want {
			t.Fatalf("Resolve(%q).Flag = %q, want %q", tc.lang, got, tc.want)
		}
	}
}

func TestResolve_UnparseableFallsBack(t *testing.T) {
	got := Resolve("not a code!")
	if got.Name != "not a code!" || got.Flag != "" {
		t.Fatalf("Resolve(invalid) = %+v, want the input as name and no flag", got)
	}
}
