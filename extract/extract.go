// Package extract produces gettext POT templates from the docstrings of
// .pyi interface stubs.
//
// Extraction drives the same classifier and paragraph buffering the
// translator applies, so the msgids written to the template are exactly
// the strings the translator will later look up — a catalog built from
// the template matches lookups one-to-one.
package extract

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/stubintl/stubintl/docstring"
	"github.com/stubintl/stubintl/pofile"
	"github.com/stubintl/stubintl/pyifile"
)

// Result reports what an extraction run produced.
type Result struct {
	// SourceFiles are the stub files that were scanned.
	SourceFiles []string
	// POTFile is the template path that was written.
	POTFile string
	// Messages is the number of unique msgids extracted.
	Messages int
}

// message is one deduplicated translation unit with its source locations.
type message struct {
	text      string
	locations []string // "file:line" references
	order     int      // first-seen rank, for deterministic output
}

// Run scans the given stub files and directories (recursively, *.pyi)
// and writes a POT template for the given domain.
func Run(paths []string, potFile, domain string) (*Result, error) {
	files, err := FindStubs(paths)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("no .pyi files found in %s", strings.Join(paths, ", "))
	}

	messages := make(map[string]*message)
	for _, path := range files {
		if err := extractFromFile(path, messages); err != nil {
			// One bad stub shouldn't stop extraction.
			fmt.Fprintf(os.Stderr, "warning: skipping %s: %v\n", path, err)
		}
	}

	if dir := filepath.Dir(potFile); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("creating output directory: %w", err)
		}
	}
	if err := writePOT(potFile, domain, messages); err != nil {
		return nil, err
	}

	return &Result{
		SourceFiles: files,
		POTFile:     potFile,
		Messages:    len(messages),
	}, nil
}

// FindStubs expands files and directories into a sorted list of .pyi
// files. Directories are walked recursively, hidden directories and
// __pycache__ are skipped.
func FindStubs(paths []string) ([]string, error) {
	var files []string
	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil {
			return nil, fmt.Errorf("stat %s: %w", path, err)
		}
		if !info.IsDir() {
			files = append(files, path)
			continue
		}
		err = filepath.WalkDir(path, func(p string, d fs.DirEntry, err error) error {
			if err != nil {
				return nil
			}
			if d.IsDir() {
				if name := d.Name(); strings.HasPrefix(name, ".") || name == "__pycache__" {
					return filepath.SkipDir
				}
				return nil
			}
			if filepath.Ext(p) == ".pyi" {
				files = append(files, p)
			}
			return nil
		})
		if err != nil {
			return nil, err
		}
	}
	sort.Strings(files)
	return files, nil
}

// extractFromFile records every translation unit of every docstring in
// one stub file.
func extractFromFile(path string, messages map[string]*message) error {
	f, err := pyifile.ParseFile(path)
	if err != nil {
		return err
	}

	for _, d := range f.Docstrings() {
		for _, text := range docstring.Units(d.Text) {
			location := fmt.Sprintf("%s:%d", path, d.Line)
			if m, ok := messages[text]; ok {
				m.locations = append(m.locations, location)
			} else {
				messages[text] = &message{
					text:      text,
					locations: []string{location},
					order:     len(messages),
				}
			}
		}
	}
	return nil
}

// writePOT writes the deduplicated messages as a POT template.
func writePOT(path, domain string, messages map[string]*message) error {
	pot := pofile.NewFile()
	pot.Header = pofile.MakeHeader(domain, "")

	sorted := make([]*message, 0, len(messages))
	for _, m := range messages {
		sorted = append(sorted, m)
	}
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].order < sorted[j].order })

	for _, m := range sorted {
		pot.Entries = append(pot.Entries, &pofile.Entry{
			References: m.locations,
			MsgID:      m.text,
		})
	}

	if err := pot.WriteFile(path); err != nil {
		return fmt.Errorf("writing POT file: %w", err)
	}
	return nil
}
