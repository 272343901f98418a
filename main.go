// stubintl — gettext-based docstring translator for Python interface stubs.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/stubintl/stubintl/catalog"
	"github.com/stubintl/stubintl/config"
	"github.com/stubintl/stubintl/docstring"
	"github.com/stubintl/stubintl/extract"
	"github.com/stubintl/stubintl/langmeta"
	"github.com/stubintl/stubintl/merge"
	"github.com/stubintl/stubintl/pofile"
	"github.com/stubintl/stubintl/pyifile"
)

// Version information (set via -ldflags during build)
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// ANSI colors
const (
	colorReset  = "\033[0m"
	colorRed    = "\033[0;31m"
	colorGreen  = "\033[0;32m"
	colorYellow = "\033[1;33m"
	colorBlue   = "\033[0;34m"
)

func logInfo(format string, args ...any) {
	fmt.Fprintf(os.Stderr, colorBlue+"[INFO]"+colorReset+" "+format+"\n", args...)
}

func logSuccess(format string, args ...any) {
	fmt.Fprintf(os.Stderr, colorGreen+"[OK]"+colorReset+" "+format+"\n", args...)
}

func logWarning(format string, args ...any) {
	fmt.Fprintf(os.Stderr, colorYellow+"[WARN]"+colorReset+" "+format+"\n", args...)
}

func logError(format string, args ...any) {
	fmt.Fprintf(os.Stderr, colorRed+"[ERROR]"+colorReset+" "+format+"\n", args...)
}

// ---------------------------------------------------------------------------
// Global flag
// ---------------------------------------------------------------------------

var rootDir string

// loadConfig reads .stubintl.yaml from the project root, falling back
// to defaults when no file exists.
func loadConfig() *config.Config {
	cfg, err := config.Load(rootDir)
	if err != nil {
		logError("%v", err)
		os.Exit(1)
	}
	if cfg == nil {
		return config.Default()
	}
	return cfg
}

// resolvePath makes a config-relative path absolute against the project
// root. Paths given on the command line stay as-is.
func resolvePath(path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(rootDir, path)
}

// ---------------------------------------------------------------------------
// Root command
// ---------------------------------------------------------------------------

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "stubintl",
		Short: "Docstring translator for Python interface stubs",
		Long: `stubintl — gettext-based docstring translator for Python interface stubs.

Rewrites the docstrings of .pyi files using translations from standard
gettext catalogs (<locale_dir>/<lang>/LC_MESSAGES/<domain>.po), keeping
all code, signatures, and docstring structure (section underlines, list
markers, indentation) byte-for-byte intact.

Commands:
  status      Show catalog coverage per language
  extract     Extract docstring paragraphs into a POT template
  translate   Rewrite stub docstrings using a language's catalog

Catalogs are produced by ordinary gettext tooling (msginit, msgmerge,
sphinx-intl); stubintl never calls a translation service itself.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global persistent flag — inherited by all subcommands
	root.PersistentFlags().StringVar(&rootDir, "root", ".", "Project root directory")

	root.AddCommand(
		newStatusCmd(),
		newExtractCmd(),
		newTranslateCmd(),
		newVersionCmd(),
	)

	return root
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		logError("%v", err)
		os.Exit(1)
	}
}

// ---------------------------------------------------------------------------
// version (display version information)
// ---------------------------------------------------------------------------

func newVersionCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Long:  `Display version, commit hash, and build date.`,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("stubintl version %s\n", version)
			fmt.Printf("  commit:    %s\n", commit)
			fmt.Printf("  built:     %s\n", date)
		},
	}

	return cmd
}

// ---------------------------------------------------------------------------
// status (read-only: project info + catalog coverage)
// ---------------------------------------------------------------------------

func newStatusCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show catalog coverage per language",
		Long: `Show project configuration and per-language catalog coverage.

Reads the POT template and each language's PO catalog and reports how
many docstring paragraphs are translated. Does not modify any files.`,
		Run: func(cmd *cobra.Command, args []string) {
			runStatus()
		},
	}

	return cmd
}

func runStatus() {
	cfg := loadConfig()

	fmt.Fprintf(os.Stderr, "\n%sProject%s\n", colorBlue, colorReset)
	fmt.Fprintln(os.Stderr, strings.Repeat("─", 60))

	absRoot, _ := filepath.Abs(rootDir)
	fmt.Fprintf(os.Stderr, "  Root:       %s\n", absRoot)
	fmt.Fprintf(os.Stderr, "  Domain:     %s\n", cfg.Domain)
	fmt.Fprintf(os.Stderr, "  Locales:    %s\n", cfg.LocaleDir)
	fmt.Fprintf(os.Stderr, "  Template:   %s\n", cfg.POTFile)
	fmt.Fprintf(os.Stderr, "  Stubs:      %s\n", strings.Join(cfg.Stubs, ", "))
	if cfg.LineWidth > 0 {
		fmt.Fprintf(os.Stderr, "  Line width: %d\n", cfg.LineWidth)
	} else {
		fmt.Fprintf(os.Stderr, "  Line width: unlimited\n")
	}

	fmt.Fprintln(os.Stderr)

	if len(cfg.Languages) > 0 {
		fmt.Fprintf(os.Stderr, "  Languages:  %s\n", strings.Join(cfg.Languages, ", "))
	} else {
		fmt.Fprintf(os.Stderr, "  Languages:  none configured\n")
	}

	fmt.Fprintln(os.Stderr)

	potPath := resolvePath(cfg.POTFile)
	if !fileExists(potPath) {
		logInfo("No POT template found. Run 'stubintl extract' first.")
		return
	}

	showStatsTable(cfg, potPath)
}

func showStatsTable(cfg *config.Config, potPath string) {
	potTotal := 0
	if potPO, err := pofile.ParseFile(potPath); err == nil {
		for _, e := range potPO.Entries {
			if e.MsgID != "" && !e.Obsolete {
				potTotal++
			}
		}
	}

	if potTotal == 0 {
		logInfo("No translatable paragraphs found in %s", potPath)
		return
	}

	fmt.Fprintf(os.Stderr, "%sTranslation Statistics%s\n", colorBlue, colorReset)
	fmt.Fprintln(os.Stderr, strings.Repeat("─", 60))
	fmt.Fprintf(os.Stderr, "\n%-10s %-22s %-12s %-8s %s\n", "Lang", "Name", "Translated", "Fuzzy", "Progress")
	fmt.Fprintln(os.Stderr, strings.Repeat("─", 72))

	for _, lang := range cfg.Languages {
		poPath := resolvePath(cfg.POPath(lang))
		meta := langmeta.Resolve(lang)
		name := meta.Name
		if meta.Flag != "" {
			name += " " + meta.Flag
		}

		poFile, err := pofile.ParseFile(poPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%-10s %-22s %-12s %-8s %s\n", lang, name, "missing", "-", "-")
			continue
		}

		_, translated, fuzzy, _ := poFile.Stats()
		percent := translated * 100 / potTotal

		fmt.Fprintf(os.Stderr, "%-10s %-22s %-12d %-8d %s\n",
			lang, name, translated, fuzzy, progressBar(percent, 20))
	}

	fmt.Fprintln(os.Stderr, strings.Repeat("─", 72))
	fmt.Fprintf(os.Stderr, "Total paragraphs: %d\n\n", potTotal)
}

// progressBar renders a colored bar like "████░░░░  50%".
func progressBar(percent, width int) string {
	if percent < 0 {
		percent = 0
	}
	if percent > 100 {
		percent = 100
	}

	barColor := colorGreen
	if percent < 50 {
		barColor = colorRed
	} else if percent < 100 {
		barColor = colorYellow
	}

	filled := percent * width / 100
	bar := strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
	return fmt.Sprintf("%s%s%s %3d%%", barColor, bar, colorReset, percent)
}

// ---------------------------------------------------------------------------
// extract (docstrings -> POT template, optionally update PO catalogs)
// ---------------------------------------------------------------------------

func newExtractCmd() *cobra.Command {
	var (
		potFile string
		domain  string
		update  bool
	)

	cmd := &cobra.Command{
		Use:   "extract [stubs...]",
		Short: "Extract docstring paragraphs into a POT template",
		Long: `Extract translatable docstring paragraphs from .pyi files.

Scans the given stub files and directories (default: the configured
stubs) and writes a POT template. Each msgid is one docstring paragraph,
joined across physical lines exactly as the translator will look it up.
Section underlines and other structural markup are never extracted.

With --update, each configured language's PO catalog is created or
merged against the new template, preserving existing translations and
marking vanished entries obsolete.`,
		Run: func(cmd *cobra.Command, args []string) {
			runExtract(args, potFile, domain, update)
		},
	}

	cmd.Flags().StringVar(&potFile, "pot", "", "Output .pot file path")
	cmd.Flags().StringVar(&domain, "domain", "", "Gettext domain name")
	cmd.Flags().BoolVar(&update, "update", false, "Create or merge per-language PO catalogs")

	return cmd
}

func runExtract(args []string, potFile, domain string, update bool) {
	cfg := loadConfig()

	if domain != "" {
		cfg.Domain = domain
	}
	if potFile != "" {
		cfg.POTFile = potFile
	}

	stubs := args
	if len(stubs) == 0 {
		stubs = make([]string, len(cfg.Stubs))
		for i, s := range cfg.Stubs {
			stubs[i] = resolvePath(s)
		}
	}

	potPath := resolvePath(cfg.POTFile)

	result, err := extract.Run(stubs, potPath, cfg.Domain)
	if err != nil {
		logError("%v", err)
		os.Exit(1)
	}

	logSuccess("Extracted %d paragraphs from %d files into %s",
		result.Messages, len(result.SourceFiles), result.POTFile)

	if !update {
		return
	}

	if len(cfg.Languages) == 0 {
		logWarning("No languages configured in %s, nothing to update", config.FileName)
		return
	}

	potPO, err := pofile.ParseFile(potPath)
	if err != nil {
		logError("Reading %s: %v", potPath, err)
		os.Exit(1)
	}

	created, updated := 0, 0

	for _, lang := range cfg.Languages {
		if !langmeta.Valid(lang) {
			logWarning("Skipping invalid language code %q", lang)
			continue
		}
		poPath := resolvePath(cfg.POPath(lang))

		if err := os.MkdirAll(filepath.Dir(poPath), 0755); err != nil {
			logError("Creating directory for %s: %v", poPath, err)
			continue
		}

		if !fileExists(poPath) {
			newPO := pofile.NewFile()
			newPO.Header = pofile.MakeHeader(cfg.Domain, lang)

			for _, e := range potPO.Entries {
				newPO.Entries = append(newPO.Entries, &pofile.Entry{
					ExtractedComments: e.ExtractedComments,
					References:        e.References,
					MsgID:             e.MsgID,
				})
			}

			if err := newPO.WriteFile(poPath); err != nil {
				logError("Creating %s: %v", poPath, err)
				continue
			}
			logSuccess("Created: %s", poPath)
			created++
		} else {
			existingPO, err := pofile.ParseFile(poPath)
			if err != nil {
				logError("Reading %s: %v", poPath, err)
				continue
			}

			merged := merge.Merge(existingPO, potPO)
			if err := merged.WriteFile(poPath); err != nil {
				logError("Writing %s: %v", poPath, err)
				continue
			}
			logSuccess("Updated: %s", poPath)
			updated++
		}
	}

	logInfo("Summary: %d created, %d updated", created, updated)
}

// ---------------------------------------------------------------------------
// translate (rewrite stub docstrings from a language's catalog)
// ---------------------------------------------------------------------------

func newTranslateCmd() *cobra.Command {
	var (
		lang      string
		domain    string
		localeDir string
		width     int
		outputDir string
	)

	cmd := &cobra.Command{
		Use:   "translate [stubs...]",
		Short: "Rewrite stub docstrings using a language's catalog",
		Long: `Rewrite the docstrings of .pyi files using a gettext catalog.

Each docstring paragraph is looked up in
<locale_dir>/<lang>/LC_MESSAGES/<domain>.po and replaced by its
translation; paragraphs without a translation pass through unchanged.
Structural lines (section underlines, blank lines) and all code outside
docstrings are preserved byte-for-byte.

A single input stub is written to stdout unless --output is given.
With --output, the input tree is mirrored under the output directory.

Examples:
  # Translate one stub to stdout
  stubintl translate --lang ru module.pyi

  # Translate a stub tree, re-flowing prose at 79 columns
  stubintl translate --lang de --width 79 --output out/ stubs/`,
		Run: func(cmd *cobra.Command, args []string) {
			runTranslate(args, lang, domain, localeDir, width, outputDir,
				cmd.Flags().Changed("width"))
		},
	}

	cmd.Flags().StringVar(&lang, "lang", "", "Target language code (required)")
	cmd.Flags().StringVar(&domain, "domain", "", "Gettext domain name")
	cmd.Flags().StringVar(&localeDir, "locale-dir", "", "Catalog root directory")
	cmd.Flags().IntVar(&width, "width", 0, "Re-flow translated prose at this column (0 = no wrapping)")
	cmd.Flags().StringVarP(&outputDir, "output", "o", "", "Output directory (default: stdout for a single file)")

	_ = cmd.MarkFlagRequired("lang")

	return cmd
}

func runTranslate(args []string, lang, domain, localeDir string, width int, outputDir string, widthSet bool) {
	cfg := loadConfig()

	if domain != "" {
		cfg.Domain = domain
	}
	if localeDir != "" {
		cfg.LocaleDir = localeDir
	}
	if widthSet {
		cfg.LineWidth = width
	}
	if outputDir == "" {
		outputDir = cfg.OutputDir
	}

	if !langmeta.Valid(lang) {
		logError("Invalid language code %q", lang)
		os.Exit(1)
	}
	if cfg.LineWidth < 0 {
		logError("--width must not be negative")
		os.Exit(1)
	}

	stubArgs := args
	if len(stubArgs) == 0 {
		stubArgs = make([]string, len(cfg.Stubs))
		for i, s := range cfg.Stubs {
			stubArgs[i] = resolvePath(s)
		}
	}

	files, err := extract.FindStubs(stubArgs)
	if err != nil {
		logError("%v", err)
		os.Exit(1)
	}
	if len(files) == 0 {
		logError("No .pyi files found in %s", strings.Join(stubArgs, ", "))
		os.Exit(1)
	}
	if len(files) > 1 && outputDir == "" {
		logError("Multiple input files require --output")
		os.Exit(1)
	}

	poPath := resolvePath(cfg.POPath(lang))
	if !fileExists(poPath) {
		logWarning("No catalog at %s, untranslated docstrings pass through unchanged", poPath)
	}

	cat := catalog.LoadLocale(resolvePath(cfg.LocaleDir), lang, cfg.Domain)
	translator := docstring.New(cat, cfg.LineWidth)

	meta := langmeta.Resolve(lang)
	logInfo("Translating %d file(s) to %s (%s)", len(files), meta.Name, lang)

	for _, path := range files {
		f, err := pyifile.ParseFile(path)
		if err != nil {
			logError("%v", err)
			os.Exit(1)
		}

		rewrite := func(d pyifile.Docstring) string {
			return translator.TranslateDelimited(d.Text, d.OpenerWidth())
		}

		if outputDir == "" {
			os.Stdout.Write(f.Rewrite(rewrite))
			continue
		}

		outPath := filepath.Join(outputDir, relativeStubPath(stubArgs, path))
		if err := os.MkdirAll(filepath.Dir(outPath), 0755); err != nil {
			logError("Creating directory for %s: %v", outPath, err)
			os.Exit(1)
		}
		if err := f.WriteFile(outPath, rewrite); err != nil {
			logError("Writing %s: %v", outPath, err)
			os.Exit(1)
		}
		logSuccess("Wrote: %s", outPath)
	}
}

// relativeStubPath mirrors an input file's position under its source
// root so translated trees keep their layout.
func relativeStubPath(roots []string, path string) string {
	for _, root := range roots {
		if info, err := os.Stat(root); err != nil || !info.IsDir() {
			continue
		}
		if rel, err := filepath.Rel(root, path); err == nil && !strings.HasPrefix(rel, "..") {
			return rel
		}
	}
	return filepath.Base(path)
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
