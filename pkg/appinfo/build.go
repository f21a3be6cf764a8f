package appinfo

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/otiai10/copy"
	"golang.org/x/text/language"
	"golang.org/x/text/language/display"

	"github.com/openauthenticator/site/pkg/logger"
)

// LanguagesFile is the name of the languages artifact.
const LanguagesFile = "languages.json"

// LanguageWithData is a language with its translation coverage.
type LanguageWithData struct {
	Language
	// Progress is the fraction of primary keys translated, in [0, 1].
	Progress float64 `json:"progress"`
	// Files are the copied entry names in listing order, subdirectories
	// included. Never nil.
	Files []string `json:"files"`
}

// Result describes the artifacts of a build.
type Result struct {
	Dir       string
	Version   string
	Languages map[string]LanguageWithData
}

// Build runs the whole pipeline: it extracts the version, reads the
// translation tree, computes coverage, copies every language directory and
// writes version.json and languages.json into opts.DestinationDir().
// Running it twice on unchanged input produces identical artifacts.
func Build(ctx context.Context, opts Options, log *slog.Logger) (*Result, error) {
	if log == nil {
		log = logger.NewNope()
	}
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	dest := opts.DestinationDir()
	if err := os.MkdirAll(dest, 0o755); err != nil {
		return nil, fmt.Errorf("appinfo: create destination: %w", err)
	}

	log.InfoContext(ctx, "extracting application version")
	version, err := ExtractVersion(opts.resolve(opts.PubspecPath))
	if err != nil {
		return nil, err
	}
	if err := WriteVersion(dest, version); err != nil {
		return nil, fmt.Errorf("appinfo: write version: %w", err)
	}
	log.InfoContext(ctx, "version extracted", slog.String("version", version))

	log.InfoContext(ctx, "extracting application languages")
	tree, err := ReadTree(opts.resolve(opts.I18nPath), opts.PrimaryLanguage)
	if err != nil {
		return nil, err
	}

	primary, err := LoadFileKeys(tree.Primary.Path, opts.translations(tree.Primary.Regular))
	if err != nil {
		return nil, err
	}
	if primary.Total() == 0 {
		return nil, fmt.Errorf("%w: %s", ErrNoPrimaryKeys, tree.Primary.Path)
	}

	languages := make(map[string]LanguageWithData, len(opts.Languages))
	for _, dir := range tree.Languages {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		entry, err := writeLanguage(opts, dest, dir, primary)
		if err != nil {
			return nil, err
		}
		languages[dir.Code] = entry
		log.InfoContext(ctx, "language found",
			slog.String("code", entry.Code),
			slog.Float64("progress", entry.Progress),
			slog.Int("files", len(entry.Files)),
		)
	}

	for _, l := range opts.Languages {
		if _, ok := languages[l.Code]; ok {
			continue
		}
		languages[l.Code] = LanguageWithData{Language: l, Progress: 0, Files: []string{}}
		log.InfoContext(ctx, "language not found", slog.String("code", l.Code))
	}

	// Map keys are sorted by encoding/json, which keeps the output stable.
	data, err := json.Marshal(languages)
	if err != nil {
		return nil, err
	}
	if err := os.WriteFile(filepath.Join(dest, LanguagesFile), data, 0o644); err != nil {
		return nil, fmt.Errorf("appinfo: write languages: %w", err)
	}

	log.InfoContext(ctx, "done", slog.String("dir", dest))
	return &Result{Dir: dest, Version: version, Languages: languages}, nil
}

// writeLanguage replaces the language's output directory with a copy of its
// source and computes its coverage from the copied files.
func writeLanguage(opts Options, dest string, dir LanguageDir, primary FileKeys) (LanguageWithData, error) {
	out := filepath.Join(dest, dir.Code)
	if err := os.RemoveAll(out); err != nil {
		return LanguageWithData{}, fmt.Errorf("appinfo: clear %s: %w", out, err)
	}
	if err := copy.Copy(dir.Path, out); err != nil {
		return LanguageWithData{}, fmt.Errorf("appinfo: copy %s: %w", dir.Code, err)
	}

	files, regular, err := listEntries(out)
	if err != nil {
		return LanguageWithData{}, err
	}

	translated, err := LoadFileKeys(out, opts.translations(regular))
	if err != nil {
		return LanguageWithData{}, err
	}
	progress, err := ComputeCoverage(primary, translated)
	if err != nil {
		return LanguageWithData{}, err
	}

	lang, ok := opts.declared(dir.Code)
	if !ok {
		lang = Language{Code: dir.Code, Name: displayName(dir.Code)}
	}
	return LanguageWithData{Language: lang, Progress: progress, Files: files}, nil
}

// translations filters the file names that take part in key counting.
func (o Options) translations(files []string) []string {
	out := make([]string, 0, len(files))
	for _, f := range files {
		if o.isTranslation(f) {
			out = append(out, f)
		}
	}
	return out
}

// displayName returns the name of a locale in its own language, or the code
// itself when the locale is unknown.
func displayName(code string) string {
	tag, err := language.Parse(code)
	if err != nil {
		return code
	}
	if name := display.Self.Name(tag); name != "" {
		return name
	}
	return code
}
