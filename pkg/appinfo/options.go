package appinfo

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/bmatcuk/doublestar/v4"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

// Language is a supported locale and its display name.
type Language struct {
	Code string `json:"code" yaml:"code" toml:"code"`
	Name string `json:"name" yaml:"name" toml:"name"`
}

// Options configures a build. It is passed by value to every stage.
type Options struct {
	// RootDir is the base for every relative path below.
	RootDir string `yaml:"root_dir" toml:"root_dir"`
	// PubspecPath is the host application manifest holding the version.
	PubspecPath string `yaml:"pubspec_path" toml:"pubspec_path"`
	// I18nPath holds one subdirectory of translation files per language.
	I18nPath string `yaml:"i18n_path" toml:"i18n_path"`
	// OutputDir is the working directory of the build, relative to RootDir.
	OutputDir string `yaml:"output_dir" toml:"output_dir"`
	// DestinationDirectory is both the output subdirectory and the public URL segment.
	DestinationDirectory string `yaml:"destination_directory" toml:"destination_directory"`
	// PrimaryLanguage is the reference locale for coverage.
	PrimaryLanguage string `yaml:"primary_language" toml:"primary_language"`
	// TranslationPattern selects the files, by name, that take part in key counting.
	TranslationPattern string `yaml:"translation_pattern" toml:"translation_pattern"`
	// Languages are the declared locales.
	Languages []Language `yaml:"languages" toml:"languages"`
}

// DefaultLanguages returns the locales declared when none are configured.
func DefaultLanguages() []Language {
	return []Language{
		{Code: "en", Name: "English"},
		{Code: "fr", Name: "Français"},
		{Code: "es", Name: "Español"},
		{Code: "pt", Name: "Portuguese"},
		{Code: "de", Name: "German"},
		{Code: "it", Name: "Italiano"},
	}
}

// DefaultOptions returns the options used when no configuration file is given.
func DefaultOptions() Options {
	return Options{
		RootDir:              ".",
		PubspecPath:          "../pubspec.yaml",
		I18nPath:             "../lib/i18n/",
		OutputDir:            ".appinfo",
		DestinationDirectory: "_app",
		PrimaryLanguage:      "en",
		TranslationPattern:   "*.json",
		Languages:            DefaultLanguages(),
	}
}

// LoadOptions reads options from a YAML or TOML file, chosen by extension.
// Fields missing from the file keep their defaults. An empty path returns the defaults.
func LoadOptions(path string) (Options, error) {
	opts := DefaultOptions()
	if path == "" {
		return opts, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return opts, fmt.Errorf("appinfo: read options: %w", err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		err = toml.Unmarshal(data, &opts)
	default:
		err = yaml.Unmarshal(data, &opts)
	}
	if err != nil {
		return opts, fmt.Errorf("%w: %s: %v", ErrInvalidOptions, path, err)
	}

	return opts, opts.Validate()
}

// Validate reports every problem with the options at once.
func (o Options) Validate() error {
	var errs []error

	if o.PubspecPath == "" {
		errs = append(errs, errors.New("pubspec path is empty"))
	}
	if o.I18nPath == "" {
		errs = append(errs, errors.New("i18n path is empty"))
	}
	if o.OutputDir == "" {
		errs = append(errs, errors.New("output directory is empty"))
	}
	if d := o.DestinationDirectory; d == "" || d == "." || d == ".." || strings.ContainsAny(d, `/\`) {
		errs = append(errs, fmt.Errorf("destination directory %q must be a single path segment", d))
	}
	if !doublestar.ValidatePattern(o.TranslationPattern) {
		errs = append(errs, fmt.Errorf("translation pattern %q is invalid", o.TranslationPattern))
	}
	if o.PrimaryLanguage == "" {
		errs = append(errs, errors.New("primary language is empty"))
	} else if _, err := language.Parse(o.PrimaryLanguage); err != nil {
		errs = append(errs, fmt.Errorf("primary language %q: %v", o.PrimaryLanguage, err))
	}

	seen := make(map[string]bool, len(o.Languages))
	for _, l := range o.Languages {
		if _, err := language.Parse(l.Code); err != nil {
			errs = append(errs, fmt.Errorf("language %q: %v", l.Code, err))
		}
		if seen[l.Code] {
			errs = append(errs, fmt.Errorf("language %q declared twice", l.Code))
		}
		seen[l.Code] = true
	}

	if len(errs) > 0 {
		return fmt.Errorf("%w: %w", ErrInvalidOptions, errors.Join(errs...))
	}
	return nil
}

// DestinationDir is the directory the artifacts are written to.
func (o Options) DestinationDir() string {
	return o.resolve(filepath.Join(o.OutputDir, o.DestinationDirectory))
}

// resolve makes p absolute against RootDir unless it already is.
func (o Options) resolve(p string) string {
	if filepath.IsAbs(p) {
		return filepath.Clean(p)
	}
	return filepath.Join(o.RootDir, p)
}

// declared returns the declared language with the given code.
func (o Options) declared(code string) (Language, bool) {
	for _, l := range o.Languages {
		if l.Code == code {
			return l, true
		}
	}
	return Language{}, false
}

// isTranslation reports whether a file takes part in key counting.
func (o Options) isTranslation(name string) bool {
	ok, err := doublestar.Match(o.TranslationPattern, name)
	return err == nil && ok
}
