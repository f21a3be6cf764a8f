package appinfo

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// LanguageDir is one language subdirectory of the translation tree.
type LanguageDir struct {
	Code string
	Path string
	// Files are the entries of the directory in listing order,
	// subdirectories included.
	Files []string
	// Regular are the regular files among Files.
	Regular []string
}

// Tree is the translation tree read from disk.
type Tree struct {
	Root    string
	Primary LanguageDir
	// Languages holds every language directory, the primary one included,
	// in listing order.
	Languages []LanguageDir
}

// ReadTree lists the language subdirectories of dir and the entries of each.
// Top-level entries that are not directories are skipped. A missing root or
// primary directory is reported as ErrPrimaryLanguageMissing.
func ReadTree(dir, primary string) (*Tree, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrPrimaryLanguageMissing, filepath.Join(dir, primary))
		}
		return nil, fmt.Errorf("appinfo: read i18n directory: %w", err)
	}

	tree := &Tree{Root: dir}
	found := false
	for _, e := range entries {
		if !e.IsDir() {
			continue
		}
		path := filepath.Join(dir, e.Name())
		files, regular, err := listEntries(path)
		if err != nil {
			return nil, err
		}

		ld := LanguageDir{Code: e.Name(), Path: path, Files: files, Regular: regular}
		tree.Languages = append(tree.Languages, ld)
		if ld.Code == primary {
			tree.Primary = ld
			found = true
		}
	}

	if !found {
		return nil, fmt.Errorf("%w: %s", ErrPrimaryLanguageMissing, filepath.Join(dir, primary))
	}
	return tree, nil
}

// listEntries returns the names of the entries of dir in listing order and,
// separately, the names of the regular files among them.
func listEntries(dir string) (names, regular []string, err error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, nil, fmt.Errorf("appinfo: list %s: %w", dir, err)
	}

	names = make([]string, 0, len(entries))
	regular = make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name())
		if e.Type().IsRegular() {
			regular = append(regular, e.Name())
		}
	}
	return names, regular, nil
}
