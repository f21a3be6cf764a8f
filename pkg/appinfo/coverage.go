package appinfo

import (
	"fmt"
	"os"
	"path/filepath"
)

// KeySet is the set of flattened keys of one translation file.
type KeySet map[string]struct{}

// FileKeys maps a file name to its key set. Keys are identified by the pair
// (file name, flattened key), so equal keys in different files never collide.
type FileKeys map[string]KeySet

// ReadKeys decodes and flattens a translation file.
func ReadKeys(path string) (KeySet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("appinfo: read %s: %w", path, err)
	}

	v, err := Decode(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrInvalidTranslationFile, path, err)
	}

	flat := Flatten(v)
	keys := make(KeySet, len(flat))
	for k := range flat {
		keys[k] = struct{}{}
	}
	return keys, nil
}

// LoadFileKeys reads the key sets of the given files of dir.
func LoadFileKeys(dir string, files []string) (FileKeys, error) {
	out := make(FileKeys, len(files))
	for _, name := range files {
		keys, err := ReadKeys(filepath.Join(dir, name))
		if err != nil {
			return nil, err
		}
		out[name] = keys
	}
	return out, nil
}

// Total is the number of keys across all files.
func (f FileKeys) Total() int {
	n := 0
	for _, keys := range f {
		n += len(keys)
	}
	return n
}

// Matched counts the keys of primary that are also present in the file of
// the same name in translated. Values are not compared.
func Matched(primary, translated FileKeys) int {
	n := 0
	for name, keys := range primary {
		other, ok := translated[name]
		if !ok {
			continue
		}
		for k := range keys {
			if _, ok := other[k]; ok {
				n++
			}
		}
	}
	return n
}

// ComputeCoverage returns the fraction of primary keys present in translated,
// in [0, 1]. A primary language without keys is a configuration error.
func ComputeCoverage(primary, translated FileKeys) (float64, error) {
	total := primary.Total()
	if total == 0 {
		return 0, ErrNoPrimaryKeys
	}
	return float64(Matched(primary, translated)) / float64(total), nil
}
