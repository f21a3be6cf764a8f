package appinfo

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// VersionFile is the name of the version artifact.
const VersionFile = "version.json"

// VersionInfo is the content of version.json.
type VersionInfo struct {
	Version string `json:"version"`
}

// ExtractVersion reads the manifest at path and returns its version without
// build metadata.
func ExtractVersion(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("appinfo: read manifest: %w", err)
	}
	return parseVersion(data)
}

// parseVersion keeps the scalar text of the version key, so "1.0" stays a
// string even though YAML would read it as a number.
func parseVersion(data []byte) (string, error) {
	var manifest struct {
		Version yaml.Node `yaml:"version"`
	}
	if err := yaml.Unmarshal(data, &manifest); err != nil {
		return "", fmt.Errorf("%w: %v", ErrMissingVersion, err)
	}

	node := manifest.Version
	if node.Kind != yaml.ScalarNode || node.Tag == "!!null" || strings.TrimSpace(node.Value) == "" {
		return "", ErrMissingVersion
	}
	return StripBuildMetadata(strings.TrimSpace(node.Value)), nil
}

// StripBuildMetadata drops everything from the first "+".
func StripBuildMetadata(version string) string {
	if i := strings.IndexByte(version, '+'); i >= 0 {
		return version[:i]
	}
	return version
}

// WriteVersion writes version.json into dir.
func WriteVersion(dir, version string) error {
	data, err := json.Marshal(VersionInfo{Version: version})
	if err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(dir, VersionFile), data, 0o644)
}
