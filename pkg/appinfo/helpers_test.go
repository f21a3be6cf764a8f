package appinfo_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/openauthenticator/site/pkg/appinfo"
)

// writeFiles creates the given files (slash-separated paths) below root.
func writeFiles(t *testing.T, root string, files map[string]string) {
	t.Helper()
	for name, content := range files {
		path := filepath.Join(root, filepath.FromSlash(name))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	}
}

// newProject lays out a host application next to a site directory and
// returns options pointing at it.
func newProject(t *testing.T, files map[string]string) appinfo.Options {
	t.Helper()

	root := t.TempDir()
	writeFiles(t, root, files)

	site := filepath.Join(root, "docs")
	require.NoError(t, os.MkdirAll(site, 0o755))

	opts := appinfo.DefaultOptions()
	opts.RootDir = site
	return opts
}

func readFile(t *testing.T, path string) []byte {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return data
}
