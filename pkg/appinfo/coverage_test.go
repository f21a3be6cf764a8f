package appinfo_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/openauthenticator/site/pkg/appinfo"
)

func set(keys ...string) appinfo.KeySet {
	s := make(appinfo.KeySet, len(keys))
	for _, k := range keys {
		s[k] = struct{}{}
	}
	return s
}

func TestComputeCoverage(t *testing.T) {
	t.Parallel()

	primary := appinfo.FileKeys{
		"app.json":   set("a", "b.c", "d"),
		"legal.json": set("terms"),
	}

	tests := []struct {
		name       string
		translated appinfo.FileKeys
		want       float64
	}{
		{"identical", appinfo.FileKeys{"app.json": set("a", "b.c", "d"), "legal.json": set("terms")}, 1},
		{"half", appinfo.FileKeys{"app.json": set("a", "d")}, 0.5},
		{"extra keys are ignored", appinfo.FileKeys{"app.json": set("a", "zzz"), "other.json": set("terms")}, 0.25},
		{"nothing", appinfo.FileKeys{}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := appinfo.ComputeCoverage(primary, tt.translated)
			require.NoError(t, err)
			require.InDelta(t, tt.want, got, 1e-9)
		})
	}
}

func TestComputeCoverage_SameKeyInTwoFiles(t *testing.T) {
	t.Parallel()

	// "title" exists in both primary files; a translation of one file must
	// not be credited for the other.
	primary := appinfo.FileKeys{
		"home.json":  set("title"),
		"about.json": set("title"),
	}
	translated := appinfo.FileKeys{"home.json": set("title")}

	got, err := appinfo.ComputeCoverage(primary, translated)
	require.NoError(t, err)
	require.InDelta(t, 0.5, got, 1e-9)
}

func TestComputeCoverage_NoPrimaryKeys(t *testing.T) {
	t.Parallel()

	_, err := appinfo.ComputeCoverage(appinfo.FileKeys{"app.json": set()}, appinfo.FileKeys{})
	require.ErrorIs(t, err, appinfo.ErrNoPrimaryKeys)
}

func TestReadKeys_InvalidFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFiles(t, dir, map[string]string{"broken.json": `{"a":`})

	_, err := appinfo.ReadKeys(filepath.Join(dir, "broken.json"))
	require.ErrorIs(t, err, appinfo.ErrInvalidTranslationFile)
	require.ErrorContains(t, err, "broken.json")
}
