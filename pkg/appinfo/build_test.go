package appinfo_test

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/openauthenticator/site/pkg/appinfo"
)

var hostApp = map[string]string{
	"pubspec.yaml":                 "name: open_authenticator\nversion: 1.2.3+45\n",
	"lib/i18n/en/strings.json":     `{"home":{"title":"Home","subtitle":"Sub"},"steps":["a","b"]}`,
	"lib/i18n/en/legal.json":       `{"terms":"Terms"}`,
	"lib/i18n/fr/strings.json":     `{"home":{"title":"Accueil","subtitle":"Sous"},"steps":["a","b"]}`,
	"lib/i18n/fr/legal.json":       `{"terms":"Conditions"}`,
	"lib/i18n/es/strings.json":     `{"home":{"title":"Inicio"}}`,
	"lib/i18n/ja/strings.json":     `{"home":{"title":"ホーム"},"extra":"x"}`,
	"lib/i18n/ja/NOTES.txt":        "copied but not counted",
	"lib/i18n/ja/plurals/one.json": `{"home":{"subtitle":"x"}}`,
}

func decodeLanguages(t *testing.T, dir string) map[string]appinfo.LanguageWithData {
	t.Helper()
	var out map[string]appinfo.LanguageWithData
	require.NoError(t, json.Unmarshal(readFile(t, filepath.Join(dir, appinfo.LanguagesFile)), &out))
	return out
}

func TestBuild(t *testing.T) {
	t.Parallel()

	opts := newProject(t, hostApp)
	res, err := appinfo.Build(context.Background(), opts, nil)
	require.NoError(t, err)
	require.Equal(t, "1.2.3", res.Version)
	require.Equal(t, opts.DestinationDir(), res.Dir)

	require.Equal(t, `{"version":"1.2.3"}`, string(readFile(t, filepath.Join(res.Dir, appinfo.VersionFile))))

	langs := decodeLanguages(t, res.Dir)

	t.Run("identical key sets are complete", func(t *testing.T) {
		require.InDelta(t, 1.0, langs["en"].Progress, 1e-9)
		require.InDelta(t, 1.0, langs["fr"].Progress, 1e-9)
		require.Equal(t, "Français", langs["fr"].Name)
	})

	t.Run("partial translation", func(t *testing.T) {
		// 1 of 5 primary keys: home.title.
		require.InDelta(t, 0.2, langs["es"].Progress, 1e-9)
		require.Equal(t, []string{"strings.json"}, langs["es"].Files)
	})

	t.Run("declared languages absent on disk", func(t *testing.T) {
		for _, code := range []string{"pt", "de", "it"} {
			require.Contains(t, langs, code)
			require.Zero(t, langs[code].Progress)
			require.NotNil(t, langs[code].Files)
			require.Empty(t, langs[code].Files)
		}
	})

	t.Run("undeclared language on disk", func(t *testing.T) {
		require.Equal(t, "ja", langs["ja"].Code)
		require.Equal(t, "日本語", langs["ja"].Name)
		require.InDelta(t, 0.2, langs["ja"].Progress, 1e-9)
		require.Equal(t, []string{"NOTES.txt", "plurals", "strings.json"}, langs["ja"].Files)
	})

	t.Run("files are copied verbatim", func(t *testing.T) {
		require.Equal(t,
			[]byte(hostApp["lib/i18n/ja/strings.json"]),
			readFile(t, filepath.Join(res.Dir, "ja", "strings.json")),
		)
		require.Equal(t, []byte("copied but not counted"), readFile(t, filepath.Join(res.Dir, "ja", "NOTES.txt")))
		require.Equal(t,
			[]byte(hostApp["lib/i18n/ja/plurals/one.json"]),
			readFile(t, filepath.Join(res.Dir, "ja", "plurals", "one.json")),
		)
	})

	t.Run("absent languages have an empty files array on disk", func(t *testing.T) {
		var raw map[string]map[string]json.RawMessage
		require.NoError(t, json.Unmarshal(readFile(t, filepath.Join(res.Dir, appinfo.LanguagesFile)), &raw))
		require.JSONEq(t, `[]`, string(raw["pt"]["files"]))
		require.JSONEq(t, `0`, string(raw["pt"]["progress"]))
	})
}

func TestBuild_Idempotent(t *testing.T) {
	t.Parallel()

	opts := newProject(t, hostApp)
	ctx := context.Background()

	first, err := appinfo.Build(ctx, opts, nil)
	require.NoError(t, err)
	version := readFile(t, filepath.Join(first.Dir, appinfo.VersionFile))
	languages := readFile(t, filepath.Join(first.Dir, appinfo.LanguagesFile))

	second, err := appinfo.Build(ctx, opts, nil)
	require.NoError(t, err)
	require.Equal(t, version, readFile(t, filepath.Join(second.Dir, appinfo.VersionFile)))
	require.Equal(t, languages, readFile(t, filepath.Join(second.Dir, appinfo.LanguagesFile)))
}

func TestBuild_RemovedFilesDisappear(t *testing.T) {
	t.Parallel()

	opts := newProject(t, hostApp)
	ctx := context.Background()

	res, err := appinfo.Build(ctx, opts, nil)
	require.NoError(t, err)
	require.FileExists(t, filepath.Join(res.Dir, "fr", "legal.json"))

	i18n := filepath.Join(opts.RootDir, opts.I18nPath)
	require.NoError(t, os.Remove(filepath.Join(i18n, "fr", "legal.json")))

	res, err = appinfo.Build(ctx, opts, nil)
	require.NoError(t, err)
	require.NoFileExists(t, filepath.Join(res.Dir, "fr", "legal.json"))
	require.Equal(t, []string{"strings.json"}, res.Languages["fr"].Files)
	require.InDelta(t, 0.8, res.Languages["fr"].Progress, 1e-9)
}

func TestBuild_Errors(t *testing.T) {
	t.Parallel()

	t.Run("primary language missing", func(t *testing.T) {
		t.Parallel()
		opts := newProject(t, map[string]string{
			"pubspec.yaml":             "version: 1.0.0\n",
			"lib/i18n/fr/strings.json": `{"a":"b"}`,
		})
		_, err := appinfo.Build(context.Background(), opts, nil)
		require.ErrorIs(t, err, appinfo.ErrPrimaryLanguageMissing)
	})

	t.Run("no primary keys", func(t *testing.T) {
		t.Parallel()
		opts := newProject(t, map[string]string{
			"pubspec.yaml":             "version: 1.0.0\n",
			"lib/i18n/en/strings.json": `{}`,
		})
		_, err := appinfo.Build(context.Background(), opts, nil)
		require.ErrorIs(t, err, appinfo.ErrNoPrimaryKeys)
	})

	t.Run("manifest without version", func(t *testing.T) {
		t.Parallel()
		opts := newProject(t, map[string]string{
			"pubspec.yaml":             "name: app\n",
			"lib/i18n/en/strings.json": `{"a":"b"}`,
		})
		_, err := appinfo.Build(context.Background(), opts, nil)
		require.ErrorIs(t, err, appinfo.ErrMissingVersion)
	})

	t.Run("broken translation file", func(t *testing.T) {
		t.Parallel()
		opts := newProject(t, map[string]string{
			"pubspec.yaml":             "version: 1.0.0\n",
			"lib/i18n/en/strings.json": `{"a":"b"}`,
			"lib/i18n/fr/strings.json": `{"a":`,
		})
		_, err := appinfo.Build(context.Background(), opts, nil)
		require.ErrorIs(t, err, appinfo.ErrInvalidTranslationFile)
	})

	t.Run("invalid options", func(t *testing.T) {
		t.Parallel()
		opts := appinfo.DefaultOptions()
		opts.PrimaryLanguage = ""
		_, err := appinfo.Build(context.Background(), opts, nil)
		require.ErrorIs(t, err, appinfo.ErrInvalidOptions)
	})
}
