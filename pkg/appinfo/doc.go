// Package appinfo extracts build-time metadata from the mobile application
// repository: its version and the translation progress of every language.
//
// A build reads the manifest and the i18n tree of the host application and
// writes, under <RootDir>/<OutputDir>/<DestinationDirectory>:
//
//	version.json      {"version":"1.2.3"}
//	languages.json    {"en":{"code":"en","name":"English","progress":1,"files":["app.json"]}, ...}
//	<code>/...        verbatim copy of each language directory
//
// Progress is the fraction of the primary language's flattened keys that are
// present in the file of the same name of another language. Declared
// languages without a directory are listed with progress 0 and no files.
//
//	opts, err := appinfo.LoadOptions("appinfo.yaml")
//	if err != nil {
//		return err
//	}
//	res, err := appinfo.Build(ctx, opts, log)
package appinfo
