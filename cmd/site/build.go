package main

import (
	"fmt"
	"io"
	"maps"
	"slices"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/openauthenticator/site/pkg/appinfo"
)

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Write version.json, languages.json and the language directories",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		opts, err := loadOptions(configPath)
		if err != nil {
			return err
		}

		res, err := appinfo.Build(cmd.Context(), opts, log)
		if err != nil {
			log.ErrorContext(cmd.Context(), "build failed", "error", err)
			return err
		}

		printSummary(cmd.OutOrStdout(), res)
		return nil
	},
}

// printSummary writes a per-language coverage table.
func printSummary(w io.Writer, res *appinfo.Result) {
	fmt.Fprintf(w, "version %s -> %s\n", res.Version, res.Dir)

	for _, code := range slices.Sorted(maps.Keys(res.Languages)) {
		lang := res.Languages[code]
		pct := lang.Progress * 100

		c := color.New(color.FgRed)
		switch {
		case lang.Progress >= 0.9:
			c = color.New(color.FgGreen)
		case lang.Progress >= 0.5:
			c = color.New(color.FgYellow)
		}

		fmt.Fprintf(w, "  %-6s %-12s ", code, lang.Name)
		c.Fprintf(w, "%6.1f%%", pct)
		fmt.Fprintf(w, "  %d files\n", len(lang.Files))
	}
}
