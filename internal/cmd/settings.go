package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/renato0307/versioninfo/internal/config"
)

// SettingsCmd manages settings
type SettingsCmd struct {
	Show SettingsShowCmd `cmd:"show" help:"Show settings file location and effective values" default:"1"`
}

// SettingsShowCmd displays the effective settings
type SettingsShowCmd struct {
	Format string `help:"Output format: table, json or yaml" enum:"table,json,yaml" default:"table"`
}

// Run executes the show command
func (s *SettingsShowCmd) Run(cli *CLI) error {
	settingsFile := config.GetSettingsPath()
	infos := config.Describe(cli.Container.Settings)

	switch s.Format {
	case config.FormatJSON, config.FormatYAML:
		output := map[string]any{
			"settings_file": settingsFile,
			"settings":      infos,
		}
		if s.Format == config.FormatJSON {
			return writeJSON(os.Stdout, output)
		}
		return writeYAML(os.Stdout, output)
	}

	// Table format
	fmt.Printf("Settings file: %s\n\n", settingsFile)

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "KEY\tVALUE\tSOURCE\tENV")
	for _, info := range infos {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", info.Key, info.Value, info.Source, info.EnvVar)
	}
	w.Flush()

	fmt.Println()
	fmt.Println("Create or edit this file to configure versioninfo.")
	fmt.Println("All settings are optional and have sensible defaults.")

	return nil
}
