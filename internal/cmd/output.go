package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/joho/godotenv"
	jsoniter "github.com/json-iterator/go"
	"gopkg.in/yaml.v3"

	"github.com/renato0307/versioninfo/internal/config"
	"github.com/renato0307/versioninfo/internal/domain"
	"github.com/renato0307/versioninfo/internal/theme"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// writeEnvironment prints env in the given format with sorted keys
func writeEnvironment(w io.Writer, env domain.Environment, format string) error {
	switch format {
	case config.FormatJSON:
		return writeJSON(w, map[string]string(env))
	case config.FormatYAML:
		return writeYAML(w, map[string]string(env))
	case config.FormatDotenv, "":
		if len(env) == 0 {
			return nil
		}
		out, err := godotenv.Marshal(env)
		if err != nil {
			return fmt.Errorf("failed to encode environment: %w", err)
		}
		_, err = fmt.Fprintln(w, out)
		return err
	}
	return fmt.Errorf("unsupported format %q", format)
}

// writeStats prints the statistics record
func writeStats(w io.Writer, stats domain.Stats, format string) error {
	switch format {
	case config.FormatJSON:
		return writeJSON(w, stats)
	case config.FormatYAML:
		return writeYAML(w, stats)
	case config.FormatDotenv:
		env := make(domain.Environment, len(domain.FieldNames()))
		for _, name := range domain.FieldNames() {
			value, _ := stats.Lookup(name)
			env[name] = value
		}
		return writeEnvironment(w, env, config.FormatDotenv)
	case config.FormatTable, "":
		_, err := fmt.Fprintln(w, renderStatsTable(stats))
		return err
	}
	return fmt.Errorf("unsupported format %q", format)
}

// renderStatsTable renders the record as labeled rows in field order
func renderStatsTable(stats domain.Stats) string {
	rows := make([]string, 0, len(domain.FieldNames())+1)
	rows = append(rows, theme.TitleStyle.Render("Version info"))
	for _, name := range domain.FieldNames() {
		value, _ := stats.Lookup(name)
		style := theme.ValueStyle
		if name == "delta" {
			style = theme.DeltaStyle(stats.Delta)
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top,
			theme.LabelStyle.Render(name),
			style.Render(value),
		))
	}
	return strings.Join(rows, "\n")
}

func writeJSON(w io.Writer, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}

func writeYAML(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("failed to marshal YAML: %w", err)
	}
	return enc.Close()
}
