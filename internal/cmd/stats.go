package cmd

import (
	"context"
	"os"

	"github.com/renato0307/versioninfo/internal/config"
	"github.com/renato0307/versioninfo/internal/services"
)

// StatsCmd collects and prints the statistics templates are rendered against
type StatsCmd struct {
	ServiceFlags `embed:""`

	Format string `help:"Output format" enum:"table,dotenv,json,yaml" default:"table"`
}

// Run executes the stats command
func (s *StatsCmd) Run(ctx context.Context, cli *CLI) error {
	container := cli.Container

	service, err := s.loadService(container)
	if err != nil {
		return err
	}
	pkg, err := s.loadPackage(container)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, service.Plugin.QueryTimeout)
	defer cancel()

	stats, err := container.NewStatsCollector(s.Dir).Collect(ctx, pkg, service.Provider.Stage)
	if err != nil {
		container.Console.Error(services.ErrorLabel, err)
		return err
	}

	format := s.Format
	if format == "" {
		format = config.FormatTable
	}
	return writeStats(os.Stdout, stats, format)
}
