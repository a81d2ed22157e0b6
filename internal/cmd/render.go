package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/renato0307/versioninfo/internal/domain"
	"github.com/renato0307/versioninfo/internal/logging"
)

// RenderCmd runs the plugin hook directly and prints the provider environment
type RenderCmd struct {
	ServiceFlags `embed:""`

	EnvFile string `help:"Existing dotenv file merged into the provider environment" type:"path"`
	Format  string `help:"Output format (dotenv, json or yaml; default from settings)" enum:"dotenv,json,yaml," default:""`
	Only    bool   `help:"Print only the variables set by the plugin"`
	Write   bool   `help:"Write the merged environment back to --env-file"`
}

// Validate checks flag combinations
func (r *RenderCmd) Validate() error {
	if r.Write && r.EnvFile == "" {
		return fmt.Errorf("--write requires --env-file")
	}
	return nil
}

// Run executes the render command
func (r *RenderCmd) Run(ctx context.Context, cli *CLI) error {
	container := cli.Container

	service, err := r.loadService(container)
	if err != nil {
		return err
	}
	pkg, err := r.loadPackage(container)
	if err != nil {
		return err
	}

	if r.EnvFile != "" {
		existing, err := readEnvFile(r.EnvFile)
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", r.EnvFile, err)
		}
		// Declared provider values win over the file
		existing.Merge(service.EnsureEnvironment())
		service.Provider.Environment = existing
	}

	_, setErr := container.NewPlugin(service, pkg, r.Dir).SetVersionInfo(ctx)
	var tplErr *domain.TemplateExpansionError
	if setErr != nil && !errors.As(setErr, &tplErr) {
		return setErr
	}

	env := service.EnsureEnvironment()
	if r.Only {
		env = pluginVariables(service)
	}

	if r.Write {
		if err := writeEnvFile(r.EnvFile, service.Provider.Environment); err != nil {
			return fmt.Errorf("failed to write %s: %w", r.EnvFile, err)
		}
		logging.Logger.Info("Environment written", "path", r.EnvFile, "variables", len(service.Provider.Environment))
	}

	format := r.Format
	if format == "" {
		format = container.Settings.Format
	}
	if err := writeEnvironment(os.Stdout, env, format); err != nil {
		return err
	}

	return setErr
}

// pluginVariables returns the configured variables that were set
func pluginVariables(service *domain.Service) domain.Environment {
	env := make(domain.Environment, len(service.Plugin.Variables))
	for _, variable := range service.Plugin.Variables {
		if value, ok := service.Provider.Environment[variable.Name]; ok {
			env[variable.Name] = value
		}
	}
	return env
}
