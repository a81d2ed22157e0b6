package cmd

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/renato0307/versioninfo/internal/lifecycle"
	"github.com/renato0307/versioninfo/internal/logging"
	"github.com/renato0307/versioninfo/internal/theme"
)

// LifecycleCmd runs a host command through the lifecycle manager with the
// plugin registered
type LifecycleCmd struct {
	ServiceFlags `embed:""`

	Command string `arg:"" optional:"" help:"Command path, e.g. deploy or offline:start"`
	Events  bool   `help:"Only list the hook names the command fires"`
	Format  string `help:"Output format of the resulting environment (default from settings)" enum:"dotenv,json,yaml," default:""`
	List    bool   `help:"List the available commands"`
}

// Run executes the lifecycle command
func (l *LifecycleCmd) Run(ctx context.Context, cli *CLI) error {
	container := cli.Container

	service, err := l.loadService(container)
	if err != nil {
		return err
	}

	manager := lifecycle.NewManager()
	pkg, err := l.loadPackage(container)
	if err != nil {
		return err
	}
	if err := manager.AddPlugin(container.NewPlugin(service, pkg, l.Dir)); err != nil {
		return err
	}

	if l.List || l.Command == "" {
		fmt.Println(strings.Join(manager.CommandPaths(), "\n"))
		return nil
	}

	if l.Events {
		events, err := manager.Events(l.Command)
		if err != nil {
			return err
		}
		fmt.Println(strings.Join(events, "\n"))
		return nil
	}

	results, err := manager.Run(ctx, l.Command)
	for _, result := range results {
		fmt.Fprintf(os.Stderr, "%s %s\n", theme.PrefixStyle.Render(result.Plugin), result.Event)
	}
	if err != nil {
		return err
	}
	logging.Logger.Info("Lifecycle completed", "command", l.Command, "hooks", len(results))

	format := l.Format
	if format == "" {
		format = container.Settings.Format
	}
	return writeEnvironment(os.Stdout, service.EnsureEnvironment(), format)
}
