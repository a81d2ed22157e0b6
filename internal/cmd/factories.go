package cmd

import (
	"io"

	"github.com/renato0307/versioninfo/internal/adapters/console"
	"github.com/renato0307/versioninfo/internal/adapters/expression"
	adaptergit "github.com/renato0307/versioninfo/internal/adapters/git"
	"github.com/renato0307/versioninfo/internal/adapters/manifest"
	"github.com/renato0307/versioninfo/internal/adapters/serviceconfig"
	"github.com/renato0307/versioninfo/internal/config"
	"github.com/renato0307/versioninfo/internal/domain"
	"github.com/renato0307/versioninfo/internal/ports"
	"github.com/renato0307/versioninfo/internal/services"
)

// Container holds all dependencies for the application
type Container struct {
	// Adapters
	Console       ports.Logger
	Evaluator     ports.ExpressionEvaluator
	PackageReader ports.PackageReader
	ServiceLoader ports.ServiceLoader

	Settings *config.Settings

	// newRepo creates the repository querier for a directory
	newRepo func(dir string) ports.RepoQuerier
}

// NewContainer creates a new Container with all dependencies wired.
// The host log sink writes to logOut.
func NewContainer(settings *config.Settings, logOut io.Writer) *Container {
	return &Container{
		Console:       console.NewConsole(logOut),
		Evaluator:     expression.NewEvaluator(),
		PackageReader: manifest.NewReader(),
		ServiceLoader: serviceconfig.NewLoaderWithDefaults(settings.PluginDefaults()),
		Settings:      settings,
		newRepo: func(dir string) ports.RepoQuerier {
			return adaptergit.NewCLIRepository(dir)
		},
	}
}

// NewStatsCollector creates a collector querying the repository in dir
func (c *Container) NewStatsCollector(dir string) *services.StatsCollector {
	return services.NewStatsCollector(c.newRepo(dir))
}

// NewPlugin wires a plugin instance for service, querying the repository in dir
func (c *Container) NewPlugin(service *domain.Service, pkg domain.Package, dir string) *services.VersionInfoPlugin {
	return services.NewVersionInfoPlugin(
		service,
		pkg,
		c.NewStatsCollector(dir),
		services.NewRenderer(c.Evaluator, c.Console),
		c.Console,
	)
}
