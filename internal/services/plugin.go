package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/renato0307/versioninfo/internal/domain"
	"github.com/renato0307/versioninfo/internal/lifecycle"
	"github.com/renato0307/versioninfo/internal/logging"
	"github.com/renato0307/versioninfo/internal/ports"
)

// Hook events the plugin binds to
const (
	DeployHook  = "before:deploy:functions"
	OfflineHook = "before:offline:start:init"
)

// ErrorLabel heads the error block printed through the host log sink
const ErrorLabel = "Error in ServerlessVersionInfo:"

// VersionInfoPlugin computes version information and writes it into the
// service's provider environment
type VersionInfoPlugin struct {
	collector *StatsCollector
	logger    ports.Logger
	pkg       domain.Package
	renderer  *Renderer
	service   *domain.Service
}

// Verify interface compliance at compile time
var _ lifecycle.Plugin = (*VersionInfoPlugin)(nil)

// NewVersionInfoPlugin creates a new VersionInfoPlugin.
// pkg is the package descriptor, loaded once by the caller.
func NewVersionInfoPlugin(
	service *domain.Service,
	pkg domain.Package,
	collector *StatsCollector,
	renderer *Renderer,
	logger ports.Logger,
) *VersionInfoPlugin {
	return &VersionInfoPlugin{
		collector: collector,
		logger:    logger,
		pkg:       pkg,
		renderer:  renderer,
		service:   service,
	}
}

// Name returns the plugin name
func (p *VersionInfoPlugin) Name() string {
	return domain.PluginName
}

// Commands declares the lifecycle events the hooks bind to
func (p *VersionInfoPlugin) Commands() map[string]*lifecycle.Command {
	return map[string]*lifecycle.Command{
		"deploy":  {LifecycleEvents: []string{"functions"}},
		"offline": {LifecycleEvents: []string{"start"}},
	}
}

// Hooks binds SetVersionInfo to the deploy and offline events
func (p *VersionInfoPlugin) Hooks() map[string]lifecycle.Hook {
	hook := func(ctx context.Context) (any, error) {
		return p.SetVersionInfo(ctx)
	}
	return map[string]lifecycle.Hook{
		DeployHook:  hook,
		OfflineHook: hook,
	}
}

// SetVersionInfo collects the statistics, renders every configured variable
// and merges the results into the provider environment. When the repository
// cannot be queried nothing is written. Variables that fail to render are
// skipped and reported together after the others have been written.
func (p *VersionInfoPlugin) SetVersionInfo(ctx context.Context) (domain.Stats, error) {
	cfg := p.service.Plugin.Normalize()

	ctx, cancel := context.WithTimeout(ctx, cfg.QueryTimeout)
	defer cancel()

	stats, err := p.collector.Collect(ctx, p.pkg, p.service.Provider.Stage)
	if err != nil {
		p.report(err)
		return domain.Stats{}, err
	}

	env, renderErr := p.renderer.Render(stats, cfg)
	p.service.EnsureEnvironment().Merge(env)

	logging.Logger.Info("Version info set",
		"service", p.service.Name,
		"variables", len(env),
		"version", stats.Version)

	if renderErr != nil {
		p.report(renderErr)
		return stats, renderErr
	}
	return stats, nil
}

func (p *VersionInfoPlugin) report(err error) {
	logging.Logger.Error("Failed to set version info", "error", err)
	p.logger.Error(ErrorLabel, err)
}

// PackageWarning returns the warning printed when the package descriptor had
// to be defaulted, or "" when err is not a defaulting error
func PackageWarning(err error) string {
	var defErr *domain.ConfigurationDefaultError
	if !errors.As(err, &defErr) {
		return ""
	}
	if errors.Is(err, domain.ErrVersionUndefined) {
		return fmt.Sprintf("WARNING: version not defined in package.json, using %s", defErr.Default)
	}
	return fmt.Sprintf("WARNING: package.json not found, using %s as version", defErr.Default)
}

// LoadPackage reads the package descriptor, warning through logger when it
// had to be defaulted. Only errors other than defaulting are returned.
func LoadPackage(reader ports.PackageReader, path string, logger ports.Logger) (domain.Package, error) {
	pkg, err := reader.Load(path)
	if err == nil {
		return pkg, nil
	}

	if warning := PackageWarning(err); warning != "" {
		logging.Logger.Warn("Package descriptor defaulted", "path", path, "error", err)
		logger.Warn(warning)
		return pkg, nil
	}
	return domain.Package{}, err
}
