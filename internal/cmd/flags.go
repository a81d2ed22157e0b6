package cmd

import (
	"errors"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"

	"github.com/renato0307/versioninfo/internal/adapters/manifest"
	"github.com/renato0307/versioninfo/internal/domain"
	"github.com/renato0307/versioninfo/internal/logging"
	"github.com/renato0307/versioninfo/internal/services"
)

// ServiceFlags selects the repository, the service definition and plugin overrides
type ServiceFlags struct {
	Config    string        `help:"Service definition file (default: serverless.yml, .yaml, .json or .toml in --dir)" type:"path"`
	Dir       string        `help:"Repository and service directory" default:"." type:"existingdir"`
	MaxPasses int           `help:"Maximum expression expansion passes (0 = service file or settings)"`
	NoEval    bool          `help:"Do not evaluate $|expr| segments" name:"no-eval"`
	Package   string        `help:"Package descriptor (default: package.json in --dir)" type:"path"`
	Stage     string        `help:"Provider stage (the STAGE environment variable still wins)"`
	Timeout   time.Duration `help:"Timeout for the repository queries (0 = service file or settings)"`
	Verbose   bool          `help:"Log every variable that is set" short:"v"`
}

// loadService loads the service definition and applies the flag overrides
func (f *ServiceFlags) loadService(container *Container) (*domain.Service, error) {
	service, err := container.ServiceLoader.Load(f.Dir, f.Config)
	if err != nil {
		return nil, err
	}

	if f.Stage != "" {
		service.Provider.Stage = f.Stage
	}
	if f.NoEval {
		service.Plugin.Eval = false
	}
	if f.Verbose {
		service.Plugin.Verbose = true
	}
	if f.MaxPasses > 0 {
		service.Plugin.MaxPasses = f.MaxPasses
	}
	if f.Timeout > 0 {
		service.Plugin.QueryTimeout = f.Timeout
	}

	logging.Logger.Debug("Service ready",
		"service", service.Name,
		"source", service.Source,
		"stage", service.Provider.Stage,
		"eval", service.Plugin.Eval)
	return service, nil
}

// loadPackage reads the package descriptor, warning when it is defaulted
func (f *ServiceFlags) loadPackage(container *Container) (domain.Package, error) {
	path := f.Package
	if path == "" {
		path = filepath.Join(f.Dir, manifest.FileName)
	}
	return services.LoadPackage(container.PackageReader, path, container.Console)
}

// readEnvFile reads a dotenv file; a missing file yields an empty environment
func readEnvFile(path string) (domain.Environment, error) {
	env, err := godotenv.Read(path)
	if errors.Is(err, os.ErrNotExist) {
		return domain.Environment{}, nil
	}
	if err != nil {
		return nil, err
	}
	return domain.Environment(env), nil
}

// writeEnvFile writes env to path in dotenv format
func writeEnvFile(path string, env domain.Environment) error {
	return godotenv.Write(env, path)
}
