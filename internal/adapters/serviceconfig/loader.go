// Package serviceconfig loads the host's service definition. The plugin
// section keeps its environment entries in declaration order for every
// supported format.
package serviceconfig

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/renato0307/versioninfo/internal/domain"
	"github.com/renato0307/versioninfo/internal/logging"
	"github.com/renato0307/versioninfo/internal/ports"
)

// CandidateFiles are looked up in order when no file is given
var CandidateFiles = []string{
	"serverless.yml",
	"serverless.yaml",
	"serverless.json",
	"serverless.toml",
}

// rawService is the format independent shape of a service file
type rawService struct {
	Name          string
	Plugin        *domain.RawPluginSection
	ProviderEnv   []domain.RawVariable
	ProviderName  string
	ProviderStage string
}

type decoder func(data []byte) (*rawService, error)

// Loader implements ports.ServiceLoader
type Loader struct {
	defaults domain.PluginConfig
}

// Verify interface compliance at compile time
var _ ports.ServiceLoader = (*Loader)(nil)

// NewLoader creates a Loader using the built-in plugin defaults
func NewLoader() *Loader {
	return NewLoaderWithDefaults(domain.DefaultPluginConfig())
}

// NewLoaderWithDefaults creates a Loader whose plugin sections are applied
// over defaults
func NewLoaderWithDefaults(defaults domain.PluginConfig) *Loader {
	return &Loader{defaults: defaults.Normalize()}
}

// Load reads the service definition at path, or the first candidate file
// found in dir when path is empty. Without any file a service named after
// dir with the default plugin configuration is returned.
func (l *Loader) Load(dir, path string) (*domain.Service, error) {
	if path == "" {
		found, err := Discover(dir)
		if err != nil {
			return nil, err
		}
		if found == "" {
			logging.Logger.Debug("No service file found, using defaults", "dir", dir)
			service := domain.NewService(serviceNameFromDir(dir))
			service.Plugin = l.defaults
			return service, nil
		}
		path = found
	}

	decode, err := decoderFor(path)
	if err != nil {
		return nil, &domain.ConfigError{Err: err, Path: path}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &domain.ConfigError{Err: err, Path: path}
	}

	raw, err := decode(data)
	if err != nil {
		return nil, &domain.ConfigError{Err: err, Path: path}
	}

	service, err := l.build(raw, dir)
	if err != nil {
		return nil, &domain.ConfigError{Err: err, Path: path}
	}
	service.Source = path

	logging.Logger.Debug("Service loaded",
		"path", path,
		"service", service.Name,
		"variables", len(service.Plugin.Variables))
	return service, nil
}

// Discover returns the first candidate file present in dir, or "" when none is
func Discover(dir string) (string, error) {
	for _, name := range CandidateFiles {
		path := filepath.Join(dir, name)
		info, err := os.Stat(path)
		if err == nil && !info.IsDir() {
			return path, nil
		}
		if err != nil && !errors.Is(err, os.ErrNotExist) {
			return "", fmt.Errorf("failed to check %s: %w", path, err)
		}
	}
	return "", nil
}

func decoderFor(path string) (decoder, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yml", ".yaml":
		return decodeYAML, nil
	case ".json":
		return decodeJSON, nil
	case ".toml":
		return decodeTOML, nil
	}
	return nil, fmt.Errorf("unsupported service file type %q", filepath.Ext(path))
}

func (l *Loader) build(raw *rawService, dir string) (*domain.Service, error) {
	name := raw.Name
	if name == "" {
		name = serviceNameFromDir(dir)
	}
	service := domain.NewService(name)
	service.Provider.Name = raw.ProviderName
	service.Provider.Stage = raw.ProviderStage

	for _, entry := range raw.ProviderEnv {
		value, err := scalarString(entry.Value)
		if err != nil {
			return nil, fmt.Errorf("provider.environment.%s: %w", entry.Name, err)
		}
		service.Provider.Environment[entry.Name] = value
	}

	cfg, err := l.defaults.Apply(raw.Plugin)
	if err != nil {
		return nil, fmt.Errorf("custom.%s: %w", domain.PluginName, err)
	}
	service.Plugin = cfg

	return service, nil
}

// scalarString renders a provider environment value
func scalarString(v any) (string, error) {
	switch val := v.(type) {
	case nil:
		return "", nil
	case string:
		return val, nil
	case bool, int, int64, uint64, float64:
		return fmt.Sprint(val), nil
	}
	return "", fmt.Errorf("value must be a scalar, got %T", v)
}

func serviceNameFromDir(dir string) string {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return filepath.Base(dir)
	}
	return filepath.Base(abs)
}
