package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/renato0307/versioninfo/internal/domain"
)

// EnvPrefix is the prefix of environment variables overriding settings
const EnvPrefix = "VERSIONINFO_"

// Output formats
const (
	FormatDotenv = "dotenv"
	FormatJSON   = "json"
	FormatTable  = "table"
	FormatYAML   = "yaml"
)

// Settings keys
const (
	KeyDebug        = "debug"
	KeyDebugFile    = "debug_file"
	KeyFormat       = "format"
	KeyMaxLogFiles  = "max_log_files"
	KeyMaxPasses    = "max_passes"
	KeyQueryTimeout = "query_timeout"
)

// DefaultMaxLogFiles is the number of debug log files kept by default
const DefaultMaxLogFiles = 1000

// Settings represents the merged tool settings: built-in defaults, then
// $VERSIONINFO_HOME/settings.yaml, then VERSIONINFO_* environment variables
type Settings struct {
	Debug        bool          `koanf:"debug" json:"debug" yaml:"debug"`
	DebugFile    string        `koanf:"debug_file" json:"debug_file" yaml:"debug_file"`
	Format       string        `koanf:"format" json:"format" yaml:"format"`
	MaxLogFiles  int           `koanf:"max_log_files" json:"max_log_files" yaml:"max_log_files"`
	MaxPasses    int           `koanf:"max_passes" json:"max_passes" yaml:"max_passes"`
	QueryTimeout time.Duration `koanf:"query_timeout" json:"query_timeout" yaml:"query_timeout"`

	// Keys set by the settings file or the environment
	overrides *koanf.Koanf
}

// Defaults returns the built-in settings values
func Defaults() map[string]any {
	return map[string]any{
		KeyDebug:        false,
		KeyDebugFile:    "",
		KeyFormat:       FormatDotenv,
		KeyMaxLogFiles:  DefaultMaxLogFiles,
		KeyMaxPasses:    domain.DefaultMaxPasses,
		KeyQueryTimeout: domain.DefaultQueryTimeout.String(),
	}
}

// DefaultSettings returns the built-in settings, ignoring file and environment
func DefaultSettings() *Settings {
	return &Settings{
		Format:       FormatDotenv,
		MaxLogFiles:  DefaultMaxLogFiles,
		MaxPasses:    domain.DefaultMaxPasses,
		QueryTimeout: domain.DefaultQueryTimeout,
	}
}

// LoadSettings loads settings from $VERSIONINFO_HOME/settings.yaml and the environment.
// A missing settings file is not an error.
func LoadSettings() (*Settings, error) {
	return LoadSettingsFrom(GetSettingsPath())
}

// LoadSettingsFrom loads settings using the given settings file path
func LoadSettingsFrom(path string) (*Settings, error) {
	overrides := koanf.New(".")

	if _, err := os.Stat(path); err == nil {
		if err := overrides.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("invalid settings file %s: %w", path, err)
		}
	} else if !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("failed to read settings file: %w", err)
	}

	err := overrides.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	}), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to load environment settings: %w", err)
	}

	k := koanf.New(".")
	if err := k.Load(confmap.Provider(Defaults(), "."), nil); err != nil {
		return nil, fmt.Errorf("failed to load default settings: %w", err)
	}
	if err := k.Merge(overrides); err != nil {
		return nil, fmt.Errorf("failed to merge settings: %w", err)
	}

	var settings Settings
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &settings,
			WeaklyTypedInput: true,
			DecodeHook:       mapstructure.StringToTimeDurationHookFunc(),
		},
	}
	if err := k.UnmarshalWithConf("", &settings, unmarshalConf); err != nil {
		return nil, fmt.Errorf("invalid settings: %w", err)
	}

	settings.DebugFile = ExpandPath(settings.DebugFile)
	settings.overrides = overrides

	if err := settings.Validate(); err != nil {
		return nil, err
	}
	return &settings, nil
}

// Validate checks value ranges and the output format
func (s *Settings) Validate() error {
	if s.MaxLogFiles < 0 {
		return fmt.Errorf("max_log_files must not be negative, got %d", s.MaxLogFiles)
	}
	if s.MaxPasses < 1 {
		return fmt.Errorf("max_passes must be at least 1, got %d", s.MaxPasses)
	}
	if s.QueryTimeout <= 0 {
		return fmt.Errorf("query_timeout must be positive, got %s", s.QueryTimeout)
	}
	switch s.Format {
	case FormatDotenv, FormatJSON, FormatYAML:
	default:
		return fmt.Errorf("unknown format %q (expected dotenv, json or yaml)", s.Format)
	}
	return nil
}

// IsSet reports whether key was set by the settings file or the environment
func (s *Settings) IsSet(key string) bool {
	return s.overrides != nil && s.overrides.Exists(key)
}

// PluginDefaults returns the plugin configuration service files are applied over
func (s *Settings) PluginDefaults() domain.PluginConfig {
	cfg := domain.DefaultPluginConfig()
	cfg.MaxPasses = s.MaxPasses
	cfg.QueryTimeout = s.QueryTimeout
	return cfg.Normalize()
}
