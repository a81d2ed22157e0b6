package domain

import (
	"fmt"
	"slices"
	"time"
)

const (
	// PluginName is the key of the plugin section under the service's custom config
	PluginName = "serverless-version-info"

	// DefaultVariable is synthesized when no variable is configured
	DefaultVariable = "LAMBDA_VERSION"
	// DefaultPattern is used for variables configured as true or left empty
	DefaultPattern = "$pkgVersion-$patch ($branch/$hash+$delta)"

	// UndefinedMarker is what a token naming an unknown field renders as
	UndefinedMarker = "undefined"

	// DefaultMaxPasses bounds the expression fixed-point loop
	DefaultMaxPasses = 16
	// DefaultQueryTimeout bounds all repository queries of one collection
	DefaultQueryTimeout = 5 * time.Second
)

// VariableSpec is one configured output variable
type VariableSpec struct {
	Name       string
	Pattern    string
	UseDefault bool
}

// EffectivePattern returns the pattern the variable is rendered with
func (v VariableSpec) EffectivePattern() string {
	if v.UseDefault {
		return DefaultPattern
	}
	return v.Pattern
}

// PluginConfig is the validated plugin section of the service definition
type PluginConfig struct {
	Eval         bool
	MaxPasses    int
	QueryTimeout time.Duration
	Variables    []VariableSpec
	Verbose      bool
}

// DefaultPluginConfig returns the configuration used when the section is absent
func DefaultPluginConfig() PluginConfig {
	return PluginConfig{
		Eval:         true,
		MaxPasses:    DefaultMaxPasses,
		QueryTimeout: DefaultQueryTimeout,
	}
}

// RawPluginSection is the plugin section as decoded from a service file,
// before validation. Nil pointers mean "not set".
type RawPluginSection struct {
	Environment []RawVariable
	Eval        *bool
	MaxPasses   *int
	Timeout     string
	Verbose     *bool
}

// RawVariable is an environment entry in declaration order
type RawVariable struct {
	Name  string
	Value any
}

// ParseVariable validates a configured environment entry.
// true, false, null and the empty string select the default pattern.
func ParseVariable(name string, value any) (VariableSpec, error) {
	if name == "" {
		return VariableSpec{}, fmt.Errorf("environment entry with empty name")
	}
	switch v := value.(type) {
	case nil:
		return VariableSpec{Name: name, UseDefault: true}, nil
	case bool:
		return VariableSpec{Name: name, UseDefault: true}, nil
	case string:
		if v == "" {
			return VariableSpec{Name: name, UseDefault: true}, nil
		}
		return VariableSpec{Name: name, Pattern: v}, nil
	default:
		return VariableSpec{}, fmt.Errorf("environment entry %q: pattern must be a string or boolean, got %T", name, value)
	}
}

// NewPluginConfig validates a raw section and applies the documented defaults
func NewPluginConfig(raw *RawPluginSection) (PluginConfig, error) {
	return DefaultPluginConfig().Apply(raw)
}

// Apply validates a raw section and overlays it on c. Variables configured
// in the section replace those of c.
func (c PluginConfig) Apply(raw *RawPluginSection) (PluginConfig, error) {
	cfg := c
	cfg.Variables = slices.Clone(c.Variables)
	if raw == nil {
		return cfg.Normalize(), nil
	}
	if len(raw.Environment) > 0 {
		cfg.Variables = nil
	}

	seen := make(map[string]int, len(raw.Environment))
	for _, entry := range raw.Environment {
		spec, err := ParseVariable(entry.Name, entry.Value)
		if err != nil {
			return PluginConfig{}, err
		}
		// A repeated key keeps its first position and its last value
		if i, ok := seen[spec.Name]; ok {
			cfg.Variables[i] = spec
			continue
		}
		seen[spec.Name] = len(cfg.Variables)
		cfg.Variables = append(cfg.Variables, spec)
	}

	if raw.Eval != nil {
		cfg.Eval = *raw.Eval
	}
	if raw.Verbose != nil {
		cfg.Verbose = *raw.Verbose
	}
	if raw.MaxPasses != nil {
		if *raw.MaxPasses < 1 {
			return PluginConfig{}, fmt.Errorf("maxPasses must be at least 1, got %d", *raw.MaxPasses)
		}
		cfg.MaxPasses = *raw.MaxPasses
	}
	if raw.Timeout != "" {
		d, err := time.ParseDuration(raw.Timeout)
		if err != nil {
			return PluginConfig{}, fmt.Errorf("invalid timeout %q: %w", raw.Timeout, err)
		}
		if d <= 0 {
			return PluginConfig{}, fmt.Errorf("timeout must be positive, got %s", d)
		}
		cfg.QueryTimeout = d
	}

	return cfg.Normalize(), nil
}

// Normalize synthesizes the default variable when none is configured and
// fills zero limits with their defaults
func (c PluginConfig) Normalize() PluginConfig {
	if len(c.Variables) == 0 {
		c.Variables = []VariableSpec{{Name: DefaultVariable, UseDefault: true}}
	}
	if c.MaxPasses <= 0 {
		c.MaxPasses = DefaultMaxPasses
	}
	if c.QueryTimeout <= 0 {
		c.QueryTimeout = DefaultQueryTimeout
	}
	return c
}
