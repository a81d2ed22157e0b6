package serviceconfig

import (
	"fmt"

	"github.com/BurntSushi/toml"

	"github.com/renato0307/versioninfo/internal/domain"
)

type tomlDocument struct {
	Custom   map[string]toml.Primitive `toml:"custom"`
	Provider struct {
		Environment map[string]any `toml:"environment"`
		Name        string         `toml:"name"`
		Stage       string         `toml:"stage"`
	} `toml:"provider"`
	Service string `toml:"service"`
}

type tomlPluginSection struct {
	Environment map[string]any `toml:"environment"`
	Eval        *bool          `toml:"eval"`
	MaxPasses   *int           `toml:"maxPasses"`
	Timeout     string         `toml:"timeout"`
	Verbose     *bool          `toml:"verbose"`
}

func decodeTOML(data []byte) (*rawService, error) {
	var doc tomlDocument
	md, err := toml.Decode(string(data), &doc)
	if err != nil {
		return nil, err
	}

	raw := &rawService{
		Name:          doc.Service,
		ProviderEnv:   tomlOrdered(md, doc.Provider.Environment, "provider", "environment"),
		ProviderName:  doc.Provider.Name,
		ProviderStage: doc.Provider.Stage,
	}

	prim, ok := doc.Custom[domain.PluginName]
	if !ok {
		return raw, nil
	}

	var section tomlPluginSection
	if err := md.PrimitiveDecode(prim, &section); err != nil {
		return nil, fmt.Errorf("custom.%s: %w", domain.PluginName, err)
	}

	raw.Plugin = &domain.RawPluginSection{
		Environment: tomlOrdered(md, section.Environment, "custom", domain.PluginName, "environment"),
		Eval:        section.Eval,
		MaxPasses:   section.MaxPasses,
		Timeout:     section.Timeout,
		Verbose:     section.Verbose,
	}
	return raw, nil
}

// tomlOrdered returns the entries of values in the order their keys appear
// in the file. MetaData.Keys reports keys in declaration order.
func tomlOrdered(md toml.MetaData, values map[string]any, table ...string) []domain.RawVariable {
	if len(values) == 0 {
		return nil
	}

	entries := make([]domain.RawVariable, 0, len(values))
	seen := make(map[string]bool, len(values))
	for _, key := range md.Keys() {
		if len(key) != len(table)+1 || !hasPrefix(key, table) {
			continue
		}
		name := key[len(table)]
		value, ok := values[name]
		if !ok || seen[name] {
			continue
		}
		seen[name] = true
		entries = append(entries, domain.RawVariable{Name: name, Value: value})
	}
	return entries
}

func hasPrefix(key toml.Key, prefix []string) bool {
	for i, part := range prefix {
		if key[i] != part {
			return false
		}
	}
	return true
}
