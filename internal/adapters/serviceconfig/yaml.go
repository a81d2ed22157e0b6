package serviceconfig

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/renato0307/versioninfo/internal/domain"
)

type yamlDocument struct {
	Custom   map[string]yaml.Node `yaml:"custom"`
	Provider struct {
		Environment yaml.Node `yaml:"environment"`
		Name        string    `yaml:"name"`
		Stage       string    `yaml:"stage"`
	} `yaml:"provider"`
	Service yaml.Node `yaml:"service"`
}

type yamlPluginSection struct {
	Environment yaml.Node `yaml:"environment"`
	Eval        *bool     `yaml:"eval"`
	MaxPasses   *int      `yaml:"maxPasses"`
	Timeout     string    `yaml:"timeout"`
	Verbose     *bool     `yaml:"verbose"`
}

func decodeYAML(data []byte) (*rawService, error) {
	var doc yamlDocument
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}

	name, err := yamlServiceName(&doc.Service)
	if err != nil {
		return nil, err
	}

	providerEnv, err := yamlMapping(&doc.Provider.Environment, "provider.environment")
	if err != nil {
		return nil, err
	}

	raw := &rawService{
		Name:          name,
		ProviderEnv:   providerEnv,
		ProviderName:  doc.Provider.Name,
		ProviderStage: doc.Provider.Stage,
	}

	node, ok := doc.Custom[domain.PluginName]
	if !ok || isYAMLNull(&node) {
		return raw, nil
	}

	var section yamlPluginSection
	if err := node.Decode(&section); err != nil {
		return nil, fmt.Errorf("custom.%s: %w", domain.PluginName, err)
	}
	env, err := yamlMapping(&section.Environment, "environment")
	if err != nil {
		return nil, fmt.Errorf("custom.%s: %w", domain.PluginName, err)
	}

	raw.Plugin = &domain.RawPluginSection{
		Environment: env,
		Eval:        section.Eval,
		MaxPasses:   section.MaxPasses,
		Timeout:     section.Timeout,
		Verbose:     section.Verbose,
	}
	return raw, nil
}

// yamlServiceName accepts both `service: name` and `service: {name: name}`
func yamlServiceName(node *yaml.Node) (string, error) {
	switch node.Kind {
	case 0:
		return "", nil
	case yaml.ScalarNode:
		return node.Value, nil
	case yaml.MappingNode:
		var svc struct {
			Name string `yaml:"name"`
		}
		if err := node.Decode(&svc); err != nil {
			return "", err
		}
		return svc.Name, nil
	}
	return "", fmt.Errorf("service: unexpected value at line %d", node.Line)
}

// yamlMapping walks a mapping node, keeping the key order of the file
func yamlMapping(node *yaml.Node, field string) ([]domain.RawVariable, error) {
	if node.Kind == 0 || isYAMLNull(node) {
		return nil, nil
	}
	if node.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("%s must be a mapping (line %d)", field, node.Line)
	}

	entries := make([]domain.RawVariable, 0, len(node.Content)/2)
	for i := 0; i+1 < len(node.Content); i += 2 {
		key, valueNode := node.Content[i], node.Content[i+1]
		var value any
		if err := valueNode.Decode(&value); err != nil {
			return nil, fmt.Errorf("%s.%s: %w", field, key.Value, err)
		}
		entries = append(entries, domain.RawVariable{Name: key.Value, Value: value})
	}
	return entries, nil
}

func isYAMLNull(node *yaml.Node) bool {
	return node.Kind == yaml.ScalarNode && node.Tag == "!!null"
}
