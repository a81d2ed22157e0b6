package domain

import "sort"

// Environment maps variable names to their values
type Environment map[string]string

// Merge copies every entry of other into e, overwriting existing keys.
// Keys of e that other does not mention are left untouched.
func (e Environment) Merge(other Environment) {
	for k, v := range other {
		e[k] = v
	}
}

// Keys returns the variable names in sorted order
func (e Environment) Keys() []string {
	keys := make([]string, 0, len(e))
	for k := range e {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Provider is the provider block of a service definition
type Provider struct {
	Environment Environment
	Name        string
	Stage       string
}

// Service is the host's service definition as seen by the plugin
type Service struct {
	Name     string
	Plugin   PluginConfig
	Provider Provider
	Source   string // File the service was loaded from, empty when synthesized
}

// NewService returns a service with an empty environment and default plugin config
func NewService(name string) *Service {
	return &Service{
		Name:     name,
		Plugin:   DefaultPluginConfig().Normalize(),
		Provider: Provider{Environment: Environment{}},
	}
}

// EnsureEnvironment returns the provider environment, creating it when nil
func (s *Service) EnsureEnvironment() Environment {
	if s.Provider.Environment == nil {
		s.Provider.Environment = Environment{}
	}
	return s.Provider.Environment
}
