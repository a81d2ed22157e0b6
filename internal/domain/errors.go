package domain

import (
	"errors"
	"fmt"
)

var (
	ErrNonTerminating   = errors.New("expression expansion does not terminate")
	ErrNotARepository   = errors.New("not a git repository")
	ErrPackageNotFound  = errors.New("package descriptor not found")
	ErrVersionUndefined = errors.New("version not defined in package descriptor")
)

// VcsQueryError reports a failed repository query
type VcsQueryError struct {
	Err    error  `json:"-"`
	Query  string `json:"query"`
	Stderr string `json:"stderr,omitempty"`
}

func (e *VcsQueryError) Error() string {
	if e.Stderr != "" {
		return fmt.Sprintf("git %s: %v: %s", e.Query, e.Err, e.Stderr)
	}
	return fmt.Sprintf("git %s: %v", e.Query, e.Err)
}

func (e *VcsQueryError) Unwrap() error { return e.Err }

// TemplateExpansionError reports a variable whose expressions could not be expanded
type TemplateExpansionError struct {
	Err        error  `json:"-"`
	Expression string `json:"expression,omitempty"`
	Reason     string `json:"reason"`
	Variable   string `json:"variable"`
}

func (e *TemplateExpansionError) Error() string {
	if e.Expression != "" {
		return fmt.Sprintf("variable %s: %s in %q", e.Variable, e.Reason, e.Expression)
	}
	return fmt.Sprintf("variable %s: %s", e.Variable, e.Reason)
}

func (e *TemplateExpansionError) Unwrap() error { return e.Err }

// ConfigurationDefaultError is non-fatal: the value was replaced by its default
type ConfigurationDefaultError struct {
	Default string `json:"default"`
	Err     error  `json:"-"`
	Path    string `json:"path"`
}

func (e *ConfigurationDefaultError) Error() string {
	return fmt.Sprintf("%s: %v, using %s", e.Path, e.Err, e.Default)
}

func (e *ConfigurationDefaultError) Unwrap() error { return e.Err }

// ConfigError reports an invalid service definition or plugin section
type ConfigError struct {
	Err  error  `json:"-"`
	Path string `json:"path"`
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("invalid configuration %s: %v", e.Path, e.Err)
}

func (e *ConfigError) Unwrap() error { return e.Err }

// ErrorDetail returns a serializable view of err for error reports.
// Joined errors are expanded into a list.
func ErrorDetail(err error) any {
	if err == nil {
		return nil
	}
	if joined, ok := err.(interface{ Unwrap() []error }); ok {
		details := make([]any, 0, len(joined.Unwrap()))
		for _, e := range joined.Unwrap() {
			details = append(details, ErrorDetail(e))
		}
		return details
	}

	detail := map[string]any{"message": err.Error()}

	var vcsErr *VcsQueryError
	var tplErr *TemplateExpansionError
	var defErr *ConfigurationDefaultError
	var cfgErr *ConfigError
	switch {
	case errors.As(err, &vcsErr):
		detail["type"] = "VcsQueryError"
		detail["query"] = vcsErr.Query
		if vcsErr.Stderr != "" {
			detail["stderr"] = vcsErr.Stderr
		}
	case errors.As(err, &tplErr):
		detail["type"] = "TemplateExpansionError"
		detail["variable"] = tplErr.Variable
		detail["reason"] = tplErr.Reason
		if tplErr.Expression != "" {
			detail["expression"] = tplErr.Expression
		}
	case errors.As(err, &defErr):
		detail["type"] = "ConfigurationDefaultError"
		detail["path"] = defErr.Path
		detail["default"] = defErr.Default
	case errors.As(err, &cfgErr):
		detail["type"] = "ConfigError"
		detail["path"] = cfgErr.Path
	}
	return detail
}
