package services

import (
	"errors"
	"fmt"

	"github.com/renato0307/versioninfo/internal/domain"
	"github.com/renato0307/versioninfo/internal/logging"
	"github.com/renato0307/versioninfo/internal/ports"
)

// Renderer turns configured patterns into environment values
type Renderer struct {
	evaluator ports.ExpressionEvaluator
	logger    ports.Logger
}

// NewRenderer creates a new Renderer
func NewRenderer(evaluator ports.ExpressionEvaluator, logger ports.Logger) *Renderer {
	return &Renderer{
		evaluator: evaluator,
		logger:    logger,
	}
}

// Render renders every configured variable in declaration order.
// A variable that fails to expand is left out of the result; the other
// variables are still rendered and all failures are returned joined.
func (r *Renderer) Render(stats domain.Stats, cfg domain.PluginConfig) (domain.Environment, error) {
	cfg = cfg.Normalize()
	env := make(domain.Environment, len(cfg.Variables))
	vars := stats.Vars()

	var errs []error
	for _, variable := range cfg.Variables {
		value, err := r.RenderVariable(variable, stats, vars, cfg)
		if err != nil {
			logging.Logger.Warn("Variable not rendered", "variable", variable.Name, "error", err)
			errs = append(errs, err)
			continue
		}

		env[variable.Name] = value
		logging.Logger.Debug("Variable rendered", "variable", variable.Name, "value", value)
		if cfg.Verbose {
			r.logger.Log(fmt.Sprintf(`%s set %s to "%s"`, domain.PluginName, variable.Name, value))
		}
	}

	return env, errors.Join(errs...)
}

// RenderVariable renders a single variable against stats
func (r *Renderer) RenderVariable(
	variable domain.VariableSpec,
	stats domain.Stats,
	vars map[string]any,
	cfg domain.PluginConfig,
) (string, error) {
	value := Substitute(variable.EffectivePattern(), stats)
	if !cfg.Eval {
		return value, nil
	}

	expanded, err := Expand(value, vars, r.evaluator, cfg.MaxPasses)
	if err != nil {
		tplErr := &domain.TemplateExpansionError{
			Err:      err,
			Reason:   err.Error(),
			Variable: variable.Name,
		}
		var expErr *expansionError
		if errors.As(err, &expErr) {
			tplErr.Expression = expErr.expression
			tplErr.Err = expErr.err
			tplErr.Reason = expErr.err.Error()
		}
		return "", tplErr
	}
	return expanded, nil
}
