// Package expression evaluates template expressions with a closed grammar: literals,
// arithmetic, string concatenation, comparisons, the ternary operator and the
// builtin functions of github.com/expr-lang/expr (upper, lower, replace, trim,
// split, now, date, ...). Statistics fields are available as variables and
// env(name) reads the process environment. Nothing can write or execute.
package expression

import (
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/expr-lang/expr"

	"github.com/renato0307/versioninfo/internal/domain"
	"github.com/renato0307/versioninfo/internal/ports"
)

// Evaluator implements ports.ExpressionEvaluator
type Evaluator struct {
	getenv func(string) string
}

// Verify interface compliance at compile time
var _ ports.ExpressionEvaluator = (*Evaluator)(nil)

// NewEvaluator creates an Evaluator reading env() from the process environment
func NewEvaluator() *Evaluator {
	return &Evaluator{getenv: os.Getenv}
}

// NewEvaluatorWithEnv creates an Evaluator with a custom env() lookup
func NewEvaluatorWithEnv(getenv func(string) string) *Evaluator {
	return &Evaluator{getenv: getenv}
}

// Evaluate compiles and runs expression against vars and returns its string form
func (e *Evaluator) Evaluate(expression string, vars map[string]any) (string, error) {
	env := make(map[string]any, len(vars))
	for k, v := range vars {
		env[k] = v
	}
	// Unknown tokens are substituted as the marker before evaluation
	if _, ok := env[domain.UndefinedMarker]; !ok {
		env[domain.UndefinedMarker] = nil
	}

	program, err := expr.Compile(expression,
		expr.Env(env),
		expr.Function("env", func(params ...any) (any, error) {
			return e.getenv(params[0].(string)), nil
		}, new(func(string) string)),
	)
	if err != nil {
		return "", fmt.Errorf("compile: %w", err)
	}

	out, err := expr.Run(program, env)
	if err != nil {
		return "", fmt.Errorf("run: %w", err)
	}

	return Stringify(out), nil
}

// Stringify renders a value the way it is spliced into a template
func Stringify(v any) string {
	switch val := v.(type) {
	case nil:
		return domain.UndefinedMarker
	case string:
		return val
	case bool:
		return strconv.FormatBool(val)
	case int:
		return strconv.Itoa(val)
	case int64:
		return strconv.FormatInt(val, 10)
	case float64:
		return formatFloat(val)
	case float32:
		return formatFloat(float64(val))
	case time.Time:
		return val.Format(time.RFC3339)
	case time.Duration:
		return val.String()
	case []any:
		parts := make([]string, len(val))
		for i, item := range val {
			parts[i] = Stringify(item)
		}
		return strings.Join(parts, ",")
	case []string:
		return strings.Join(val, ",")
	default:
		return fmt.Sprint(val)
	}
}

// formatFloat prints integral floats without a fraction, like 4 for 8/2
func formatFloat(f float64) string {
	switch {
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, 1):
		return "Infinity"
	case math.IsInf(f, -1):
		return "-Infinity"
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}
