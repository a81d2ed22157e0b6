package ports

// ExpressionEvaluator evaluates template expressions to their string form
type ExpressionEvaluator interface {
	Evaluate(expression string, vars map[string]any) (string, error)
}
