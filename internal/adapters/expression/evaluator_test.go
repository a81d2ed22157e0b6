package expression

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEvaluate(t *testing.T) {
	vars := map[string]any{
		"branch": "feature/login",
		"delta":  3,
		"patch":  "42",
	}
	evaluator := NewEvaluatorWithEnv(func(name string) string {
		if name == "BUILD_ID" {
			return "b-9"
		}
		return ""
	})

	tests := []struct {
		name       string
		expression string
		expected   string
	}{
		{"integer arithmetic", "1+1", "2"},
		{"integral division", "8/2", "4"},
		{"fractional division", "1/2", "0.5"},
		{"string concatenation", `"v" + "1"`, "v1"},
		{"variable access", `branch + "@" + patch`, "feature/login@42"},
		{"ternary", `delta > 0 ? "dirty" : "clean"`, "dirty"},
		{"builtin upper", `upper("main")`, "MAIN"},
		{"builtin replace", `replace(branch, "/", "-")`, "feature-login"},
		{"env lookup", `env("BUILD_ID")`, "b-9"},
		{"missing env", `env("NOPE")`, ""},
		{"boolean", "delta == 3", "true"},
		{"nil", "nil", "undefined"},
		{"undefined marker", "undefined", "undefined"},
		{"undefined marker is nil", "undefined == nil", "true"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := evaluator.Evaluate(tt.expression, vars)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestEvaluate_Errors(t *testing.T) {
	evaluator := NewEvaluator()

	tests := []struct {
		name       string
		expression string
	}{
		{"syntax error", "1 +"},
		{"unknown variable", "nope + 1"},
		{"type mismatch", `"a" - 1`},
		{"no side effects", `os.Exit(1)`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := evaluator.Evaluate(tt.expression, map[string]any{})
			assert.Error(t, err)
		})
	}
}

func TestEvaluate_DoesNotMutateVars(t *testing.T) {
	vars := map[string]any{"patch": "1"}

	_, err := NewEvaluator().Evaluate(`patch + "0"`, vars)

	require.NoError(t, err)
	assert.Equal(t, map[string]any{"patch": "1"}, vars)
}

func TestStringify(t *testing.T) {
	ts := time.Date(2024, 5, 6, 7, 8, 9, 0, time.UTC)

	assert.Equal(t, "undefined", Stringify(nil))
	assert.Equal(t, "2", Stringify(2))
	assert.Equal(t, "2", Stringify(int64(2)))
	assert.Equal(t, "2.5", Stringify(2.5))
	assert.Equal(t, "Infinity", Stringify(1/zero()))
	assert.Equal(t, "false", Stringify(false))
	assert.Equal(t, "2024-05-06T07:08:09Z", Stringify(ts))
	assert.Equal(t, "1,b,true", Stringify([]any{1, "b", true}))
	assert.Equal(t, "a,b", Stringify([]string{"a", "b"}))
}

func zero() float64 { return 0 }
