package services

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/renato0307/versioninfo/internal/adapters/expression"
	"github.com/renato0307/versioninfo/internal/domain"
	portsmocks "github.com/renato0307/versioninfo/internal/ports/mocks"
)

// sampleStats is the record used across rendering tests
func sampleStats() domain.Stats {
	return domain.Stats{
		Branch:     "main",
		Hash:       "abc123",
		Major:      "1",
		Minor:      "2",
		Patch:      "7",
		PkgVersion: "1.2.0",
		Stage:      "dev",
		TS:         1700000000000,
		Timestamp:  1700000000000,
		Version:    "1.2.7",
	}
}

func TestSubstitute(t *testing.T) {
	tests := []struct {
		name     string
		pattern  string
		expected string
	}{
		{"default pattern", domain.DefaultPattern, "1.2.0-7 (main/abc123+0)"},
		{"no tokens", "static", "static"},
		{"unknown field", "$nope-$patch", "undefined-7"},
		{"underscore is part of the name", "$patch_x", "undefined"},
		{"adjacent dollar", "$$patch", "$7"},
		{"numeric fields", "$ahead/$behind/$delta/$ts", "0/0/0/1700000000000"},
		{"expression segments untouched", "$|1+1|", "$|1+1|"},
		{"single pass", "$stage", "dev"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Substitute(tt.pattern, sampleStats()))
		})
	}
}

func TestSubstitute_ValuesAreNotRescanned(t *testing.T) {
	stats := sampleStats()
	stats.Branch = "$hash"

	assert.Equal(t, "$hash", Substitute("$branch", stats))
}

func TestExpand(t *testing.T) {
	evaluator := expression.NewEvaluator()
	vars := sampleStats().Vars()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"pipe segment", "v$|1+1|", "v2"},
		{"backtick segment", "v$`2*3`", "v6"},
		{"several segments", "$|1+1|.$|2+2|", "2.4"},
		{"stats variables", `$|upper(branch)|`, "MAIN"},
		{"chained", "$`\"$|1+1|\"`", "2"},
		{"no segments", "1.2.0-7", "1.2.0-7"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Expand(tt.input, vars, evaluator, domain.DefaultMaxPasses)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestExpand_IdenticalPass(t *testing.T) {
	evaluator := portsmocks.NewMockExpressionEvaluator(t)
	evaluator.EXPECT().Evaluate("loop", mock.Anything).Return("$|loop|", nil)

	_, err := Expand("$|loop|", nil, evaluator, domain.DefaultMaxPasses)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrNonTerminating)
}

func TestExpand_MaxPasses(t *testing.T) {
	evaluator := portsmocks.NewMockExpressionEvaluator(t)
	evaluator.EXPECT().Evaluate("grow", mock.Anything).Return("$|grow|.", nil).Times(3)

	_, err := Expand("$|grow|", nil, evaluator, 3)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrNonTerminating)
	assert.ErrorContains(t, err, "after 3 passes")
}

func TestExpand_EvaluationError(t *testing.T) {
	_, err := Expand("ok $|1 +|", nil, expression.NewEvaluator(), domain.DefaultMaxPasses)

	require.Error(t, err)
	var expErr *expansionError
	require.ErrorAs(t, err, &expErr)
	assert.Equal(t, "1 +", expErr.expression)
}

func TestExpand_Idempotent(t *testing.T) {
	evaluator := expression.NewEvaluator()
	vars := sampleStats().Vars()

	first, err := Expand("$pkg-$|1+1|", vars, evaluator, domain.DefaultMaxPasses)
	require.NoError(t, err)
	second, err := Expand(first, vars, evaluator, domain.DefaultMaxPasses)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.False(t, strings.Contains(second, "$|"))
}
