package services

import (
	"fmt"
	"regexp"

	"github.com/renato0307/versioninfo/internal/domain"
	"github.com/renato0307/versioninfo/internal/ports"
)

var (
	// tokenPattern matches $name field references
	tokenPattern = regexp.MustCompile(`\$(\w+)`)
	// segmentPattern matches $|expr| and $`expr` expression segments
	segmentPattern = regexp.MustCompile("\\$(?:\\|(.*?)\\||`(.*?)`)")
)

// Substitute replaces every $name token with the field's string form.
// Tokens are replaced left to right in a single pass; names that are not
// statistics fields render as "undefined".
func Substitute(pattern string, stats domain.Stats) string {
	return tokenPattern.ReplaceAllStringFunc(pattern, func(token string) string {
		value, ok := stats.Lookup(token[1:])
		if !ok {
			return domain.UndefinedMarker
		}
		return value
	})
}

// HasExpression reports whether s still contains an expression segment
func HasExpression(s string) bool {
	return segmentPattern.MatchString(s)
}

// expansionError carries the failing segment out of a replace callback
type expansionError struct {
	err        error
	expression string
}

// Expand evaluates expression segments until none remains. Segment results
// may themselves contain segments, which are evaluated in the next pass.
func Expand(s string, vars map[string]any, evaluator ports.ExpressionEvaluator, maxPasses int) (string, error) {
	current := s
	for pass := 1; HasExpression(current); pass++ {
		if pass > maxPasses {
			return "", &expansionError{
				err: fmt.Errorf("%w: still unexpanded after %d passes", domain.ErrNonTerminating, maxPasses),
			}
		}

		var failure *expansionError
		next := segmentPattern.ReplaceAllStringFunc(current, func(segment string) string {
			if failure != nil {
				return segment
			}
			groups := segmentPattern.FindStringSubmatch(segment)
			expression := groups[1]
			if segment[1] == '`' {
				expression = groups[2]
			}
			value, err := evaluator.Evaluate(expression, vars)
			if err != nil {
				failure = &expansionError{err: err, expression: expression}
				return segment
			}
			return value
		})
		if failure != nil {
			return "", failure
		}

		if next == current {
			return "", &expansionError{
				err: fmt.Errorf("%w: pass %d left %q unchanged", domain.ErrNonTerminating, pass, current),
			}
		}
		current = next
	}
	return current, nil
}

func (e *expansionError) Error() string { return e.err.Error() }

func (e *expansionError) Unwrap() error { return e.err }
