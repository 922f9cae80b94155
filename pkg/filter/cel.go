package filter

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/cel-go/cel"

	"github.com/goliatone/go-reportgen/pkg/model"
)

// Compile builds a row predicate from a CEL expression. The expression sees
// four variables: name (string), completion (the formatted percentage
// string), completionValue (the raw fraction as a double), and attrs (the
// auxiliary node fields as a map). Typical filters look like
// "completionValue < 0.1" or "name.startsWith('App')".
func Compile(expr string) (Predicate, error) {
	trimmed := strings.TrimSpace(expr)
	if trimmed == "" {
		return nil, errors.New("filter: expression is empty")
	}

	env, err := cel.NewEnv(
		cel.Variable("name", cel.StringType),
		cel.Variable("completion", cel.StringType),
		cel.Variable("completionValue", cel.DoubleType),
		cel.Variable("attrs", cel.MapType(cel.StringType, cel.DynType)),
	)
	if err != nil {
		return nil, fmt.Errorf("filter: create environment: %w", err)
	}

	ast, issues := env.Compile(trimmed)
	if issues != nil && issues.Err() != nil {
		return nil, fmt.Errorf("filter: compile %q: %w", trimmed, issues.Err())
	}
	if ast.OutputType() != cel.BoolType {
		return nil, fmt.Errorf("filter: expression %q does not evaluate to a boolean", trimmed)
	}

	program, err := env.Program(ast)
	if err != nil {
		return nil, fmt.Errorf("filter: build program for %q: %w", trimmed, err)
	}

	return &celPredicate{expr: trimmed, program: program}, nil
}

// MustCompile panics on compile failure. Useful for static view wiring.
func MustCompile(expr string) Predicate {
	predicate, err := Compile(expr)
	if err != nil {
		panic(err)
	}
	return predicate
}

type celPredicate struct {
	expr    string
	program cel.Program
}

func (p *celPredicate) Keep(row model.Row) (bool, error) {
	attrs := row.Attrs
	if attrs == nil {
		attrs = map[string]any{}
	}

	result, _, err := p.program.Eval(map[string]any{
		"name":            row.Name,
		"completion":      row.Completion,
		"completionValue": row.CompletionValue,
		"attrs":           attrs,
	})
	if err != nil {
		return false, fmt.Errorf("filter: evaluate %q for row %q: %w", p.expr, row.Name, err)
	}

	keep, ok := result.Value().(bool)
	if !ok {
		return false, fmt.Errorf("filter: expression %q returned %T, want bool", p.expr, result.Value())
	}
	return keep, nil
}
