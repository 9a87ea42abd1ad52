// Package filter selects cache entries with CEL predicates. Each entry is
// bound to the variable "e" as a map with the fields name, type, value,
// description, advanced, allowed and modified.
package filter

import (
	"fmt"

	"github.com/google/cel-go/cel"
	"github.com/google/cel-go/common/types"
	celext "github.com/google/cel-go/ext"

	"github.com/oakwood-commons/ccx/internal/cache"
)

// Variable is the name entries are bound to in expressions.
const Variable = "e"

// Filter is a compiled predicate.
type Filter struct {
	expr string
	prg  cel.Program
}

func newEnv() (*cel.Env, error) {
	return cel.NewEnv(
		cel.Variable(Variable, cel.MapType(cel.StringType, cel.DynType)),
		celext.Strings(),
		celext.Lists(),
	)
}

// New compiles expr. The expression must produce a bool.
func New(expr string) (*Filter, error) {
	env, err := newEnv()
	if err != nil {
		return nil, fmt.Errorf("failed to create CEL environment: %w", err)
	}
	ast, issues := env.Compile(expr)
	if issues != nil && issues.Err() != nil {
		return nil, fmt.Errorf("compile filter %q: %w", expr, issues.Err())
	}
	if out := ast.OutputType(); !out.IsExactType(types.BoolType) && !out.IsExactType(types.DynType) {
		return nil, fmt.Errorf("filter %q must evaluate to bool, not %s", expr, out)
	}
	prg, err := env.Program(ast)
	if err != nil {
		return nil, fmt.Errorf("program error: %w", err)
	}
	return &Filter{expr: expr, prg: prg}, nil
}

// String returns the source expression.
func (f *Filter) String() string { return f.expr }

// Record is the CEL view of an entry.
func Record(e *cache.Entry) map[string]any {
	allowed := make([]string, len(e.Allowed))
	copy(allowed, e.Allowed)
	return map[string]any{
		"name":        e.Name,
		"type":        e.Type.String(),
		"value":       e.Value,
		"description": e.Description,
		"advanced":    e.Advanced,
		"allowed":     allowed,
		"modified":    e.Modified(),
	}
}

// Match evaluates the predicate against e.
func (f *Filter) Match(e *cache.Entry) (bool, error) {
	out, _, err := f.prg.Eval(map[string]any{Variable: Record(e)})
	if err != nil {
		return false, fmt.Errorf("eval filter on %s: %w", e.Name, err)
	}
	b, ok := out.(types.Bool)
	if !ok {
		return false, fmt.Errorf("filter %q returned %s for %s, want bool", f.expr, out.Type().TypeName(), e.Name)
	}
	return bool(b), nil
}

// Apply keeps the entries f matches, preserving order. A nil filter keeps
// everything.
func (f *Filter) Apply(entries []*cache.Entry) ([]*cache.Entry, error) {
	if f == nil {
		return entries, nil
	}
	out := make([]*cache.Entry, 0, len(entries))
	for _, e := range entries {
		ok, err := f.Match(e)
		if err != nil {
			return nil, err
		}
		if ok {
			out = append(out, e)
		}
	}
	return out, nil
}
