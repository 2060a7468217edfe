package commands

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"github.com/fivetwenty-io/ifpa-client/internal/constants"
)

// whereFilter evaluates a --where expression against listed items. Item
// fields are exposed under their JSON names, e.g. `country_code == "US"`.
type whereFilter struct {
	expression string
	program    *vm.Program
}

func compileWhere(expression string) (*whereFilter, error) {
	expression = strings.TrimSpace(expression)
	if expression == "" {
		return nil, nil
	}

	program, err := expr.Compile(expression,
		expr.AllowUndefinedVariables(),
		expr.AsBool(),
	)
	if err != nil {
		return nil, fmt.Errorf("compiling --where expression: %w", err)
	}

	return &whereFilter{expression: expression, program: program}, nil
}

// Match reports whether item satisfies the expression. A nil filter matches
// everything.
func (f *whereFilter) Match(item any) (bool, error) {
	if f == nil {
		return true, nil
	}

	env, err := itemEnv(item)
	if err != nil {
		return false, err
	}

	result, err := expr.Run(f.program, env)
	if err != nil {
		return false, fmt.Errorf("evaluating %q: %w", f.expression, err)
	}

	matched, ok := result.(bool)
	if !ok {
		return false, fmt.Errorf("%w: %q", constants.ErrWhereNotBoolean, f.expression)
	}

	return matched, nil
}

func itemEnv(item any) (map[string]any, error) {
	data, err := json.Marshal(item)
	if err != nil {
		return nil, fmt.Errorf("encoding item: %w", err)
	}

	env := map[string]any{}

	err = json.Unmarshal(data, &env)
	if err != nil {
		return nil, fmt.Errorf("decoding item: %w", err)
	}

	return env, nil
}
