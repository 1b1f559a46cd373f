// Package btexpr builds behavior-tree condition leaves from expr-lang
// expressions. Expressions are evaluated against a snapshot of the
// blackboard, so blackboard keys appear as plain identifiers:
//
//	cond, err := btexpr.Condition(`health > 20 && target != nil`)
//
// Compiled programs are kept in a bounded package-level LRU cache keyed by
// source, so building the same condition repeatedly is cheap.
package btexpr

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"github.com/fennwick/bt"
)

// debugExpr controls verbose condition evaluation output.
// Set BT_DEBUG_EXPR=1 to enable.
var debugExpr = os.Getenv("BT_DEBUG_EXPR") == "1"

// Condition compiles source as a boolean expr-lang expression and returns
// a leaf evaluating it on every tick. The leaf reports Success when the
// expression is true and Failure when it is false or when evaluation
// errors at runtime; conditions never report Running.
//
// Unknown identifiers evaluate as nil rather than erroring, so a condition
// over a key that has not been written yet is simply false.
func Condition(source string) (*bt.Leaf, error) {
	program, err := compile(source)
	if err != nil {
		return nil, fmt.Errorf("btexpr: compile %q: %w", source, err)
	}
	return bt.NewLeaf(func(bb *bt.Blackboard) bt.Status {
		env := bb.Snapshot()
		if env == nil {
			env = map[string]any{}
		}
		result, err := expr.Run(program, env)
		if err != nil {
			if debugExpr {
				slog.Debug("[BT] condition eval error", "expression", source, "error", err)
			}
			return bt.Failure
		}
		if ok, _ := result.(bool); ok {
			return bt.Success
		}
		return bt.Failure
	}), nil
}

// MustCondition is Condition but panics on a compile error, for statically
// authored trees.
func MustCondition(source string) *bt.Leaf {
	leaf, err := Condition(source)
	if err != nil {
		panic(err)
	}
	return leaf
}

func compile(source string) (*vm.Program, error) {
	if program, ok := cache.get(source); ok {
		return program, nil
	}
	program, err := expr.Compile(source,
		expr.AsBool(),
		expr.AllowUndefinedVariables(),
	)
	if err != nil {
		return nil, err
	}
	cache.put(source, program)
	return program, nil
}
