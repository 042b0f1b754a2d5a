// Package symbols implements the lexical scope machinery the analyzer walks
// on: symbol records and the nested, insert-if-absent, upward-searching
// scope stack.
package symbols

import "lucent/internal/types"

// Kind distinguishes the two disjoint symbol shapes. A Constant is a
// Variable with the Constant flag set, not a separate kind: every check
// that cares tests the Constant flag on a Variable-kind symbol instead of
// branching on Kind.
type Kind int

const (
	Variable Kind = iota
	Function
)

// Symbol is a single, immutable-once-inserted entry in a Scope. Variable and
// Constant declarations both produce Kind == Variable; Function declarations
// produce Kind == Function with ParamTypes/Return populated and Type left at
// its zero value.
type Symbol struct {
	Name       string
	Kind       Kind
	Type       types.Type   // declared type, for Variable symbols
	Constant   bool         // true for `const`, false for `var` and parameters
	ParamTypes []types.Type // for Function symbols
	Return     types.Type   // for Function symbols
}
