package analyzer

import (
	"lucent/internal/symbols"
	"lucent/internal/types"
)

// context is the small record the walker threads through every call: the
// current scope, the enclosing function's name and return type (empty/Unit
// outside any function), and whether the following code is reachable.
// It is a plain value, not a pointer: saving and restoring it across
// a function boundary is a struct copy plus a deferred assignment, Go's
// answer to a scoped guard that restores state on exit. Blocks save and
// restore only the scope field the same way, and if/while statements save
// and reset only the unreachable flag.
type context struct {
	scope       *symbols.Scope
	function    string
	returnType  types.Type
	unreachable bool
}
