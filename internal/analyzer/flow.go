package analyzer

import "lucent/internal/ast"

// allPathsReturn implements this definite-return check: a function
// body satisfies it when every syntactic path through the top-level block
// ends in a return statement. It is a purely structural check over the
// same block shape analyzeBlock walks, run once after the block has
// already been type-checked, so it never needs to re-derive types.
func allPathsReturn(items []ast.Item) bool {
	for _, item := range items {
		if isTerminator(item) {
			return true
		}
	}
	return false
}

// isTerminator reports whether item unconditionally ends control flow on
// every path through it. A return statement always does. An if/else both
// terminates only when it has an else clause and both branches terminate;
// an if with no else can always fall through. A while loop never counts,
// since its body may run zero times.
func isTerminator(item ast.Item) bool {
	switch it := item.(type) {
	case *ast.ReturnStmt:
		return true
	case *ast.IfStmt:
		if it.Else == nil {
			return false
		}
		return allPathsReturn(it.Then) && allPathsReturn(it.Else)
	default:
		return false
	}
}
