// Package analyzer implements semantic analysis: a two-pass program walk
// (hoist, then check bodies), expression typing,
// statement checking with reachability tracking, and definite-return
// analysis on function bodies. It is a single-threaded, synchronous tree
// walk with no external state beyond the Analyzer value itself.
package analyzer

import (
	"lucent/internal/ast"
	"lucent/internal/diagnostic"
	"lucent/internal/symbols"
	"lucent/internal/types"
)

// Analyzer walks one AST per call to Analyze. A value should not be reused
// concurrently across goroutines, and Analyze resets all internal state on
// entry, so a single Analyzer can be reused sequentially across programs.
type Analyzer struct {
	ctx context
}

// New returns a ready-to-use Analyzer.
func New() *Analyzer {
	return &Analyzer{}
}

// Analyze validates root and returns nil on success. A returned error is
// either a *diagnostic.Diagnostic (the program is ill-formed) or a
// *diagnostic.InternalError (the tree itself violates the upstream
// contract: a nil root, a root that is not a Program, or an
// unexpected node variant in statement position.
func (a *Analyzer) Analyze(root ast.Node) error {
	if root == nil {
		return &diagnostic.InternalError{Message: "AST root is nil"}
	}
	program, ok := root.(*ast.Program)
	if !ok {
		return &diagnostic.InternalError{Message: "AST root is not a Program node"}
	}
	return a.analyzeProgram(program)
}

// analyzeProgram hoists every top-level function
// signature into the global scope, then revisits each declaration in
// source order. Top-level variables are never hoisted, so a top-level
// variable referenced before its own declaration is undeclared, not
// forward-referenced.
func (a *Analyzer) analyzeProgram(p *ast.Program) error {
	a.ctx = context{scope: symbols.NewScope(nil)}

	for _, decl := range p.Declarations {
		fn, ok := decl.(*ast.FunctionDecl)
		if !ok {
			continue
		}
		if existing := a.ctx.scope.LookupLocal(fn.Name); existing != nil {
			if existing.Kind == symbols.Function {
				return &diagnostic.Diagnostic{Kind: diagnostic.RedeclaredFunction, Name: fn.Name}
			}
			return &diagnostic.Diagnostic{Kind: diagnostic.RedeclaredIdentifier, Name: fn.Name}
		}

		paramTypes := make([]types.Type, len(fn.Params))
		for i, p := range fn.Params {
			paramTypes[i] = p.Type
		}
		a.ctx.scope.Insert(fn.Name, &symbols.Symbol{
			Name:       fn.Name,
			Kind:       symbols.Function,
			ParamTypes: paramTypes,
			Return:     fn.ReturnType,
		})
	}

	for _, decl := range p.Declarations {
		switch d := decl.(type) {
		case *ast.FunctionDecl:
			if err := a.analyzeFunctionDecl(d); err != nil {
				return err
			}
		case *ast.VarDecl:
			if err := a.analyzeVarDecl(d); err != nil {
				return err
			}
		default:
			return &diagnostic.InternalError{Message: "unexpected node in top-level declaration position"}
		}
	}
	return nil
}
