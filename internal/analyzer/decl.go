package analyzer

import (
	"lucent/internal/ast"
	"lucent/internal/diagnostic"
	"lucent/internal/symbols"
	"lucent/internal/types"
)

// analyzeFunctionDecl pushes a fresh scope (the
// function's own; the body is analyzed inside it without an additional
// nested scope), replaces the current-function context, inserts
// parameters, checks the body, and on non-Unit return types requires every
// syntactic path to return. The saved context is restored via defer on
// every exit path, success or diagnostic.
func (a *Analyzer) analyzeFunctionDecl(fn *ast.FunctionDecl) error {
	saved := a.ctx
	a.ctx = context{
		scope:       symbols.NewScope(saved.scope),
		function:    fn.Name,
		returnType:  fn.ReturnType,
		unreachable: false,
	}
	defer func() { a.ctx = saved }()

	for _, param := range fn.Params {
		sym := &symbols.Symbol{Name: param.Name, Kind: symbols.Variable, Type: param.Type}
		if !a.ctx.scope.Insert(param.Name, sym) {
			return &diagnostic.Diagnostic{Kind: diagnostic.RedeclaredIdentifier, Name: param.Name}
		}
	}

	if err := a.analyzeBlock(fn.Body, false); err != nil {
		return err
	}

	if fn.ReturnType != types.Unit && !allPathsReturn(fn.Body) {
		return &diagnostic.Diagnostic{Kind: diagnostic.MissingReturn, FunctionName: fn.Name}
	}
	return nil
}

// analyzeVarDecl types the initializer, if present,
// before the symbol is inserted, so a declaration can never refer to
// itself.
func (a *Analyzer) analyzeVarDecl(v *ast.VarDecl) error {
	if existing := a.ctx.scope.LookupLocal(v.Name); existing != nil {
		if existing.Kind == symbols.Function {
			return &diagnostic.Diagnostic{Kind: diagnostic.RedeclaredFunction, Name: v.Name}
		}
		return &diagnostic.Diagnostic{Kind: diagnostic.RedeclaredIdentifier, Name: v.Name}
	}

	if v.Initializer != nil {
		initType, err := a.typeExpr(v.Initializer)
		if err != nil {
			return err
		}
		if !types.Accepts(v.DeclaredTy, initType) {
			return &diagnostic.Diagnostic{
				Kind:     diagnostic.VariableDeclarationTypeMismatch,
				Name:     v.Name,
				Declared: v.DeclaredTy,
				Actual:   initType,
			}
		}
	}

	a.ctx.scope.Insert(v.Name, &symbols.Symbol{
		Name:     v.Name,
		Kind:     symbols.Variable,
		Type:     v.DeclaredTy,
		Constant: v.Constant,
	})
	return nil
}
