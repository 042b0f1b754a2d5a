package analyzer

import (
	"lucent/internal/ast"
	"lucent/internal/diagnostic"
	"lucent/internal/symbols"
	"lucent/internal/types"
)

// analyzeBlock walks items in source order. When newScope is true a child
// scope is pushed for the duration of the block and popped on return,
// exactly the lexical nesting a `{ }` body introduces; a
// function's own top-level body reuses the scope analyzeFunctionDecl
// already created for it, so it passes newScope=false.
func (a *Analyzer) analyzeBlock(items []ast.Item, newScope bool) error {
	if newScope {
		saved := a.ctx.scope
		a.ctx.scope = symbols.NewScope(saved)
		defer func() { a.ctx.scope = saved }()
	}
	for _, item := range items {
		if err := a.analyzeItem(item); err != nil {
			return err
		}
	}
	return nil
}

// analyzeItem is the single place this reachability rule is
// enforced: once the walker has passed a terminator, every following item
// in the same block, a declaration or a nested function just as much as a
// statement, is unreachable_code, reported before anything else about it
// is even inspected.
func (a *Analyzer) analyzeItem(item ast.Item) error {
	if a.ctx.unreachable {
		return &diagnostic.Diagnostic{Kind: diagnostic.UnreachableCode}
	}
	switch it := item.(type) {
	case *ast.VarDecl:
		return a.analyzeVarDecl(it)
	case *ast.FunctionDecl:
		return a.analyzeFunctionDecl(it)
	case ast.Stmt:
		return a.analyzeStmt(it)
	default:
		return &diagnostic.InternalError{Message: "unexpected item in block"}
	}
}

func (a *Analyzer) analyzeStmt(s ast.Stmt) error {
	switch st := s.(type) {
	case *ast.PrintStmt:
		return a.analyzePrint(st)
	case *ast.IfStmt:
		return a.analyzeIf(st)
	case *ast.WhileStmt:
		return a.analyzeWhile(st)
	case *ast.AssignmentStmt:
		return a.analyzeAssignment(st)
	case *ast.ReturnStmt:
		return a.analyzeReturn(st)
	default:
		return &diagnostic.InternalError{Message: "unexpected statement node"}
	}
}

// analyzePrint accepts any scalar-typed operand; there is no type
// restriction beyond the operand itself typing successfully.
func (a *Analyzer) analyzePrint(s *ast.PrintStmt) error {
	_, err := a.typeExpr(s.Value)
	return err
}

// analyzeAssignment implements this ordering exactly: an undeclared
// name, then a name bound to a function, then a constant target, and only
// then the value's own type against the declared type. Checking
// function-used-as-variable ahead of the constant check means `f := 1` on a
// function named f is reported as the former even though f also happens
// not to be assignable for an entirely different reason.
func (a *Analyzer) analyzeAssignment(s *ast.AssignmentStmt) error {
	sym := a.ctx.scope.Lookup(s.Name)
	if sym == nil {
		return &diagnostic.Diagnostic{Kind: diagnostic.UndeclaredIdentifier, Name: s.Name}
	}
	if sym.Kind == symbols.Function {
		return &diagnostic.Diagnostic{Kind: diagnostic.FunctionUsedAsVariable, Name: s.Name}
	}
	if sym.Constant {
		return &diagnostic.Diagnostic{Kind: diagnostic.AssignmentToConstant, Name: s.Name}
	}

	valTy, err := a.typeExpr(s.Value)
	if err != nil {
		return err
	}
	if !types.Accepts(sym.Type, valTy) {
		return &diagnostic.Diagnostic{
			Kind:     diagnostic.AssignmentTypeMismatch,
			Name:     s.Name,
			Declared: sym.Type,
			Actual:   valTy,
		}
	}
	return nil
}

// analyzeReturn treats a bare `return` as valid precisely when the enclosing
// function's return type is Unit. A return is always a terminator: it
// marks everything after it in the current block unreachable.
func (a *Analyzer) analyzeReturn(s *ast.ReturnStmt) error {
	if a.ctx.function == "" {
		return &diagnostic.Diagnostic{Kind: diagnostic.ReturnOutsideFunction}
	}

	if s.Value == nil {
		if a.ctx.returnType != types.Unit {
			return &diagnostic.Diagnostic{
				Kind:         diagnostic.ReturnTypeMismatch,
				FunctionName: a.ctx.function,
				Expected:     a.ctx.returnType,
				Actual:       types.Unit,
			}
		}
	} else {
		valTy, err := a.typeExpr(s.Value)
		if err != nil {
			return err
		}
		if !types.Accepts(a.ctx.returnType, valTy) {
			return &diagnostic.Diagnostic{
				Kind:         diagnostic.ReturnTypeMismatch,
				FunctionName: a.ctx.function,
				Expected:     a.ctx.returnType,
				Actual:       valTy,
			}
		}
	}

	a.ctx.unreachable = true
	return nil
}

// analyzeIf implements this reachability combination: the branches
// are each analyzed from the pre-if reachability state, in their own child
// scopes, and the code after the if is unreachable only when both an else
// exists and both branches ended unreachable. With no else clause the
// statement can never make the following code unreachable, since control
// can always fall through the (implicit, empty) else.
func (a *Analyzer) analyzeIf(s *ast.IfStmt) error {
	condTy, err := a.typeExpr(s.Cond)
	if err != nil {
		return err
	}
	if condTy != types.Bool {
		return &diagnostic.Diagnostic{Kind: diagnostic.ConditionNotBoolean, Actual: condTy}
	}

	preUnreachable := a.ctx.unreachable

	a.ctx.unreachable = preUnreachable
	if err := a.analyzeBlock(s.Then, true); err != nil {
		return err
	}
	thenUnreachable := a.ctx.unreachable

	elseUnreachable := preUnreachable
	if s.Else != nil {
		a.ctx.unreachable = preUnreachable
		if err := a.analyzeBlock(s.Else, true); err != nil {
			return err
		}
		elseUnreachable = a.ctx.unreachable

		a.ctx.unreachable = thenUnreachable && elseUnreachable
	} else {
		a.ctx.unreachable = preUnreachable
	}
	return nil
}

// analyzeWhile always restores the pre-loop reachability state once the
// body has been checked: a loop that always returns on its first iteration
// still may not execute at all, so code after the loop is reachable
// whenever it would have been reachable before the loop.
func (a *Analyzer) analyzeWhile(s *ast.WhileStmt) error {
	condTy, err := a.typeExpr(s.Cond)
	if err != nil {
		return err
	}
	if condTy != types.Bool {
		return &diagnostic.Diagnostic{Kind: diagnostic.ConditionNotBoolean, Actual: condTy}
	}

	preUnreachable := a.ctx.unreachable
	if err := a.analyzeBlock(s.Body, true); err != nil {
		return err
	}
	a.ctx.unreachable = preUnreachable
	return nil
}
