package parser

import (
	"github.com/alecthomas/participle/v2/lexer"
	"lucent/internal/ast"
	"lucent/internal/types"
)

// lower.go walks the participle-produced grammar tree into the internal/ast
// shapes the analyzer consumes. Keeping this as a separate pass from
// grammar.go means the grammar can be reshaped for parseability without
// touching the analyzer's view of the tree, and vice versa.

func toPos(p lexer.Position) ast.Position {
	return ast.Position{Line: p.Line, Column: p.Column}
}

func toType(name string) types.Type {
	switch name {
	case "Int":
		return types.Int
	case "Float":
		return types.Float
	case "Bool":
		return types.Bool
	default:
		return types.Unit
	}
}

func lowerProgram(sf *sourceFile) *ast.Program {
	prog := &ast.Program{}
	for _, d := range sf.Decls {
		switch {
		case d.Func != nil:
			prog.Declarations = append(prog.Declarations, lowerFuncDecl(d.Func))
		case d.Var != nil:
			prog.Declarations = append(prog.Declarations, lowerVarDecl(d.Var))
		}
	}
	return prog
}

func lowerFuncDecl(f *funcDecl) *ast.FunctionDecl {
	fn := &ast.FunctionDecl{
		Position:   toPos(f.Pos),
		Name:       f.Name,
		ReturnType: types.Unit,
	}
	if f.Return != nil {
		fn.ReturnType = toType(*f.Return)
	}
	for _, p := range f.Params {
		fn.Params = append(fn.Params, &ast.Param{Name: p.Name, Type: toType(p.Type)})
	}
	for _, it := range f.Body {
		fn.Body = append(fn.Body, lowerItem(it))
	}
	return fn
}

func lowerVarDecl(v *varDecl) *ast.VarDecl {
	return &ast.VarDecl{
		Position:    toPos(v.Pos),
		Constant:    v.Const,
		Name:        v.Name,
		DeclaredTy:  toType(v.Type),
		Initializer: lowerExpr(v.Init),
	}
}

func lowerItem(it *item) ast.Item {
	switch {
	case it.Var != nil:
		return lowerVarDecl(it.Var)
	case it.Return != nil:
		return &ast.ReturnStmt{Position: toPos(it.Return.Pos), Value: lowerExprOpt(it.Return.Value)}
	case it.If != nil:
		return lowerIf(it.If)
	case it.While != nil:
		return lowerWhile(it.While)
	case it.Print != nil:
		return &ast.PrintStmt{Position: toPos(it.Print.Pos), Value: lowerExpr(it.Print.Value)}
	case it.Assign != nil:
		return &ast.AssignmentStmt{
			Position: toPos(it.Assign.Pos),
			Name:     it.Assign.Name,
			Value:    lowerExpr(it.Assign.Value),
		}
	default:
		return nil
	}
}

func lowerIf(s *ifStmt) *ast.IfStmt {
	out := &ast.IfStmt{Position: toPos(s.Pos), Cond: lowerExpr(s.Cond)}
	for _, it := range s.Then {
		out.Then = append(out.Then, lowerItem(it))
	}
	if s.Else != nil {
		out.Else = []ast.Item{}
		for _, it := range s.Else {
			out.Else = append(out.Else, lowerItem(it))
		}
	}
	return out
}

func lowerWhile(s *whileStmt) *ast.WhileStmt {
	out := &ast.WhileStmt{Position: toPos(s.Pos), Cond: lowerExpr(s.Cond)}
	for _, it := range s.Body {
		out.Body = append(out.Body, lowerItem(it))
	}
	return out
}

func lowerExprOpt(e *expr) ast.Expr {
	if e == nil {
		return nil
	}
	return lowerExpr(e)
}

func lowerExpr(e *expr) ast.Expr {
	return lowerEquality(e.Equality)
}

func lowerEquality(e *equalityExpr) ast.Expr {
	left := lowerComparison(e.Left)
	for _, op := range e.Ops {
		left = &ast.BinaryExpr{Op: op.Operator, Left: left, Right: lowerComparison(op.Right)}
	}
	return left
}

func lowerComparison(e *comparisonExpr) ast.Expr {
	left := lowerAdditive(e.Left)
	for _, op := range e.Ops {
		left = &ast.BinaryExpr{Op: op.Operator, Left: left, Right: lowerAdditive(op.Right)}
	}
	return left
}

func lowerAdditive(e *additiveExpr) ast.Expr {
	left := lowerMultiplicative(e.Left)
	for _, op := range e.Ops {
		left = &ast.BinaryExpr{Op: op.Operator, Left: left, Right: lowerMultiplicative(op.Right)}
	}
	return left
}

func lowerMultiplicative(e *multiplicativeExpr) ast.Expr {
	left := lowerUnary(e.Left)
	for _, op := range e.Ops {
		left = &ast.BinaryExpr{Op: op.Operator, Left: left, Right: lowerUnary(op.Right)}
	}
	return left
}

func lowerUnary(e *unaryExpr) ast.Expr {
	operand := lowerPrimary(e.Operand)
	if e.Operator != nil {
		return &ast.UnaryExpr{Position: operand.Pos(), Op: *e.Operator, Operand: operand}
	}
	return operand
}

func lowerPrimary(e *primaryExpr) ast.Expr {
	pos := toPos(e.Pos)
	switch {
	case e.Call != nil:
		call := &ast.CallExpr{Position: pos, Name: e.Call.Name}
		for _, a := range e.Call.Args {
			call.Args = append(call.Args, lowerExpr(a))
		}
		return call
	case e.Float != nil:
		return &ast.FloatLiteral{Position: pos, Value: *e.Float}
	case e.Int != nil:
		return &ast.IntLiteral{Position: pos, Value: *e.Int}
	case e.Bool != nil:
		return &ast.BoolLiteral{Position: pos, Value: *e.Bool == "true"}
	case e.Ident != nil:
		return &ast.Ident{Position: pos, Name: *e.Ident}
	case e.Paren != nil:
		return lowerExpr(e.Paren)
	default:
		return nil
	}
}
