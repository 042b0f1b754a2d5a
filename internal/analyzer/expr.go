package analyzer

import (
	"lucent/internal/ast"
	"lucent/internal/diagnostic"
	"lucent/internal/symbols"
	"lucent/internal/types"
)

// typeExpr computes and annotates the type of e, recursing into subterms
// first: an expression's type depends only on its subterms, not
// on its surrounding statement.
func (a *Analyzer) typeExpr(e ast.Expr) (types.Type, error) {
	switch n := e.(type) {
	case *ast.IntLiteral:
		n.DataType = types.Int
		return types.Int, nil
	case *ast.FloatLiteral:
		n.DataType = types.Float
		return types.Float, nil
	case *ast.BoolLiteral:
		n.DataType = types.Bool
		return types.Bool, nil
	case *ast.Ident:
		return a.typeIdent(n)
	case *ast.UnaryExpr:
		return a.typeUnary(n)
	case *ast.BinaryExpr:
		return a.typeBinary(n)
	case *ast.CallExpr:
		return a.typeCall(n)
	default:
		return types.Unit, &diagnostic.InternalError{Message: "unexpected expression node"}
	}
}

// typeIdent enforces the rule that a name bound
// to a Function symbol used where a value is expected is
// function_used_as_variable, checked before anything about assignability.
func (a *Analyzer) typeIdent(n *ast.Ident) (types.Type, error) {
	sym := a.ctx.scope.Lookup(n.Name)
	if sym == nil {
		return types.Unit, &diagnostic.Diagnostic{Kind: diagnostic.UndeclaredIdentifier, Name: n.Name}
	}
	if sym.Kind == symbols.Function {
		return types.Unit, &diagnostic.Diagnostic{Kind: diagnostic.FunctionUsedAsVariable, Name: n.Name}
	}
	n.DataType = sym.Type
	return sym.Type, nil
}

// typeUnary types the language's single unary operator, arithmetic negation.
// It is defined only over the numeric types and preserves the operand's type.
func (a *Analyzer) typeUnary(n *ast.UnaryExpr) (types.Type, error) {
	operandTy, err := a.typeExpr(n.Operand)
	if err != nil {
		return types.Unit, err
	}
	if !types.Numeric(operandTy) {
		return types.Unit, &diagnostic.Diagnostic{
			Kind:      diagnostic.InvalidUnaryOperation,
			Op:        n.Op,
			RightType: operandTy,
		}
	}
	n.DataType = operandTy
	return operandTy, nil
}

var arithmeticOps = map[string]bool{"+": true, "-": true, "*": true, "/": true}
var orderingOps = map[string]bool{"<": true, "<=": true, ">": true, ">=": true}
var equalityOps = map[string]bool{"==": true, "!=": true}

// typeBinary handles these three operator families. Both operands
// are typed unconditionally before either diagnostic check runs, so a
// malformed left operand is always reported even when the right operand
// would also have failed.
func (a *Analyzer) typeBinary(n *ast.BinaryExpr) (types.Type, error) {
	leftTy, err := a.typeExpr(n.Left)
	if err != nil {
		return types.Unit, err
	}
	rightTy, err := a.typeExpr(n.Right)
	if err != nil {
		return types.Unit, err
	}

	switch {
	case arithmeticOps[n.Op]:
		if !types.Numeric(leftTy) || !types.Numeric(rightTy) {
			return types.Unit, invalidBinary(n.Op, leftTy, rightTy)
		}
		result := types.Int
		if leftTy == types.Float || rightTy == types.Float {
			result = types.Float
		}
		n.DataType = result
		return result, nil

	case orderingOps[n.Op]:
		if !types.Numeric(leftTy) || !types.Numeric(rightTy) {
			return types.Unit, invalidBinary(n.Op, leftTy, rightTy)
		}
		n.DataType = types.Bool
		return types.Bool, nil

	case equalityOps[n.Op]:
		if leftTy != rightTy {
			return types.Unit, invalidBinary(n.Op, leftTy, rightTy)
		}
		n.DataType = types.Bool
		return types.Bool, nil

	default:
		return types.Unit, &diagnostic.InternalError{Message: "unexpected binary operator " + n.Op}
	}
}

func invalidBinary(op string, left, right types.Type) error {
	return &diagnostic.Diagnostic{
		Kind:      diagnostic.InvalidBinaryOperation,
		Op:        op,
		LeftType:  left,
		RightType: right,
	}
}

// typeCall checks, in order, that the callee
// resolves to a Function symbol, then arity, then each argument's type in
// left-to-right order. ActualTypes on an invalid_signature diagnostic holds
// only the arguments typed up to and including the first mismatch: the loop
// builds that list incrementally and returns as soon as a mismatch is found.
func (a *Analyzer) typeCall(n *ast.CallExpr) (types.Type, error) {
	sym := a.ctx.scope.Lookup(n.Name)
	if sym == nil {
		return types.Unit, &diagnostic.Diagnostic{Kind: diagnostic.UndeclaredFunction, Name: n.Name}
	}
	if sym.Kind != symbols.Function {
		return types.Unit, &diagnostic.Diagnostic{Kind: diagnostic.NotAFunction, Name: n.Name}
	}
	if len(n.Args) != len(sym.ParamTypes) {
		return types.Unit, &diagnostic.Diagnostic{
			Kind:          diagnostic.WrongNumberOfArguments,
			Name:          n.Name,
			ExpectedCount: len(sym.ParamTypes),
			ActualCount:   len(n.Args),
		}
	}

	actualTypes := make([]types.Type, 0, len(n.Args))
	for i, arg := range n.Args {
		argTy, err := a.typeExpr(arg)
		if err != nil {
			return types.Unit, err
		}
		actualTypes = append(actualTypes, argTy)
		if !types.Accepts(sym.ParamTypes[i], argTy) {
			return types.Unit, &diagnostic.Diagnostic{
				Kind:          diagnostic.InvalidSignature,
				Name:          n.Name,
				ExpectedTypes: sym.ParamTypes,
				ActualTypes:   actualTypes,
			}
		}
	}

	n.DataType = sym.Return
	return sym.Return, nil
}
