// Package render turns an analyzer error into the colored, Rust-style
// terminal text cmd/lucentc prints. diagnostic.Diagnostic carries no
// source position, so there is no source-line gutter to render, only a
// message.
package render

import (
	"errors"
	"fmt"
	"strings"

	"github.com/fatih/color"
	"lucent/internal/diagnostic"
	"lucent/internal/types"
)

// Diagnostic formats err, attributed to sourceName, the way cmd/lucentc
// prints it to standard output. It accepts any error: a *diagnostic.Diagnostic
// renders its structured message, a *diagnostic.InternalError renders as an
// internal-error header, and anything else (a parser error) falls back to
// its own Error() text under a plain "error" header.
func Diagnostic(sourceName string, err error) string {
	bold := color.New(color.Bold).SprintFunc()
	red := color.New(color.FgRed, color.Bold).SprintFunc()

	var d *diagnostic.Diagnostic
	var ie *diagnostic.InternalError
	switch {
	case errors.As(err, &d):
		return fmt.Sprintf("%s: %s\n  %s %s\n", red("error"), bold(message(d)), "-->", sourceName)
	case errors.As(err, &ie):
		return fmt.Sprintf("%s: %s\n  %s %s\n", red("internal error"), bold(ie.Error()), "-->", sourceName)
	default:
		return fmt.Sprintf("%s: %s\n  %s %s\n", red("error"), bold(err.Error()), "-->", sourceName)
	}
}

// message renders the same information the diagnostic's fields carry as a
// sentence, one branch per kind.
func message(d *diagnostic.Diagnostic) string {
	switch d.Kind {
	case diagnostic.RedeclaredFunction:
		return fmt.Sprintf("function %q is already declared", d.Name)
	case diagnostic.RedeclaredIdentifier:
		return fmt.Sprintf("%q is already declared in this scope", d.Name)
	case diagnostic.UndeclaredIdentifier:
		return fmt.Sprintf("undeclared identifier %q", d.Name)
	case diagnostic.UndeclaredFunction:
		return fmt.Sprintf("call to undeclared function %q", d.Name)
	case diagnostic.FunctionUsedAsVariable:
		return fmt.Sprintf("%q is a function, not a value", d.Name)
	case diagnostic.NotAFunction:
		return fmt.Sprintf("%q is not a function", d.Name)
	case diagnostic.VariableDeclarationTypeMismatch:
		return fmt.Sprintf("cannot initialize %q of type %s with a value of type %s", d.Name, d.Declared, d.Actual)
	case diagnostic.AssignmentTypeMismatch:
		return fmt.Sprintf("cannot assign a value of type %s to %q of type %s", d.Actual, d.Name, d.Declared)
	case diagnostic.AssignmentToConstant:
		return fmt.Sprintf("cannot assign to constant %q", d.Name)
	case diagnostic.WrongNumberOfArguments:
		return fmt.Sprintf("%q expects %d argument(s), got %d", d.Name, d.ExpectedCount, d.ActualCount)
	case diagnostic.InvalidSignature:
		return fmt.Sprintf("call to %q does not match signature (%s), got (%s)",
			d.Name, typeList(d.ExpectedTypes), typeList(d.ActualTypes))
	case diagnostic.InvalidBinaryOperation:
		return fmt.Sprintf("operator %q is not defined for %s and %s", d.Op, d.LeftType, d.RightType)
	case diagnostic.InvalidUnaryOperation:
		return fmt.Sprintf("operator %q is not defined for %s", d.Op, d.RightType)
	case diagnostic.ConditionNotBoolean:
		return fmt.Sprintf("condition must be bool, got %s", d.Actual)
	case diagnostic.ReturnTypeMismatch:
		return fmt.Sprintf("function %q must return %s, got %s", d.FunctionName, d.Expected, d.Actual)
	case diagnostic.ReturnOutsideFunction:
		return "return statement outside of a function"
	case diagnostic.MissingReturn:
		return fmt.Sprintf("function %q does not return a value on every path", d.FunctionName)
	case diagnostic.UnreachableCode:
		return "unreachable code"
	default:
		return d.Kind.String()
	}
}

func typeList(ts []types.Type) string {
	parts := make([]string, len(ts))
	for i, t := range ts {
		parts[i] = t.String()
	}
	return strings.Join(parts, ", ")
}
