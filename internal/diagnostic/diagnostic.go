// Package diagnostic implements the analyzer's structured error taxonomy.
// Analysis is fail-fast: a single Diagnostic value, not a
// string and not a list, is the outcome of a failed analyze() call. A
// disjoint InternalError type reports contract violations from the
// upstream parser, distinguishing "your program is invalid" from
// "the tree handed to us was malformed."
package diagnostic

import "lucent/internal/types"

// Kind identifies which of the eighteen rule violations
// occurred. The zero value is intentionally not a valid Kind so a
// zero-valued Diagnostic can never be mistaken for a real one.
type Kind int

const (
	_ Kind = iota
	RedeclaredFunction
	RedeclaredIdentifier
	UndeclaredIdentifier
	UndeclaredFunction
	FunctionUsedAsVariable
	NotAFunction
	VariableDeclarationTypeMismatch
	AssignmentTypeMismatch
	AssignmentToConstant
	WrongNumberOfArguments
	InvalidSignature
	InvalidBinaryOperation
	InvalidUnaryOperation
	ConditionNotBoolean
	ReturnTypeMismatch
	ReturnOutsideFunction
	MissingReturn
	UnreachableCode
)

var kindNames = map[Kind]string{
	RedeclaredFunction:               "redeclared_function",
	RedeclaredIdentifier:             "redeclared_identifier",
	UndeclaredIdentifier:             "undeclared_identifier",
	UndeclaredFunction:               "undeclared_function",
	FunctionUsedAsVariable:           "function_used_as_variable",
	NotAFunction:                     "not_a_function",
	VariableDeclarationTypeMismatch:  "variable_declaration_type_mismatch",
	AssignmentTypeMismatch:           "assignment_type_mismatch",
	AssignmentToConstant:             "assignment_to_constant",
	WrongNumberOfArguments:           "wrong_number_of_arguments",
	InvalidSignature:                 "invalid_signature",
	InvalidBinaryOperation:           "invalid_binary_operation",
	InvalidUnaryOperation:            "invalid_unary_operation",
	ConditionNotBoolean:              "condition_not_boolean",
	ReturnTypeMismatch:               "return_type_mismatch",
	ReturnOutsideFunction:            "return_outside_function",
	MissingReturn:                    "missing_return",
	UnreachableCode:                  "unreachable_code",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "unknown_diagnostic_kind"
}

// Diagnostic is a single structured error value. It carries only the
// context lists for its Kind; fields irrelevant to a given Kind
// are left at their zero value, the same tolerance a renderer must already
// have for a closed, kind-tagged union in a language without sum types.
type Diagnostic struct {
	Kind Kind

	// Identifier-bearing kinds (redeclared/undeclared/function-used-as-
	// variable/not-a-function/assignment-to-constant).
	Name string

	// Type-mismatch kinds (variable declaration, assignment).
	Declared types.Type
	Actual   types.Type

	// wrong_number_of_arguments
	ExpectedCount int
	ActualCount   int

	// invalid_signature
	ExpectedTypes []types.Type
	ActualTypes   []types.Type

	// invalid_binary_operation / invalid_unary_operation
	Op        string
	LeftType  types.Type
	RightType types.Type

	// return_type_mismatch / missing_return
	FunctionName string
	Expected     types.Type

	// condition_not_boolean reuses Actual above.
}

// Error implements the error interface so a Diagnostic can be returned and
// checked the idiomatic Go way, without collapsing it to a plain string:
// callers that want the structured value use errors.As.
func (d *Diagnostic) Error() string {
	return d.Kind.String()
}

// InternalError reports a contract violation from the upstream parser: a
// nil root, a root that is not a Program, or an unexpected node variant in
// statement position. This is distinct from a Diagnostic: it means the
// tree itself is malformed, not that the program it encodes is ill-typed.
type InternalError struct {
	Message string
	Cause   error
}

func (e *InternalError) Error() string {
	if e.Cause != nil {
		return e.Message + ": " + e.Cause.Error()
	}
	return e.Message
}

func (e *InternalError) Unwrap() error { return e.Cause }
