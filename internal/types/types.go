// Package types implements the Lucent type lattice: the closed set of
// scalar types the analyzer works with, plus the assignment-compatibility
// relation used to gate initializers, assignments, and call arguments.
package types

// Type is one of the four members of the lattice. There is no user-defined
// type and no inference: every Type value the analyzer ever produces comes
// from a literal, a declared annotation, or a symbol's recorded type.
type Type int

const (
	// Unit is the "no value" type: the return type of a procedure that
	// yields nothing. It is never spelled by the user; a function with no
	// "-> type" clause has return type Unit.
	Unit Type = iota
	Int
	Float
	Bool
)

func (t Type) String() string {
	switch t {
	case Int:
		return "int"
	case Float:
		return "float"
	case Bool:
		return "bool"
	case Unit:
		return "unit"
	default:
		return "unknown"
	}
}

// Numeric reports whether t is one of {Int, Float}.
func Numeric(t Type) bool {
	return t == Int || t == Float
}

// Accepts implements the assignment-compatibility relation accepts(target,
// source): reflexive, plus the widening Int->Float and the tolerated
// Bool<->Int coercions. Every other pair, notably Float source into an Int
// or Bool target, is rejected. This single relation gates variable
// initializers, assignment RHS values, and call-site arguments alike.
func Accepts(target, source Type) bool {
	if target == source {
		return true
	}
	switch {
	case target == Float && source == Int:
		return true
	case target == Bool && source == Int:
		return true
	case target == Int && source == Bool:
		return true
	default:
		return false
	}
}
