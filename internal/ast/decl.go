package ast

import "lucent/internal/types"

// VarDecl declares a variable or a constant; Constant distinguishes them,
// so they share one node and one symbol kind. Initializer is nil
// when the declaration has no `= expr` clause.
type VarDecl struct {
	Position    Position
	Constant    bool
	Name        string
	DeclaredTy  types.Type
	Initializer Expr
}

func (n *VarDecl) Pos() Position { return n.Position }
func (*VarDecl) declNode()       {}

// Param is one parameter in a function's signature.
type Param struct {
	Position Position
	Name     string
	Type     types.Type
}

// FunctionDecl declares a first-order function. ReturnType is types.Unit
// when the source has no "-> type" clause. Body is the sequence of
// declarations and statements that make up the function's block, analyzed
// without pushing an additional nested scope, since the function's own
// scope already wraps it.
type FunctionDecl struct {
	Position   Position
	Name       string
	Params     []*Param
	ReturnType types.Type
	Body       []Item
}

func (n *FunctionDecl) Pos() Position { return n.Position }
func (*FunctionDecl) declNode()       {}

// Program is the root of the tree: an ordered sequence of top-level
// declarations, each either a FunctionDecl or a VarDecl.
type Program struct {
	Position     Position
	Declarations []Decl
}

func (n *Program) Pos() Position { return n.Position }
