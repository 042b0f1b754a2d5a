package ast

// Node is the common interface for every tree element. The analyzer
// dispatches on the concrete type via a type switch, not double-dispatch —
// there is no Accept/Visitor pair here, since Go's sum-type idiom (an
// interface plus a type switch) makes that indirection unnecessary.
type Node interface {
	Pos() Position
}

// Expr is any expression node: it evaluates to a value of some Type.
type Expr interface {
	Node
	exprNode()
}

// Stmt is any statement node.
type Stmt interface {
	Node
	stmtNode()
}

// Decl is a top-level or block-level declaration (variable, constant, or
// function).
type Decl interface {
	Node
	declNode()
}

// Item is anything that can appear in a block body: a declaration or a
// statement, in source order.
type Item interface {
	Node
}
