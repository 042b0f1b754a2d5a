package ast

import "lucent/internal/types"

// IntLiteral is an integer literal; its type is always Int.
type IntLiteral struct {
	Position Position
	Value    int64
	DataType types.Type
}

func (n *IntLiteral) Pos() Position { return n.Position }
func (*IntLiteral) exprNode()       {}

// FloatLiteral is a floating-point literal; its type is always Float.
type FloatLiteral struct {
	Position Position
	Value    float64
	DataType types.Type
}

func (n *FloatLiteral) Pos() Position { return n.Position }
func (*FloatLiteral) exprNode()       {}

// BoolLiteral is a boolean literal; its type is always Bool.
type BoolLiteral struct {
	Position Position
	Value    bool
	DataType types.Type
}

func (n *BoolLiteral) Pos() Position { return n.Position }
func (*BoolLiteral) exprNode()       {}

// Ident references a previously declared variable, constant, or (invalidly,
// as an expression) function by name.
type Ident struct {
	Position Position
	Name     string
	DataType types.Type
}

func (n *Ident) Pos() Position { return n.Position }
func (*Ident) exprNode()       {}

// BinaryExpr is one of the ten binary operators grouped by:
// arithmetic (+ - * /), ordering (< > <= >=), and equality (== !=).
type BinaryExpr struct {
	Position Position
	Op       string
	Left     Expr
	Right    Expr
	DataType types.Type
}

func (n *BinaryExpr) Pos() Position { return n.Position }
func (*BinaryExpr) exprNode()       {}

// UnaryExpr is unary minus; it is the only unary operator in the language.
type UnaryExpr struct {
	Position Position
	Op       string
	Operand  Expr
	DataType types.Type
}

func (n *UnaryExpr) Pos() Position { return n.Position }
func (*UnaryExpr) exprNode()       {}

// CallExpr is a function call expression `name(args...)`.
type CallExpr struct {
	Position Position
	Name     string
	Args     []Expr
	DataType types.Type
}

func (n *CallExpr) Pos() Position { return n.Position }
func (*CallExpr) exprNode()       {}
