package parser

import "github.com/alecthomas/participle/v2/lexer"

// The grammar structs below are participle's struct-tag notation for a
// recursive-descent grammar. Parsing produces this tree; lower.go then
// walks it into the internal/ast shapes the analyzer actually consumes,
// keeping "what participle can parse" and "what the analyzer needs" as
// two separate, independently-evolvable concerns.

type sourceFile struct {
	Decls []*topDecl `@@*`
}

type topDecl struct {
	Func *funcDecl `  @@`
	Var  *varDecl  `| @@`
}

type funcDecl struct {
	Pos    lexer.Position
	Name   string       `"fn" @Ident "("`
	Params []*paramNode `[ @@ { "," @@ } ] ")"`
	Return *string      `[ "->" @("Int" | "Float" | "Bool") ]`
	Body   []*item      `"{" @@* "}"`
}

type paramNode struct {
	Name string `@Ident ":"`
	Type string `@("Int" | "Float" | "Bool")`
}

type varDecl struct {
	Pos   lexer.Position
	Const bool   `( @"const" | "var" )`
	Name  string `@Ident ":"`
	Type  string `@("Int" | "Float" | "Bool") "="`
	Init  *expr  `@@ ";"`
}

type item struct {
	Var    *varDecl    `  @@`
	Return *returnStmt `| @@`
	If     *ifStmt     `| @@`
	While  *whileStmt  `| @@`
	Print  *printStmt  `| @@`
	Assign *assignStmt `| @@`
}

type returnStmt struct {
	Pos   lexer.Position
	Value *expr `"return" [ @@ ] ";"`
}

type printStmt struct {
	Pos   lexer.Position
	Value *expr `"print" @@ ";"`
}

type ifStmt struct {
	Pos  lexer.Position
	Cond *expr   `"if" @@ "{"`
	Then []*item `@@* "}"`
	Else []*item `[ "else" "{" @@* "}" ]`
}

type assignStmt struct {
	Pos   lexer.Position
	Name  string `@Ident ":="`
	Value *expr  `@@ ";"`
}

type whileStmt struct {
	Pos  lexer.Position
	Cond *expr   `"while" @@ "{"`
	Body []*item `@@* "}"`
}

// Expression grammar, precedence-climbed the conventional recursive-descent
// way: each level owns one operator class and defers to the level below
// for its operands, cheaper to read than a Pratt parser for a fixed,
// small operator set.

type expr struct {
	Equality *equalityExpr `@@`
}

type equalityExpr struct {
	Left *comparisonExpr `@@`
	Ops  []*equalityOp   `{ @@ }`
}

type equalityOp struct {
	Operator string          `@( "==" | "!=" )`
	Right    *comparisonExpr `@@`
}

type comparisonExpr struct {
	Left *additiveExpr   `@@`
	Ops  []*comparisonOp `{ @@ }`
}

type comparisonOp struct {
	Operator string        `@( "<=" | ">=" | "<" | ">" )`
	Right    *additiveExpr `@@`
}

type additiveExpr struct {
	Left *multiplicativeExpr `@@`
	Ops  []*additiveOp       `{ @@ }`
}

type additiveOp struct {
	Operator string              `@( "+" | "-" )`
	Right    *multiplicativeExpr `@@`
}

type multiplicativeExpr struct {
	Left *unaryExpr          `@@`
	Ops  []*multiplicativeOp `{ @@ }`
}

type multiplicativeOp struct {
	Operator string     `@( "*" | "/" )`
	Right    *unaryExpr `@@`
}

type unaryExpr struct {
	Operator *string      `[ @"-" ]`
	Operand  *primaryExpr `@@`
}

type primaryExpr struct {
	Pos   lexer.Position
	Call  *callExpr `  @@`
	Float *float64  `| @Float`
	Int   *int64    `| @Int`
	Bool  *string   `| @( "true" | "false" )`
	Ident *string   `| @Ident`
	Paren *expr     `| "(" @@ ")"`
}

type callExpr struct {
	Name string  `@Ident "("`
	Args []*expr `[ @@ { "," @@ } ] ")"`
}
