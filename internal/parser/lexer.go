package parser

import "github.com/alecthomas/participle/v2/lexer"

// lucentLexer tokenizes source text into the handful of token classes the
// grammar in grammar.go references by name. Order matters: Float must be
// tried before Int (both would otherwise match the integer part of a float
// literal), and Ident must come after every keyword-shaped literal so
// identifiers don't swallow reserved words. participle resolves that by
// letting the grammar match keyword strings directly against Ident tokens.
var lucentLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Comment", Pattern: `//[^\n]*`},
	{Name: "Float", Pattern: `[0-9]+\.[0-9]+`},
	{Name: "Int", Pattern: `[0-9]+`},
	{Name: "Ident", Pattern: `[a-zA-Z_][a-zA-Z0-9_]*`},
	{Name: "Operator", Pattern: `->|:=|==|!=|<=|>=|[-+*/<>(){}:,;=]`},
	{Name: "Whitespace", Pattern: `[ \t\r\n]+`},
})
