// Package parser turns Lucent source text into an internal/ast.Program
// using github.com/alecthomas/participle/v2. internal/lsp calls ParseSource
// directly; cmd/lucentc calls ParseFile, which reads the file and then
// delegates to ParseSource.
package parser

import (
	"fmt"
	"os"

	"github.com/alecthomas/participle/v2"
	"lucent/internal/ast"
)

var lucentParser = buildParser()

func buildParser() *participle.Parser[sourceFile] {
	p, err := participle.Build[sourceFile](
		participle.Lexer(lucentLexer),
		participle.Elide("Whitespace", "Comment"),
		participle.UseLookahead(3),
	)
	if err != nil {
		panic(fmt.Errorf("lucent: failed to build parser: %w", err))
	}
	return p
}

// ParseFile reads path and parses its contents.
func ParseFile(path string) (*ast.Program, error) {
	source, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return ParseSource(path, string(source))
}

// ParseSource parses source, attributed to sourceName in error messages
// participle produces (unrecognized tokens, grammar mismatches). A non-nil
// error here means the input was not well-formed Lucent syntax; it is
// always a *participle.ParseError or *participle.UnexpectedTokenError, not
// one of the analyzer's own diagnostic.Diagnostic values.
func ParseSource(sourceName, source string) (*ast.Program, error) {
	tree, err := lucentParser.ParseString(sourceName, source)
	if err != nil {
		return nil, err
	}
	return lowerProgram(tree), nil
}
