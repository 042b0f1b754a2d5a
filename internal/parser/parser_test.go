package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"lucent/internal/analyzer"
	"lucent/internal/ast"
	"lucent/internal/types"
)

func TestParseSimpleFunction(t *testing.T) {
	prog, err := ParseSource("test.lc", `
		fn add(a: Int, b: Int) -> Int {
			return a + b;
		}
	`)
	require.NoError(t, err)
	require.Len(t, prog.Declarations, 1)

	fn, ok := prog.Declarations[0].(*ast.FunctionDecl)
	require.True(t, ok)
	assert.Equal(t, "add", fn.Name)
	assert.Equal(t, types.Int, fn.ReturnType)
	require.Len(t, fn.Params, 2)
	assert.Equal(t, "a", fn.Params[0].Name)
	assert.Equal(t, types.Int, fn.Params[1].Type)
}

func TestParseTopLevelVarDecl(t *testing.T) {
	prog, err := ParseSource("test.lc", `const pi: Float = 3.14;`)
	require.NoError(t, err)
	require.Len(t, prog.Declarations, 1)

	v, ok := prog.Declarations[0].(*ast.VarDecl)
	require.True(t, ok)
	assert.True(t, v.Constant)
	assert.Equal(t, types.Float, v.DeclaredTy)
	lit, ok := v.Initializer.(*ast.FloatLiteral)
	require.True(t, ok)
	assert.Equal(t, 3.14, lit.Value)
}

func TestParseArithmeticPrecedence(t *testing.T) {
	prog, err := ParseSource("test.lc", `
		fn f() -> Int {
			return 1 + 2 * 3;
		}
	`)
	require.NoError(t, err)
	fn := prog.Declarations[0].(*ast.FunctionDecl)
	ret := fn.Body[0].(*ast.ReturnStmt)
	top, ok := ret.Value.(*ast.BinaryExpr)
	require.True(t, ok)
	assert.Equal(t, "+", top.Op)
	assert.IsType(t, &ast.IntLiteral{}, top.Left)
	mul, ok := top.Right.(*ast.BinaryExpr)
	require.True(t, ok)
	assert.Equal(t, "*", mul.Op)
}

func TestParseIfWhileAndCallExpr(t *testing.T) {
	prog, err := ParseSource("test.lc", `
		fn fib(n: Int) -> Int {
			if n <= 1 {
				return n;
			} else {
				return fib(n - 1) + fib(n - 2);
			}
		}

		fn main() {
			var i: Int = 0;
			while i < 10 {
				print i;
				i := i + 1;
			}
		}
	`)
	require.NoError(t, err)
	require.Len(t, prog.Declarations, 2)

	fib := prog.Declarations[0].(*ast.FunctionDecl)
	ifStmt, ok := fib.Body[0].(*ast.IfStmt)
	require.True(t, ok)
	require.NotNil(t, ifStmt.Else)

	main := prog.Declarations[1].(*ast.FunctionDecl)
	require.Len(t, main.Body, 2)
	_, ok = main.Body[1].(*ast.WhileStmt)
	require.True(t, ok)
}

func TestParsedProgramPassesAnalysis(t *testing.T) {
	prog, err := ParseSource("test.lc", `
		fn square(x: Int) -> Int {
			return x * x;
		}

		fn main() {
			var total: Int = square(4);
			print total;
		}
	`)
	require.NoError(t, err)
	assert.NoError(t, analyzer.New().Analyze(prog))
}

func TestParseSyntaxErrorReturnsError(t *testing.T) {
	_, err := ParseSource("test.lc", `fn broken( {`)
	assert.Error(t, err)
}

func TestParseBareReturn(t *testing.T) {
	prog, err := ParseSource("test.lc", `
		fn f() {
			return;
		}
	`)
	require.NoError(t, err)
	fn := prog.Declarations[0].(*ast.FunctionDecl)
	ret := fn.Body[0].(*ast.ReturnStmt)
	assert.Nil(t, ret.Value)
}
