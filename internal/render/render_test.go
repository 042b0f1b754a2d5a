package render

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"lucent/internal/diagnostic"
	"lucent/internal/types"
)

func TestDiagnosticMessageIncludesName(t *testing.T) {
	d := &diagnostic.Diagnostic{Kind: diagnostic.UndeclaredIdentifier, Name: "x"}
	out := Diagnostic("test.lc", d)
	assert.Contains(t, out, "x")
	assert.Contains(t, out, "test.lc")
}

func TestInvalidSignatureMessageListsTypes(t *testing.T) {
	d := &diagnostic.Diagnostic{
		Kind:          diagnostic.InvalidSignature,
		Name:          "f",
		ExpectedTypes: []types.Type{types.Int, types.Bool},
		ActualTypes:   []types.Type{types.Int, types.Float},
	}
	out := message(d)
	assert.Contains(t, out, "int, bool")
	assert.Contains(t, out, "int, float")
}

func TestInternalErrorRendersDistinctHeader(t *testing.T) {
	out := Diagnostic("test.lc", &diagnostic.InternalError{Message: "AST root is nil"})
	assert.Contains(t, out, "internal error")
}

func TestNonDiagnosticErrorFallsBackToItsOwnMessage(t *testing.T) {
	out := Diagnostic("test.lc", errors.New("unexpected token EOF"))
	assert.Contains(t, out, "unexpected token EOF")
}
