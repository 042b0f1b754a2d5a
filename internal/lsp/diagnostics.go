package lsp

import (
	"errors"

	"github.com/alecthomas/participle/v2"
	protocol "github.com/tliron/glsp/protocol_3_16"

	"lucent/internal/diagnostic"
	"lucent/internal/render"
)

func ptrSeverity(s protocol.DiagnosticSeverity) *protocol.DiagnosticSeverity { return &s }
func ptrString(s string) *string                                            { return &s }

// parseErrorDiagnostic converts a participle syntax error into an LSP
// diagnostic at the offending token's position; participle.Error is the
// interface both participle.ParseError and participle.UnexpectedTokenError
// implement.
func parseErrorDiagnostic(err error) protocol.Diagnostic {
	var perr participle.Error
	line, col := 1, 1
	if errors.As(err, &perr) {
		pos := perr.Position()
		line, col = pos.Line, pos.Column
	}
	return protocol.Diagnostic{
		Range:    pointRange(line, col),
		Severity: ptrSeverity(protocol.DiagnosticSeverityError),
		Source:   ptrString("lucent-parser"),
		Message:  err.Error(),
	}
}

// analyzerErrorDiagnostic converts an analyzer error into an LSP
// diagnostic. diagnostic.Diagnostic has no position, so this
// always ranges over the first character of the document, a documented
// simplification, not a bug: editors still surface the message, just not
// anchored at the exact offending token.
func analyzerErrorDiagnostic(err error) protocol.Diagnostic {
	return protocol.Diagnostic{
		Range:    pointRange(1, 1),
		Severity: ptrSeverity(protocol.DiagnosticSeverityError),
		Source:   ptrString(analyzerSource(err)),
		Message:  err.Error(),
	}
}

func analyzerSource(err error) string {
	var ie *diagnostic.InternalError
	if errors.As(err, &ie) {
		return "lucent-internal"
	}
	return "lucent-analyzer"
}

func pointRange(line, col int) protocol.Range {
	l := uint32(0)
	if line > 0 {
		l = uint32(line - 1)
	}
	c := uint32(0)
	if col > 0 {
		c = uint32(col - 1)
	}
	return protocol.Range{
		Start: protocol.Position{Line: l, Character: c},
		End:   protocol.Position{Line: l, Character: c + 1},
	}
}

// Format renders err with render.Diagnostic; exported for callers that want
// the same colored text cmd/lucentc prints.
func Format(sourceName string, err error) string {
	return render.Diagnostic(sourceName, err)
}
