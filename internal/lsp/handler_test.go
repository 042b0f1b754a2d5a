package lsp

import (
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiagnosticsForValidProgramIsEmpty(t *testing.T) {
	diags := diagnosticsFor("test.lc", `
		fn main() {
			print 1 + 2;
		}
	`)
	assert.Empty(t, diags)
}

func TestDiagnosticsForSyntaxErrorReportsParserSource(t *testing.T) {
	diags := diagnosticsFor("test.lc", `fn broken(`)
	require.Len(t, diags, 1)
	assert.Equal(t, "lucent-parser", *diags[0].Source)
}

func TestDiagnosticsForAnalysisErrorReportsAnalyzerSource(t *testing.T) {
	diags := diagnosticsFor("test.lc", `
		fn main() {
			print missing;
		}
	`)
	require.Len(t, diags, 1)
	assert.Equal(t, "lucent-analyzer", *diags[0].Source)
}

func TestURIToPathRoundTrips(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("URI shape differs on windows")
	}
	path, err := uriToPath("file:///tmp/example.lc")
	require.NoError(t, err)
	assert.Equal(t, "/tmp/example.lc", path)
}
