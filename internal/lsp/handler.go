// Package lsp implements a minimal Language Server Protocol front end over
// the analyzer, using github.com/tliron/glsp (commonlog is configured by
// cmd/lucent-lsp; this package logs through the standard log package):
// one Handler value holding per-document state, wired to a small subset of
// the protocol's notification and request methods.
package lsp

import (
	"fmt"
	"log"
	"net/url"
	"path/filepath"
	"runtime"
	"strings"
	"sync"

	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"

	"lucent/internal/analyzer"
	"lucent/internal/parser"
)

// Handler holds each open document's text keyed by its filesystem path. It
// has no AST cache: every open/change event reparses and reanalyzes from
// scratch, which is cheap enough for a single-file language with no
// incremental compilation story.
type Handler struct {
	mu      sync.RWMutex
	content map[string]string
}

// NewHandler returns a ready-to-use Handler.
func NewHandler() *Handler {
	return &Handler{content: make(map[string]string)}
}

// Initialize advertises the subset of server capabilities this handler
// implements: full-document sync and diagnostics on open/change.
func (h *Handler) Initialize(ctx *glsp.Context, params *protocol.InitializeParams) (any, error) {
	log.Println("lucent-lsp: initialize")
	return &protocol.InitializeResult{
		Capabilities: protocol.ServerCapabilities{
			TextDocumentSync: &protocol.TextDocumentSyncOptions{
				OpenClose: ptrBool(true),
				Change:    ptrSyncKind(protocol.TextDocumentSyncKindFull),
			},
		},
	}, nil
}

func (h *Handler) Initialized(ctx *glsp.Context, params *protocol.InitializedParams) error {
	log.Println("lucent-lsp: initialized")
	return nil
}

func (h *Handler) Shutdown(ctx *glsp.Context) error {
	log.Println("lucent-lsp: shutdown")
	return nil
}

func (h *Handler) TextDocumentDidOpen(ctx *glsp.Context, params *protocol.DidOpenTextDocumentParams) error {
	h.setContent(params.TextDocument.URI, params.TextDocument.Text)
	h.publish(ctx, params.TextDocument.URI)
	return nil
}

func (h *Handler) TextDocumentDidChange(ctx *glsp.Context, params *protocol.DidChangeTextDocumentParams) error {
	for _, change := range params.ContentChanges {
		if whole, ok := change.(protocol.TextDocumentContentChangeEventWhole); ok {
			h.setContent(params.TextDocument.URI, whole.Text)
		}
	}
	h.publish(ctx, params.TextDocument.URI)
	return nil
}

func (h *Handler) TextDocumentDidClose(ctx *glsp.Context, params *protocol.DidCloseTextDocumentParams) error {
	path, err := uriToPath(params.TextDocument.URI)
	if err != nil {
		return err
	}
	h.mu.Lock()
	delete(h.content, path)
	h.mu.Unlock()
	return nil
}

func (h *Handler) setContent(uri protocol.DocumentUri, text string) {
	path, err := uriToPath(uri)
	if err != nil {
		log.Printf("lucent-lsp: %v", err)
		return
	}
	h.mu.Lock()
	h.content[path] = text
	h.mu.Unlock()
}

// publish reparses and reanalyzes the document at uri and sends the result,
// zero or one diagnostic since analysis is fail-fast, as a
// textDocument/publishDiagnostics notification. Publishing an empty slice on
// success clears any diagnostic a previous version of the document left on
// the client.
func (h *Handler) publish(ctx *glsp.Context, uri protocol.DocumentUri) {
	path, err := uriToPath(uri)
	if err != nil {
		log.Printf("lucent-lsp: %v", err)
		return
	}
	h.mu.RLock()
	text := h.content[path]
	h.mu.RUnlock()

	diagnostics := diagnosticsFor(path, text)
	ctx.Notify(protocol.ServerTextDocumentPublishDiagnostics, &protocol.PublishDiagnosticsParams{
		URI:         uri,
		Diagnostics: diagnostics,
	})
}

func diagnosticsFor(path, text string) []protocol.Diagnostic {
	prog, err := parser.ParseSource(path, text)
	if err != nil {
		return []protocol.Diagnostic{parseErrorDiagnostic(err)}
	}
	if err := analyzer.New().Analyze(prog); err != nil {
		return []protocol.Diagnostic{analyzerErrorDiagnostic(err)}
	}
	return []protocol.Diagnostic{}
}

func uriToPath(rawURI protocol.DocumentUri) (string, error) {
	u, err := url.Parse(string(rawURI))
	if err != nil {
		return "", fmt.Errorf("invalid URI %s: %w", rawURI, err)
	}
	path := u.Path
	if runtime.GOOS == "windows" && strings.HasPrefix(path, "/") && len(path) > 2 && path[2] == ':' {
		path = path[1:]
	}
	return filepath.FromSlash(path), nil
}

func ptrBool(b bool) *bool { return &b }

func ptrSyncKind(k protocol.TextDocumentSyncKind) *protocol.TextDocumentSyncKind { return &k }
