// Command lucent-lsp runs the Lucent language server over stdio.
package main

import (
	"log"
	"os"

	"github.com/tliron/commonlog"
	protocol "github.com/tliron/glsp/protocol_3_16"
	"github.com/tliron/glsp/server"

	"lucent/internal/lsp"
)

const serverName = "lucent-lsp"

var version = "0.1.0"

func main() {
	commonlog.Configure(1, nil)

	h := lsp.NewHandler()
	handler := protocol.Handler{
		Initialize:            h.Initialize,
		Initialized:           h.Initialized,
		Shutdown:              h.Shutdown,
		TextDocumentDidOpen:   h.TextDocumentDidOpen,
		TextDocumentDidChange: h.TextDocumentDidChange,
		TextDocumentDidClose:  h.TextDocumentDidClose,
	}

	s := server.NewServer(&handler, serverName, false)

	log.Printf("starting %s %s over stdio", serverName, version)
	if err := s.RunStdio(); err != nil {
		log.Println("lucent-lsp:", err)
		os.Exit(1)
	}
}
