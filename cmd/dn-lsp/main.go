// SPDX-License-Identifier: Apache-2.0
package main

import (
	"log"
	"os"

	"github.com/tliron/commonlog"
	protocol "github.com/tliron/glsp/protocol_3_16"
	"github.com/tliron/glsp/server"

	"dn/internal/lsp"
)

const lsName = "dn" // Name identifier for the language server

var (
	version = "0.0.1"        // Server version
	handler protocol.Handler // Protocol handler instance (wired up below)
)

func main() {
	// Configure debug logging (1 = debug level, nil = default logger)
	commonlog.Configure(1, nil)

	// Create a new instance of the DnHandler (the proof-checker handler)
	dnHandler := lsp.NewDnHandler()

	// Wire up the handler with specific LSP method implementations
	handler = protocol.Handler{
		Initialize:                     dnHandler.Initialize,
		Initialized:                    dnHandler.Initialized,
		Shutdown:                       dnHandler.Shutdown,
		TextDocumentDidOpen:            dnHandler.TextDocumentDidOpen,
		TextDocumentDidClose:           dnHandler.TextDocumentDidClose,
		TextDocumentDidChange:          dnHandler.TextDocumentDidChange,
		TextDocumentCompletion:         dnHandler.TextDocumentCompletion,
		TextDocumentSemanticTokensFull: dnHandler.TextDocumentSemanticTokensFull,
	}

	// Create a new GLSP (Go Language Server Protocol) server instance
	s := server.NewServer(&handler, lsName, false)

	log.Println("Starting dn LSP server...")

	// Start the server over standard input/output (used by most editors for LSP)
	err := s.RunStdio()
	if err != nil {
		log.Println("Error starting dn LSP server:", err)
		os.Exit(1)
	}
}
