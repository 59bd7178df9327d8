package lsp

import (
	"encoding/json"
	"fmt"
	"log"
	"net/url"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"

	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"

	"dn/internal/proof"
)

// SemanticTokenTypes is the set of token categories this server tags, in
// the order referenced by SemanticToken.TokenType.
var SemanticTokenTypes = []string{
	"keyword",
	"number",
	"variable",
	"operator",
}

// SemanticTokenModifiers is the set of token modifiers this server tags.
var SemanticTokenModifiers = []string{
	"declaration",
}

// DnHandler implements the LSP server handlers for the proof-record
// language: one open proof document per URI, each backed by its own
// *proof.Proof checked on every change.
type DnHandler struct {
	mu      sync.RWMutex
	content map[string]string
	proofs  map[string]*proof.Proof
}

// NewDnHandler creates and returns a new DnHandler instance.
func NewDnHandler() *DnHandler {
	return &DnHandler{
		content: make(map[string]string),
		proofs:  make(map[string]*proof.Proof),
	}
}

// Initialize responds to the LSP client's initialize request and advertises the server's capabilities
func (h *DnHandler) Initialize(ctx *glsp.Context, params *protocol.InitializeParams) (any, error) {
	log.Println("LSP Initialize called")

	return &protocol.InitializeResult{
		Capabilities: protocol.ServerCapabilities{
			TextDocumentSync: &protocol.TextDocumentSyncOptions{
				OpenClose: ptrBool(true), // notify on open/close events
				Change:    ptrSyncKind(protocol.TextDocumentSyncKindFull),
			},
			CompletionProvider: &protocol.CompletionOptions{
				ResolveProvider: ptrBool(false), // no additional detail resolution yet
			},
			SemanticTokensProvider: &protocol.SemanticTokensOptions{
				Legend: protocol.SemanticTokensLegend{
					TokenTypes:     SemanticTokenTypes,
					TokenModifiers: SemanticTokenModifiers,
				},
				Full: ptrBool(true), // support full-document semantic token requests
			},
		},
	}, nil
}

// Initialized is called after the client receives the server's capabilities and completes initialization
func (h *DnHandler) Initialized(ctx *glsp.Context, params *protocol.InitializedParams) error {
	log.Println("dn LSP Initialized")
	return nil
}

// Shutdown handles the LSP shutdown request
func (h *DnHandler) Shutdown(ctx *glsp.Context) error {
	log.Println("dn LSP Shutdown")
	return nil
}

// TextDocumentDidOpen handles file open notifications from the editor
func (h *DnHandler) TextDocumentDidOpen(ctx *glsp.Context, params *protocol.DidOpenTextDocumentParams) error {
	log.Printf("Opened file: %s\n", params.TextDocument.URI)

	diagnostics, err := h.updateProof(params.TextDocument.URI)
	if err != nil {
		return fmt.Errorf("failed to check proof: %w", err)
	}

	sendDiagnosticNotification(ctx, params.TextDocument.URI, diagnostics)

	return nil
}

// TextDocumentDidClose handles file close notifications from the editor
func (h *DnHandler) TextDocumentDidClose(context *glsp.Context, params *protocol.DidCloseTextDocumentParams) error {
	log.Printf("Closed file: %s\n", params.TextDocument.URI)

	rawURI := params.TextDocument.URI

	path, err := uriToPath(rawURI)
	if err != nil {
		return fmt.Errorf("failed to convert URI %s: %w", rawURI, err)
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.content, path)
	delete(h.proofs, path)

	return nil
}

// TextDocumentDidChange handles file change notifications from the editor
func (h *DnHandler) TextDocumentDidChange(ctx *glsp.Context, params *protocol.DidChangeTextDocumentParams) error {
	log.Printf("Changed file: %s\n", params.TextDocument.URI)

	diagnostics, err := h.updateProof(params.TextDocument.URI)
	if err != nil {
		return fmt.Errorf("failed to check proof: %w", err)
	}

	sendDiagnosticNotification(ctx, params.TextDocument.URI, diagnostics)

	return nil
}

// TextDocumentCompletion handles completion requests (currently returns empty list)
func (h *DnHandler) TextDocumentCompletion(ctx *glsp.Context, params *protocol.CompletionParams) (interface{}, error) {
	return &protocol.CompletionList{
		IsIncomplete: false,
		Items:        []protocol.CompletionItem{},
	}, nil
}

// TextDocumentSemanticTokensFull handles semantic token requests for the entire document
func (h *DnHandler) TextDocumentSemanticTokensFull(ctx *glsp.Context, params *protocol.SemanticTokensParams) (*protocol.SemanticTokens, error) {
	log.Println("TextDocumentSemanticTokensFull called for:", params.TextDocument.URI)

	path, err := uriToPath(params.TextDocument.URI)
	if err != nil {
		return nil, fmt.Errorf("failed to convert URI %s: %w", params.TextDocument.URI, err)
	}

	content, ok := h.getOrReadContent(path)
	if !ok {
		raw, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read file %s: %w", path, err)
		}
		content = string(raw)
	}

	tokens := collectSemanticTokens(content)

	var data []uint32
	var prevLine, prevStart uint32

	for _, token := range tokens {
		deltaLine := token.Line - prevLine
		var deltaStart uint32
		if deltaLine == 0 {
			deltaStart = token.StartChar - prevStart
		} else {
			deltaStart = token.StartChar
		}

		data = append(data, deltaLine, deltaStart, token.Length, uint32(token.TokenType), uint32(token.TokenModifiers))

		prevLine = token.Line
		prevStart = token.StartChar
	}

	return &protocol.SemanticTokens{
		Data: data,
	}, nil
}

// getOrReadContent returns the cached content for an already-opened document.
func (h *DnHandler) getOrReadContent(path string) (string, bool) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	content, ok := h.content[path]
	return content, ok
}

// updateProof re-reads the document from disk, re-parses and re-checks its
// proof, storing the new content/*proof.Proof pair and returning the
// diagnostics for its current state. A parse failure yields a single
// diagnostic for the offending line and leaves the proof's old state in
// place; a parse success replaces it.
func (h *DnHandler) updateProof(rawURI protocol.DocumentUri) ([]protocol.Diagnostic, error) {
	path, err := uriToPath(rawURI)
	if err != nil {
		return nil, fmt.Errorf("failed to convert URI %s: %w", rawURI, err)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", path, err)
	}

	h.mu.Lock()
	h.content[path] = string(content)
	h.mu.Unlock()

	p, readErr := proof.ReadProof(string(content))
	if readErr != nil {
		return []protocol.Diagnostic{ReadErrorToDiagnostic(readErr, string(content))}, nil
	}

	if err := p.Check(); err != nil {
		return nil, err
	}

	h.mu.Lock()
	h.proofs[path] = p
	h.mu.Unlock()

	state := p.State()
	if state.State != proof.HasSemanticErrors {
		return nil, nil
	}
	return SemanticErrorsToDiagnostics(state.Errors), nil
}

// Convert URI to platform-local file path
func uriToPath(rawURI string) (string, error) {
	u, err := url.Parse(rawURI)
	if err != nil {
		return "", fmt.Errorf("invalid URI %s: %w", rawURI, err)
	}

	path := u.Path

	// On Windows, remove leading slash (e.g., /C:/...) -> C:/...
	if runtime.GOOS == "windows" && strings.HasPrefix(path, "/") && len(path) > 3 && path[2] == ':' {
		path = path[1:]
	}

	// Normalize to platform-specific separators
	return filepath.FromSlash(path), nil
}

func sendDiagnosticNotification(ctx *glsp.Context, uri protocol.URI, diagnostics []protocol.Diagnostic) {
	if diagnostics == nil {
		diagnostics = []protocol.Diagnostic{}
	}

	diagnosticsJSON, err := json.MarshalIndent(diagnostics, "", "  ")
	if err != nil {
		fmt.Println("Failed to marshal diagnostics:", err)
		return
	}

	log.Println("Sending diagnostics:", string(diagnosticsJSON))

	ctx.Notify(protocol.ServerTextDocumentPublishDiagnostics, &protocol.PublishDiagnosticsParams{
		URI:         uri,
		Diagnostics: diagnostics,
	})
}

func ptrBool(b bool) *bool {
	return &b
}

func ptrSyncKind(k protocol.TextDocumentSyncKind) *protocol.TextDocumentSyncKind {
	return &k
}
