package lsp

import (
	"fmt"
	"strings"

	protocol "github.com/tliron/glsp/protocol_3_16"

	dnerrors "dn/internal/errors"
	"dn/internal/proof"
)

// ReadErrorToDiagnostic converts a whole-proof parse failure into a single
// diagnostic anchored at the offending line. content is the full document
// text, used to locate the specific field at fault within that line.
func ReadErrorToDiagnostic(err *proof.ReadError, content string) protocol.Diagnostic {
	pos := dnerrors.Position{Line: err.Line + 1, Column: 1}
	line := ""
	if lines := strings.Split(content, "\n"); err.Line >= 0 && err.Line < len(lines) {
		line = lines[err.Line]
	}
	compilerErr := dnerrors.RecordParseError(line, err.Content, pos)
	return compilerErrorToDiagnostic(compilerErr, "dn-reader")
}

// SemanticErrorsToDiagnostics converts a checked proof's per-record
// SemanticErrors into diagnostics, one per offending record, anchored at
// that record's line (lines and records both start at 0, so the mapping is
// a straight +1).
func SemanticErrorsToDiagnostics(errs []proof.SemanticError) []protocol.Diagnostic {
	diagnostics := make([]protocol.Diagnostic, 0, len(errs))
	for _, semErr := range errs {
		pos := dnerrors.Position{Line: semErr.RecordID + 1, Column: 1}
		compilerErr := dnerrors.SemanticRuleError(semErr, pos)
		diagnostics = append(diagnostics, compilerErrorToDiagnostic(compilerErr, "dn-checker"))
	}
	return diagnostics
}

func compilerErrorToDiagnostic(err dnerrors.CompilerError, source string) protocol.Diagnostic {
	line := uint32(0)
	if err.Position.Line > 0 {
		line = uint32(err.Position.Line - 1)
	}
	startChar := uint32(0)
	if err.Position.Column > 0 {
		startChar = uint32(err.Position.Column - 1)
	}
	length := uint32(err.Length)
	if length == 0 {
		length = 1
	}

	message := err.Message
	if err.Code != "" {
		message = fmt.Sprintf("[%s] %s", err.Code, err.Message)
	}

	return protocol.Diagnostic{
		Range: protocol.Range{
			Start: protocol.Position{Line: line, Character: startChar},
			End:   protocol.Position{Line: line, Character: startChar + length},
		},
		Severity: ptrSeverity(levelToSeverity(err.Level)),
		Source:   ptrString(source),
		Message:  message,
	}
}

func levelToSeverity(level dnerrors.ErrorLevel) protocol.DiagnosticSeverity {
	switch level {
	case dnerrors.Warning:
		return protocol.DiagnosticSeverityWarning
	case dnerrors.Note:
		return protocol.DiagnosticSeverityInformation
	case dnerrors.Help:
		return protocol.DiagnosticSeverityHint
	default:
		return protocol.DiagnosticSeverityError
	}
}

func ptrSeverity(s protocol.DiagnosticSeverity) *protocol.DiagnosticSeverity {
	return &s
}

func ptrString(s string) *string {
	return &s
}
