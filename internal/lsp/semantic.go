package lsp

import (
	"strconv"
	"strings"
)

// SemanticToken represents a single LSP semantic token entry.
// Line and StartChar are 0-based positions.
// TokenType is an index into SemanticTokenTypes.
// TokenModifiers is a bitmask based on SemanticTokenModifiers.
type SemanticToken struct {
	Line           uint32
	StartChar      uint32
	Length         uint32
	TokenType      int // index into SemanticTokenTypes
	TokenModifiers int // bitmask
}

// justifRuleNames lists the rule keywords a justification field may open
// with, used to recognise the keyword token at the start of that field.
var justifRuleNames = []string{
	"IOrL", "IOrR", "EOr", "IAnd", "EAndL", "EAndR",
	"Hyp", "IImpl", "EImpl", "Efq", "Raa",
}

// collectSemanticTokens tags each record line's id, ctxt, statement keyword
// ("Supposons"/"Donc"), and justification rule name and arguments. Record
// lines have no parsed-AST position information the way a Kanso contract's
// grammar nodes do, so this walks the raw field text directly rather than
// an AST, splitting on the same ';' delimiter record.Read uses.
func collectSemanticTokens(content string) []SemanticToken {
	var tokens []SemanticToken

	for lineNum, line := range strings.Split(content, "\n") {
		tokens = append(tokens, tokenizeLine(uint32(lineNum), line)...)
	}

	return tokens
}

func tokenizeLine(line uint32, text string) []SemanticToken {
	fields := strings.SplitN(text, ";", 4)
	if len(fields) != 4 {
		return nil
	}

	var tokens []SemanticToken
	offset := uint32(0)

	idField := fields[0]
	if _, err := strconv.Atoi(strings.TrimSpace(idField)); err == nil {
		tokens = append(tokens, makeToken(line, offset, idField, "number", 1))
	}
	offset += uint32(len(idField)) + 1

	ctxtField := fields[1]
	ctxtOffset := offset
	for _, seg := range strings.Split(ctxtField, ",") {
		if _, err := strconv.Atoi(seg); err == nil {
			tokens = append(tokens, makeToken(line, ctxtOffset, seg, "number", 0))
		}
		ctxtOffset += uint32(len(seg)) + 1
	}
	offset += uint32(len(ctxtField)) + 1

	stmtField := fields[2]
	for _, kw := range []string{"Supposons", "Donc"} {
		if strings.HasPrefix(stmtField, kw) {
			tokens = append(tokens, makeToken(line, offset, kw, "keyword", 0))
			break
		}
	}
	offset += uint32(len(stmtField)) + 1

	tokens = append(tokens, tokenizeJustif(line, offset, fields[3])...)

	return tokens
}

// tokenizeJustif tags a justification field's rule keyword and its
// whitespace-separated positional arguments (record positions are always
// plain integers; IOrL/IOrR's trailing formula argument is left untagged).
func tokenizeJustif(line, offset uint32, text string) []SemanticToken {
	var tokens []SemanticToken

	parts := strings.Fields(text)
	if len(parts) == 0 {
		return tokens
	}

	col := offset
	for i, part := range strings.SplitAfter(text, " ") {
		trimmed := strings.TrimSpace(part)
		if trimmed == "" {
			col += uint32(len(part))
			continue
		}

		if i == 0 {
			for _, name := range justifRuleNames {
				if trimmed == name {
					tokens = append(tokens, makeToken(line, col, trimmed, "keyword", 0))
					break
				}
			}
		} else if _, err := strconv.Atoi(trimmed); err == nil {
			tokens = append(tokens, makeToken(line, col, trimmed, "number", 0))
		}

		col += uint32(len(part))
	}

	return tokens
}

func makeToken(line, startChar uint32, value, tokenType string, decl int) SemanticToken {
	return SemanticToken{
		Line:           line,
		StartChar:      startChar,
		Length:         uint32(len(value)),
		TokenType:      indexOf(tokenType, SemanticTokenTypes),
		TokenModifiers: decl << indexOf("declaration", SemanticTokenModifiers),
	}
}

// indexOf returns the index of a string in a list, or -1 if not found.
func indexOf(target string, list []string) int {
	for i, v := range list {
		if v == target {
			return i
		}
	}
	return -1
}
