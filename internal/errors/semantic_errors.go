package errors

import (
	"fmt"
	"strings"

	"dn/internal/formula"
	"dn/internal/justif"
	"dn/internal/proof"
	"dn/internal/record"
)

// ruleNames lists every justification rule this checker recognises, used to
// suggest a correction when a proof names an unknown one.
var ruleNames = []string{
	"IOrL", "IOrR", "EOr", "IAnd", "EAndL", "EAndR",
	"Hyp", "IImpl", "EImpl", "Efq", "Raa",
}

// FormulaTokenizationError converts a formula parse failure into a
// presentable diagnostic.
func FormulaTokenizationError(err *formula.TokenizationError, pos Position) CompilerError {
	code := formulaErrorCode(err.Kind)
	builder := NewSemanticError(code, err.Error(), pos)

	switch err.Kind {
	case formula.UnmatchedOpeningParenthesis:
		builder = builder.WithSuggestion("add a closing ')' to match this '('")
	case formula.UnmatchedClosingParenthesis:
		builder = builder.WithSuggestion("remove this ')' or add a matching '(' before it")
	case formula.EmptyParenthesis:
		builder = builder.WithSuggestion("put a formula between the parentheses, e.g. '(a)'")
	case formula.OperatorWithoutRightHandside:
		builder = builder.WithSuggestion("give the operator a right-hand operand")
	case formula.TooManyFormulas:
		builder = builder.WithNote("adjacent formulas must be joined by an operator")
	case formula.InvalidCharacter:
		builder = builder.WithNote("the formula alphabet is ⊤ ⊥ a-z A-Z ¬ ∨ ∧ ⇒ ⇐ ⇔ ( )")
	}

	return builder.Build()
}

func formulaErrorCode(kind formula.TokenizationErrorKind) string {
	switch kind {
	case formula.InvalidCharacter:
		return ErrorInvalidCharacter
	case formula.UnmatchedOpeningParenthesis:
		return ErrorUnmatchedOpeningParenthesis
	case formula.UnmatchedClosingParenthesis:
		return ErrorUnmatchedClosingParenthesis
	case formula.EmptyParenthesis:
		return ErrorEmptyParenthesis
	case formula.AFormulaIsMissing:
		return ErrorAFormulaIsMissing
	case formula.TooManyFormulas:
		return ErrorTooManyFormulas
	case formula.OperatorWithoutRightHandside:
		return ErrorOperatorWithoutRightHandside
	case formula.InvalidSubFormula:
		return ErrorInvalidSubFormula
	default:
		return ErrorInternalParserError
	}
}

// RecordParseError converts a record-line parse failure into a presentable
// diagnostic, unwrapping the nested formula/justification error when present
// so the underlying cause is never swallowed. line is the raw
// `id;ctxt;stmt;justif` text that failed, used to point the caret at the
// specific field at fault instead of the start of the line.
func RecordParseError(line string, err *record.RecordError, pos Position) CompilerError {
	switch err.Kind {
	case record.InvalidFormula:
		col, length := FieldSpan(line, FieldStmt)
		pos.Column = col
		compilerErr := FormulaTokenizationError(err.FormulaErr, pos)
		compilerErr.Length = length
		return compilerErr
	case record.InvalidJustif:
		col, length := FieldSpan(line, FieldJustif)
		pos.Column = col
		compilerErr := JustifReadError(err.JustifErr, pos)
		compilerErr.Length = length
		return compilerErr
	}

	code := recordErrorCode(err.Kind)
	var length int
	switch err.Kind {
	case record.InvalidID:
		pos.Column, length = FieldSpan(line, FieldID)
	case record.InvalidCtxt:
		pos.Column, length = FieldSpan(line, FieldCtxt)
	default:
		length = len([]rune(line))
		if length == 0 {
			length = 1
		}
	}

	builder := NewSemanticError(code, err.Error(), pos).WithLength(length)
	switch err.Kind {
	case record.MissingField:
		builder = builder.WithNote("a record line is id;ctxt;stmt;justif")
	case record.TooManyFields:
		builder = builder.WithNote("unescaped ';' inside stmt or justif will split the line wrongly")
	case record.InvalidID:
		builder = builder.WithSuggestion("the id field must be a non-negative integer")
	case record.InvalidCtxt:
		builder = builder.WithSuggestion("ctxt is a comma-separated list of non-negative integers")
	}
	return builder.Build()
}

func recordErrorCode(kind record.RecordErrorKind) string {
	switch kind {
	case record.MissingField:
		return ErrorRecordMissingField
	case record.TooManyFields:
		return ErrorRecordTooManyFields
	case record.InvalidID:
		return ErrorRecordInvalidID
	case record.InvalidCtxt:
		return ErrorRecordInvalidCtxt
	case record.InvalidFormula:
		return ErrorRecordInvalidFormula
	default:
		return ErrorRecordInvalidJustif
	}
}

// JustifReadError converts a justification parse failure into a
// presentable diagnostic, suggesting near-miss rule names (edit distance
// at most 2) when the rule is unknown.
func JustifReadError(err *justif.ReadError, pos Position) CompilerError {
	code := justifErrorCode(err.Kind)
	builder := NewSemanticError(code, err.Error(), pos)

	if err.Kind == justif.UnknownRule {
		similar := findSimilarNames(err.Rule, ruleNames)
		if len(similar) > 0 {
			builder = builder.WithSuggestion(fmt.Sprintf("did you mean '%s'?", strings.Join(similar, "' or '")))
		}
		builder = builder.WithHelp("valid rules: " + strings.Join(ruleNames, ", "))
	}

	return builder.Build()
}

func justifErrorCode(kind justif.ReadErrorKind) string {
	switch kind {
	case justif.InputEmpty:
		return ErrorJustifInputEmpty
	case justif.UnknownRule:
		return ErrorJustifUnknownRule
	case justif.InputTooLarge:
		return ErrorJustifInputTooLarge
	case justif.MissingArgument:
		return ErrorJustifMissingArgument
	default:
		return ErrorJustifInvalidArgument
	}
}

// SemanticRuleError converts a proof-checking failure into a presentable
// diagnostic naming the record and the constraint it violated.
func SemanticRuleError(err SemanticError, pos Position) CompilerError {
	return NewSemanticError(SemanticCode(int(err.Kind)), err.Error(), pos).
		WithNote(fmt.Sprintf("record %d", err.RecordID)).
		Build()
}

// SemanticError is an alias for proof.SemanticError, the argument type of
// SemanticRuleError.
type SemanticError = proof.SemanticError

func findSimilarNames(target string, candidates []string) []string {
	var similar []string
	for _, candidate := range candidates {
		if levenshteinDistance(target, candidate) <= 2 {
			similar = append(similar, candidate)
		}
	}
	return similar
}

// levenshteinDistance computes the edit distance between two strings, used
// to suggest a near-miss rule name for a typo'd justification.
func levenshteinDistance(a, b string) int {
	if len(a) == 0 {
		return len(b)
	}
	if len(b) == 0 {
		return len(a)
	}

	matrix := make([][]int, len(a)+1)
	for i := range matrix {
		matrix[i] = make([]int, len(b)+1)
	}
	for i := 0; i <= len(a); i++ {
		matrix[i][0] = i
	}
	for j := 0; j <= len(b); j++ {
		matrix[0][j] = j
	}

	for i := 1; i <= len(a); i++ {
		for j := 1; j <= len(b); j++ {
			cost := 0
			if a[i-1] != b[j-1] {
				cost = 1
			}
			matrix[i][j] = min3(
				matrix[i-1][j]+1,
				matrix[i][j-1]+1,
				matrix[i-1][j-1]+cost,
			)
		}
	}
	return matrix[len(a)][len(b)]
}

func min3(a, b, c int) int {
	if a < b {
		if a < c {
			return a
		}
		return c
	}
	if b < c {
		return b
	}
	return c
}
