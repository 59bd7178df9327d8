package formula

import "fmt"

// TokenizationErrorKind enumerates the formula-parsing failure taxonomy of
// spec.md §7.
type TokenizationErrorKind int

const (
	// InvalidCharacter: a character outside {⊤,⊥,a-zA-Z,¬,∨,∧,⇒,⇐,⇔,(,)}.
	InvalidCharacter TokenizationErrorKind = iota
	// UnmatchedOpeningParenthesis: a '(' with no matching ')'.
	UnmatchedOpeningParenthesis
	// UnmatchedClosingParenthesis: a ')' with no matching '('.
	UnmatchedClosingParenthesis
	// EmptyParenthesis: "()" with nothing between the parens.
	EmptyParenthesis
	// AFormulaIsMissing: an operator application popped an empty operand
	// stack (includes the empty-input case).
	AFormulaIsMissing
	// TooManyFormulas: more than one complete formula with nothing to
	// combine them.
	TooManyFormulas
	// OperatorWithoutRightHandside: an operator at the top of the stack
	// has nothing to its right to complete it.
	OperatorWithoutRightHandside
	// InvalidSubFormula: a parenthesised group closed with nothing valid
	// inside it to promote to a formula.
	InvalidSubFormula
	// InternalError: a parser invariant was violated. This indicates a
	// bug in the checker, never in the input.
	InternalError
)

// TokenizationError reports why a formula string failed to parse.
type TokenizationError struct {
	Kind     TokenizationErrorKind
	Position int  // 0-based character index into the input, when relevant
	Char     rune // the offending character, for InvalidCharacter
	Detail   int  // free-form marker, for InternalError
}

func (e *TokenizationError) Error() string {
	switch e.Kind {
	case InvalidCharacter:
		return fmt.Sprintf("invalid character %q at position %d", e.Char, e.Position)
	case UnmatchedOpeningParenthesis:
		return "unmatched opening parenthesis"
	case UnmatchedClosingParenthesis:
		return "unmatched closing parenthesis"
	case EmptyParenthesis:
		return "empty parenthesis"
	case AFormulaIsMissing:
		return "a formula is missing"
	case TooManyFormulas:
		return "too many formulas"
	case OperatorWithoutRightHandside:
		return "operator without right hand side"
	case InvalidSubFormula:
		return "invalid sub-formula"
	case InternalError:
		return fmt.Sprintf("internal parser error (%d)", e.Detail)
	default:
		return "unknown tokenization error"
	}
}
