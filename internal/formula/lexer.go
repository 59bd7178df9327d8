package formula

// lexeme is a single tokenized character of formula surface syntax.
type lexeme struct {
	kind lexemeKind
	v    byte // for lexVariable
}

type lexemeKind int

const (
	lexTop lexemeKind = iota
	lexBottom
	lexVariable
	lexNot
	lexOr
	lexAnd
	lexImplies
	lexRLImplies
	lexEquiv
	lexOpenParen
	lexCloseParen
)

// tokenize maps every rune of input to a lexeme, one pass, failing fast on
// the first character outside the fixed alphabet of spec.md §4.1.
func tokenize(input string) ([]lexeme, *TokenizationError) {
	lexemes := make([]lexeme, 0, len(input))
	pos := 0
	for _, c := range input {
		switch {
		case c == '⊤':
			lexemes = append(lexemes, lexeme{kind: lexTop})
		case c == '⊥':
			lexemes = append(lexemes, lexeme{kind: lexBottom})
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z':
			lexemes = append(lexemes, lexeme{kind: lexVariable, v: byte(c)})
		case c == '¬':
			lexemes = append(lexemes, lexeme{kind: lexNot})
		case c == '∨':
			lexemes = append(lexemes, lexeme{kind: lexOr})
		case c == '∧':
			lexemes = append(lexemes, lexeme{kind: lexAnd})
		case c == '⇒':
			lexemes = append(lexemes, lexeme{kind: lexImplies})
		case c == '⇐':
			lexemes = append(lexemes, lexeme{kind: lexRLImplies})
		case c == '⇔':
			lexemes = append(lexemes, lexeme{kind: lexEquiv})
		case c == '(':
			lexemes = append(lexemes, lexeme{kind: lexOpenParen})
		case c == ')':
			lexemes = append(lexemes, lexeme{kind: lexCloseParen})
		default:
			return nil, &TokenizationError{Kind: InvalidCharacter, Position: pos, Char: c}
		}
		pos++
	}
	return lexemes, nil
}
