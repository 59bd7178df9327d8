package formula

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseAndGroupingBindsTighterThanOr(t *testing.T) {
	f, err := Parse("c∧(a∨b)")
	assert.Nil(t, err)
	want := &And{L: &Variable{'c'}, R: &Or{L: &Variable{'a'}, R: &Variable{'b'}}}
	assert.True(t, Equal(want, f), "got %s", f)
}

func TestParseImpliesIsRightAssociative(t *testing.T) {
	f, err := Parse("m⇒n⇒p")
	assert.Nil(t, err)
	want := &Implies{L: &Variable{'m'}, R: &Implies{L: &Variable{'n'}, R: &Variable{'p'}}}
	assert.True(t, Equal(want, f), "got %s", f)
}

func TestParseEquivIsLeftAssociative(t *testing.T) {
	f, err := Parse("j⇔k⇔l")
	assert.Nil(t, err)
	want := &Equiv{L: &Equiv{L: &Variable{'j'}, R: &Variable{'k'}}, R: &Variable{'l'}}
	assert.True(t, Equal(want, f), "got %s", f)
}

func TestParseDoubleNegation(t *testing.T) {
	f, err := Parse("¬¬a")
	assert.Nil(t, err)
	want := &Not{X: &Not{X: &Variable{'a'}}}
	assert.True(t, Equal(want, f), "got %s", f)
}

func TestParseNotBindsTighterThanAnd(t *testing.T) {
	f, err := Parse("¬a∧b")
	assert.Nil(t, err)
	want := &And{L: &Not{X: &Variable{'a'}}, R: &Variable{'b'}}
	assert.True(t, Equal(want, f), "got %s", f)
}

func TestParseTopAndBottom(t *testing.T) {
	f, err := Parse("⊤∨⊥")
	assert.Nil(t, err)
	want := &Or{L: &Top{}, R: &Bottom{}}
	assert.True(t, Equal(want, f))
}

func TestParseRoundTripProperty(t *testing.T) {
	inputs := []string{"a", "¬a", "(a∨b)", "a∧(b∨c)", "(a⇒b)⇔(¬b⇒¬a)"}
	for _, in := range inputs {
		f, err := Parse(in)
		assert.Nil(t, err, in)
		again, err := Parse(f.String())
		assert.Nil(t, err, f.String())
		assert.True(t, Equal(f, again), "round-trip mismatch for %s -> %s", in, f.String())
	}
}

func TestParseEmptyInputIsAFormulaMissing(t *testing.T) {
	_, err := Parse("")
	assert.NotNil(t, err)
	assert.Equal(t, AFormulaIsMissing, err.Kind)
}

func TestParseEmptyParenthesis(t *testing.T) {
	_, err := Parse("()")
	assert.NotNil(t, err)
	assert.Equal(t, EmptyParenthesis, err.Kind)
}

func TestParseUnmatchedOpeningParenthesis(t *testing.T) {
	_, err := Parse("(a")
	assert.NotNil(t, err)
	assert.Equal(t, UnmatchedOpeningParenthesis, err.Kind)
}

func TestParseUnmatchedClosingParenthesisAfterAtom(t *testing.T) {
	_, err := Parse("a)")
	assert.NotNil(t, err)
	assert.Equal(t, UnmatchedClosingParenthesis, err.Kind)
}

func TestParseUnmatchedClosingParenthesisAlone(t *testing.T) {
	_, err := Parse(")")
	assert.NotNil(t, err)
	assert.Equal(t, UnmatchedClosingParenthesis, err.Kind)
}

func TestParseUnmatchedClosingParenthesisAfterBinary(t *testing.T) {
	_, err := Parse("a∧b)")
	assert.NotNil(t, err)
	assert.Equal(t, UnmatchedClosingParenthesis, err.Kind)
}

func TestParseOperatorWithoutRightHandside(t *testing.T) {
	_, err := Parse("a∧")
	assert.NotNil(t, err)
	assert.Equal(t, OperatorWithoutRightHandside, err.Kind)
}

func TestParseOperatorWithoutRightHandsideBeforeCloseParen(t *testing.T) {
	_, err := Parse("(a∧)")
	assert.NotNil(t, err)
	assert.Equal(t, OperatorWithoutRightHandside, err.Kind)
}

func TestParseTooManyFormulas(t *testing.T) {
	_, err := Parse("(a)(b)")
	assert.NotNil(t, err)
	assert.Equal(t, TooManyFormulas, err.Kind)
}

func TestParseTooManyFormulasAdjacentVariables(t *testing.T) {
	_, err := Parse("ab")
	assert.NotNil(t, err)
	assert.Equal(t, TooManyFormulas, err.Kind)
}

func TestParseInvalidCharacterReportsCharacterPosition(t *testing.T) {
	_, err := Parse("a∧5")
	assert.NotNil(t, err)
	assert.Equal(t, InvalidCharacter, err.Kind)
	assert.Equal(t, 2, err.Position)
	assert.Equal(t, '5', err.Char)
}

func TestParseInvalidCharacterPositionCountsRunesNotBytes(t *testing.T) {
	_, err := Parse("¬¬¬5")
	assert.NotNil(t, err)
	assert.Equal(t, InvalidCharacter, err.Kind)
	assert.Equal(t, 3, err.Position)
}
