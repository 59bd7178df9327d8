package justif

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"dn/internal/formula"
)

func TestReadIOrLLegal(t *testing.T) {
	j, err := Read("IOrL 1 ¬x")
	assert.Nil(t, err)
	assert.Equal(t, IOrL, j.Kind)
	assert.Equal(t, 1, j.Pos)
	want, _ := formula.Parse("¬x")
	assert.True(t, formula.Equal(want, j.Formula))
}

func TestReadIOrLMissingArgument(t *testing.T) {
	_, err := Read("IOrL")
	assert.NotNil(t, err)
	assert.Equal(t, MissingArgument, err.Kind)
	assert.Equal(t, "right-position", err.Field)
}

func TestReadIOrLInvalidPosition(t *testing.T) {
	_, err := Read("IOrL -1 x")
	assert.NotNil(t, err)
	assert.Equal(t, InvalidArgument, err.Kind)
}

func TestReadEOr(t *testing.T) {
	j, err := Read("EOr 0 1 2")
	assert.Nil(t, err)
	assert.Equal(t, EOr, j.Kind)
	assert.Equal(t, 0, j.AToC)
	assert.Equal(t, 1, j.BToC)
	assert.Equal(t, 2, j.AOrB)
}

func TestReadHypTakesNoArguments(t *testing.T) {
	j, err := Read("Hyp")
	assert.Nil(t, err)
	assert.Equal(t, Hyp, j.Kind)
}

func TestReadHypWithTrailingTokenIsTooLarge(t *testing.T) {
	_, err := Read("Hyp 1")
	assert.NotNil(t, err)
	assert.Equal(t, InputTooLarge, err.Kind)
}

func TestReadUnknownRule(t *testing.T) {
	_, err := Read("Bogus 1")
	assert.NotNil(t, err)
	assert.Equal(t, UnknownRule, err.Kind)
}

func TestReadRwrtIsUnknownRule(t *testing.T) {
	// The source grammar recognises a dormant `Rwrt` token with no checker
	// semantics; per spec this port treats it as an unknown rule.
	_, err := Read("Rwrt 1")
	assert.NotNil(t, err)
	assert.Equal(t, UnknownRule, err.Kind)
}

func TestReadEmptyInput(t *testing.T) {
	_, err := Read("")
	assert.NotNil(t, err)
	assert.Equal(t, InputEmpty, err.Kind)
}

func TestReadEImplLegal(t *testing.T) {
	j, err := Read("EImpl 0 1")
	assert.Nil(t, err)
	assert.Equal(t, EImpl, j.Kind)
	assert.Equal(t, 0, j.Hyp)
	assert.Equal(t, 1, j.Implication)
}
