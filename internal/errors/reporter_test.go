package errors

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"dn/internal/formula"
	"dn/internal/justif"
	"dn/internal/proof"
	"dn/internal/record"
)

func TestErrorReporterFormatsFormulaError(t *testing.T) {
	source := "1;0;Supposons a∨;Hyp"
	reporter := NewErrorReporter("proof.dn", source)

	_, tokErr := formula.Parse("a∨")
	assert.NotNil(t, tokErr)

	err := FormulaTokenizationError(tokErr, Position{Line: 1, Column: 17})
	formatted := reporter.FormatError(err)

	assert.Contains(t, formatted, "error["+ErrorOperatorWithoutRightHandside+"]")
	assert.Contains(t, formatted, "proof.dn:1:17")
}

func TestJustifReadErrorSuggestsNearMiss(t *testing.T) {
	_, readErr := justif.Read("IOrl 0 a")
	assert.NotNil(t, readErr)
	assert.Equal(t, justif.UnknownRule, readErr.Kind)

	err := JustifReadError(readErr, Position{Line: 2, Column: 10})
	assert.Equal(t, ErrorJustifUnknownRule, err.Code)
	assert.NotEmpty(t, err.Suggestions)
	assert.Contains(t, err.Suggestions[0].Message, "IOrL")
}

func TestRecordParseErrorUnwrapsFormulaCause(t *testing.T) {
	line := "0;;a∧;Hyp"
	_, recErr := record.Read(line)
	assert.NotNil(t, recErr)
	assert.Equal(t, record.InvalidFormula, recErr.Kind)

	err := RecordParseError(line, recErr, Position{Line: 1, Column: 1})
	assert.Equal(t, ErrorOperatorWithoutRightHandside, err.Code)
	// stmt is the third field ("0;;" is two fields wide), so the caret
	// should land past the id and ctxt fields, not at column 1.
	assert.Equal(t, 4, err.Position.Column)
}

func TestRecordParseErrorPointsAtJustifField(t *testing.T) {
	line := "0;;a;Bogus"
	_, recErr := record.Read(line)
	assert.NotNil(t, recErr)
	assert.Equal(t, record.InvalidJustif, recErr.Kind)

	err := RecordParseError(line, recErr, Position{Line: 1, Column: 1})
	assert.Equal(t, ErrorJustifUnknownRule, err.Code)
	assert.Equal(t, 6, err.Position.Column)
	assert.Equal(t, len("Bogus"), err.Length)
}

func TestFieldSpanLocatesEachField(t *testing.T) {
	line := "12;0,1;a∧b;IAnd 0 1"

	col, length := FieldSpan(line, FieldID)
	assert.Equal(t, 1, col)
	assert.Equal(t, 2, length)

	col, length = FieldSpan(line, FieldCtxt)
	assert.Equal(t, 4, col)
	assert.Equal(t, 3, length)

	col, length = FieldSpan(line, FieldStmt)
	assert.Equal(t, 8, col)
	assert.Equal(t, 3, length)

	col, length = FieldSpan(line, FieldJustif)
	assert.Equal(t, 12, col)
	assert.Equal(t, 8, length)
}

func TestFieldSpanBeyondLineEnd(t *testing.T) {
	col, length := FieldSpan("0;;a", FieldJustif)
	assert.Equal(t, len("0;;a")+1, col)
	assert.Equal(t, 1, length)
}

func TestSemanticRuleErrorNamesTheRecord(t *testing.T) {
	sem := proof.SemanticError{RecordID: 3, Kind: proof.IncorrectId}
	err := SemanticRuleError(sem, Position{Line: 4, Column: 1})

	assert.Equal(t, SemanticCode(int(proof.IncorrectId)), err.Code)
	assert.Contains(t, err.Notes, "record 3")
}

func TestGetErrorCategoryRanges(t *testing.T) {
	assert.Equal(t, "Formula Parsing", GetErrorCategory(ErrorInvalidCharacter))
	assert.Equal(t, "Record Parsing", GetErrorCategory(ErrorRecordMissingField))
	assert.Equal(t, "Justification Parsing", GetErrorCategory(ErrorJustifUnknownRule))
	assert.Equal(t, "Proof Checking", GetErrorCategory(SemanticCode(int(proof.IncorrectId))))
}
