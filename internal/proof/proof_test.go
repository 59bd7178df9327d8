package proof

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// validImplicationProof derives a⇒a the long way: IImpl's h+2≤i constraint
// forbids discharging directly after the hypothesis it closes, so a genuine
// (distinct) consequence record sits between them.
const validImplicationProof = "0;0;Supposons a;Hyp\n" +
	"1;0;a∧a;IAnd 0 0\n" +
	"2;0;a;EAndL 1\n" +
	"3;;Donc a⇒a;IImpl"

func TestValidImplicationProof(t *testing.T) {
	p, err := ReadProof(validImplicationProof)
	assert.Nil(t, err)
	assert.Nil(t, p.Check())
	assert.Equal(t, Valid, p.State().State)
}

func TestIncorrectIdReportedAtFirstOffendingRecord(t *testing.T) {
	p, err := ReadProof("0;0;Supposons a;Hyp\n2;0,2;a;Hyp")
	assert.Nil(t, err)
	assert.Nil(t, p.Check())
	st := p.State()
	assert.Equal(t, HasSemanticErrors, st.State)
	assert.Equal(t, 1, st.FirstError)
	assert.Equal(t, IncorrectId, st.Errors[0].Kind)
}

func TestEImplConsequenceNotMatchingRaisesEImplImplNotMatching(t *testing.T) {
	p, err := ReadProof("0;0;Supposons ⊥;Hyp\n" +
		"1;0;a⇒b;Efq 0\n" +
		"2;0;a;Efq 0\n" +
		"3;0;c;EImpl 2 1")
	assert.Nil(t, err)
	assert.Nil(t, p.Check())
	st := p.State()
	assert.Equal(t, HasSemanticErrors, st.State)
	assert.Equal(t, 3, st.FirstError)
	assert.Equal(t, EImplImplNotMatching, st.Errors[0].Kind)
}

func TestEImplValid(t *testing.T) {
	p, err := ReadProof("0;0;Supposons ⊥;Hyp\n" +
		"1;0;a⇒b;Efq 0\n" +
		"2;0;a;Efq 0\n" +
		"3;0;b;EImpl 2 1")
	assert.Nil(t, err)
	assert.Nil(t, p.Check())
	assert.Equal(t, Valid, p.State().State)
}

func TestAddRecordDemotesValidToValidUntil(t *testing.T) {
	p, err := ReadProof(validImplicationProof)
	assert.Nil(t, err)
	assert.Nil(t, p.Check())
	assert.Equal(t, Valid, p.State().State)

	jerr := p.ImportRecord("4;;a;EAndL 1")
	assert.Nil(t, jerr)
	st := p.State()
	assert.Equal(t, ValidUntil, st.State)
	assert.Equal(t, 4, st.ValidCount)
}

func TestCheckOnEmptyProofIsNoop(t *testing.T) {
	p := &Proof{}
	assert.Nil(t, p.Check())
	assert.Equal(t, NotChecked, p.State().State)
}

func TestCheckUpToPartialProof(t *testing.T) {
	p, err := ReadProof(validImplicationProof)
	assert.Nil(t, err)
	assert.Nil(t, p.CheckUpTo(0))
	st := p.State()
	assert.Equal(t, ValidUntil, st.State)
	assert.Equal(t, 1, st.ValidCount)
}

func TestIOrLAndIOrR(t *testing.T) {
	p, err := ReadProof("0;0;Supposons a;Hyp\n" +
		"1;0;a∨b;IOrR 0 b\n" +
		"2;0;b∨a;IOrL 0 b")
	assert.Nil(t, err)
	assert.Nil(t, p.Check())
	assert.Equal(t, Valid, p.State().State)
}

func TestEAndLAndEAndR(t *testing.T) {
	p, err := ReadProof("0;0;Supposons a∧b;Hyp\n" +
		"1;0;a;EAndL 0\n" +
		"2;0;b;EAndR 0")
	assert.Nil(t, err)
	assert.Nil(t, p.Check())
	assert.Equal(t, Valid, p.State().State)
}

func TestEfqDerivesAnyFormula(t *testing.T) {
	p, err := ReadProof("0;0;Supposons ⊥;Hyp\n1;0;a;Efq 0")
	assert.Nil(t, err)
	assert.Nil(t, p.Check())
	assert.Equal(t, Valid, p.State().State)
}

func TestRaaStripsDoubleNegation(t *testing.T) {
	p, err := ReadProof("0;0;Supposons ¬¬a;Hyp\n1;0;a;Raa 0")
	assert.Nil(t, err)
	assert.Nil(t, p.Check())
	assert.Equal(t, Valid, p.State().State)
}

func TestDischargeRejectsNonImplicationFormula(t *testing.T) {
	p, err := ReadProof("0;0;Supposons a;Hyp\n" +
		"1;0;a∧a;IAnd 0 0\n" +
		"2;0;a;EAndL 1\n" +
		"3;;Donc a;IImpl")
	assert.Nil(t, err)
	assert.Nil(t, p.Check())
	st := p.State()
	assert.Equal(t, HasSemanticErrors, st.State)
	assert.Equal(t, 3, st.FirstError)
	assert.Equal(t, DoncFormulaIsImplies, st.Errors[0].Kind)
}

func TestHypStatementWithWrongJustifierFails(t *testing.T) {
	p, err := ReadProof("0;0;Supposons a;IImpl")
	assert.Nil(t, err)
	assert.Nil(t, p.Check())
	st := p.State()
	assert.Equal(t, HasSemanticErrors, st.State)
	assert.Equal(t, SuppJustIsHyp, st.Errors[0].Kind)
}
