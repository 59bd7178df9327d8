package proof

// SemanticErrorKind is one constraint violation a record can raise during
// checking. The taxonomy mirrors dn-lib/src/proof.rs's SemanticError enum:
// one variant per named sub-constraint, grouped by the rule it belongs to.
type SemanticErrorKind int

const (
	// InternalError indicates a checker bug, never a proof defect.
	InternalError SemanticErrorKind = iota
	// IncorrectId: the record's id field does not match its position.
	IncorrectId

	// Hypothesis (Supposons)
	SuppCtxtOneMoreThenBefore
	SuppCtxtSameAsBefore
	SuppCtxtLastIsId
	SuppJustIsHyp

	// Discharge (Donc)
	DoncNotFirst
	DoncCtxtOneLessThenBefore
	DoncCtxtSameAsBefore
	DoncHypDifCons
	DoncHypNotMatching
	DoncConsNotMatching
	DoncFormulaIsImplies
	DoncJustifIsIImpl

	// Plain
	SimpleIsFirst
	SimpleCtxtSameAsBefore

	// IOrL
	IOrLPosLesser
	IOrLIncompatibleCtxt
	IOrLLeftNotMatching
	IOrLRightNotMatching
	IOrLFormulaIsOr

	// IOrR
	IOrRPosLesser
	IOrRIncompatibleCtxt
	IOrRLeftNotMatching
	IOrRRightNotMatching
	IOrRFormulaIsOr

	// EOr
	EOrA2CPosLesser
	EOrB2CPosLesser
	EOrAOBPosLesser
	EOrA2CIncompatibleCtxt
	EOrB2CIncompatibleCtxt
	EOrAOBIncompatibleCtxt
	EOrLeftNotMatching
	EOrRightNotMatching
	EOrFormulaIsOr
	EOrAFormulaNotMatching
	EOrBFormulaNotMatching
	EOrCFormulaNotMatchingConsequences
	EOrCFormulaNotMatchingEliminated
	EOrFormulasNotRightKind

	// IAnd
	IAndLeftPosLesser
	IAndRightPosLesser
	IAndLeftIncompatibleCtxt
	IAndRightIncompatibleCtxt
	IAndLeftNotMatching
	IAndRightNotMatching
	IAndFormulaIsAnd

	// EAndL / EAndR
	EAndPosLesser
	EAndIncompatibleCtxt
	EAndNotMatching
	EAndFormulaIsAnd

	// Hyp / IImpl used outside their statement kind
	HypNotSimple
	IImplNotSimple

	// EImpl
	EImplHypPosLesser
	EImplImplPosLesser
	EImplHypIncompatibleCtxt
	EImplImplIncompatibleCtxt
	EImplHypNotMatching
	EImplImplNotMatching
	EImplFormulaIsImpl

	// Efq
	EfqPosLesser
	EfqIncompatibleCtxt
	EfqFormulaIsBot

	// Raa
	RaaPosLesser
	RaaIncompatibleCtxt
	RaaFormulaIsNotNot
	RaaNotMatching
)

// SemanticError names the record position and the constraint it violated.
type SemanticError struct {
	RecordID int
	Kind     SemanticErrorKind
}

func (e SemanticError) Error() string {
	return e.Kind.String()
}

func (k SemanticErrorKind) String() string {
	switch k {
	case InternalError:
		return "internal checker error"
	case IncorrectId:
		return "record id does not match its position"
	case SuppCtxtOneMoreThenBefore:
		return "hypothesis context must have exactly one more element than the previous record's"
	case SuppCtxtSameAsBefore:
		return "hypothesis context must share its prefix with the previous record's context"
	case SuppCtxtLastIsId:
		return "hypothesis context's last element must be the record's own id"
	case SuppJustIsHyp:
		return "a hypothesis statement must be justified by Hyp"
	case DoncNotFirst:
		return "a discharge cannot be the first record"
	case DoncCtxtOneLessThenBefore:
		return "discharge context must have exactly one fewer element than the previous record's"
	case DoncCtxtSameAsBefore:
		return "discharge context must be a prefix of the previous record's context"
	case DoncHypDifCons:
		return "discharge hypothesis and consequence must be distinct records"
	case DoncHypNotMatching:
		return "discharge hypothesis formula does not match the linked hypothesis"
	case DoncConsNotMatching:
		return "discharge consequence formula does not match the linked consequence"
	case DoncFormulaIsImplies:
		return "discharge formula must be an implication"
	case DoncJustifIsIImpl:
		return "a discharge statement must be justified by IImpl"
	case SimpleIsFirst:
		return "a plain statement cannot be the first record"
	case SimpleCtxtSameAsBefore:
		return "plain statement context must equal the previous record's context"
	case IOrLPosLesser:
		return "IOrL: cited position must be lesser than this record's id"
	case IOrLIncompatibleCtxt:
		return "IOrL: cited record's context is incompatible"
	case IOrLLeftNotMatching:
		return "IOrL: left disjunct does not match the given formula"
	case IOrLRightNotMatching:
		return "IOrL: right disjunct does not match the cited formula"
	case IOrLFormulaIsOr:
		return "IOrL: the record's formula must be a disjunction"
	case IOrRPosLesser:
		return "IOrR: cited position must be lesser than this record's id"
	case IOrRIncompatibleCtxt:
		return "IOrR: cited record's context is incompatible"
	case IOrRLeftNotMatching:
		return "IOrR: left disjunct does not match the cited formula"
	case IOrRRightNotMatching:
		return "IOrR: right disjunct does not match the given formula"
	case IOrRFormulaIsOr:
		return "IOrR: the record's formula must be a disjunction"
	case EOrA2CPosLesser:
		return "EOr: a-to-c position must be lesser than this record's id"
	case EOrB2CPosLesser:
		return "EOr: b-to-c position must be lesser than this record's id"
	case EOrAOBPosLesser:
		return "EOr: a-or-b position must be lesser than this record's id"
	case EOrA2CIncompatibleCtxt:
		return "EOr: a-to-c record's context is incompatible"
	case EOrB2CIncompatibleCtxt:
		return "EOr: b-to-c record's context is incompatible"
	case EOrAOBIncompatibleCtxt:
		return "EOr: a-or-b record's context is incompatible"
	case EOrLeftNotMatching:
		return "EOr: left disjunct does not match"
	case EOrRightNotMatching:
		return "EOr: right disjunct does not match"
	case EOrFormulaIsOr:
		return "EOr: a-or-b formula must be a disjunction"
	case EOrAFormulaNotMatching:
		return "EOr: a-or-b's left disjunct does not match a-to-c's hypothesis"
	case EOrBFormulaNotMatching:
		return "EOr: a-or-b's right disjunct does not match b-to-c's hypothesis"
	case EOrCFormulaNotMatchingConsequences:
		return "EOr: a-to-c and b-to-c must share the same consequence"
	case EOrCFormulaNotMatchingEliminated:
		return "EOr: the shared consequence does not match the record's formula"
	case EOrFormulasNotRightKind:
		return "EOr: cited formulas must be Implies, Implies and Or"
	case IAndLeftPosLesser:
		return "IAnd: left position must be lesser than this record's id"
	case IAndRightPosLesser:
		return "IAnd: right position must be lesser than this record's id"
	case IAndLeftIncompatibleCtxt:
		return "IAnd: left record's context is incompatible"
	case IAndRightIncompatibleCtxt:
		return "IAnd: right record's context is incompatible"
	case IAndLeftNotMatching:
		return "IAnd: left conjunct does not match the cited formula"
	case IAndRightNotMatching:
		return "IAnd: right conjunct does not match the cited formula"
	case IAndFormulaIsAnd:
		return "IAnd: the record's formula must be a conjunction"
	case EAndPosLesser:
		return "EAndL/EAndR: cited position must be lesser than this record's id"
	case EAndIncompatibleCtxt:
		return "EAndL/EAndR: cited record's context is incompatible"
	case EAndNotMatching:
		return "EAndL/EAndR: extracted conjunct does not match the record's formula"
	case EAndFormulaIsAnd:
		return "EAndL/EAndR: cited formula must be a conjunction"
	case HypNotSimple:
		return "Hyp may not justify a plain statement"
	case IImplNotSimple:
		return "IImpl may not justify a plain statement"
	case EImplHypPosLesser:
		return "EImpl: hyp position must be lesser than this record's id"
	case EImplImplPosLesser:
		return "EImpl: implication position must be lesser than this record's id"
	case EImplHypIncompatibleCtxt:
		return "EImpl: hyp record's context is incompatible"
	case EImplImplIncompatibleCtxt:
		return "EImpl: implication record's context is incompatible"
	case EImplHypNotMatching:
		return "EImpl: implication's hypothesis does not match the cited hyp formula"
	case EImplImplNotMatching:
		return "EImpl: implication's consequence does not match the record's formula"
	case EImplFormulaIsImpl:
		return "EImpl: cited implication formula must be an implication"
	case EfqPosLesser:
		return "Efq: cited position must be lesser than this record's id"
	case EfqIncompatibleCtxt:
		return "Efq: cited record's context is incompatible"
	case EfqFormulaIsBot:
		return "Efq: cited formula must be Bottom"
	case RaaPosLesser:
		return "Raa: cited position must be lesser than this record's id"
	case RaaIncompatibleCtxt:
		return "Raa: cited record's context is incompatible"
	case RaaFormulaIsNotNot:
		return "Raa: cited formula must be a double negation"
	case RaaNotMatching:
		return "Raa: the un-negated formula does not match the record's formula"
	default:
		return "unknown semantic error"
	}
}
