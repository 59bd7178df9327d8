package proof

import (
	"dn/internal/formula"
	"dn/internal/justif"
	"dn/internal/record"
)

// checkSingleRecord validates one record against the records before it.
// Each rule first checks that its cited positions are lesser than id; the
// records before id have already been checked by earlier iterations of the
// caller's loop, whether or not they passed.
func (p *Proof) checkSingleRecord(id int) (SemanticErrorKind, bool) {
	if id < 0 || id >= len(p.records) {
		return InternalError, false
	}
	rec := p.records[id]

	if rec.ID != id {
		return IncorrectId, false
	}

	switch rec.Stmt.Kind {
	case record.Hypothesis:
		return p.checkHypothesis(id, rec)
	case record.Discharge:
		return p.checkDischarge(id, rec)
	default:
		return p.checkPlain(id, rec)
	}
}

func (p *Proof) checkHypothesis(id int, rec record.Record) (SemanticErrorKind, bool) {
	if id != 0 {
		prev := p.records[id-1]
		if len(rec.Ctxt) != len(prev.Ctxt)+1 {
			return SuppCtxtOneMoreThenBefore, false
		}
		if !sliceEqual(rec.Ctxt[:len(rec.Ctxt)-1], prev.Ctxt) {
			return SuppCtxtSameAsBefore, false
		}
		if rec.Ctxt[len(rec.Ctxt)-1] != rec.ID {
			return SuppCtxtLastIsId, false
		}
	} else {
		if len(rec.Ctxt) != 1 {
			return SuppCtxtOneMoreThenBefore, false
		}
		if rec.Ctxt[0] != rec.ID {
			return SuppCtxtLastIsId, false
		}
	}
	if rec.Justif.Kind != justif.Hyp {
		return SuppJustIsHyp, false
	}
	return 0, true
}

func (p *Proof) checkDischarge(id int, rec record.Record) (SemanticErrorKind, bool) {
	if rec.Justif.Kind != justif.IImpl {
		return DoncJustifIsIImpl, false
	}
	if id == 0 {
		return DoncNotFirst, false
	}
	cons := p.records[id-1]
	if len(cons.Ctxt) != len(rec.Ctxt)+1 {
		return DoncCtxtOneLessThenBefore, false
	}
	if !sliceEqual(cons.Ctxt[:len(rec.Ctxt)], rec.Ctxt) {
		return DoncCtxtSameAsBefore, false
	}

	hypPos := cons.Ctxt[len(cons.Ctxt)-1]
	if hypPos+2 > id {
		return DoncHypDifCons, false
	}
	hyp := p.records[hypPos]

	impl, ok := rec.Stmt.Formula.(*formula.Implies)
	if !ok {
		return DoncFormulaIsImplies, false
	}
	if !formula.Equal(impl.L, hyp.Stmt.Formula) {
		return DoncHypNotMatching, false
	}
	if !formula.Equal(impl.R, cons.Stmt.Formula) {
		return DoncConsNotMatching, false
	}
	return 0, true
}

func (p *Proof) checkPlain(id int, rec record.Record) (SemanticErrorKind, bool) {
	if id == 0 {
		return SimpleIsFirst, false
	}
	if !sliceEqual(rec.Ctxt, p.records[id-1].Ctxt) {
		return SimpleCtxtSameAsBefore, false
	}

	f := rec.Stmt.Formula
	j := rec.Justif

	switch j.Kind {
	case justif.IOrL:
		return p.checkIOrL(id, rec, f, j)
	case justif.IOrR:
		return p.checkIOrR(id, rec, f, j)
	case justif.EOr:
		return p.checkEOr(id, rec, f, j)
	case justif.IAnd:
		return p.checkIAnd(id, rec, f, j)
	case justif.EAndL:
		return p.checkEAndSide(id, rec, f, j.Pos, true)
	case justif.EAndR:
		return p.checkEAndSide(id, rec, f, j.Pos, false)
	case justif.Hyp:
		return HypNotSimple, false
	case justif.IImpl:
		return IImplNotSimple, false
	case justif.EImpl:
		return p.checkEImpl(id, rec, f, j)
	case justif.Efq:
		return p.checkEfq(id, rec, f, j)
	case justif.Raa:
		return p.checkRaa(id, rec, f, j)
	default:
		return InternalError, false
	}
}

func (p *Proof) checkIOrL(id int, rec record.Record, f formula.Formula, j *justif.Justification) (SemanticErrorKind, bool) {
	if j.Pos >= id {
		return IOrLPosLesser, false
	}
	right := p.records[j.Pos]
	if !CtxtCompatible(rec.Ctxt, right.Ctxt) {
		return IOrLIncompatibleCtxt, false
	}
	or, ok := f.(*formula.Or)
	if !ok {
		return IOrLFormulaIsOr, false
	}
	if !formula.Equal(or.L, j.Formula) {
		return IOrLLeftNotMatching, false
	}
	if !formula.Equal(or.R, right.Stmt.Formula) {
		return IOrLRightNotMatching, false
	}
	return 0, true
}

func (p *Proof) checkIOrR(id int, rec record.Record, f formula.Formula, j *justif.Justification) (SemanticErrorKind, bool) {
	if j.Pos >= id {
		return IOrRPosLesser, false
	}
	left := p.records[j.Pos]
	if !CtxtCompatible(rec.Ctxt, left.Ctxt) {
		return IOrRIncompatibleCtxt, false
	}
	or, ok := f.(*formula.Or)
	if !ok {
		return IOrRFormulaIsOr, false
	}
	if !formula.Equal(or.L, left.Stmt.Formula) {
		return IOrRLeftNotMatching, false
	}
	if !formula.Equal(or.R, j.Formula) {
		return IOrRRightNotMatching, false
	}
	return 0, true
}

func (p *Proof) checkEOr(id int, rec record.Record, f formula.Formula, j *justif.Justification) (SemanticErrorKind, bool) {
	if j.AToC >= id {
		return EOrA2CPosLesser, false
	}
	if j.BToC >= id {
		return EOrB2CPosLesser, false
	}
	if j.AOrB >= id {
		return EOrAOBPosLesser, false
	}
	aToC := p.records[j.AToC]
	bToC := p.records[j.BToC]
	aOrB := p.records[j.AOrB]
	if !CtxtCompatible(rec.Ctxt, aToC.Ctxt) {
		return EOrA2CIncompatibleCtxt, false
	}
	if !CtxtCompatible(rec.Ctxt, bToC.Ctxt) {
		return EOrB2CIncompatibleCtxt, false
	}
	if !CtxtCompatible(rec.Ctxt, aOrB.Ctxt) {
		return EOrAOBIncompatibleCtxt, false
	}

	atc, ok := aToC.Stmt.Formula.(*formula.Implies)
	if !ok {
		return EOrFormulasNotRightKind, false
	}
	btc, ok := bToC.Stmt.Formula.(*formula.Implies)
	if !ok {
		return EOrFormulasNotRightKind, false
	}
	aob, ok := aOrB.Stmt.Formula.(*formula.Or)
	if !ok {
		return EOrFormulasNotRightKind, false
	}

	if !formula.Equal(aob.L, atc.L) {
		return EOrAFormulaNotMatching, false
	}
	if !formula.Equal(aob.R, btc.L) {
		return EOrBFormulaNotMatching, false
	}
	if !formula.Equal(atc.R, btc.R) {
		return EOrCFormulaNotMatchingConsequences, false
	}
	if !formula.Equal(atc.R, f) {
		return EOrCFormulaNotMatchingEliminated, false
	}
	return 0, true
}

func (p *Proof) checkIAnd(id int, rec record.Record, f formula.Formula, j *justif.Justification) (SemanticErrorKind, bool) {
	if j.Left >= id {
		return IAndLeftPosLesser, false
	}
	if j.Right >= id {
		return IAndRightPosLesser, false
	}
	left := p.records[j.Left]
	right := p.records[j.Right]
	if !CtxtCompatible(rec.Ctxt, left.Ctxt) {
		return IAndLeftIncompatibleCtxt, false
	}
	if !CtxtCompatible(rec.Ctxt, right.Ctxt) {
		return IAndRightIncompatibleCtxt, false
	}
	and, ok := f.(*formula.And)
	if !ok {
		return IAndFormulaIsAnd, false
	}
	if !formula.Equal(and.L, left.Stmt.Formula) {
		return IAndLeftNotMatching, false
	}
	if !formula.Equal(and.R, right.Stmt.Formula) {
		return IAndRightNotMatching, false
	}
	return 0, true
}

func (p *Proof) checkEAndSide(id int, rec record.Record, f formula.Formula, pos int, left bool) (SemanticErrorKind, bool) {
	if pos >= id {
		return EAndPosLesser, false
	}
	and := p.records[pos]
	if !CtxtCompatible(rec.Ctxt, and.Ctxt) {
		return EAndIncompatibleCtxt, false
	}
	conj, ok := and.Stmt.Formula.(*formula.And)
	if !ok {
		return EAndFormulaIsAnd, false
	}
	side := conj.R
	if left {
		side = conj.L
	}
	if !formula.Equal(side, f) {
		return EAndNotMatching, false
	}
	return 0, true
}

func (p *Proof) checkEImpl(id int, rec record.Record, f formula.Formula, j *justif.Justification) (SemanticErrorKind, bool) {
	if j.Hyp >= id {
		return EImplHypPosLesser, false
	}
	if j.Implication >= id {
		return EImplImplPosLesser, false
	}
	hyp := p.records[j.Hyp]
	impl := p.records[j.Implication]
	if !CtxtCompatible(rec.Ctxt, hyp.Ctxt) {
		return EImplHypIncompatibleCtxt, false
	}
	if !CtxtCompatible(rec.Ctxt, impl.Ctxt) {
		return EImplImplIncompatibleCtxt, false
	}
	i, ok := impl.Stmt.Formula.(*formula.Implies)
	if !ok {
		return EImplFormulaIsImpl, false
	}
	if !formula.Equal(i.L, hyp.Stmt.Formula) {
		return EImplHypNotMatching, false
	}
	if !formula.Equal(i.R, f) {
		return EImplImplNotMatching, false
	}
	return 0, true
}

func (p *Proof) checkEfq(id int, rec record.Record, f formula.Formula, j *justif.Justification) (SemanticErrorKind, bool) {
	if j.Pos >= id {
		return EfqPosLesser, false
	}
	bot := p.records[j.Pos]
	if !CtxtCompatible(rec.Ctxt, bot.Ctxt) {
		return EfqIncompatibleCtxt, false
	}
	if _, ok := bot.Stmt.Formula.(*formula.Bottom); !ok {
		return EfqFormulaIsBot, false
	}
	return 0, true
}

func (p *Proof) checkRaa(id int, rec record.Record, f formula.Formula, j *justif.Justification) (SemanticErrorKind, bool) {
	if j.Pos >= id {
		return RaaPosLesser, false
	}
	nn := p.records[j.Pos]
	if !CtxtCompatible(rec.Ctxt, nn.Ctxt) {
		return RaaIncompatibleCtxt, false
	}
	outer, ok := nn.Stmt.Formula.(*formula.Not)
	if !ok {
		return RaaFormulaIsNotNot, false
	}
	inner, ok := outer.X.(*formula.Not)
	if !ok {
		return RaaFormulaIsNotNot, false
	}
	if !formula.Equal(inner.X, f) {
		return RaaNotMatching, false
	}
	return 0, true
}

func sliceEqual(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i, v := range a {
		if b[i] != v {
			return false
		}
	}
	return true
}
