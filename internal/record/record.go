// Package record parses one proof line into a Record: an id, a context, a
// statement, and a justification.
package record

import (
	"dn/internal/formula"
	"dn/internal/justif"
)

// Statement is the statement field of a record, tagged by which keyword (if
// any) introduced it.
type Statement struct {
	Kind    StatementKind
	Formula formula.Formula
}

// StatementKind distinguishes a plain assertion from a hypothesis or a
// discharge, per the "Supposons "/"Donc " line prefixes.
type StatementKind int

const (
	Plain StatementKind = iota
	Hypothesis
	Discharge
)

// Record is one line of a proof: `id;ctxt;stmt;justif`.
type Record struct {
	ID     int
	Ctxt   []int
	Stmt   Statement
	Justif *justif.Justification
}
