// Package proof implements the natural-deduction proof checker: reading a
// sequence of records and validating each one against the records it
// cites.
package proof

import (
	"errors"
	"fmt"
	"strings"

	"dn/internal/record"
)

// ReadError reports which line of a multi-line proof failed to parse.
type ReadError struct {
	Line    int
	Content *record.RecordError
}

func (e *ReadError) Error() string {
	return fmt.Sprintf("line %d: %v", e.Line, e.Content)
}

func (e *ReadError) Unwrap() error { return e.Content }

// State is the coarse-grained status of a Proof's last check.
type State int

const (
	// NotChecked: no check has run since the proof was created.
	NotChecked State = iota
	// Valid: every record checked clean.
	Valid
	// ValidUntil: records [0, ValidCount) checked clean and the records
	// after them have not been checked, either because CheckUpTo stopped
	// short of the end or because records were added after a Valid check.
	ValidUntil
	// HasSemanticErrors: at least one record failed to check.
	HasSemanticErrors
)

// CheckUpResult is the result of the most recent check, mirroring
// spec.md's NotChecked/Valid/ValidUntil(k)/SemanticErrors states.
type CheckUpResult struct {
	State      State
	ValidCount int             // meaningful when State == ValidUntil
	FirstError int             // meaningful when State == HasSemanticErrors
	Errors     []SemanticError // meaningful when State == HasSemanticErrors
}

// Proof is a sequence of records together with the result of the last
// check performed over them.
type Proof struct {
	records []record.Record
	result  CheckUpResult
}

// ReadProof parses a whole proof, one record per line.
func ReadProof(input string) (*Proof, *ReadError) {
	records := make([]record.Record, 0)
	for i, line := range strings.Split(input, "\n") {
		r, err := record.Read(line)
		if err != nil {
			return nil, &ReadError{Line: i, Content: err}
		}
		records = append(records, *r)
	}
	return &Proof{records: records, result: CheckUpResult{State: NotChecked}}, nil
}

// ImportRecord parses a single line and appends it to the proof.
func (p *Proof) ImportRecord(input string) *ReadError {
	r, err := record.Read(input)
	if err != nil {
		return &ReadError{Line: 0, Content: err}
	}
	p.AddRecord(*r)
	return nil
}

// AddRecord appends a pre-parsed record. A proof previously found fully
// Valid becomes ValidUntil at its old length, since the new record has
// never been checked.
func (p *Proof) AddRecord(r record.Record) {
	if p.result.State == Valid {
		p.result = CheckUpResult{State: ValidUntil, ValidCount: len(p.records)}
	}
	p.records = append(p.records, r)
}

// State returns the result of the last check.
func (p *Proof) State() CheckUpResult {
	return p.result
}

// Records returns the proof's records in order. Callers must not mutate the
// returned slice.
func (p *Proof) Records() []record.Record {
	return p.records
}

// errNoSuchRecord is returned by CheckUpTo for an out-of-range id.
var errNoSuchRecord = errors.New("no such record")

// CheckUpTo checks records [0, id] and updates State accordingly.
func (p *Proof) CheckUpTo(id int) error {
	if id < 0 || id >= len(p.records) {
		return errNoSuchRecord
	}

	erred := false
	firstError := 0
	var errs []SemanticError
	for i := 0; i <= id; i++ {
		if kind, ok := p.checkSingleRecord(i); !ok {
			if !erred {
				firstError = i
				erred = true
			}
			errs = append(errs, SemanticError{RecordID: i, Kind: kind})
		}
	}

	switch {
	case erred:
		p.result = CheckUpResult{State: HasSemanticErrors, FirstError: firstError, Errors: errs}
	case id+1 == len(p.records):
		p.result = CheckUpResult{State: Valid}
	default:
		p.result = CheckUpResult{State: ValidUntil, ValidCount: id + 1}
	}
	return nil
}

// Check checks the whole proof.
func (p *Proof) Check() error {
	if len(p.records) == 0 {
		return nil
	}
	return p.CheckUpTo(len(p.records) - 1)
}
