package record

import (
	"strconv"
	"strings"

	"dn/internal/formula"
	"dn/internal/justif"
)

// Read parses one proof line: `id;ctxt;stmt;justif`.
func Read(input string) (*Record, *RecordError) {
	fields := strings.Split(input, ";")
	if len(fields) < 4 {
		return nil, &RecordError{Kind: MissingField}
	}
	if len(fields) > 4 {
		return nil, &RecordError{Kind: TooManyFields}
	}

	id, err := readID(fields[0])
	if err != nil {
		return nil, err
	}
	ctxt, err := readCtxt(fields[1])
	if err != nil {
		return nil, err
	}
	stmt, err := readStmt(fields[2])
	if err != nil {
		return nil, err
	}
	just, jerr := justif.Read(fields[3])
	if jerr != nil {
		return nil, &RecordError{Kind: InvalidJustif, JustifErr: jerr}
	}

	return &Record{ID: id, Ctxt: ctxt, Stmt: stmt, Justif: just}, nil
}

func readID(input string) (int, *RecordError) {
	v, err := strconv.Atoi(input)
	if err != nil || v < 0 {
		return 0, &RecordError{Kind: InvalidID}
	}
	return v, nil
}

// readCtxt splits on commas, skipping empty segments, so an empty ctxt
// field is legal and yields an empty (non-nil) slice.
func readCtxt(input string) ([]int, *RecordError) {
	ctxt := make([]int, 0)
	for _, seg := range strings.Split(input, ",") {
		if seg == "" {
			continue
		}
		v, err := strconv.Atoi(seg)
		if err != nil || v < 0 {
			return nil, &RecordError{Kind: InvalidCtxt}
		}
		ctxt = append(ctxt, v)
	}
	return ctxt, nil
}

func readStmt(input string) (Statement, *RecordError) {
	kind := Plain
	body := input
	switch {
	case strings.HasPrefix(input, "Donc "):
		kind = Discharge
		body = input[len("Donc "):]
	case strings.HasPrefix(input, "Supposons "):
		kind = Hypothesis
		body = input[len("Supposons "):]
	}
	f, err := formula.Parse(body)
	if err != nil {
		return Statement{}, &RecordError{Kind: InvalidFormula, FormulaErr: err}
	}
	return Statement{Kind: kind, Formula: f}, nil
}
