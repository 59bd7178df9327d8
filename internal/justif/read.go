package justif

import (
	"strconv"
	"strings"

	"dn/internal/formula"
)

// Read parses a justification field: a rule name followed by its
// space-separated positional arguments.
func Read(input string) (*Justification, *ReadError) {
	fields := strings.Split(input, " ")
	rule := fields[0]
	if rule == "" {
		return nil, &ReadError{Kind: InputEmpty}
	}
	rest := fields[1:]

	var j Justification
	var err *ReadError
	var consumed int

	switch rule {
	case "IOrL":
		j.Kind = IOrL
		consumed, err = readPosFormula(rule, rest, &j.Pos, &j.Formula, "right-position", "right-formula")
	case "IOrR":
		j.Kind = IOrR
		consumed, err = readPosFormula(rule, rest, &j.Pos, &j.Formula, "left-position", "left-formula")
	case "EOr":
		j.Kind = EOr
		consumed, err = readThreeInts(rule, rest, &j.AToC, &j.BToC, &j.AOrB, "a-to-c", "b-to-c", "a-or-b")
	case "IAnd":
		j.Kind = IAnd
		consumed, err = readTwoInts(rule, rest, &j.Left, &j.Right, "left", "right")
	case "EAndL":
		j.Kind = EAndL
		consumed, err = readOneInt(rule, rest, &j.Pos, "reference")
	case "EAndR":
		j.Kind = EAndR
		consumed, err = readOneInt(rule, rest, &j.Pos, "reference")
	case "Hyp":
		j.Kind = Hyp
	case "IImpl":
		j.Kind = IImpl
	case "EImpl":
		j.Kind = EImpl
		consumed, err = readTwoInts(rule, rest, &j.Hyp, &j.Implication, "hyp", "implication")
	case "Efq":
		j.Kind = Efq
		consumed, err = readOneInt(rule, rest, &j.Pos, "reference")
	case "Raa":
		j.Kind = Raa
		consumed, err = readOneInt(rule, rest, &j.Pos, "reference")
	default:
		return nil, &ReadError{Kind: UnknownRule, Rule: rule}
	}
	if err != nil {
		return nil, err
	}
	if len(rest) > consumed {
		return nil, &ReadError{Kind: InputTooLarge, Rule: rule}
	}
	return &j, nil
}

func readOneInt(rule string, args []string, out *int, field string) (int, *ReadError) {
	v, err := parseUint(rule, args, 0, field)
	if err != nil {
		return 0, err
	}
	*out = v
	return 1, nil
}

func readTwoInts(rule string, args []string, a, b *int, fieldA, fieldB string) (int, *ReadError) {
	va, err := parseUint(rule, args, 0, fieldA)
	if err != nil {
		return 0, err
	}
	vb, err := parseUint(rule, args, 1, fieldB)
	if err != nil {
		return 0, err
	}
	*a, *b = va, vb
	return 2, nil
}

func readThreeInts(rule string, args []string, a, b, c *int, fieldA, fieldB, fieldC string) (int, *ReadError) {
	va, err := parseUint(rule, args, 0, fieldA)
	if err != nil {
		return 0, err
	}
	vb, err := parseUint(rule, args, 1, fieldB)
	if err != nil {
		return 0, err
	}
	vc, err := parseUint(rule, args, 2, fieldC)
	if err != nil {
		return 0, err
	}
	*a, *b, *c = va, vb, vc
	return 3, nil
}

func readPosFormula(rule string, args []string, pos *int, f *formula.Formula, posField, formulaField string) (int, *ReadError) {
	v, err := parseUint(rule, args, 0, posField)
	if err != nil {
		return 0, err
	}
	if len(args) < 2 {
		return 0, &ReadError{Kind: MissingArgument, Rule: rule, Field: formulaField}
	}
	parsed, tokErr := formula.Parse(args[1])
	if tokErr != nil {
		return 0, &ReadError{Kind: InvalidArgument, Rule: rule, Field: formulaField, Cause: tokErr}
	}
	*pos = v
	*f = parsed
	return 2, nil
}

func parseUint(rule string, args []string, index int, field string) (int, *ReadError) {
	if index >= len(args) {
		return 0, &ReadError{Kind: MissingArgument, Rule: rule, Field: field}
	}
	v, err := strconv.Atoi(args[index])
	if err != nil || v < 0 {
		return 0, &ReadError{Kind: InvalidArgument, Rule: rule, Field: field, Cause: err}
	}
	return v, nil
}
