// Package repl SPDX-License-Identifier: Apache-2.0
package repl

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/fatih/color"

	dnerrors "dn/internal/errors"
	"dn/internal/proof"
	"dn/internal/record"
	"dn/internal/replcmd"
)

const PROMPT = "dn> "

const helpText = `:load "path"     replace the session proof with a file's records
:check [N]       check the whole proof, or only up to record N
:append <rec>    append a raw record line, e.g. :append 4;;a;EAndL 1
:context         print the context stack of the last record
:help            print this message
:quit            exit the session`

// Start runs the REPL loop. Unlike the teacher's Monkey REPL, which
// re-lexes and re-parses a fresh program on every line, this one accumulates
// one proof across the whole session: that is the reason an incremental
// checker exists at all.
func Start(in io.Reader, out io.Writer) {
	scanner := bufio.NewScanner(in)
	session := &Proof{}

	for {
		fmt.Fprint(out, PROMPT)
		if !scanner.Scan() {
			return
		}

		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		if strings.HasPrefix(line, ":") {
			if quit := session.handleCommand(out, line[1:]); quit {
				return
			}
			continue
		}

		session.appendLine(out, line)
	}
}

// Proof wraps a *proof.Proof with the REPL's reporting conventions.
type Proof struct {
	proof *proof.Proof
}

func (s *Proof) handleCommand(out io.Writer, line string) (quit bool) {
	if replcmd.IsAppend(line) {
		cmd, err := replcmd.ParseAppend(line)
		if err != nil {
			color.New(color.FgRed).Fprintln(out, err)
			return false
		}
		s.appendLine(out, cmd.Record)
		return false
	}

	cmd, err := replcmd.Parse(line)
	if err != nil {
		color.New(color.FgRed).Fprintf(out, "unrecognised command: %s\n", line)
		return false
	}

	switch {
	case cmd.Load != nil:
		s.load(out, cmd.Load.Path)
	case cmd.Check != nil:
		s.check(out, cmd.Check.Upto)
	case cmd.Context != nil:
		s.printContext(out)
	case cmd.Help != nil:
		fmt.Fprintln(out, helpText)
	case cmd.Quit != nil:
		return true
	}
	return false
}

func (s *Proof) load(out io.Writer, path string) {
	content, err := os.ReadFile(path)
	if err != nil {
		color.New(color.FgRed).Fprintf(out, "failed to read %s: %v\n", path, err)
		return
	}

	p, readErr := proof.ReadProof(string(content))
	if readErr != nil {
		reportReadError(out, path, string(content), readErr)
		return
	}

	s.proof = p
	color.New(color.FgGreen).Fprintf(out, "loaded %d records from %s\n", len(p.Records()), path)
}

func (s *Proof) appendLine(out io.Writer, line string) {
	if s.proof == nil {
		s.proof = &proof.Proof{}
	}
	if err := s.proof.ImportRecord(line); err != nil {
		reportReadError(out, "<stdin>", line, err)
		return
	}
	s.check(out, nil)
}

func (s *Proof) check(out io.Writer, upto *int) {
	if s.proof == nil {
		color.New(color.FgYellow).Fprintln(out, "no proof loaded yet")
		return
	}

	var err error
	if upto != nil {
		err = s.proof.CheckUpTo(*upto)
	} else {
		err = s.proof.Check()
	}
	if err != nil {
		color.New(color.FgRed).Fprintln(out, err)
		return
	}

	reportState(out, s.proof.State())
}

func (s *Proof) printContext(out io.Writer) {
	if s.proof == nil || len(s.proof.Records()) == 0 {
		color.New(color.FgYellow).Fprintln(out, "no records yet")
		return
	}
	records := s.proof.Records()
	last := records[len(records)-1]

	ctxt := make([]string, len(last.Ctxt))
	for i, c := range last.Ctxt {
		ctxt[i] = strconv.Itoa(c)
	}
	fmt.Fprintf(out, "[%s]\n", strings.Join(ctxt, ", "))
}

func reportState(out io.Writer, state proof.CheckUpResult) {
	switch state.State {
	case proof.Valid:
		color.New(color.FgGreen, color.Bold).Fprintln(out, "✅ valid")
	case proof.ValidUntil:
		color.New(color.FgYellow).Fprintf(out, "valid up to record %d\n", state.ValidCount-1)
	case proof.HasSemanticErrors:
		reporter := dnerrors.NewErrorReporter("<proof>", "")
		for _, semErr := range state.Errors {
			pos := dnerrors.Position{Line: semErr.RecordID + 1, Column: 1}
			compilerErr := dnerrors.SemanticRuleError(semErr, pos)
			fmt.Fprint(out, reporter.FormatError(compilerErr))
		}
	case proof.NotChecked:
		color.New(color.FgYellow).Fprintln(out, "not checked")
	}
}

func reportReadError(out io.Writer, filename, source string, err error) {
	var pos dnerrors.Position
	var compilerErr dnerrors.CompilerError

	switch e := err.(type) {
	case *proof.ReadError:
		pos = dnerrors.Position{Line: e.Line + 1, Column: 1}
		line := ""
		if lines := strings.Split(source, "\n"); e.Line >= 0 && e.Line < len(lines) {
			line = lines[e.Line]
		}
		compilerErr = dnerrors.RecordParseError(line, e.Content, pos)
	case *record.RecordError:
		pos = dnerrors.Position{Line: 1, Column: 1}
		compilerErr = dnerrors.RecordParseError(source, e, pos)
	default:
		color.New(color.FgRed).Fprintln(out, err)
		return
	}

	reporter := dnerrors.NewErrorReporter(filename, source)
	fmt.Fprint(out, reporter.FormatError(compilerErr))
}
