// SPDX-License-Identifier: Apache-2.0
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"

	dnerrors "dn/internal/errors"
	"dn/internal/proof"
	"dn/repl"
)

func main() {
	if len(os.Args) < 2 {
		repl.Start(os.Stdin, os.Stdout)
		return
	}

	path := os.Args[1]

	source, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to read file: %v\n", err)
		os.Exit(1)
	}

	p, readErr := proof.ReadProof(string(source))
	if readErr != nil {
		reportReadError(path, string(source), readErr)
		os.Exit(1)
	}

	if err := p.Check(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	state := p.State()
	reportState(path, string(source), state)

	if state.State == proof.HasSemanticErrors {
		os.Exit(1)
	}
	color.Green("✅ %s is valid (%d records)", path, len(p.Records()))
}

func reportState(path, source string, state proof.CheckUpResult) {
	if state.State != proof.HasSemanticErrors {
		return
	}

	reporter := dnerrors.NewErrorReporter(path, source)
	for _, semErr := range state.Errors {
		pos := dnerrors.Position{Line: semErr.RecordID + 1, Column: 1}
		compilerErr := dnerrors.SemanticRuleError(semErr, pos)
		fmt.Print(reporter.FormatError(compilerErr))
	}
}

// reportReadError prints a caret-style parse error for a proof file that
// failed to parse at all.
func reportReadError(path, source string, err *proof.ReadError) {
	pos := dnerrors.Position{Line: err.Line + 1, Column: 1}
	line := lineAt(source, err.Line)
	compilerErr := dnerrors.RecordParseError(line, err.Content, pos)
	reporter := dnerrors.NewErrorReporter(path, source)
	fmt.Print(reporter.FormatError(compilerErr))
}

// lineAt returns the 0-indexed line of source, or "" if out of range.
func lineAt(source string, n int) string {
	lines := strings.Split(source, "\n")
	if n < 0 || n >= len(lines) {
		return ""
	}
	return lines[n]
}
