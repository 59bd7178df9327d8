// Package replcmd parses the ':'-prefixed meta-commands a dn session
// accepts alongside raw proof record lines: :load, :check, :append,
// :context, :quit, :help.
package replcmd

import (
	"fmt"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

// Command is one parsed meta-command. Exactly one of the command pointer
// fields below is set, selected by the command's leading keyword.
type Command struct {
	Pos lexer.Position

	Load    *LoadCommand    `"load" @@`
	Check   *CheckCommand   `| "check" @@`
	Context *ContextCommand `| "context" @@`
	Quit    *QuitCommand    `| "quit" @@`
	Help    *HelpCommand    `| "help" @@`
}

// LoadCommand replaces the session's proof with the contents of a file:
// :load "proof.dn"
type LoadCommand struct {
	Pos  lexer.Position
	Path string `@String`
}

// CheckCommand checks the session's proof, optionally only up to (and
// including) record Upto: :check or :check 3
type CheckCommand struct {
	Pos  lexer.Position
	Upto *int `@Int?`
}

// ContextCommand prints the context stack of the session's last record:
// :context
type ContextCommand struct {
	Pos lexer.Position
}

// QuitCommand ends the session: :quit
type QuitCommand struct {
	Pos lexer.Position
}

// HelpCommand prints the list of meta-commands: :help
type HelpCommand struct {
	Pos lexer.Position
}

// AppendCommand appends a raw record line to the session's proof:
// :append 4;;a;EAndL 1
//
// Its payload is never run through this package's lexer. A record line's
// alphabet (';', the logic connectives, unquoted rule names and integers)
// would collide with the Command grammar above, and the payload already
// has its own grammar in package record — so ParseAppend recognises the
// ":append " prefix and takes everything after it verbatim, and Parse
// rejects it.
type AppendCommand struct {
	Record string
}

var cmdLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "String", Pattern: `"[^"]*"`},
	{Name: "Int", Pattern: `[0-9]+`},
	{Name: "Ident", Pattern: `[a-zA-Z]+`},
	{Name: "Whitespace", Pattern: `[ \t]+`},
})

var cmdParser = participle.MustBuild[Command](
	participle.Lexer(cmdLexer),
	participle.Elide("Whitespace"),
	participle.Unquote("String"),
)

const appendPrefix = "append "

// Parse parses one meta-command line, with the leading ':' already
// stripped by the caller. An ":append ..." line is not parsed here and
// yields an error; ParseAppend handles it (see AppendCommand for why).
func Parse(line string) (*Command, error) {
	if strings.HasPrefix(line, appendPrefix) {
		return nil, fmt.Errorf("use ParseAppend for %q commands", "append")
	}
	return cmdParser.ParseString("", line)
}

// IsAppend reports whether a meta-command line (':' already stripped) is an
// :append command.
func IsAppend(line string) bool {
	return strings.HasPrefix(line, appendPrefix)
}

// ParseAppend extracts an :append command's raw record-line payload.
func ParseAppend(line string) (*AppendCommand, error) {
	if !IsAppend(line) {
		return nil, fmt.Errorf("not an append command: %q", line)
	}
	return &AppendCommand{Record: strings.TrimPrefix(line, appendPrefix)}, nil
}
