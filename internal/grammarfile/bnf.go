// Package grammarfile loads a small line-oriented BNF text format into
// a grammar.Grammar, so the CLI and tests can exercise non-trivial
// grammars without hand-building Grammar values in Go.
//
// Format: `LHS -> RHS1 RHS2 ... | RHS1 ... ;` per line, where each RHS
// token is a bareword (classified as non-terminal if it is some rule's
// LHS, terminal otherwise) or a quoted literal (always terminal), and
// the reserved literal ε marks an ε-production. The first LHS
// encountered is the start symbol unless overridden by a leading
// `%start NAME` directive.
package grammarfile

import (
	"fmt"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"

	"lexforge/internal/grammar"
)

// file is the participle struct-tag grammar for the BNF text format,
// built the same way the teacher's interpreter parses its own
// statement language: a package-level participle.MustBuild[T]() over an
// AST of struct tags.
type file struct {
	Start *string `parser:"('%start' @Ident)?"`
	Rules []*rule `parser:"@@*"`
}

type rule struct {
	Left string `parser:"@Ident '->'"`
	Alts []*alt `parser:"@@ ('|' @@)* ';'"`
}

type alt struct {
	Symbols []*symbol `parser:"@@*"`
}

type symbol struct {
	Literal *string `parser:"@String"`
	Bare    *string `parser:"| @Ident"`
}

var bnfLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "String", Pattern: `"[^"]*"|'[^']*'`},
	{Name: "Arrow", Pattern: `->`},
	{Name: "Punct", Pattern: `[|;]`},
	{Name: "Ident", Pattern: `[^\s"'|;]+`},
	{Name: "whitespace", Pattern: `\s+`},
})

var bnfParser = participle.MustBuild[file](
	participle.Lexer(bnfLexer),
	participle.Elide("whitespace"),
	participle.Unquote("String"),
)

// Parse reads source in the BNF text format and returns the grammar it
// describes. Symbol classification (terminal vs non-terminal) happens
// in a second pass once every LHS name is known, since a bareword may
// appear on some production's right-hand side before its own rule is
// read.
func Parse(source string) (*grammar.Grammar, error) {
	parsed, err := bnfParser.ParseString("", source)
	if err != nil {
		return nil, annotateParseError(source, err)
	}
	if len(parsed.Rules) == 0 {
		return nil, fmt.Errorf("grammar file defines no rules")
	}

	nonTerminalNames := make(map[string]struct{})
	for _, r := range parsed.Rules {
		nonTerminalNames[r.Left] = struct{}{}
	}

	classify := func(name string) grammar.Symbol {
		if name == "ε" {
			return grammar.Epsilon
		}
		if _, ok := nonTerminalNames[name]; ok {
			return grammar.Symbol{Name: name, Type: grammar.NonTerminal}
		}
		return grammar.Symbol{Name: name, Type: grammar.Terminal}
	}

	start := grammar.Symbol{Name: parsed.Rules[0].Left, Type: grammar.NonTerminal}
	if parsed.Start != nil {
		start = grammar.Symbol{Name: *parsed.Start, Type: grammar.NonTerminal}
	}

	var productions []grammar.Production
	for _, r := range parsed.Rules {
		left := grammar.Symbol{Name: r.Left, Type: grammar.NonTerminal}
		for _, a := range r.Alts {
			right := make([]grammar.Symbol, 0, len(a.Symbols))
			for _, s := range a.Symbols {
				switch {
				case s.Literal != nil:
					right = append(right, grammar.Symbol{Name: *s.Literal, Type: grammar.Terminal})
				case s.Bare != nil:
					right = append(right, classify(*s.Bare))
				}
			}
			if len(right) == 0 {
				right = []grammar.Symbol{grammar.Epsilon}
			}
			productions = append(productions, grammar.Production{Left: left, Right: right})
		}
	}

	return grammar.New(start, productions), nil
}

// annotateParseError wraps a participle error with the offending line,
// since the raw error only carries a token position.
func annotateParseError(source string, err error) error {
	perr, ok := err.(participle.Error)
	if !ok {
		return err
	}
	pos := perr.Position()
	lines := strings.Split(source, "\n")
	if pos.Line-1 < 0 || pos.Line-1 >= len(lines) {
		return err
	}
	return fmt.Errorf("grammar file line %d: %q: %w", pos.Line, lines[pos.Line-1], err)
}
