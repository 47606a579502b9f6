package lexer

import (
	"fmt"
	"log/slog"

	"lexforge/internal/automaton"
	"lexforge/internal/regexsyntax"
)

// startPriority is the priority assigned to the first rule registered
// with Builder.Add. Later rules get lower values (startPriority-1, -2,
// ...), so earlier registration always wins a length tie.
const startPriority = 1000

// Builder assembles a Tokenizer from an ordered list of named regex
// rules, running each one through the regexsyntax -> automaton pipeline
// (shunting-yard, Thompson construction, subset construction,
// minimization) at Build time.
type Builder struct {
	alphabet []rune
	rules    []ruleSpec
}

type ruleSpec struct {
	tokenType string
	pattern   string
	skip      bool
}

// NewBuilder constructs a Builder over the given input alphabet. The
// alphabet must cover every literal character used across all
// registered rules; it drives subset construction and minimization.
func NewBuilder(alphabet []rune) *Builder {
	return &Builder{alphabet: alphabet}
}

// Add registers a rule that produces tokens of the given type when
// matched. Rules are tried in registration order; earlier rules win
// length ties against later ones.
func (b *Builder) Add(tokenType, pattern string) *Builder {
	b.rules = append(b.rules, ruleSpec{tokenType: tokenType, pattern: pattern})
	return b
}

// Skip registers a rule whose matches are consumed from the input but
// never emitted as tokens, for things like whitespace and comments.
func (b *Builder) Skip(tokenType, pattern string) *Builder {
	b.rules = append(b.rules, ruleSpec{tokenType: tokenType, pattern: pattern, skip: true})
	return b
}

// Build compiles every registered rule to a minimized DFA and returns
// the resulting Tokenizer. A build error names the offending rule's
// token type and pattern so a malformed rule file is easy to locate.
func (b *Builder) Build() (*Tokenizer, error) {
	tz := &Tokenizer{}
	priority := startPriority
	for _, spec := range b.rules {
		postfix := regexsyntax.ToPostfix(spec.pattern)
		nfa, err := automaton.BuildFromPostfix(postfix)
		if err != nil {
			return nil, fmt.Errorf("rule %q (pattern %q): %w", spec.tokenType, spec.pattern, err)
		}
		dfa := automaton.ConvertToDFA(nfa, b.alphabet)
		min := automaton.Minimize(dfa, b.alphabet)
		slog.Debug("compiled token rule",
			"type", spec.tokenType,
			"pattern", spec.pattern,
			"priority", priority,
			"dfa_states", len(min.States),
		)
		tz.rules = append(tz.rules, &TokenRule{
			Type:     spec.tokenType,
			Priority: priority,
			dfa:      min,
			skip:     spec.skip,
		})
		priority--
	}
	return tz, nil
}
