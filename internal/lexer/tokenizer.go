// Package lexer turns a set of prioritized regex rules into a
// longest-match, priority-tiebreaking tokenizer. The heavy lifting —
// infix-to-postfix conversion and NFA/DFA construction — lives in
// internal/regexsyntax and internal/automaton; this package only drives
// the per-rule DFAs over an input string.
package lexer

import (
	"fmt"

	"lexforge/internal/automaton"
)

// Token is a single scanned lexeme: its rule name, the matched text, and
// the rune (character) offset in the source it started at.
type Token struct {
	Type   string
	Lexeme string
	Pos    int
}

// TokenRule pairs a compiled DFA with the metadata needed to resolve
// ties between rules that match the same length of input: higher
// Priority values win, and Priority is assigned in descending order of
// registration so earlier-registered rules win ties at equal length.
type TokenRule struct {
	Type     string
	Priority int
	dfa      *automaton.DFA
	skip     bool
}

// Tokenizer scans an input string against an ordered set of compiled
// rules, always preferring the longest match and breaking length ties by
// Priority. It holds no mutable scan state of its own — Tokenize keeps
// its cursor and match state in local variables of each call — so a
// single Tokenizer is safe to use concurrently from multiple goroutines.
type Tokenizer struct {
	rules []*TokenRule
}

// ErrNoMatch is returned when no rule matches at the current scan
// position. It cites both the offending position and character, per
// the tokenizer's lexical-error contract.
type ErrNoMatch struct {
	Pos  int
	Char rune
}

func (e *ErrNoMatch) Error() string {
	return fmt.Sprintf("no rule matches input at offset %d, character %q", e.Pos, e.Char)
}

// Tokenize scans input to completion, returning the token stream in
// order. Rules marked skip (e.g. whitespace) are matched and consumed
// but do not appear in the result. Scanning stops at the first
// unmatched position and returns ErrNoMatch.
func (tz *Tokenizer) Tokenize(input string) ([]Token, error) {
	runes := []rune(input)
	var tokens []Token
	pos := 0
	for pos < len(runes) {
		rule, length := tz.longestMatchAt(runes, pos)
		if rule == nil {
			return tokens, &ErrNoMatch{Pos: pos, Char: runes[pos]}
		}
		if !rule.skip {
			tokens = append(tokens, Token{
				Type:   rule.Type,
				Lexeme: string(runes[pos : pos+length]),
				Pos:    pos,
			})
		}
		pos += length
	}
	return tokens, nil
}

// longestMatchAt finds, among all rules, the one that matches the
// longest prefix of runes starting at pos; ties are broken by the rule
// with the higher Priority value (earlier registration wins).
func (tz *Tokenizer) longestMatchAt(runes []rune, pos int) (*TokenRule, int) {
	var best *TokenRule
	bestLen := -1
	for _, rule := range tz.rules {
		length, ok := rule.longestMatch(runes, pos)
		if !ok {
			continue
		}
		if length > bestLen || (length == bestLen && rule.Priority > best.Priority) {
			best = rule
			bestLen = length
		}
	}
	return best, bestLen
}

// longestMatch walks the rule's DFA from pos, tracking the longest
// prefix that ends in a final state — a classic longest-match DFA scan,
// not merely "does any prefix match". A length of zero is reported as
// no match: a rule whose start state is final (e.g. "a*") would
// otherwise "match" the empty string and advance the scan by nothing.
func (r *TokenRule) longestMatch(runes []rune, pos int) (int, bool) {
	state := r.dfa.Start
	matched := -1
	if r.dfa.States[state].Final {
		matched = 0
	}
	for i := pos; i < len(runes); i++ {
		next, ok := r.dfa.States[state].Trans[runes[i]]
		if !ok {
			break
		}
		state = next
		if r.dfa.States[state].Final {
			matched = i - pos + 1
		}
	}
	if matched <= 0 {
		return 0, false
	}
	return matched, true
}
