// Package syntax computes FIRST and FOLLOW sets over a context-free
// grammar by fixed-point iteration.
package syntax

import (
	"lexforge/internal/grammar"
	"lexforge/internal/logging"
)

// SymbolSet is a set of grammar symbols.
type SymbolSet map[grammar.Symbol]struct{}

func (s SymbolSet) add(sym grammar.Symbol) bool {
	if _, ok := s[sym]; ok {
		return false
	}
	s[sym] = struct{}{}
	return true
}

func (s SymbolSet) has(sym grammar.Symbol) bool {
	_, ok := s[sym]
	return ok
}

func (s SymbolSet) equal(other SymbolSet) bool {
	if len(s) != len(other) {
		return false
	}
	for sym := range s {
		if !other.has(sym) {
			return false
		}
	}
	return true
}

func (s SymbolSet) clone() SymbolSet {
	out := make(SymbolSet, len(s))
	for sym := range s {
		out[sym] = struct{}{}
	}
	return out
}

// Analyzer computes and caches FIRST and FOLLOW sets for a grammar.
type Analyzer struct {
	grammar *grammar.Grammar
	first   map[grammar.Symbol]SymbolSet
	follow  map[grammar.Symbol]SymbolSet
}

// NewAnalyzer creates an Analyzer over g. Nothing is computed until
// First or Follow is called.
func NewAnalyzer(g *grammar.Grammar) *Analyzer {
	return &Analyzer{grammar: g}
}

// First returns the FIRST set of every symbol in the grammar (terminals
// map to themselves; non-terminals are computed by fixed-point
// iteration over the productions). The result is cached after the
// first call.
func (a *Analyzer) First() map[grammar.Symbol]SymbolSet {
	if a.first != nil {
		return a.first
	}
	first := make(map[grammar.Symbol]SymbolSet)
	for t := range a.grammar.Terminals() {
		first[t] = SymbolSet{t: struct{}{}}
	}
	for nt := range a.grammar.NonTerminals() {
		first[nt] = SymbolSet{}
	}
	firstOf := func(sym grammar.Symbol) SymbolSet {
		set, ok := first[sym]
		if !ok {
			set = SymbolSet{}
			first[sym] = set
		}
		return set
	}

	changed := true
	iterations := 0
	for changed {
		changed = false
		iterations++
		for _, p := range a.grammar.Productions() {
			left := p.Left
			before := firstOf(left).clone()

			if len(p.Right) == 1 && p.Right[0] == grammar.Epsilon {
				first[left].add(grammar.Epsilon)
			} else {
				allEpsilon := true
				for _, sym := range p.Right {
					firstOfSym := firstOf(sym)
					for s := range firstOfSym {
						if s != grammar.Epsilon {
							first[left].add(s)
						}
					}
					if !firstOfSym.has(grammar.Epsilon) {
						allEpsilon = false
						break
					}
				}
				if allEpsilon {
					first[left].add(grammar.Epsilon)
				}
			}

			if !before.equal(first[left]) {
				changed = true
			}
		}
	}
	logging.Trace("computed FIRST sets", "iterations", iterations)
	a.first = first
	return first
}

// Follow returns the FOLLOW set of every non-terminal in the grammar.
// It computes First first if that has not happened yet.
func (a *Analyzer) Follow() map[grammar.Symbol]SymbolSet {
	if a.follow != nil {
		return a.follow
	}
	first := a.First()

	follow := make(map[grammar.Symbol]SymbolSet)
	for nt := range a.grammar.NonTerminals() {
		follow[nt] = SymbolSet{}
	}
	follow[a.grammar.StartSymbol()].add(grammar.EndOfInput)

	firstOf := func(sym grammar.Symbol) SymbolSet {
		set, ok := first[sym]
		if !ok {
			set = SymbolSet{}
			first[sym] = set
		}
		return set
	}

	changed := true
	iterations := 0
	for changed {
		changed = false
		iterations++
		for _, p := range a.grammar.Productions() {
			left := p.Left
			right := p.Right
			for i, current := range right {
				if !current.IsNonTerminal() {
					continue
				}
				before := follow[current].clone()

				allEpsilon := true
				for j := i + 1; j < len(right); j++ {
					next := right[j]
					firstOfNext := firstOf(next)
					for s := range firstOfNext {
						if s != grammar.Epsilon {
							follow[current].add(s)
						}
					}
					if !firstOfNext.has(grammar.Epsilon) {
						allEpsilon = false
						break
					}
				}

				if i == len(right)-1 || allEpsilon {
					for s := range follow[left] {
						follow[current].add(s)
					}
				}

				if !before.equal(follow[current]) {
					changed = true
				}
			}
		}
	}
	logging.Trace("computed FOLLOW sets", "iterations", iterations)
	a.follow = follow
	return follow
}
