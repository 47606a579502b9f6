package syntax

import (
	"testing"

	"lexforge/internal/grammar"
)

// buildArithmeticGrammar builds the classic left-factored expression
// grammar:
//
//	E  -> T E'
//	E' -> + T E' | ε
//	T  -> F T'
//	T' -> * F T' | ε
//	F  -> ( E ) | id
func buildArithmeticGrammar() *grammar.Grammar {
	nt := func(name string) grammar.Symbol { return grammar.Symbol{Name: name, Type: grammar.NonTerminal} }
	term := func(name string) grammar.Symbol { return grammar.Symbol{Name: name, Type: grammar.Terminal} }

	E, Ep := nt("E"), nt("E'")
	T, Tp := nt("T"), nt("T'")
	F := nt("F")
	plus, star, lparen, rparen, id := term("+"), term("*"), term("("), term(")"), term("id")

	productions := []grammar.Production{
		{Left: E, Right: []grammar.Symbol{T, Ep}},
		{Left: Ep, Right: []grammar.Symbol{plus, T, Ep}},
		{Left: Ep, Right: []grammar.Symbol{grammar.Epsilon}},
		{Left: T, Right: []grammar.Symbol{F, Tp}},
		{Left: Tp, Right: []grammar.Symbol{star, F, Tp}},
		{Left: Tp, Right: []grammar.Symbol{grammar.Epsilon}},
		{Left: F, Right: []grammar.Symbol{lparen, E, rparen}},
		{Left: F, Right: []grammar.Symbol{id}},
	}
	return grammar.New(E, productions)
}

func symbolSet(syms ...grammar.Symbol) SymbolSet {
	set := make(SymbolSet, len(syms))
	for _, s := range syms {
		set[s] = struct{}{}
	}
	return set
}

func term(name string) grammar.Symbol { return grammar.Symbol{Name: name, Type: grammar.Terminal} }
func nonTerm(name string) grammar.Symbol {
	return grammar.Symbol{Name: name, Type: grammar.NonTerminal}
}

func TestFirstSetsForArithmeticGrammar(t *testing.T) {
	g := buildArithmeticGrammar()
	first := NewAnalyzer(g).First()

	cases := map[grammar.Symbol]SymbolSet{
		nonTerm("F"):  symbolSet(term("("), term("id")),
		nonTerm("T'"): symbolSet(term("*"), grammar.Epsilon),
		nonTerm("T"):  symbolSet(term("("), term("id")),
		nonTerm("E'"): symbolSet(term("+"), grammar.Epsilon),
		nonTerm("E"):  symbolSet(term("("), term("id")),
	}
	for sym, want := range cases {
		got := first[sym]
		if !got.equal(want) {
			t.Fatalf("FIRST(%s) = %v, want %v", sym, got, want)
		}
	}
}

func TestFollowSetsForArithmeticGrammar(t *testing.T) {
	g := buildArithmeticGrammar()
	follow := NewAnalyzer(g).Follow()

	cases := map[grammar.Symbol]SymbolSet{
		nonTerm("E"):  symbolSet(term(")"), grammar.EndOfInput),
		nonTerm("E'"): symbolSet(term(")"), grammar.EndOfInput),
		nonTerm("T"):  symbolSet(term("+"), term(")"), grammar.EndOfInput),
		nonTerm("T'"): symbolSet(term("+"), term(")"), grammar.EndOfInput),
		nonTerm("F"):  symbolSet(term("+"), term("*"), term(")"), grammar.EndOfInput),
	}
	for sym, want := range cases {
		got := follow[sym]
		if !got.equal(want) {
			t.Fatalf("FOLLOW(%s) = %v, want %v", sym, got, want)
		}
	}
}

func TestFollowComputesFirstImplicitly(t *testing.T) {
	g := buildArithmeticGrammar()
	a := NewAnalyzer(g)
	// Calling Follow directly, without ever calling First, must still
	// produce correct results.
	follow := a.Follow()
	if !follow[nonTerm("E")].has(grammar.EndOfInput) {
		t.Fatalf("expected FOLLOW(E) to contain end-of-input marker")
	}
}
