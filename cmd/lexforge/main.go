// Command lexforge loads a rule set and an optional grammar file, builds
// a tokenizer, scans stdin, and (if a grammar was given) prints FIRST
// and FOLLOW tables.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"sort"

	"github.com/pterm/pterm"

	"lexforge/internal/grammar"
	"lexforge/internal/grammarfile"
	"lexforge/internal/lexer"
	"lexforge/internal/logging"
	"lexforge/internal/syntax"
)

func main() {
	rulesPath := flag.String("rules", "", "path to a JSON rule set file")
	grammarPath := flag.String("grammar", "", "path to a BNF grammar file (optional)")
	verbose := flag.Bool("v", false, "enable debug logging")
	flag.Parse()

	level := slog.LevelWarn
	if *verbose {
		level = logging.LevelTrace
	}
	slog.SetDefault(logging.NewLogger(os.Stderr, level))

	if *rulesPath == "" {
		log.Fatal("usage: lexforge -rules rules.json [-grammar grammar.bnf]")
	}

	rulesData, err := os.ReadFile(*rulesPath)
	if err != nil {
		log.Fatal(err)
	}
	ruleSet, err := lexer.ParseRuleSet(rulesData)
	if err != nil {
		log.Fatal(err)
	}

	alphabet := alphabetOf(ruleSet)
	tokenizer, err := ruleSet.Build(alphabet)
	if err != nil {
		log.Fatal(err)
	}

	input, err := io.ReadAll(bufio.NewReader(os.Stdin))
	if err != nil {
		log.Fatal(err)
	}

	tokens, err := tokenizer.Tokenize(string(input))
	if err != nil {
		pterm.Error.Println(err.Error())
		log.Fatal(err)
	}
	printTokenTable(tokens)

	if *grammarPath == "" {
		return
	}

	grammarData, err := os.ReadFile(*grammarPath)
	if err != nil {
		log.Fatal(err)
	}
	g, err := grammarfile.Parse(string(grammarData))
	if err != nil {
		log.Fatal(err)
	}
	reportAnalysis(g)
}

// alphabetOf collects every literal rune that appears in a rule set's
// patterns. Operator and grouping characters are excluded since they
// never appear as alphabet symbols in a compiled DFA.
func alphabetOf(rules lexer.RuleSet) []rune {
	seen := make(map[rune]struct{})
	for _, r := range rules {
		for _, c := range r.Pattern {
			switch c {
			case '|', '*', '+', '?', '(', ')':
				continue
			}
			seen[c] = struct{}{}
		}
	}
	out := make([]rune, 0, len(seen))
	for c := range seen {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// printTokenTable renders the scanned token stream with pterm's table
// writer instead of hand-aligned Printf columns.
func printTokenTable(tokens []lexer.Token) {
	rows := pterm.TableData{{"TYPE", "LEXEME", "POS"}}
	for _, tok := range tokens {
		rows = append(rows, []string{tok.Type, fmt.Sprintf("%q", tok.Lexeme), fmt.Sprintf("%d", tok.Pos)})
	}
	pterm.DefaultTable.WithHasHeader().WithData(rows).Render()
}

func reportAnalysis(g *grammar.Grammar) {
	analyzer := syntax.NewAnalyzer(g)
	first := analyzer.First()
	follow := analyzer.Follow()

	symbols := make([]grammar.Symbol, 0, len(g.NonTerminals()))
	for s := range g.NonTerminals() {
		symbols = append(symbols, s)
	}
	sort.Slice(symbols, func(i, j int) bool { return symbols[i].Name < symbols[j].Name })

	pterm.Info.Println("FIRST / FOLLOW sets")
	rows := pterm.TableData{{"SYMBOL", "FIRST", "FOLLOW"}}
	for _, s := range symbols {
		rows = append(rows, []string{s.Name, formatSet(first[s]), formatSet(follow[s])})
	}
	pterm.DefaultTable.WithHasHeader().WithData(rows).Render()
}

func formatSet(set syntax.SymbolSet) string {
	names := make([]string, 0, len(set))
	for s := range set {
		names = append(names, s.Name)
	}
	sort.Strings(names)
	result := "{ "
	for i, n := range names {
		if i > 0 {
			result += ", "
		}
		result += n
	}
	return result + " }"
}
