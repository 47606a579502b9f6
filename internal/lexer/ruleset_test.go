package lexer

import "testing"

func TestParseRuleSetPreservesOrder(t *testing.T) {
	data := []byte(`[
		{"type": "WS", "pattern": " +", "skip": true},
		{"type": "IF", "pattern": "if"},
		{"type": "IDENT", "pattern": "(i|f)+"}
	]`)
	rules, err := ParseRuleSet(data)
	if err != nil {
		t.Fatalf("ParseRuleSet: %v", err)
	}
	if len(rules) != 3 {
		t.Fatalf("expected 3 rules, got %d", len(rules))
	}
	if rules[0].Type != "WS" || !rules[0].Skip {
		t.Fatalf("expected WS to be first and skipped, got %+v", rules[0])
	}
	if rules[1].Type != "IF" || rules[2].Type != "IDENT" {
		t.Fatalf("expected IF before IDENT, got %+v then %+v", rules[1], rules[2])
	}
}

func TestRuleSetBuildRegistersInOrder(t *testing.T) {
	rules := RuleSet{
		{Type: "IF", Pattern: "if"},
		{Type: "IDENT", Pattern: "(i|f)+"},
	}
	tz, err := rules.Build([]rune("if"))
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	tokens, err := tz.Tokenize("if")
	if err != nil {
		t.Fatalf("Tokenize: %v", err)
	}
	if len(tokens) != 1 || tokens[0].Type != "IF" {
		t.Fatalf("expected earlier-registered IF to win, got %+v", tokens)
	}
}
