package lexer

import (
	"testing"

	"github.com/timtadh/lexmachine"
	"github.com/timtadh/lexmachine/machines"
)

// lexmachineReference tokenizes input with timtadh/lexmachine using the
// same rule set (minus the construction pipeline) as the Builder under
// test, serving as an independent oracle for the shared regex dialect.
func lexmachineReference(t *testing.T, input string) []string {
	t.Helper()
	lx := lexmachine.NewLexer()
	lx.Add([]byte(`[ \t\n\r]+`), func(*lexmachine.Scanner, *machines.Match) (interface{}, error) {
		return nil, nil
	})
	for _, kw := range []string{"if", "else", "while"} {
		kw := kw
		lx.Add([]byte(kw), func(s *lexmachine.Scanner, m *machines.Match) (interface{}, error) {
			return kw, nil
		})
	}
	lx.Add([]byte(`[a-zA-Z_][a-zA-Z0-9_]*`), func(s *lexmachine.Scanner, m *machines.Match) (interface{}, error) {
		return "IDENT:" + string(m.Bytes), nil
	})
	lx.Add([]byte(`[0-9]+`), func(s *lexmachine.Scanner, m *machines.Match) (interface{}, error) {
		return "NUM:" + string(m.Bytes), nil
	})
	if err := lx.Compile(); err != nil {
		t.Fatalf("lexmachine Compile: %v", err)
	}
	scanner, err := lx.Scanner([]byte(input))
	if err != nil {
		t.Fatalf("lexmachine Scanner: %v", err)
	}
	var out []string
	for {
		tok, err, eof := scanner.Next()
		if eof {
			break
		}
		if err != nil {
			t.Fatalf("lexmachine scan error: %v", err)
		}
		if tok == nil {
			continue
		}
		out = append(out, tok.(string))
	}
	return out
}

func buildAgainstSameRules(t *testing.T) *Tokenizer {
	t.Helper()
	alphabet := []rune("abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789_ ")
	b := NewBuilder(alphabet)
	b.Skip("WS", " +")
	b.Add("IF", "if")
	b.Add("ELSE", "else")
	b.Add("WHILE", "while")
	letter := "(a|b|c|d|e|f|g|h|i|j|k|l|m|n|o|p|q|r|s|t|u|v|w|x|y|z|A|B|C|D|E|F|G|H|I|J|K|L|M|N|O|P|Q|R|S|T|U|V|W|X|Y|Z|_)"
	digit := "(0|1|2|3|4|5|6|7|8|9)"
	b.Add("IDENT", letter+"("+letter+"|"+digit+")*")
	b.Add("NUM", digit+digit+"*")
	tz, err := b.Build()
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	return tz
}

func TestTokenizeMatchesLexmachineOracle(t *testing.T) {
	inputs := []string{
		"if while else",
		"ifx while3 _else9",
		"x1 y2 z3 123 456",
	}
	for _, input := range inputs {
		want := lexmachineReference(t, input)
		tz := buildAgainstSameRules(t)
		got, err := tz.Tokenize(input)
		if err != nil {
			t.Fatalf("Tokenize(%q): %v", input, err)
		}
		if len(got) != len(want) {
			t.Fatalf("token count mismatch for %q: got %d want %d (%+v vs %v)", input, len(got), len(want), got, want)
		}
		for i, tok := range got {
			var expected string
			switch tok.Type {
			case "IDENT":
				expected = "IDENT:" + tok.Lexeme
			case "NUM":
				expected = "NUM:" + tok.Lexeme
			default:
				expected = tok.Lexeme
			}
			if expected != want[i] {
				t.Fatalf("token %d mismatch for %q: got %q want %q", i, input, expected, want[i])
			}
		}
	}
}
