package automaton

import (
	"fmt"
	"io"
)

// Automaton is implemented by *NFA and *DFA, the two graph types
// WriteDOT knows how to render. It is sealed: automatonTag is
// unexported, so no type outside this package can satisfy it.
type Automaton interface {
	automatonTag()
}

func (*NFA) automatonTag() {}
func (*DFA) automatonTag() {}

// WriteDOT writes a Graphviz representation of an NFA or DFA to w,
// adapted from the teacher's regexlib.ExportDOT but retargeted at the
// arena-indexed state representation used in this package.
func WriteDOT(w io.Writer, a Automaton) {
	fmt.Fprintln(w, "digraph G {")
	fmt.Fprintln(w, "    rankdir=LR;")

	switch g := a.(type) {
	case *DFA:
		for i, s := range g.States {
			shape := "circle"
			if s.Final {
				shape = "doublecircle"
			}
			fmt.Fprintf(w, "    q%d [shape=%s];\n", i, shape)
			for ch, to := range s.Trans {
				fmt.Fprintf(w, "    q%d -> q%d [label=%q];\n", i, to, string(ch))
			}
		}
		fmt.Fprintf(w, "    _start [shape=point]; _start -> q%d;\n", g.Start)

	case *NFA:
		for i, s := range g.States {
			shape := "circle"
			if s.Final {
				shape = "doublecircle"
			}
			fmt.Fprintf(w, "    n%d [shape=%s];\n", i, shape)
			for _, t := range s.Transitions {
				label := "ε"
				if !t.Epsilon {
					label = string(t.Symbol)
				}
				fmt.Fprintf(w, "    n%d -> n%d [label=%q];\n", i, t.Target, label)
			}
		}
		fmt.Fprintf(w, "    _start [shape=point]; _start -> n%d;\n", g.Start)

	default:
		fmt.Fprintln(w, "    /* unknown graph type */")
	}

	fmt.Fprintln(w, "}")
}
