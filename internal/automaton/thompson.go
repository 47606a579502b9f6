package automaton

import "fmt"

// operand reports whether c is a literal character rather than one of the
// postfix operators produced by the shunting-yard stage.
func operand(c rune) bool {
	switch c {
	case '|', '*', '+', '?', ConcatOperator:
		return false
	default:
		return true
	}
}

// ConcatOperator is the explicit concatenation marker inserted by the
// regex preprocessor (internal/regexsyntax) and consumed here as an
// ordinary postfix operator. It lives in this package, the consumer of
// postfix notation, so regexsyntax depends on automaton and not the
// other way around.
const ConcatOperator = '·'

// BuildFromPostfix runs Thompson's construction over a postfix regular
// expression, mirroring the operator handling of the original
// RegexParser.buildNfaFromPostfix: a stack of fragments, one case per
// postfix symbol.
func BuildFromPostfix(postfix string) (*NFA, error) {
	b := NewBuilder()
	var stack []fragment

	pop := func() (fragment, error) {
		if len(stack) == 0 {
			return fragment{}, fmt.Errorf("malformed regex: operator with no operand")
		}
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		return f, nil
	}

	for _, c := range postfix {
		switch {
		case operand(c):
			stack = append(stack, b.literal(c))
		case c == ConcatOperator:
			b2, err := pop()
			if err != nil {
				return nil, err
			}
			a, err := pop()
			if err != nil {
				return nil, err
			}
			stack = append(stack, b.concat(a, b2))
		case c == '|':
			b2, err := pop()
			if err != nil {
				return nil, err
			}
			a, err := pop()
			if err != nil {
				return nil, err
			}
			stack = append(stack, b.union(a, b2))
		case c == '*':
			a, err := pop()
			if err != nil {
				return nil, err
			}
			stack = append(stack, b.star(a))
		case c == '+':
			a, err := pop()
			if err != nil {
				return nil, err
			}
			stack = append(stack, b.plus(a))
		case c == '?':
			a, err := pop()
			if err != nil {
				return nil, err
			}
			stack = append(stack, b.optional(a))
		default:
			return nil, fmt.Errorf("malformed regex: unexpected symbol %q in postfix form", c)
		}
	}

	if len(stack) != 1 {
		return nil, fmt.Errorf("malformed regex: expected exactly one fragment, got %d", len(stack))
	}
	f := stack[0]
	return &NFA{States: b.states, Start: f.start, Accept: f.accept}, nil
}

// literal builds A --c--> B, B final.
func (b *Builder) literal(c rune) fragment {
	a := b.newState()
	bb := b.newState()
	b.addTransition(a, Transition{Symbol: c, Target: bb})
	b.setFinal(bb, true)
	return fragment{start: a, accept: bb}
}

// concat pops b then a conceptually; here a and b2 are already popped in
// that order by the caller. Clears a's accept flag and links a.accept -> b.start.
func (b *Builder) concat(a, b2 fragment) fragment {
	b.setFinal(a.accept, false)
	b.addTransition(a.accept, Transition{Epsilon: true, Target: b2.start})
	return fragment{start: a.start, accept: b2.accept}
}

func (b *Builder) union(a, b2 fragment) fragment {
	b.setFinal(a.accept, false)
	b.setFinal(b2.accept, false)
	q0 := b.newState()
	qf := b.newState()
	b.addTransition(q0, Transition{Epsilon: true, Target: a.start})
	b.addTransition(q0, Transition{Epsilon: true, Target: b2.start})
	b.addTransition(a.accept, Transition{Epsilon: true, Target: qf})
	b.addTransition(b2.accept, Transition{Epsilon: true, Target: qf})
	b.setFinal(qf, true)
	return fragment{start: q0, accept: qf}
}

func (b *Builder) star(n fragment) fragment {
	b.setFinal(n.accept, false)
	q0 := b.newState()
	qf := b.newState()
	b.addTransition(q0, Transition{Epsilon: true, Target: n.start})
	b.addTransition(q0, Transition{Epsilon: true, Target: qf})
	b.addTransition(n.accept, Transition{Epsilon: true, Target: n.start})
	b.addTransition(n.accept, Transition{Epsilon: true, Target: qf})
	b.setFinal(qf, true)
	return fragment{start: q0, accept: qf}
}

// plus is star without the q0 -> qf bypass edge: one-or-more.
func (b *Builder) plus(n fragment) fragment {
	b.setFinal(n.accept, false)
	q0 := b.newState()
	qf := b.newState()
	b.addTransition(q0, Transition{Epsilon: true, Target: n.start})
	b.addTransition(n.accept, Transition{Epsilon: true, Target: n.start})
	b.addTransition(n.accept, Transition{Epsilon: true, Target: qf})
	b.setFinal(qf, true)
	return fragment{start: q0, accept: qf}
}

func (b *Builder) optional(n fragment) fragment {
	b.setFinal(n.accept, false)
	q0 := b.newState()
	qf := b.newState()
	b.addTransition(q0, Transition{Epsilon: true, Target: n.start})
	b.addTransition(q0, Transition{Epsilon: true, Target: qf})
	b.addTransition(n.accept, Transition{Epsilon: true, Target: qf})
	b.setFinal(qf, true)
	return fragment{start: q0, accept: qf}
}
