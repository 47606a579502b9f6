// Package automaton implements Thompson construction, subset construction
// and table-filling DFA minimization over an arena-indexed automaton
// representation.
//
// States live in a slice owned by the enclosing NFA or DFA and are
// addressed by index rather than by pointer; this keeps the inherently
// cyclic graphs produced by '*' and '+' free of reference cycles and lets
// the whole automaton be freed together with its arena.
package automaton

// Transition is an edge from one state to another, either consuming a
// symbol or taken for free (epsilon).
type Transition struct {
	Epsilon bool
	Symbol  rune
	Target  int
}

// State is a single NFA state: an ordered list of outgoing transitions
// plus a final flag. Identity is the index of the State within its
// owning NFA's arena.
type State struct {
	Transitions []Transition
	Final       bool
}

// NFA is a nondeterministic finite automaton: an arena of states plus the
// start and accept state indices of the fragment the arena currently
// represents. Immediately after construction exactly one start and one
// accept state exist; intermediate states created during composition may
// have had their Final flag cleared as they became interior states of a
// larger fragment (see Builder).
type NFA struct {
	States []State
	Start  int
	Accept int
}

// Builder accumulates NFA states for a single build. The id counter (here,
// simply len(states)) is scoped to the Builder rather than process-wide, so
// concurrent builds and tests never share state identity.
type Builder struct {
	states []State
}

// NewBuilder returns an empty build context.
func NewBuilder() *Builder {
	return &Builder{}
}

// newState appends a fresh, non-final state with no transitions and
// returns its index.
func (b *Builder) newState() int {
	b.states = append(b.states, State{})
	return len(b.states) - 1
}

func (b *Builder) addTransition(from int, t Transition) {
	b.states[from].Transitions = append(b.states[from].Transitions, t)
}

func (b *Builder) setFinal(idx int, final bool) {
	b.states[idx].Final = final
}

// fragment is a dangling NFA piece under construction: a start state and a
// single accept state, mirroring the Thompson-construction stack entries
// in the original Java RegexParser.
type fragment struct {
	start, accept int
}

// DfaState is a single DFA state: the canonicalized set of NFA state
// indices it represents, a transition function keyed by input character,
// and a final flag that holds iff the subset contains at least one final
// NFA state.
type DfaState struct {
	Subset []int
	Trans  map[rune]int
	Final  bool
}

// DFA is a deterministic finite automaton: a start state index plus the
// complete arena of DfaStates. Every index referenced from Trans is valid
// within States.
type DFA struct {
	States []DfaState
	Start  int
}

// NumStates returns the number of states in the automaton.
func (d *DFA) NumStates() int { return len(d.States) }
