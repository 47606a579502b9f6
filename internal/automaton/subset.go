package automaton

import (
	"github.com/emirpasic/gods/sets/treeset"
	"github.com/emirpasic/gods/utils"
)

// epsilonClosure returns the smallest superset of states closed under
// epsilon transitions, computed with an explicit worklist as required for
// the inherently cyclic NFAs '*' and '+' produce.
func epsilonClosure(nfa *NFA, states []int) map[int]struct{} {
	closure := make(map[int]struct{}, len(states))
	worklist := make([]int, 0, len(states))
	for _, s := range states {
		if _, ok := closure[s]; !ok {
			closure[s] = struct{}{}
			worklist = append(worklist, s)
		}
	}
	for len(worklist) > 0 {
		s := worklist[len(worklist)-1]
		worklist = worklist[:len(worklist)-1]
		for _, t := range nfa.States[s].Transitions {
			if !t.Epsilon {
				continue
			}
			if _, ok := closure[t.Target]; !ok {
				closure[t.Target] = struct{}{}
				worklist = append(worklist, t.Target)
			}
		}
	}
	return closure
}

// move returns the union of all non-epsilon c-transition targets reachable
// from states.
func move(nfa *NFA, states map[int]struct{}, c rune) map[int]struct{} {
	result := make(map[int]struct{})
	for s := range states {
		for _, t := range nfa.States[s].Transitions {
			if !t.Epsilon && t.Symbol == c {
				result[t.Target] = struct{}{}
			}
		}
	}
	return result
}

// sortedSet builds a gods treeset ordered by utils.IntComparator, the
// same comparator idiom used for canonical state-set ordering in the
// LR item-set construction this package's subset construction is a
// cousin of.
func sortedSet(set map[int]struct{}) *treeset.Set {
	ts := treeset.NewWith(utils.IntComparator)
	for id := range set {
		ts.Add(id)
	}
	return ts
}

// canonicalKey turns an NFA-state subset into a stable, comparable string
// so that DFA states can be looked up by their underlying subset (set
// equality) rather than by creation order, avoiding an O(n^2) linear
// search over existing states.
func canonicalKey(set map[int]struct{}) string {
	buf := make([]byte, 0, len(set)*4)
	first := true
	for _, v := range sortedSet(set).Values() {
		if !first {
			buf = append(buf, ',')
		}
		first = false
		buf = appendInt(buf, v.(int))
	}
	return string(buf)
}

func appendInt(buf []byte, v int) []byte {
	if v == 0 {
		return append(buf, '0')
	}
	if v < 0 {
		buf = append(buf, '-')
		v = -v
	}
	start := len(buf)
	for v > 0 {
		buf = append(buf, byte('0'+v%10))
		v /= 10
	}
	// reverse the digits just appended
	for i, j := start, len(buf)-1; i < j; i, j = i+1, j-1 {
		buf[i], buf[j] = buf[j], buf[i]
	}
	return buf
}

func sortedIDs(set map[int]struct{}) []int {
	values := sortedSet(set).Values()
	ids := make([]int, len(values))
	for i, v := range values {
		ids[i] = v.(int)
	}
	return ids
}

func anyFinal(nfa *NFA, set map[int]struct{}) bool {
	for id := range set {
		if nfa.States[id].Final {
			return true
		}
	}
	return false
}

// ConvertToDFA runs subset construction over nfa restricted to alphabet,
// per the standard ε-closure/move fixpoint: D0 = ε-closure({start}), then
// for every unprocessed DFA state and every alphabet symbol compute
// ε-closure(move(D, c)), skipping symbols with no reachable target and
// otherwise reusing or creating the DFA state for that subset.
func ConvertToDFA(nfa *NFA, alphabet []rune) *DFA {
	byKey := make(map[string]int)
	var states []DfaState

	addState := func(set map[int]struct{}) int {
		key := canonicalKey(set)
		if idx, ok := byKey[key]; ok {
			return idx
		}
		idx := len(states)
		states = append(states, DfaState{
			Subset: sortedIDs(set),
			Trans:  make(map[rune]int),
			Final:  anyFinal(nfa, set),
		})
		byKey[key] = idx
		return idx
	}

	start := epsilonClosure(nfa, []int{nfa.Start})
	startIdx := addState(start)

	queue := []int{startIdx}
	for len(queue) > 0 {
		curIdx := queue[0]
		queue = queue[1:]

		curSubset := make(map[int]struct{}, len(states[curIdx].Subset))
		for _, id := range states[curIdx].Subset {
			curSubset[id] = struct{}{}
		}

		for _, c := range alphabet {
			moved := move(nfa, curSubset, c)
			if len(moved) == 0 {
				continue
			}
			closure := epsilonClosure(nfa, sortedIDs(moved))
			key := canonicalKey(closure)
			targetIdx, exists := byKey[key]
			if !exists {
				targetIdx = addState(closure)
				queue = append(queue, targetIdx)
			}
			states[curIdx].Trans[c] = targetIdx
		}
	}

	return &DFA{States: states, Start: startIdx}
}
