package automaton

// pair canonicalizes an unordered pair of DFA state indices with the
// lower index first, mirroring the original Java DfaMinimizer.Pair.
type pair struct{ lo, hi int }

func makePair(i, j int) pair {
	if i <= j {
		return pair{i, j}
	}
	return pair{j, i}
}

// Minimize collapses equivalent states of d using the table-filling
// algorithm: pairs are marked distinguishable by differing finality, then
// by propagation through transitions, to a fixpoint; unmarked pairs are
// then merged via union-find into equivalence classes.
func Minimize(d *DFA, alphabet []rune) *DFA {
	n := len(d.States)
	if n == 0 {
		return d
	}

	// 1-2. Initialize and iterate the distinguishability table.
	marked := make(map[pair]bool)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			marked[makePair(i, j)] = d.States[i].Final != d.States[j].Final
		}
	}

	for changed := true; changed; {
		changed = false
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				p := makePair(i, j)
				if marked[p] {
					continue
				}
				for _, c := range alphabet {
					t1, ok1 := d.States[i].Trans[c]
					t2, ok2 := d.States[j].Trans[c]
					if ok1 != ok2 {
						marked[p] = true
						changed = true
						break
					}
					if ok1 && ok2 && marked[makePair(t1, t2)] {
						marked[p] = true
						changed = true
						break
					}
				}
			}
		}
	}

	// 3. Union-find over unmarked pairs, deterministic lowest-id representative.
	uf := newUnionFind(n)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if !marked[makePair(i, j)] {
				uf.union(i, j)
			}
		}
	}

	// 4. Build the minimized DFA: one new state per class.
	classOf := make([]int, n) // old index -> representative (root) index
	for i := 0; i < n; i++ {
		classOf[i] = uf.find(i)
	}

	// Assign each distinct root a dense index, in ascending root order so
	// output is reproducible across runs.
	roots := make([]int, 0, n)
	seen := make(map[int]bool, n)
	for i := 0; i < n; i++ {
		r := classOf[i]
		if !seen[r] {
			seen[r] = true
			roots = append(roots, r)
		}
	}
	denseIndex := make(map[int]int, len(roots))
	for i, r := range roots {
		denseIndex[r] = i
	}

	newStates := make([]DfaState, len(roots))
	for i, r := range roots {
		members := make(map[int]struct{})
		final := d.States[r].Final
		for old := 0; old < n; old++ {
			if classOf[old] == r {
				for _, id := range d.States[old].Subset {
					members[id] = struct{}{}
				}
			}
		}
		newStates[i] = DfaState{Subset: sortedIDs(members), Trans: make(map[rune]int), Final: final}
	}

	for i, r := range roots {
		for _, c := range alphabet {
			if target, ok := d.States[r].Trans[c]; ok {
				newStates[i].Trans[c] = denseIndex[classOf[target]]
			}
		}
	}

	return &DFA{States: newStates, Start: denseIndex[classOf[d.Start]]}
}

// unionFind is path-compressed, union-by-rank-free (deterministic: the
// lower index always survives as root) partition tracker.
type unionFind struct {
	parent []int
}

func newUnionFind(n int) *unionFind {
	p := make([]int, n)
	for i := range p {
		p[i] = i
	}
	return &unionFind{parent: p}
}

func (u *unionFind) find(x int) int {
	for u.parent[x] != x {
		u.parent[x] = u.parent[u.parent[x]]
		x = u.parent[x]
	}
	return x
}

func (u *unionFind) union(x, y int) {
	rx, ry := u.find(x), u.find(y)
	if rx == ry {
		return
	}
	if rx < ry {
		u.parent[ry] = rx
	} else {
		u.parent[rx] = ry
	}
}
