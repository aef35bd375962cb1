package dfa

import (
	"sort"
	"strconv"
	"strings"

	"github.com/corewave/rexfa/internal/conv"
	"github.com/corewave/rexfa/nfa"
)

// Determinize runs the two-phase construction from spec §4.6: first
// eliminate ε-transitions, then subset-construct a DFA from the result.
func Determinize(n *nfa.NFA) *DFA {
	epsFree := eliminateEpsilon(n)
	return subsetConstruct(epsFree)
}

// eliminateEpsilon produces an ε-free NFA equivalent to n, over the same
// state-id domain: q0 is kept, and any state in the ε-closure of q0 (other
// than q0 itself) has its outgoing non-ε transitions folded onto q0 too, so
// q0 subsumes its ε-equivalents as a source (spec §4.6 phase 1).
func eliminateEpsilon(n *nfa.NFA) *nfa.NFA {
	b := nfa.NewBuilder()
	for i := 0; i < n.NumStates(); i++ {
		b.NewState() // preserve the original state-id domain exactly
	}

	start := n.Start()
	startEq := make(map[nfa.StateID]bool)
	for _, q := range n.EpsilonClosure([]nfa.StateID{start}) {
		if q != start {
			startEq[q] = true
		}
	}

	for q := nfa.StateID(0); int(q) < n.NumStates(); q++ {
		for _, tr := range n.TransitionsFrom(q) {
			if tr.Sym == nfa.Epsilon {
				continue
			}
			closure := n.EpsilonClosure([]nfa.StateID{tr.To})
			for _, r := range closure {
				b.AddTransition(q, tr.Sym, r)
				if startEq[q] {
					b.AddTransition(start, tr.Sym, r)
				}
			}
		}
	}

	accept := n.AcceptStates()
	subsumed := false
	for _, a := range accept {
		if startEq[a] {
			subsumed = true
			break
		}
	}
	if subsumed {
		accept = append(accept, start)
	}

	return b.Build(start, accept)
}

// macroKey canonicalizes a macro-state (a set of ε-free-NFA state ids) into
// a stable string so two subsets with the same members — regardless of
// discovery order — compare equal in the "already seen" registry (spec §9).
func macroKey(states []nfa.StateID) string {
	sorted := append([]nfa.StateID(nil), states...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })
	parts := make([]string, len(sorted))
	for i, s := range sorted {
		parts[i] = strconv.FormatUint(uint64(s), 10)
	}
	return strings.Join(parts, ",")
}

// subsetConstruct is the classical powerset construction (spec §4.6 phase
// 2) over an already ε-free NFA: no closures are needed here, only Step.
func subsetConstruct(n *nfa.NFA) *DFA {
	idOf := make(map[string]StateID)
	macroOf := make(map[StateID][]nfa.StateID)
	var nextID uint32

	internID := func(members []nfa.StateID) (StateID, bool) {
		key := macroKey(members)
		if id, ok := idOf[key]; ok {
			return id, false
		}
		id := StateID(conv.IntToUint32(int(nextID)))
		nextID++
		idOf[key] = id
		macroOf[id] = members
		return id, true
	}

	alphabet := n.Alphabet()
	delta := make(map[transitionKey]StateID)

	start, _ := internID([]nfa.StateID{n.Start()})
	worklist := []StateID{start}
	processed := make(map[StateID]bool)

	for len(worklist) > 0 {
		p := worklist[0]
		worklist = worklist[1:]
		if processed[p] {
			continue
		}
		processed[p] = true

		members := macroOf[p]
		for _, c := range alphabet {
			next := n.Step(members, c)
			if len(next) == 0 {
				continue
			}
			id, isNew := internID(next)
			delta[transitionKey{state: p, sym: c}] = id
			if isNew {
				worklist = append(worklist, id)
			}
		}
	}

	accept := make(map[StateID]bool)
	for id, members := range macroOf {
		for _, m := range members {
			if n.IsAccepting(m) {
				accept[id] = true
				break
			}
		}
	}

	return &DFA{start: start, delta: delta, accept: accept, numStates: len(macroOf)}
}
