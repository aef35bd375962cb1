// Package nfa implements the ε-NFA produced by Thompson's construction
// (spec §4.4, §4.5) and the operations needed to run or determinize one:
// Step, EpsilonClosure, and Accepts/Rejects for direct simulation.
//
// A State is identified by an opaque StateID assigned by a Builder scoped
// to a single compilation; nothing here is shared across compile calls.
package nfa

import (
	"fmt"
	"math"
	"sort"

	"github.com/corewave/rexfa/internal/sparse"
)

// StateID uniquely identifies a state within one NFA.
type StateID uint32

// InvalidState is a sentinel StateID meaning "no state".
const InvalidState StateID = math.MaxUint32

// Symbol is either an alphabet member (an ASCII letter or digit cast to
// Symbol) or Epsilon. It is distinct from any alphabet symbol so it can
// never be confused with a real transition label.
type Symbol int32

// Epsilon is the empty-symbol transition label.
const Epsilon Symbol = -1

// Transition is one outgoing edge: on Sym (or Epsilon), go to To.
type Transition struct {
	Sym Symbol
	To  StateID
}

// NFA is an ε-NFA: a start state, a transition relation keyed by
// (state, symbol-or-ε) mapping to a set of states, and an accepting set.
// Built once by a Builder and never mutated afterward.
type NFA struct {
	transitions [][]Transition // indexed by StateID
	start       StateID
	accept      map[StateID]bool
}

// Start returns the initial state id, q0.
func (n *NFA) Start() StateID {
	return n.start
}

// NumStates returns the number of states in the automaton.
func (n *NFA) NumStates() int {
	return len(n.transitions)
}

// IsAccepting reports whether id is in F.
func (n *NFA) IsAccepting(id StateID) bool {
	return n.accept[id]
}

// AcceptStates returns the accepting set F as a sorted slice.
func (n *NFA) AcceptStates() []StateID {
	out := make([]StateID, 0, len(n.accept))
	for id := range n.accept {
		out = append(out, id)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// TransitionsFrom returns a copy of the outgoing edges of id, including any
// ε-transitions.
func (n *NFA) TransitionsFrom(id StateID) []Transition {
	src := n.transitions[id]
	out := make([]Transition, len(src))
	copy(out, src)
	return out
}

// Alphabet returns every non-ε symbol that labels at least one transition,
// sorted ascending. This is Σ for the subset construction (spec §4.6).
func (n *NFA) Alphabet() []Symbol {
	seen := make(map[Symbol]bool)
	var syms []Symbol
	for _, edges := range n.transitions {
		for _, e := range edges {
			if e.Sym == Epsilon {
				continue
			}
			if !seen[e.Sym] {
				seen[e.Sym] = true
				syms = append(syms, e.Sym)
			}
		}
	}
	sort.Slice(syms, func(i, j int) bool { return syms[i] < syms[j] })
	return syms
}

// Step is the extension of δ to a set of states: the union of δ(q, sym)
// over every q in states.
func (n *NFA) Step(states []StateID, sym Symbol) []StateID {
	seen := sparse.NewSparseSet(uint32(len(n.transitions)))
	var out []StateID
	for _, q := range states {
		for _, e := range n.transitions[q] {
			if e.Sym != sym {
				continue
			}
			if !seen.Contains(uint32(e.To)) {
				seen.Insert(uint32(e.To))
				out = append(out, e.To)
			}
		}
	}
	return out
}

// EpsilonClosure returns the least fixed point of states under ε-edges:
// states themselves plus everything reachable by zero or more
// ε-transitions. The result is returned sorted, which makes it a stable,
// canonical representative of the macro-state regardless of the order
// states were visited in.
func (n *NFA) EpsilonClosure(states []StateID) []StateID {
	seen := sparse.NewSparseSet(uint32(len(n.transitions)))
	frontier := make([]StateID, 0, len(states))
	for _, q := range states {
		if !seen.Contains(uint32(q)) {
			seen.Insert(uint32(q))
			frontier = append(frontier, q)
		}
	}
	for i := 0; i < len(frontier); i++ {
		for _, e := range n.transitions[frontier[i]] {
			if e.Sym != Epsilon {
				continue
			}
			if !seen.Contains(uint32(e.To)) {
				seen.Insert(uint32(e.To))
				frontier = append(frontier, e.To)
			}
		}
	}
	sort.Slice(frontier, func(i, j int) bool { return frontier[i] < frontier[j] })
	return frontier
}

// Accepts walks the NFA over word by ε-closure/step/ε-closure per symbol,
// per spec §4.4.
func (n *NFA) Accepts(word string) bool {
	current := n.EpsilonClosure([]StateID{n.start})
	if len(word) == 0 {
		return n.anyAccepting(current)
	}
	for i := 0; i < len(word); i++ {
		current = n.Step(current, Symbol(word[i]))
		current = n.EpsilonClosure(current)
	}
	return n.anyAccepting(current)
}

// Rejects is the complement of Accepts.
func (n *NFA) Rejects(word string) bool {
	return !n.Accepts(word)
}

func (n *NFA) anyAccepting(states []StateID) bool {
	for _, q := range states {
		if n.accept[q] {
			return true
		}
	}
	return false
}

// String returns a debug summary, not a diagram — rendering DOT/graph
// output is an external collaborator's job, out of this package's scope.
func (n *NFA) String() string {
	return fmt.Sprintf("NFA{states: %d, start: %d, accept: %v}", len(n.transitions), n.start, n.AcceptStates())
}
