// Package dfa implements the deterministic automaton produced by
// determinizing an ε-NFA (spec §4.6) and the minimal runtime that walks it
// (spec §4.7). A DFA has no ε-transitions and at most one target state per
// (state, symbol) pair; a missing transition is an implicit reject rather
// than an explicit dead state.
package dfa

import (
	"fmt"
	"sort"

	"github.com/corewave/rexfa/nfa"
)

// StateID identifies a DFA state. DFA state ids are assigned fresh during
// determinization and bear no relation to the NFA state ids they were
// subset-constructed from.
type StateID uint32

type transitionKey struct {
	state StateID
	sym   nfa.Symbol
}

// DFA is an immutable deterministic automaton: a start state, a partial
// transition function, and an accepting set. Safe for concurrent
// Accepts/Rejects calls from multiple goroutines once built.
type DFA struct {
	start StateID
	delta map[transitionKey]StateID
	accept map[StateID]bool
	numStates int
}

// Accepts walks from the start state, consuming word one symbol at a time.
// A missing transition is an immediate reject (spec §4.7) — there is no
// explicit dead state to keep walking into.
func (d *DFA) Accepts(word string) bool {
	current := d.start
	for i := 0; i < len(word); i++ {
		next, ok := d.delta[transitionKey{state: current, sym: nfa.Symbol(word[i])}]
		if !ok {
			return false
		}
		current = next
	}
	return d.accept[current]
}

// Rejects is the complement of Accepts. Together they decide every word:
// exactly one of the two is true (spec §8, invariant 6).
func (d *DFA) Rejects(word string) bool {
	return !d.Accepts(word)
}

// NumStates returns the number of reachable macro-states produced by
// subset construction.
func (d *DFA) NumStates() int {
	return d.numStates
}

// String returns a debug summary, not a diagram.
func (d *DFA) String() string {
	accepted := make([]StateID, 0, len(d.accept))
	for id := range d.accept {
		accepted = append(accepted, id)
	}
	sort.Slice(accepted, func(i, j int) bool { return accepted[i] < accepted[j] })
	return fmt.Sprintf("DFA{states: %d, start: %d, accept: %v}", d.numStates, d.start, accepted)
}
