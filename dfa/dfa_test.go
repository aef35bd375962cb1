package dfa

import (
	"testing"

	"github.com/corewave/rexfa/nfa"
)

func TestDFAAcceptsMissingTransitionRejects(t *testing.T) {
	d := &DFA{
		start: 0,
		delta: map[transitionKey]StateID{
			{state: 0, sym: nfa.Symbol('a')}: 1,
		},
		accept:    map[StateID]bool{1: true},
		numStates: 2,
	}

	if !d.Accepts("a") {
		t.Errorf("Accepts(\"a\") = false, want true")
	}
	if d.Accepts("b") {
		t.Errorf("Accepts(\"b\") = true, want false: no transition on 'b' should reject immediately")
	}
	if d.Accepts("aa") {
		t.Errorf("Accepts(\"aa\") = true, want false: state 1 has no outgoing transitions")
	}
}

func TestDFARejectsIsComplement(t *testing.T) {
	d := &DFA{
		start: 0,
		delta: map[transitionKey]StateID{
			{state: 0, sym: nfa.Symbol('a')}: 0,
		},
		accept:    map[StateID]bool{0: true},
		numStates: 1,
	}
	for _, w := range []string{"", "a", "aa", "b", "ab"} {
		if d.Accepts(w) == d.Rejects(w) {
			t.Errorf("Accepts(%q) and Rejects(%q) agree; they must be complements", w, w)
		}
	}
}
