package nfa

import "testing"

// buildExampleNFA builds the worked example from the NFA data-model section:
// q0=0, F={3,4}, δ={(0,ε):{1,2}, (1,'a'):{1,3}, (2,ε):{3}, (3,'c'):{4}}.
func buildExampleNFA() *NFA {
	b := NewBuilder()
	for i := 0; i < 5; i++ {
		b.NewState()
	}
	b.AddTransition(0, Epsilon, 1)
	b.AddTransition(0, Epsilon, 2)
	b.AddTransition(1, Symbol('a'), 1)
	b.AddTransition(1, Symbol('a'), 3)
	b.AddTransition(2, Epsilon, 3)
	b.AddTransition(3, Symbol('c'), 4)
	return b.Build(0, []StateID{3, 4})
}

func TestNFAAccepts(t *testing.T) {
	n := buildExampleNFA()

	accept := []string{"a", "aa", "c", "ac", "aac"}
	for _, w := range accept {
		if !n.Accepts(w) {
			t.Errorf("Accepts(%q) = false, want true", w)
		}
	}

	reject := []string{"b", "ab", "bba", "ca"}
	for _, w := range reject {
		if n.Accepts(w) {
			t.Errorf("Accepts(%q) = true, want false", w)
		}
	}
}

func TestNFARejectsIsComplement(t *testing.T) {
	n := buildExampleNFA()
	words := []string{"", "a", "aa", "c", "ac", "aac", "b", "ab", "bba", "ca"}
	for _, w := range words {
		if n.Accepts(w) == n.Rejects(w) {
			t.Errorf("Accepts(%q) and Rejects(%q) agree (%v); they must be complements", w, w, n.Accepts(w))
		}
	}
}

func TestEpsilonClosure(t *testing.T) {
	n := buildExampleNFA()
	got := n.EpsilonClosure([]StateID{0})
	want := []StateID{0, 1, 2, 3}
	if len(got) != len(want) {
		t.Fatalf("EpsilonClosure({0}) = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("EpsilonClosure({0})[%d] = %d, want %d", i, got[i], want[i])
		}
	}
}

func TestStep(t *testing.T) {
	n := buildExampleNFA()
	got := n.Step([]StateID{1, 2}, Symbol('a'))
	want := map[StateID]bool{1: true, 3: true}
	if len(got) != len(want) {
		t.Fatalf("Step({1,2}, 'a') = %v, want states %v", got, want)
	}
	for _, s := range got {
		if !want[s] {
			t.Errorf("Step({1,2}, 'a') included unexpected state %d", s)
		}
	}
}

func TestAlphabetExcludesEpsilon(t *testing.T) {
	n := buildExampleNFA()
	for _, sym := range n.Alphabet() {
		if sym == Epsilon {
			t.Errorf("Alphabet() included Epsilon")
		}
	}
	alphabet := n.Alphabet()
	if len(alphabet) != 2 || alphabet[0] != Symbol('a') || alphabet[1] != Symbol('c') {
		t.Errorf("Alphabet() = %v, want [a c]", alphabet)
	}
}
