package nfa

import "github.com/corewave/rexfa/internal/conv"

// Builder constructs an NFA incrementally: NewState hands out fresh,
// monotonically increasing StateIDs and AddTransition records edges. A
// Builder is scoped to a single compilation — Thompson's construction
// creates exactly one Builder per Compile call and never shares it across
// calls, so StateIDs never collide between compilations.
type Builder struct {
	transitions [][]Transition
}

// NewBuilder returns an empty Builder.
func NewBuilder() *Builder {
	return &Builder{}
}

// NewState allocates a fresh state with no outgoing transitions yet.
func (b *Builder) NewState() StateID {
	id := conv.IntToUint32(len(b.transitions))
	b.transitions = append(b.transitions, nil)
	return StateID(id)
}

// AddTransition records an edge from -- sym --> to. sym may be Epsilon.
// Adding a second transition for a state already holding one on the same
// symbol is legal and is how general (non-Thompson) NFAs express
// nondeterminism on a single symbol; transitions are never overwritten,
// only appended.
func (b *Builder) AddTransition(from StateID, sym Symbol, to StateID) {
	b.transitions[from] = append(b.transitions[from], Transition{Sym: sym, To: to})
}

// Build freezes the builder into an immutable NFA with the given start
// state and accepting set.
func (b *Builder) Build(start StateID, accept []StateID) *NFA {
	accepted := make(map[StateID]bool, len(accept))
	for _, a := range accept {
		accepted[a] = true
	}
	frozen := make([][]Transition, len(b.transitions))
	copy(frozen, b.transitions)
	return &NFA{transitions: frozen, start: start, accept: accepted}
}
