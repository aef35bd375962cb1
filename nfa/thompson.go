package nfa

import "github.com/corewave/rexfa/internal/syntax"

// fragment is an in-progress NFA piece: a single entry state and the set of
// states that accept if control reaches them. Fragments are combined
// compositionally by Compile, mirroring the shape of the AST exactly —
// this is Thompson's construction (spec §4.5).
type fragment struct {
	start  StateID
	accept []StateID
}

// Compile runs Thompson's construction over an AST produced by
// syntax.Parse, threading a single Builder (and therefore a single id
// space) through the whole recursion.
func Compile(root *syntax.Node) *NFA {
	b := NewBuilder()
	frag := compileNode(b, root)
	return b.Build(frag.start, frag.accept)
}

func compileNode(b *Builder, node *syntax.Node) fragment {
	switch node.Kind {
	case syntax.NodeLiteral:
		return compileLiteral(b, node.Sym)
	case syntax.NodeStar:
		child := compileNode(b, node.Left)
		return compileStar(b, child)
	case syntax.NodeConcat:
		left := compileNode(b, node.Left)
		right := compileNode(b, node.Right)
		return compileConcat(b, left, right)
	case syntax.NodeAlt:
		left := compileNode(b, node.Left)
		right := compileNode(b, node.Right)
		return compileAlt(b, left, right)
	default:
		// An AST produced by syntax.Parse never carries any other kind;
		// seeing one here is a compiler bug, not a user input error.
		panic("nfa: AST node with unknown kind reached Thompson's construction")
	}
}

// compileLiteral builds q0 --sym--> q1, with q1 the sole accept state.
func compileLiteral(b *Builder, sym byte) fragment {
	start := b.NewState()
	accept := b.NewState()
	b.AddTransition(start, Symbol(sym), accept)
	return fragment{start: start, accept: []StateID{accept}}
}

// compileStar adds an ε-edge from every accept state of child back to
// child's own start, and adds that same start state to the accepting set
// — admitting the empty match without a new wrapper state (spec §9).
func compileStar(b *Builder, child fragment) fragment {
	for _, f := range child.accept {
		b.AddTransition(f, Epsilon, child.start)
	}
	accept := append([]StateID{child.start}, child.accept...)
	return fragment{start: child.start, accept: accept}
}

// compileConcat chains left into right: every accept state of left gets an
// ε-edge to right's start; the combined fragment accepts where right does.
func compileConcat(b *Builder, left, right fragment) fragment {
	for _, f := range left.accept {
		b.AddTransition(f, Epsilon, right.start)
	}
	return fragment{start: left.start, accept: right.accept}
}

// compileAlt introduces a fresh start state with ε-edges to both branches;
// the combined fragment accepts where either branch does.
func compileAlt(b *Builder, left, right fragment) fragment {
	start := b.NewState()
	b.AddTransition(start, Epsilon, left.start)
	b.AddTransition(start, Epsilon, right.start)
	accept := make([]StateID, 0, len(left.accept)+len(right.accept))
	accept = append(accept, left.accept...)
	accept = append(accept, right.accept...)
	return fragment{start: start, accept: accept}
}
