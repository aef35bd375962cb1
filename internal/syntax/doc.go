// Package syntax implements the front end of the regex compiler: it turns
// an infix regex string over the ASCII alphanumeric alphabet into a binary
// abstract syntax tree.
//
// The pipeline is three passes, each one a pure function of its input:
//
//	Normalize  — strip whitespace, make concatenation explicit ('.')
//	ToPrefix   — a right-to-left shunting-yard pass to prefix form
//	Parse      — recursive descent over the prefix form into an AST
//
// None of the three passes allocates state that outlives the call; there is
// no compiled-pattern cache and no shared mutable state between calls.
package syntax
