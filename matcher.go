// Package rexfa compiles regular expressions over the ASCII alphanumeric
// alphabet into deterministic finite automata and matches whole words
// against them.
//
// The compiler is a four-pass pipeline: a shunting-yard parser turns
// infix syntax into prefix form, a recursive-descent pass builds an AST,
// Thompson's construction turns the AST into an ε-NFA, and subset
// construction determinizes that into a DFA. Matching is whole-word
// equality against the language the DFA accepts — there is no partial or
// search matching, no capture groups, and no Unicode support.
//
// Basic usage:
//
//	m, err := rexfa.Compile("a*b*")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	m.Accepts("aabb") // true
//	m.Rejects("aba")  // true
package rexfa

import (
	"github.com/corewave/rexfa/dfa"
	"github.com/corewave/rexfa/internal/syntax"
	"github.com/corewave/rexfa/nfa"
)

// Matcher is a compiled regular expression: an immutable DFA plus the
// source pattern it was compiled from. Safe to use concurrently from
// multiple goroutines — compilation has already finished and nothing here
// is mutated afterward.
type Matcher struct {
	dfa     *dfa.DFA
	pattern string
}

// Compile compiles a regex pattern with the default configuration.
//
//	m, err := rexfa.Compile(`(a|b)*c`)
func Compile(pattern string) (*Matcher, error) {
	return CompileWithConfig(pattern, DefaultConfig())
}

// MustCompile compiles pattern and panics if it is invalid. Useful for
// patterns known to be valid at compile time, e.g. package-level vars.
func MustCompile(pattern string) *Matcher {
	m, err := Compile(pattern)
	if err != nil {
		panic("rexfa: Compile(" + pattern + "): " + err.Error())
	}
	return m
}

// CompileWithConfig compiles pattern, tracing each pipeline stage through
// gologger when cfg.Debug is set (see Config).
func CompileWithConfig(pattern string, cfg Config) (*Matcher, error) {
	trace := newTracer(cfg, pattern)

	normalized := syntax.Normalize(pattern)
	trace.stage("normalize", normalized)

	prefix, err := syntax.ToPrefix(normalized)
	if err != nil {
		return nil, err
	}
	trace.stage("shunting-yard", prefix)

	root, err := syntax.Parse(prefix)
	if err != nil {
		return nil, err
	}
	trace.stage("parse", "ast built")

	n := nfa.Compile(root)
	trace.stageCount("thompson", n.NumStates())

	d := dfa.Determinize(n)
	trace.stageCount("determinize", d.NumStates())

	return &Matcher{dfa: d, pattern: pattern}, nil
}

// Accepts reports whether word, taken as a whole, is in the language of
// the compiled pattern.
func (m *Matcher) Accepts(word string) bool {
	return m.dfa.Accepts(word)
}

// Rejects is the complement of Accepts — exactly one of the two is ever
// true for a given word (spec invariant: DFA totality of decision).
func (m *Matcher) Rejects(word string) bool {
	return m.dfa.Rejects(word)
}

// String returns the source pattern the matcher was compiled from.
func (m *Matcher) String() string {
	return m.pattern
}
