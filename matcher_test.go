package rexfa

import (
	"errors"
	"testing"

	"github.com/corewave/rexfa/internal/syntax"
)

func TestCompileAndAccepts(t *testing.T) {
	tests := []struct {
		pattern string
		accept  []string
		reject  []string
	}{
		{
			pattern: "a*b*",
			accept:  []string{"", "a", "b", "ab", "aabb"},
			reject:  []string{"ba", "aba"},
		},
		{
			pattern: "d|(a*b|c*)e",
			accept:  []string{"d", "e", "ce", "ccce", "be", "abe", "aabe"},
			reject:  []string{"", "da", "ec", "de", "b", "a", "ae", "ab", "ace", "abce", "dabe"},
		},
	}

	for _, tt := range tests {
		m, err := Compile(tt.pattern)
		if err != nil {
			t.Fatalf("Compile(%q) returned error: %v", tt.pattern, err)
		}
		for _, w := range tt.accept {
			if !m.Accepts(w) {
				t.Errorf("Compile(%q).Accepts(%q) = false, want true", tt.pattern, w)
			}
			if m.Rejects(w) {
				t.Errorf("Compile(%q).Rejects(%q) = true, want false", tt.pattern, w)
			}
		}
		for _, w := range tt.reject {
			if m.Accepts(w) {
				t.Errorf("Compile(%q).Accepts(%q) = true, want false", tt.pattern, w)
			}
			if !m.Rejects(w) {
				t.Errorf("Compile(%q).Rejects(%q) = false, want true", tt.pattern, w)
			}
		}
	}
}

func TestCompileInvalidSyntax(t *testing.T) {
	_, err := Compile("a|")
	if err == nil {
		t.Fatal("Compile(\"a|\") returned no error for a truncated alternation")
	}
	if !errors.Is(err, syntax.ErrInvalidSyntax) {
		t.Errorf("Compile error %v does not wrap syntax.ErrInvalidSyntax", err)
	}
}

func TestMustCompilePanicsOnInvalidPattern(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("MustCompile did not panic on invalid pattern")
		}
	}()
	MustCompile("(a")
}

func TestMatcherString(t *testing.T) {
	m := MustCompile("a*b*")
	if m.String() != "a*b*" {
		t.Errorf("String() = %q, want %q", m.String(), "a*b*")
	}
}

func TestCompileWithConfigDebugTraces(t *testing.T) {
	// Debug tracing must not change the compiled result, only whether it logs.
	m, err := CompileWithConfig("a*b*", Config{Debug: true})
	if err != nil {
		t.Fatalf("CompileWithConfig returned error: %v", err)
	}
	if !m.Accepts("aabb") {
		t.Errorf("Accepts(\"aabb\") = false, want true")
	}
}
