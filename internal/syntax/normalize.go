package syntax

import "strings"

// isAlnum reports whether c is an ASCII letter or digit — the only symbols
// in this engine's alphabet.
func isAlnum(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9')
}

// concatClass classifies a character for the implicit-concatenation rule:
// alphanumerics all collapse to 'A', every metacharacter stands for itself.
func concatClass(c byte) byte {
	if isAlnum(c) {
		return 'A'
	}
	return c
}

// needsConcat reports whether an explicit '.' must be inserted between
// adjacent characters x and y, per the pair table in spec §4.1.
func needsConcat(x, y byte) bool {
	switch string([]byte{concatClass(x), concatClass(y)}) {
	case "AA", "A(", "*A", "*(", ")(", ")A":
		return true
	default:
		return false
	}
}

// Normalize strips all whitespace from s and inserts an explicit
// concatenation operator '.' between adjacent operands that would otherwise
// concatenate implicitly. It performs no validation — invalid characters
// pass through untouched and are caught by later stages.
func Normalize(s string) string {
	stripped := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c == ' ' || c == '\t' || c == '\n' || c == '\r' || c == '\v' || c == '\f' {
			continue
		}
		stripped = append(stripped, c)
	}

	if len(stripped) == 0 {
		return ""
	}

	var out strings.Builder
	out.Grow(len(stripped) * 2)
	for i, c := range stripped {
		out.WriteByte(c)
		if i == len(stripped)-1 {
			break
		}
		if needsConcat(c, stripped[i+1]) {
			out.WriteByte('.')
		}
	}
	return out.String()
}
