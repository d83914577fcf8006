package common

import "strings"

// EnvName transliterates an argument key into an environment variable
// name: ASCII letters are upper-cased, every other rune becomes '_', and
// a leading digit is prefixed with '_' so the result is always a valid
// shell identifier.
func EnvName(key string) string {
	var b strings.Builder
	b.Grow(len(key) + 1)
	for i, r := range key {
		c := r
		if !isAlnum(c) && c != '_' {
			c = '_'
		}
		if i == 0 && c >= '0' && c <= '9' {
			b.WriteByte('_')
		}
		b.WriteRune(toUpper(c))
	}
	return b.String()
}

// ValidEnvName reports whether s is usable verbatim as an environment
// variable name ([A-Za-z_][A-Za-z0-9_]*).
func ValidEnvName(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		if r == '_' || isAlpha(r) {
			continue
		}
		if i > 0 && r >= '0' && r <= '9' {
			continue
		}
		return false
	}
	return true
}

func isAlpha(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

func isAlnum(r rune) bool {
	return isAlpha(r) || (r >= '0' && r <= '9')
}

func toUpper(r rune) rune {
	if r >= 'a' && r <= 'z' {
		return r - ('a' - 'A')
	}
	return r
}
