// Package textnorm normalizes raw text before counting: ASCII letters are
// lowercased and ASCII punctuation is dropped. Everything else, including
// non-ASCII runes and whitespace, is kept as is.
package textnorm

import (
	"strings"
	"unicode/utf8"
)

// Normalize returns s lowercased (ASCII only) with ASCII punctuation removed.
func Normalize(s string) string {
	return strings.Map(func(r rune) rune {
		if r >= utf8.RuneSelf {
			return r
		}
		if IsPunct(r) {
			return -1
		}
		if 'A' <= r && r <= 'Z' {
			return r + ('a' - 'A')
		}
		return r
	}, s)
}

// IsPunct reports whether r is one of the 32 ASCII punctuation characters
// !"#$%&'()*+,-./:;<=>?@[\]^_`{|}~
func IsPunct(r rune) bool {
	switch {
	case '!' <= r && r <= '/':
		return true
	case ':' <= r && r <= '@':
		return true
	case '[' <= r && r <= '`':
		return true
	case '{' <= r && r <= '~':
		return true
	}
	return false
}

// Tokens splits normalized text on whitespace.
func Tokens(s string) []string {
	return strings.Fields(s)
}
