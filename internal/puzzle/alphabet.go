package puzzle

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"
)

// Alphabet is the keyboard letter order: the Turkish alphabet merged with Q, W and X.
const Alphabet = "ABCÇDEFGĞHIİJKLMNOÖPQRSŞTUÜVWXYZ"

// Digits are guessable too, shown after the letters.
const Digits = "0123456789"

const extendedLetters = "ÇĞİÖŞÜ"

// Keyboard returns every guessable character in display order.
func Keyboard() []rune {
	return []rune(Alphabet + Digits)
}

// IsGuessable reports whether c is a tile that has to be discovered.
// Spaces and punctuation are always visible.
func IsGuessable(c rune) bool {
	switch {
	case c >= 'A' && c <= 'Z':
		return true
	case c >= '0' && c <= '9':
		return true
	default:
		return strings.ContainsRune(extendedLetters, c)
	}
}

// Normalize composes s to NFC and upper-cases it without language tailoring,
// so a lowercase dotless ı becomes I and a dotted İ is kept.
func Normalize(s string) string {
	return cases.Upper(language.Und).String(norm.NFC.String(s))
}

// NormalizeRune upper-cases a single character. Characters that expand to
// more than one rune when upper-cased are returned unchanged.
func NormalizeRune(c rune) rune {
	r := []rune(Normalize(string(c)))
	if len(r) != 1 {
		return c
	}
	return r[0]
}
