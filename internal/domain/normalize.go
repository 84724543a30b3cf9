package domain

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"
)

// FoldWord prepares a single word for use as a lookup key:
//   - trims leading/trailing whitespace
//   - composes to Unicode NFC
//   - converts to lowercase
//
// Diacritics, hyphens, and apostrophes are preserved.
func FoldWord(word string) string {
	word = strings.TrimSpace(word)
	if word == "" {
		return ""
	}
	// A Caser keeps state between calls, so one is created per use.
	return cases.Lower(language.Portuguese).String(norm.NFC.String(word))
}

// LowerWord returns word in lowercase using Portuguese casing rules.
func LowerWord(word string) string {
	return cases.Lower(language.Portuguese).String(word)
}

// UpperWord returns word in uppercase using Portuguese casing rules.
func UpperWord(word string) string {
	return cases.Upper(language.Portuguese).String(word)
}
