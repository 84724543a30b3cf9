// Package orthography rewrites running text word by word through a spelling
// table while leaving everything around the words untouched.
//
// Tokens are the whitespace-delimited chunks of the text with leading and
// trailing punctuation peeled off; a token starts and ends with a letter or
// digit. Hyphens and apostrophes inside a token belong to it. A token is
// looked up whole first; if that misses and it contains hyphens, each
// hyphen-separated part is looked up on its own ("actua-se" → "atua-se").
// Apostrophes never split a token.
package orthography

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/heartmarshall/tugalex-backend/internal/domain"
)

// Lookup returns the replacement of a single word, if any. Implementations
// are expected to match case-insensitively.
type Lookup func(word string) (string, bool)

// Rewrite replaces every mapped token of text. Whitespace, punctuation and
// unmapped tokens are copied byte for byte.
func Rewrite(text string, lookup Lookup) string {
	var b strings.Builder
	b.Grow(len(text))

	for len(text) > 0 {
		// Whitespace run.
		i := strings.IndexFunc(text, func(r rune) bool { return !unicode.IsSpace(r) })
		if i < 0 {
			b.WriteString(text)
			break
		}
		b.WriteString(text[:i])
		text = text[i:]

		// Non-whitespace chunk.
		j := strings.IndexFunc(text, unicode.IsSpace)
		if j < 0 {
			j = len(text)
		}
		b.WriteString(rewriteChunk(text[:j], lookup))
		text = text[j:]
	}

	return b.String()
}

// rewriteChunk splits a chunk into prefix, token and suffix and rewrites the token.
func rewriteChunk(chunk string, lookup Lookup) string {
	start := strings.IndexFunc(chunk, isWordRune)
	if start < 0 {
		return chunk
	}
	end := lastIndexFunc(chunk, isWordRune)

	token := chunk[start:end]
	replaced := rewriteToken(token, lookup)
	if replaced == token {
		return chunk
	}
	return chunk[:start] + replaced + chunk[end:]
}

func rewriteToken(token string, lookup Lookup) string {
	if r, ok := replace(token, lookup); ok {
		return r
	}
	if !strings.Contains(token, "-") {
		return token
	}

	parts := strings.Split(token, "-")
	changed := false
	for i, p := range parts {
		if p == "" {
			continue
		}
		if r, ok := replace(p, lookup); ok {
			parts[i] = r
			changed = true
		}
	}
	if !changed {
		return token
	}
	return strings.Join(parts, "-")
}

// replace looks word up and carries its capitalization over to the result.
// A replacement that folds to the same word returns the input unchanged.
func replace(word string, lookup Lookup) (string, bool) {
	r, ok := lookup(word)
	if !ok || r == "" {
		return "", false
	}
	if domain.FoldWord(r) == domain.FoldWord(word) {
		return word, true
	}
	return MatchCase(word, r), true
}

// MatchCase applies the capitalization pattern of src to repl:
// an all-uppercase src (two or more letters) uppercases repl, a capitalized
// src capitalizes repl, an all-lowercase src lowercases repl, and a mixed
// src returns repl as given.
func MatchCase(src, repl string) string {
	letters, upper := 0, 0
	firstUpper := false
	for _, r := range src {
		if !unicode.IsLetter(r) {
			continue
		}
		if letters == 0 {
			firstUpper = unicode.IsUpper(r)
		}
		letters++
		if unicode.IsUpper(r) {
			upper++
		}
	}

	switch {
	case letters >= 2 && upper == letters:
		return domain.UpperWord(repl)
	case firstUpper:
		return capitalize(repl)
	case upper == 0:
		return domain.LowerWord(repl)
	default:
		return repl
	}
}

func capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.Is(unicode.Mn, r)
}

// lastIndexFunc returns the byte offset just past the last rune satisfying f.
func lastIndexFunc(s string, f func(rune) bool) int {
	i := strings.LastIndexFunc(s, f)
	if i < 0 {
		return -1
	}
	_, size := utf8.DecodeRuneInString(s[i:])
	return i + size
}
