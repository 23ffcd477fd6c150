// Package utils implements internal helpers shared across commands:
// filesystem checks and the ASCII-letter word validation the build
// compiler applies to corpus input.
package utils

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// NormalizeWord lowercases s, strips non-letter runes from both ends, and
// reports ok=false if anything other than ASCII letters remains. This is
// the exact rule the build-time compiler applies to every corpus/word-list
// token before it becomes a dictionary entry. s is NFC-normalized first so
// a letter followed by a combining mark folds to a single precomposed rune
// before the ASCII check. Such a rune is not an ASCII letter: inside the
// word it makes the word invalid, and at either end it is stripped.
func NormalizeWord(s string) (word string, ok bool) {
	lower := strings.ToLower(norm.NFC.String(s))
	start, end := 0, len(lower)
	for start < end && !isASCIILetter(lower[start]) {
		start++
	}
	for end > start && !isASCIILetter(lower[end-1]) {
		end--
	}
	trimmed := lower[start:end]
	if trimmed == "" {
		return "", false
	}
	for i := 0; i < len(trimmed); i++ {
		if !isASCIILetter(trimmed[i]) {
			return "", false
		}
	}
	return trimmed, true
}

func isASCIILetter(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}

// Tokenize splits text into words on runs of non-letter characters, for
// counting frequencies against a plain-text corpus.
func Tokenize(text string) []string {
	text = norm.NFC.String(text)
	var tokens []string
	start := -1
	for i := 0; i < len(text); i++ {
		if isASCIILetter(text[i]) {
			if start == -1 {
				start = i
			}
			continue
		}
		if start != -1 {
			tokens = append(tokens, text[start:i])
			start = -1
		}
	}
	if start != -1 {
		tokens = append(tokens, text[start:])
	}
	return tokens
}
