package tokenizer

import (
	"fmt"
	"unicode/utf8"
)

// DefaultSeparators holds the characters treated as word boundaries.
const DefaultSeparators = " \t\n\r,-.!?[]';:/()"

// Separators is an immutable set of separator runes.
type Separators struct {
	set map[rune]struct{}
}

// NewSeparators builds a separator set from every rune in chars.
func NewSeparators(chars string) *Separators {
	set := make(map[rune]struct{}, len(chars))
	for _, r := range chars {
		set[r] = struct{}{}
	}
	return &Separators{set: set}
}

// Default returns a set built from DefaultSeparators.
func Default() *Separators {
	return NewSeparators(DefaultSeparators)
}

// Contains reports whether r is a separator.
func (s *Separators) Contains(r rune) bool {
	_, ok := s.set[r]
	return ok
}

// Len returns the number of distinct separator runes.
func (s *Separators) Len() int {
	return len(s.set)
}

// NextWordOrSeparator returns the longest substring of text starting at the
// byte offset position whose runes are either all separators or all
// non-separators, following the class of the rune at position.
//
// position must satisfy 0 <= position < len(text).
func NextWordOrSeparator(text string, position int, seps *Separators) string {
	if position < 0 || position >= len(text) {
		panic(fmt.Sprintf("tokenizer: position %d out of range [0, %d)", position, len(text)))
	}

	first, _ := utf8.DecodeRuneInString(text[position:])
	separator := seps.Contains(first)

	end := position
	for end < len(text) {
		r, size := utf8.DecodeRuneInString(text[end:])
		if seps.Contains(r) != separator {
			break
		}
		end += size
	}
	return text[position:end]
}

// Split breaks text into successive word and separator runs. Concatenating
// the result yields text unchanged.
func Split(text string, seps *Separators) []string {
	var tokens []string
	for position := 0; position < len(text); {
		token := NextWordOrSeparator(text, position, seps)
		tokens = append(tokens, token)
		position += len(token)
	}
	return tokens
}

// IsWord reports whether token is a word run rather than a separator run.
// The empty string is not a word.
func IsWord(token string, seps *Separators) bool {
	if token == "" {
		return false
	}
	first, _ := utf8.DecodeRuneInString(token)
	return !seps.Contains(first)
}
