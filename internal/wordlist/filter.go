// Package wordlist reads word-list files and keeps the admissible words.
//
// A word is admissible when, after trimming surrounding whitespace, it is at
// least MinLength characters long, contains only lowercase ASCII letters and
// is not a possessive form ending in "'s".
package wordlist

import (
	"strings"
)

// MinLength is the default minimum admissible word length.
const MinLength = 3

// Filter decides which lines of a word list are admissible.
type Filter struct {
	minLength int
}

// NewFilter creates a Filter with the given minimum length. Values below 1
// fall back to MinLength.
func NewFilter(minLength int) *Filter {
	if minLength < 1 {
		minLength = MinLength
	}
	return &Filter{minLength: minLength}
}

// IsAdmissible reports whether line is an admissible word using the default
// minimum length.
func IsAdmissible(line string) bool {
	return NewFilter(MinLength).Admit(line)
}

// Admit reports whether line is an admissible word.
func (f *Filter) Admit(line string) bool {
	word := strings.TrimSpace(line)
	if len(word) < f.minLength {
		return false
	}
	if strings.HasSuffix(word, "'s") {
		return false
	}
	for i := 0; i < len(word); i++ {
		c := word[i]
		if c < 'a' || c > 'z' {
			return false
		}
	}
	return true
}

// Normalize returns the stored form of an admissible line.
func Normalize(line string) string {
	return strings.ToLower(strings.TrimSpace(line))
}
