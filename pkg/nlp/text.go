// Package nlp holds the small text helpers used for skill matching between job
// posts, profiles and resume text.
package nlp

import (
	"regexp"
	"strings"
)

var (
	nonWord    = regexp.MustCompile(`[^\p{L}\p{N}+#]+`)
	multiSpace = regexp.MustCompile(`\s+`)
)

// Normalize lowercases s and replaces everything that is not a letter, digit,
// '+' or '#' with single spaces. "C++" and "C#" survive as tokens.
func Normalize(s string) string {
	s = strings.ToLower(s)
	s = nonWord.ReplaceAllString(s, " ")
	s = multiSpace.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}

// ContainsPhrase reports whether the normalized phrase occurs in the normalized
// text as whole words: "rest api" matches "... rest api ..." but not "rest apis".
func ContainsPhrase(normalizedText, normalizedPhrase string) bool {
	if normalizedPhrase == "" {
		return false
	}
	hay := " " + normalizedText + " "
	needle := " " + normalizedPhrase + " "
	return strings.Contains(hay, needle)
}
