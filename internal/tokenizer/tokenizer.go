// Package tokenizer provides the word splitting used for relevance scoring.
package tokenizer

import "strings"

// Tokenize converts a string into a slice of lowercase tokens.
// Text is split on whitespace and empty tokens are discarded. Punctuation stays
// attached to its word: "views," and "views" are distinct tokens, which matches
// the scoring semantics of the search pipeline.
func Tokenize(text string) []string {
	fields := strings.Fields(text)
	tokens := make([]string, 0, len(fields))
	for _, f := range fields {
		tokens = append(tokens, strings.ToLower(f))
	}
	return tokens
}

// TokenSet tokenizes text and returns the tokens as a membership set.
// Used for the record side of scoring, where only presence matters.
func TokenSet(text string) map[string]struct{} {
	tokens := Tokenize(text)
	set := make(map[string]struct{}, len(tokens))
	for _, t := range tokens {
		set[t] = struct{}{}
	}
	return set
}
