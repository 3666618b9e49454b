package search

import "strings"

// MinTermLength is the shortest term admitted into the vocabulary.
const MinTermLength = 2

// Tokenize splits text into lowercase whitespace-separated tokens.
func Tokenize(text string) []string {
	return strings.Fields(strings.ToLower(text))
}
