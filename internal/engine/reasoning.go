package engine

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/scent-engine/backend/internal/catalog"
)

// maxReasons caps how many matched terms a reasoning string may cite.
const maxReasons = 3

// fallbackReason is used when no user keyword overlaps the item's terms.
const fallbackReason = "Matches your overall vibe"

// stopTerms are catalog words too generic to justify a match.
var stopTerms = map[string]bool{
	"notes":  true,
	"accord": true,
}

// Reason explains why item matched the user: the first few distinctive terms
// shared between the user's keywords and the item's family, notes and tags.
// Terms shorter than 3 characters and stop terms are discarded; duplicates
// keep their first position.
func Reason(item catalog.Item, keywords []string) string {
	itemTokens := tokenSet(item.MatchText())

	var matched []string
	seen := make(map[string]bool)
	for _, term := range strings.Fields(strings.ToLower(strings.Join(keywords, " "))) {
		if len(term) < 3 || stopTerms[term] || seen[term] {
			continue
		}
		seen[term] = true
		if itemTokens[term] {
			matched = append(matched, term)
			if len(matched) == maxReasons {
				break
			}
		}
	}

	if len(matched) == 0 {
		return fallbackReason
	}
	return fmt.Sprintf("Matches your love for %s", strings.Join(matched, ", "))
}

// tokenSet splits text on commas and whitespace into a membership set.
func tokenSet(text string) map[string]bool {
	fields := strings.FieldsFunc(text, func(r rune) bool {
		return r == ',' || unicode.IsSpace(r)
	})
	set := make(map[string]bool, len(fields))
	for _, f := range fields {
		set[f] = true
	}
	return set
}
