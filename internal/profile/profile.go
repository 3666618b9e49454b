// Package profile turns raw quiz answers into the descriptive keywords that
// seed a user's query vector.
package profile

import (
	"encoding/json"
	"sort"
	"strings"
)

// Answer is one quiz answer: a single selected value or a list of them. It
// unmarshals transparently from a JSON string or array of strings, so single-
// and multi-select questions share one shape.
type Answer struct {
	values []string
}

// Single wraps one selected value.
func Single(v string) Answer {
	return Answer{values: []string{v}}
}

// Multi wraps an ordered list of selected values.
func Multi(vs ...string) Answer {
	return Answer{values: vs}
}

// Values returns the selected values in selection order.
func (a Answer) Values() []string {
	return a.values
}

func (a *Answer) UnmarshalJSON(data []byte) error {
	var single string
	if err := json.Unmarshal(data, &single); err == nil {
		a.values = []string{single}
		return nil
	}
	var multi []string
	if err := json.Unmarshal(data, &multi); err != nil {
		return err
	}
	a.values = multi
	return nil
}

func (a Answer) MarshalJSON() ([]byte, error) {
	if len(a.values) == 1 {
		return json.Marshal(a.values[0])
	}
	return json.Marshal(a.values)
}

// Answers maps question ids to the user's selections. Unknown ids and values
// are ignored, not rejected.
type Answers map[string]Answer

// vibes expands a mood selection into descriptive scent keywords.
var vibes = map[string]string{
	"clean":  "fresh clean citrus soap",
	"dark":   "dark incense leather tobacco smoky",
	"warm":   "warm amber vanilla spicy cozy",
	"floral": "rose jasmine floral bouquet romantic",
}

// memories expands a scent-memory selection the same way.
var memories = map[string]string{
	"woody_rain":       "pine cedar vetiver woody rain earth",
	"gourmand_cookies": "vanilla sugar chocolate sweet gourmand",
	"floral_rose":      "rose garden floral fresh petals",
	"citrus_beach":     "lime lemon salt sea ocean beach",
}

// DefaultQuery seeds the user vector when no answer matched any lookup table,
// so the pipeline never vectorizes an empty string.
const DefaultQuery = "fresh clean"

// Keywords flattens the answers in sorted question-id order and collects the
// phrase for every value found in the vibe or memory table. A value may match
// both tables; unmatched values are skipped silently. Go map iteration is
// randomized, so the explicit key sort keeps the output deterministic.
func Keywords(answers Answers) []string {
	ids := make([]string, 0, len(answers))
	for id := range answers {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	var keywords []string
	for _, id := range ids {
		for _, val := range answers[id].Values() {
			if phrase, ok := vibes[val]; ok {
				keywords = append(keywords, phrase)
			}
			if phrase, ok := memories[val]; ok {
				keywords = append(keywords, phrase)
			}
		}
	}
	return keywords
}

// QueryText joins keywords into the vectorizer query, falling back to
// DefaultQuery when nothing matched.
func QueryText(keywords []string) string {
	if len(keywords) == 0 {
		return DefaultQuery
	}
	return strings.Join(keywords, " ")
}
