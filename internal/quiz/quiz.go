// Package quiz defines the question flow served to clients. Answer values
// line up with the profile package's lookup tables.
package quiz

// Option is one selectable choice.
type Option struct {
	Label string `json:"label"`
	Value string `json:"value"`
	Emoji string `json:"emoji,omitempty"`
}

// Question is a single quiz step. Multi questions accept any number of
// selections, single questions exactly one.
type Question struct {
	ID      int      `json:"id"`
	Text    string   `json:"text"`
	Type    string   `json:"type"` // "single" or "multi"
	Options []Option `json:"options"`
}

// Default returns the built-in question flow.
func Default() []Question {
	return []Question{
		{
			ID:   1,
			Text: "What vibe are you looking for?",
			Type: "multi",
			Options: []Option{
				{Label: "Clean & Fresh", Value: "clean", Emoji: "🛁"},
				{Label: "Dark & Mysterious", Value: "dark", Emoji: "🌑"},
				{Label: "Warm & Cozy", Value: "warm", Emoji: "🧣"},
				{Label: "Floral & Romantic", Value: "floral", Emoji: "🌹"},
			},
		},
		{
			ID:   2,
			Text: "Where will you wear this perfume?",
			Type: "single",
			Options: []Option{
				{Label: "Daily / Office", Value: "office", Emoji: "💼"},
				{Label: "Date Night", Value: "date", Emoji: "🍷"},
				{Label: "Vacation", Value: "vacation", Emoji: "🌴"},
				{Label: "Gym / Active", Value: "gym", Emoji: "💪"},
			},
		},
		{
			ID:   3,
			Text: "Pick a scent memory:",
			Type: "single",
			Options: []Option{
				{Label: "Walking in a pine forest after rain", Value: "woody_rain", Emoji: "🌲"},
				{Label: "Baking vanilla cookies", Value: "gourmand_cookies", Emoji: "🍪"},
				{Label: "A bouquet of fresh roses", Value: "floral_rose", Emoji: "💐"},
				{Label: "Sipping a margarita on the beach", Value: "citrus_beach", Emoji: "🍹"},
			},
		},
	}
}
