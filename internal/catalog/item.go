package catalog

import "strings"

// Notes groups an item's scent pyramid by tier. Tiers may be empty but are
// always present.
type Notes struct {
	Top    []string `json:"top"`
	Middle []string `json:"middle"`
	Base   []string `json:"base"`
}

// Item is a single catalog entry. Items are immutable once loaded.
type Item struct {
	ID          string   `json:"id"`
	Brand       string   `json:"brand"`
	Name        string   `json:"name"`
	Family      string   `json:"family"`
	Notes       Notes    `json:"notes"`
	Description string   `json:"description"`
	Tags        []string `json:"tags"`
	Link        string   `json:"link,omitempty"`
}

// Document returns the lowercase text the vectorizer indexes: family, all
// note tiers, tags and description joined by spaces.
func (it Item) Document() string {
	parts := make([]string, 0, 2+len(it.Notes.Top)+len(it.Notes.Middle)+len(it.Notes.Base)+len(it.Tags))
	parts = append(parts, it.Family)
	parts = append(parts, it.Notes.Top...)
	parts = append(parts, it.Notes.Middle...)
	parts = append(parts, it.Notes.Base...)
	parts = append(parts, it.Tags...)
	parts = append(parts, it.Description)
	return strings.ToLower(strings.Join(parts, " "))
}

// MatchText returns the lowercase text the reasoning generator tokenizes:
// family, notes and tags, with multi-word fields comma-joined. The free-text
// description is deliberately excluded.
func (it Item) MatchText() string {
	parts := []string{
		it.Family,
		strings.Join(it.Notes.Top, ","),
		strings.Join(it.Notes.Middle, ","),
		strings.Join(it.Notes.Base, ","),
		strings.Join(it.Tags, ","),
	}
	return strings.ToLower(strings.Join(parts, " "))
}
