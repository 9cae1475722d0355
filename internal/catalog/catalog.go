// Package catalog defines the static trivia category catalog. Categories
// are fixed at build time; questions are ingested into them at runtime.
package catalog

import "fmt"

// Category is one trivia subject area.
type Category struct {
	ID   string
	Name string
	// Description seeds question generation prompts.
	Description string
}

// categories is the full catalog, ordered for display.
var categories = []Category{
	{ID: "history", Name: "History", Description: "World and U.S. history, famous events, leaders, and eras"},
	{ID: "geography", Name: "Geography", Description: "Countries, capitals, rivers, mountains, and landmarks"},
	{ID: "science", Name: "Science & Nature", Description: "Physics, chemistry, biology, astronomy, and the natural world"},
	{ID: "literature", Name: "Literature", Description: "Novels, authors, poetry, and literary characters"},
	{ID: "arts", Name: "Art & Music", Description: "Painters, composers, musicians, and famous works"},
	{ID: "movies", Name: "Movies & TV", Description: "Films, television, actors, and directors"},
	{ID: "sports", Name: "Sports", Description: "Athletes, championships, rules, and records"},
	{ID: "pop-culture", Name: "Pop Culture", Description: "Celebrities, trends, and modern media"},
	{ID: "words", Name: "Word Play", Description: "Vocabulary, etymology, anagrams, and language"},
	{ID: "food-drink", Name: "Food & Drink", Description: "Cuisine, cooking, beverages, and food history"},
	{ID: "business", Name: "Business & Economics", Description: "Companies, markets, money, and trade"},
	{ID: "mythology", Name: "Mythology & Religion", Description: "Myths, deities, sacred texts, and traditions"},
	{ID: "technology", Name: "Technology", Description: "Computing, inventions, and inventors"},
	{ID: "politics", Name: "Politics & Government", Description: "Governments, elections, laws, and world leaders"},
}

var byID = func() map[string]Category {
	m := make(map[string]Category, len(categories))
	for _, c := range categories {
		m[c.ID] = c
	}
	return m
}()

// AllCategories returns every category in display order.
func AllCategories() []Category {
	out := make([]Category, len(categories))
	copy(out, categories)
	return out
}

// Count returns the number of categories in the catalog.
func Count() int {
	return len(categories)
}

// GetCategory looks up a category by ID.
func GetCategory(id string) (Category, error) {
	c, ok := byID[id]
	if !ok {
		return Category{}, fmt.Errorf("unknown category %q", id)
	}
	return c, nil
}

// IsKnown reports whether a category ID exists in the catalog.
func IsKnown(id string) bool {
	_, ok := byID[id]
	return ok
}

// CategoryName returns the display name for an ID, falling back to the ID
// itself for unknown categories.
func CategoryName(id string) string {
	if c, ok := byID[id]; ok {
		return c.Name
	}
	return id
}
