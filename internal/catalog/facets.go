package catalog

import (
	"github.com/iancoleman/orderedmap"

	"musicschool/pkg/models"
)

// Facets holds result counts per genre and per price bracket. Each count
// keeps the rest of the criteria and swaps in just that one option, so a
// client can show "Piano (3)" next to each dropdown entry.
//
// Genres and Prices are ordered maps so the JSON keeps dropdown order.
type Facets struct {
	Total  int                    `json:"total"`
	Genres *orderedmap.OrderedMap `json:"genres"`
	Prices *orderedmap.OrderedMap `json:"prices"`
}

func ComputeFacets(courses []models.Course, c Criteria) Facets {
	f := Facets{
		Total:  Count(courses, c),
		Genres: orderedmap.New(),
		Prices: orderedmap.New(),
	}

	for _, g := range Genres {
		alt := c
		alt.Genre = g
		f.Genres.Set(string(g), Count(courses, alt))
	}
	for _, b := range Brackets {
		alt := c
		alt.Price = b
		f.Prices.Set(b.Key, Count(courses, alt))
	}
	return f
}
