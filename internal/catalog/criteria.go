package catalog

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidCriteria is wrapped by every parse failure so callers can map it
// to a client error.
var ErrInvalidCriteria = errors.New("invalid criteria")

// Genre is a course genre as shown in the genre dropdown.
// Matching is done against the course title, not a structured field.
type Genre string

const (
	GenreAll        Genre = "All"
	GenreGuitar     Genre = "Guitar"
	GenrePiano      Genre = "Piano"
	GenreVocal      Genre = "Vocal"
	GenreDrums      Genre = "Drums"
	GenreJazz       Genre = "Jazz"
	GenreProduction Genre = "Production"
	GenreClassical  Genre = "Classical"
	GenreBlues      Genre = "Blues"
	GenreElectronic Genre = "Electronic"
)

// Genres lists every selectable genre in display order, "All" first.
var Genres = []Genre{
	GenreAll,
	GenreGuitar,
	GenrePiano,
	GenreVocal,
	GenreDrums,
	GenreJazz,
	GenreProduction,
	GenreClassical,
	GenreBlues,
	GenreElectronic,
}

func (g Genre) isAll() bool {
	return g == "" || g == GenreAll
}

// Bracket is a named price range. Min is inclusive; Max is inclusive, and a
// nil Max means the bracket has no upper bound.
type Bracket struct {
	Key   string   `json:"key"`
	Label string   `json:"label"`
	Min   float64  `json:"min"`
	Max   *float64 `json:"max"`
}

// Contains reports whether price falls inside the bracket.
func (b Bracket) Contains(price float64) bool {
	if price < b.Min {
		return false
	}
	return b.Max == nil || price <= *b.Max
}

func bound(v float64) *float64 { return &v }

// clone gives the copy its own Max so callers cannot reach the shared
// package-level bounds.
func (b Bracket) clone() Bracket {
	if b.Max != nil {
		b.Max = bound(*b.Max)
	}
	return b
}

var (
	BracketAll      = Bracket{Key: "all", Label: "All Prices", Min: 0}
	BracketUnder100 = Bracket{Key: "under-100", Label: "Under $100", Min: 0, Max: bound(100)}
	Bracket100To150 = Bracket{Key: "100-150", Label: "$100 - $150", Min: 100, Max: bound(150)}
	BracketOver150  = Bracket{Key: "over-150", Label: "Over $150", Min: 150}
)

// Brackets lists the selectable price brackets in display order.
var Brackets = []Bracket{BracketAll, BracketUnder100, Bracket100To150, BracketOver150}

// SortKey selects the ordering applied after filtering.
type SortKey string

const (
	SortTitle     SortKey = "title"
	SortPriceLow  SortKey = "price-low"
	SortPriceHigh SortKey = "price-high"
	SortFeatured  SortKey = "featured"
)

// SortKeys lists the sort options in display order.
var SortKeys = []SortKey{SortTitle, SortPriceLow, SortPriceHigh, SortFeatured}

// SortLabels maps each sort key to its dropdown label.
var SortLabels = map[SortKey]string{
	SortTitle:     "Title (A-Z)",
	SortPriceLow:  "Price (Low to High)",
	SortPriceHigh: "Price (High to Low)",
	SortFeatured:  "Featured First",
}

// Criteria is the user's current search, filter and sort selection.
// The zero value behaves exactly like DefaultCriteria.
type Criteria struct {
	Term  string  `json:"q"`
	Genre Genre   `json:"genre"`
	Price Bracket `json:"price"`
	Sort  SortKey `json:"sort"`
}

// DefaultCriteria is the state restored by "clear all filters".
func DefaultCriteria() Criteria {
	return Criteria{
		Term:  "",
		Genre: GenreAll,
		Price: BracketAll,
		Sort:  SortTitle,
	}
}

// ListQuery carries raw, unparsed criteria as they arrive from a query
// string, a websocket frame or an RPC request.
type ListQuery struct {
	Q     string `json:"q"`
	Genre string `json:"genre"`
	Price string `json:"price"`
	Sort  string `json:"sort"`
}

// Criteria parses the raw query.
func (q ListQuery) Criteria() (Criteria, error) {
	return ParseCriteria(q.Q, q.Genre, q.Price, q.Sort)
}

// ParseCriteria builds Criteria from wire values. Empty values select the
// default for that dimension. The term is kept verbatim.
func ParseCriteria(term, genre, price, sort string) (Criteria, error) {
	g, err := ParseGenre(genre)
	if err != nil {
		return Criteria{}, err
	}
	b, err := ParseBracket(price)
	if err != nil {
		return Criteria{}, err
	}
	k, err := ParseSortKey(sort)
	if err != nil {
		return Criteria{}, err
	}
	return Criteria{Term: term, Genre: g, Price: b, Sort: k}, nil
}

// ParseGenre matches s case-insensitively against Genres. Empty means All.
func ParseGenre(s string) (Genre, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return GenreAll, nil
	}
	for _, g := range Genres {
		if strings.EqualFold(s, string(g)) {
			return g, nil
		}
	}
	return "", fmt.Errorf("%w: unknown genre %q", ErrInvalidCriteria, s)
}

// ParseBracket accepts either the bracket key ("under-100") or its label
// ("Under $100").
func ParseBracket(s string) (Bracket, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return BracketAll, nil
	}
	for _, b := range Brackets {
		if strings.EqualFold(s, b.Key) || strings.EqualFold(s, b.Label) {
			return b.clone(), nil
		}
	}
	return Bracket{}, fmt.Errorf("%w: unknown price bracket %q", ErrInvalidCriteria, s)
}

// ParseSortKey accepts the sort keys plus a few aliases ("price-asc",
// "featured-first"). Empty means title.
func ParseSortKey(s string) (SortKey, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "title":
		return SortTitle, nil
	case "price-low", "price-asc", "price-ascending":
		return SortPriceLow, nil
	case "price-high", "price-desc", "price-descending":
		return SortPriceHigh, nil
	case "featured", "featured-first":
		return SortFeatured, nil
	default:
		return "", fmt.Errorf("%w: unknown sort key %q", ErrInvalidCriteria, s)
	}
}
