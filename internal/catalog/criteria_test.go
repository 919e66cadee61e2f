package catalog

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCriteriaDefaults(t *testing.T) {
	cr, err := ParseCriteria("", "", "", "")
	require.NoError(t, err)
	assert.Equal(t, DefaultCriteria(), cr)
}

func TestParseCriteriaValues(t *testing.T) {
	cr, err := ParseCriteria(" Piano ", "jazz", "Under $100", "price-desc")
	require.NoError(t, err)
	assert.Equal(t, " Piano ", cr.Term)
	assert.Equal(t, GenreJazz, cr.Genre)
	assert.Equal(t, BracketUnder100, cr.Price)
	assert.Equal(t, SortPriceHigh, cr.Sort)
}

func TestParseCriteriaRejectsUnknownValues(t *testing.T) {
	tests := []struct {
		name                string
		genre, price, order string
	}{
		{name: "genre", genre: "polka"},
		{name: "price", price: "cheap"},
		{name: "sort", order: "newest"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseCriteria("", tt.genre, tt.price, tt.order)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidCriteria))
			assert.True(t, IsClientError(err))
		})
	}
}

func TestParseSortKeyAliases(t *testing.T) {
	for in, want := range map[string]SortKey{
		"TITLE":            SortTitle,
		"price-ascending":  SortPriceLow,
		"price-low":        SortPriceLow,
		"price-descending": SortPriceHigh,
		"featured-first":   SortFeatured,
	} {
		got, err := ParseSortKey(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
}

func TestParseBracketByKeyOrLabel(t *testing.T) {
	for _, b := range Brackets {
		byKey, err := ParseBracket(b.Key)
		require.NoError(t, err)
		assert.Equal(t, b, byKey)

		byLabel, err := ParseBracket(b.Label)
		require.NoError(t, err)
		assert.Equal(t, b, byLabel)
	}
}

func TestBracketJSONHasNullMaxWhenUnbounded(t *testing.T) {
	b, err := json.Marshal(BracketOver150)
	require.NoError(t, err)
	assert.JSONEq(t, `{"key":"over-150","label":"Over $150","min":150,"max":null}`, string(b))

	b, err = json.Marshal(Bracket100To150)
	require.NoError(t, err)
	assert.JSONEq(t, `{"key":"100-150","label":"$100 - $150","min":100,"max":150}`, string(b))
}

func TestListQueryCriteria(t *testing.T) {
	cr, err := ListQuery{Q: "blues", Genre: "Blues", Price: "over-150", Sort: "featured"}.Criteria()
	require.NoError(t, err)
	assert.Equal(t, Criteria{Term: "blues", Genre: GenreBlues, Price: BracketOver150, Sort: SortFeatured}, cr)
}

func TestParsedBracketsDoNotShareBounds(t *testing.T) {
	cr, err := ParseCriteria("", "", "under-100", "")
	require.NoError(t, err)
	require.NotNil(t, cr.Price.Max)
	*cr.Price.Max = 5

	opts := SearchOptions()
	*opts.Brackets[2].Max = 7

	assert.Equal(t, 100.0, *BracketUnder100.Max)
	assert.Equal(t, 150.0, *Bracket100To150.Max)
	assert.True(t, BracketUnder100.Contains(80))

	again, err := ParseBracket("under-100")
	require.NoError(t, err)
	assert.Equal(t, 100.0, *again.Max)
}
