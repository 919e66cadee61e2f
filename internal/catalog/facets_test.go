package catalog

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeFacets(t *testing.T) {
	courses := wideCatalog()

	f := ComputeFacets(courses, DefaultCriteria())
	assert.Equal(t, 6, f.Total)

	assert.Equal(t, []string{
		"All", "Guitar", "Piano", "Vocal", "Drums", "Jazz",
		"Production", "Classical", "Blues", "Electronic",
	}, f.Genres.Keys())

	guitar, ok := f.Genres.Get("Guitar")
	require.True(t, ok)
	assert.Equal(t, 2, guitar)

	under, ok := f.Prices.Get("under-100")
	require.True(t, ok)
	assert.Equal(t, 3, under)
}

func TestComputeFacetsKeepsOtherCriteria(t *testing.T) {
	courses := wideCatalog()

	cr := DefaultCriteria()
	cr.Genre = GenreGuitar
	f := ComputeFacets(courses, cr)

	assert.Equal(t, 2, f.Total)
	all, _ := f.Prices.Get("all")
	assert.Equal(t, 2, all)
	mid, _ := f.Prices.Get("100-150")
	assert.Equal(t, 1, mid)

	// the genre facet ignores the selected genre
	vocal, _ := f.Genres.Get("Vocal")
	assert.Equal(t, 1, vocal)
}

func TestFacetsJSONKeepsDropdownOrder(t *testing.T) {
	f := ComputeFacets(wideCatalog(), DefaultCriteria())
	b, err := json.Marshal(f)
	require.NoError(t, err)

	s := string(b)
	assert.Less(t, strings.Index(s, `"Guitar"`), strings.Index(s, `"Blues"`))
	assert.Less(t, strings.Index(s, `"under-100"`), strings.Index(s, `"over-150"`))
}
