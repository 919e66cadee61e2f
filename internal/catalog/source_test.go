package catalog

import (
	"bytes"
	"context"
	"errors"
	"io"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"musicschool/pkg/models"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadFileJSON(t *testing.T) {
	path := writeFile(t, "courses.json", `{
		"courses": [
			{"id": 1, "title": "Guitar Fundamentals", "slug": "guitar-fundamentals",
			 "description": "Learn the basics", "price": 99.99, "instructor": "David Green",
			 "isFeatured": true, "image": "/images/guitar.jpg"}
		]
	}`)

	courses, err := LoadFile(path)
	require.NoError(t, err)
	require.Len(t, courses, 1)
	assert.Equal(t, models.Course{
		ID:          1,
		Title:       "Guitar Fundamentals",
		Slug:        "guitar-fundamentals",
		Description: "Learn the basics",
		Price:       99.99,
		Instructor:  "David Green",
		IsFeatured:  true,
		Image:       "/images/guitar.jpg",
	}, courses[0])
}

func TestLoadFileYAML(t *testing.T) {
	path := writeFile(t, "courses.yaml", `
courses:
  - id: 7
    title: Blues Harmonica
    slug: blues-harmonica
    price: 45
    instructor: Ethan Moore
    isFeatured: false
`)

	courses, err := LoadFile(path)
	require.NoError(t, err)
	require.Len(t, courses, 1)
	assert.Equal(t, "Blues Harmonica", courses[0].Title)
	assert.Equal(t, 45.0, courses[0].Price)
}

func TestLoadFileErrors(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)

	_, err = LoadFile(writeFile(t, "bad.json", `{"courses": [`))
	assert.Error(t, err)

	// non-numeric price is rejected while decoding
	_, err = LoadFile(writeFile(t, "bad-price.json", `{"courses":[{"id":1,"title":"x","price":"free"}]}`))
	assert.Error(t, err)
}

func TestDecodeEmptyDocument(t *testing.T) {
	courses, err := Decode(strings.NewReader(`{}`), "json")
	require.NoError(t, err)
	assert.NotNil(t, courses)
	assert.Empty(t, courses)

	_, err = Decode(strings.NewReader(`{}`), "toml")
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	assert.NoError(t, Validate(nil))
	assert.NoError(t, Validate(wideCatalog()))

	bad := []models.Course{
		{ID: 1, Title: "A", Slug: "a", Price: 10},
		{ID: 1, Title: "B", Slug: "a", Price: -1},
		{ID: 2, Title: "  ", Slug: "c"},
	}
	err := Validate(bad)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidCatalog))

	msg := err.Error()
	assert.Contains(t, msg, "duplicate id 1")
	assert.Contains(t, msg, `duplicate slug "a"`)
	assert.Contains(t, msg, "negative price")
	assert.Contains(t, msg, "empty title")

	for _, price := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		err := Validate([]models.Course{{ID: 9, Title: "Jazz Piano", Slug: "jazz-piano", Price: price}})
		require.ErrorIs(t, err, ErrInvalidCatalog)
		assert.Contains(t, err.Error(), "not a finite number")
	}
}

func TestStoreRejectsNonFinitePrices(t *testing.T) {
	store := NewStore("test", StaticLoader([]models.Course{
		{ID: 1, Title: "Jazz Piano", Slug: "jazz-piano", Price: math.NaN()},
		{ID: 2, Title: "Rock Guitar", Slug: "rock-guitar", Price: math.Inf(1)},
	}), quietLogger())

	_, err := store.Reload(context.Background())
	require.ErrorIs(t, err, ErrInvalidCatalog)
	assert.Zero(t, store.Current().Len())
}

func TestEncodeDecode(t *testing.T) {
	for _, format := range []string{"json", "yaml", "csv"} {
		t.Run(format, func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, Encode(&buf, wideCatalog(), format))

			got, err := Decode(&buf, format)
			require.NoError(t, err)
			assert.Equal(t, wideCatalog(), got)
		})
	}

	assert.Error(t, Encode(io.Discard, nil, "toml"))
	assert.Equal(t, "yaml", FormatOf("catalog.YML"))
}
