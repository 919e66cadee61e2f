package catalog

import (
	"cmp"
	"slices"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"musicschool/pkg/models"
)

// Apply returns the courses matching c, ordered by c.Sort.
//
// The input is never modified and the result is always a fresh slice, so the
// caller can render it directly. Sorting is stable: courses that compare equal
// keep their catalog order.
func Apply(courses []models.Course, c Criteria) []models.Course {
	m := newMatcher(c)
	out := make([]models.Course, 0, len(courses))
	for _, course := range courses {
		if m.match(course) {
			out = append(out, course)
		}
	}
	sortCourses(out, c.Sort)
	return out
}

// Count returns how many courses match c without sorting them.
func Count(courses []models.Course, c Criteria) int {
	m := newMatcher(c)
	n := 0
	for _, course := range courses {
		if m.match(course) {
			n++
		}
	}
	return n
}

// Featured returns the featured courses in catalog order.
func Featured(courses []models.Course) []models.Course {
	out := make([]models.Course, 0)
	for _, course := range courses {
		if course.IsFeatured {
			out = append(out, course)
		}
	}
	return out
}

type matcher struct {
	term   string
	genre  string
	all    bool
	bucket Bracket
}

func newMatcher(c Criteria) matcher {
	return matcher{
		term:   strings.ToLower(c.Term),
		genre:  strings.ToLower(string(c.Genre)),
		all:    c.Genre.isAll(),
		bucket: c.Price,
	}
}

func (m matcher) match(course models.Course) bool {
	return m.matchTerm(course) && m.matchGenre(course) && m.bucket.Contains(course.Price)
}

func (m matcher) matchTerm(course models.Course) bool {
	if m.term == "" {
		return true
	}
	return strings.Contains(strings.ToLower(course.Title), m.term) ||
		strings.Contains(strings.ToLower(course.Description), m.term) ||
		strings.Contains(strings.ToLower(course.Instructor), m.term)
}

// matchGenre looks for the genre name inside the title; courses carry no
// structured genre.
func (m matcher) matchGenre(course models.Course) bool {
	if m.all {
		return true
	}
	return strings.Contains(strings.ToLower(course.Title), m.genre)
}

func sortCourses(courses []models.Course, key SortKey) {
	switch key {
	case "", SortTitle:
		// Collator keeps internal buffers, one per call.
		col := collate.New(language.English, collate.IgnoreCase)
		slices.SortStableFunc(courses, func(a, b models.Course) int {
			return col.CompareString(a.Title, b.Title)
		})
	case SortPriceLow:
		slices.SortStableFunc(courses, func(a, b models.Course) int {
			return cmp.Compare(a.Price, b.Price)
		})
	case SortPriceHigh:
		slices.SortStableFunc(courses, func(a, b models.Course) int {
			return cmp.Compare(b.Price, a.Price)
		})
	case SortFeatured:
		slices.SortStableFunc(courses, func(a, b models.Course) int {
			return featuredRank(a) - featuredRank(b)
		})
	}
	// unknown keys keep filter order
}

func featuredRank(c models.Course) int {
	if c.IsFeatured {
		return 0
	}
	return 1
}
