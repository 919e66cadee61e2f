package catalog

import (
	"slices"
	"time"

	"musicschool/pkg/models"
)

// Catalog is one loaded, validated snapshot of the course list.
// It is never modified after NewCatalog returns.
type Catalog struct {
	courses  []models.Course
	byID     map[int]int
	source   string
	loadedAt time.Time
}

// NewCatalog validates courses and copies them into a snapshot.
func NewCatalog(courses []models.Course, source string) (*Catalog, error) {
	if err := Validate(courses); err != nil {
		return nil, err
	}
	c := &Catalog{
		courses:  slices.Clone(courses),
		byID:     make(map[int]int, len(courses)),
		source:   source,
		loadedAt: time.Now().UTC(),
	}
	if c.courses == nil {
		c.courses = []models.Course{}
	}
	for i, course := range c.courses {
		c.byID[course.ID] = i
	}
	return c, nil
}

func emptyCatalog() *Catalog {
	return &Catalog{courses: []models.Course{}, byID: map[int]int{}}
}

func (c *Catalog) Len() int { return len(c.courses) }

func (c *Catalog) Source() string { return c.source }

func (c *Catalog) LoadedAt() time.Time { return c.loadedAt }

// Courses returns a copy of every course in catalog order.
func (c *Catalog) Courses() []models.Course {
	return slices.Clone(c.courses)
}

func (c *Catalog) Get(id int) (models.Course, bool) {
	i, ok := c.byID[id]
	if !ok {
		return models.Course{}, false
	}
	return c.courses[i], true
}

func (c *Catalog) Search(cr Criteria) []models.Course {
	return Apply(c.courses, cr)
}

func (c *Catalog) Featured() []models.Course {
	return Featured(c.courses)
}

func (c *Catalog) Facets(cr Criteria) Facets {
	return ComputeFacets(c.courses, cr)
}
