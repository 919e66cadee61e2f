package models

// Course is one entry of the static course catalog.
// Field names on the wire follow the catalog file (music_courses.json).
type Course struct {
	ID          int     `json:"id" yaml:"id"`
	Title       string  `json:"title" yaml:"title"`
	Slug        string  `json:"slug" yaml:"slug"`
	Description string  `json:"description" yaml:"description"`
	Price       float64 `json:"price" yaml:"price"`
	Instructor  string  `json:"instructor" yaml:"instructor"`
	IsFeatured  bool    `json:"isFeatured" yaml:"isFeatured"`
	Image       string  `json:"image" yaml:"image"`
}

// CatalogFile is the on-disk shape of a catalog: {"courses": [...]}.
type CatalogFile struct {
	Courses []Course `json:"courses" yaml:"courses"`
}
