package catalog

import (
	"strconv"
	"strings"

	"musicschool/pkg/models"
)

// Slugify lowercases s and collapses every run of non-alphanumerics into a
// single dash.
func Slugify(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	var b strings.Builder
	lastDash := false
	for _, r := range s {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
			lastDash = false
		} else if !lastDash {
			b.WriteRune('-')
			lastDash = true
		}
	}
	out := strings.Trim(b.String(), "-")
	if out == "" {
		out = "untitled"
	}
	return out
}

// FillSlugs returns a copy of courses where every missing slug is derived
// from the title. Derived slugs that collide get the course id appended.
func FillSlugs(courses []models.Course) []models.Course {
	out := append([]models.Course(nil), courses...)
	taken := make(map[string]struct{}, len(out))
	for _, c := range out {
		if c.Slug != "" {
			taken[c.Slug] = struct{}{}
		}
	}
	for i := range out {
		if out[i].Slug != "" {
			continue
		}
		slug := Slugify(out[i].Title)
		if _, dup := taken[slug]; dup {
			slug = slug + "-" + strconv.Itoa(out[i].ID)
		}
		taken[slug] = struct{}{}
		out[i].Slug = slug
	}
	return out
}
