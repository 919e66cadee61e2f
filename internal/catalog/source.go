package catalog

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"musicschool/pkg/models"
)

// ErrInvalidCatalog is wrapped by every validation problem found in a catalog.
var ErrInvalidCatalog = errors.New("invalid catalog")

// LoadFile reads a catalog file. The format is picked from the extension:
// .json, .yaml / .yml or .csv.
func LoadFile(path string) ([]models.Course, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open catalog: %w", err)
	}
	defer f.Close()

	courses, err := Decode(f, formatOf(path))
	if err != nil {
		return nil, fmt.Errorf("decode catalog %s: %w", path, err)
	}
	return courses, nil
}

func formatOf(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return "yaml"
	case ".csv":
		return "csv"
	default:
		return "json"
	}
}

// Decode parses a {"courses": [...]} document in the given format, or a
// course table when format is "csv".
func Decode(r io.Reader, format string) ([]models.Course, error) {
	if format == "csv" {
		return ReadCSV(r)
	}
	b, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	var doc models.CatalogFile
	switch format {
	case "yaml":
		if err := yaml.Unmarshal(b, &doc); err != nil {
			return nil, err
		}
	case "json":
		if err := json.Unmarshal(b, &doc); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("unsupported catalog format %q", format)
	}
	if doc.Courses == nil {
		doc.Courses = []models.Course{}
	}
	return doc.Courses, nil
}

// Encode writes courses as a {"courses": [...]} document, or as a course
// table when format is "csv".
func Encode(w io.Writer, courses []models.Course, format string) error {
	doc := models.CatalogFile{Courses: courses}
	if doc.Courses == nil {
		doc.Courses = []models.Course{}
	}
	switch format {
	case "csv":
		return WriteCSV(w, courses)
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(doc); err != nil {
			return err
		}
		return enc.Close()
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(doc)
	default:
		return fmt.Errorf("unsupported catalog format %q", format)
	}
}

// FormatOf reports the catalog format implied by a file name.
func FormatOf(path string) string { return formatOf(path) }

// Validate checks the invariants the filter relies on: unique ids and slugs,
// a title on every course, and finite, non-negative prices. All problems are reported
// together.
func Validate(courses []models.Course) error {
	var errs []error
	ids := make(map[int]struct{}, len(courses))
	slugs := make(map[string]struct{}, len(courses))

	for i, c := range courses {
		if _, dup := ids[c.ID]; dup {
			errs = append(errs, fmt.Errorf("%w: course #%d: duplicate id %d", ErrInvalidCatalog, i, c.ID))
		}
		ids[c.ID] = struct{}{}

		if c.Slug != "" {
			if _, dup := slugs[c.Slug]; dup {
				errs = append(errs, fmt.Errorf("%w: course %d: duplicate slug %q", ErrInvalidCatalog, c.ID, c.Slug))
			}
			slugs[c.Slug] = struct{}{}
		}

		if strings.TrimSpace(c.Title) == "" {
			errs = append(errs, fmt.Errorf("%w: course %d: empty title", ErrInvalidCatalog, c.ID))
		}
		switch {
		case math.IsNaN(c.Price) || math.IsInf(c.Price, 0):
			errs = append(errs, fmt.Errorf("%w: course %d: price %v is not a finite number", ErrInvalidCatalog, c.ID, c.Price))
		case c.Price < 0:
			errs = append(errs, fmt.Errorf("%w: course %d: negative price %v", ErrInvalidCatalog, c.ID, c.Price))
		}
	}
	return errors.Join(errs...)
}
