package catalog

import (
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"musicschool/pkg/models"
)

// CSVHeader is the column order written by WriteCSV. ReadCSV matches
// columns by name, so input files may order them freely.
var CSVHeader = []string{"id", "title", "slug", "description", "price", "instructor", "is_featured", "image"}

func WriteCSV(w io.Writer, courses []models.Course) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(CSVHeader); err != nil {
		return err
	}
	for _, c := range courses {
		if err := cw.Write([]string{
			strconv.Itoa(c.ID),
			c.Title,
			c.Slug,
			c.Description,
			strconv.FormatFloat(c.Price, 'f', -1, 64),
			c.Instructor,
			strconv.FormatBool(c.IsFeatured),
			c.Image,
		}); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// ReadCSV parses a course CSV with a header row. Blank rows are skipped.
func ReadCSV(r io.Reader) ([]models.Course, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	header, err := readHeader(cr)
	if err == io.EOF {
		return []models.Course{}, nil
	}
	if err != nil {
		return nil, err
	}
	for _, col := range []string{"id", "title"} {
		if _, ok := header[col]; !ok {
			return nil, fmt.Errorf("csv: missing %q column", col)
		}
	}

	courses := []models.Course{}
	line := 1
	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		line++
		if len(row) == 0 || (len(row) == 1 && strings.TrimSpace(row[0]) == "") {
			continue
		}

		id, err := strconv.Atoi(valueAt(header, row, "id"))
		if err != nil {
			return nil, fmt.Errorf("csv line %d: parse id: %w", line, err)
		}
		price, err := parseFloat(valueAt(header, row, "price"))
		if err != nil {
			return nil, fmt.Errorf("csv line %d: parse price: %w", line, err)
		}
		featured, err := parseBool(valueAt(header, row, "is_featured"))
		if err != nil {
			return nil, fmt.Errorf("csv line %d: parse is_featured: %w", line, err)
		}

		courses = append(courses, models.Course{
			ID:          id,
			Title:       valueAt(header, row, "title"),
			Slug:        valueAt(header, row, "slug"),
			Description: valueAt(header, row, "description"),
			Price:       price,
			Instructor:  valueAt(header, row, "instructor"),
			IsFeatured:  featured,
			Image:       valueAt(header, row, "image"),
		})
	}
	return courses, nil
}

func readHeader(r *csv.Reader) (map[string]int, error) {
	row, err := r.Read()
	if err != nil {
		return nil, err
	}
	header := make(map[string]int, len(row))
	for idx, name := range row {
		key := strings.TrimSpace(strings.ToLower(name))
		if key == "isfeatured" {
			key = "is_featured"
		}
		header[key] = idx
	}
	return header, nil
}

func valueAt(header map[string]int, row []string, key string) string {
	idx, ok := header[key]
	if !ok || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

func parseFloat(raw string) (float64, error) {
	if raw == "" {
		return 0, nil
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, fmt.Errorf("%q is not a finite number", raw)
	}
	return f, nil
}

func parseBool(raw string) (bool, error) {
	if raw == "" {
		return false, nil
	}
	return strconv.ParseBool(raw)
}
