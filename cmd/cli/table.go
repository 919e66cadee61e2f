package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/mattn/go-runewidth"

	"musicschool/pkg/models"
)

const maxTitleWidth = 40

// writeTable pads cells by display width so titles with wide runes still
// line up.
func writeTable(w io.Writer, header []string, rows [][]string) error {
	widths := make([]int, len(header))
	for i, h := range header {
		widths[i] = runewidth.StringWidth(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			widths[i] = max(widths[i], runewidth.StringWidth(cell))
		}
	}

	line := func(cells []string) error {
		parts := make([]string, len(cells))
		for i, cell := range cells {
			if i == len(cells)-1 {
				parts[i] = cell
				continue
			}
			parts[i] = runewidth.FillRight(cell, widths[i])
		}
		_, err := fmt.Fprintln(w, strings.TrimRight(strings.Join(parts, "  "), " "))
		return err
	}

	if err := line(header); err != nil {
		return err
	}
	for _, row := range rows {
		if err := line(row); err != nil {
			return err
		}
	}
	return nil
}

func writeCourseTable(w io.Writer, courses []models.Course) error {
	rows := make([][]string, 0, len(courses))
	for _, c := range courses {
		featured := ""
		if c.IsFeatured {
			featured = "*"
		}
		rows = append(rows, []string{
			strconv.Itoa(c.ID),
			runewidth.Truncate(c.Title, maxTitleWidth, "..."),
			formatPrice(c.Price),
			featured,
			c.Instructor,
		})
	}
	return writeTable(w, []string{"ID", "TITLE", "PRICE", "FEATURED", "INSTRUCTOR"}, rows)
}

func writeKeyValues(w io.Writer, pairs [][2]string) error {
	rows := make([][]string, 0, len(pairs))
	for _, p := range pairs {
		rows = append(rows, []string{p[0], p[1]})
	}
	return writeTable(w, []string{"FIELD", "VALUE"}, rows)
}

func formatPrice(p float64) string {
	return "$" + strconv.FormatFloat(p, 'f', 2, 64)
}

func printJSON(w io.Writer, v any) error {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, string(b))
	return err
}
