package progress

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"musicschool/pkg/models"
)

type ModuleStat struct {
	ID        int           `json:"id"`
	Title     string        `json:"title"`
	Completed int           `json:"completed"`
	Total     int           `json:"total"`
	Done      bool          `json:"done"`
	Duration  time.Duration `json:"durationNs"`
}

type Summary struct {
	Course           models.CourseProgress `json:"course"`
	CompletedLessons int                   `json:"completedLessons"`
	Percent          float64               `json:"percent"`
	Modules          []ModuleStat          `json:"moduleStats"`
	TotalDuration    string                `json:"totalDuration"`
}

// Completed counts completed lessons across all modules.
func Completed(c models.CourseProgress) int {
	n := 0
	for _, m := range c.Modules {
		for _, l := range m.Lessons {
			if l.Completed {
				n++
			}
		}
	}
	return n
}

func lessonCount(c models.CourseProgress) int {
	n := 0
	for _, m := range c.Modules {
		n += len(m.Lessons)
	}
	return n
}

// Percent is completed lessons over the course size, 0-100. The course size
// is TotalLessons, or the published lesson count when that is larger.
func Percent(c models.CourseProgress) float64 {
	total := max(c.TotalLessons, lessonCount(c))
	if total == 0 {
		return 0
	}
	return float64(Completed(c)) / float64(total) * 100
}

func ModuleStats(c models.CourseProgress) ([]ModuleStat, error) {
	out := make([]ModuleStat, 0, len(c.Modules))
	for _, m := range c.Modules {
		st := ModuleStat{ID: m.ID, Title: m.Title, Total: len(m.Lessons)}
		for _, l := range m.Lessons {
			if l.Completed {
				st.Completed++
			}
			d, err := ParseDuration(l.Duration)
			if err != nil {
				return nil, fmt.Errorf("module %d lesson %d: %w", m.ID, l.ID, err)
			}
			st.Duration += d
		}
		st.Done = st.Total > 0 && st.Completed == st.Total
		out = append(out, st)
	}
	return out, nil
}

func TotalDuration(c models.CourseProgress) (time.Duration, error) {
	stats, err := ModuleStats(c)
	if err != nil {
		return 0, err
	}
	var total time.Duration
	for _, st := range stats {
		total += st.Duration
	}
	return total, nil
}

// ParseDuration reads "m:ss" (or "h:mm:ss") lesson lengths.
func ParseDuration(s string) (time.Duration, error) {
	parts := strings.Split(strings.TrimSpace(s), ":")
	if len(parts) < 2 || len(parts) > 3 {
		return 0, fmt.Errorf("invalid duration %q", s)
	}

	var total time.Duration
	for i, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil || n < 0 {
			return 0, fmt.Errorf("invalid duration %q", s)
		}
		if i > 0 && n >= 60 {
			return 0, fmt.Errorf("invalid duration %q", s)
		}
		total = total*60 + time.Duration(n)
	}
	return total * time.Second, nil
}

// FormatDuration renders d as "m:ss", or "h:mm:ss" past an hour.
func FormatDuration(d time.Duration) string {
	secs := int(d.Round(time.Second) / time.Second)
	h, m, s := secs/3600, secs/60%60, secs%60
	if h > 0 {
		return fmt.Sprintf("%d:%02d:%02d", h, m, s)
	}
	return fmt.Sprintf("%d:%02d", m, s)
}

func Summarize(c models.CourseProgress) (Summary, error) {
	stats, err := ModuleStats(c)
	if err != nil {
		return Summary{}, err
	}
	var total time.Duration
	for _, st := range stats {
		total += st.Duration
	}
	return Summary{
		Course:           c,
		CompletedLessons: Completed(c),
		Percent:          Percent(c),
		Modules:          stats,
		TotalDuration:    FormatDuration(total),
	}, nil
}
