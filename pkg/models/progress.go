package models

type LessonType string

const (
	LessonVideo    LessonType = "video"
	LessonPractice LessonType = "practice"
	LessonQuiz     LessonType = "quiz"
)

type Lesson struct {
	ID        int        `json:"id"`
	Title     string     `json:"title"`
	Duration  string     `json:"duration"` // "m:ss"
	Completed bool       `json:"completed"`
	Type      LessonType `json:"type"`
}

type Module struct {
	ID      int      `json:"id"`
	Title   string   `json:"title"`
	Lessons []Lesson `json:"lessons"`
}

// CourseProgress is a learner's view of one course. TotalLessons is the
// advertised course size, which may exceed the lessons published so far.
type CourseProgress struct {
	Title        string   `json:"title"`
	Instructor   string   `json:"instructor"`
	TotalLessons int      `json:"totalLessons"`
	Modules      []Module `json:"modules"`
}
