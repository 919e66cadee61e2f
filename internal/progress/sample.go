package progress

import "musicschool/pkg/models"

func SampleCourse() models.CourseProgress {
	return models.CourseProgress{
		Title:        "Guitar Fundamentals",
		Instructor:   "John Doe",
		TotalLessons: 24,
		Modules: []models.Module{
			{
				ID:    1,
				Title: "Getting Started",
				Lessons: []models.Lesson{
					{ID: 1, Title: "Introduction to Guitar", Duration: "5:30", Completed: true, Type: models.LessonVideo},
					{ID: 2, Title: "Holding the Guitar", Duration: "8:15", Completed: true, Type: models.LessonVideo},
					{ID: 3, Title: "Basic Posture Practice", Duration: "10:00", Completed: true, Type: models.LessonPractice},
					{ID: 4, Title: "Knowledge Check", Duration: "3:00", Completed: true, Type: models.LessonQuiz},
				},
			},
			{
				ID:    2,
				Title: "Basic Chords",
				Lessons: []models.Lesson{
					{ID: 5, Title: "Open Chords Overview", Duration: "12:45", Completed: true, Type: models.LessonVideo},
					{ID: 6, Title: "G Major Chord", Duration: "6:20", Completed: true, Type: models.LessonVideo},
					{ID: 7, Title: "C Major Chord", Duration: "6:15", Completed: true, Type: models.LessonVideo},
					{ID: 8, Title: "D Major Chord", Duration: "6:30", Completed: true, Type: models.LessonVideo},
					{ID: 9, Title: "Chord Transitions", Duration: "15:00", Type: models.LessonPractice},
					{ID: 10, Title: "Chord Quiz", Duration: "5:00", Type: models.LessonQuiz},
				},
			},
			{
				ID:    3,
				Title: "Strumming Patterns",
				Lessons: []models.Lesson{
					{ID: 11, Title: "Basic Down Strums", Duration: "8:45", Type: models.LessonVideo},
					{ID: 12, Title: "Up and Down Strums", Duration: "10:30", Type: models.LessonVideo},
					{ID: 13, Title: "Rhythm Practice", Duration: "20:00", Type: models.LessonPractice},
				},
			},
		},
	}
}
